package sqlite

import (
	"context"
	"testing"

	"github.com/memad/portfolio/internal/domain/presentation"
	"github.com/memad/portfolio/internal/repository"
	"github.com/stretchr/testify/require"
)

func TestPresentationRepository_SlidesRoundTrip(t *testing.T) {
	db := NewTestDB(t)
	repo := NewPresentationRepository(db)
	ctx := context.Background()

	pres := &presentation.Presentation{
		Title:       presentation.Text{En: "Deck", Ar: "عرض"},
		Description: &presentation.Text{En: "About", Ar: "حول"},
		Type:        presentation.TypeSlides,
		Slides: []presentation.Slide{
			{Title: presentation.Text{En: "One"}, Content: presentation.Text{En: "body"}, Color: "blue"},
			{Title: presentation.Text{En: "Two"}, Image: "/img.png", Color: "red"},
		},
		Date: "2025-02-01",
	}
	require.NoError(t, repo.Create(ctx, pres))

	got, err := repo.Get(ctx, pres.ID)
	require.NoError(t, err)
	require.Equal(t, *pres, *got)
}

func TestPresentationRepository_PDFWithoutDescription(t *testing.T) {
	db := NewTestDB(t)
	repo := NewPresentationRepository(db)
	ctx := context.Background()

	pres := &presentation.Presentation{
		ID:     "pdf",
		Title:  presentation.Text{En: "Paper"},
		Type:   presentation.TypePDF,
		PDFURL: "/files/paper.pdf",
	}
	require.NoError(t, repo.Create(ctx, pres))

	got, err := repo.Get(ctx, "pdf")
	require.NoError(t, err)
	require.Nil(t, got.Description)
	require.Nil(t, got.Slides)
	require.Equal(t, "/files/paper.pdf", got.PDFURL)

	got.Type = presentation.TypeLink
	got.PDFURL = ""
	got.ExternalLink = "https://example.com"
	require.NoError(t, repo.Update(ctx, got))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Equal(t, presentation.TypeLink, all[0].Type)

	require.NoError(t, repo.Delete(ctx, "pdf"))
	require.ErrorIs(t, repo.Delete(ctx, "pdf"), repository.ErrNotFound)
}
