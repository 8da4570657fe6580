package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/memad/portfolio/internal/domain/presentation"
	"github.com/memad/portfolio/internal/repository"
)

// PresentationRepository implements presentation.Repository for SQLite
type PresentationRepository struct {
	db *DB
}

// NewPresentationRepository creates a new PresentationRepository
func NewPresentationRepository(db *DB) *PresentationRepository {
	return &PresentationRepository{db: db}
}

const presentationColumns = `id, title_en, title_ar, description, type, slides, pdf_url, external_link, date, thumbnail_url`

// Create inserts a presentation, assigning a random ID when it has none
func (r *PresentationRepository) Create(ctx context.Context, pres *presentation.Presentation) error {
	if pres.ID == "" {
		pres.ID = uuid.NewString()
	}
	return insertPresentation(ctx, r.db, pres)
}

func insertPresentation(ctx context.Context, db execer, pres *presentation.Presentation) error {
	description, slides, err := encodePresentation(pres)
	if err != nil {
		return err
	}

	query := `INSERT INTO presentations (` + presentationColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = db.ExecContext(ctx, query,
		pres.ID,
		pres.Title.En,
		pres.Title.Ar,
		description,
		pres.Type,
		slides,
		pres.PDFURL,
		pres.ExternalLink,
		pres.Date,
		pres.ThumbnailURL,
	)
	if isUniqueViolation(err) {
		return repository.ErrConflict
	}
	if err != nil {
		return storageError("create presentation", err)
	}
	return nil
}

// Get retrieves a presentation by ID
func (r *PresentationRepository) Get(ctx context.Context, id string) (*presentation.Presentation, error) {
	query := `SELECT ` + presentationColumns + ` FROM presentations WHERE id = ?`

	pres, err := scanPresentation(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, storageError("get presentation", err)
	}
	return pres, nil
}

// List returns all presentations in insertion order
func (r *PresentationRepository) List(ctx context.Context) ([]presentation.Presentation, error) {
	query := `SELECT ` + presentationColumns + ` FROM presentations ORDER BY rowid`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, storageError("list presentations", err)
	}
	defer rows.Close()

	items := []presentation.Presentation{}
	for rows.Next() {
		pres, err := scanPresentation(rows)
		if err != nil {
			return nil, storageError("scan presentation", err)
		}
		items = append(items, *pres)
	}

	if err = rows.Err(); err != nil {
		return nil, storageError("iterate presentation rows", err)
	}

	return items, nil
}

// Update replaces every field of an existing presentation
func (r *PresentationRepository) Update(ctx context.Context, pres *presentation.Presentation) error {
	description, slides, err := encodePresentation(pres)
	if err != nil {
		return err
	}

	query := `
		UPDATE presentations
		SET title_en = ?, title_ar = ?, description = ?, type = ?, slides = ?,
		    pdf_url = ?, external_link = ?, date = ?, thumbnail_url = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		pres.Title.En,
		pres.Title.Ar,
		description,
		pres.Type,
		slides,
		pres.PDFURL,
		pres.ExternalLink,
		pres.Date,
		pres.ThumbnailURL,
		pres.ID,
	)
	if err != nil {
		return storageError("update presentation", err)
	}

	return requireRow(result)
}

// Delete removes a presentation by ID
func (r *PresentationRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM presentations WHERE id = ?`, id)
	if err != nil {
		return storageError("delete presentation", err)
	}
	return requireRow(result)
}

func encodePresentation(pres *presentation.Presentation) (sql.NullString, string, error) {
	var description sql.NullString
	if pres.Description != nil {
		b, err := json.Marshal(pres.Description)
		if err != nil {
			return description, "", fmt.Errorf("failed to encode description: %w", err)
		}
		description = sql.NullString{String: string(b), Valid: true}
	}

	slides, err := jsonColumn(pres.Slides)
	if err != nil {
		return description, "", fmt.Errorf("failed to encode slides: %w", err)
	}
	return description, slides, nil
}

func scanPresentation(row rowScanner) (*presentation.Presentation, error) {
	var pres presentation.Presentation
	var description sql.NullString
	var slides string
	err := row.Scan(
		&pres.ID,
		&pres.Title.En,
		&pres.Title.Ar,
		&description,
		&pres.Type,
		&slides,
		&pres.PDFURL,
		&pres.ExternalLink,
		&pres.Date,
		&pres.ThumbnailURL,
	)
	if err != nil {
		return nil, err
	}

	if description.Valid {
		pres.Description = &presentation.Text{}
		if err := json.Unmarshal([]byte(description.String), pres.Description); err != nil {
			return nil, fmt.Errorf("decoding description: %w", err)
		}
	}
	if err := json.Unmarshal([]byte(slides), &pres.Slides); err != nil {
		return nil, fmt.Errorf("decoding slides: %w", err)
	}
	if len(pres.Slides) == 0 {
		pres.Slides = nil
	}
	return &pres, nil
}
