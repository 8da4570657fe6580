package presentation

// Type selects how a presentation is delivered.
type Type string

const (
	TypeSlides Type = "slides"
	TypePDF    Type = "pdf"
	TypeLink   Type = "link"
)

// Valid reports whether t is a known presentation type.
func (t Type) Valid() bool {
	switch t {
	case TypeSlides, TypePDF, TypeLink:
		return true
	}
	return false
}

// Text is a bilingual string.
type Text struct {
	En string `json:"en"`
	Ar string `json:"ar"`
}

// Empty reports whether neither language has content.
func (t Text) Empty() bool {
	return isBlank(t.En) && isBlank(t.Ar)
}

// Slide is one page of a slides presentation.
type Slide struct {
	Title   Text   `json:"title"`
	Content Text   `json:"content"`
	Image   string `json:"image,omitempty"`
	Color   string `json:"color"`
}

// Presentation is a talk or document listed in the presentations section.
// Only the payload field matching Type is meaningful.
type Presentation struct {
	ID           string  `json:"id"`
	Title        Text    `json:"title"`
	Description  *Text   `json:"description,omitempty"`
	Type         Type    `json:"type"`
	Slides       []Slide `json:"slides,omitempty"`
	PDFURL       string  `json:"pdfUrl,omitempty"`
	ExternalLink string  `json:"externalLink,omitempty"`
	Date         string  `json:"date"`
	ThumbnailURL string  `json:"thumbnailUrl,omitempty"`
}

// Clone returns a deep copy of the presentation.
func (p Presentation) Clone() Presentation {
	out := p
	if p.Description != nil {
		d := *p.Description
		out.Description = &d
	}
	if p.Slides != nil {
		out.Slides = append([]Slide{}, p.Slides...)
	}
	return out
}
