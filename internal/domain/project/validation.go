package project

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar date format used for start and end dates.
const DateLayout = "2006-01-02"

// Validate checks the fields every stored project must carry.
func Validate(p Project) error {
	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if strings.TrimSpace(p.Description) == "" {
		return fmt.Errorf("%w: description is required", ErrInvalidInput)
	}
	if strings.TrimSpace(p.Category) == "" {
		return fmt.Errorf("%w: category is required", ErrInvalidInput)
	}
	if strings.TrimSpace(string(p.Status)) == "" {
		return fmt.Errorf("%w: status is required", ErrInvalidInput)
	}
	if !p.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, p.Status)
	}

	var start, end time.Time
	var err error
	if p.StartDate != "" {
		if start, err = time.Parse(DateLayout, p.StartDate); err != nil {
			return fmt.Errorf("%w: startDate must be YYYY-MM-DD", ErrInvalidInput)
		}
	}
	if p.EndDate != "" {
		if end, err = time.Parse(DateLayout, p.EndDate); err != nil {
			return fmt.Errorf("%w: endDate must be YYYY-MM-DD", ErrInvalidInput)
		}
	}
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		return fmt.Errorf("%w: endDate is before startDate", ErrInvalidInput)
	}
	return nil
}
