package presentation

import "time"

// SetClock replaces the time source used for default dates.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}
