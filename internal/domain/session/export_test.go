package session

import "time"

// SetClock replaces the time source used by the service.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}
