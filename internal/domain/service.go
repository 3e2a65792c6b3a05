package domain

import "time"

// Service represents a bookable salon offering
type Service struct {
	ID              int64
	Name            string
	Category        string
	DurationMinutes int
	Price           *float64 // nil = цена не указана
	PriceFrom       bool     // true = цена "от", а не точная
	IsActive        bool
	IsFeatured      bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// EffectiveDuration returns the service duration, falling back to the
// default when the record carries no positive value
func (s *Service) EffectiveDuration() int {
	if s.DurationMinutes <= 0 {
		return DefaultServiceDurationMinutes
	}
	return s.DurationMinutes
}

// EffectivePrice returns the denormalizable price (0 when not set)
func (s *Service) EffectivePrice() float64 {
	if s.Price == nil {
		return 0
	}
	return *s.Price
}
