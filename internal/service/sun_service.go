// Package service holds the core orchestration: resolve a place once, then
// walk the requested date range through the solar calculator.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sunchart-api/internal/models"
	"sunchart-api/internal/solar"
)

var (
	// ErrInvalidRange means the range start falls after its end.
	ErrInvalidRange = errors.New("service: date range start is after end")
	// ErrRangeTooLong means the range exceeds the configured maximum.
	ErrRangeTooLong = errors.New("service: date range too long")
)

// LocationResolver interface for dependency injection.
type LocationResolver interface {
	Resolve(ctx context.Context, name string) (models.Location, error)
}

// SunService contains the core business logic: geocoding a place and
// computing its solar series and live status.
type SunService struct {
	resolver     LocationResolver
	calc         *solar.Calculator
	maxRangeDays int
	now          func() time.Time
}

// NewSunService creates a new sun service. maxRangeDays bounds the number of
// records a single series request may produce; values <= 0 select a year.
func NewSunService(resolver LocationResolver, calc *solar.Calculator, maxRangeDays int) *SunService {
	if maxRangeDays <= 0 {
		maxRangeDays = 366
	}
	return &SunService{
		resolver:     resolver,
		calc:         calc,
		maxRangeDays: maxRangeDays,
		now:          time.Now,
	}
}

// Resolve geocodes a place name.
func (s *SunService) Resolve(ctx context.Context, place string) (models.Location, error) {
	location, err := s.resolver.Resolve(ctx, place)
	if err != nil {
		return models.Location{}, fmt.Errorf("service: resolve %q: %w", place, err)
	}
	return location, nil
}

// Series resolves the place and computes one record per date in
// [start, end], ascending. There is no partial success: the first
// calculation error aborts the request.
func (s *SunService) Series(ctx context.Context, place string, start, end models.Date) (*models.SolarSeries, error) {
	if start.After(end) {
		return nil, fmt.Errorf("%w: %s > %s", ErrInvalidRange, start, end)
	}
	if days := start.DaysUntil(end) + 1; days > s.maxRangeDays {
		return nil, fmt.Errorf("%w: %d days, limit %d", ErrRangeTooLong, days, s.maxRangeDays)
	}

	location, err := s.Resolve(ctx, place)
	if err != nil {
		return nil, err
	}

	records := make([]models.DailySolarRecord, 0, start.DaysUntil(end)+1)
	for d := start; !d.After(end); d = d.AddDays(1) {
		rec, err := s.calc.Day(d, location.Latitude, location.Longitude, s.offsetFor(location, d))
		if err != nil {
			return nil, fmt.Errorf("service: compute %s: %w", d, err)
		}
		records = append(records, rec)
	}

	return &models.SolarSeries{Location: location, Records: records}, nil
}

// Status resolves the place and reports the live sun state: today's record
// in the location's own calendar day, whether the sun is up, and the next
// horizon crossing (tomorrow's sunrise once today's sun has set).
func (s *SunService) Status(ctx context.Context, place string) (*models.SunStatus, error) {
	location, err := s.Resolve(ctx, place)
	if err != nil {
		return nil, err
	}

	localNow := s.now().In(s.zoneFor(location))
	today := models.DateOf(localNow)

	rec, err := s.calc.Day(today, location.Latitude, location.Longitude, s.offsetFor(location, today))
	if err != nil {
		return nil, fmt.Errorf("service: compute %s: %w", today, err)
	}

	status := &models.SunStatus{
		Location: location,
		Now:      localNow,
		Today:    rec,
	}

	switch rec.Transition {
	case models.TransitionPolarDay:
		status.IsDay = true
		return status, nil
	case models.TransitionPolarNight:
		return status, nil
	}

	status.IsDay = localNow.After(rec.Sunrise) && localNow.Before(rec.Sunset)

	switch {
	case localNow.Before(rec.Sunrise):
		status.NextEvent = "sunrise"
		status.NextEventAt = rec.Sunrise
	case status.IsDay:
		status.NextEvent = "sunset"
		status.NextEventAt = rec.Sunset
	default:
		tomorrow := today.AddDays(1)
		next, err := s.calc.Day(tomorrow, location.Latitude, location.Longitude, s.offsetFor(location, tomorrow))
		if err != nil {
			return nil, fmt.Errorf("service: compute %s: %w", tomorrow, err)
		}
		if next.Transition == models.TransitionNormal {
			status.NextEvent = "sunrise"
			status.NextEventAt = next.Sunrise
		}
	}
	if !status.NextEventAt.IsZero() {
		status.NextEventInMinutes = status.NextEventAt.Sub(localNow).Minutes()
	}
	return status, nil
}

// offsetFor derives the UTC offset in hours that applies to the given
// calendar date at the location: the IANA zone when the host knows it
// (DST-correct), the offset stored at resolution time otherwise.
func (s *SunService) offsetFor(location models.Location, d models.Date) float64 {
	if location.Timezone != "" {
		if tz, err := time.LoadLocation(location.Timezone); err == nil {
			_, secs := time.Date(d.Year, d.Month, d.Day, 12, 0, 0, 0, tz).Zone()
			return float64(secs) / 3600
		}
	}
	return location.UTCOffset
}

func (s *SunService) zoneFor(location models.Location) *time.Location {
	if location.Timezone != "" {
		if tz, err := time.LoadLocation(location.Timezone); err == nil {
			return tz
		}
	}
	return solar.FixedZone(location.UTCOffset)
}
