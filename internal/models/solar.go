package models

import "time"

// Transition describes whether the sun crosses the horizon on a given date.
type Transition string

const (
	// TransitionNormal means the sun both rises and sets on the date.
	TransitionNormal Transition = "normal"
	// TransitionPolarDay means the sun never sets on the date.
	TransitionPolarDay Transition = "polar_day"
	// TransitionPolarNight means the sun never rises on the date.
	TransitionPolarNight Transition = "polar_night"
)

// DailySolarRecord holds the sun times for one calendar day at one location.
// Sunrise and Sunset are local clock times in the location's zone; both are
// zero (and omitted from JSON) when Transition is not TransitionNormal.
type DailySolarRecord struct {
	Date       Date       `json:"date"`
	Transition Transition `json:"transition"`
	Sunrise    time.Time  `json:"sunrise,omitzero"`
	Sunset     time.Time  `json:"sunset,omitzero"`
	// DayLength is sunset minus sunrise, in [0h, 24h]. 24h on a polar day,
	// 0 on a polar night.
	DayLength time.Duration `json:"-"`
	// DayLengthMinutes mirrors DayLength for JSON consumers.
	DayLengthMinutes float64 `json:"day_length_minutes"`
	// NoonAltitude is the sun's elevation above the horizon at solar noon,
	// in degrees. Negative on a polar night.
	NoonAltitude float64 `json:"noon_altitude_deg"`
}

// SolarSeries is an ordered run of daily records, one per day of the
// requested range, ascending by date.
type SolarSeries struct {
	Location Location           `json:"location"`
	Records  []DailySolarRecord `json:"records"`
}

// SunStatus is a live readout for a location: whether the sun is currently
// up, today's record, and the next horizon crossing.
type SunStatus struct {
	Location Location         `json:"location"`
	Now      time.Time        `json:"now"`
	IsDay    bool             `json:"is_day"`
	Today    DailySolarRecord `json:"today"`
	// NextEvent is "sunrise" or "sunset", or empty during polar conditions.
	NextEvent   string    `json:"next_event,omitempty"`
	NextEventAt time.Time `json:"next_event_at,omitzero"`
	// NextEventInMinutes is the time remaining until NextEventAt.
	NextEventInMinutes float64 `json:"next_event_in_minutes,omitempty"`
}
