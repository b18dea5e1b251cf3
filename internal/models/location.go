package models

// Location represents a resolved place: its display name and country, its
// geographic coordinates, and the time zone its sun times are expressed in.
type Location struct {
	Name      string  `json:"name"`
	Country   string  `json:"country,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	// Timezone is the IANA zone name reported by the geocoder, e.g.
	// "Europe/Paris". May be empty when the geocoder has no zone data.
	Timezone string `json:"timezone,omitempty"`
	// UTCOffset is the zone's offset from UTC in hours at resolution time.
	// Fallback for when Timezone is empty or unknown to the host.
	UTCOffset float64 `json:"utc_offset"`
}
