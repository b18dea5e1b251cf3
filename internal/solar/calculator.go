// Package solar computes sunrise, sunset, and day length with the almanac
// method: solar declination and hour angle from the day of the year and the
// latitude, corrected by longitude and UTC offset to local clock time.
package solar

import (
	"errors"
	"math"
	"time"

	"github.com/sixdouglas/suncalc"

	"sunchart-api/internal/models"
)

// Horizon zenith angles in degrees. Official is the conventional
// sunrise/sunset zenith (sun center 50 arc minutes below the horizontal);
// the others give civil, nautical, and astronomical twilight bounds.
const (
	ZenithOfficial     = 90.833333
	ZenithCivil        = 96.0
	ZenithNautical     = 102.0
	ZenithAstronomical = 108.0
)

var (
	// ErrInvalidLatitude is returned for latitudes outside [-90, 90].
	ErrInvalidLatitude = errors.New("solar: latitude must be in [-90, 90]")
	// ErrInvalidLongitude is returned for longitudes outside [-180, 180].
	ErrInvalidLongitude = errors.New("solar: longitude must be in [-180, 180]")
)

// Calculator computes daily sun times. It is pure and safe for concurrent
// use.
type Calculator struct {
	zenith float64
}

// NewCalculator returns a calculator using the official sunrise/sunset
// zenith.
func NewCalculator() *Calculator {
	return &Calculator{zenith: ZenithOfficial}
}

// NewCalculatorZenith returns a calculator using a custom zenith angle,
// e.g. ZenithCivil for civil twilight times.
func NewCalculatorZenith(zenith float64) *Calculator {
	return &Calculator{zenith: zenith}
}

type sunEvent int

const (
	sunriseEvent sunEvent = iota
	sunsetEvent
)

// Day computes the record for one calendar date. Latitude and longitude are
// in degrees, utcOffset in hours. Sunrise and sunset are returned as clock
// times on the given date in a fixed zone built from utcOffset — the
// location's own day boundary, not UTC's. Polar day and polar night are
// reported on the record's Transition field, never as an error.
func (c *Calculator) Day(date models.Date, latitude, longitude, utcOffset float64) (models.DailySolarRecord, error) {
	if latitude < -90 || latitude > 90 {
		return models.DailySolarRecord{}, ErrInvalidLatitude
	}
	if longitude < -180 || longitude > 180 {
		return models.DailySolarRecord{}, ErrInvalidLongitude
	}

	rec := models.DailySolarRecord{
		Date:       date,
		Transition: models.TransitionNormal,
	}

	doy := date.YearDay()
	riseUTC, riseState := c.eventUTC(doy, latitude, longitude, sunriseEvent)
	setUTC, setState := c.eventUTC(doy, latitude, longitude, sunsetEvent)

	if riseState != models.TransitionNormal || setState != models.TransitionNormal {
		rec.Transition = riseState
		if rec.Transition == models.TransitionNormal {
			rec.Transition = setState
		}
		if rec.Transition == models.TransitionPolarDay {
			rec.DayLength = 24 * time.Hour
		}
		rec.DayLengthMinutes = rec.DayLength.Minutes()
		rec.NoonAltitude = c.noonAltitude(date, latitude, longitude)
		return rec, nil
	}

	zone := FixedZone(utcOffset)
	riseLocal := wrapHours(riseUTC + utcOffset)
	setLocal := wrapHours(setUTC + utcOffset)
	rec.Sunrise = clockTime(date, riseLocal, zone)
	rec.Sunset = clockTime(date, setLocal, zone)

	// Day length from the local clock values; a sunset that lands "before"
	// sunrise on the clock has wrapped past midnight and is unwound by 24h.
	length := setLocal - riseLocal
	if length < 0 {
		length += 24
	}
	rec.DayLength = time.Duration(length * float64(time.Hour))
	rec.DayLengthMinutes = rec.DayLength.Minutes()
	rec.NoonAltitude = c.noonAltitude(date, latitude, longitude)
	return rec, nil
}

// eventUTC computes the UTC time of the sunrise or sunset as fractional
// hours in [0, 24). The almanac method: approximate event time, solar mean
// anomaly, true longitude, right ascension, declination, then the hour
// angle at the configured zenith.
func (c *Calculator) eventUTC(dayOfYear int, latitude, longitude float64, e sunEvent) (float64, models.Transition) {
	lngHour := longitude / 15

	var t float64
	if e == sunriseEvent {
		t = float64(dayOfYear) + ((6 - lngHour) / 24)
	} else {
		t = float64(dayOfYear) + ((18 - lngHour) / 24)
	}

	meanAnomaly := 0.9856*t - 3.289

	trueLongitude := meanAnomaly +
		1.916*math.Sin(radians(meanAnomaly)) +
		0.020*math.Sin(radians(2*meanAnomaly)) +
		282.634
	trueLongitude = wrapDegrees(trueLongitude)

	rightAscension := degrees(math.Atan(0.91764 * math.Tan(radians(trueLongitude))))
	rightAscension = wrapDegrees(rightAscension)
	// Pull the right ascension into the same quadrant as the true longitude.
	rightAscension += math.Floor(trueLongitude/90)*90 - math.Floor(rightAscension/90)*90
	rightAscension /= 15

	sinDeclination := 0.39782 * math.Sin(radians(trueLongitude))
	cosDeclination := math.Cos(math.Asin(sinDeclination))

	cosHourAngle := (math.Cos(radians(c.zenith)) - sinDeclination*math.Sin(radians(latitude))) /
		(cosDeclination * math.Cos(radians(latitude)))
	if cosHourAngle > 1 {
		return 0, models.TransitionPolarNight
	}
	if cosHourAngle < -1 {
		return 0, models.TransitionPolarDay
	}

	var hourAngle float64
	if e == sunriseEvent {
		hourAngle = 360 - degrees(math.Acos(cosHourAngle))
	} else {
		hourAngle = degrees(math.Acos(cosHourAngle))
	}
	hourAngle /= 15

	localMean := hourAngle + rightAscension - 0.06571*t - 6.622
	return wrapHours(localMean - lngHour), models.TransitionNormal
}

// noonAltitude returns the sun's elevation in degrees at local solar noon,
// i.e. the day's maximum altitude.
func (c *Calculator) noonAltitude(date models.Date, latitude, longitude float64) float64 {
	// Solar noon in UTC is 12h shifted by the longitude hour.
	noonUTC := wrapHours(12 - longitude/15)
	at := clockTime(date, noonUTC, time.UTC)
	pos := suncalc.GetPosition(at, latitude, longitude)
	return degrees(pos.Altitude)
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

func degrees(rad float64) float64 { return rad * 180 / math.Pi }

// wrapDegrees normalizes an angle into [0, 360).
func wrapDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// wrapHours normalizes a time value into [0, 24).
func wrapHours(h float64) float64 {
	h = math.Mod(h, 24)
	if h < 0 {
		h += 24
	}
	return h
}

// clockTime places fractional hours onto the given date in loc, rounded to
// the nearest second.
func clockTime(date models.Date, hours float64, loc *time.Location) time.Time {
	secs := int(math.Round(hours * 3600))
	return time.Date(date.Year, date.Month, date.Day, 0, 0, secs, 0, loc)
}

// FixedZone builds a fixed-offset zone named like "UTC+02:00" from an offset
// in hours. Fractional offsets (e.g. +5.75 for Kathmandu) are preserved.
func FixedZone(offsetHours float64) *time.Location {
	secs := int(math.Round(offsetHours * 3600))
	if secs == 0 {
		return time.UTC
	}
	sign := "+"
	abs := secs
	if secs < 0 {
		sign = "-"
		abs = -secs
	}
	name := "UTC" + sign + twoDigits(abs/3600) + ":" + twoDigits(abs%3600/60)
	return time.FixedZone(name, secs)
}

func twoDigits(n int) string {
	return string([]byte{byte('0' + n/10), byte('0' + n%10)})
}
