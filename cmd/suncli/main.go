package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"sunchart-api/internal/geocode"
	"sunchart-api/internal/models"
	"sunchart-api/internal/solar"
)

func main() {
	place := flag.String("place", "", "Place name to resolve (e.g. \"Reykjavik, Iceland\")")
	lat := flag.Float64("lat", 0, "Latitude in degrees, used when --place is not given")
	lon := flag.Float64("lon", 0, "Longitude in degrees, used when --place is not given")
	offset := flag.Float64("offset", 0, "UTC offset in hours, used when --place is not given")
	dateFlag := flag.String("date", "", "Date (YYYY-MM-DD), defaults to today")
	flag.Parse()

	date := models.DateOf(time.Now())
	if *dateFlag != "" {
		parsed, err := models.ParseDate(*dateFlag)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		date = parsed
	}

	location := models.Location{Latitude: *lat, Longitude: *lon, UTCOffset: *offset}
	if *place != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		resolved, err := geocode.NewClient("", 0).Resolve(ctx, *place)
		if err != nil {
			fmt.Printf("Error resolving %q: %v\n", *place, err)
			os.Exit(1)
		}
		location = resolved
		fmt.Printf("%s, %s (%.4f, %.4f)\n", location.Name, location.Country, location.Latitude, location.Longitude)
	}

	rec, err := solar.NewCalculator().Day(date, location.Latitude, location.Longitude, location.UTCOffset)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	switch rec.Transition {
	case models.TransitionPolarDay:
		fmt.Printf("%s: polar day, the sun does not set\n", rec.Date)
	case models.TransitionPolarNight:
		fmt.Printf("%s: polar night, the sun does not rise\n", rec.Date)
	default:
		length := rec.DayLength.Round(time.Minute)
		fmt.Printf("Sunrise at: %s\n", rec.Sunrise.Format("15:04"))
		fmt.Printf("Sunset at: %s\n", rec.Sunset.Format("15:04"))
		fmt.Printf("Day length: %02d:%02d\n", int(length.Hours()), int(length.Minutes())%60)
	}
}
