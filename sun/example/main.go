// Package main provides an example comparing the solar models for sunrise and elevation.
package main

import (
	"fmt"
	"time"

	"github.com/devskill-org/peaklight/geo"
	"github.com/devskill-org/peaklight/sun"
)

func main() {
	observer := geo.GeoPoint{Latitude: 49.33100, Longitude: -123.26207} // West Vancouver
	loc, err := time.LoadLocation("America/Vancouver")
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	date := time.Date(2024, time.November, 11, 0, 0, 0, 0, loc)

	for _, model := range []string{sun.ModelSunCalc, sun.ModelNOAA} {
		p, err := sun.New(model)
		if err != nil {
			fmt.Println("Error:", err)
			return
		}
		p = sun.WithRefraction(p)

		rise, err := p.Sunrise(observer, date)
		if err != nil {
			fmt.Println("Error:", err)
			return
		}

		fmt.Printf("%s\n", p.Name())
		fmt.Println("  Sunrise:", rise.In(loc).Format(time.TimeOnly))
		for _, offset := range []time.Duration{0, 15 * time.Minute, 30 * time.Minute, time.Hour} {
			at := rise.Add(offset)
			fmt.Printf("  %s  Altitude: %.3f°\n", at.In(loc).Format(time.TimeOnly), p.Elevation(observer, at))
		}
	}
}
