// Package report renders a computed sighting as console text.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/devskill-org/peaklight/sighting"
	"github.com/devskill-org/peaklight/utils"
)

// Writer prints sighting results to an output stream.
type Writer struct {
	out   io.Writer
	style Styler
}

// NewWriter returns a Writer for out. A nil style means PlainStyler.
func NewWriter(out io.Writer, style Styler) *Writer {
	if style == nil {
		style = PlainStyler{}
	}
	return &Writer{out: out, style: style}
}

// Write prints res. When crossCheck is non-nil its crossing time is listed
// with the difference from res.
func (w *Writer) Write(res *sighting.Result, crossCheck *sighting.Result) error {
	var b strings.Builder
	peak := res.Peak.Name
	search := res.Search
	zone := search.Sunrise.Location().String()

	heading := fmt.Sprintf("%s sighting for %s", peak, res.Date.Format(time.DateOnly))
	if res.Region != "" {
		heading += " (" + res.Region + ")"
	}
	fmt.Fprintln(&b, w.style.Heading(heading))
	fmt.Fprintf(&b, "Distance between our location and %s is %.2f km\n", peak, res.DistanceKm)
	fmt.Fprintf(&b, "%s is %.0f meters tall\n", peak, res.Peak.Height())
	fmt.Fprintf(&b, "Altitude angle of %s from the current location is %.2f degrees\n", peak, res.AltitudeAngle)
	fmt.Fprintf(&b, "Sunrise time on %s in %s timezone is %s\n",
		res.Date.Format(time.DateOnly), zone, utils.GetClockString(search.Sunrise))
	fmt.Fprintf(&b, "Time when the sun reaches the altitude angle %.4f degrees is %s (sun at %.4f degrees, %s model)\n",
		res.AltitudeAngle, utils.GetClockString(search.Target), search.Achieved, res.Model)

	if delta, ok := res.ReferenceDelta(); ok {
		fmt.Fprintf(&b, "Recorded sighting was at %s (prediction %s)\n",
			utils.GetClockString(*res.Reference), utils.FormatSignedDuration(delta))
	}
	if crossCheck != nil {
		fmt.Fprintf(&b, "Cross-check with %s model: %s (%s)\n",
			crossCheck.Model, utils.GetClockString(crossCheck.Search.Target),
			utils.FormatSignedDuration(crossCheck.Search.Target.Sub(search.Target)))
	}

	fmt.Fprintln(&b, w.style.Rule())
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, w.style.Emphasis(fmt.Sprintf("Time when the sun reaches the peak of %s from our observing location is %s.",
		peak, utils.GetClockString(search.Target))))
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, w.style.Rule())

	if _, err := io.WriteString(w.out, b.String()); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
