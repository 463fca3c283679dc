// Package duration turns second counts from routing engines and GPX tracks
// into the coarse breakdown shown next to a trip.
package duration

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// Approximate unit lengths in seconds.
const (
	Year   = 31536000 // 365 days
	Month  = 2592000  // 30 days
	Day    = 86400
	Hour   = 3600
	Minute = 60
)

// Breakdown is a duration split into calendar-ish units. Only the units that
// are present are set.
type Breakdown struct {
	Years   *int `json:"years,omitempty"`
	Months  *int `json:"months,omitempty"`
	Days    *int `json:"days,omitempty"`
	Hours   *int `json:"hours,omitempty"`
	Minutes *int `json:"minutes,omitempty"`
	Seconds *int `json:"seconds,omitempty"`
}

func positive(v int) *int {
	if v > 0 {
		return &v
	}
	return nil
}

// ClassifyDuration floors totalSeconds and splits it into units. Each unit
// counts within one period of the next larger fixed length, so a 365 day
// year leaves 5 days over the 30 day months: one year reads "1 y 5 d". Every unit
// except seconds is set when nonzero. Seconds are set only when the whole
// duration is under a minute, or when minutes and leftover seconds are the
// only parts: "5 min 3 s" keeps its seconds, "2 h 5 s" drops them.
//
// ok is false for NaN and infinite input, which has no breakdown.
func ClassifyDuration(totalSeconds float64) (b Breakdown, ok bool) {
	if math.IsNaN(totalSeconds) || math.IsInf(totalSeconds, 0) {
		return Breakdown{}, false
	}

	total := int(math.Floor(totalSeconds))
	years := total / Year
	months := (total % Year) / Month
	days := (total % Month) / Day
	hours := (total % Day) / Hour
	minutes := (total % Hour) / Minute
	secs := total % Minute

	b = Breakdown{
		Years:   positive(years),
		Months:  positive(months),
		Days:    positive(days),
		Hours:   positive(hours),
		Minutes: positive(minutes),
	}

	largerUnits := b.Years != nil || b.Months != nil || b.Days != nil || b.Hours != nil
	if total < Minute || (minutes > 0 && secs > 0 && !largerUnits) {
		b.Seconds = &secs
	}
	return b, true
}

// ClassifyValue classifies dynamically typed input, such as a decoded JSON
// field. Numbers yield a Breakdown; NaN, infinities and non-numeric values
// are returned unchanged.
func ClassifyValue(v any) any {
	var seconds float64
	switch n := v.(type) {
	case float64:
		seconds = n
	case float32:
		seconds = float64(n)
	case int:
		seconds = float64(n)
	case int64:
		seconds = float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return v
		}
		seconds = f
	default:
		return v
	}

	b, ok := ClassifyDuration(seconds)
	if !ok {
		return v
	}
	return b
}

// Format renders b in a narrow English style, e.g. "1 min 5 s" or "2 h".
func Format(b Breakdown) string {
	parts := make([]string, 0, 6)
	add := func(v *int, unit string) {
		if v != nil {
			parts = append(parts, fmt.Sprintf("%d %s", *v, unit))
		}
	}
	add(b.Years, "y")
	add(b.Months, "mo")
	add(b.Days, "d")
	add(b.Hours, "h")
	add(b.Minutes, "min")
	add(b.Seconds, "s")
	return strings.Join(parts, " ")
}

// FormatSeconds classifies and formats in one step. NaN and infinite input
// yields an empty string.
func FormatSeconds(totalSeconds float64) string {
	b, ok := ClassifyDuration(totalSeconds)
	if !ok {
		return ""
	}
	return Format(b)
}
