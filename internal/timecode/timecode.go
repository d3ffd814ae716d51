// Package timecode converts between human time strings and seconds.
package timecode

import (
	"fmt"
	"strconv"
	"strings"
)

// Time unit constants
const (
	SecondsPerHour   = 3600
	SecondsPerMinute = 60
)

// Range is a fully-resolved clip range in seconds.
type Range struct {
	Start float64
	End   float64
}

// Parse converts a time string to seconds. Accepted forms are bare seconds
// (fractional allowed), MM:SS and HH:MM:SS. The second return value is false
// when the input is empty or malformed; callers cannot distinguish the two.
func Parse(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	// Already a number
	if sec, err := strconv.ParseFloat(s, 64); err == nil {
		return sec, true
	}

	parts := strings.Split(s, ":")
	switch len(parts) {
	case 2:
		minutes, err1 := strconv.ParseFloat(parts[0], 64)
		seconds, err2 := strconv.ParseFloat(parts[1], 64)
		if err1 != nil || err2 != nil {
			return 0, false
		}
		return minutes*SecondsPerMinute + seconds, true
	case 3:
		hours, err1 := strconv.ParseFloat(parts[0], 64)
		minutes, err2 := strconv.ParseFloat(parts[1], 64)
		seconds, err3 := strconv.ParseFloat(parts[2], 64)
		if err1 != nil || err2 != nil || err3 != nil {
			return 0, false
		}
		return hours*SecondsPerHour + minutes*SecondsPerMinute + seconds, true
	}

	return 0, false
}

// FormatForFilename renders seconds as a filename-safe token: MM-SS below one
// hour, HH-MM-SS from one hour up, zero-padded. Returns "" when ok is false.
func FormatForFilename(seconds float64, ok bool) string {
	if !ok {
		return ""
	}

	total := int(seconds)
	if total >= SecondsPerHour {
		h := total / SecondsPerHour
		m := (total % SecondsPerHour) / SecondsPerMinute
		s := total % SecondsPerMinute
		return fmt.Sprintf("%02d-%02d-%02d", h, m, s)
	}

	m := total / SecondsPerMinute
	s := total % SecondsPerMinute
	return fmt.Sprintf("%02d-%02d", m, s)
}

// NewRange applies the both-or-neither rule to raw start/end strings.
// Both resolvable yields (range, true, nil); both absent or malformed yields
// (zero, false, nil); exactly one resolvable is a validation error.
func NewRange(start, end string) (Range, bool, error) {
	startSec, hasStart := Parse(start)
	endSec, hasEnd := Parse(end)

	if hasStart != hasEnd {
		return Range{}, false, fmt.Errorf("both start and end time required for partial download")
	}
	if !hasStart {
		return Range{}, false, nil
	}
	return Range{Start: startSec, End: endSec}, true, nil
}

// Suffix renders the range as a "MM-SS_to_MM-SS" filename fragment.
func (r Range) Suffix() string {
	return FormatForFilename(r.Start, true) + "_to_" + FormatForFilename(r.End, true)
}
