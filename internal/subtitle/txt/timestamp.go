package txt

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// frame rate assumed for hours:minutes:seconds:frames timecodes
const framesPerSecond = 25

// ParseTimestamp converts a timestamp token to a duration. The shape is picked
// by counting colon-separated parts:
//
//	12.5          seconds (comma or dot fraction)
//	01:02.5       minutes:seconds
//	01:02:03,250  hours:minutes:seconds
//	01:02:03:12   hours:minutes:seconds:frames at 25 fps
//
// Components are not range checked, so 00:75 is 75 seconds, but a total that
// does not fit in a time.Duration is malformed.
func ParseTimestamp(token string) (time.Duration, error) {
	token = strings.TrimSpace(token)
	parts := strings.Split(token, ":")

	units, ok := partUnits[len(parts)]
	if !ok {
		return 0, fmt.Errorf("%w: %q has %d colon-separated parts",
			ErrMalformedTimestamp, token, len(parts))
	}

	var total time.Duration
	last := len(parts) - 1
	for i, part := range parts {
		var (
			n    int
			frac time.Duration
			err  error
		)
		if i == last {
			n, frac, err = splitFraction(part)
		} else {
			n, err = parseWhole(part)
		}
		if err != nil {
			return 0, malformed(token, err)
		}
		// fractional frames are truncated
		if len(parts) == 4 {
			frac = 0
		}

		if total, err = addUnits(total, n, units[i]); err != nil {
			return 0, malformed(token, err)
		}
		if total, err = addUnits(total, int(frac), time.Nanosecond); err != nil {
			return 0, malformed(token, err)
		}
	}
	return total, nil
}

// unit of each colon-separated part, keyed by part count
var partUnits = map[int][]time.Duration{
	1: {time.Second},
	2: {time.Minute, time.Second},
	3: {time.Hour, time.Minute, time.Second},
	4: {time.Hour, time.Minute, time.Second, time.Second / framesPerSecond},
}

// adds n units to total, failing instead of wrapping past math.MaxInt64
func addUnits(total time.Duration, n int, unit time.Duration) (time.Duration, error) {
	if int64(n) > (math.MaxInt64-int64(total))/int64(unit) {
		return 0, fmt.Errorf("value %d out of range", n)
	}
	return total + time.Duration(n)*unit, nil
}

func malformed(token string, err error) error {
	return fmt.Errorf("%w: %q: %v", ErrMalformedTimestamp, token, err)
}

// splits "05,250" or "05.250" into whole seconds and the fractional duration;
// ".5" has a whole part of zero
func splitFraction(s string) (int, time.Duration, error) {
	whole, fraction := s, ""
	if i := strings.IndexAny(s, ".,"); i >= 0 {
		whole, fraction = s[:i], s[i+1:]
		if whole == "" && fraction != "" {
			whole = "0"
		}
	}

	n, err := parseWhole(whole)
	if err != nil {
		return 0, 0, err
	}
	if fraction == "" {
		return n, 0, nil
	}
	if !isDigits(fraction) {
		return 0, 0, fmt.Errorf("invalid fraction %q", fraction)
	}
	f, err := strconv.ParseFloat("0."+fraction, 64)
	if err != nil {
		return 0, 0, err
	}
	return n, time.Duration(math.Round(f * float64(time.Second))), nil
}

func parseWhole(s string) (int, error) {
	if !isDigits(s) {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return strconv.Atoi(s)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
