// Package durfmt renders elapsed times as compact human readable strings such
// as "1s 250ms 12µs", splitting the value into minutes, seconds, milliseconds
// and a rounded microsecond remainder.
package durfmt

import (
	"math"
	"strconv"
	"time"
)

// Format renders d with FormatMillis. Negative durations render as zero.
func Format(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	return FormatMillis(float64(d) / float64(time.Millisecond))
}

// FormatMillis renders a number of milliseconds. Whole units are emitted from
// the largest down; anything at or below one millisecond is rounded to
// microseconds.
func FormatMillis(ms float64) string {
	if ms <= 1 {
		return num(math.Round(ms*1000)) + "µs"
	}
	if ms < 1000 {
		whole := math.Floor(ms)
		return num(whole) + "ms " + FormatMillis(ms-whole)
	}

	sec := ms / 1000
	if sec < 60 {
		whole := math.Floor(sec)
		return num(whole) + "s " + FormatMillis(ms-whole*1000)
	}

	mins := sec / 60
	return num(math.Floor(mins)) + "m " + FormatMillis(math.Mod(sec, 60)*1000)
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
