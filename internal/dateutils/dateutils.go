// Package dateutils provides the date layouts used by the bank statement
// parsers. Every bank prints dates in exactly one convention per format
// variant, so parsing is strict: a value either matches the bank's layout or
// the owning row is dropped.
package dateutils

import (
	"strings"
	"time"
)

// Layouts observed across supported statement formats.
const (
	LayoutSlashShortYear = "02/01/06"     // HDFC, Central Bank, Indian Bank
	LayoutSlash          = "02/01/2006"   // Axis F1, Punjab & Sind, Federal
	LayoutDash           = "02-01-2006"   // Axis F2, BoB, BoI, Canara, ICICI, UCO, Union
	LayoutSpaceMonth     = "02 Jan 2006"  // AU, IndusInd, Kotak, SBI, YES
	LayoutDashMonth      = "02-Jan-2006"  // Equitas, IDFC First, IOB, Dhanlaxmi
	LayoutDashMonthShort = "02-Jan-06"    // IDBI F2
	LayoutLongMonth      = "January2,2006" // Bandhan (day and month fuse in extraction)
)

// Parse parses a date string with the given bank layout. The zero time and
// false are returned when the value does not conform; callers drop the row.
func Parse(value, layout string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(layout, value)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ParseSpaceMonth handles the "2 Jan 2006" family where the day may be one or
// two digits (SBI prints single-digit days without padding).
func ParseSpaceMonth(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse("02 Jan 2006", value); err == nil {
		return t, true
	}
	if t, err := time.Parse("2 Jan 2006", value); err == nil {
		return t, true
	}
	return time.Time{}, false
}
