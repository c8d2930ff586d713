// Package textutil provides backend-neutral text transforms shared by the renderers.
package textutil

import (
	"strconv"
	"strings"
)

// Present is the sentinel end date for an ongoing role.
const Present = "present"

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// FormatDate converts "YYYY-MM" to "Month YYYY" and "present" to "Present".
// A bare year is returned unchanged, as is anything it cannot interpret.
func FormatDate(s string) string {
	if s == "" {
		return ""
	}
	if s == Present {
		return "Present"
	}

	year, month, ok := strings.Cut(s, "-")
	if !ok {
		return year
	}
	m, err := strconv.Atoi(month)
	if err != nil || m < 1 || m > 12 {
		return s
	}
	return monthNames[m-1] + " " + year
}

// FormatYear returns only the year part of a date, or "Present".
func FormatYear(s string) string {
	if s == Present {
		return "Present"
	}
	year, _, _ := strings.Cut(s, "-")
	return year
}

// ShortMonthYear formats a month number and year as "Jan 2024".
func ShortMonthYear(year string, month int) string {
	if month < 1 || month > 12 {
		return year
	}
	return monthNames[month-1][:3] + " " + year
}
