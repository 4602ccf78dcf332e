// Package util provides small formatting helpers shared by the dashboard.
package util

import "strconv"

// Pluralize returns singular if count is 1, otherwise plural.
func Pluralize(count int, singular, plural string) string {
	if count == 1 {
		return singular
	}
	return plural
}

// CountOf formats count with the matching noun, as in "1 process" or "3 processes".
func CountOf(count int, singular, plural string) string {
	return strconv.Itoa(count) + " " + Pluralize(count, singular, plural)
}
