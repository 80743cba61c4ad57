// Package util contains small helpers shared across packages.
package util

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FoldEqual returns whether the two strings are equal under Unicode case
// folding. A new Caser is created on every call, so it is safe to call from
// multiple goroutines.
func FoldEqual(s1, s2 string) bool {
	folder := cases.Fold()
	return folder.String(s1) == folder.String(s2)
}

// Fold returns the case-folded form of s, suitable for use as a map key when
// case-insensitive lookup is wanted.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// Title gives s with the first letter of each word upper-cased using English
// casing rules.
func Title(s string) string {
	return cases.Title(language.English).String(s)
}
