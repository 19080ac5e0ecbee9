package utils

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"
	"unicode"
)

var shortMonths = [...]string{"Jan", "Feb", "Mar", "Apr", "Mei", "Jun", "Jul", "Agu", "Sep", "Okt", "Nov", "Des"}

// FormatDateTime renders t the way the dashboard does (id-ID, medium date,
// short time): "19 Okt 2026, 14.05". The zero time renders empty.
func FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	t = t.Local()
	return fmt.Sprintf("%d %s %d, %02d.%02d", t.Day(), shortMonths[t.Month()-1], t.Year(), t.Hour(), t.Minute())
}

// FormatDateTimePtr is FormatDateTime for optional timestamps
func FormatDateTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return FormatDateTime(*t)
}

// MaskNumber hides all but the last keep characters of an identity number.
// Whitespace is dropped first.
func MaskNumber(n string, keep int) string {
	if n == "" {
		return ""
	}
	s := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, n)

	runes := []rune(s)
	if keep < 0 || len(runes) <= keep {
		return s
	}
	return strings.Repeat("•", len(runes)-keep) + string(runes[len(runes)-keep:])
}

var absoluteURL = regexp.MustCompile(`(?i)^(https?:|blob:|data:)`)

// ResolveImageURL makes a stored image path absolute against the API base.
func ResolveImageURL(base, u string) string {
	if u == "" {
		return ""
	}
	if absoluteURL.MatchString(u) {
		return u
	}
	b, err := url.Parse(strings.TrimRight(base, "/") + "/")
	if err != nil {
		return ""
	}
	ref, err := url.Parse(strings.TrimLeft(u, "/"))
	if err != nil {
		return ""
	}
	return b.ResolveReference(ref).String()
}

// Deref returns *s or ""
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
