package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDateTime(t *testing.T) {
	at := time.Date(2026, time.October, 19, 14, 5, 0, 0, time.Local)
	assert.Equal(t, "19 Okt 2026, 14.05", FormatDateTime(at))
	assert.Equal(t, "1 Mei 2026, 09.30", FormatDateTime(time.Date(2026, time.May, 1, 9, 30, 0, 0, time.Local)))
	assert.Empty(t, FormatDateTime(time.Time{}))
	assert.Empty(t, FormatDateTimePtr(nil))
}

func TestMaskNumber(t *testing.T) {
	assert.Equal(t, "••••••••••••3456", MaskNumber("3171 0123 4567 3456", 4))
	assert.Equal(t, "123", MaskNumber("123", 4))
	assert.Empty(t, MaskNumber("", 4))
}

func TestResolveImageURL(t *testing.T) {
	base := "http://localhost:3000/api"
	assert.Equal(t, "http://localhost:3000/api/uploads/a.png", ResolveImageURL(base, "/uploads/a.png"))
	assert.Equal(t, "https://cdn.example.com/a.png", ResolveImageURL(base, "https://cdn.example.com/a.png"))
	assert.Equal(t, "data:image/png;base64,AA==", ResolveImageURL(base, "data:image/png;base64,AA=="))
	assert.Empty(t, ResolveImageURL(base, ""))
}
