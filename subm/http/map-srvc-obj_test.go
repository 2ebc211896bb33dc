package http

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/handlewall/backend/subm"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeHandle(t *testing.T) {
	cases := map[string]string{
		"":                   "https://",
		"ann":                "https://ann",
		"@ann":               "https://@ann",
		"http://x.com/ann":   "http://x.com/ann",
		"https://x.com/ann":  "https://x.com/ann",
		"HTTP://x.com/ann":   "https://HTTP://x.com/ann",
		"ftp://x.com/ann":    "https://ftp://x.com/ann",
		" https://x.com/ann": "https:// https://x.com/ann",
		"httpsx.com":         "https://httpsx.com",
	}
	for in, want := range cases {
		assert.Equal(t, want, normalizeHandle(in), in)
	}
}

func TestMapSubmKeepsRawRecord(t *testing.T) {
	s := subm.Subm{
		UUID:         uuid.New(),
		Name:         "Ann",
		SocialHandle: "ann",
		CreatedAt:    time.Date(2026, 5, 4, 3, 2, 1, 5e6, time.FixedZone("EET", 2*3600)),
	}
	view := mapSubm(s)

	assert.Equal(t, "https://ann", view.SocialHandle)
	assert.Equal(t, "ann", s.SocialHandle)
	assert.NotNil(t, view.Images)
	assert.Equal(t, "2026-05-04T01:02:01.005Z", view.CreatedAt)
	assert.Equal(t, s.UUID.String(), view.ID)
}
