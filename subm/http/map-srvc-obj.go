package http

import (
	"strings"

	"github.com/handlewall/backend/subm"
)

// createdAtLayout is RFC 3339 in UTC with millisecond precision.
const createdAtLayout = "2006-01-02T15:04:05.000Z07:00"

func mapSubm(s subm.Subm) SubmView {
	images := s.Images
	if images == nil {
		images = []string{}
	}
	return SubmView{
		ID:           s.UUID.String(),
		Name:         s.Name,
		SocialHandle: normalizeHandle(s.SocialHandle),
		Images:       images,
		CreatedAt:    s.CreatedAt.UTC().Format(createdAtLayout),
	}
}

func mapSubmList(subms []subm.Subm) []SubmView {
	res := make([]SubmView, 0, len(subms))
	for _, s := range subms {
		res = append(res, mapSubm(s))
	}
	return res
}

// normalizeHandle turns a bare handle into a link. The prefix test is case
// sensitive, so "HTTP://x" gets prefixed too.
func normalizeHandle(handle string) string {
	if strings.HasPrefix(handle, "http://") || strings.HasPrefix(handle, "https://") {
		return handle
	}
	return "https://" + handle
}
