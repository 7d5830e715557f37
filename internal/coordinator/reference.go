package coordinator

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const maxSlugLen = 24

// NewReference builds a URL-safe booking reference from a normalized form of
// the main participant's name plus a uniqueness token. It is generated once
// per draft and never regenerated.
func NewReference(name string) string {
	return fmt.Sprintf("bk-%s-%s", slugify(name), uuid.NewString()[:8])
}

func slugify(name string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
		if b.Len() >= maxSlugLen {
			break
		}
	}

	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		return "guest"
	}
	return slug
}
