package docmodel

import (
	"unicode"

	"github.com/google/uuid"
)

// IsValidSId reports whether s is a valid identifier: a letter or
// underscore followed by letters, digits and underscores.
func IsValidSId(s string) bool {
	if s == "" {
		return false
	}
	for i, c := range s {
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

// IsValidUnitSId reports whether s is a valid unit identifier. Unit
// identifiers share the identifier syntax but live in their own namespace.
func IsValidUnitSId(s string) bool { return IsValidSId(s) }

// IsValidMetaID reports whether s is a valid XML ID.
func IsValidMetaID(s string) bool {
	if s == "" {
		return false
	}
	for i, c := range s {
		switch {
		case c == '_', unicode.IsLetter(c):
		case i > 0 && (c == '.' || c == '-' || unicode.IsDigit(c) || unicode.Is(unicode.Mn, c) || unicode.Is(unicode.Mc, c)):
		default:
			return false
		}
	}
	return true
}

// NewMetaID returns a fresh, valid meta identifier.
func NewMetaID() string {
	return "meta_" + uuid.NewString()
}
