package domain

import (
	"strings"
	"time"
	"unicode"
)

// Notification is a registration request record, keyed by the normalized
// winery name.
type Notification struct {
	RequestDate          time.Time `firestore:"requestDate" json:"requestDate"`
	WineryName           string    `firestore:"wineryName" json:"wineryName"`
	WineryEmail          string    `firestore:"wineryEmail" json:"wineryEmail"`
	WineryPhone          string    `firestore:"wineryPhone" json:"wineryPhone"`
	WineryRepresentative string    `firestore:"wineryRepresentative" json:"wineryRepresentative"`
}

// NormalizeName derives the record key from a winery name: all whitespace
// stripped, lowercased. Distinct names may normalize to the same key; the
// store then reports the record as already existing.
func NormalizeName(name string) string {
	stripped := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}

		return r
	}, name)

	return strings.ToLower(stripped)
}
