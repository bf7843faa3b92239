package app

import (
	"strings"

	"github.com/SzymonSkrzypczyk/calc-wizard/internal/validate"
)

const maxNoteLength = 200

// noteInput is the note editor's value as submitted.
type noteInput struct {
	Text string `json:"note" validate:"max=200,nocontrol"`
}

// SanitizeNote trims the note and folds line breaks and tabs into spaces.
func SanitizeNote(note string) string {
	note = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' || r == '\t' {
			return ' '
		}
		return r
	}, note)
	return strings.TrimSpace(note)
}

// ValidateNote checks a sanitized note before it is stored.
func ValidateNote(note string) error {
	return validate.Struct(&noteInput{Text: note})
}
