package repository

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// codeAlphabet restricts quiz codes to characters that are unambiguous to
// read back over the phone or a projector.
const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// CodeLength is the length of a shareable quiz code.
const CodeLength = 6

// NewQuizCode generates a candidate quiz code. Uniqueness is enforced by the
// store that persists it, not here.
func NewQuizCode() (string, error) {
	return gonanoid.Generate(codeAlphabet, CodeLength)
}
