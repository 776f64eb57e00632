package trie

import (
	"errors"
	"fmt"
)

// ErrInvalidCharacter is returned when a word holds a character outside the
// alphabet of the trie.
var ErrInvalidCharacter = errors.New("invalid character")

// InvalidCharacterError records which character was rejected and where.
type InvalidCharacterError struct {
	Char   rune
	Offset int // byte offset in the inserted word, -1 when not inserting a word
}

func (e *InvalidCharacterError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("%s: %q", ErrInvalidCharacter, e.Char)
	}
	return fmt.Sprintf("%s: %q at offset %d", ErrInvalidCharacter, e.Char, e.Offset)
}

func (e *InvalidCharacterError) Unwrap() error {
	return ErrInvalidCharacter
}
