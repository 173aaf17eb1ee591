// persistence/interface.go
package persistence

import (
	"errors"
)

// Store holds the word dictionary. The game never talks to it directly;
// the word service loads the dictionary once at startup and hands the
// game an in-memory source.
type Store interface {
	// LoadWords returns every word stored for a language.
	LoadWords(language string) ([]string, error)
	// AddWords inserts words for a language, ignoring duplicates.
	AddWords(language string, words []string) error
	Close() error
}

var ErrNoWords = errors.New("no words stored for language")
