package words

import (
	"errors"
	"math/rand"
	"strings"
)

var (
	// ErrNotEnoughWords means the dictionary holds fewer distinct words
	// than a single offer needs. Checked at construction time so the
	// rejection sampling in Offer can never loop forever.
	ErrNotEnoughWords = errors.New("word source has fewer distinct words than the offer count")
	ErrEmptySource    = errors.New("word source is empty")
)

// Source is a read-only dictionary of distinct words the drawer can be
// offered. Offers are independent uniform draws without duplicates.
type Source struct {
	words []string
	rnd   *rand.Rand
}

// NewSource deduplicates the given list and verifies it can satisfy an
// offer of offerCount words.
func NewSource(list []string, offerCount int, rnd *rand.Rand) (*Source, error) {
	seen := make(map[string]struct{}, len(list))
	distinct := make([]string, 0, len(list))
	for _, w := range list {
		if w == "" {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		distinct = append(distinct, w)
	}

	if len(distinct) == 0 {
		return nil, ErrEmptySource
	}
	if offerCount > len(distinct) {
		return nil, ErrNotEnoughWords
	}
	return &Source{words: distinct, rnd: rnd}, nil
}

// Offer draws n distinct words, duplicate draws are retried. Order of
// the result is draw order. n must not exceed the distinct word count;
// NewSource guarantees that for the configured offer size.
func (s *Source) Offer(n int) []string {
	offer := make([]string, 0, n)
	taken := make(map[string]struct{}, n)
	for len(offer) < n {
		w := s.words[s.rnd.Intn(len(s.words))]
		if _, ok := taken[w]; ok {
			continue
		}
		taken[w] = struct{}{}
		offer = append(offer, w)
	}
	return offer
}

// Len returns the number of distinct words in the source.
func (s *Source) Len() int {
	return len(s.words)
}

// Contains reports whether word is part of the given offer.
func Contains(offer []string, word string) bool {
	for _, w := range offer {
		if w == word {
			return true
		}
	}
	return false
}

// Join renders an offer in its wire form.
func Join(offer []string) string {
	return strings.Join(offer, ";")
}
