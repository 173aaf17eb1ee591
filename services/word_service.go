package services

import (
	"math/rand"

	"github.com/ErikWohl/ODE-Project-skribbl-io-Backend/persistence"
	"github.com/ErikWohl/ODE-Project-skribbl-io-Backend/words"
)

// WordService turns a stored dictionary into the in-memory word source
// the game draws offers from. Loading happens once at startup; the
// offer-count precondition is enforced here so a misconfigured
// deployment fails before the first round instead of hanging in it.
type WordService struct {
	store persistence.Store
}

func NewWordService(store persistence.Store) *WordService {
	return &WordService{store: store}
}

func (s *WordService) LoadSource(language string, offerCount int, rnd *rand.Rand) (*words.Source, error) {
	list, err := s.store.LoadWords(language)
	if err != nil {
		return nil, err
	}
	return words.NewSource(list, offerCount, rnd)
}

// Seed stores a word list for a language, ignoring duplicates.
func (s *WordService) Seed(language string, list []string) error {
	return s.store.AddWords(language, list)
}
