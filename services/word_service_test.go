package services

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/ErikWohl/ODE-Project-skribbl-io-Backend/persistence"
	"github.com/ErikWohl/ODE-Project-skribbl-io-Backend/words"
)

// MockStore is a test double for the persistence.Store interface.
type MockStore struct {
	words  map[string][]string
	seeded map[string][]string
}

func newMockStore() *MockStore {
	return &MockStore{
		words:  make(map[string][]string),
		seeded: make(map[string][]string),
	}
}

func (m *MockStore) LoadWords(language string) ([]string, error) {
	list, ok := m.words[language]
	if !ok {
		return nil, persistence.ErrNoWords
	}
	return list, nil
}

func (m *MockStore) AddWords(language string, list []string) error {
	m.seeded[language] = append(m.seeded[language], list...)
	return nil
}

func (m *MockStore) Close() error { return nil }

func TestLoadSource(t *testing.T) {
	store := newMockStore()
	store.words["en"] = []string{"Test", "foo", "bar", "lorem", "ipsum"}
	svc := NewWordService(store)

	source, err := svc.LoadSource("en", 3, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("LoadSource failed: %v", err)
	}
	if source.Len() != 5 {
		t.Errorf("source holds %d words, want 5", source.Len())
	}
}

func TestLoadSource_UnknownLanguage(t *testing.T) {
	svc := NewWordService(newMockStore())

	_, err := svc.LoadSource("de", 3, rand.New(rand.NewSource(1)))
	if !errors.Is(err, persistence.ErrNoWords) {
		t.Fatalf("error = %v, want ErrNoWords", err)
	}
}

func TestLoadSource_TooFewWordsForOffer(t *testing.T) {
	store := newMockStore()
	store.words["en"] = []string{"foo", "bar"}
	svc := NewWordService(store)

	_, err := svc.LoadSource("en", 3, rand.New(rand.NewSource(1)))
	if !errors.Is(err, words.ErrNotEnoughWords) {
		t.Fatalf("error = %v, want ErrNotEnoughWords", err)
	}
}

func TestSeed(t *testing.T) {
	store := newMockStore()
	svc := NewWordService(store)

	if err := svc.Seed("en", []string{"foo", "bar"}); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	if got := len(store.seeded["en"]); got != 2 {
		t.Errorf("store received %d words, want 2", got)
	}
}
