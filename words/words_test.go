package words

import (
	"errors"
	"math/rand"
	"testing"
)

func newTestSource(t *testing.T, list []string, offerCount int) *Source {
	t.Helper()
	s, err := NewSource(list, offerCount, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewSource failed: %v", err)
	}
	return s
}

func TestNewSource_RejectsTooLargeOffer(t *testing.T) {
	_, err := NewSource([]string{"a", "b"}, 3, rand.New(rand.NewSource(1)))
	if !errors.Is(err, ErrNotEnoughWords) {
		t.Fatalf("error = %v, want ErrNotEnoughWords", err)
	}
}

func TestNewSource_CountsDistinctWordsOnly(t *testing.T) {
	// Three entries but only two distinct words.
	_, err := NewSource([]string{"a", "b", "a"}, 3, rand.New(rand.NewSource(1)))
	if !errors.Is(err, ErrNotEnoughWords) {
		t.Fatalf("error = %v, want ErrNotEnoughWords", err)
	}
}

func TestNewSource_RejectsEmpty(t *testing.T) {
	_, err := NewSource(nil, 1, rand.New(rand.NewSource(1)))
	if !errors.Is(err, ErrEmptySource) {
		t.Fatalf("error = %v, want ErrEmptySource", err)
	}
	_, err = NewSource([]string{""}, 1, rand.New(rand.NewSource(1)))
	if !errors.Is(err, ErrEmptySource) {
		t.Fatalf("error = %v, want ErrEmptySource", err)
	}
}

func TestOffer_DistinctDraws(t *testing.T) {
	list := []string{"Test", "foo", "bar", "lorem", "ipsum"}
	s := newTestSource(t, list, 3)

	// Repeated independent draws must always hold exactly n distinct
	// entries from the source.
	for i := 0; i < 100; i++ {
		offer := s.Offer(3)
		if len(offer) != 3 {
			t.Fatalf("Offer returned %d words, want 3", len(offer))
		}
		seen := make(map[string]struct{})
		for _, w := range offer {
			if !Contains(list, w) {
				t.Fatalf("Offer returned %q, not in source", w)
			}
			if _, dup := seen[w]; dup {
				t.Fatalf("Offer returned duplicate %q in %v", w, offer)
			}
			seen[w] = struct{}{}
		}
	}
}

func TestOffer_FullDictionary(t *testing.T) {
	s := newTestSource(t, []string{"a", "b", "c"}, 3)
	offer := s.Offer(3)
	if len(offer) != 3 {
		t.Fatalf("Offer returned %d words, want all 3", len(offer))
	}
}

func TestContains(t *testing.T) {
	offer := []string{"foo", "bar"}
	if !Contains(offer, "foo") {
		t.Error("Contains should find foo")
	}
	if Contains(offer, "lorem") {
		t.Error("Contains should not find lorem")
	}
	if Contains(nil, "foo") {
		t.Error("Contains on empty offer should be false")
	}
}

func TestJoin(t *testing.T) {
	if got := Join([]string{"a", "b", "c"}); got != "a;b;c" {
		t.Errorf("Join = %q, want %q", got, "a;b;c")
	}
}
