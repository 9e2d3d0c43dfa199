package domain

import (
	"math/rand"
	"testing"
)

func TestNewDeckHas52UniqueCards(t *testing.T) {
	d := NewDeck()
	if d.Size() != 52 {
		t.Fatalf("deck size = %d, want 52", d.Size())
	}

	seen := make(map[Card]bool)
	for _, c := range d.Deal(52) {
		if seen[c] {
			t.Fatalf("duplicate card %v", c)
		}
		seen[c] = true
	}
	if len(seen) != 52 {
		t.Fatalf("unique cards = %d, want 52", len(seen))
	}
}

func TestShuffledDeckStillComplete(t *testing.T) {
	d := NewDeck()
	d.Shuffle(rand.New(rand.NewSource(7)))

	seen := make(map[Card]bool)
	for _, c := range d.Deal(52) {
		seen[c] = true
	}
	if len(seen) != 52 {
		t.Fatalf("unique cards after shuffle = %d, want 52", len(seen))
	}
}

func TestDealPartialOnExhaustion(t *testing.T) {
	d := NewDeck()
	d.Deal(50)

	got := d.Deal(6)
	if len(got) != 2 {
		t.Fatalf("dealt %d cards from a 2-card deck, want 2", len(got))
	}
	if d.Size() != 0 {
		t.Fatalf("deck size = %d, want 0", d.Size())
	}
	if len(d.Deal(1)) != 0 {
		t.Fatal("dealing from an empty deck should return nothing")
	}
}
