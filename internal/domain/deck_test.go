package domain

import "testing"

func TestValidComposition(t *testing.T) {
	good := make([]Suit, DeckSize)
	for i := range good {
		good[i] = Rock
	}
	if !ValidComposition(good) {
		t.Fatal("expected valid composition")
	}

	tooShort := good[:DeckSize-1]
	if ValidComposition(tooShort) {
		t.Fatal("expected invalid composition for wrong length")
	}

	bad := make([]Suit, DeckSize)
	copy(bad, good)
	bad[0] = "fire"
	if ValidComposition(bad) {
		t.Fatal("expected invalid composition for bad suit")
	}
}

func TestMaterializeDeck(t *testing.T) {
	composition := make([]Suit, DeckSize)
	for i := range composition {
		composition[i] = Paper
	}
	deck, err := MaterializeDeck(composition, func(s Suit) (Card, error) {
		return Card{Suit: s, Power: 7}, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(deck) != DeckSize {
		t.Fatalf("expected %d cards, got %d", DeckSize, len(deck))
	}
	for _, c := range deck {
		if c.Suit != Paper || c.Power != 7 {
			t.Fatalf("unexpected card: %v", c)
		}
	}
}

func TestDrawUpToFullHand(t *testing.T) {
	deck := Deck{{Rock, 1}, {Rock, 2}, {Rock, 3}, {Rock, 4}, {Rock, 5}}
	remaining, hand := DrawUpTo(deck, HandDrawSize)
	if len(hand) != 3 {
		t.Fatalf("expected hand of 3, got %d", len(hand))
	}
	if len(remaining) != 2 {
		t.Fatalf("expected 2 remaining, got %d", len(remaining))
	}
}

func TestDrawUpToFinalShortHand(t *testing.T) {
	deck := Deck{{Rock, 1}, {Rock, 2}}
	remaining, hand := DrawUpTo(deck, HandDrawSize)
	if len(hand) != 2 {
		t.Fatalf("expected final hand of 2, got %d", len(hand))
	}
	if len(remaining) != 0 {
		t.Fatalf("expected empty deck, got %d", len(remaining))
	}
}

func TestDeckValueScanRoundTrip(t *testing.T) {
	deck := Deck{{Rock, 4}, {Paper, 9}}
	val, err := deck.Value()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var out Deck
	if err := out.Scan(val); err != nil {
		t.Fatalf("unexpected scan error: %v", err)
	}
	if len(out) != 2 || out[0] != deck[0] || out[1] != deck[1] {
		t.Fatalf("round trip mismatch: %v", out)
	}

	var empty Deck
	if err := empty.Scan(nil); err != nil {
		t.Fatalf("unexpected error scanning nil: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected empty deck from nil, got %v", empty)
	}
}
