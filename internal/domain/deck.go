package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// DeckSize is the fixed number of cards a confirmed deck holds.
const DeckSize = 22

// HandDrawSize is the number of cards drawn into a hand per turn (fewer are
// drawn only when the deck runs low).
const HandDrawSize = 3

// Deck is an ordered sequence of cards remaining to be drawn. It implements
// sql.Scanner/driver.Valuer so sqlx can persist it as a single JSON column.
type Deck []Card

// Hand is the set of cards currently available to be played.
type Hand []Card

func (d Deck) Value() (driver.Value, error) {
	if d == nil {
		d = Deck{}
	}
	return json.Marshal([]Card(d))
}

func (d *Deck) Scan(src interface{}) error {
	cards, err := scanCards(src)
	if err != nil {
		return fmt.Errorf("scan Deck: %w", err)
	}
	*d = Deck(cards)
	return nil
}

func (h Hand) Value() (driver.Value, error) {
	if h == nil {
		h = Hand{}
	}
	return json.Marshal([]Card(h))
}

func (h *Hand) Scan(src interface{}) error {
	cards, err := scanCards(src)
	if err != nil {
		return fmt.Errorf("scan Hand: %w", err)
	}
	*h = Hand(cards)
	return nil
}

func scanCards(src interface{}) ([]Card, error) {
	if src == nil {
		return []Card{}, nil
	}
	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return nil, fmt.Errorf("unsupported source type %T", src)
	}
	if len(raw) == 0 {
		return []Card{}, nil
	}
	var cards []Card
	if err := json.Unmarshal(raw, &cards); err != nil {
		return nil, err
	}
	return cards, nil
}

// ValidComposition reports whether a deck-selection composition (a sequence
// of suit labels) satisfies §4.4.2: exactly DeckSize entries, each a valid
// suit.
func ValidComposition(composition []Suit) bool {
	if len(composition) != DeckSize {
		return false
	}
	for _, s := range composition {
		if !ValidSuit(s) {
			return false
		}
	}
	return true
}

// MaterializeDeck turns a composition into a concrete deck by drawing one
// random card per entry, using draw as the per-suit card source (normally
// RandomCardOfSuit, routed through the catalogue service in production).
func MaterializeDeck(composition []Suit, draw func(Suit) (Card, error)) (Deck, error) {
	if !ValidComposition(composition) {
		return nil, fmt.Errorf("composition must have exactly %d valid suit entries", DeckSize)
	}
	deck := make(Deck, 0, len(composition))
	for _, suit := range composition {
		card, err := draw(suit)
		if err != nil {
			return nil, err
		}
		deck = append(deck, card)
	}
	return deck, nil
}

// DrawUpTo removes up to n cards from the back of the deck and returns them
// as a hand. A deck with fewer than n cards yields its entire remainder —
// permitted only as the final hand per §4.4.3.
func DrawUpTo(deck Deck, n int) (Deck, Hand) {
	if len(deck) <= n {
		hand := make(Hand, len(deck))
		copy(hand, deck)
		return Deck{}, hand
	}
	cut := len(deck) - n
	hand := make(Hand, n)
	copy(hand, deck[cut:])
	remaining := make(Deck, cut)
	copy(remaining, deck[:cut])
	return remaining, hand
}
