package domain

import (
	"bytes"
	"encoding/json"
	"sort"
	"time"
)

// PlayerSummary is one participant's final standing in an archived game.
type PlayerSummary struct {
	Name          string `json:"name"`
	FinalScore    int    `json:"final_score"`
	RemainingDeck int    `json:"remaining_deck"`
}

// Snapshot is the canonical, plaintext-before-encryption content of an
// archived game, per §4.4.7.
type Snapshot struct {
	GameID      string        `json:"game_id"`
	TurnsPlayed int           `json:"turns_played"`
	Player1     PlayerSummary `json:"player1"`
	Player2     PlayerSummary `json:"player2"`
	Winner      *string       `json:"winner"`
	WasTie      bool          `json:"was_tie"`
	History     []RoundRecord `json:"history"`
	CreatedAt   time.Time     `json:"created_at"`
	ArchivedAt  time.Time     `json:"archived_at"`
}

// BuildSnapshot assembles the archival snapshot for a terminal game.
func BuildSnapshot(g *Game, archivedAt time.Time) Snapshot {
	var winner *string
	if g.Winner != nil {
		w := *g.Winner
		winner = &w
	}
	return Snapshot{
		GameID:      g.ID.String(),
		TurnsPlayed: g.Turn,
		Player1:     PlayerSummary{Name: g.Player1, FinalScore: g.P1.Score, RemainingDeck: len(g.P1.Deck)},
		Player2:     PlayerSummary{Name: g.Player2, FinalScore: g.P2.Score, RemainingDeck: len(g.P2.Deck)},
		Winner:      winner,
		WasTie:      g.WasTie,
		History:     g.History,
		CreatedAt:   g.CreatedAt,
		ArchivedAt:  archivedAt,
	}
}

// Canonical serializes the snapshot with sorted keys and stable separators
// so that re-encoding the same logical snapshot always yields the same
// bytes — required before encryption and MAC computation.
func (s Snapshot) Canonical() ([]byte, error) {
	// encoding/json already emits struct fields in declaration order with
	// no extraneous whitespace; round-trip through a generic map to sort
	// keys lexicographically for a fully canonical form independent of
	// struct field order.
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	var generic interface{}
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := encodeCanonical(&buf, generic); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// encodeCanonical walks a decoded JSON value and re-encodes it with map
// keys sorted lexicographically at every level.
func encodeCanonical(buf *bytes.Buffer, v interface{}) error {
	switch val := v.(type) {
	case map[string]interface{}:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		buf.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			kb, err := json.Marshal(k)
			if err != nil {
				return err
			}
			buf.Write(kb)
			buf.WriteByte(':')
			if err := encodeCanonical(buf, val[k]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case []interface{}:
		buf.WriteByte('[')
		for i, e := range val {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encodeCanonical(buf, e); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return err
		}
		buf.Write(b)
	}
	return nil
}
