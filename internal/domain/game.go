package domain

import (
	"time"

	"github.com/google/uuid"
)

// Status is a Game's lifecycle state, per the §4.4 state machine.
type Status string

const (
	StatusPending       Status = "pending"
	StatusDeckSelection Status = "deck_selection"
	StatusActive        Status = "active"
	StatusCompleted     Status = "completed"
	StatusAbandoned     Status = "abandoned"
	StatusIgnored       Status = "ignored"
	StatusCancelled     Status = "cancelled"
)

// terminal reports whether a status is one that archival freezes.
func (s Status) Terminal() bool {
	switch s {
	case StatusCompleted, StatusAbandoned, StatusIgnored, StatusCancelled:
		return true
	default:
		return false
	}
}

// TiebreakerDecision is a participant's yes/no answer to "play the tiebreaker".
type TiebreakerDecision string

const (
	DecisionPending TiebreakerDecision = ""
	DecisionYes     TiebreakerDecision = "yes"
	DecisionNo      TiebreakerDecision = "no"
)

// RoundRecord is one resolved round of play, kept in a game's history.
type RoundRecord struct {
	Round          int    `json:"round"`
	Player1Card    Card   `json:"player1_card"`
	Player2Card    Card   `json:"player2_card"`
	Winner         int    `json:"winner"` // 0 = tie, 1 or 2
	Reason         string `json:"reason"`
	Player1Score   int    `json:"player1_score"`
	Player2Score   int    `json:"player2_score"`
}

// PlayerState is one participant's mutable in-game state.
type PlayerState struct {
	Deck               Deck               `json:"deck"`
	Hand               Hand               `json:"hand"`
	PlayedCard         *Card              `json:"played_card,omitempty"`
	Drawn              bool               `json:"drawn"`
	Played             bool               `json:"played"`
	Score              int                `json:"score"`
	TiebreakerDecision TiebreakerDecision `json:"tiebreaker_decision"`
}

// Game is the full live state of one duel.
type Game struct {
	ID                 uuid.UUID     `json:"id"`
	Player1            string        `json:"player1"`
	Player2            string        `json:"player2"`
	Status             Status        `json:"status"`
	Turn               int           `json:"turn"`
	P1                 PlayerState   `json:"p1"`
	P2                 PlayerState   `json:"p2"`
	History            []RoundRecord `json:"history"`
	AwaitingTiebreaker bool          `json:"awaiting_tiebreaker"`
	Winner             *string       `json:"winner,omitempty"`
	WasTie             bool          `json:"was_tie"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
}

// Participant reports whether subject is one of the game's two players.
func (g *Game) Participant(subject string) bool {
	return subject == g.Player1 || subject == g.Player2
}

// PlayerSlot returns 1 or 2 for the named participant, or 0 if not a
// participant.
func (g *Game) PlayerSlot(subject string) int {
	switch subject {
	case g.Player1:
		return 1
	case g.Player2:
		return 2
	default:
		return 0
	}
}

func (g *Game) state(slot int) *PlayerState {
	if slot == 1 {
		return &g.P1
	}
	return &g.P2
}

// ResolveRoundAuto performs the auto-resolve step of §4.4.3 step 3 once both
// played-flags are true. It mutates g in place: appends a round record,
// clears per-turn flags, and applies the end-of-turn checks of §4.4.5. The
// caller is responsible for running this inside the same transaction as the
// write that flipped the second played-flag.
func (g *Game) ResolveRoundAuto() {
	if g.P1.PlayedCard == nil || g.P2.PlayedCard == nil {
		return
	}

	a, b := *g.P1.PlayedCard, *g.P2.PlayedCard
	outcome, reason := Resolve(a, b)

	switch outcome {
	case FirstWins:
		g.P1.Score++
	case SecondWins:
		g.P2.Score++
	}

	winner := 0
	switch outcome {
	case FirstWins:
		winner = 1
	case SecondWins:
		winner = 2
	}

	g.History = append(g.History, RoundRecord{
		Round:        g.Turn,
		Player1Card:  a,
		Player2Card:  b,
		Winner:       winner,
		Reason:       reason,
		Player1Score: g.P1.Score,
		Player2Score: g.P2.Score,
	})

	g.P1.PlayedCard, g.P2.PlayedCard = nil, nil
	g.P1.Hand, g.P2.Hand = Hand{}, Hand{}
	g.P1.Drawn, g.P2.Drawn = false, false
	g.P1.Played, g.P2.Played = false, false

	g.applyEndConditions()
}

// applyEndConditions runs the §4.4.5 post-resolve checks: the 7th-round
// tiebreaker trigger, then the insufficient-deck end condition, then plain
// turn advancement.
func (g *Game) applyEndConditions() {
	roundsPlayed := len(g.History)

	if roundsPlayed == 7 && g.P1.Score == g.P2.Score && len(g.P1.Deck) >= 1 && len(g.P2.Deck) >= 1 {
		g.AwaitingTiebreaker = true
		return
	}

	if len(g.P1.Deck) < HandDrawSize || len(g.P2.Deck) < HandDrawSize {
		switch {
		case g.P1.Score != g.P2.Score:
			g.finish(g.higherScorer(), false)
		case len(g.P1.Deck) >= 1 && len(g.P2.Deck) >= 1:
			g.AwaitingTiebreaker = true
		default:
			g.finish("", true)
		}
		return
	}

	g.Turn++
}

func (g *Game) higherScorer() string {
	if g.P1.Score > g.P2.Score {
		return g.Player1
	}
	return g.Player2
}

func (g *Game) finish(winner string, wasTie bool) {
	g.Status = StatusCompleted
	g.AwaitingTiebreaker = false
	g.WasTie = wasTie
	if winner == "" {
		g.Winner = nil
	} else {
		w := winner
		g.Winner = &w
	}
}

// SubmitTiebreakerDecision records a participant's yes/no decision.
// Resubmission of the same value is a no-op; both-yes triggers the final
// card play, any-no ends the game with no winner. Returns true if the
// decision changed the game's status (caller should persist + archive).
func (g *Game) SubmitTiebreakerDecision(slot int, decision TiebreakerDecision) bool {
	st := g.state(slot)
	if st.TiebreakerDecision == decision {
		return false
	}
	st.TiebreakerDecision = decision

	if g.P1.TiebreakerDecision == DecisionNo || g.P2.TiebreakerDecision == DecisionNo {
		g.finish("", true)
		return true
	}
	return false
}

// ReadyForTiebreakerPlay reports whether both participants answered yes.
func (g *Game) ReadyForTiebreakerPlay() bool {
	return g.P1.TiebreakerDecision == DecisionYes && g.P2.TiebreakerDecision == DecisionYes
}

// PlayTiebreaker plays each participant's single remaining top card and
// resolves the game to completion.
func (g *Game) PlayTiebreaker() {
	if len(g.P1.Deck) == 0 || len(g.P2.Deck) == 0 {
		g.finish("", true)
		return
	}
	a := g.P1.Deck[len(g.P1.Deck)-1]
	b := g.P2.Deck[len(g.P2.Deck)-1]
	g.P1.Deck = g.P1.Deck[:len(g.P1.Deck)-1]
	g.P2.Deck = g.P2.Deck[:len(g.P2.Deck)-1]

	outcome, reason := Resolve(a, b)
	winner := 0
	switch outcome {
	case FirstWins:
		g.P1.Score++
		winner = 1
	case SecondWins:
		g.P2.Score++
		winner = 2
	}
	g.History = append(g.History, RoundRecord{
		Round:        g.Turn,
		Player1Card:  a,
		Player2Card:  b,
		Winner:       winner,
		Reason:       reason,
		Player1Score: g.P1.Score,
		Player2Score: g.P2.Score,
	})

	switch winner {
	case 1:
		g.finish(g.Player1, false)
	case 2:
		g.finish(g.Player2, false)
	default:
		g.finish("", true)
	}
}
