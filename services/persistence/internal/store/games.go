package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/arenaforge/duel-server/internal/apierr"
	"github.com/arenaforge/duel-server/internal/domain"
)

// gameRow is the flat SQL projection of a domain.Game: indexed columns for
// querying plus the full state as one JSONB blob, so the coordinator's
// typed value objects never need a join-heavy relational mapping.
type gameRow struct {
	ID                 uuid.UUID `db:"id"`
	Player1            string    `db:"player1"`
	Player2            string    `db:"player2"`
	Status             string    `db:"status"`
	Turn               int       `db:"turn"`
	AwaitingTiebreaker bool      `db:"awaiting_tiebreaker"`
	Winner             *string   `db:"winner"`
	WasTie             bool      `db:"was_tie"`
	State              []byte    `db:"state"`
	CreatedAt          time.Time `db:"created_at"`
	UpdatedAt          time.Time `db:"updated_at"`
}

func rowFromGame(g *domain.Game) (*gameRow, error) {
	state, err := json.Marshal(g)
	if err != nil {
		return nil, err
	}
	return &gameRow{
		ID: g.ID, Player1: g.Player1, Player2: g.Player2, Status: string(g.Status),
		Turn: g.Turn, AwaitingTiebreaker: g.AwaitingTiebreaker, Winner: g.Winner,
		WasTie: g.WasTie, State: state, CreatedAt: g.CreatedAt, UpdatedAt: g.UpdatedAt,
	}, nil
}

func (r *gameRow) toGame() (*domain.Game, error) {
	var g domain.Game
	if err := json.Unmarshal(r.State, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

// CreateGame inserts a newly created invite (status pending).
func (s *Store) CreateGame(ctx context.Context, g *domain.Game) error {
	g.ID = uuid.New()
	now := time.Now().UTC()
	g.CreatedAt, g.UpdatedAt = now, now

	row, err := rowFromGame(g)
	if err != nil {
		return err
	}
	_, err = s.db.NamedExecContext(ctx, `
		INSERT INTO games (id, player1, player2, status, turn, awaiting_tiebreaker, winner,
			was_tie, state, created_at, updated_at)
		VALUES (:id, :player1, :player2, :status, :turn, :awaiting_tiebreaker, :winner,
			:was_tie, :state, :created_at, :updated_at)`, row)
	return err
}

// archivedTx reports whether a game_history row already exists for id,
// read inside the caller's transaction so it observes the same snapshot
// the subsequent FOR UPDATE read does.
func archivedTx(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) (bool, error) {
	var archived bool
	if err := sqlx.GetContext(ctx, tx, &archived, `SELECT EXISTS(SELECT 1 FROM game_history WHERE game_id = $1)`, id); err != nil {
		return false, err
	}
	return archived, nil
}

func (s *Store) getGameTx(ctx context.Context, q sqlx.QueryerContext, id uuid.UUID) (*domain.Game, error) {
	var row gameRow
	if err := sqlx.GetContext(ctx, q, &row, `
		SELECT id, player1, player2, status, turn, awaiting_tiebreaker, winner, was_tie,
			state, created_at, updated_at
		FROM games WHERE id = $1 FOR UPDATE`, id); err != nil {
		return nil, mapNoRows(err)
	}
	return row.toGame()
}

// GetGame loads a game without locking, for read-only operations.
func (s *Store) GetGame(ctx context.Context, id uuid.UUID) (*domain.Game, error) {
	var row gameRow
	if err := s.db.GetContext(ctx, &row, `
		SELECT id, player1, player2, status, turn, awaiting_tiebreaker, winner, was_tie,
			state, created_at, updated_at
		FROM games WHERE id = $1`, id); err != nil {
		return nil, mapNoRows(err)
	}
	return row.toGame()
}

// MutateGame loads the game row FOR UPDATE, lets fn mutate it, and writes
// the result back in the same transaction — the building block every
// game-coordinator write operation (draw, play, tiebreaker decision) uses
// to get the serialized-by-row-lock semantics of §5. Before fn ever runs,
// it checks for an existing game_history row: per §4.4.7, a game with an
// archive row is frozen, and every mutation path must reject with the same
// conflict rather than each reimplementing its own terminal-state check.
func (s *Store) MutateGame(ctx context.Context, id uuid.UUID, fn func(g *domain.Game) error) (*domain.Game, error) {
	var result *domain.Game
	err := s.WithTx(ctx, func(tx *sqlx.Tx) error {
		archived, err := archivedTx(ctx, tx, id)
		if err != nil {
			return err
		}
		if archived {
			return apierr.Conflictf("game history is archived and cannot be modified")
		}
		g, err := s.getGameTx(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := fn(g); err != nil {
			return err
		}
		g.UpdatedAt = time.Now().UTC()
		row, err := rowFromGame(g)
		if err != nil {
			return err
		}
		_, err = tx.NamedExecContext(ctx, `
			UPDATE games SET player1 = :player1, player2 = :player2, status = :status,
				turn = :turn, awaiting_tiebreaker = :awaiting_tiebreaker, winner = :winner,
				was_tie = :was_tie, state = :state, updated_at = :updated_at
			WHERE id = :id`, row)
		if err != nil {
			return err
		}
		result = g
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ListGamesForPlayer returns every game (any status) a participant appears
// in, most recently updated first.
func (s *Store) ListGamesForPlayer(ctx context.Context, username string, limit int) ([]*domain.Game, error) {
	var rows []gameRow
	err := s.db.SelectContext(ctx, &rows, `
		SELECT id, player1, player2, status, turn, awaiting_tiebreaker, winner, was_tie,
			state, created_at, updated_at
		FROM games WHERE player1 = $1 OR player2 = $1
		ORDER BY updated_at DESC LIMIT $2`, username, limit)
	if err != nil {
		return nil, err
	}
	return toGames(rows)
}

// ListPendingInvitesFor returns invites awaiting the named recipient's
// accept/ignore decision.
func (s *Store) ListPendingInvitesFor(ctx context.Context, username string) ([]*domain.Game, error) {
	var rows []gameRow
	err := s.db.SelectContext(ctx, &rows, `
		SELECT id, player1, player2, status, turn, awaiting_tiebreaker, winner, was_tie,
			state, created_at, updated_at
		FROM games WHERE player2 = $1 AND status = 'pending'
		ORDER BY created_at DESC`, username)
	if err != nil {
		return nil, err
	}
	return toGames(rows)
}

func toGames(rows []gameRow) ([]*domain.Game, error) {
	games := make([]*domain.Game, 0, len(rows))
	for i := range rows {
		g, err := rows[i].toGame()
		if err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	return games, nil
}
