package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/arenaforge/duel-server/internal/cryptoutil"
	"github.com/arenaforge/duel-server/internal/domain"
)

// ArchiveGame seals a terminal game's snapshot and writes it to
// game_history, per the archive-then-freeze invariant of §4.4.7: once
// archived, the live games row is never mutated again.
func (s *Store) ArchiveGame(ctx context.Context, g *domain.Game, cipher *cryptoutil.HistoryCipher) error {
	archivedAt := time.Now().UTC()
	snapshot := domain.BuildSnapshot(g, archivedAt)

	plaintext, err := snapshot.Canonical()
	if err != nil {
		return err
	}
	sealed, err := cipher.Seal(plaintext)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO game_history (game_id, player1, player2, winner, was_tie, turns_played,
			ciphertext, tag, archived_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (game_id) DO NOTHING`,
		g.ID, g.Player1, g.Player2, g.Winner, g.WasTie, snapshot.TurnsPlayed,
		sealed.Ciphertext, sealed.Tag, archivedAt)
	return err
}

type historyRow struct {
	GameID      uuid.UUID `db:"game_id"`
	Player1     string    `db:"player1"`
	Player2     string    `db:"player2"`
	Winner      *string   `db:"winner"`
	WasTie      bool      `db:"was_tie"`
	TurnsPlayed int       `db:"turns_played"`
	Ciphertext  []byte    `db:"ciphertext"`
	Tag         []byte    `db:"tag"`
	ArchivedAt  time.Time `db:"archived_at"`
}

// GetHistory decrypts and returns one archived game's snapshot, verifying
// its integrity tag first. Returns cryptoutil.ErrIntegrityViolation if the
// stored ciphertext or tag has been tampered with.
func (s *Store) GetHistory(ctx context.Context, gameID uuid.UUID, cipher *cryptoutil.HistoryCipher) (*domain.Snapshot, error) {
	var row historyRow
	if err := s.db.GetContext(ctx, &row, `
		SELECT game_id, player1, player2, winner, was_tie, turns_played, ciphertext, tag, archived_at
		FROM game_history WHERE game_id = $1`, gameID); err != nil {
		return nil, mapNoRows(err)
	}

	plaintext, err := cipher.Open(cryptoutil.Sealed{Ciphertext: row.Ciphertext, Tag: row.Tag})
	if err != nil {
		return nil, err
	}

	var snapshot domain.Snapshot
	if err := json.Unmarshal(plaintext, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// ListRecentGamesFor returns the most recently archived games a player
// participated in, newest first, without decrypting (used by the
// leaderboard's "recent games" view, which shows outcomes only).
func (s *Store) ListRecentGamesFor(ctx context.Context, username string, limit int) ([]historyRow, error) {
	var rows []historyRow
	err := s.db.SelectContext(ctx, &rows, `
		SELECT game_id, player1, player2, winner, was_tie, turns_played, ciphertext, tag, archived_at
		FROM game_history WHERE player1 = $1 OR player2 = $1
		ORDER BY archived_at DESC LIMIT $2`, username, limit)
	return rows, err
}

// RecentGameSummary is the public (non-decrypted) shape of one row from
// ListRecentGamesFor.
type RecentGameSummary struct {
	GameID      uuid.UUID `json:"game_id"`
	Player1     string    `json:"player1"`
	Player2     string    `json:"player2"`
	Winner      *string   `json:"winner"`
	WasTie      bool      `json:"was_tie"`
	TurnsPlayed int       `json:"turns_played"`
	ArchivedAt  time.Time `json:"archived_at"`
}

func Summarize(rows []historyRow) []RecentGameSummary {
	out := make([]RecentGameSummary, 0, len(rows))
	for _, r := range rows {
		out = append(out, RecentGameSummary{
			GameID: r.GameID, Player1: r.Player1, Player2: r.Player2, Winner: r.Winner,
			WasTie: r.WasTie, TurnsPlayed: r.TurnsPlayed, ArchivedAt: r.ArchivedAt,
		})
	}
	return out
}

// LeaderboardRow is one participant's aggregate win/loss/tie record,
// computed directly from game_history's indexed columns (§4.5).
type LeaderboardRow struct {
	Username string `db:"username" json:"username"`
	Wins     int    `db:"wins" json:"wins"`
	Losses   int    `db:"losses" json:"losses"`
	Ties     int    `db:"ties" json:"ties"`
}

// Leaderboard ranks every visible account by wins desc, losses asc.
func (s *Store) Leaderboard(ctx context.Context, limit int) ([]LeaderboardRow, error) {
	var rows []LeaderboardRow
	err := s.db.SelectContext(ctx, &rows, `
		WITH participants AS (
			SELECT player1 AS username, winner, was_tie FROM game_history
			UNION ALL
			SELECT player2 AS username, winner, was_tie FROM game_history
		)
		SELECT p.username,
			COUNT(*) FILTER (WHERE p.winner = p.username)                       AS wins,
			COUNT(*) FILTER (WHERE p.winner IS NOT NULL AND p.winner != p.username AND NOT p.was_tie) AS losses,
			COUNT(*) FILTER (WHERE p.was_tie)                                   AS ties
		FROM participants p
		JOIN accounts a ON a.username = p.username AND a.visible
		GROUP BY p.username
		ORDER BY wins DESC, losses ASC, p.username ASC
		LIMIT $1`, limit)
	return rows, err
}

// PlayerStats reports one account's aggregate record regardless of its
// visibility flag (used for the account's own profile view).
func (s *Store) PlayerStats(ctx context.Context, username string) (*LeaderboardRow, error) {
	var row LeaderboardRow
	row.Username = username
	err := s.db.GetContext(ctx, &row, `
		WITH participants AS (
			SELECT player1 AS username, winner, was_tie FROM game_history WHERE player1 = $1
			UNION ALL
			SELECT player2 AS username, winner, was_tie FROM game_history WHERE player2 = $1
		)
		SELECT $1 AS username,
			COUNT(*) FILTER (WHERE winner = $1)                        AS wins,
			COUNT(*) FILTER (WHERE winner IS NOT NULL AND winner != $1 AND NOT was_tie) AS losses,
			COUNT(*) FILTER (WHERE was_tie)                            AS ties
		FROM participants`, username)
	if err != nil {
		return nil, mapNoRows(err)
	}
	return &row, nil
}
