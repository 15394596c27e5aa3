package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/Rishivarshney100/kuchbhi/internal/model"
	"github.com/Rishivarshney100/kuchbhi/internal/storage"
)

const schema = `
CREATE TABLE IF NOT EXISTS players (
	id                   TEXT PRIMARY KEY,
	name                 TEXT NOT NULL,
	email                TEXT NOT NULL,
	mobile_number        TEXT NOT NULL,
	age                  INTEGER NOT NULL,
	created_at           TIMESTAMP NOT NULL,
	technical_quiz_score INTEGER NOT NULL DEFAULT 0,
	tower_of_hanoi_score INTEGER NOT NULL DEFAULT 0,
	word_scramble_score  INTEGER NOT NULL DEFAULT 0
);
`

// Storage is a SQLite-backed implementation of the player store, for
// single-node deployments without a Redis instance.
type Storage struct {
	db *sql.DB
}

// New opens (creating if needed) a SQLite database at the given path
func New(path string) (*Storage, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// SQLite handles one writer at a time
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Storage{db: db}, nil
}

// Ensure Storage implements the interface
var _ storage.PlayerStore = (*Storage)(nil)

// scoreColumn maps a game key to its score column
func scoreColumn(game model.GameKey) (string, error) {
	switch game {
	case model.GameTechnicalQuiz:
		return "technical_quiz_score", nil
	case model.GameTowerOfHanoi:
		return "tower_of_hanoi_score", nil
	case model.GameWordScramble:
		return "word_scramble_score", nil
	}
	return "", model.ErrUnknownGame
}

func (s *Storage) CreatePlayer(ctx context.Context, player *model.Player) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO players (
			id, name, email, mobile_number, age, created_at,
			technical_quiz_score, tower_of_hanoi_score, word_scramble_score
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		string(player.ID), player.Name, player.Email, player.MobileNumber,
		player.Age, player.CreatedAt.UTC().Format(time.RFC3339Nano),
		player.Scores.TechnicalQuiz, player.Scores.TowerOfHanoi, player.Scores.WordScramble,
	)
	return err
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, email, mobile_number, age, created_at,
		       technical_quiz_score, tower_of_hanoi_score, word_scramble_score
		FROM players WHERE id = ?`, string(id))

	player, err := scanPlayer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrPlayerNotFound
	}
	return player, err
}

func (s *Storage) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, email, mobile_number, age, created_at,
		       technical_quiz_score, tower_of_hanoi_score, word_scramble_score
		FROM players`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var players []*model.Player
	for rows.Next() {
		player, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		players = append(players, player)
	}
	return players, rows.Err()
}

func (s *Storage) WriteScore(ctx context.Context, id model.PlayerID, game model.GameKey, score int) error {
	column, err := scoreColumn(game)
	if err != nil {
		return err
	}

	// Column name comes from the closed game enum, never from input
	res, err := s.db.ExecContext(ctx,
		fmt.Sprintf("UPDATE players SET %s = ? WHERE id = ?", column),
		score, string(id))
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return model.ErrPlayerNotFound
	}
	return nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database handle
func (s *Storage) Close() error {
	return s.db.Close()
}

// scanner covers both *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

func scanPlayer(row scanner) (*model.Player, error) {
	var (
		player    model.Player
		id        string
		createdAt string
	)
	if err := row.Scan(
		&id, &player.Name, &player.Email, &player.MobileNumber, &player.Age,
		&createdAt,
		&player.Scores.TechnicalQuiz, &player.Scores.TowerOfHanoi, &player.Scores.WordScramble,
	); err != nil {
		return nil, err
	}

	player.ID = model.PlayerID(id)

	ts, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	player.CreatedAt = ts

	return &player, nil
}
