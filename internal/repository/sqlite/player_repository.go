package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gabriel/mindspeed/internal/logger"
	"github.com/gabriel/mindspeed/internal/models"
	"github.com/gabriel/mindspeed/internal/repository"
)

type playerRepository struct {
	db *sql.DB
}

// NewPlayerRepository creates a new PlayerRepository implementation
func NewPlayerRepository(db *sql.DB) repository.PlayerRepository {
	return &playerRepository{db: db}
}

func (r *playerRepository) GetByName(ctx context.Context, name string) (*models.Player, error) {
	log := logger.FromContext(ctx).WithPrefix("player_repo")
	log.Debug("getting player by name: %s", name)

	var p models.Player
	err := r.db.QueryRowContext(ctx, `
SELECT id, name, created_at
FROM players
WHERE name = ?
ORDER BY id ASC
LIMIT 1
`, name).Scan(&p.ID, &p.Name, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("player not found: name=%s", name)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get player: %v", err)
		return nil, err
	}
	return &p, nil
}

func (r *playerRepository) Insert(ctx context.Context, name string) (*models.Player, error) {
	log := logger.FromContext(ctx).WithPrefix("player_repo")
	log.Debug("inserting player: name=%s", name)

	var p models.Player
	err := r.db.QueryRowContext(ctx, `
INSERT INTO players (name)
VALUES (?)
RETURNING id, name, created_at
`, name).Scan(&p.ID, &p.Name, &p.CreatedAt)
	if err != nil {
		log.Error("failed to insert player: %v", err)
		return nil, err
	}
	log.Debug("player inserted: id=%d", p.ID)
	return &p, nil
}
