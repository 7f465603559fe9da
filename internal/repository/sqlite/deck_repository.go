package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/memoflash/memoflash/internal/logger"
	"github.com/memoflash/memoflash/internal/models"
	"github.com/memoflash/memoflash/internal/repository"
)

type deckRepository struct {
	db *sql.DB
}

// NewDeckRepository creates a new DeckRepository implementation
func NewDeckRepository(db *sql.DB) repository.DeckRepository {
	return &deckRepository{db: db}
}

func (r *deckRepository) Get(ctx context.Context, id int64) (*models.Deck, error) {
	log := logger.FromContext(ctx).WithPrefix("deck_repo")
	log.Debug("getting deck: id=%d", id)

	var d models.Deck
	err := r.db.QueryRowContext(ctx, `
SELECT id, profile_id, name, description, created_at FROM decks WHERE id = ?
`, id).Scan(&d.ID, &d.ProfileID, &d.Name, &d.Description, &d.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("deck not found: id=%d", id)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get deck: %v", err)
		return nil, err
	}
	return &d, nil
}

func (r *deckRepository) List(ctx context.Context, profileID int64) ([]models.Deck, error) {
	log := logger.FromContext(ctx).WithPrefix("deck_repo")
	log.Debug("listing decks: profile_id=%d", profileID)

	rows, err := r.db.QueryContext(ctx, `
SELECT id, profile_id, name, description, created_at
FROM decks
WHERE profile_id = ?
ORDER BY name
`, profileID)
	if err != nil {
		log.Error("failed to list decks: %v", err)
		return nil, err
	}
	defer rows.Close()

	var decks []models.Deck
	for rows.Next() {
		var d models.Deck
		if err := rows.Scan(&d.ID, &d.ProfileID, &d.Name, &d.Description, &d.CreatedAt); err != nil {
			log.Error("failed to scan deck row: %v", err)
			return nil, err
		}
		decks = append(decks, d)
	}
	return decks, rows.Err()
}

func (r *deckRepository) Insert(ctx context.Context, deck models.Deck) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("deck_repo")
	log.Debug("inserting deck: profile_id=%d, name=%s", deck.ProfileID, deck.Name)

	res, err := r.db.ExecContext(ctx, `
INSERT INTO decks (profile_id, name, description) VALUES (?, ?, ?)
`, deck.ProfileID, deck.Name, deck.Description)
	if err != nil {
		log.Error("failed to insert deck: %v", err)
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	log.Debug("deck inserted: id=%d", id)
	return id, nil
}

func (r *deckRepository) Update(ctx context.Context, deck models.Deck) error {
	log := logger.FromContext(ctx).WithPrefix("deck_repo")
	log.Debug("updating deck: id=%d", deck.ID)

	_, err := r.db.ExecContext(ctx, `
UPDATE decks SET name = ?, description = ? WHERE id = ?
`, deck.Name, deck.Description, deck.ID)
	if err != nil {
		log.Error("failed to update deck: %v", err)
	}
	return err
}

func (r *deckRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx).WithPrefix("deck_repo")
	log.Debug("deleting deck: id=%d", id)

	_, err := r.db.ExecContext(ctx, `DELETE FROM decks WHERE id = ?`, id)
	if err != nil {
		log.Error("failed to delete deck: %v", err)
	}
	return err
}
