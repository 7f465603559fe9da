package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/memoflash/memoflash/internal/fsrs"
	"github.com/memoflash/memoflash/internal/logger"
	"github.com/memoflash/memoflash/internal/models"
	"github.com/memoflash/memoflash/internal/repository"
)

type reviewRepository struct {
	db *sql.DB
}

// NewReviewRepository creates a new ReviewRepository implementation
func NewReviewRepository(db *sql.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Insert(ctx context.Context, record models.ReviewRecord) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("review_repo")
	log.Debug("appending review: card_id=%d, rating=%s", record.CardID, record.Rating)

	res, err := r.db.ExecContext(ctx, `
INSERT INTO reviews (card_id, profile_id, rating, prior_state, elapsed_days, scheduled_days, reviewed_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
`, record.CardID, record.ProfileID, record.Rating.String(), record.PriorState.String(),
		record.ElapsedDays, record.ScheduledDays, record.ReviewedAt)
	if err != nil {
		log.Error("failed to append review: %v", err)
		return 0, err
	}
	return res.LastInsertId()
}

func (r *reviewRepository) ListForCard(ctx context.Context, cardID, profileID int64, limit int) ([]models.ReviewRecord, error) {
	log := logger.FromContext(ctx).WithPrefix("review_repo")
	log.Debug("listing reviews: card_id=%d, profile_id=%d", cardID, profileID)

	if limit <= 0 {
		limit = 100
	}

	rows, err := r.db.QueryContext(ctx, `
SELECT id, card_id, profile_id, rating, prior_state, elapsed_days, scheduled_days, reviewed_at
FROM reviews
WHERE card_id = ? AND profile_id = ?
ORDER BY reviewed_at DESC
LIMIT ?
`, cardID, profileID, limit)
	if err != nil {
		log.Error("failed to list reviews: %v", err)
		return nil, err
	}
	defer rows.Close()

	var records []models.ReviewRecord
	for rows.Next() {
		var rec models.ReviewRecord
		var rating, priorState string
		if err := rows.Scan(&rec.ID, &rec.CardID, &rec.ProfileID, &rating, &priorState,
			&rec.ElapsedDays, &rec.ScheduledDays, &rec.ReviewedAt); err != nil {
			log.Error("failed to scan review row: %v", err)
			return nil, err
		}
		if rec.Rating, err = fsrs.ParseRating(rating); err != nil {
			log.Error("invalid rating in review row: %v", err)
			return nil, err
		}
		if rec.PriorState, err = fsrs.ParseState(priorState); err != nil {
			log.Error("invalid state in review row: %v", err)
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *reviewRepository) CountSince(ctx context.Context, profileID int64, since time.Time) (int, error) {
	log := logger.FromContext(ctx).WithPrefix("review_repo")

	var count int
	err := r.db.QueryRowContext(ctx, `
SELECT COUNT(*) FROM reviews WHERE profile_id = ? AND reviewed_at >= ?
`, profileID, since).Scan(&count)
	if err != nil {
		log.Error("failed to count reviews: %v", err)
		return 0, err
	}
	return count, nil
}
