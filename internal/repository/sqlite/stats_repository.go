package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/memoflash/memoflash/internal/logger"
	"github.com/memoflash/memoflash/internal/models"
	"github.com/memoflash/memoflash/internal/repository"
)

type statsRepository struct {
	db *sql.DB
}

// NewStatsRepository creates a new StatsRepository implementation
func NewStatsRepository(db *sql.DB) repository.StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) ProfileSummary(ctx context.Context, profileID int64, now time.Time) (*models.ProfileSummary, error) {
	log := logger.FromContext(ctx).WithPrefix("stats_repo")
	log.Debug("computing profile summary: profile_id=%d", profileID)

	var s models.ProfileSummary
	err := r.db.QueryRowContext(ctx, `
SELECT
    COUNT(*),
    COALESCE(SUM(CASE WHEN due <= ? THEN 1 ELSE 0 END), 0),
    COALESCE(SUM(CASE WHEN state = 'new' THEN 1 ELSE 0 END), 0),
    COALESCE(SUM(CASE WHEN state = 'learning' THEN 1 ELSE 0 END), 0),
    COALESCE(SUM(CASE WHEN state = 'review' THEN 1 ELSE 0 END), 0),
    COALESCE(SUM(CASE WHEN state = 'relearning' THEN 1 ELSE 0 END), 0),
    COALESCE(SUM(lapses), 0)
FROM card_schedules
WHERE profile_id = ?
`, now, profileID).Scan(&s.TotalCards, &s.DueCount, &s.NewCount, &s.LearningCount,
		&s.ReviewCount, &s.RelearningCount, &s.TotalLapses)
	if err != nil {
		log.Error("failed to compute schedule summary: %v", err)
		return nil, err
	}

	err = r.db.QueryRowContext(ctx, `
SELECT COUNT(*) FROM reviews WHERE profile_id = ?
`, profileID).Scan(&s.TotalReviews)
	if err != nil {
		log.Error("failed to count reviews: %v", err)
		return nil, err
	}

	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	err = r.db.QueryRowContext(ctx, `
SELECT COUNT(*) FROM reviews WHERE profile_id = ? AND reviewed_at >= ?
`, profileID, startOfDay).Scan(&s.ReviewsToday)
	if err != nil {
		log.Error("failed to count today's reviews: %v", err)
		return nil, err
	}

	// Lapse rate over reviews of graduated cards only: lapses divided by
	// reviews that could have lapsed.
	var graduatedReviews, lapseReviews int
	err = r.db.QueryRowContext(ctx, `
SELECT
    COALESCE(SUM(CASE WHEN prior_state IN ('review', 'relearning') THEN 1 ELSE 0 END), 0),
    COALESCE(SUM(CASE WHEN prior_state IN ('review', 'relearning') AND rating = 'again' THEN 1 ELSE 0 END), 0)
FROM reviews
WHERE profile_id = ?
`, profileID).Scan(&graduatedReviews, &lapseReviews)
	if err != nil {
		log.Error("failed to compute lapse rate: %v", err)
		return nil, err
	}
	if graduatedReviews > 0 {
		s.LapseRate = float64(lapseReviews) / float64(graduatedReviews)
	}

	return &s, nil
}

func (r *statsRepository) RatingBreakdown(ctx context.Context, profileID int64) ([]models.RatingCount, error) {
	log := logger.FromContext(ctx).WithPrefix("stats_repo")
	log.Debug("computing rating breakdown: profile_id=%d", profileID)

	rows, err := r.db.QueryContext(ctx, `
SELECT rating, COUNT(*)
FROM reviews
WHERE profile_id = ?
GROUP BY rating
ORDER BY CASE rating WHEN 'again' THEN 1 WHEN 'hard' THEN 2 WHEN 'good' THEN 3 ELSE 4 END
`, profileID)
	if err != nil {
		log.Error("failed to compute rating breakdown: %v", err)
		return nil, err
	}
	defer rows.Close()

	var out []models.RatingCount
	for rows.Next() {
		var rc models.RatingCount
		if err := rows.Scan(&rc.Rating, &rc.Count); err != nil {
			log.Error("failed to scan rating row: %v", err)
			return nil, err
		}
		out = append(out, rc)
	}
	return out, rows.Err()
}

func (r *statsRepository) DeckStats(ctx context.Context, profileID int64, now time.Time) ([]models.DeckStat, error) {
	log := logger.FromContext(ctx).WithPrefix("stats_repo")
	log.Debug("computing deck stats: profile_id=%d", profileID)

	rows, err := r.db.QueryContext(ctx, `
SELECT d.id, d.name,
       COUNT(c.id),
       COALESCE(SUM(CASE WHEN s.due <= ? THEN 1 ELSE 0 END), 0)
FROM decks d
LEFT JOIN cards c ON c.deck_id = d.id
LEFT JOIN card_schedules s ON s.card_id = c.id AND s.profile_id = d.profile_id
WHERE d.profile_id = ?
GROUP BY d.id, d.name
ORDER BY d.name
`, now, profileID)
	if err != nil {
		log.Error("failed to compute deck stats: %v", err)
		return nil, err
	}
	defer rows.Close()

	var out []models.DeckStat
	for rows.Next() {
		var ds models.DeckStat
		if err := rows.Scan(&ds.DeckID, &ds.DeckName, &ds.CardCount, &ds.DueCount); err != nil {
			log.Error("failed to scan deck stat row: %v", err)
			return nil, err
		}
		out = append(out, ds)
	}
	return out, rows.Err()
}
