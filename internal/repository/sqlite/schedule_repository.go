package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/memoflash/memoflash/internal/fsrs"
	"github.com/memoflash/memoflash/internal/logger"
	"github.com/memoflash/memoflash/internal/models"
	"github.com/memoflash/memoflash/internal/repository"
)

type scheduleRepository struct {
	db *sql.DB
}

// NewScheduleRepository creates a new ScheduleRepository implementation
func NewScheduleRepository(db *sql.DB) repository.ScheduleRepository {
	return &scheduleRepository{db: db}
}

const scheduleColumns = `id, card_id, profile_id, stability, difficulty, elapsed_days, scheduled_days, reps, lapses, state, due, last_review, created_at, updated_at`

func scanSchedule(row interface {
	Scan(dest ...any) error
}) (*models.CardSchedule, error) {
	var s models.CardSchedule
	var state string
	var lastReview sql.NullTime
	err := row.Scan(&s.ID, &s.CardID, &s.ProfileID, &s.Stability, &s.Difficulty,
		&s.ElapsedDays, &s.ScheduledDays, &s.Reps, &s.Lapses, &state,
		&s.Due, &lastReview, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	parsed, err := fsrs.ParseState(state)
	if err != nil {
		return nil, err
	}
	s.State = parsed
	if lastReview.Valid {
		t := lastReview.Time
		s.LastReview = &t
	}
	return &s, nil
}

func (r *scheduleRepository) Get(ctx context.Context, cardID, profileID int64) (*models.CardSchedule, error) {
	log := logger.FromContext(ctx).WithPrefix("schedule_repo")
	log.Debug("getting schedule: card_id=%d, profile_id=%d", cardID, profileID)

	row := r.db.QueryRowContext(ctx, `
SELECT `+scheduleColumns+`
FROM card_schedules
WHERE card_id = ? AND profile_id = ?
`, cardID, profileID)

	s, err := scanSchedule(row)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("schedule not found: card_id=%d, profile_id=%d", cardID, profileID)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get schedule: %v", err)
		return nil, err
	}
	return s, nil
}

func (r *scheduleRepository) Insert(ctx context.Context, schedule models.CardSchedule) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("schedule_repo")
	log.Debug("inserting schedule: card_id=%d, profile_id=%d", schedule.CardID, schedule.ProfileID)

	res, err := r.db.ExecContext(ctx, `
INSERT INTO card_schedules (card_id, profile_id, stability, difficulty, elapsed_days, scheduled_days, reps, lapses, state, due, last_review)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`, schedule.CardID, schedule.ProfileID, schedule.Stability, schedule.Difficulty,
		schedule.ElapsedDays, schedule.ScheduledDays, schedule.Reps, schedule.Lapses,
		schedule.State.String(), schedule.Due, schedule.LastReview)
	if err != nil {
		log.Error("failed to insert schedule: %v", err)
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	log.Debug("schedule inserted: id=%d", id)
	return id, nil
}

func (r *scheduleRepository) InsertBatch(ctx context.Context, schedules []models.CardSchedule) error {
	log := logger.FromContext(ctx).WithPrefix("schedule_repo")
	log.Debug("inserting %d schedules in batch", len(schedules))

	err := tx(ctx, r.db, func(t *sql.Tx) error {
		stmt, err := t.PrepareContext(ctx, `
INSERT INTO card_schedules (card_id, profile_id, stability, difficulty, elapsed_days, scheduled_days, reps, lapses, state, due, last_review)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`)
		if err != nil {
			return err
		}
		defer stmt.Close()
		for _, s := range schedules {
			if _, err := stmt.ExecContext(ctx, s.CardID, s.ProfileID, s.Stability, s.Difficulty,
				s.ElapsedDays, s.ScheduledDays, s.Reps, s.Lapses, s.State.String(), s.Due, s.LastReview); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Error("failed to insert schedule batch: %v", err)
	}
	return err
}

func (r *scheduleRepository) Update(ctx context.Context, schedule models.CardSchedule) error {
	log := logger.FromContext(ctx).WithPrefix("schedule_repo")
	log.Debug("updating schedule: id=%d, state=%s, due=%s", schedule.ID, schedule.State, schedule.Due.Format(time.RFC3339))

	_, err := r.db.ExecContext(ctx, `
UPDATE card_schedules
SET stability = ?, difficulty = ?, elapsed_days = ?, scheduled_days = ?, reps = ?, lapses = ?, state = ?, due = ?, last_review = ?, updated_at = CURRENT_TIMESTAMP
WHERE id = ?
`, schedule.Stability, schedule.Difficulty, schedule.ElapsedDays, schedule.ScheduledDays,
		schedule.Reps, schedule.Lapses, schedule.State.String(), schedule.Due, schedule.LastReview, schedule.ID)
	if err != nil {
		log.Error("failed to update schedule: %v", err)
	}
	return err
}

func (r *scheduleRepository) DueCards(ctx context.Context, profileID int64, now time.Time, limit int) ([]models.QueueCard, error) {
	log := logger.FromContext(ctx).WithPrefix("schedule_repo")
	log.Debug("fetching due cards: profile_id=%d, limit=%d", profileID, limit)

	if limit <= 0 {
		limit = 50
	}

	// Learning and relearning cards surface before review-state cards so
	// minute-scale steps are not starved by a long review backlog.
	rows, err := r.db.QueryContext(ctx, `
SELECT c.id, c.deck_id, c.front, c.back, c.created_at, d.name,
       s.id, s.card_id, s.profile_id, s.stability, s.difficulty, s.elapsed_days, s.scheduled_days,
       s.reps, s.lapses, s.state, s.due, s.last_review, s.created_at, s.updated_at
FROM card_schedules s
JOIN cards c ON c.id = s.card_id
JOIN decks d ON d.id = c.deck_id
WHERE s.profile_id = ? AND s.due <= ?
ORDER BY CASE WHEN s.state IN ('learning', 'relearning') THEN 0 ELSE 1 END, s.due ASC
LIMIT ?
`, profileID, now, limit)
	if err != nil {
		log.Error("failed to query due cards: %v", err)
		return nil, err
	}
	defer rows.Close()

	var out []models.QueueCard
	for rows.Next() {
		var q models.QueueCard
		var state string
		var lastReview sql.NullTime
		if err := rows.Scan(&q.Card.ID, &q.Card.DeckID, &q.Card.Front, &q.Card.Back, &q.Card.CreatedAt, &q.DeckName,
			&q.Schedule.ID, &q.Schedule.CardID, &q.Schedule.ProfileID, &q.Schedule.Stability, &q.Schedule.Difficulty,
			&q.Schedule.ElapsedDays, &q.Schedule.ScheduledDays, &q.Schedule.Reps, &q.Schedule.Lapses,
			&state, &q.Schedule.Due, &lastReview, &q.Schedule.CreatedAt, &q.Schedule.UpdatedAt); err != nil {
			log.Error("failed to scan due card row: %v", err)
			return nil, err
		}
		parsed, err := fsrs.ParseState(state)
		if err != nil {
			log.Error("invalid state in schedule row: %v", err)
			return nil, err
		}
		q.Schedule.State = parsed
		if lastReview.Valid {
			t := lastReview.Time
			q.Schedule.LastReview = &t
		}
		out = append(out, q)
	}
	log.Debug("found %d due cards", len(out))
	return out, rows.Err()
}

func (r *scheduleRepository) CountDue(ctx context.Context, profileID int64, now time.Time) (int, error) {
	log := logger.FromContext(ctx).WithPrefix("schedule_repo")

	var count int
	err := r.db.QueryRowContext(ctx, `
SELECT COUNT(*) FROM card_schedules WHERE profile_id = ? AND due <= ?
`, profileID, now).Scan(&count)
	if err != nil {
		log.Error("failed to count due cards: %v", err)
		return 0, err
	}
	return count, nil
}
