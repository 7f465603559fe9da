package sqlite_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/memoflash/memoflash/internal/fsrs"
	"github.com/memoflash/memoflash/internal/models"
	"github.com/memoflash/memoflash/internal/repository"
	"github.com/memoflash/memoflash/internal/repository/sqlite"
	"github.com/memoflash/memoflash/internal/testutil"
)

type ReviewRepositorySuite struct {
	suite.Suite
	db   *sql.DB
	repo repository.ReviewRepository
}

func (s *ReviewRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewReviewRepository(s.db)
}

func (s *ReviewRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *ReviewRepositorySuite) setupProfileDeckCard() (int64, int64) {
	ctx := context.Background()

	_, err := s.db.ExecContext(ctx, `INSERT INTO profiles (name) VALUES (?)`, "tester")
	s.Require().NoError(err)
	var profileID int64
	err = s.db.QueryRowContext(ctx, `SELECT id FROM profiles WHERE name = ?`, "tester").Scan(&profileID)
	s.Require().NoError(err)

	_, err = s.db.ExecContext(ctx, `INSERT INTO decks (profile_id, name) VALUES (?, ?)`, profileID, "history")
	s.Require().NoError(err)
	var deckID int64
	err = s.db.QueryRowContext(ctx, `SELECT id FROM decks WHERE name = ?`, "history").Scan(&deckID)
	s.Require().NoError(err)

	_, err = s.db.ExecContext(ctx, `INSERT INTO cards (deck_id, front, back) VALUES (?, ?, ?)`, deckID, "q", "a")
	s.Require().NoError(err)
	var cardID int64
	err = s.db.QueryRowContext(ctx, `SELECT id FROM cards WHERE front = ?`, "q").Scan(&cardID)
	s.Require().NoError(err)

	return profileID, cardID
}

func (s *ReviewRepositorySuite) TestInsertAndListOrdering() {
	ctx := context.Background()
	profileID, cardID := s.setupProfileDeckCard()

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	first := models.ReviewRecord{
		CardID: cardID, ProfileID: profileID,
		Rating: fsrs.Good, PriorState: fsrs.New,
		ElapsedDays: 0, ScheduledDays: 0, ReviewedAt: base,
	}
	second := models.ReviewRecord{
		CardID: cardID, ProfileID: profileID,
		Rating: fsrs.Again, PriorState: fsrs.Learning,
		ElapsedDays: 0, ScheduledDays: 0, ReviewedAt: base.Add(10 * time.Minute),
	}

	_, err := s.repo.Insert(ctx, first)
	s.Require().NoError(err)
	_, err = s.repo.Insert(ctx, second)
	s.Require().NoError(err)

	records, err := s.repo.ListForCard(ctx, cardID, profileID, 10)
	s.Require().NoError(err)
	s.Require().Len(records, 2)

	// Newest first.
	s.Assert().Equal(fsrs.Again, records[0].Rating)
	s.Assert().Equal(fsrs.Learning, records[0].PriorState)
	s.Assert().Equal(fsrs.Good, records[1].Rating)
	s.Assert().Equal(fsrs.New, records[1].PriorState)
}

func (s *ReviewRepositorySuite) TestListScopedToProfile() {
	ctx := context.Background()
	profileID, cardID := s.setupProfileDeckCard()

	_, err := s.db.ExecContext(ctx, `INSERT INTO profiles (name) VALUES (?)`, "other")
	s.Require().NoError(err)
	var otherID int64
	err = s.db.QueryRowContext(ctx, `SELECT id FROM profiles WHERE name = ?`, "other").Scan(&otherID)
	s.Require().NoError(err)

	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	_, err = s.repo.Insert(ctx, models.ReviewRecord{
		CardID: cardID, ProfileID: profileID,
		Rating: fsrs.Good, PriorState: fsrs.New, ReviewedAt: now,
	})
	s.Require().NoError(err)

	records, err := s.repo.ListForCard(ctx, cardID, otherID, 10)
	s.Require().NoError(err)
	s.Assert().Empty(records)
}

func (s *ReviewRepositorySuite) TestCountSince() {
	ctx := context.Background()
	profileID, cardID := s.setupProfileDeckCard()

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	for _, at := range []time.Time{base.Add(-48 * time.Hour), base.Add(-1 * time.Hour), base} {
		_, err := s.repo.Insert(ctx, models.ReviewRecord{
			CardID: cardID, ProfileID: profileID,
			Rating: fsrs.Good, PriorState: fsrs.Review, ReviewedAt: at,
		})
		s.Require().NoError(err)
	}

	count, err := s.repo.CountSince(ctx, profileID, base.Add(-24*time.Hour))
	s.Require().NoError(err)
	s.Assert().Equal(2, count)
}

func TestReviewRepositorySuite(t *testing.T) {
	suite.Run(t, new(ReviewRepositorySuite))
}
