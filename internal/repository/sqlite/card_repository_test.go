package sqlite_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/memoflash/memoflash/internal/models"
	"github.com/memoflash/memoflash/internal/repository"
	"github.com/memoflash/memoflash/internal/repository/sqlite"
	"github.com/memoflash/memoflash/internal/testutil"
)

type CardRepositorySuite struct {
	suite.Suite
	db   *sql.DB
	repo repository.CardRepository
}

func (s *CardRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewCardRepository(s.db)
}

func (s *CardRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *CardRepositorySuite) setupDeck() int64 {
	ctx := context.Background()

	_, err := s.db.ExecContext(ctx, `INSERT INTO profiles (name) VALUES (?)`, "tester")
	s.Require().NoError(err)
	var profileID int64
	err = s.db.QueryRowContext(ctx, `SELECT id FROM profiles WHERE name = ?`, "tester").Scan(&profileID)
	s.Require().NoError(err)

	_, err = s.db.ExecContext(ctx, `INSERT INTO decks (profile_id, name) VALUES (?, ?)`, profileID, "geography")
	s.Require().NoError(err)
	var deckID int64
	err = s.db.QueryRowContext(ctx, `SELECT id FROM decks WHERE name = ?`, "geography").Scan(&deckID)
	s.Require().NoError(err)
	return deckID
}

func (s *CardRepositorySuite) TestInsertGetUpdateDelete() {
	ctx := context.Background()
	deckID := s.setupDeck()

	id, err := s.repo.Insert(ctx, models.Card{DeckID: deckID, Front: "capital of France", Back: "Paris"})
	s.Require().NoError(err)
	s.Assert().Greater(id, int64(0))

	card, err := s.repo.Get(ctx, id)
	s.Require().NoError(err)
	s.Require().NotNil(card)
	s.Assert().Equal("Paris", card.Back)

	card.Back = "Paris, France"
	err = s.repo.Update(ctx, *card)
	s.Require().NoError(err)

	updated, err := s.repo.Get(ctx, id)
	s.Require().NoError(err)
	s.Assert().Equal("Paris, France", updated.Back)

	err = s.repo.Delete(ctx, id)
	s.Require().NoError(err)

	gone, err := s.repo.Get(ctx, id)
	s.Require().NoError(err)
	s.Assert().Nil(gone)
}

func (s *CardRepositorySuite) TestListWithFilters() {
	ctx := context.Background()
	deckID := s.setupDeck()

	_, err := s.repo.InsertBatch(ctx, []models.Card{
		{DeckID: deckID, Front: "capital of France", Back: "Paris"},
		{DeckID: deckID, Front: "capital of Spain", Back: "Madrid"},
		{DeckID: deckID, Front: "largest ocean", Back: "Pacific"},
	})
	s.Require().NoError(err)

	all, err := s.repo.List(ctx, models.CardFilter{DeckID: deckID})
	s.Require().NoError(err)
	s.Assert().Len(all, 3)

	capitals, err := s.repo.List(ctx, models.CardFilter{DeckID: deckID, Search: "capital"})
	s.Require().NoError(err)
	s.Assert().Len(capitals, 2)

	// Search matches the back side too.
	madrid, err := s.repo.List(ctx, models.CardFilter{DeckID: deckID, Search: "Madrid"})
	s.Require().NoError(err)
	s.Require().Len(madrid, 1)
	s.Assert().Equal("capital of Spain", madrid[0].Front)

	count, err := s.repo.Count(ctx, models.CardFilter{DeckID: deckID, Search: "capital"})
	s.Require().NoError(err)
	s.Assert().Equal(2, count)
}

func (s *CardRepositorySuite) TestListOrderingAndPagination() {
	ctx := context.Background()
	deckID := s.setupDeck()

	_, err := s.repo.InsertBatch(ctx, []models.Card{
		{DeckID: deckID, Front: "charlie", Back: "3"},
		{DeckID: deckID, Front: "alpha", Back: "1"},
		{DeckID: deckID, Front: "bravo", Back: "2"},
	})
	s.Require().NoError(err)

	ordered, err := s.repo.List(ctx, models.CardFilter{DeckID: deckID, OrderBy: "front"})
	s.Require().NoError(err)
	s.Require().Len(ordered, 3)
	s.Assert().Equal("alpha", ordered[0].Front)
	s.Assert().Equal("charlie", ordered[2].Front)

	page, err := s.repo.List(ctx, models.CardFilter{DeckID: deckID, OrderBy: "front", Limit: 2, Offset: 1})
	s.Require().NoError(err)
	s.Require().Len(page, 2)
	s.Assert().Equal("bravo", page[0].Front)
}

func (s *CardRepositorySuite) TestInsertBatchReturnsIDsInOrder() {
	ctx := context.Background()
	deckID := s.setupDeck()

	ids, err := s.repo.InsertBatch(ctx, []models.Card{
		{DeckID: deckID, Front: "one", Back: "1"},
		{DeckID: deckID, Front: "two", Back: "2"},
	})
	s.Require().NoError(err)
	s.Require().Len(ids, 2)

	first, err := s.repo.Get(ctx, ids[0])
	s.Require().NoError(err)
	s.Assert().Equal("one", first.Front)
	second, err := s.repo.Get(ctx, ids[1])
	s.Require().NoError(err)
	s.Assert().Equal("two", second.Front)
}

func TestCardRepositorySuite(t *testing.T) {
	suite.Run(t, new(CardRepositorySuite))
}
