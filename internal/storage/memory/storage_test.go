package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/SK1028846/fantasy-football-pipeline/internal/model"
)

type MemoryStorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func (s *MemoryStorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func TestMemoryStorageSuite(t *testing.T) {
	suite.Run(t, new(MemoryStorageSuite))
}

func (s *MemoryStorageSuite) TestSaveAndGetUser() {
	user := &model.User{
		ID:           "u_1",
		Username:     "alice",
		PasswordHash: "hash",
		CreatedAt:    time.Now(),
	}

	err := s.storage.SaveUser(s.ctx, user)
	s.Require().NoError(err)

	got, err := s.storage.GetUser(s.ctx, "u_1")
	s.Require().NoError(err)
	s.Equal(user.Username, got.Username)

	got, err = s.storage.GetUserByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(user.ID, got.ID)
}

func (s *MemoryStorageSuite) TestGetUserNotFound() {
	_, err := s.storage.GetUser(s.ctx, "u_missing")
	s.ErrorIs(err, model.ErrUserNotFound)

	_, err = s.storage.GetUserByUsername(s.ctx, "nobody")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *MemoryStorageSuite) TestSaveAndGetTrade() {
	trade := &model.Trade{
		ID:        "t_1",
		OwnerID:   "u_1",
		SideA:     []string{"Player1"},
		SideB:     []string{"Player2", "Player3"},
		Grade:     "A",
		CreatedAt: time.Now(),
	}

	err := s.storage.SaveTrade(s.ctx, trade)
	s.Require().NoError(err)

	got, err := s.storage.GetTrade(s.ctx, "t_1")
	s.Require().NoError(err)
	s.Equal(trade.SideA, got.SideA)
	s.Equal(trade.SideB, got.SideB)
	s.Equal(model.Grade("A"), got.Grade)
}

func (s *MemoryStorageSuite) TestGetTradeNotFound() {
	_, err := s.storage.GetTrade(s.ctx, "t_missing")
	s.ErrorIs(err, model.ErrTradeNotFound)
}

func (s *MemoryStorageSuite) TestListTradesOrderedByRecency() {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []model.TradeID{"t_1", "t_2", "t_3"} {
		err := s.storage.SaveTrade(s.ctx, &model.Trade{
			ID:        id,
			OwnerID:   "u_1",
			SideA:     []string{"A"},
			SideB:     []string{"B"},
			Grade:     "A",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		s.Require().NoError(err)
	}

	trades, err := s.storage.ListTrades(s.ctx, "u_1", 0, 10)
	s.Require().NoError(err)
	s.Require().Len(trades, 3)
	s.Equal(model.TradeID("t_3"), trades[0].ID)
	s.Equal(model.TradeID("t_2"), trades[1].ID)
	s.Equal(model.TradeID("t_1"), trades[2].ID)
}

func (s *MemoryStorageSuite) TestListTradesSameTimestampBreaksTiesByID() {
	at := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, id := range []model.TradeID{"t_1", "t_3", "t_2"} {
		err := s.storage.SaveTrade(s.ctx, &model.Trade{
			ID:        id,
			OwnerID:   "u_1",
			SideA:     []string{"A"},
			SideB:     []string{"B"},
			Grade:     "A",
			CreatedAt: at,
		})
		s.Require().NoError(err)
	}

	trades, err := s.storage.ListTrades(s.ctx, "u_1", 0, 10)
	s.Require().NoError(err)
	s.Require().Len(trades, 3)
	s.Equal(model.TradeID("t_3"), trades[0].ID)
	s.Equal(model.TradeID("t_2"), trades[1].ID)
	s.Equal(model.TradeID("t_1"), trades[2].ID)
}

func (s *MemoryStorageSuite) TestListTradesWindow() {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		err := s.storage.SaveTrade(s.ctx, &model.Trade{
			ID:        model.TradeID(string(rune('a' + i))),
			OwnerID:   "u_1",
			SideA:     []string{"A"},
			SideB:     []string{"B"},
			Grade:     "A",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		s.Require().NoError(err)
	}

	trades, err := s.storage.ListTrades(s.ctx, "u_1", 2, 2)
	s.Require().NoError(err)
	s.Require().Len(trades, 2)
	s.Equal(model.TradeID("c"), trades[0].ID)
	s.Equal(model.TradeID("b"), trades[1].ID)

	// Offset past the end gives an empty page, not an error
	trades, err = s.storage.ListTrades(s.ctx, "u_1", 10, 2)
	s.Require().NoError(err)
	s.Empty(trades)
}

func (s *MemoryStorageSuite) TestListTradesScopedToOwner() {
	now := time.Now()
	s.Require().NoError(s.storage.SaveTrade(s.ctx, &model.Trade{
		ID: "t_1", OwnerID: "u_1", SideA: []string{"A"}, SideB: []string{"B"}, Grade: "A", CreatedAt: now,
	}))
	s.Require().NoError(s.storage.SaveTrade(s.ctx, &model.Trade{
		ID: "t_2", OwnerID: "u_2", SideA: []string{"C"}, SideB: []string{"D"}, Grade: "A", CreatedAt: now,
	}))

	trades, err := s.storage.ListTrades(s.ctx, "u_1", 0, 10)
	s.Require().NoError(err)
	s.Require().Len(trades, 1)
	s.Equal(model.TradeID("t_1"), trades[0].ID)

	count, err := s.storage.CountTrades(s.ctx, "u_2")
	s.Require().NoError(err)
	s.Equal(1, count)
}

func (s *MemoryStorageSuite) TestCountTrades() {
	count, err := s.storage.CountTrades(s.ctx, "u_1")
	s.Require().NoError(err)
	s.Equal(0, count)

	now := time.Now()
	for i, id := range []model.TradeID{"t_1", "t_2", "t_3"} {
		s.Require().NoError(s.storage.SaveTrade(s.ctx, &model.Trade{
			ID: id, OwnerID: "u_1", SideA: []string{"A"}, SideB: []string{"B"}, Grade: "A",
			CreatedAt: now.Add(time.Duration(i) * time.Second),
		}))
	}

	count, err = s.storage.CountTrades(s.ctx, "u_1")
	s.Require().NoError(err)
	s.Equal(3, count)
}
