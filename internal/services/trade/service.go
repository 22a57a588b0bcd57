package trade

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SK1028846/fantasy-football-pipeline/internal/dependencies/clock"
	"github.com/SK1028846/fantasy-football-pipeline/internal/dependencies/ident"
	"github.com/SK1028846/fantasy-football-pipeline/internal/model"
	"github.com/SK1028846/fantasy-football-pipeline/internal/services/grading"
	"github.com/SK1028846/fantasy-football-pipeline/internal/storage"
)

// Pagination bounds for trade history
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Page is one window of a user's trade history
type Page struct {
	Trades  []*model.Trade
	HasMore bool
}

// Service handles trade submission and history retrieval
type Service struct {
	storage storage.Storage
	grader  grading.Grader
	clock   clock.Clock
	ident   ident.Generator
	logger  *slog.Logger
}

// New creates a new trade service
func New(storage storage.Storage, grader grading.Grader, clock clock.Clock, ident ident.Generator, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		grader:  grader,
		clock:   clock,
		ident:   ident,
		logger:  logger,
	}
}

// Submit grades a proposed trade and records it against the owner.
// Player names are trimmed and blank entries dropped before grading;
// a trade where either side ends up empty is rejected. Nothing is
// persisted unless grading succeeds.
func (s *Service) Submit(ctx context.Context, owner model.UserID, sideA, sideB []string) (*model.Trade, error) {
	sideA = normalizeSide(sideA)
	sideB = normalizeSide(sideB)

	if len(sideA) == 0 || len(sideB) == 0 {
		return nil, model.ErrEmptySide
	}

	grade, err := s.grader.Grade(ctx, sideA, sideB)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", grading.ErrGradingFailure, err)
	}

	trade := &model.Trade{
		ID:        model.TradeID("t_" + s.ident.NewID()),
		OwnerID:   owner,
		SideA:     sideA,
		SideB:     sideB,
		Grade:     grade,
		CreatedAt: s.clock.Now(),
	}

	if err := s.storage.SaveTrade(ctx, trade); err != nil {
		return nil, err
	}

	s.logger.Info("trade graded",
		"trade_id", trade.ID,
		"owner_id", trade.OwnerID,
		"grade", trade.Grade)

	return trade, nil
}

// History returns one page of the owner's trades, most recent first.
// Page numbering starts at 1; limit defaults apply at the API layer,
// so out-of-range values here are caller errors.
func (s *Service) History(ctx context.Context, owner model.UserID, page, limit int) (*Page, error) {
	if page < 1 {
		return nil, model.ErrInvalidPage
	}
	if limit < 1 || limit > MaxPageSize {
		return nil, model.ErrInvalidLimit
	}

	offset := (page - 1) * limit

	trades, err := s.storage.ListTrades(ctx, owner, offset, limit)
	if err != nil {
		return nil, err
	}

	total, err := s.storage.CountTrades(ctx, owner)
	if err != nil {
		return nil, err
	}

	return &Page{
		Trades:  trades,
		HasMore: offset+len(trades) < total,
	}, nil
}

// normalizeSide trims whitespace and drops blank entries, preserving order
func normalizeSide(side []string) []string {
	out := make([]string, 0, len(side))
	for _, name := range side {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		out = append(out, name)
	}
	return out
}
