package storage

import (
	"context"

	"github.com/SK1028846/fantasy-football-pipeline/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// User operations
	SaveUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, id model.UserID) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)

	// Trade operations. Trade records are written whole, exactly once.
	SaveTrade(ctx context.Context, trade *model.Trade) error
	GetTrade(ctx context.Context, id model.TradeID) (*model.Trade, error)

	// ListTrades returns the owner's trades ordered most-recent-first
	// (CreatedAt descending, ties broken by ID descending) starting at
	// offset, returning at most limit records. The composite ordering keeps
	// already-issued pages stable under concurrent inserts.
	ListTrades(ctx context.Context, owner model.UserID, offset, limit int) ([]*model.Trade, error)

	// CountTrades returns the total number of trades owned by owner
	CountTrades(ctx context.Context, owner model.UserID) (int, error)
}
