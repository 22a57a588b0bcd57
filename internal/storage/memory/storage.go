package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/SK1028846/fantasy-football-pipeline/internal/model"
	"github.com/SK1028846/fantasy-football-pipeline/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	users         map[model.UserID]*model.User
	usernameIndex map[string]model.UserID
	trades        map[model.TradeID]*model.Trade
	// tradesByOwner keeps each owner's trades ordered most-recent-first
	// (CreatedAt desc, ID desc) so pagination is a slice window
	tradesByOwner map[model.UserID][]*model.Trade
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		users:         make(map[model.UserID]*model.User),
		usernameIndex: make(map[string]model.UserID),
		trades:        make(map[model.TradeID]*model.Trade),
		tradesByOwner: make(map[model.UserID][]*model.Trade),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User operations

func (s *Storage) SaveUser(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = user
	s.usernameIndex[user.Username] = user.ID
	return nil
}

func (s *Storage) GetUser(ctx context.Context, id model.UserID) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return user, nil
}

func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.usernameIndex[username]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	user, ok := s.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return user, nil
}

// Trade operations

func (s *Storage) SaveTrade(ctx context.Context, trade *model.Trade) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trades[trade.ID] = trade
	s.tradesByOwner[trade.OwnerID] = insertByRecency(s.tradesByOwner[trade.OwnerID], trade)
	return nil
}

func (s *Storage) GetTrade(ctx context.Context, id model.TradeID) (*model.Trade, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	trade, ok := s.trades[id]
	if !ok {
		return nil, model.ErrTradeNotFound
	}
	return trade, nil
}

func (s *Storage) ListTrades(ctx context.Context, owner model.UserID, offset, limit int) ([]*model.Trade, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	owned := s.tradesByOwner[owner]
	if offset >= len(owned) || limit <= 0 {
		return []*model.Trade{}, nil
	}

	end := offset + limit
	if end > len(owned) {
		end = len(owned)
	}

	result := make([]*model.Trade, end-offset)
	copy(result, owned[offset:end])
	return result, nil
}

func (s *Storage) CountTrades(ctx context.Context, owner model.UserID) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tradesByOwner[owner]), nil
}

// insertByRecency inserts a trade into a most-recent-first slice, keeping
// the (CreatedAt desc, ID desc) ordering
func insertByRecency(owned []*model.Trade, trade *model.Trade) []*model.Trade {
	i := sort.Search(len(owned), func(i int) bool {
		if !owned[i].CreatedAt.Equal(trade.CreatedAt) {
			return owned[i].CreatedAt.Before(trade.CreatedAt)
		}
		return owned[i].ID < trade.ID
	})

	owned = append(owned, nil)
	copy(owned[i+1:], owned[i:])
	owned[i] = trade
	return owned
}
