package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/SK1028846/fantasy-football-pipeline/internal/model"
	"github.com/SK1028846/fantasy-football-pipeline/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
// Each owner's trades are indexed in a sorted set scored by creation time;
// ZREVRANGE falls back to reverse member order on equal scores, which
// matches the (CreatedAt desc, ID desc) ordering the interface requires.
type Storage struct {
	client *redis.Client
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{client: client}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client) *Storage {
	return &Storage{client: client}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User operations

func (s *Storage) SaveUser(ctx context.Context, user *model.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}

	// Pipeline for atomic save + index update
	pipe := s.client.Pipeline()
	pipe.Set(ctx, userKey(user.ID), data, 0)
	pipe.Set(ctx, usernameIndexKey(user.Username), string(user.ID), 0)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetUser(ctx context.Context, id model.UserID) (*model.User, error) {
	data, err := s.client.Get(ctx, userKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}

	var user model.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	idStr, err := s.client.Get(ctx, usernameIndexKey(username)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}

	return s.GetUser(ctx, model.UserID(idStr))
}

// Trade operations

func (s *Storage) SaveTrade(ctx context.Context, trade *model.Trade) error {
	data, err := json.Marshal(trade)
	if err != nil {
		return err
	}

	// Pipeline for atomic save + owner index update
	pipe := s.client.Pipeline()
	pipe.Set(ctx, tradeKey(trade.ID), data, 0)
	pipe.ZAdd(ctx, tradesForOwnerKey(trade.OwnerID), redis.Z{
		Score:  float64(trade.CreatedAt.UnixNano()),
		Member: string(trade.ID),
	})
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetTrade(ctx context.Context, id model.TradeID) (*model.Trade, error) {
	data, err := s.client.Get(ctx, tradeKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrTradeNotFound
		}
		return nil, err
	}

	var trade model.Trade
	if err := json.Unmarshal(data, &trade); err != nil {
		return nil, err
	}
	return &trade, nil
}

func (s *Storage) ListTrades(ctx context.Context, owner model.UserID, offset, limit int) ([]*model.Trade, error) {
	if limit <= 0 {
		return []*model.Trade{}, nil
	}

	ids, err := s.client.ZRevRange(ctx, tradesForOwnerKey(owner), int64(offset), int64(offset+limit-1)).Result()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*model.Trade{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = tradeKey(model.TradeID(id))
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	trades := make([]*model.Trade, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue
		}
		var trade model.Trade
		if err := json.Unmarshal([]byte(val.(string)), &trade); err != nil {
			continue // Skip invalid data
		}
		trades = append(trades, &trade)
	}

	return trades, nil
}

func (s *Storage) CountTrades(ctx context.Context, owner model.UserID) (int, error) {
	count, err := s.client.ZCard(ctx, tradesForOwnerKey(owner)).Result()
	if err != nil {
		return 0, err
	}
	return int(count), nil
}
