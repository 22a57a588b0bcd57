package redis

import (
	"fmt"

	"github.com/SK1028846/fantasy-football-pipeline/internal/model"
)

// Key prefix for all trade-evaluator data
const keyPrefix = "tradeeval"

// userKey returns the Redis key for a User
func userKey(id model.UserID) string {
	return fmt.Sprintf("%s:user:%s", keyPrefix, id)
}

// usernameIndexKey returns the Redis key for the username -> user_id index
func usernameIndexKey(username string) string {
	return fmt.Sprintf("%s:idx:username:%s", keyPrefix, username)
}

// tradeKey returns the Redis key for a Trade
func tradeKey(id model.TradeID) string {
	return fmt.Sprintf("%s:trade:%s", keyPrefix, id)
}

// tradesForOwnerKey returns the Redis key for the ZSET indexing an owner's
// trades by creation time
func tradesForOwnerKey(owner model.UserID) string {
	return fmt.Sprintf("%s:idx:trades_for_owner:%s", keyPrefix, owner)
}
