package model

import "time"

// TradeID uniquely identifies a submitted trade
type TradeID string

// Grade is a short code summarising the evaluation outcome of a trade
// (e.g. "A", "B+")
type Grade string

// Trade is a persisted record of one evaluated exchange: two ordered lists
// of player names and the grade assigned at creation time.
// Trade records are write-once; no field changes after creation.
type Trade struct {
	ID        TradeID
	OwnerID   UserID // principal that submitted the trade
	SideA     []string
	SideB     []string
	Grade     Grade
	CreatedAt time.Time
}
