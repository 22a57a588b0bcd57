package response

import (
	"time"

	"github.com/SK1028846/fantasy-football-pipeline/internal/model"
	"github.com/SK1028846/fantasy-football-pipeline/internal/services/auth"
)

// Trade is the API representation of a graded trade
type Trade struct {
	ID        model.TradeID `json:"id"`
	SideA     []string      `json:"sideA"`
	SideB     []string      `json:"sideB"`
	Grade     model.Grade   `json:"grade"`
	CreatedAt time.Time     `json:"createdAt"`
}

// FromTrade converts a model trade to its API representation
func FromTrade(t *model.Trade) Trade {
	return Trade{
		ID:        t.ID,
		SideA:     t.SideA,
		SideB:     t.SideB,
		Grade:     t.Grade,
		CreatedAt: t.CreatedAt,
	}
}

// GradeResponse is the response to a trade submission
type GradeResponse struct {
	Grade model.Grade `json:"grade"`
}

// TradeHistory is one page of a user's previous trades
type TradeHistory struct {
	Trades  []Trade `json:"trades"`
	HasMore bool    `json:"hasMore"`
}

// FromTrades converts model trades to a history page.
// The trades field is always a JSON array, never null.
func FromTrades(trades []*model.Trade, hasMore bool) TradeHistory {
	out := make([]Trade, 0, len(trades))
	for _, t := range trades {
		out = append(out, FromTrade(t))
	}
	return TradeHistory{Trades: out, HasMore: hasMore}
}

// User is the API representation of a user
type User struct {
	ID       model.UserID `json:"id"`
	Username string       `json:"username"`
}

// FromUser converts a model user to its API representation
func FromUser(u *model.User) User {
	return User{
		ID:       u.ID,
		Username: u.Username,
	}
}

// AuthResponse is returned on register and login
type AuthResponse struct {
	User         User   `json:"user"`
	SessionToken string `json:"sessionToken"`
}

// FromSession converts a session to an auth response
func FromSession(s *auth.Session) AuthResponse {
	return AuthResponse{
		User:         FromUser(&s.User),
		SessionToken: s.Token,
	}
}

// HealthResponse is the health check response
type HealthResponse struct {
	Status string `json:"status"`
}
