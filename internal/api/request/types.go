package request

import "encoding/json"

// SubmitTradeRequest is the body for submitting a trade for grading.
// The sides are kept raw so the handler can tell an absent field apart
// from one of the wrong type.
type SubmitTradeRequest struct {
	SideA json.RawMessage `json:"sideA"`
	SideB json.RawMessage `json:"sideB"`
}

// RegisterRequest is the body for creating a new account
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest is the body for logging in
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
