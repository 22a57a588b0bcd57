package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/SK1028846/fantasy-football-pipeline/internal/api/middleware"
	"github.com/SK1028846/fantasy-football-pipeline/internal/api/request"
	"github.com/SK1028846/fantasy-football-pipeline/internal/api/response"
	"github.com/SK1028846/fantasy-football-pipeline/internal/services/trade"
)

// TradeHandler handles trade submission and history endpoints
type TradeHandler struct {
	tradeService *trade.Service
}

// NewTradeHandler creates a new trade handler
func NewTradeHandler(tradeService *trade.Service) *TradeHandler {
	return &TradeHandler{
		tradeService: tradeService,
	}
}

// Submit handles POST /trade
func (h *TradeHandler) Submit(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())

	var req request.SubmitTradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	// Both keys must be present before either value is type-checked
	if req.SideA == nil {
		WriteError(w, NewMissingFieldError("sideA"))
		return
	}
	if req.SideB == nil {
		WriteError(w, NewMissingFieldError("sideB"))
		return
	}

	sideA, err := decodeSide("sideA", req.SideA)
	if err != nil {
		WriteError(w, err)
		return
	}
	sideB, err := decodeSide("sideB", req.SideB)
	if err != nil {
		WriteError(w, err)
		return
	}

	graded, err := h.tradeService.Submit(r.Context(), user.ID, sideA, sideB)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GradeResponse{Grade: graded.Grade})
}

// History handles GET /previoustrades
func (h *TradeHandler) History(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())

	page, err := queryInt(r, "page", 1)
	if err != nil {
		WriteError(w, err)
		return
	}
	limit, err := queryInt(r, "limit", trade.DefaultPageSize)
	if err != nil {
		WriteError(w, err)
		return
	}

	result, err := h.tradeService.History(r.Context(), user.ID, page, limit)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.FromTrades(result.Trades, result.HasMore))
}

// decodeSide parses one side of the trade body. Presence has already been
// checked; anything that is not an array of strings (including literal
// null) is a type error.
func decodeSide(field string, raw json.RawMessage) ([]string, error) {
	var side []string
	if err := json.Unmarshal(raw, &side); err != nil || side == nil {
		return nil, NewInvalidTypeError(field)
	}
	return side, nil
}

// queryInt parses an optional integer query parameter
func queryInt(r *http.Request, name string, defaultValue int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return defaultValue, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, NewInvalidQueryError(name + " must be an integer")
	}
	return value, nil
}
