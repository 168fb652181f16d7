package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/mlbb-fantasy/api/internal/domain/roster"
	"github.com/mlbb-fantasy/api/internal/usecase"
)

type rosterDTO struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Week      int       `json:"week"`
	Budget    int64     `json:"budget"`
	PlayerIDs []string  `json:"player_ids"`
	TotalCost int64     `json:"total_cost"`
	Points    int64     `json:"points"`
	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type transferDTO struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Week        int       `json:"week"`
	OutPlayerID string    `json:"out_player_id"`
	InPlayerID  string    `json:"in_player_id"`
	CreatedAt   time.Time `json:"created_at"`
}

type createDraftRequest struct {
	UserID    string   `json:"user_id" validate:"required"`
	Week      int      `json:"week" validate:"required,min=1"`
	PlayerIDs []string `json:"player_ids" validate:"required,min=1,dive,required"`
	Budget    int64    `json:"budget" validate:"omitempty,min=1"`
}

type transferRequest struct {
	UserID      string `json:"user_id" validate:"required"`
	Week        int    `json:"week" validate:"required,min=1"`
	OutPlayerID string `json:"out_player_id" validate:"required"`
	InPlayerID  string `json:"in_player_id" validate:"required"`
}

func rosterToDTO(rst roster.Roster) rosterDTO {
	return rosterDTO{
		ID:        rst.ID,
		UserID:    rst.UserID,
		Week:      rst.Week,
		Budget:    rst.Budget,
		PlayerIDs: rst.PlayerIDs,
		TotalCost: rst.TotalCost,
		Points:    rst.Points,
		Version:   rst.Version,
		CreatedAt: rst.CreatedAt,
		UpdatedAt: rst.UpdatedAt,
	}
}

func transferToDTO(t roster.Transfer) transferDTO {
	return transferDTO{
		ID:          t.ID,
		UserID:      t.UserID,
		Week:        t.Week,
		OutPlayerID: t.OutPlayerID,
		InPlayerID:  t.InPlayerID,
		CreatedAt:   t.CreatedAt,
	}
}

func (h *Handler) CreateDraft(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateDraft")
	defer span.End()

	var req createDraftRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	drafted, err := h.rosterService.CreateRoster(ctx, usecase.CreateRosterInput{
		UserID:    req.UserID,
		Week:      req.Week,
		PlayerIDs: req.PlayerIDs,
		Budget:    req.Budget,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create draft failed", "user_id", req.UserID, "week", req.Week, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, rosterToDTO(drafted))
}

func (h *Handler) GetDraft(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDraft")
	defer span.End()

	userID := strings.TrimSpace(r.PathValue("user_id"))
	week, err := parseWeek(r.PathValue("week"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	drafted, err := h.rosterService.GetRoster(ctx, userID, week)
	if err != nil {
		h.logger.WarnContext(ctx, "get draft failed", "user_id", userID, "week", week, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rosterToDTO(drafted))
}

func (h *Handler) CreateTransfer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTransfer")
	defer span.End()

	var req transferRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.transferService.Transfer(ctx, usecase.TransferInput{
		UserID:      req.UserID,
		Week:        req.Week,
		OutPlayerID: req.OutPlayerID,
		InPlayerID:  req.InPlayerID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "transfer failed", "user_id", req.UserID, "week", req.Week, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{
		"status": "ok",
		"roster": rosterToDTO(updated),
	})
}

func (h *Handler) ListTransfers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTransfers")
	defer span.End()

	userID := strings.TrimSpace(r.URL.Query().Get("user_id"))
	week, err := parseWeek(r.URL.Query().Get("week"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	audits, err := h.transferService.ListTransfers(ctx, userID, week)
	if err != nil {
		h.logger.WarnContext(ctx, "list transfers failed", "user_id", userID, "week", week, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]transferDTO, 0, len(audits))
	for _, t := range audits {
		items = append(items, transferToDTO(t))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func parseWeek(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%w: week is required", usecase.ErrInvalidInput)
	}

	week, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: week %q is not a number", usecase.ErrInvalidInput, raw)
	}
	return week, nil
}
