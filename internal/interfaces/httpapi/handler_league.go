package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/mlbb-fantasy/api/internal/domain/league"
	"github.com/mlbb-fantasy/api/internal/usecase"
)

type leagueDTO struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Code          string    `json:"code"`
	OwnerUserID   string    `json:"owner_user_id"`
	MemberUserIDs []string  `json:"member_user_ids"`
	CreatedAt     time.Time `json:"created_at"`
}

type createLeagueRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	OwnerUserID string `json:"owner_user_id" validate:"required"`
}

type joinLeagueRequest struct {
	Code   string `json:"code" validate:"required"`
	UserID string `json:"user_id" validate:"required"`
}

func leagueToDTO(l league.League) leagueDTO {
	return leagueDTO{
		ID:            l.ID,
		Name:          l.Name,
		Code:          l.Code,
		OwnerUserID:   l.OwnerUserID,
		MemberUserIDs: l.MemberUserIDs,
		CreatedAt:     l.CreatedAt,
	}
}

func (h *Handler) CreateLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateLeague")
	defer span.End()

	var req createLeagueRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.leagueService.CreateLeague(ctx, usecase.CreateLeagueInput{
		Name:        req.Name,
		OwnerUserID: req.OwnerUserID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create league failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, leagueToDTO(created))
}

func (h *Handler) JoinLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.JoinLeague")
	defer span.End()

	var req joinLeagueRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	joined, err := h.leagueService.JoinByCode(ctx, usecase.JoinLeagueInput{
		Code:   req.Code,
		UserID: req.UserID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "join league failed", "code", req.Code, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leagueToDTO(joined))
}

func (h *Handler) GetLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeague")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("league_id"))
	found, err := h.leagueService.GetLeague(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "get league failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leagueToDTO(found))
}
