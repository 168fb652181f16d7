package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/mlbb-fantasy/api/internal/domain/matchweek"
	"github.com/mlbb-fantasy/api/internal/domain/notification"
	"github.com/mlbb-fantasy/api/internal/usecase"
)

type matchweekDTO struct {
	ID        string     `json:"id"`
	Week      int        `json:"week"`
	Name      string     `json:"name"`
	IsCurrent bool       `json:"is_current"`
	LockTime  *time.Time `json:"lock_time,omitempty"`
}

type createMatchweekRequest struct {
	Week      int        `json:"week" validate:"required,min=1"`
	Name      string     `json:"name" validate:"required,max=100"`
	IsCurrent bool       `json:"is_current"`
	LockTime  *time.Time `json:"lock_time"`
}

type notificationDTO struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Kind      string    `json:"kind"`
	CreatedAt time.Time `json:"created_at"`
}

type createNotificationRequest struct {
	Title   string `json:"title" validate:"required,max=200"`
	Message string `json:"message" validate:"required,max=2000"`
	Kind    string `json:"kind" validate:"omitempty,oneof=match points league system"`
}

type applyPointsRequest struct {
	Week       int                `json:"week" validate:"required,min=1"`
	Entries    []pointsEntryInput `json:"entries" validate:"required,min=1,dive"`
	MaxWorkers int                `json:"max_workers" validate:"omitempty,min=1,max=64"`
}

type pointsEntryInput struct {
	UserID string `json:"user_id" validate:"required"`
	Points int64  `json:"points" validate:"min=0"`
}

func (h *Handler) ListWeeks(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListWeeks")
	defer span.End()

	weeks, err := h.matchweekService.ListWeeks(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list weeks failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]matchweekDTO, 0, len(weeks))
	for _, wk := range weeks {
		items = append(items, matchweekDTO{
			ID:        wk.ID,
			Week:      wk.Week,
			Name:      wk.Name,
			IsCurrent: wk.IsCurrent,
			LockTime:  wk.LockTime,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreateWeek(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateWeek")
	defer span.End()

	var req createMatchweekRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.matchweekService.CreateWeek(ctx, matchweek.Matchweek{
		Week:      req.Week,
		Name:      req.Name,
		IsCurrent: req.IsCurrent,
		LockTime:  req.LockTime,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create week failed", "week", req.Week, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, matchweekDTO{
		ID:        created.ID,
		Week:      created.Week,
		Name:      created.Name,
		IsCurrent: created.IsCurrent,
		LockTime:  created.LockTime,
	})
}

func (h *Handler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListNotifications")
	defer span.End()

	limit := 0
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: limit %q is not a number", usecase.ErrInvalidInput, raw))
			return
		}
		limit = parsed
	}

	items, err := h.notificationService.ListNotifications(ctx, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "list notifications failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]notificationDTO, 0, len(items))
	for _, n := range items {
		out = append(out, notificationDTO{
			ID:        n.ID,
			Title:     n.Title,
			Message:   n.Message,
			Kind:      string(n.Kind),
			CreatedAt: n.CreatedAt,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) CreateNotification(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateNotification")
	defer span.End()

	var req createNotificationRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.notificationService.CreateNotification(ctx, notification.Notification{
		Title:   req.Title,
		Message: req.Message,
		Kind:    notification.Kind(req.Kind),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create notification failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, notificationDTO{
		ID:        created.ID,
		Title:     created.Title,
		Message:   created.Message,
		Kind:      string(created.Kind),
		CreatedAt: created.CreatedAt,
	})
}

func (h *Handler) ApplyPoints(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ApplyPoints")
	defer span.End()

	var req applyPointsRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	entries := make([]usecase.PointsEntry, 0, len(req.Entries))
	for _, entry := range req.Entries {
		entries = append(entries, usecase.PointsEntry{
			UserID: entry.UserID,
			Points: entry.Points,
		})
	}

	result, err := h.pointsService.ApplyPoints(ctx, usecase.ApplyPointsInput{
		Week:       req.Week,
		Entries:    entries,
		MaxWorkers: req.MaxWorkers,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "apply points failed", "week", req.Week, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}
