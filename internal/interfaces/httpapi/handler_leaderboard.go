package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/mlbb-fantasy/api/internal/usecase"
)

type leaderboardRowDTO struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Points   int64  `json:"points"`
}

func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeaderboard")
	defer span.End()

	var week *int
	if raw := strings.TrimSpace(r.URL.Query().Get("week")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: week %q is not a number", usecase.ErrInvalidInput, raw))
			return
		}
		week = &parsed
	}

	limit := 0
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: limit %q is not a number", usecase.ErrInvalidInput, raw))
			return
		}
		limit = parsed
	}

	rows, err := h.leaderboardService.Leaderboard(ctx, week, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "leaderboard failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]leaderboardRowDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, leaderboardRowDTO{
			UserID:   row.UserID,
			Username: row.Username,
			Points:   row.Points,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
