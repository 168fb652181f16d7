package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/mlbb-fantasy/api/internal/domain/player"
)

type playerDTO struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	IGN        string    `json:"ign"`
	Team       string    `json:"team"`
	Role       string    `json:"role"`
	Cost       int64     `json:"cost"`
	KDA        float64   `json:"kda"`
	Damage     int64     `json:"damage"`
	Objectives int64     `json:"objectives"`
	WinRate    float64   `json:"win_rate"`
	MVPCount   int       `json:"mvp_count"`
	PhotoURL   string    `json:"photo_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// createPlayerRequest carries no validate tags: catalog constraints live on
// the domain model so violations surface as 422, not 400.
type createPlayerRequest struct {
	Name       string  `json:"name"`
	IGN        string  `json:"ign"`
	Team       string  `json:"team"`
	Role       string  `json:"role"`
	Cost       int64   `json:"cost"`
	KDA        float64 `json:"kda"`
	Damage     int64   `json:"damage"`
	Objectives int64   `json:"objectives"`
	WinRate    float64 `json:"win_rate"`
	MVPCount   int     `json:"mvp_count"`
	PhotoURL   string  `json:"photo_url"`
}

func playerToDTO(p player.Player) playerDTO {
	return playerDTO{
		ID:         p.ID,
		Name:       p.Name,
		IGN:        p.IGN,
		Team:       p.Team,
		Role:       string(p.Role),
		Cost:       p.Cost,
		KDA:        p.KDA,
		Damage:     p.Damage,
		Objectives: p.Objectives,
		WinRate:    p.WinRate,
		MVPCount:   p.MVPCount,
		PhotoURL:   p.PhotoURL,
		CreatedAt:  p.CreatedAt,
	}
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	filter := player.Filter{
		Role: player.Role(strings.TrimSpace(r.URL.Query().Get("role"))),
		Team: strings.TrimSpace(r.URL.Query().Get("team")),
	}

	players, err := h.playerService.ListPlayers(ctx, filter)
	if err != nil {
		h.logger.WarnContext(ctx, "list players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePlayer")
	defer span.End()

	var req createPlayerRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.playerService.SeedPlayer(ctx, player.Player{
		Name:       req.Name,
		IGN:        req.IGN,
		Team:       req.Team,
		Role:       player.Role(req.Role),
		Cost:       req.Cost,
		KDA:        req.KDA,
		Damage:     req.Damage,
		Objectives: req.Objectives,
		WinRate:    req.WinRate,
		MVPCount:   req.MVPCount,
		PhotoURL:   req.PhotoURL,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create player failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, playerToDTO(created))
}
