package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"

	"github.com/mlbb-fantasy/api/internal/platform/logging"
	"github.com/mlbb-fantasy/api/internal/usecase"
)

type Handler struct {
	playerService       *usecase.PlayerService
	rosterService       *usecase.RosterService
	transferService     *usecase.TransferService
	leaderboardService  *usecase.LeaderboardService
	leagueService       *usecase.LeagueService
	authService         *usecase.AuthService
	pointsService       *usecase.PointsService
	matchweekService    *usecase.MatchweekService
	notificationService *usecase.NotificationService
	logger              *logging.Logger
	validator           *validator.Validate
}

func NewHandler(
	playerService *usecase.PlayerService,
	rosterService *usecase.RosterService,
	transferService *usecase.TransferService,
	leaderboardService *usecase.LeaderboardService,
	leagueService *usecase.LeagueService,
	authService *usecase.AuthService,
	pointsService *usecase.PointsService,
	matchweekService *usecase.MatchweekService,
	notificationService *usecase.NotificationService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		playerService:       playerService,
		rosterService:       rosterService,
		transferService:     transferService,
		leaderboardService:  leaderboardService,
		leagueService:       leagueService,
		authService:         authService,
		pointsService:       pointsService,
		matchweekService:    matchweekService,
		notificationService: notificationService,
		logger:              logger,
		validator:           validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) decodeRequest(r *http.Request, dst any) error {
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}
