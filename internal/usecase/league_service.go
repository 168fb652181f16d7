package usecase

import (
	"context"
	"crypto/rand"
	"fmt"
	"strings"
	"time"

	"github.com/mlbb-fantasy/api/internal/domain/league"
	idgen "github.com/mlbb-fantasy/api/internal/platform/id"
	"github.com/mlbb-fantasy/api/internal/platform/logging"
)

// inviteCodeAlphabet omits ambiguous characters (I/O/0/1).
const inviteCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
const inviteCodeLength = 8

type CreateLeagueInput struct {
	Name        string
	OwnerUserID string
}

type JoinLeagueInput struct {
	Code   string
	UserID string
}

type LeagueService struct {
	leagueRepo league.Repository
	idGen      idgen.Generator
	logger     *logging.Logger
	now        func() time.Time
}

func NewLeagueService(leagueRepo league.Repository, idGen idgen.Generator, logger *logging.Logger) *LeagueService {
	if logger == nil {
		logger = logging.Default()
	}

	return &LeagueService{
		leagueRepo: leagueRepo,
		idGen:      idGen,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *LeagueService) CreateLeague(ctx context.Context, input CreateLeagueInput) (league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.CreateLeague")
	defer span.End()

	input.Name = strings.TrimSpace(input.Name)
	input.OwnerUserID = strings.TrimSpace(input.OwnerUserID)
	if input.Name == "" {
		return league.League{}, fmt.Errorf("%w: league name is required", ErrInvalidInput)
	}
	if !idgen.Valid(input.OwnerUserID) {
		return league.League{}, fmt.Errorf("%w: owner_user_id", ErrInvalidID)
	}

	leagueID, err := s.idGen.NewID()
	if err != nil {
		return league.League{}, fmt.Errorf("generate league id: %w", err)
	}
	code, err := generateInviteCode(inviteCodeLength)
	if err != nil {
		return league.League{}, fmt.Errorf("generate invite code: %w", err)
	}

	now := s.now().UTC()
	created := league.League{
		ID:            leagueID,
		Name:          input.Name,
		Code:          code,
		OwnerUserID:   input.OwnerUserID,
		MemberUserIDs: []string{input.OwnerUserID},
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := created.Validate(); err != nil {
		return league.League{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.leagueRepo.Create(ctx, created); err != nil {
		return league.League{}, fmt.Errorf("create league: %w", err)
	}

	s.logger.InfoContext(ctx, "league created",
		"league_id", created.ID,
		"owner_user_id", created.OwnerUserID,
		"code", created.Code,
	)

	return created, nil
}

// JoinByCode adds the user to the league behind the invite code. Joining a
// league the user already belongs to succeeds without a write.
func (s *LeagueService) JoinByCode(ctx context.Context, input JoinLeagueInput) (league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.JoinByCode")
	defer span.End()

	input.Code = strings.ToUpper(strings.TrimSpace(input.Code))
	input.UserID = strings.TrimSpace(input.UserID)
	if input.Code == "" {
		return league.League{}, fmt.Errorf("%w: invite code is required", ErrInvalidInput)
	}
	if !idgen.Valid(input.UserID) {
		return league.League{}, fmt.Errorf("%w: user_id", ErrInvalidID)
	}

	found, exists, err := s.leagueRepo.GetByCode(ctx, input.Code)
	if err != nil {
		return league.League{}, fmt.Errorf("get league by code: %w", err)
	}
	if !exists {
		return league.League{}, fmt.Errorf("%w: league code %s", ErrNotFound, input.Code)
	}

	if found.HasMember(input.UserID) {
		return found, nil
	}

	if err := s.leagueRepo.AddMember(ctx, found.ID, input.UserID); err != nil {
		return league.League{}, fmt.Errorf("add league member: %w", err)
	}
	found.MemberUserIDs = append(found.MemberUserIDs, input.UserID)

	s.logger.InfoContext(ctx, "league joined",
		"league_id", found.ID,
		"user_id", input.UserID,
	)

	return found, nil
}

func (s *LeagueService) GetLeague(ctx context.Context, leagueID string) (league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.GetLeague")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	if !idgen.Valid(leagueID) {
		return league.League{}, fmt.Errorf("%w: league_id", ErrInvalidID)
	}

	found, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return league.League{}, fmt.Errorf("get league by id: %w", err)
	}
	if !exists {
		return league.League{}, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}

	return found, nil
}

func generateInviteCode(length int) (string, error) {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	out := make([]byte, length)
	for i, b := range buf {
		out[i] = inviteCodeAlphabet[int(b)%len(inviteCodeAlphabet)]
	}

	return string(out), nil
}
