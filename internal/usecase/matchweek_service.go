package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mlbb-fantasy/api/internal/domain/matchweek"
	idgen "github.com/mlbb-fantasy/api/internal/platform/id"
)

type MatchweekService struct {
	weekRepo matchweek.Repository
	idGen    idgen.Generator
	now      func() time.Time
}

func NewMatchweekService(weekRepo matchweek.Repository, idGen idgen.Generator) *MatchweekService {
	return &MatchweekService{
		weekRepo: weekRepo,
		idGen:    idGen,
		now:      time.Now,
	}
}

func (s *MatchweekService) ListWeeks(ctx context.Context) ([]matchweek.Matchweek, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchweekService.ListWeeks")
	defer span.End()

	items, err := s.weekRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matchweeks: %w", err)
	}

	return items, nil
}

func (s *MatchweekService) CreateWeek(ctx context.Context, m matchweek.Matchweek) (matchweek.Matchweek, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchweekService.CreateWeek")
	defer span.End()

	m.Name = strings.TrimSpace(m.Name)
	if err := m.Validate(); err != nil {
		return matchweek.Matchweek{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	weekID, err := s.idGen.NewID()
	if err != nil {
		return matchweek.Matchweek{}, fmt.Errorf("generate matchweek id: %w", err)
	}

	now := s.now().UTC()
	m.ID = weekID
	m.CreatedAt = now
	m.UpdatedAt = now

	if err := s.weekRepo.Create(ctx, m); err != nil {
		return matchweek.Matchweek{}, fmt.Errorf("create matchweek: %w", err)
	}

	return m, nil
}
