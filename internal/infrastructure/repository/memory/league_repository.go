package memory

import (
	"context"
	"sync"

	"github.com/mlbb-fantasy/api/internal/domain/league"
)

type LeagueRepository struct {
	mu     sync.Mutex
	byID   map[string]league.League
	byCode map[string]string
}

func NewLeagueRepository() *LeagueRepository {
	return &LeagueRepository{
		byID:   make(map[string]league.League),
		byCode: make(map[string]string),
	}
}

func (r *LeagueRepository) Create(_ context.Context, l league.League) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	l.MemberUserIDs = append([]string(nil), l.MemberUserIDs...)
	r.byID[l.ID] = l
	r.byCode[l.Code] = l.ID

	return nil
}

func (r *LeagueRepository) GetByID(_ context.Context, leagueID string) (league.League, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.byID[leagueID]
	if !ok {
		return league.League{}, false, nil
	}
	l.MemberUserIDs = append([]string(nil), l.MemberUserIDs...)

	return l, true, nil
}

func (r *LeagueRepository) GetByCode(_ context.Context, code string) (league.League, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	leagueID, ok := r.byCode[code]
	if !ok {
		return league.League{}, false, nil
	}
	l := r.byID[leagueID]
	l.MemberUserIDs = append([]string(nil), l.MemberUserIDs...)

	return l, true, nil
}

func (r *LeagueRepository) AddMember(_ context.Context, leagueID string, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.byID[leagueID]
	if !ok {
		return nil
	}
	if l.HasMember(userID) {
		return nil
	}

	l.MemberUserIDs = append(append([]string(nil), l.MemberUserIDs...), userID)
	r.byID[leagueID] = l

	return nil
}
