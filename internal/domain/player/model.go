package player

import (
	"errors"
	"fmt"
	"time"
)

// Role is the lane/role a pro player occupies in the draft pool.
type Role string

const (
	RoleTank     Role = "tank"
	RoleMage     Role = "mage"
	RoleAssassin Role = "assassin"
	RoleSupport  Role = "support"
	RoleMarksman Role = "marksman"
	RoleFighter  Role = "fighter"
	RoleRoamer   Role = "roamer"
	RoleGoldlane Role = "goldlane"
	RoleMidlane  Role = "midlane"
	RoleExp      Role = "exp"
	RoleJungler  Role = "jungler"
)

var AllRoles = map[Role]struct{}{
	RoleTank:     {},
	RoleMage:     {},
	RoleAssassin: {},
	RoleSupport:  {},
	RoleMarksman: {},
	RoleFighter:  {},
	RoleRoamer:   {},
	RoleGoldlane: {},
	RoleMidlane:  {},
	RoleExp:      {},
	RoleJungler:  {},
}

// ErrValidation marks a field-level constraint violation on catalog input.
var ErrValidation = errors.New("player validation failed")

// Player is immutable reference data: a draftable pro with a budget cost and
// informational performance stats. Created by the administrative seed
// operation, never mutated by roster or transfer logic.
type Player struct {
	ID         string
	Name       string
	IGN        string
	Team       string
	Role       Role
	Cost       int64
	KDA        float64
	Damage     int64
	Objectives int64
	WinRate    float64
	MVPCount   int
	PhotoURL   string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (p Player) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if p.IGN == "" {
		return fmt.Errorf("%w: ign is required", ErrValidation)
	}
	if p.Team == "" {
		return fmt.Errorf("%w: team is required", ErrValidation)
	}
	if _, ok := AllRoles[p.Role]; !ok {
		return fmt.Errorf("%w: invalid role %q", ErrValidation, p.Role)
	}
	if p.Cost < 1 {
		return fmt.Errorf("%w: cost must be at least 1", ErrValidation)
	}
	if p.KDA < 0 {
		return fmt.Errorf("%w: kda must not be negative", ErrValidation)
	}
	if p.Damage < 0 {
		return fmt.Errorf("%w: damage must not be negative", ErrValidation)
	}
	if p.Objectives < 0 {
		return fmt.Errorf("%w: objectives must not be negative", ErrValidation)
	}
	if p.WinRate < 0 || p.WinRate > 100 {
		return fmt.Errorf("%w: win rate must be within [0,100]", ErrValidation)
	}
	if p.MVPCount < 0 {
		return fmt.Errorf("%w: mvp count must not be negative", ErrValidation)
	}

	return nil
}
