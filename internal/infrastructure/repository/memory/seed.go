package memory

import (
	"time"

	"github.com/mlbb-fantasy/api/internal/domain/matchweek"
	"github.com/mlbb-fantasy/api/internal/domain/player"
	"github.com/mlbb-fantasy/api/internal/domain/user"
)

// Seed ids are fixed so local clients and tests can draft without a
// catalog round-trip first.
const (
	SeedPlayerKairi    = "c0ffeec0ffeec0ffee000001"
	SeedPlayerSanz     = "c0ffeec0ffeec0ffee000002"
	SeedPlayerCW       = "c0ffeec0ffeec0ffee000003"
	SeedPlayerKiboy    = "c0ffeec0ffeec0ffee000004"
	SeedPlayerLutpiii  = "c0ffeec0ffeec0ffee000005"
	SeedPlayerAlberttt = "c0ffeec0ffeec0ffee000006"
	SeedPlayerLemon    = "c0ffeec0ffeec0ffee000007"
	SeedPlayerSkylar   = "c0ffeec0ffeec0ffee000008"
	SeedPlayerVyn      = "c0ffeec0ffeec0ffee000009"
	SeedPlayerDyrennn  = "c0ffeec0ffeec0ffee00000a"
	SeedPlayerBranz    = "c0ffeec0ffeec0ffee00000b"
	SeedPlayerCelikenz = "c0ffeec0ffeec0ffee00000c"
	SeedPlayerRinz     = "c0ffeec0ffeec0ffee00000d"
	SeedPlayerUdil     = "c0ffeec0ffeec0ffee00000e"
	SeedPlayerClover   = "c0ffeec0ffeec0ffee00000f"

	SeedUserDemo  = "beefbeefbeefbeefbeef0001"
	SeedUserRival = "beefbeefbeefbeefbeef0002"
)

var seedTime = time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)

func SeedPlayers() []player.Player {
	mk := func(id, name, ign, team string, role player.Role, cost int64, kda, winRate float64, damage, objectives int64, mvp int) player.Player {
		return player.Player{
			ID:         id,
			Name:       name,
			IGN:        ign,
			Team:       team,
			Role:       role,
			Cost:       cost,
			KDA:        kda,
			Damage:     damage,
			Objectives: objectives,
			WinRate:    winRate,
			MVPCount:   mvp,
			CreatedAt:  seedTime,
			UpdatedAt:  seedTime,
		}
	}

	return []player.Player{
		mk(SeedPlayerKairi, "Kairi Rayosdelsol", "Kairi", "ONIC", player.RoleJungler, 40, 5.8, 71.2, 98500, 41, 12),
		mk(SeedPlayerSanz, "Gilang Sanz", "Sanz", "ONIC", player.RoleGoldlane, 35, 4.9, 68.4, 112300, 18, 7),
		mk(SeedPlayerCW, "Calvin Winata", "CW", "ONIC", player.RoleMidlane, 33, 4.5, 66.0, 104800, 12, 6),
		mk(SeedPlayerKiboy, "Nicky Pontonuwu", "Kiboy", "ONIC", player.RoleRoamer, 24, 3.8, 65.1, 31200, 9, 2),
		mk(SeedPlayerLutpiii, "Lutfi Hidayat", "Lutpiii", "ONIC", player.RoleExp, 28, 4.1, 63.7, 88600, 22, 4),
		mk(SeedPlayerAlberttt, "Albert Iskandar", "Alberttt", "RRQ Hoshi", player.RoleJungler, 38, 5.2, 64.9, 94100, 37, 9),
		mk(SeedPlayerLemon, "Ikhsan Rahman", "Lemon", "RRQ Hoshi", player.RoleMidlane, 30, 4.3, 61.5, 99700, 10, 5),
		mk(SeedPlayerSkylar, "Schevenko Tendean", "Skylar", "RRQ Hoshi", player.RoleGoldlane, 32, 4.6, 62.8, 108900, 15, 6),
		mk(SeedPlayerVyn, "Kevin Susanto", "Vyn", "RRQ Hoshi", player.RoleRoamer, 20, 3.4, 60.2, 28700, 8, 1),
		mk(SeedPlayerDyrennn, "Dyren Saputra", "Dyrennn", "RRQ Hoshi", player.RoleExp, 25, 3.9, 59.8, 84200, 19, 3),
		mk(SeedPlayerBranz, "Brandon Lim", "Branz", "Bigetron Alpha", player.RoleGoldlane, 29, 4.2, 55.4, 101500, 13, 4),
		mk(SeedPlayerCelikenz, "Rival Putra", "Celiboy", "Alter Ego", player.RoleJungler, 34, 4.8, 58.9, 91300, 33, 8),
		mk(SeedPlayerRinz, "Arvin Rinaldy", "Rinz", "Geek Fam", player.RoleMidlane, 22, 3.6, 52.1, 86400, 9, 2),
		mk(SeedPlayerUdil, "Muhammad Fadil", "Udil", "Geek Fam", player.RoleGoldlane, 26, 3.9, 53.5, 95800, 11, 3),
		mk(SeedPlayerClover, "Gerald Pangestu", "Clover", "EVOS Glory", player.RoleRoamer, 18, 3.1, 49.7, 26300, 7, 1),
	}
}

func SeedUsers() []user.User {
	return []user.User{
		{
			ID:           SeedUserDemo,
			Username:     "demo_manager",
			Email:        "demo@mlbbfantasy.local",
			PasswordHash: "demo1234",
			CreatedAt:    seedTime,
			UpdatedAt:    seedTime,
		},
		{
			ID:           SeedUserRival,
			Username:     "rival_manager",
			Email:        "rival@mlbbfantasy.local",
			PasswordHash: "rival1234",
			CreatedAt:    seedTime,
			UpdatedAt:    seedTime,
		},
	}
}

func SeedMatchweeks() []matchweek.Matchweek {
	mk := func(id string, week int, name string, current bool) matchweek.Matchweek {
		return matchweek.Matchweek{
			ID:        id,
			Week:      week,
			Name:      name,
			IsCurrent: current,
			CreatedAt: seedTime,
			UpdatedAt: seedTime,
		}
	}

	return []matchweek.Matchweek{
		mk("ba5eba11ba5eba11ba5e0001", 1, "MPL ID Week 1", false),
		mk("ba5eba11ba5eba11ba5e0002", 2, "MPL ID Week 2", false),
		mk("ba5eba11ba5eba11ba5e0003", 3, "MPL ID Week 3", true),
	}
}
