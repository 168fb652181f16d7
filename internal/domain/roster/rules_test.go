package roster

import (
	"errors"
	"testing"

	"github.com/mlbb-fantasy/api/internal/domain/player"
)

func catalog() []player.Player {
	return []player.Player{
		{ID: "p1", Cost: 40},
		{ID: "p2", Cost: 35},
		{ID: "p3", Cost: 20},
		{ID: "p4", Cost: 24},
		{ID: "p5", Cost: 30},
	}
}

func TestCostOf(t *testing.T) {
	total, err := CostOf([]string{"p1", "p2", "p3"}, catalog())
	if err != nil {
		t.Fatalf("cost of known ids: %v", err)
	}
	if total != 95 {
		t.Fatalf("expected total 95, got %d", total)
	}
}

func TestCostOfDuplicatePricedTwice(t *testing.T) {
	total, err := CostOf([]string{"p3", "p3"}, catalog())
	if err != nil {
		t.Fatalf("cost of duplicate ids: %v", err)
	}
	if total != 40 {
		t.Fatalf("expected duplicate to be priced per occurrence, got %d", total)
	}
}

func TestCostOfUnknownPlayerFails(t *testing.T) {
	_, err := CostOf([]string{"p1", "ghost"}, catalog())
	if !errors.Is(err, ErrUnknownPlayer) {
		t.Fatalf("expected ErrUnknownPlayer, got %v", err)
	}
}

func TestCheckBudgetBoundary(t *testing.T) {
	if err := CheckBudget(100, 100); err != nil {
		t.Fatalf("roster at the cap must pass, got %v", err)
	}
	if err := CheckBudget(101, 100); !errors.Is(err, ErrBudgetExceeded) {
		t.Fatalf("expected ErrBudgetExceeded one unit over, got %v", err)
	}
}

func TestSwap(t *testing.T) {
	got := Swap([]string{"p1", "p2", "p3"}, "p3", "p4")
	want := []string{"p1", "p2", "p4"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestSwapMissingOutIsNoOpRemoval(t *testing.T) {
	got := Swap([]string{"p1", "p2"}, "ghost", "p5")
	if len(got) != 3 || got[2] != "p5" {
		t.Fatalf("expected append-only swap, got %v", got)
	}
}
