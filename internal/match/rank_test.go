package match

import (
	"testing"

	"github.com/tsmith/scholarship-finder/internal/models"
)

func TestParseSortOrder(t *testing.T) {
	tests := []struct {
		in   string
		want SortOrder
	}{
		{"priority", SortByPriority},
		{"deadline", SortByDeadline},
		{"amount", SortByAmount},
		{"  Deadline  ", SortByDeadline},
		{"AMOUNT", SortByAmount},
		{"", SortByPriority},
		{"garbage", SortByPriority},
	}
	for _, tt := range tests {
		if got := ParseSortOrder(tt.in); got != tt.want {
			t.Fatalf("ParseSortOrder(%q) = %s, expected %s", tt.in, got, tt.want)
		}
	}
}

func TestRankByPriority(t *testing.T) {
	list := []models.Opportunity{
		{Name: "low", PriorityScore: 42},
		{Name: "high", PriorityScore: 91.5},
		{Name: "mid", PriorityScore: 60},
	}
	Rank(list, SortByPriority)
	for i, name := range []string{"high", "mid", "low"} {
		if list[i].Name != name {
			t.Fatalf("position %d: expected %s, got %s", i, name, list[i].Name)
		}
	}
}

func TestRankByDeadlineSentinelLast(t *testing.T) {
	list := []models.Opportunity{
		{Name: "rolling", DaysUntilDeadline: models.NoDeadlineDays},
		{Name: "soon", DaysUntilDeadline: 12},
		{Name: "far", DaysUntilDeadline: 1200},
		{Name: "later", DaysUntilDeadline: 90},
	}
	Rank(list, SortByDeadline)
	// A dated record 1200 days out still ranks ahead of undated records.
	for i, name := range []string{"soon", "later", "far", "rolling"} {
		if list[i].Name != name {
			t.Fatalf("position %d: expected %s, got %s", i, name, list[i].Name)
		}
	}
}

func TestRankByAmount(t *testing.T) {
	list := []models.Opportunity{
		{Name: "small", AmountMax: 1000},
		{Name: "big", AmountMax: 40000},
		{Name: "mid", AmountMax: 7500},
	}
	Rank(list, SortByAmount)
	for i, name := range []string{"big", "mid", "small"} {
		if list[i].Name != name {
			t.Fatalf("position %d: expected %s, got %s", i, name, list[i].Name)
		}
	}
}

func TestRankStableOnTies(t *testing.T) {
	list := []models.Opportunity{
		{Name: "first", PriorityScore: 50},
		{Name: "second", PriorityScore: 50},
		{Name: "third", PriorityScore: 50},
	}
	Rank(list, SortByPriority)
	for i, name := range []string{"first", "second", "third"} {
		if list[i].Name != name {
			t.Fatalf("tied records reordered: position %d = %s", i, list[i].Name)
		}
	}
}
