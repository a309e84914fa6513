package match

import (
	"sort"
	"strings"

	"github.com/tsmith/scholarship-finder/internal/models"
)

// SortOrder selects which ranking a result list is returned in.
type SortOrder string

const (
	SortByPriority SortOrder = "priority"
	SortByDeadline SortOrder = "deadline"
	SortByAmount   SortOrder = "amount"
)

// ParseSortOrder maps a request string onto a known order. Unknown or empty
// values fall back to priority, the default presentation.
func ParseSortOrder(s string) SortOrder {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "deadline":
		return SortByDeadline
	case "amount":
		return SortByAmount
	default:
		return SortByPriority
	}
}

// Rank sorts the list in place by the requested order. All sorts are stable
// so records that tie keep their incoming order.
func Rank(list []models.Opportunity, by SortOrder) {
	switch by {
	case SortByDeadline:
		sort.SliceStable(list, func(i, j int) bool {
			di, dj := list[i].DaysUntilDeadline, list[j].DaysUntilDeadline
			// Records without a concrete deadline always sort after dated
			// ones, even when a far-future date exceeds the sentinel value.
			iNone := di == models.NoDeadlineDays
			jNone := dj == models.NoDeadlineDays
			if iNone != jNone {
				return jNone
			}
			return di < dj
		})
	case SortByAmount:
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].AmountMax > list[j].AmountMax
		})
	default:
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].PriorityScore > list[j].PriorityScore
		})
	}
}
