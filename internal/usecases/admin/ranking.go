package admin

import (
	"sort"

	"github.com/devhub/pinche-admin-api/internal/domain"
	"github.com/shopspring/decimal"
)

type ownerTotal struct {
	owner *domain.User
	total decimal.Decimal
}

// rankOwners ordena por total decrescente; empates ficam em ordem crescente de id do motorista
func rankOwners(totals []ownerTotal, collapseTies bool) []*domain.OwnerRankingItem {
	if collapseTies {
		totals = collapseEqualTotals(totals)
	}

	sorted := make([]ownerTotal, len(totals))
	copy(sorted, totals)

	sort.SliceStable(sorted, func(i, j int) bool {
		if cmp := sorted[i].total.Cmp(sorted[j].total); cmp != 0 {
			return cmp > 0
		}
		return sorted[i].owner.ID < sorted[j].owner.ID
	})

	ranking := make([]*domain.OwnerRankingItem, 0, len(sorted))
	for i, item := range sorted {
		ranking = append(ranking, &domain.OwnerRankingItem{
			Position:  i + 1,
			OwnerID:   item.owner.ID,
			OwnerName: item.owner.Name,
			Total:     item.total,
		})
	}

	return ranking
}

// collapseEqualTotals mantém um motorista por total: o último visto substitui os anteriores
func collapseEqualTotals(totals []ownerTotal) []ownerTotal {
	indexByTotal := make(map[string]int, len(totals))
	collapsed := make([]ownerTotal, 0, len(totals))

	for _, item := range totals {
		key := item.total.String()
		if idx, exists := indexByTotal[key]; exists {
			collapsed[idx] = item
			continue
		}
		indexByTotal[key] = len(collapsed)
		collapsed = append(collapsed, item)
	}

	return collapsed
}
