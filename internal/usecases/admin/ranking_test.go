package admin

import (
	"testing"

	"github.com/devhub/pinche-admin-api/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func owner(id int64, name string) *domain.User {
	return &domain.User{ID: id, Name: name}
}

func TestRankOwners(t *testing.T) {
	tests := []struct {
		name         string
		totals       []ownerTotal
		collapseTies bool
		expectedIDs  []int64
	}{
		{
			name: "A (100) e B (50) resultam em [A, B]",
			totals: []ownerTotal{
				{owner: owner(2, "B"), total: decimal.NewFromInt(50)},
				{owner: owner(1, "A"), total: decimal.NewFromInt(100)},
			},
			expectedIDs: []int64{1, 2},
		},
		{
			name: "Empate mantém ambos ordenados por id",
			totals: []ownerTotal{
				{owner: owner(5, "C"), total: decimal.NewFromInt(100)},
				{owner: owner(1, "A"), total: decimal.NewFromInt(100)},
				{owner: owner(2, "B"), total: decimal.NewFromInt(50)},
			},
			expectedIDs: []int64{1, 5, 2},
		},
		{
			name: "Empate colapsado mantém apenas o último visto",
			totals: []ownerTotal{
				{owner: owner(1, "A"), total: decimal.NewFromInt(100)},
				{owner: owner(5, "C"), total: decimal.RequireFromString("100.00")},
				{owner: owner(2, "B"), total: decimal.NewFromInt(50)},
			},
			collapseTies: true,
			expectedIDs:  []int64{5, 2},
		},
		{
			name: "Valores com centavos",
			totals: []ownerTotal{
				{owner: owner(1, "A"), total: decimal.RequireFromString("10.10")},
				{owner: owner(2, "B"), total: decimal.RequireFromString("10.20")},
			},
			expectedIDs: []int64{2, 1},
		},
		{
			name:        "Sem motoristas",
			totals:      []ownerTotal{},
			expectedIDs: []int64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ranking := rankOwners(tt.totals, tt.collapseTies)

			ids := make([]int64, 0, len(ranking))
			for i, item := range ranking {
				ids = append(ids, item.OwnerID)
				assert.Equal(t, i+1, item.Position)
			}
			assert.Equal(t, tt.expectedIDs, ids)
		})
	}
}

func TestRankOwners_DoesNotMutateInput(t *testing.T) {
	totals := []ownerTotal{
		{owner: owner(2, "B"), total: decimal.NewFromInt(1)},
		{owner: owner(1, "A"), total: decimal.NewFromInt(2)},
	}

	rankOwners(totals, false)

	assert.Equal(t, int64(2), totals[0].owner.ID)
}

func TestSumPrices(t *testing.T) {
	orders := []*domain.Order{
		{Price: decimal.NewNullDecimal(decimal.RequireFromString("0.10"))},
		{Price: decimal.NewNullDecimal(decimal.RequireFromString("0.20"))},
		{Price: decimal.NullDecimal{}},
		nil,
	}

	assert.True(t, decimal.RequireFromString("0.30").Equal(domain.SumPrices(orders)))
	assert.True(t, domain.SumPrices(nil).IsZero())
}
