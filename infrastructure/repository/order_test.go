package repository

import (
	"testing"

	"github.com/devhub/pinche-admin-api/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildInsertOrderQuery(t *testing.T) {
	order := &domain.Order{
		InfoID:      7,
		PassengerID: 42,
		Code:        "Ab12Cd",
		Price:       decimal.NewNullDecimal(decimal.RequireFromString("25.50")),
		Seats:       2,
		Status:      domain.OrderStatusBooked,
	}

	query, args, err := buildInsertOrderQuery(order)
	require.NoError(t, err)

	assert.Equal(t,
		"INSERT INTO orders (info_id,passenger_id,code,price,seats,status) VALUES ($1,$2,$3,$4,$5,$6) RETURNING id",
		query,
	)
	assert.Len(t, args, 6)
	assert.Equal(t, int64(7), args[0])
	assert.Equal(t, "Ab12Cd", args[2])
	assert.Equal(t, order.Price, args[3])
}

func TestBuildUpdateOrderQuery(t *testing.T) {
	tests := []struct {
		name         string
		update       *domain.OrderUpdate
		contains     []string
		notContains  []string
		expectedArgs int
	}{
		{
			name: "Apenas status não toca no preço",
			update: &domain.OrderUpdate{
				ID:     3,
				Status: domain.OrderStatusFinished,
			},
			contains:     []string{"UPDATE orders SET updated_at = CURRENT_TIMESTAMP", "status = $1", "WHERE id = $2"},
			notContains:  []string{"price", "info_id", "seats", "passenger_id"},
			expectedArgs: 2,
		},
		{
			name: "Preço nulo explícito",
			update: &domain.OrderUpdate{
				ID:    3,
				Price: domain.OptionalPrice{Set: true},
			},
			contains:     []string{"price = $1", "WHERE id = $2"},
			notContains:  []string{"status"},
			expectedArgs: 2,
		},
		{
			name: "Todos os campos preenchidos",
			update: &domain.OrderUpdate{
				ID:          3,
				InfoID:      9,
				PassengerID: 11,
				Seats:       1,
				Status:      domain.OrderStatusConfirmed,
				Price:       domain.OptionalPrice{Set: true, Value: decimal.NewNullDecimal(decimal.NewFromInt(10))},
			},
			contains:     []string{"price = $1", "info_id = $2", "passenger_id = $3", "seats = $4", "status = $5", "WHERE id = $6"},
			expectedArgs: 6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildUpdateOrderQuery(tt.update)
			require.NoError(t, err)

			for _, fragment := range tt.contains {
				assert.Contains(t, query, fragment)
			}
			for _, fragment := range tt.notContains {
				assert.NotContains(t, query, fragment)
			}
			assert.Len(t, args, tt.expectedArgs)
		})
	}
}

func TestBuildListOrdersByInfoIDsQuery(t *testing.T) {
	query, args, err := buildListOrdersByInfoIDsQuery([]int64{1, 2, 3}).
		PlaceholderFormat(dollar).
		ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "FROM orders WHERE info_id IN ($1,$2,$3)")
	assert.Contains(t, query, "ORDER BY info_id ASC, id ASC")
	assert.Equal(t, []any{int64(1), int64(2), int64(3)}, args)
}

func TestOrderRepository_ListByInfoIDsEmpty(t *testing.T) {
	// Sem ids não deve tocar no banco
	repo := &orderRepository{}

	orders, err := repo.ListByInfoIDs(nil)
	require.NoError(t, err)
	assert.Empty(t, orders)
	assert.NotNil(t, orders)
}
