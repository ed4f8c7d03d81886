package repository

import (
	"testing"

	"github.com/devhub/pinche-admin-api/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildUpsertOwnerRankingQuery(t *testing.T) {
	rankings := []*domain.OwnerRankingSnapshot{
		{OwnerID: 1, Month: "01-2024", OwnerName: "Ana", Revenue: decimal.NewFromInt(100), Position: 1},
		{OwnerID: 2, Month: "01-2024", OwnerName: "Bruno", Revenue: decimal.NewFromInt(50), Position: 2, PreviousPosition: 1, PositionChange: -1},
	}

	query, args, err := buildUpsertOwnerRankingQuery(rankings)
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO owner_ranking (owner_id,month,owner_name,revenue,position,position_change,previous_position)")
	assert.Contains(t, query, "VALUES ($1,$2,$3,$4,$5,$6,$7),($8,$9,$10,$11,$12,$13,$14)")
	assert.Contains(t, query, "ON CONFLICT (owner_id, month) DO UPDATE SET")
	assert.Len(t, args, 14)
	assert.Equal(t, "Bruno", args[9])
}

func TestBuildUpsertOwnerRankingQuery_Empty(t *testing.T) {
	query, args, err := buildUpsertOwnerRankingQuery(nil)
	require.NoError(t, err)
	assert.Empty(t, query)
	assert.Nil(t, args)
}
