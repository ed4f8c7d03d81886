package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OwnerRankingItem é uma linha do ranking de motoristas por receita
type OwnerRankingItem struct {
	Position  int             `json:"position"`
	OwnerID   int64           `json:"owner_id"`
	OwnerName string          `json:"owner_name"`
	Total     decimal.Decimal `json:"total"`
}

type OwnerRankingSnapshotResponse struct {
	Month      string                 `json:"month"`
	Ranking    []OwnerRankingSnapshot `json:"ranking"`
	LastUpdate time.Time              `json:"last_update"`
}

// OwnerRankingSnapshot é o ranking mensal persistido de um motorista
type OwnerRankingSnapshot struct {
	ID               int64           `json:"id"`
	OwnerID          int64           `json:"owner_id"`
	Month            string          `json:"month"` // Formato mm-yyyy (ex: 01-2024)
	OwnerName        string          `json:"owner_name"`
	Revenue          decimal.Decimal `json:"revenue"`
	Position         int             `json:"position"`
	PositionChange   int             `json:"position_change"` // Valor positivo = subiu, negativo = desceu, 0 = manteve
	PreviousPosition int             `json:"previous_position"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// OwnerRankingUpdatedEvent é publicado após cada snapshot salvo
type OwnerRankingUpdatedEvent struct {
	Month     string                 `json:"month"`
	Ranking   []OwnerRankingSnapshot `json:"ranking"`
	UpdatedAt time.Time              `json:"updated_at"`
}
