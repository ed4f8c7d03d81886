package repository

//go:generate mockgen -source=owner_ranking.go -destination=mocks/owner_ranking.go -package=mocks

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/devhub/pinche-admin-api/infrastructure/database/postgres"
	"github.com/devhub/pinche-admin-api/internal/domain"
)

const (
	ownerRankingTable = "owner_ranking orr"
)

var ownerRankingColumns = []string{
	"orr.id",
	"orr.owner_id",
	"orr.month",
	"orr.owner_name",
	"orr.revenue",
	"orr.position",
	"orr.position_change",
	"orr.previous_position",
	"orr.created_at",
	"orr.updated_at",
}

type OwnerRankingRepository interface {
	GetByMonth(month string) (*domain.OwnerRankingSnapshotResponse, error)
	ListPositionsByMonth(month string) (map[int64]*domain.OwnerRankingSnapshot, error)
	SaveOrUpdateOwnerRanking(month string, rankings []*domain.OwnerRankingSnapshot) error
}

type ownerRankingRepository struct {
	conn postgres.Conn
}

func NewOwnerRankingRepository(conn postgres.Conn) OwnerRankingRepository {
	return &ownerRankingRepository{
		conn: conn,
	}
}

func (r *ownerRankingRepository) GetByMonth(month string) (*domain.OwnerRankingSnapshotResponse, error) {
	rankings, err := r.listByMonth(month)
	if err != nil {
		return nil, err
	}

	ranking := make([]domain.OwnerRankingSnapshot, 0, len(rankings))
	var lastUpdate time.Time

	for _, item := range rankings {
		ranking = append(ranking, *item)

		// Manter o último update mais recente
		if item.UpdatedAt.After(lastUpdate) {
			lastUpdate = item.UpdatedAt
		}
	}

	// Se não há registros, usar tempo atual para lastUpdate
	if lastUpdate.IsZero() {
		lastUpdate = time.Now()
	}

	return &domain.OwnerRankingSnapshotResponse{
		Month:      month,
		Ranking:    ranking,
		LastUpdate: lastUpdate,
	}, nil
}

// ListPositionsByMonth retorna o snapshot do mês indexado pelo id do motorista
func (r *ownerRankingRepository) ListPositionsByMonth(month string) (map[int64]*domain.OwnerRankingSnapshot, error) {
	rankings, err := r.listByMonth(month)
	if err != nil {
		return nil, err
	}

	positions := make(map[int64]*domain.OwnerRankingSnapshot, len(rankings))
	for _, item := range rankings {
		positions[item.OwnerID] = item
	}

	return positions, nil
}

func (r *ownerRankingRepository) listByMonth(month string) ([]*domain.OwnerRankingSnapshot, error) {
	sqlQuery, args, err := squirrel.
		Select(ownerRankingColumns...).
		From(ownerRankingTable).
		Where(squirrel.Eq{"orr.month": month}).
		OrderBy("orr.position ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	rankings := make([]*domain.OwnerRankingSnapshot, 0)
	for rows.Next() {
		item, err := scanOwnerRanking(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear item do ranking: %w", err)
		}
		rankings = append(rankings, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return rankings, nil
}

// SaveOrUpdateOwnerRanking grava o snapshot do mês e remove motoristas que saíram do ranking
func (r *ownerRankingRepository) SaveOrUpdateOwnerRanking(month string, rankings []*domain.OwnerRankingSnapshot) error {
	upsertSQL, upsertArgs, err := buildUpsertOwnerRankingQuery(rankings)
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	ownerIDs := make([]int64, 0, len(rankings))
	for _, ranking := range rankings {
		ownerIDs = append(ownerIDs, ranking.OwnerID)
	}

	deleteBuilder := squirrel.
		Delete("owner_ranking").
		Where(squirrel.Eq{"month": month}).
		PlaceholderFormat(squirrel.Dollar)
	if len(ownerIDs) > 0 {
		deleteBuilder = deleteBuilder.Where(squirrel.NotEq{"owner_id": ownerIDs})
	}

	deleteSQL, deleteArgs, err := deleteBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de remoção: %w", err)
	}

	return r.conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		if _, err := tx.Exec(deleteSQL, deleteArgs...); err != nil {
			return fmt.Errorf("erro ao remover ranking desatualizado: %w", err)
		}

		if len(rankings) == 0 {
			return nil
		}

		if _, err := tx.Exec(upsertSQL, upsertArgs...); err != nil {
			return fmt.Errorf("erro ao executar query de inserção: %w", err)
		}

		return nil
	})
}

func buildUpsertOwnerRankingQuery(rankings []*domain.OwnerRankingSnapshot) (string, []any, error) {
	if len(rankings) == 0 {
		return "", nil, nil
	}

	query := squirrel.StatementBuilder.
		Insert("owner_ranking").
		Columns(
			"owner_id",
			"month",
			"owner_name",
			"revenue",
			"position",
			"position_change",
			"previous_position",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, ranking := range rankings {
		query = query.Values(
			ranking.OwnerID,
			ranking.Month,
			ranking.OwnerName,
			ranking.Revenue,
			ranking.Position,
			ranking.PositionChange,
			ranking.PreviousPosition,
		)
	}

	query = query.Suffix(`
		ON CONFLICT (owner_id, month) DO UPDATE SET
			owner_name = EXCLUDED.owner_name,
			revenue = EXCLUDED.revenue,
			position = EXCLUDED.position,
			position_change = EXCLUDED.position_change,
			previous_position = EXCLUDED.previous_position,
			updated_at = CURRENT_TIMESTAMP
	`)

	return query.ToSql()
}

func scanOwnerRanking(row rowScanner) (*domain.OwnerRankingSnapshot, error) {
	item := &domain.OwnerRankingSnapshot{}

	err := row.Scan(
		&item.ID,
		&item.OwnerID,
		&item.Month,
		&item.OwnerName,
		&item.Revenue,
		&item.Position,
		&item.PositionChange,
		&item.PreviousPosition,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return item, nil
}
