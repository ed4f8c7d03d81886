package repository

//go:generate mockgen -source=info.go -destination=mocks/info.go -package=mocks

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/devhub/pinche-admin-api/infrastructure/database/postgres"
	"github.com/devhub/pinche-admin-api/internal/domain"
)

const (
	infosTable = "info"
)

type InfoRepository interface {
	ListInfos(filters domain.RecordFilters) ([]*domain.Info, error)
	ListInfoIDs(filters domain.RecordFilters) ([]int64, error)
}

type infoRepository struct {
	conn postgres.Conn
}

func NewInfoRepository(conn postgres.Conn) InfoRepository {
	return &infoRepository{
		conn: conn,
	}
}

func (r *infoRepository) ListInfos(filters domain.RecordFilters) ([]*domain.Info, error) {
	query, args, err := applyInfoFilters(
		squirrel.Select(
			"id",
			"owner_id",
			"origin",
			"destination",
			"departure_time",
			"seats",
			"status",
			"created_at",
		).From(infosTable),
		filters,
	).
		OrderBy("departure_time ASC", "id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar caronas: %w", err)
	}
	defer rows.Close()

	infos := make([]*domain.Info, 0)
	for rows.Next() {
		info := &domain.Info{}
		if err := rows.Scan(
			&info.ID,
			&info.OwnerID,
			&info.Origin,
			&info.Destination,
			&info.DepartureTime,
			&info.Seats,
			&info.Status,
			&info.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear carona: %w", err)
		}
		infos = append(infos, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return infos, nil
}

func (r *infoRepository) ListInfoIDs(filters domain.RecordFilters) ([]int64, error) {
	query, args, err := buildListInfoIDsQuery(filters)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar ids das caronas: %w", err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("erro ao processar resultado: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return ids, nil
}

func buildListInfoIDsQuery(filters domain.RecordFilters) (string, []any, error) {
	return applyInfoFilters(squirrel.Select("id").From(infosTable), filters).
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

// applyInfoFilters restringe pela janela de partida (inclusiva) e pelo motorista, quando informado
func applyInfoFilters(queryBuilder squirrel.SelectBuilder, filters domain.RecordFilters) squirrel.SelectBuilder {
	if filters.Begin != nil {
		queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"departure_time": *filters.Begin})
	}

	if filters.End != nil {
		queryBuilder = queryBuilder.Where(squirrel.LtOrEq{"departure_time": *filters.End})
	}

	if filters.OwnerID != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"owner_id": *filters.OwnerID})
	}

	return queryBuilder
}
