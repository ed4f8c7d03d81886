// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

//go:generate mockgen -source=order.go -destination=mocks/order.go -package=mocks

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/devhub/pinche-admin-api/infrastructure/database/postgres"
	"github.com/devhub/pinche-admin-api/internal/domain"
)

const (
	ordersTable = "orders"
)

// ErrDuplicateKey indica que o insert violou uma restrição UNIQUE (o código do pedido)
var ErrDuplicateKey = errors.New("registro duplicado")

var orderColumns = []string{
	"id",
	"info_id",
	"passenger_id",
	"code",
	"price",
	"seats",
	"status",
	"created_at",
	"updated_at",
}

type OrderRepository interface {
	Insert(order *domain.Order) (int64, error)
	DeleteByID(id int64) (int64, error)
	UpdateByID(update *domain.OrderUpdate) (int64, error)
	GetByID(id int64) (*domain.Order, error)
	ListAll() ([]*domain.Order, error)
	ListByInfoID(infoID int64) ([]*domain.Order, error)
	ListByInfoIDs(infoIDs []int64) ([]*domain.Order, error)
}

type orderRepository struct {
	conn postgres.Conn
}

func NewOrderRepository(conn postgres.Conn) OrderRepository {
	return &orderRepository{
		conn: conn,
	}
}

func (r *orderRepository) Insert(order *domain.Order) (int64, error) {
	query, args, err := buildInsertOrderQuery(order)
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var id int64
	if err := r.conn.QueryRow(query, args...).Scan(&id); err != nil {
		if postgres.IsUniqueViolation(err) {
			return 0, fmt.Errorf("%w: %w", ErrDuplicateKey, err)
		}
		return 0, fmt.Errorf("erro ao inserir pedido: %w", err)
	}

	order.ID = id
	return id, nil
}

func (r *orderRepository) DeleteByID(id int64) (int64, error) {
	query, args, err := squirrel.
		Delete(ordersTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao remover pedido %d: %w", id, err)
	}

	return result.RowsAffected()
}

func (r *orderRepository) UpdateByID(update *domain.OrderUpdate) (int64, error) {
	query, args, err := buildUpdateOrderQuery(update)
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao atualizar pedido %d: %w", update.ID, err)
	}

	return result.RowsAffected()
}

func (r *orderRepository) GetByID(id int64) (*domain.Order, error) {
	query, args, err := squirrel.
		Select(orderColumns...).
		From(ordersTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	order, err := scanOrder(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear pedido: %w", err)
	}

	return order, nil
}

func (r *orderRepository) ListAll() ([]*domain.Order, error) {
	return r.list(squirrel.
		Select(orderColumns...).
		From(ordersTable).
		OrderBy("id ASC"))
}

func (r *orderRepository) ListByInfoID(infoID int64) ([]*domain.Order, error) {
	return r.list(squirrel.
		Select(orderColumns...).
		From(ordersTable).
		Where(squirrel.Eq{"info_id": infoID}).
		OrderBy("id ASC"))
}

func (r *orderRepository) ListByInfoIDs(infoIDs []int64) ([]*domain.Order, error) {
	if len(infoIDs) == 0 {
		return []*domain.Order{}, nil
	}

	return r.list(buildListOrdersByInfoIDsQuery(infoIDs))
}

func (r *orderRepository) list(queryBuilder squirrel.SelectBuilder) ([]*domain.Order, error) {
	query, args, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	orders := make([]*domain.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear pedido: %w", err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return orders, nil
}

func buildInsertOrderQuery(order *domain.Order) (string, []any, error) {
	return squirrel.
		Insert(ordersTable).
		Columns("info_id", "passenger_id", "code", "price", "seats", "status").
		Values(order.InfoID, order.PassengerID, order.Code, order.Price, order.Seats, order.Status).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

// buildUpdateOrderQuery atualiza apenas os campos preenchidos. O preço só entra no SET
// quando veio no corpo; "price": null limpa o valor
func buildUpdateOrderQuery(update *domain.OrderUpdate) (string, []any, error) {
	queryBuilder := squirrel.
		Update(ordersTable).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": update.ID})

	if update.Price.Set {
		queryBuilder = queryBuilder.Set("price", update.Price.Value)
	}

	if update.InfoID != 0 {
		queryBuilder = queryBuilder.Set("info_id", update.InfoID)
	}

	if update.PassengerID != 0 {
		queryBuilder = queryBuilder.Set("passenger_id", update.PassengerID)
	}

	if update.Seats != 0 {
		queryBuilder = queryBuilder.Set("seats", update.Seats)
	}

	if update.Status != "" {
		queryBuilder = queryBuilder.Set("status", update.Status)
	}

	return queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
}

func buildListOrdersByInfoIDsQuery(infoIDs []int64) squirrel.SelectBuilder {
	return squirrel.
		Select(orderColumns...).
		From(ordersTable).
		Where(squirrel.Eq{"info_id": infoIDs}).
		OrderBy("info_id ASC", "id ASC")
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (*domain.Order, error) {
	order := &domain.Order{}

	err := row.Scan(
		&order.ID,
		&order.InfoID,
		&order.PassengerID,
		&order.Code,
		&order.Price,
		&order.Seats,
		&order.Status,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return order, nil
}
