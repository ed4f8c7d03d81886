package repository

//go:generate mockgen -source=user.go -destination=mocks/user.go -package=mocks

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/devhub/pinche-admin-api/infrastructure/database/postgres"
	"github.com/devhub/pinche-admin-api/internal/domain"
)

const (
	usersTable = "users"
)

var userColumns = []string{"id", "name", "email", "password_hash", "role_id", "active", "created_at", "updated_at"}

type UserRepository interface {
	GetUserByEmail(email string) (*domain.User, error)
	GetUserByID(userID int64) (*domain.User, error)
	ListOwners() ([]*domain.User, error)
}

type userRepository struct {
	conn postgres.Conn
}

func NewUserRepository(conn postgres.Conn) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

func (r *userRepository) GetUserByEmail(email string) (*domain.User, error) {
	return r.getOne(squirrel.Eq{"email": email, "deleted": false})
}

func (r *userRepository) GetUserByID(userID int64) (*domain.User, error) {
	return r.getOne(squirrel.Eq{"id": userID, "deleted": false})
}

func (r *userRepository) getOne(where squirrel.Eq) (*domain.User, error) {
	query, args, err := squirrel.
		Select(userColumns...).
		From(usersTable).
		Where(where).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	var user domain.User
	err = r.conn.QueryRow(query, args...).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.RoleID,
		&user.Active,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// ListOwners retorna todos os motoristas ativos, ordenados por id
func (r *userRepository) ListOwners() ([]*domain.User, error) {
	query, args, err := buildListOwnersQuery()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar motoristas: %w", err)
	}
	defer rows.Close()

	owners := make([]*domain.User, 0)
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Email,
			&user.PasswordHash,
			&user.RoleID,
			&user.Active,
			&user.CreatedAt,
			&user.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao processar resultado: %w", err)
		}
		owners = append(owners, &user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return owners, nil
}

func buildListOwnersQuery() (string, []any, error) {
	return squirrel.
		Select(userColumns...).
		From(usersTable).
		Where(squirrel.Eq{"role_id": domain.RoleOwner, "active": true, "deleted": false}).
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}
