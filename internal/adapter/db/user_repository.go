package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
)

const selectUsersQuery = `
SELECT id, name, email, role, created_at, updated_at
FROM users
`

const listUsersQuery = selectUsersQuery + `ORDER BY name;`

const getUserQuery = selectUsersQuery + `WHERE id = ?;`

const insertUserQuery = `
INSERT INTO users (id, name, email, role, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?);
`

type UserRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

type userRow struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Role      string    `db:"role"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db, now: time.Now}
}

func (r *UserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	var rows []userRow
	if err := r.db.SelectContext(ctx, &rows, listUsersQuery); err != nil {
		return nil, storeError("users.list", err)
	}

	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		user, err := mapUserRowToDomainUser(row)
		if err != nil {
			return nil, domain.NewStoreError("users.list", err)
		}
		users = append(users, user)
	}

	return users, nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	return r.getUser(ctx, "users.get", id)
}

func (r *UserRepository) CreateUser(ctx context.Context, input domain.CreateUserInput) (domain.User, error) {
	const op = "users.create"

	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	if name == "" || email == "" {
		return domain.User{}, domain.NewStoreError(op, domain.ErrInvalidUserInput)
	}
	if !input.Role.IsValid() {
		return domain.User{}, domain.NewStoreError(op, domain.ErrInvalidUserRole)
	}

	id := uuid.NewString()
	now := r.now().UTC()
	if _, err := r.db.ExecContext(ctx, insertUserQuery, id, name, email, string(input.Role), now, now); err != nil {
		return domain.User{}, storeError(op, err)
	}

	return r.getUser(ctx, op, id)
}

func (r *UserRepository) getUser(ctx context.Context, op, id string) (domain.User, error) {
	var row userRow
	if err := r.db.GetContext(ctx, &row, getUserQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.NewStoreError(op, domain.ErrUserNotFound)
		}
		return domain.User{}, storeError(op, err)
	}

	user, err := mapUserRowToDomainUser(row)
	if err != nil {
		return domain.User{}, domain.NewStoreError(op, err)
	}
	return user, nil
}

func mapUserRowToDomainUser(row userRow) (domain.User, error) {
	role, err := domain.ParseUserRole(row.Role)
	if err != nil {
		return domain.User{}, err
	}

	return domain.User{
		ID:        row.ID,
		Name:      row.Name,
		Email:     row.Email,
		Role:      role,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}, nil
}
