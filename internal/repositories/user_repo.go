package repositories

import (
	"context"
	"errors"
	"strings"

	"splybob/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	CreateTx(ctx context.Context, tx pgx.Tx, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByEmailAndRole(ctx context.Context, email, role string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

type userRepo struct {
	db DB
}

func NewUserRepository(db DB) UserRepository {
	return &userRepo{db: db}
}

// NormalizeEmail lower-cases and trims an email address. Every read and
// write of the email column goes through this, so lookups are
// case-insensitive regardless of how the address was typed.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

const insertUserSQL = `
	INSERT INTO users (id, name, email, password_hash, role, company_name, supplier_id, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
`

func (r *userRepo) Create(ctx context.Context, user *models.User) error {
	return insertUser(ctx, r.db, user)
}

// CreateTx inserts the user inside an existing transaction. Supplier
// provisioning uses this so the supplier row and its login user commit or
// roll back together.
func (r *userRepo) CreateTx(ctx context.Context, tx pgx.Tx, user *models.User) error {
	return insertUser(ctx, tx, user)
}

func insertUser(ctx context.Context, q querier, user *models.User) error {
	user.Email = NormalizeEmail(user.Email)
	_, err := q.Exec(ctx, insertUserSQL,
		user.ID, user.Name, user.Email, user.PasswordHash, user.Role, user.CompanyName, user.SupplierID)
	return err
}

const selectUserSQL = `
	SELECT id, name, email, password_hash, role, company_name, supplier_id, created_at, updated_at
	FROM users
`

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	row := r.db.QueryRow(ctx, selectUserSQL+` WHERE email = $1`, NormalizeEmail(email))
	return scanUser(row)
}

func (r *userRepo) GetByEmailAndRole(ctx context.Context, email, role string) (*models.User, error) {
	row := r.db.QueryRow(ctx, selectUserSQL+` WHERE email = $1 AND role = $2`, NormalizeEmail(email), role)
	return scanUser(row)
}

func (r *userRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	row := r.db.QueryRow(ctx, selectUserSQL+` WHERE id = $1`, id)
	return scanUser(row)
}

// scanUser maps "no rows" to a nil user: an absent user is a normal outcome
// for the callers, not an error.
func scanUser(row pgx.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Role,
		&user.CompanyName, &user.SupplierID, &user.CreatedAt, &user.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}
