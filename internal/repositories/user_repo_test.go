package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"splybob/internal/models"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "user@example.com", NormalizeEmail("  User@EXAMPLE.com "))
	assert.Equal(t, "user@example.com", NormalizeEmail("user@example.com"))
	assert.Equal(t, "", NormalizeEmail("   "))
}

func TestUserCreateNormalizesEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock)
	user := &models.User{
		ID:           uuid.New(),
		Name:         "Jordan",
		Email:        " Jordan@Example.COM ",
		PasswordHash: "$2a$12$hash",
		Role:         models.RoleManager,
	}

	mock.ExpectExec("INSERT INTO users").
		WithArgs(user.ID, "Jordan", "jordan@example.com", "$2a$12$hash",
			models.RoleManager, "", "").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Create(context.Background(), user))
	assert.Equal(t, "jordan@example.com", user.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func userRows(user *models.User) *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "name", "email", "password_hash", "role", "company_name",
		"supplier_id", "created_at", "updated_at",
	}).AddRow(user.ID, user.Name, user.Email, user.PasswordHash, user.Role,
		user.CompanyName, user.SupplierID, time.Now(), time.Now())
}

func TestUserGetByEmailNormalizesLookup(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock)
	want := &models.User{ID: uuid.New(), Name: "Jordan", Email: "jordan@example.com",
		PasswordHash: "$2a$12$hash", Role: models.RoleManager}

	mock.ExpectQuery("FROM users").
		WithArgs("jordan@example.com").
		WillReturnRows(userRows(want))

	got, err := repo.GetByEmail(context.Background(), " Jordan@Example.COM ")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want.ID, got.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserGetByEmailAbsentIsNil(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock)
	mock.ExpectQuery("FROM users").
		WithArgs("nobody@example.com").
		WillReturnError(pgx.ErrNoRows)

	got, err := repo.GetByEmail(context.Background(), "nobody@example.com")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserGetByEmailAndRole(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock)
	want := &models.User{ID: uuid.New(), Email: "acme@example.com", Role: models.RoleSupplier}

	mock.ExpectQuery("FROM users").
		WithArgs("acme@example.com", models.RoleSupplier).
		WillReturnRows(userRows(want))

	got, err := repo.GetByEmailAndRole(context.Background(), "acme@example.com", models.RoleSupplier)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, models.RoleSupplier, got.Role)
}
