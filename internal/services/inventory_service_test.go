package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"splybob/internal/auth"
	"splybob/internal/models"
	"splybob/internal/scope"
)

func supplierIdentity(name string) auth.Identity {
	return auth.Authenticated(&models.User{
		Name:  name,
		Email: name + "@example.com",
		Role:  models.RoleSupplier,
	})
}

func managerIdentity() auth.Identity {
	return auth.Authenticated(&models.User{Name: "Boss", Role: models.RoleManager})
}

func capturedClause(repo *mockInventoryRepo) (string, []any) {
	filter := repo.Calls[len(repo.Calls)-1].Arguments.Get(1).(*scope.Filter)
	return filter.Clause()
}

func TestInventoryListSupplierIsPinned(t *testing.T) {
	repo := new(mockInventoryRepo)
	svc := NewInventoryService(repo)
	repo.On("List", mock.Anything, mock.Anything).Return([]*models.InventoryItem{}, nil)

	// The caller asks for a competitor's stock; the query must not honor it.
	_, err := svc.List(context.Background(), supplierIdentity("Acme Corp"),
		InventoryFilters{Supplier: "Globex"})
	require.NoError(t, err)

	clause, args := capturedClause(repo)
	assert.Equal(t, " WHERE supplier ILIKE $1", clause)
	assert.Equal(t, []any{"%Acme Corp%"}, args)
}

func TestInventoryListManagerFiltersPassThrough(t *testing.T) {
	repo := new(mockInventoryRepo)
	svc := NewInventoryService(repo)
	repo.On("List", mock.Anything, mock.Anything).Return([]*models.InventoryItem{}, nil)

	_, err := svc.List(context.Background(), managerIdentity(),
		InventoryFilters{Supplier: "Globex", Category: "Electronics"})
	require.NoError(t, err)

	_, args := capturedClause(repo)
	assert.Equal(t, []any{"%Electronics%", "%Globex%"}, args)
}

func TestInventoryListStatusDashesBecomeSpaces(t *testing.T) {
	repo := new(mockInventoryRepo)
	svc := NewInventoryService(repo)
	repo.On("List", mock.Anything, mock.Anything).Return([]*models.InventoryItem{}, nil)

	_, err := svc.List(context.Background(), managerIdentity(),
		InventoryFilters{Status: "low-stock"})
	require.NoError(t, err)

	clause, args := capturedClause(repo)
	assert.Equal(t, " WHERE status = $1", clause)
	assert.Equal(t, []any{"low stock"}, args)
}

func TestInventoryListSearchFansOut(t *testing.T) {
	repo := new(mockInventoryRepo)
	svc := NewInventoryService(repo)
	repo.On("List", mock.Anything, mock.Anything).Return([]*models.InventoryItem{}, nil)

	_, err := svc.List(context.Background(), managerIdentity(),
		InventoryFilters{Search: "widget"})
	require.NoError(t, err)

	clause, _ := capturedClause(repo)
	assert.Equal(t, " WHERE (name ILIKE $1 OR sku ILIKE $1 OR supplier ILIKE $1)", clause)
}

func TestInventoryCreateDerivesStatus(t *testing.T) {
	repo := new(mockInventoryRepo)
	svc := NewInventoryService(repo)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.InventoryItem")).Return(nil)

	item, err := svc.Create(context.Background(), CreateInventoryRequest{
		Name: "Widget", Category: "Parts", SKU: "W-1", CurrentStock: 0, MinStock: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, models.StockStatusOut, item.Status)
	assert.NotEmpty(t, item.LastUpdated)
}

func TestInventoryCreateValidation(t *testing.T) {
	svc := NewInventoryService(new(mockInventoryRepo))

	_, err := svc.Create(context.Background(), CreateInventoryRequest{Name: "Widget"})
	assert.True(t, IsValidation(err))
	assert.EqualError(t, err, "Name, category, and SKU are required")
}

func TestInventoryUpdateUnknownItem(t *testing.T) {
	repo := new(mockInventoryRepo)
	svc := NewInventoryService(repo)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*models.InventoryItem")).
		Return(pgx.ErrNoRows)

	_, err := svc.Update(context.Background(), uuid.New(), CreateInventoryRequest{
		Name: "Widget", Category: "Parts", SKU: "W-1",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInventoryDeleteUnknownItem(t *testing.T) {
	repo := new(mockInventoryRepo)
	svc := NewInventoryService(repo)
	repo.On("Delete", mock.Anything, mock.AnythingOfType("uuid.UUID")).Return(pgx.ErrNoRows)

	err := svc.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}
