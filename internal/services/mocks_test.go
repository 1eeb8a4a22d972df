package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"

	"splybob/internal/models"
	"splybob/internal/scope"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) CreateTx(ctx context.Context, tx pgx.Tx, user *models.User) error {
	return m.Called(ctx, tx, user).Error(0)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *mockUserRepo) GetByEmailAndRole(ctx context.Context, email, role string) (*models.User, error) {
	args := m.Called(ctx, email, role)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

type mockStatusResolver struct {
	mock.Mock
}

func (m *mockStatusResolver) StatusOf(ctx context.Context, ref string) (string, error) {
	args := m.Called(ctx, ref)
	return args.String(0), args.Error(1)
}

type mockInventoryRepo struct {
	mock.Mock
}

func (m *mockInventoryRepo) Create(ctx context.Context, item *models.InventoryItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *mockInventoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.InventoryItem, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(*models.InventoryItem)
	return item, args.Error(1)
}

func (m *mockInventoryRepo) List(ctx context.Context, filter *scope.Filter) ([]*models.InventoryItem, error) {
	args := m.Called(ctx, filter)
	items, _ := args.Get(0).([]*models.InventoryItem)
	return items, args.Error(1)
}

func (m *mockInventoryRepo) Update(ctx context.Context, item *models.InventoryItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *mockInventoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockInventoryRepo) Stats(ctx context.Context) (*models.InventoryStats, error) {
	args := m.Called(ctx)
	stats, _ := args.Get(0).(*models.InventoryStats)
	return stats, args.Error(1)
}

type mockSupplierRepo struct {
	mock.Mock
}

func (m *mockSupplierRepo) CreateTx(ctx context.Context, tx pgx.Tx, supplier *models.Supplier) error {
	return m.Called(ctx, tx, supplier).Error(0)
}

func (m *mockSupplierRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Supplier, error) {
	args := m.Called(ctx, id)
	supplier, _ := args.Get(0).(*models.Supplier)
	return supplier, args.Error(1)
}

func (m *mockSupplierRepo) GetByCode(ctx context.Context, code string) (*models.Supplier, error) {
	args := m.Called(ctx, code)
	supplier, _ := args.Get(0).(*models.Supplier)
	return supplier, args.Error(1)
}

func (m *mockSupplierRepo) List(ctx context.Context, filter *scope.Filter) ([]*models.Supplier, error) {
	args := m.Called(ctx, filter)
	suppliers, _ := args.Get(0).([]*models.Supplier)
	return suppliers, args.Error(1)
}

func (m *mockSupplierRepo) Update(ctx context.Context, supplier *models.Supplier) error {
	return m.Called(ctx, supplier).Error(0)
}

func (m *mockSupplierRepo) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type mockCustomerRepo struct {
	mock.Mock
}

func (m *mockCustomerRepo) Create(ctx context.Context, customer *models.Customer) error {
	return m.Called(ctx, customer).Error(0)
}

func (m *mockCustomerRepo) List(ctx context.Context, filter *scope.Filter) ([]*models.Customer, error) {
	args := m.Called(ctx, filter)
	customers, _ := args.Get(0).([]*models.Customer)
	return customers, args.Error(1)
}

func (m *mockCustomerRepo) Update(ctx context.Context, customer *models.Customer) error {
	return m.Called(ctx, customer).Error(0)
}

func (m *mockCustomerRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	args := m.Called(ctx, id)
	customer, _ := args.Get(0).(*models.Customer)
	return customer, args.Error(1)
}

func (m *mockCustomerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockCustomerRepo) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type mockOrderRepo struct {
	mock.Mock
}

func (m *mockOrderRepo) Create(ctx context.Context, order *models.PurchaseOrder) error {
	return m.Called(ctx, order).Error(0)
}

func (m *mockOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.PurchaseOrder, error) {
	args := m.Called(ctx, id)
	order, _ := args.Get(0).(*models.PurchaseOrder)
	return order, args.Error(1)
}

func (m *mockOrderRepo) List(ctx context.Context, filter *scope.Filter) ([]*models.PurchaseOrder, error) {
	args := m.Called(ctx, filter)
	orders, _ := args.Get(0).([]*models.PurchaseOrder)
	return orders, args.Error(1)
}

func (m *mockOrderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status, actualDelivery string) error {
	return m.Called(ctx, id, status, actualDelivery).Error(0)
}

func (m *mockOrderRepo) CountByStatus(ctx context.Context) (map[string]int, error) {
	args := m.Called(ctx)
	counts, _ := args.Get(0).(map[string]int)
	return counts, args.Error(1)
}
