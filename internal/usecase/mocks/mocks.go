package mocks

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/tomekh/stockledger/internal/domain"
	"github.com/tomekh/stockledger/internal/usecase"
)

// ErrCacheMiss is returned by MockCache for absent keys.
var ErrCacheMiss = errors.New("cache miss")

// MockProductRepository is a mock implementation of ProductRepository.
type MockProductRepository struct {
	mu       sync.RWMutex
	products map[string]*domain.Product

	CreateFunc           func(ctx context.Context, product *domain.Product) error
	GetByIDFunc          func(ctx context.Context, id string) (*domain.Product, error)
	GetByIDForUpdateFunc func(ctx context.Context, tx usecase.Transaction, id string) (*domain.Product, error)
	UpdateFunc           func(ctx context.Context, product *domain.Product) error
	DeleteFunc           func(ctx context.Context, id string) error
	ListFunc             func(ctx context.Context, limit, offset int) ([]*domain.Product, error)
}

func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[string]*domain.Product),
	}
}

func (m *MockProductRepository) Create(ctx context.Context, product *domain.Product) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, product)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.products[product.ID] = product
	return nil
}

func (m *MockProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if p, ok := m.products[id]; ok {
		return p, nil
	}
	return nil, domain.ErrProductNotFound
}

func (m *MockProductRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Product, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, tx, id)
	}
	return m.GetByID(ctx, id)
}

func (m *MockProductRepository) Update(ctx context.Context, product *domain.Product) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, product)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.products[product.ID]; !ok {
		return domain.ErrProductNotFound
	}
	m.products[product.ID] = product
	return nil
}

func (m *MockProductRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.products[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(m.products, id)
	return nil
}

func (m *MockProductRepository) List(ctx context.Context, limit, offset int) ([]*domain.Product, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var products []*domain.Product
	for _, p := range m.products {
		products = append(products, p)
	}
	return products, nil
}

// MockPurchaseRepository is a mock implementation of PurchaseRepository.
type MockPurchaseRepository struct {
	mu      sync.RWMutex
	entries []*domain.PurchaseEntry

	CreateFunc                 func(ctx context.Context, entry *domain.PurchaseEntry) error
	ListByProductFunc          func(ctx context.Context, productID string) ([]*domain.PurchaseEntry, error)
	SumQuantityByProductFunc   func(ctx context.Context, productID string) (int64, error)
	SumQuantityByProductTxFunc func(ctx context.Context, tx usecase.Transaction, productID string) (int64, error)
	CountByProductFunc         func(ctx context.Context, productID string) (int64, error)
}

func NewMockPurchaseRepository() *MockPurchaseRepository {
	return &MockPurchaseRepository{}
}

func (m *MockPurchaseRepository) Create(ctx context.Context, entry *domain.PurchaseEntry) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, entry)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, entry)
	return nil
}

func (m *MockPurchaseRepository) ListByProduct(ctx context.Context, productID string) ([]*domain.PurchaseEntry, error) {
	if m.ListByProductFunc != nil {
		return m.ListByProductFunc(ctx, productID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var entries []*domain.PurchaseEntry
	for _, e := range m.entries {
		if e.ProductID == productID {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

func (m *MockPurchaseRepository) SumQuantityByProduct(ctx context.Context, productID string) (int64, error) {
	if m.SumQuantityByProductFunc != nil {
		return m.SumQuantityByProductFunc(ctx, productID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var sum int64
	for _, e := range m.entries {
		if e.ProductID == productID {
			sum += e.Quantity
		}
	}
	return sum, nil
}

func (m *MockPurchaseRepository) SumQuantityByProductTx(ctx context.Context, tx usecase.Transaction, productID string) (int64, error) {
	if m.SumQuantityByProductTxFunc != nil {
		return m.SumQuantityByProductTxFunc(ctx, tx, productID)
	}
	return m.SumQuantityByProduct(ctx, productID)
}

func (m *MockPurchaseRepository) CountByProduct(ctx context.Context, productID string) (int64, error) {
	if m.CountByProductFunc != nil {
		return m.CountByProductFunc(ctx, productID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var count int64
	for _, e := range m.entries {
		if e.ProductID == productID {
			count++
		}
	}
	return count, nil
}

// MockSaleRepository is a mock implementation of SaleRepository.
type MockSaleRepository struct {
	mu      sync.RWMutex
	entries []*domain.SaleEntry

	CreateFunc                 func(ctx context.Context, tx usecase.Transaction, entry *domain.SaleEntry) error
	ListByProductFunc          func(ctx context.Context, productID string) ([]*domain.SaleEntry, error)
	SumQuantityByProductFunc   func(ctx context.Context, productID string) (int64, error)
	SumQuantityByProductTxFunc func(ctx context.Context, tx usecase.Transaction, productID string) (int64, error)
	CountByProductFunc         func(ctx context.Context, productID string) (int64, error)
}

func NewMockSaleRepository() *MockSaleRepository {
	return &MockSaleRepository{}
}

func (m *MockSaleRepository) Create(ctx context.Context, tx usecase.Transaction, entry *domain.SaleEntry) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, entry)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, entry)
	return nil
}

func (m *MockSaleRepository) ListByProduct(ctx context.Context, productID string) ([]*domain.SaleEntry, error) {
	if m.ListByProductFunc != nil {
		return m.ListByProductFunc(ctx, productID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var entries []*domain.SaleEntry
	for _, e := range m.entries {
		if e.ProductID == productID {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

func (m *MockSaleRepository) SumQuantityByProduct(ctx context.Context, productID string) (int64, error) {
	if m.SumQuantityByProductFunc != nil {
		return m.SumQuantityByProductFunc(ctx, productID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var sum int64
	for _, e := range m.entries {
		if e.ProductID == productID {
			sum += e.Quantity
		}
	}
	return sum, nil
}

func (m *MockSaleRepository) SumQuantityByProductTx(ctx context.Context, tx usecase.Transaction, productID string) (int64, error) {
	if m.SumQuantityByProductTxFunc != nil {
		return m.SumQuantityByProductTxFunc(ctx, tx, productID)
	}
	return m.SumQuantityByProduct(ctx, productID)
}

func (m *MockSaleRepository) CountByProduct(ctx context.Context, productID string) (int64, error) {
	if m.CountByProductFunc != nil {
		return m.CountByProductFunc(ctx, productID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var count int64
	for _, e := range m.entries {
		if e.ProductID == productID {
			count++
		}
	}
	return count, nil
}

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.User

	CreateFunc     func(ctx context.Context, user *domain.User) error
	GetByIDFunc    func(ctx context.Context, id string) (*domain.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
	UpdateFunc     func(ctx context.Context, user *domain.User) error
	DeleteFunc     func(ctx context.Context, id string) error
	ListFunc       func(ctx context.Context, limit, offset int) ([]*domain.User, error)
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[string]*domain.User),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if u, ok := m.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, user)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.users, id)
	return nil
}

func (m *MockUserRepository) List(ctx context.Context, limit, offset int) ([]*domain.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var users []*domain.User
	for _, u := range m.users {
		copied := *u
		users = append(users, &copied)
	}
	return users, nil
}

// MockTransaction is a no-op transaction.
type MockTransaction struct {
	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error

	Committed  bool
	RolledBack bool
}

func (t *MockTransaction) Commit(ctx context.Context) error {
	if t.CommitFunc != nil {
		return t.CommitFunc(ctx)
	}
	t.Committed = true
	return nil
}

func (t *MockTransaction) Rollback(ctx context.Context) error {
	if t.RollbackFunc != nil {
		return t.RollbackFunc(ctx)
	}
	if !t.Committed {
		t.RolledBack = true
	}
	return nil
}

// MockTxManager is a mock implementation of TransactionManager.
type MockTxManager struct {
	BeginFunc func(ctx context.Context) (usecase.Transaction, error)
}

func NewMockTxManager() *MockTxManager {
	return &MockTxManager{}
}

func (m *MockTxManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	return &MockTransaction{}, nil
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	mu      sync.Mutex
	counter int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return "mock-id-" + strconv.Itoa(m.counter)
}

// MockRetrier runs the operation once without retrying.
type MockRetrier struct {
	RetryFunc func(ctx context.Context, operation func() error) error
}

func NewMockRetrier() *MockRetrier {
	return &MockRetrier{}
}

func (m *MockRetrier) Retry(ctx context.Context, operation func() error) error {
	if m.RetryFunc != nil {
		return m.RetryFunc(ctx, operation)
	}
	return operation()
}

// MockCache is an in-memory Cache implementation.
type MockCache struct {
	mu     sync.RWMutex
	values map[string]string

	GetFunc    func(ctx context.Context, key string) (string, error)
	SetFunc    func(ctx context.Context, key, value string, ttl time.Duration) error
	DeleteFunc func(ctx context.Context, key string) error
}

func NewMockCache() *MockCache {
	return &MockCache{values: make(map[string]string)}
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if v, ok := m.values[key]; ok {
		return v, nil
	}
	return "", ErrCacheMiss
}

func (m *MockCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}
