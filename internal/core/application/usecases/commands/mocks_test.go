package commands_test

import (
	"context"
	"time"

	"kitchenpos/internal/core/application/usecases/commands"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/core/domain/model/menugroup"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/core/domain/model/ordertable"
	"kitchenpos/internal/core/domain/model/product"
	"kitchenpos/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *product.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, p *product.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*product.Product)
	return p, args.Error(1)
}

func (m *MockProductRepository) GetAllByIDs(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error) {
	args := m.Called(ctx, ids)
	products, _ := args.Get(0).([]*product.Product)
	return products, args.Error(1)
}

type MockMenuGroupRepository struct{ mock.Mock }

func (m *MockMenuGroupRepository) Add(ctx context.Context, g *menugroup.MenuGroup) error {
	return m.Called(ctx, g).Error(0)
}

func (m *MockMenuGroupRepository) Get(ctx context.Context, id kernel.UUID) (*menugroup.MenuGroup, error) {
	args := m.Called(ctx, id)
	g, _ := args.Get(0).(*menugroup.MenuGroup)
	return g, args.Error(1)
}

type MockMenuRepository struct{ mock.Mock }

func (m *MockMenuRepository) Add(ctx context.Context, mn *menu.Menu) error {
	return m.Called(ctx, mn).Error(0)
}

func (m *MockMenuRepository) Update(ctx context.Context, mn *menu.Menu) error {
	return m.Called(ctx, mn).Error(0)
}

func (m *MockMenuRepository) Get(ctx context.Context, id kernel.UUID) (*menu.Menu, error) {
	args := m.Called(ctx, id)
	mn, _ := args.Get(0).(*menu.Menu)
	return mn, args.Error(1)
}

func (m *MockMenuRepository) GetAllByIDs(ctx context.Context, ids []kernel.UUID) ([]*menu.Menu, error) {
	args := m.Called(ctx, ids)
	menus, _ := args.Get(0).([]*menu.Menu)
	return menus, args.Error(1)
}

func (m *MockMenuRepository) GetAllByProductID(ctx context.Context, productID kernel.UUID) ([]*menu.Menu, error) {
	args := m.Called(ctx, productID)
	menus, _ := args.Get(0).([]*menu.Menu)
	return menus, args.Error(1)
}

func (m *MockMenuRepository) GetAllDisplayed(ctx context.Context) ([]*menu.Menu, error) {
	args := m.Called(ctx)
	menus, _ := args.Get(0).([]*menu.Menu)
	return menus, args.Error(1)
}

type MockOrderTableRepository struct{ mock.Mock }

func (m *MockOrderTableRepository) Add(ctx context.Context, t *ordertable.OrderTable) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockOrderTableRepository) Update(ctx context.Context, t *ordertable.OrderTable) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockOrderTableRepository) Get(ctx context.Context, id kernel.UUID) (*ordertable.OrderTable, error) {
	args := m.Called(ctx, id)
	t, _ := args.Get(0).(*ordertable.OrderTable)
	return t, args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) ExistsForTableWithStatusNot(
	ctx context.Context,
	tableID kernel.UUID,
	status order.Status,
) (bool, error) {
	args := m.Called(ctx, tableID, status)
	return args.Bool(0), args.Error(1)
}

// MockUoW satisfies every unit of work the handlers ask for.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	return m.Called().Get(0).(ports.ProductRepository)
}

func (m *MockUoW) MenuGroupRepository() ports.MenuGroupRepository {
	return m.Called().Get(0).(ports.MenuGroupRepository)
}

func (m *MockUoW) MenuRepository() ports.MenuRepository {
	return m.Called().Get(0).(ports.MenuRepository)
}

func (m *MockUoW) OrderTableRepository() ports.OrderTableRepository {
	return m.Called().Get(0).(ports.OrderTableRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

type MockProductUoWFactory struct{ mock.Mock }

func (m *MockProductUoWFactory) Create() commands.ProductUoW {
	return m.Called().Get(0).(commands.ProductUoW)
}

type MockMenuGroupUoWFactory struct{ mock.Mock }

func (m *MockMenuGroupUoWFactory) Create() commands.MenuGroupUoW {
	return m.Called().Get(0).(commands.MenuGroupUoW)
}

type MockMenuUoWFactory struct{ mock.Mock }

func (m *MockMenuUoWFactory) Create() commands.MenuUoW {
	return m.Called().Get(0).(commands.MenuUoW)
}

type MockOrderTableUoWFactory struct{ mock.Mock }

func (m *MockOrderTableUoWFactory) Create() commands.OrderTableUoW {
	return m.Called().Get(0).(commands.OrderTableUoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	return m.Called().Get(0).(commands.OrderUoW)
}

type MockContentPolicy struct{ mock.Mock }

func (m *MockContentPolicy) ContainsDisallowedContent(ctx context.Context, text string) (bool, error) {
	args := m.Called(ctx, text)
	return args.Bool(0), args.Error(1)
}

type MockDeliveryDispatcher struct{ mock.Mock }

func (m *MockDeliveryDispatcher) RequestDelivery(
	ctx context.Context,
	orderID kernel.UUID,
	amount decimal.Decimal,
	address string,
) error {
	return m.Called(ctx, orderID, amount, address).Error(0)
}

// repos bundles the mocked repositories behind one unit of work.
type repos struct {
	uow        *MockUoW
	products   *MockProductRepository
	menuGroups *MockMenuGroupRepository
	menus      *MockMenuRepository
	tables     *MockOrderTableRepository
	orders     *MockOrderRepository
}

func newRepos() repos {
	r := repos{
		uow:        new(MockUoW),
		products:   new(MockProductRepository),
		menuGroups: new(MockMenuGroupRepository),
		menus:      new(MockMenuRepository),
		tables:     new(MockOrderTableRepository),
		orders:     new(MockOrderRepository),
	}
	r.uow.On("ProductRepository").Return(r.products).Maybe()
	r.uow.On("MenuGroupRepository").Return(r.menuGroups).Maybe()
	r.uow.On("MenuRepository").Return(r.menus).Maybe()
	r.uow.On("OrderTableRepository").Return(r.tables).Maybe()
	r.uow.On("OrderRepository").Return(r.orders).Maybe()
	return r
}

func (r repos) assert(t mock.TestingT) {
	r.uow.AssertExpectations(t)
	r.products.AssertExpectations(t)
	r.menuGroups.AssertExpectations(t)
	r.menus.AssertExpectations(t)
	r.tables.AssertExpectations(t)
	r.orders.AssertExpectations(t)
}

func price(amount int64) *decimal.Decimal {
	d := decimal.NewFromInt(amount)
	return &d
}

func newProduct(t interface{ Fatalf(string, ...any) }, name string, amount int64) *product.Product {
	p, err := product.NewProduct(kernel.NewUUID(), kernel.RestoreDisplayName(name), kernel.MustNewPrice(amount))
	if err != nil {
		t.Fatalf("new product: %v", err)
	}
	return p
}

func newMenu(
	t interface{ Fatalf(string, ...any) },
	amount int64,
	displayed bool,
	products ...*product.Product,
) *menu.Menu {
	lines := make([]*menu.MenuProduct, 0, len(products))
	for _, p := range products {
		mp, err := menu.NewMenuProduct(kernel.NewUUID(), p.ID(), 1, p.Price())
		if err != nil {
			t.Fatalf("new menu product: %v", err)
		}
		lines = append(lines, mp)
	}

	m, err := menu.RestoreMenu(kernel.NewUUID(), kernel.RestoreDisplayName("Set"),
		kernel.MustNewPrice(amount), displayed, kernel.NewUUID(), lines)
	if err != nil {
		t.Fatalf("restore menu: %v", err)
	}
	return m
}

func newOrder(
	t interface{ Fatalf(string, ...any) },
	orderType order.Type,
	status order.Status,
	tableID *kernel.UUID,
) *order.Order {
	item, err := order.NewLineItem(kernel.NewUUID(), kernel.NewUUID(), 2, kernel.MustNewPrice(8000))
	if err != nil {
		t.Fatalf("new line item: %v", err)
	}

	address := ""
	if orderType == order.Delivery {
		address = "Gangnam-daero 1"
	}

	o, err := order.RestoreOrder(kernel.NewUUID(), orderType, status, time.Now().UTC(),
		[]*order.LineItem{item}, address, tableID)
	if err != nil {
		t.Fatalf("restore order: %v", err)
	}
	return o
}
