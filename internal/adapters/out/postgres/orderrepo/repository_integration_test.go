package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"kitchenpos/internal/adapters/out/postgres/orderrepo"
	"kitchenpos/internal/adapters/out/postgres/pgtest"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/core/domain/model/ordertable"
	"kitchenpos/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite checks order persistence against a PostgreSQL container.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = orderrepo.NewGormOrderRepository(suite.database.DB, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder(orderType order.Type, status order.Status, tableID *kernel.UUID) *order.Order {
	first, err := order.NewLineItem(kernel.NewUUID(), kernel.NewUUID(), 2, kernel.MustNewPrice(16000))
	suite.Require().NoError(err)
	second, err := order.NewLineItem(kernel.NewUUID(), kernel.NewUUID(), 1, kernel.MustNewPrice(3500))
	suite.Require().NoError(err)

	address := ""
	if orderType == order.Delivery {
		address = "Gangnam-daero 1"
	}

	o, err := order.RestoreOrder(kernel.NewUUID(), orderType, status,
		time.Date(2026, 10, 18, 12, 30, 0, 0, time.UTC), []*order.LineItem{first, second}, address, tableID)
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_AndGet_RoundTripsAggregate() {
	ctx := context.Background()
	o := suite.newOrder(order.Delivery, order.Waiting, nil)

	suite.Require().NoError(suite.repository.Add(ctx, o))
	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", o.ID(), o)

	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)

	suite.True(o.ID().IsEqual(got.ID()))
	suite.Equal(order.Delivery, got.Type())
	suite.Equal(order.Waiting, got.Status())
	suite.Equal("Gangnam-daero 1", got.DeliveryAddress())
	suite.Nil(got.OrderTableID())
	suite.True(o.OrderedAt().Equal(got.OrderedAt()))
	suite.True(got.Amount().Equal(decimal.NewFromInt(35500)))

	suite.Require().Len(got.LineItems(), 2)
	suite.Equal(int64(2), got.LineItems()[0].Quantity())
	suite.Equal("16000.00", got.LineItems()[0].Price().String())
	suite.Equal(int64(1), got.LineItems()[1].Quantity())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StoresStatusTransitions() {
	ctx := context.Background()
	o := suite.newOrder(order.Delivery, order.Waiting, nil)
	suite.Require().NoError(suite.repository.Add(ctx, o))

	steps := []func() error{o.Accept, o.Serve, o.StartDelivery, o.CompleteDelivery, o.Complete}
	for _, step := range steps {
		suite.Require().NoError(step())
		suite.Require().NoError(suite.repository.Update(ctx, o))

		got, err := suite.repository.Get(ctx, o.ID())
		suite.Require().NoError(err)
		suite.Equal(o.Status(), got.Status())
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFoundError() {
	o := suite.newOrder(order.Takeout, order.Accepted, nil)
	err := suite.repository.Update(context.Background(), o)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestExistsForTableWithStatusNot() {
	ctx := context.Background()
	table, err := ordertable.RestoreOrderTable(kernel.NewUUID(), "Table 1", 2, true)
	suite.Require().NoError(err)
	tableID := table.ID()

	exists, err := suite.repository.ExistsForTableWithStatusNot(ctx, tableID, order.Completed)
	suite.Require().NoError(err)
	suite.False(exists, "a table without orders has nothing open")

	completed := suite.newOrder(order.EatIn, order.Completed, &tableID)
	suite.Require().NoError(suite.repository.Add(ctx, completed))

	exists, err = suite.repository.ExistsForTableWithStatusNot(ctx, tableID, order.Completed)
	suite.Require().NoError(err)
	suite.False(exists)

	served := suite.newOrder(order.EatIn, order.Served, &tableID)
	suite.Require().NoError(suite.repository.Add(ctx, served))

	exists, err = suite.repository.ExistsForTableWithStatusNot(ctx, tableID, order.Completed)
	suite.Require().NoError(err)
	suite.True(exists)

	otherTable := kernel.NewUUID()
	exists, err = suite.repository.ExistsForTableWithStatusNot(ctx, otherTable, order.Completed)
	suite.Require().NoError(err)
	suite.False(exists)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_InvalidAggregate_ReturnsError() {
	err := suite.repository.Add(context.Background(), &order.Order{})
	suite.Require().Error(err)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
