package queries_test

import (
	"context"
	"testing"
	"time"

	"greenspace/internal/adapters/out/postgres/orderrepo"
	"greenspace/internal/core/application/usecases/queries"
	"greenspace/internal/core/domain/model/kernel"
	"greenspace/internal/core/domain/model/order"
	"greenspace/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetServiceOrderQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetServiceOrderQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetServiceOrderQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.LineItemDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetServiceOrderQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetServiceOrderQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetServiceOrderQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_line_items CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetServiceOrderQueryHandlerTestSuite) TestHandle_UnknownOrder_ReturnsNotFound() {
	query, err := queries.NewGetServiceOrderQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetServiceOrderQueryHandlerTestSuite) TestHandle_PendingOrder_ReturnsBareDetail() {
	testOrder, err := order.NewServiceOrder(kernel.NewUUID(), order.ServiceTypeTemplateDesign)
	suite.Require().NoError(err)
	err = suite.orderRepo.Add(context.Background(), testOrder)
	suite.Require().NoError(err)

	query, err := queries.NewGetServiceOrderQuery(testOrder.ID())
	suite.Require().NoError(err)

	detail, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), detail.ID)
	suite.Equal("TemplateDesign", detail.ServiceType)
	suite.Equal(order.Pending.String(), detail.Status)
	suite.Zero(detail.DesignPrice)
	suite.Zero(detail.MaterialPrice)
	suite.Empty(detail.LineItems)
	suite.Empty(detail.DeliveryCode)
}

func (suite *GetServiceOrderQueryHandlerTestSuite) TestHandle_OrderWithLineItems_DerivesMaterialPrice() {
	unitPriceA, err := kernel.NewMoney(120_000)
	suite.Require().NoError(err)
	unitPriceB, err := kernel.NewMoney(45_000)
	suite.Require().NoError(err)

	itemA, err := order.NewLineItem(kernel.NewUUID(), 3, unitPriceA)
	suite.Require().NoError(err)
	itemB, err := order.NewLineItem(kernel.NewUUID(), 10, unitPriceB)
	suite.Require().NoError(err)

	designPrice, err := kernel.NewMoney(5_000_000)
	suite.Require().NoError(err)

	testOrder, err := order.RestoreServiceOrder(
		kernel.NewUUID(),
		order.ServiceTypeCustomDesign,
		order.DeterminingMaterialPrice,
		designPrice,
		nil,
		[]order.LineItem{itemA, itemB},
		"<p>terrace design</p>", "", "",
		"",
	)
	suite.Require().NoError(err)
	err = suite.orderRepo.Add(context.Background(), testOrder)
	suite.Require().NoError(err)

	query, err := queries.NewGetServiceOrderQuery(testOrder.ID())
	suite.Require().NoError(err)

	detail, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(int64(5_000_000), detail.DesignPrice)
	suite.Equal(int64(3*120_000+10*45_000), detail.MaterialPrice)
	suite.Require().Len(detail.LineItems, 2)
	suite.Equal(itemA.ProductID(), detail.LineItems[0].ProductID)
	suite.Equal(3, detail.LineItems[0].Quantity)
	suite.Equal(int64(120_000), detail.LineItems[0].UnitPrice)
	suite.Equal(itemB.ProductID(), detail.LineItems[1].ProductID)
	suite.Equal("<p>terrace design</p>", detail.Report)
}

func (suite *GetServiceOrderQueryHandlerTestSuite) TestHandle_OrderWithPriceOverride_PrefersOverride() {
	designPrice, err := kernel.NewMoney(5_000_000)
	suite.Require().NoError(err)
	override, err := kernel.NewMoney(2_750_000)
	suite.Require().NoError(err)

	testOrder, err := order.RestoreServiceOrder(
		kernel.NewUUID(),
		order.ServiceTypeCustomDesign,
		order.DoneDesign,
		designPrice,
		&override,
		nil,
		"", "", "",
		"",
	)
	suite.Require().NoError(err)
	err = suite.orderRepo.Add(context.Background(), testOrder)
	suite.Require().NoError(err)

	query, err := queries.NewGetServiceOrderQuery(testOrder.ID())
	suite.Require().NoError(err)

	detail, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(int64(2_750_000), detail.MaterialPrice)
	suite.Empty(detail.LineItems)
}

func TestGetServiceOrderQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetServiceOrderQueryHandlerTestSuite))
}

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {
	// No-op for query tests
}
