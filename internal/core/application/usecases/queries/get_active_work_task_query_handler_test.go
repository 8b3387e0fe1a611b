package queries_test

import (
	"context"
	"testing"
	"time"

	"greenspace/internal/adapters/out/postgres/worktaskrepo"
	"greenspace/internal/core/application/usecases/queries"
	"greenspace/internal/core/domain/model/kernel"
	"greenspace/internal/core/domain/model/worktask"
	"greenspace/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetActiveWorkTaskQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetActiveWorkTaskQueryHandler
	taskRepo  *worktaskrepo.GormWorkTaskRepository
}

func (suite *GetActiveWorkTaskQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&worktaskrepo.WorkTaskDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetActiveWorkTaskQueryHandler(db)
	suite.taskRepo = worktaskrepo.NewGormWorkTaskRepository(db, &mockAggregateTracker{})
}

func (suite *GetActiveWorkTaskQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetActiveWorkTaskQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE work_tasks").Error
	suite.Require().NoError(err)
}

func (suite *GetActiveWorkTaskQueryHandlerTestSuite) TestHandle_NoTasks_ReturnsNotFound() {
	query, err := queries.NewGetActiveWorkTaskQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetActiveWorkTaskQueryHandlerTestSuite) TestHandle_MultipleBookings_ReturnsLatest() {
	orderID := kernel.NewUUID()
	base := time.Now().UTC().Truncate(time.Microsecond)

	superseded, err := worktask.RestoreWorkTask(
		kernel.NewUUID(), orderID, kernel.NewUUID(),
		base.Add(24*time.Hour), worktask.Assigned, "first booking",
		base.Add(-time.Hour),
	)
	suite.Require().NoError(err)

	active, err := worktask.RestoreWorkTask(
		kernel.NewUUID(), orderID, kernel.NewUUID(),
		base.Add(48*time.Hour), worktask.Assigned, "rescheduled",
		base,
	)
	suite.Require().NoError(err)

	err = suite.taskRepo.Add(context.Background(), superseded)
	suite.Require().NoError(err)
	err = suite.taskRepo.Add(context.Background(), active)
	suite.Require().NoError(err)

	query, err := queries.NewGetActiveWorkTaskQuery(orderID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(active.ID(), result.ID)
	suite.Equal(active.UserID(), result.UserID)
	suite.Equal("rescheduled", result.Note)
	suite.Equal(worktask.Assigned.String(), result.Status)
	suite.WithinDuration(base.Add(48*time.Hour), result.Appointment, time.Second)
}

func (suite *GetActiveWorkTaskQueryHandlerTestSuite) TestHandle_OtherOrderTask_IsIgnored() {
	orderID := kernel.NewUUID()

	foreign, err := worktask.RestoreWorkTask(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		time.Now().UTC().Add(time.Hour), worktask.Assigned, "",
		time.Now().UTC(),
	)
	suite.Require().NoError(err)
	err = suite.taskRepo.Add(context.Background(), foreign)
	suite.Require().NoError(err)

	query, err := queries.NewGetActiveWorkTaskQuery(orderID)
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func TestGetActiveWorkTaskQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetActiveWorkTaskQueryHandlerTestSuite))
}
