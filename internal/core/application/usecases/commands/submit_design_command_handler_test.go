package commands_test

import (
	"testing"

	"greenspace/internal/core/application/usecases/commands"
	"greenspace/internal/core/domain/model/kernel"
	"greenspace/internal/core/domain/model/order"
	"greenspace/internal/core/domain/model/revision"
	"greenspace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func designLineItems(t *testing.T) []order.LineItem {
	t.Helper()
	item, err := order.NewLineItem(kernel.NewUUID(), 4, mustMoney(t, 120_000))
	require.NoError(t, err)
	return []order.LineItem{item}
}

func TestSubmitDesignCommandHandler_Handle_FirstDesign(t *testing.T) {
	ctx := t.Context()
	serviceOrder := restoreOrder(t, order.AssignToDesigner, mustMoney(t, 5_000_000), "", "")
	cmd, err := commands.NewSubmitDesignCommand(
		serviceOrder.ID(),
		[]string{"planting-plan.png", "irrigation-layout.png"},
		designLineItems(t),
	)
	require.NoError(t, err)

	var submitted *revision.Record
	orderRepo := new(MockOrderRepository)
	revisionRepo := new(MockRevisionRepository)
	uow := new(MockOrderRevisionUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, serviceOrder.ID()).Return(serviceOrder, nil).Once(),
		uow.On("RevisionRepository").Return(revisionRepo).Once(),
		revisionRepo.On("GetAllForOrder", mock.Anything, serviceOrder.ID()).Return([]*revision.Record(nil), nil).Once(),
		uow.On("RevisionRepository").Return(revisionRepo).Once(),
		revisionRepo.On("Add", mock.Anything, mock.AnythingOfType("*revision.Record")).
			Run(func(args mock.Arguments) {
				submitted = args.Get(1).(*revision.Record)
			}).
			Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", mock.Anything, serviceOrder).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderRevisionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitDesignCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.DeterminingMaterialPrice, serviceOrder.Status())
	require.Len(t, serviceOrder.Details(), 1)
	require.NotNil(t, submitted)
	assert.Equal(t, revision.KindDesign, submitted.Kind())
	assert.Equal(t, 1, submitted.Phase())
	orderRepo.AssertExpectations(t)
	revisionRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSubmitDesignCommandHandler_Handle_ReworkContinuesPhases(t *testing.T) {
	ctx := t.Context()
	serviceOrder := restoreOrder(t, order.ReDesign, mustMoney(t, 5_000_000), "", "")
	cmd, err := commands.NewSubmitDesignCommand(
		serviceOrder.ID(),
		[]string{"planting-plan-v2.png"},
		designLineItems(t),
	)
	require.NoError(t, err)

	history := []*revision.Record{
		restoreRecord(t, serviceOrder.ID(), revision.KindSketch, 1, true),
		restoreRecord(t, serviceOrder.ID(), revision.KindDesign, 1, false),
	}

	var submitted *revision.Record
	orderRepo := new(MockOrderRepository)
	revisionRepo := new(MockRevisionRepository)
	uow := new(MockOrderRevisionUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, serviceOrder.ID()).Return(serviceOrder, nil).Once(),
		uow.On("RevisionRepository").Return(revisionRepo).Once(),
		revisionRepo.On("GetAllForOrder", mock.Anything, serviceOrder.ID()).Return(history, nil).Once(),
		uow.On("RevisionRepository").Return(revisionRepo).Once(),
		revisionRepo.On("Add", mock.Anything, mock.AnythingOfType("*revision.Record")).
			Run(func(args mock.Arguments) {
				submitted = args.Get(1).(*revision.Record)
			}).
			Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", mock.Anything, serviceOrder).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderRevisionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitDesignCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.DeterminingMaterialPrice, serviceOrder.Status())
	require.NotNil(t, submitted)
	// Sketch phases never count toward the design ceiling.
	assert.Equal(t, 2, submitted.Phase())
	uow.AssertExpectations(t)
}

func TestSubmitDesignCommandHandler_Handle_PhaseCeiling(t *testing.T) {
	ctx := t.Context()
	serviceOrder := restoreOrder(t, order.ReDesign, mustMoney(t, 5_000_000), "", "")
	cmd, err := commands.NewSubmitDesignCommand(
		serviceOrder.ID(),
		[]string{"planting-plan-v4.png"},
		designLineItems(t),
	)
	require.NoError(t, err)

	history := []*revision.Record{
		restoreRecord(t, serviceOrder.ID(), revision.KindDesign, 1, false),
		restoreRecord(t, serviceOrder.ID(), revision.KindDesign, 2, false),
		restoreRecord(t, serviceOrder.ID(), revision.KindDesign, 3, false),
	}

	orderRepo := new(MockOrderRepository)
	revisionRepo := new(MockRevisionRepository)
	uow := new(MockOrderRevisionUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, serviceOrder.ID()).Return(serviceOrder, nil).Once(),
		uow.On("RevisionRepository").Return(revisionRepo).Once(),
		revisionRepo.On("GetAllForOrder", mock.Anything, serviceOrder.ID()).Return(history, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderRevisionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitDesignCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrPhaseCeilingExceeded)
	assert.Equal(t, order.ReDesign, serviceOrder.Status())
	revisionRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
