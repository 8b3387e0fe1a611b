package commands_test

import (
	"testing"
	"time"

	"greenspace/internal/core/application/usecases/commands"
	"greenspace/internal/core/domain/model/kernel"
	"greenspace/internal/core/domain/model/order"
	"greenspace/internal/core/domain/model/revision"
	"greenspace/internal/core/domain/services"
	"greenspace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sketchHistory(t *testing.T, orderID kernel.UUID, phases ...int) []*revision.Record {
	t.Helper()
	history := make([]*revision.Record, 0, len(phases))
	for i, phase := range phases {
		record, err := revision.RestoreRecord(
			kernel.NewUUID(),
			orderID,
			revision.KindSketch,
			phase,
			[]string{"sketch.png"},
			false,
			time.Now().UTC().Add(time.Duration(i)*time.Minute),
		)
		require.NoError(t, err)
		history = append(history, record)
	}
	return history
}

func TestSubmitSketchCommandHandler_Handle_FirstProposal(t *testing.T) {
	ctx := t.Context()
	serviceOrder := restoreOrder(t, order.ConsultingAndSketching, kernel.Money{}, "", "")
	price := mustMoney(t, 5_000_000)
	cmd, _ := commands.NewSubmitSketchCommand(
		serviceOrder.ID(), services.AdjustmentBoth, []string{"sketch-1.png"}, &price, nil,
	)

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
		revisionRepo.On("Add", mock.Anything, mock.AnythingOfType("*revision.Record")).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", mock.Anything, serviceOrder).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderRevisionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitSketchCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.DeterminingDesignPrice, serviceOrder.Status())
	assert.Equal(t, int64(5_000_000), serviceOrder.DesignPrice().Amount())
	orderRepo.AssertExpectations(t)
	revisionRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSubmitSketchCommandHandler_Handle_ResubmitClearsRationale(t *testing.T) {
	ctx := t.Context()
	serviceOrder := restoreOrder(t, order.ReDeterminingDesignPrice, mustMoney(t, 5_000_000), "too expensive", "")
	price := mustMoney(t, 4_000_000)
	cmd, _ := commands.NewSubmitSketchCommand(
		serviceOrder.ID(), services.AdjustmentBoth, []string{"sketch-2.png"}, &price, nil,
	)

	orderRepo := new(MockOrderRepository)
	revisionRepo := new(MockRevisionRepository)
	uow := new(MockOrderRevisionUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, serviceOrder.ID()).Return(serviceOrder, nil).Once(),
		uow.On("RevisionRepository").Return(revisionRepo).Once(),
		revisionRepo.On("GetAllForOrder", mock.Anything, serviceOrder.ID()).
			Return(sketchHistory(t, serviceOrder.ID(), 1), nil).Once(),
		uow.On("RevisionRepository").Return(revisionRepo).Once(),
		revisionRepo.On("Add", mock.Anything, mock.AnythingOfType("*revision.Record")).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", mock.Anything, serviceOrder).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderRevisionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitSketchCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.DeterminingDesignPrice, serviceOrder.Status())
	assert.Equal(t, int64(4_000_000), serviceOrder.DesignPrice().Amount())
	assert.Empty(t, serviceOrder.ReportManager())
	uow.AssertExpectations(t)
}

func TestSubmitSketchCommandHandler_Handle_PhaseCeiling(t *testing.T) {
	ctx := t.Context()
	serviceOrder := restoreOrder(t, order.ReDeterminingDesignPrice, mustMoney(t, 5_000_000), "still too expensive", "")
	price := mustMoney(t, 3_000_000)
	cmd, _ := commands.NewSubmitSketchCommand(
		serviceOrder.ID(), services.AdjustmentBoth, []string{"sketch-4.png"}, &price, nil,
	)

	orderRepo := new(MockOrderRepository)
	revisionRepo := new(MockRevisionRepository)
	uow := new(MockOrderRevisionUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, serviceOrder.ID()).Return(serviceOrder, nil).Once(),
		uow.On("RevisionRepository").Return(revisionRepo).Once(),
		revisionRepo.On("GetAllForOrder", mock.Anything, serviceOrder.ID()).
			Return(sketchHistory(t, serviceOrder.ID(), 1, 2, 3), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderRevisionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitSketchCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrPhaseCeilingExceeded)
	// Nothing was written; the order keeps its rejected state.
	assert.Equal(t, order.ReDeterminingDesignPrice, serviceOrder.Status())
	assert.Equal(t, "still too expensive", serviceOrder.ReportManager())
	uow.AssertExpectations(t)
	revisionRepo.AssertExpectations(t)
}

func TestSubmitSketchCommandHandler_Handle_SubmissionFromPending(t *testing.T) {
	ctx := t.Context()
	serviceOrder := restoreOrder(t, order.Pending, kernel.Money{}, "", "")
	price := mustMoney(t, 5_000_000)
	cmd, _ := commands.NewSubmitSketchCommand(
		serviceOrder.ID(), services.AdjustmentBoth, []string{"sketch-1.png"}, &price, nil,
	)

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

	h := commands.NewSubmitSketchCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	// The consulting step is implied on the way out of intake.
	assert.Equal(t, order.DeterminingDesignPrice, serviceOrder.Status())
	assert.Equal(t, int64(5_000_000), serviceOrder.DesignPrice().Amount())
	require.NotNil(t, submitted)
	assert.Equal(t, 1, submitted.Phase())
	uow.AssertExpectations(t)
}

func TestSubmitSketchCommandHandler_Handle_PriceOnlyResubmission(t *testing.T) {
	ctx := t.Context()
	serviceOrder := restoreOrder(t, order.ReDeterminingDesignPrice, mustMoney(t, 5_000_000), "too expensive", "")
	price := mustMoney(t, 4_000_000)
	cmd, err := commands.NewSubmitSketchCommand(
		serviceOrder.ID(), services.AdjustmentPrice, nil, &price, nil,
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
		revisionRepo.On("GetAllForOrder", mock.Anything, serviceOrder.ID()).
			Return(sketchHistory(t, serviceOrder.ID(), 1), nil).Once(),
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

	h := commands.NewSubmitSketchCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.DeterminingDesignPrice, serviceOrder.Status())
	assert.Equal(t, int64(4_000_000), serviceOrder.DesignPrice().Amount())
	assert.Empty(t, serviceOrder.ReportManager())
	require.NotNil(t, submitted)
	// The rejected batch's images carry into the new phase.
	assert.Equal(t, 2, submitted.Phase())
	assert.Equal(t, []string{"sketch.png"}, submitted.Images())
	uow.AssertExpectations(t)
}

func TestSubmitSketchCommandHandler_Handle_PartialAdjustmentNeedsRejection(t *testing.T) {
	ctx := t.Context()
	serviceOrder := restoreOrder(t, order.DeterminingDesignPrice, mustMoney(t, 5_000_000), "", "")
	price := mustMoney(t, 4_000_000)
	cmd, err := commands.NewSubmitSketchCommand(
		serviceOrder.ID(), services.AdjustmentPrice, nil, &price, nil,
	)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	revisionRepo := new(MockRevisionRepository)
	uow := new(MockOrderRevisionUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, serviceOrder.ID()).Return(serviceOrder, nil).Once(),
		uow.On("RevisionRepository").Return(revisionRepo).Once(),
		revisionRepo.On("GetAllForOrder", mock.Anything, serviceOrder.ID()).
			Return(sketchHistory(t, serviceOrder.ID(), 1), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderRevisionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitSketchCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrPreconditionFailed)
	assert.Equal(t, order.DeterminingDesignPrice, serviceOrder.Status())
	uow.AssertExpectations(t)
}
