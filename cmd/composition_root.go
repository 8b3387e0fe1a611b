package cmd

import (
	"log/slog"

	"greenspace/internal/adapters/out/postgres"
	"greenspace/internal/core/application/usecases/commands"
	"greenspace/internal/core/application/usecases/queries"
	"greenspace/internal/core/ports"
	"greenspace/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB        *gorm.DB
	uowFactory    *postgres.GormUnitOfWorkFactory
	carrierClient ports.CarrierClient
	mediaStore    ports.MediaStore
	trackingJob   *jobs.ShipmentTrackingJob
}

func NewCompositionRoot(
	cfg Config,
	gormDB *gorm.DB,
	carrierClient ports.CarrierClient,
	mediaStore ports.MediaStore,
	logger *slog.Logger,
) *CompositionRoot {
	root := &CompositionRoot{
		gormDB:        gormDB,
		uowFactory:    postgres.NewGormUnitOfWorkFactory(gormDB),
		carrierClient: carrierClient,
		mediaStore:    mediaStore,
	}

	root.trackingJob = jobs.NewShipmentTrackingJob(
		root.CreateReconcileShipmentCommandHandler(),
		root.uowFactory,
		cfg.ShipmentPollInterval,
		logger,
	)

	return root
}

func (c *CompositionRoot) MediaStore() ports.MediaStore {
	return c.mediaStore
}

func (c *CompositionRoot) ShipmentTrackingJob() *jobs.ShipmentTrackingJob {
	return c.trackingJob
}

func (c *CompositionRoot) CreateCreateServiceOrderCommandHandler() commands.CreateServiceOrderCommandHandler {
	var f commands.OrderRevisionUoWFactory = FuncOrderRevisionUoWFactory(func() commands.OrderRevisionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateServiceOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateSubmitSketchCommandHandler() commands.SubmitSketchCommandHandler {
	var f commands.OrderRevisionUoWFactory = FuncOrderRevisionUoWFactory(func() commands.OrderRevisionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitSketchCommandHandler(f)
}

func (c *CompositionRoot) CreateReviewDesignPriceCommandHandler() commands.ReviewDesignPriceCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReviewDesignPriceCommandHandler(f)
}

func (c *CompositionRoot) CreateSelectRevisionCommandHandler() commands.SelectRevisionCommandHandler {
	var f commands.RevisionUoWFactory = FuncRevisionUoWFactory(func() commands.RevisionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSelectRevisionCommandHandler(f)
}

func (c *CompositionRoot) CreateSubmitDesignCommandHandler() commands.SubmitDesignCommandHandler {
	var f commands.OrderRevisionUoWFactory = FuncOrderRevisionUoWFactory(func() commands.OrderRevisionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitDesignCommandHandler(f)
}

func (c *CompositionRoot) CreateApplyOrderTransitionCommandHandler() commands.ApplyOrderTransitionCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApplyOrderTransitionCommandHandler(f, c.trackingJob)
}

func (c *CompositionRoot) CreateScheduleWorkTaskCommandHandler() commands.ScheduleWorkTaskCommandHandler {
	var f commands.OrderTaskUoWFactory = FuncOrderTaskUoWFactory(func() commands.OrderTaskUoW {
		return c.uowFactory.Create()
	})
	return commands.NewScheduleWorkTaskCommandHandler(f)
}

func (c *CompositionRoot) CreateAdvanceWorkTaskCommandHandler() commands.AdvanceWorkTaskCommandHandler {
	var f commands.OrderTaskUoWFactory = FuncOrderTaskUoWFactory(func() commands.OrderTaskUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceWorkTaskCommandHandler(f)
}

func (c *CompositionRoot) CreateStartShipmentCommandHandler() commands.StartShipmentCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewStartShipmentCommandHandler(f, c.carrierClient, c.trackingJob)
}

func (c *CompositionRoot) CreateReconcileShipmentCommandHandler() commands.ReconcileShipmentCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReconcileShipmentCommandHandler(f, c.carrierClient)
}

func (c *CompositionRoot) CreateGetServiceOrderQueryHandler() queries.GetServiceOrderQueryHandler {
	return queries.NewGetServiceOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderRevisionsQueryHandler() queries.GetOrderRevisionsQueryHandler {
	return queries.NewGetOrderRevisionsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveWorkTaskQueryHandler() queries.GetActiveWorkTaskQueryHandler {
	return queries.NewGetActiveWorkTaskQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTrackedShipmentsQueryHandler() queries.GetTrackedShipmentsQueryHandler {
	return queries.NewGetTrackedShipmentsQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOrderRevisionUoWFactory func() commands.OrderRevisionUoW

func (f FuncOrderRevisionUoWFactory) Create() commands.OrderRevisionUoW {
	return f()
}

type FuncOrderTaskUoWFactory func() commands.OrderTaskUoW

func (f FuncOrderTaskUoWFactory) Create() commands.OrderTaskUoW {
	return f()
}

type FuncRevisionUoWFactory func() commands.RevisionUoW

func (f FuncRevisionUoWFactory) Create() commands.RevisionUoW {
	return f()
}
