// Package http exposes the order lifecycle over a REST API. Handlers
// translate requests into commands and queries; all business rules live
// behind them.
package http

import (
	"errors"
	"fmt"
	"net/http"

	"greenspace/internal/core/application/usecases/commands"
	"greenspace/internal/core/application/usecases/queries"
	"greenspace/internal/core/domain/model/kernel"
	"greenspace/internal/core/domain/model/order"
	"greenspace/internal/core/domain/model/worktask"
	"greenspace/internal/core/domain/services"
	"greenspace/internal/core/ports"
	"greenspace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler      commands.CreateServiceOrderCommandHandler
	submitSketchHandler     commands.SubmitSketchCommandHandler
	reviewPriceHandler      commands.ReviewDesignPriceCommandHandler
	selectRevisionHandler   commands.SelectRevisionCommandHandler
	submitDesignHandler     commands.SubmitDesignCommandHandler
	applyTransitionHandler  commands.ApplyOrderTransitionCommandHandler
	scheduleWorkTaskHandler commands.ScheduleWorkTaskCommandHandler
	advanceWorkTaskHandler  commands.AdvanceWorkTaskCommandHandler
	startShipmentHandler    commands.StartShipmentCommandHandler

	// Query handlers
	getOrderHandler            queries.GetServiceOrderQueryHandler
	getOrderRevisionsHandler   queries.GetOrderRevisionsQueryHandler
	getActiveWorkTaskHandler   queries.GetActiveWorkTaskQueryHandler
	getTrackedShipmentsHandler queries.GetTrackedShipmentsQueryHandler

	mediaStore ports.MediaStore
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	createOrderHandler commands.CreateServiceOrderCommandHandler,
	submitSketchHandler commands.SubmitSketchCommandHandler,
	reviewPriceHandler commands.ReviewDesignPriceCommandHandler,
	selectRevisionHandler commands.SelectRevisionCommandHandler,
	submitDesignHandler commands.SubmitDesignCommandHandler,
	applyTransitionHandler commands.ApplyOrderTransitionCommandHandler,
	scheduleWorkTaskHandler commands.ScheduleWorkTaskCommandHandler,
	advanceWorkTaskHandler commands.AdvanceWorkTaskCommandHandler,
	startShipmentHandler commands.StartShipmentCommandHandler,
	getOrderHandler queries.GetServiceOrderQueryHandler,
	getOrderRevisionsHandler queries.GetOrderRevisionsQueryHandler,
	getActiveWorkTaskHandler queries.GetActiveWorkTaskQueryHandler,
	getTrackedShipmentsHandler queries.GetTrackedShipmentsQueryHandler,
	mediaStore ports.MediaStore,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		submitSketchHandler:        submitSketchHandler,
		reviewPriceHandler:         reviewPriceHandler,
		selectRevisionHandler:      selectRevisionHandler,
		submitDesignHandler:        submitDesignHandler,
		applyTransitionHandler:     applyTransitionHandler,
		scheduleWorkTaskHandler:    scheduleWorkTaskHandler,
		advanceWorkTaskHandler:     advanceWorkTaskHandler,
		startShipmentHandler:       startShipmentHandler,
		getOrderHandler:            getOrderHandler,
		getOrderRevisionsHandler:   getOrderRevisionsHandler,
		getActiveWorkTaskHandler:   getActiveWorkTaskHandler,
		getTrackedShipmentsHandler: getTrackedShipmentsHandler,
		mediaStore:                 mediaStore,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:orderId", s.GetOrder)
	api.GET("/orders/:orderId/revisions", s.GetOrderRevisions)
	api.POST("/orders/:orderId/sketches", s.SubmitSketch)
	api.POST("/orders/:orderId/price-review", s.ReviewDesignPrice)
	api.POST("/orders/:orderId/revisions/:revisionId/select", s.SelectRevision)
	api.POST("/orders/:orderId/designs", s.SubmitDesign)
	api.POST("/orders/:orderId/transitions", s.ApplyTransition)
	api.POST("/orders/:orderId/tasks", s.ScheduleWorkTask)
	api.GET("/orders/:orderId/tasks/active", s.GetActiveWorkTask)
	api.POST("/tasks/:taskId/advance", s.AdvanceWorkTask)
	api.POST("/orders/:orderId/shipment", s.StartShipment)
	api.GET("/shipments", s.GetTrackedShipments)
	api.POST("/media", s.UploadMedia)
}

// CreateOrder handles POST /api/v1/orders - opens a new service order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	serviceType, err := order.ServiceTypeFromName(req.ServiceType)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateServiceOrderCommand(orderID, serviceType, req.ReferenceImages)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{ID: orderID.String()})
}

// GetOrder handles GET /api/v1/orders/:orderId - retrieves the order detail.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewGetServiceOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	detail, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	lineItems := make([]LineItemResponse, len(detail.LineItems))
	for i, item := range detail.LineItems {
		lineItems[i] = LineItemResponse{
			ProductID: item.ProductID.String(),
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}

	return ctx.JSON(http.StatusOK, OrderResponse{
		ID:               detail.ID.String(),
		ServiceType:      detail.ServiceType,
		Status:           detail.Status,
		DesignPrice:      detail.DesignPrice,
		MaterialPrice:    detail.MaterialPrice,
		Report:           detail.Report,
		ReportManager:    detail.ReportManager,
		ReportAccountant: detail.ReportAccountant,
		DeliveryCode:     detail.DeliveryCode,
		LineItems:        lineItems,
	})
}

// GetOrderRevisions handles GET /api/v1/orders/:orderId/revisions.
func (s *Server) GetOrderRevisions(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewGetOrderRevisionsQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	history, err := s.getOrderRevisionsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]RevisionResponse, len(history))
	for i, record := range history {
		response[i] = RevisionResponse{
			ID:         record.ID.String(),
			Kind:       record.Kind,
			Phase:      record.Phase,
			Images:     record.Images,
			IsSelected: record.IsSelected,
			CreatedAt:  record.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// SubmitSketch handles POST /api/v1/orders/:orderId/sketches - a priced
// sketch proposal or, after a rejection, a resubmission.
func (s *Server) SubmitSketch(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var req SubmitSketchRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	adjustment := services.AdjustmentBoth
	if req.Adjustment != "" {
		if adjustment, err = services.AdjustmentFromName(req.Adjustment); err != nil {
			return badRequest(ctx, err.Error())
		}
	}

	var price *kernel.Money
	if req.Price != nil {
		parsed, priceErr := kernel.NewMoney(*req.Price)
		if priceErr != nil {
			return badRequest(ctx, priceErr.Error())
		}
		price = &parsed
	}

	cmd, err := commands.NewSubmitSketchCommand(orderID, adjustment, req.Images, price, req.Report)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.submitSketchHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReviewDesignPrice handles POST /api/v1/orders/:orderId/price-review.
func (s *Server) ReviewDesignPrice(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var req ReviewPriceRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewReviewDesignPriceCommand(orderID, req.Approved, req.Rationale)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.reviewPriceHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SelectRevision handles POST /api/v1/orders/:orderId/revisions/:revisionId/select.
func (s *Server) SelectRevision(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	revisionID, err := pathUUID(ctx, "revisionId")
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewSelectRevisionCommand(orderID, revisionID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.selectRevisionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SubmitDesign handles POST /api/v1/orders/:orderId/designs - a design batch
// with its material selection.
func (s *Server) SubmitDesign(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var req SubmitDesignRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	details := make([]order.LineItem, 0, len(req.LineItems))
	for _, item := range req.LineItems {
		productID, idErr := kernel.UUIDFromString(item.ProductID)
		if idErr != nil {
			return badRequest(ctx, idErr.Error())
		}

		unitPrice, priceErr := kernel.NewMoney(item.UnitPrice)
		if priceErr != nil {
			return badRequest(ctx, priceErr.Error())
		}

		lineItem, itemErr := order.NewLineItem(productID, item.Quantity, unitPrice)
		if itemErr != nil {
			return badRequest(ctx, itemErr.Error())
		}
		details = append(details, lineItem)
	}

	cmd, err := commands.NewSubmitDesignCommand(orderID, req.Images, details)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.submitDesignHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ApplyTransition handles POST /api/v1/orders/:orderId/transitions - drives
// one step of the order lifecycle on behalf of the acting role.
func (s *Server) ApplyTransition(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var req TransitionRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	actor, err := order.RoleFromName(req.Actor)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	target, err := order.StatusFromName(req.Target)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var materialPrice *kernel.Money
	if req.MaterialPrice != nil {
		price, priceErr := kernel.NewMoney(*req.MaterialPrice)
		if priceErr != nil {
			return badRequest(ctx, priceErr.Error())
		}
		materialPrice = &price
	}

	cmd, err := commands.NewApplyOrderTransitionCommand(orderID, actor, target, req.AccountantNote, materialPrice)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.applyTransitionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ScheduleWorkTask handles POST /api/v1/orders/:orderId/tasks - books a
// field appointment for the order.
func (s *Server) ScheduleWorkTask(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var req ScheduleTaskRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	userID, err := kernel.UUIDFromString(req.UserID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	taskID := kernel.NewUUID()
	cmd, err := commands.NewScheduleWorkTaskCommand(taskID, orderID, userID, req.Appointment, req.Note)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.scheduleWorkTaskHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, ScheduleTaskResponse{TaskID: taskID.String()})
}

// GetActiveWorkTask handles GET /api/v1/orders/:orderId/tasks/active.
func (s *Server) GetActiveWorkTask(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewGetActiveWorkTaskQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	task, err := s.getActiveWorkTaskHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, WorkTaskResponse{
		ID:          task.ID.String(),
		UserID:      task.UserID.String(),
		Appointment: task.Appointment,
		Status:      task.Status,
		Note:        task.Note,
		CreatedAt:   task.CreatedAt,
	})
}

// AdvanceWorkTask handles POST /api/v1/tasks/:taskId/advance - moves a field
// task to its next status and the owning order with it.
func (s *Server) AdvanceWorkTask(ctx echo.Context) error {
	taskID, err := pathUUID(ctx, "taskId")
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var req AdvanceTaskRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	newStatus, err := worktask.StatusFromName(req.Status)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	actor, err := order.RoleFromName(req.Actor)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewAdvanceWorkTaskCommand(taskID, newStatus, actor, req.Note)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.advanceWorkTaskHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// StartShipment handles POST /api/v1/orders/:orderId/shipment - hands the
// order's materials to the carrier and starts tracking.
func (s *Server) StartShipment(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var req StartShipmentRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewStartShipmentCommand(orderID, req.RecipientName, req.RecipientPhone, req.Address)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.startShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetTrackedShipments handles GET /api/v1/shipments - lists in-flight
// shipments.
func (s *Server) GetTrackedShipments(ctx echo.Context) error {
	query := queries.NewGetTrackedShipmentsQuery()

	shipments, err := s.getTrackedShipmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]ShipmentResponse, len(shipments))
	for i, shipment := range shipments {
		response[i] = ShipmentResponse{
			OrderID:      shipment.ID.String(),
			Status:       shipment.Status,
			DeliveryCode: shipment.DeliveryCode,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// UploadMedia handles POST /api/v1/media - stores one image and returns its
// public URL for use in sketch and design submissions.
func (s *Server) UploadMedia(ctx echo.Context) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return badRequest(ctx, "Missing file")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return badRequest(ctx, "Unreadable file")
	}
	defer file.Close()

	objectName := fmt.Sprintf("%s-%s", kernel.NewUUID(), fileHeader.Filename)
	contentType := fileHeader.Header.Get("Content-Type")

	url, err := s.mediaStore.Upload(ctx.Request().Context(), objectName, file, fileHeader.Size, contentType)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, UploadResponse{URL: url})
}

// pathUUID parses a UUID path parameter.
func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

// badRequest answers 400 with the uniform error body.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// respondError maps an application error onto its HTTP status.
func respondError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrUnauthorized):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrPreconditionFailed),
		errors.Is(err, errs.ErrPhaseCeilingExceeded):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrOutsideAppointmentWindow):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrExternalServiceFailure):
		status = http.StatusBadGateway
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: err.Error(),
	})
}
