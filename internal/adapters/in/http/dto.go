package http

import (
	"time"
)

// Error is the uniform error body returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest opens a new service order.
type CreateOrderRequest struct {
	ServiceType     string   `json:"service_type"`
	ReferenceImages []string `json:"reference_images,omitempty"`
}

// CreateOrderResponse returns the identifier of the opened order.
type CreateOrderResponse struct {
	ID string `json:"id"`
}

// SubmitSketchRequest carries a priced sketch proposal or resubmission.
// Adjustment is "Price", "Images" or "Both" and defaults to "Both"; images
// may be omitted on a price-only resubmission and price on an images-only
// one.
type SubmitSketchRequest struct {
	Adjustment string   `json:"adjustment,omitempty"`
	Images     []string `json:"images,omitempty"`
	Price      *int64   `json:"price,omitempty"`
	Report     *string  `json:"report,omitempty"`
}

// ReviewPriceRequest carries the manager's verdict on a proposed design
// price. Rationale is required when the price is rejected.
type ReviewPriceRequest struct {
	Approved  bool   `json:"approved"`
	Rationale string `json:"rationale,omitempty"`
}

// SubmitDesignRequest carries a design batch with its material selection.
type SubmitDesignRequest struct {
	Images    []string          `json:"images"`
	LineItems []LineItemRequest `json:"line_items"`
}

// LineItemRequest is one material position of a design submission.
type LineItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
}

// TransitionRequest drives one step of the order lifecycle.
type TransitionRequest struct {
	Actor          string  `json:"actor"`
	Target         string  `json:"target"`
	AccountantNote *string `json:"accountant_note,omitempty"`
	MaterialPrice  *int64  `json:"material_price,omitempty"`
}

// ScheduleTaskRequest books a field appointment for an order.
type ScheduleTaskRequest struct {
	UserID      string    `json:"user_id"`
	Appointment time.Time `json:"appointment"`
	Note        string    `json:"note,omitempty"`
}

// ScheduleTaskResponse returns the identifier of the booked task.
type ScheduleTaskResponse struct {
	TaskID string `json:"task_id"`
}

// AdvanceTaskRequest moves a field task to its next status.
type AdvanceTaskRequest struct {
	Status string  `json:"status"`
	Actor  string  `json:"actor"`
	Note   *string `json:"note,omitempty"`
}

// StartShipmentRequest hands the order's materials to the carrier.
type StartShipmentRequest struct {
	RecipientName  string `json:"recipient_name"`
	RecipientPhone string `json:"recipient_phone"`
	Address        string `json:"address"`
}

// OrderResponse is the read model of a service order.
type OrderResponse struct {
	ID               string             `json:"id"`
	ServiceType      string             `json:"service_type"`
	Status           string             `json:"status"`
	DesignPrice      int64              `json:"design_price"`
	MaterialPrice    int64              `json:"material_price"`
	Report           string             `json:"report,omitempty"`
	ReportManager    string             `json:"report_manager,omitempty"`
	ReportAccountant string             `json:"report_accountant,omitempty"`
	DeliveryCode     string             `json:"delivery_code,omitempty"`
	LineItems        []LineItemResponse `json:"line_items"`
}

// LineItemResponse is one material position of an order.
type LineItemResponse struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
}

// RevisionResponse is one revision record of an order.
type RevisionResponse struct {
	ID         string    `json:"id"`
	Kind       string    `json:"kind"`
	Phase      int       `json:"phase"`
	Images     []string  `json:"images"`
	IsSelected bool      `json:"is_selected"`
	CreatedAt  time.Time `json:"created_at"`
}

// WorkTaskResponse is the active field task of an order.
type WorkTaskResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Appointment time.Time `json:"appointment"`
	Status      string    `json:"status"`
	Note        string    `json:"note,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ShipmentResponse is one in-flight shipment.
type ShipmentResponse struct {
	OrderID      string `json:"order_id"`
	Status       string `json:"status"`
	DeliveryCode string `json:"delivery_code"`
}

// UploadResponse returns the public URL of an uploaded image.
type UploadResponse struct {
	URL string `json:"url"`
}
