package domain

import "time"

// Breakdown labels shared by the two operational views. "Retry" is the
// display label for Exception in the delivery view.
const (
	LabelToAssign = "To Assign"
	LabelAssigned = "Assigned"
	LabelOnWay    = "On Way"
	LabelCanceled = "Canceled"
	LabelRetry    = "Retry"
	LabelReturn   = "Return"
)

// ShipmentRow is the canonical projection of one raw shipment record.
// Rows are built per aggregation call and never persisted.
type ShipmentRow struct {
	// TrackingID is the shipment's tracking number, or a placeholder.
	TrackingID string `json:"tracking_id"`
	// Merchant is the sending merchant's display name.
	Merchant string `json:"merchant"`
	// Receiver is the receiving customer's display name.
	Receiver string `json:"receiver"`
	// City is the destination city.
	City string `json:"city"`
	// Status is the canonical shipment status.
	Status Status `json:"status"`
	// COD is the cash-on-delivery amount; never negative.
	COD float64 `json:"cod"`
	// UpdatedAt is the formatted last-activity time, or empty.
	UpdatedAt string `json:"updated_at"`
}

// Snapshot is the assembled dashboard result: one consistent view over
// the shipment window plus independently aggregated user and financial
// figures. A Snapshot is created once per call and never mutated.
type Snapshot struct {
	// ID correlates this snapshot across logs and responses.
	ID string `json:"id"`
	// GeneratedAt is when the snapshot was assembled.
	GeneratedAt time.Time `json:"generated_at"`

	// TotalShipments is the shipment count inside the window.
	TotalShipments int `json:"total_shipments"`
	// PendingPickups counts shipments still awaiting assignment.
	PendingPickups int `json:"pending_pickups"`
	// InTransit counts assigned and moving shipments.
	InTransit int `json:"in_transit"`
	// Delivered counts completed shipments.
	Delivered int `json:"delivered"`
	// Exceptions counts problem and return shipments.
	Exceptions int `json:"exceptions"`

	// CODOutstanding is the delivered-but-unsettled COD total.
	CODOutstanding float64 `json:"cod_outstanding"`

	// ActiveUsers counts approved user accounts.
	ActiveUsers int64 `json:"active_users"`
	// ActiveRiders counts approved rider accounts.
	ActiveRiders int64 `json:"active_riders"`

	// MTDRevenue is month-to-date revenue.
	MTDRevenue float64 `json:"mtd_revenue"`
	// MTDExpenses is month-to-date expenses.
	MTDExpenses float64 `json:"mtd_expenses"`

	// PickupBreakdown is the pickup-operations view over the window.
	// Delivered is excluded: completed items need no operational action.
	PickupBreakdown map[string]int `json:"pickup_breakdown"`
	// DeliveryBreakdown is the delivery-operations view over the same
	// window; shared labels agree with PickupBreakdown by construction.
	DeliveryBreakdown map[string]int `json:"delivery_breakdown"`

	// RecentShipments is a bounded list of the freshest rows.
	RecentShipments []ShipmentRow `json:"recent_shipments"`
}
