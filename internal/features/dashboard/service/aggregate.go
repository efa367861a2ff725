package service

import (
	"math"
	"strings"

	"dispatch-board/internal/core/docstore"
	"dispatch-board/internal/features/dashboard/domain"
)

// shipmentStats are the shipment-derived scalar counts and the two
// operational breakdown views, all computed from one window so they are
// mutually consistent.
type shipmentStats struct {
	Total          int
	PendingPickups int
	InTransit      int
	Delivered      int
	Exceptions     int
	Pickup         map[string]int
	Delivery       map[string]int
}

// aggregateShipments classifies every record in the window once and
// derives all counts from those classifications. The pickup and delivery
// breakdowns are independent views over the identical row set, not a
// partition: Delivered appears in neither, since completed shipments
// need no operational action.
func aggregateShipments(records []docstore.Record) shipmentStats {
	stats := shipmentStats{
		Total: len(records),
		Pickup: map[string]int{
			domain.LabelToAssign: 0,
			domain.LabelAssigned: 0,
			domain.LabelOnWay:    0,
			domain.LabelCanceled: 0,
		},
		Delivery: map[string]int{
			domain.LabelToAssign: 0,
			domain.LabelAssigned: 0,
			domain.LabelOnWay:    0,
			domain.LabelRetry:    0,
			domain.LabelCanceled: 0,
			domain.LabelReturn:   0,
		},
	}

	for _, rec := range records {
		switch statusOf(rec) {
		case domain.StatusToAssign:
			stats.PendingPickups++
			stats.Pickup[domain.LabelToAssign]++
			stats.Delivery[domain.LabelToAssign]++
		case domain.StatusAssigned:
			stats.InTransit++
			stats.Pickup[domain.LabelAssigned]++
			stats.Delivery[domain.LabelAssigned]++
		case domain.StatusOnWay:
			stats.InTransit++
			stats.Pickup[domain.LabelOnWay]++
			stats.Delivery[domain.LabelOnWay]++
		case domain.StatusDelivered:
			stats.Delivered++
		case domain.StatusCanceled:
			stats.Pickup[domain.LabelCanceled]++
			stats.Delivery[domain.LabelCanceled]++
		case domain.StatusReturn:
			stats.Exceptions++
			stats.Delivery[domain.LabelReturn]++
		case domain.StatusException:
			stats.Exceptions++
			stats.Delivery[domain.LabelRetry]++
		}
	}

	return stats
}

// outstandingCOD sums the cash-on-delivery amounts still owed back to
// merchants: delivered shipments with a positive amount that are not
// settled. It walks the raw window rather than projected rows because
// the COD and settlement flags never made it into the row projection.
// Some producers never set an explicit COD flag, so a positive amount
// with no flag counts as COD.
func outstandingCOD(records []docstore.Record) float64 {
	var total float64
	for _, rec := range records {
		if statusOf(rec) != domain.StatusDelivered {
			continue
		}
		amount := domain.PickFirstNumber(rec, domain.CODAmountFields)
		if amount <= 0 {
			continue
		}
		if isCod, ok := domain.PickFirstBool(rec, domain.CODFlagFields); ok && !isCod {
			continue
		}
		if settled, ok := domain.PickFirstBool(rec, domain.CODSettledFields); ok && settled {
			continue
		}
		total += amount
	}
	return total
}

// summarizeFinancials classifies each month-to-date record as revenue or
// expense and sums absolute amounts. An explicit type keyword wins; when
// the record carries no type, the sign of the raw amount decides.
func summarizeFinancials(records []docstore.Record) (revenue, expenses float64) {
	for _, rec := range records {
		raw := domain.PickFirstNumber(rec, domain.FinanceAmountFields)
		amount := math.Abs(raw)
		if amount == 0 {
			continue
		}

		kind := strings.ToLower(domain.PickFirstString(rec, domain.FinanceTypeFields, ""))
		switch {
		case strings.Contains(kind, "expense") || strings.Contains(kind, "cost"):
			expenses += amount
		case strings.Contains(kind, "income") || strings.Contains(kind, "revenue"):
			revenue += amount
		case raw < 0:
			expenses += amount
		default:
			revenue += amount
		}
	}
	return revenue, expenses
}

// projectRows maps the freshest raw records to canonical rows, bounded
// by limit. The window arrives newest-first when the store accepted an
// ordering, so taking the head is the best available notion of "recent".
func projectRows(records []docstore.Record, limit int) []domain.ShipmentRow {
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}

	rows := make([]domain.ShipmentRow, 0, len(records))
	for _, rec := range records {
		cod := domain.PickFirstNumber(rec, domain.CODAmountFields)
		if cod < 0 {
			cod = 0
		}
		rows = append(rows, domain.ShipmentRow{
			TrackingID: domain.PickFirstString(rec, domain.TrackingIDFields, domain.Placeholder),
			Merchant:   domain.PickFirstString(rec, domain.MerchantFields, domain.Placeholder),
			Receiver:   domain.PickFirstString(rec, domain.ReceiverFields, domain.Placeholder),
			City:       domain.PickFirstString(rec, domain.CityFields, domain.Placeholder),
			Status:     statusOf(rec),
			COD:        cod,
			UpdatedAt:  domain.FormatAnyDate(rec, domain.ShipmentDateFields),
		})
	}
	return rows
}

// statusOf resolves and classifies a record's raw status.
func statusOf(rec docstore.Record) domain.Status {
	return domain.ClassifyStatus(domain.PickFirstString(rec, domain.StatusFields, ""))
}
