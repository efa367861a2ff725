package domain

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"dispatch-board/internal/core/docstore"
)

// Placeholder is rendered when no candidate field yields a usable string.
const Placeholder = "—"

// Field-name synonym tables. Producers across app versions and manual
// spreadsheet imports never agreed on field names, so every read scans
// an ordered candidate list instead of assuming a schema. Earlier
// entries win.
var (
	// TrackingIDFields are the known names for a shipment's tracking id.
	TrackingIDFields = []string{"trackingId", "tracking_id", "waybill", "awb", "trackingNumber"}
	// MerchantFields are the known names for the merchant display name.
	MerchantFields = []string{"merchantName", "merchant", "vendorName", "shopName"}
	// ReceiverFields are the known names for the receiver display name.
	ReceiverFields = []string{"receiverName", "receiver", "customerName", "consignee"}
	// CityFields are the known names for the destination city.
	CityFields = []string{"city", "receiverCity", "destinationCity", "destination"}
	// StatusFields are the known names for the raw shipment status.
	StatusFields = []string{"status", "shipmentStatus", "deliveryStatus", "state"}
	// CODAmountFields are the known names for the cash-on-delivery amount.
	CODAmountFields = []string{"codAmount", "cod_amount", "cod", "collectAmount"}
	// CODFlagFields are the known names for the explicit "is COD" flag.
	CODFlagFields = []string{"isCod", "is_cod", "cashOnDelivery", "cod_flag"}
	// CODSettledFields are the known names for the COD settlement flag.
	CODSettledFields = []string{"codSettled", "cod_settled", "settled", "isSettled"}
	// ShipmentDateFields are the known names for a shipment's last-activity timestamp.
	ShipmentDateFields = []string{"updatedAt", "updated_at", "lastUpdated", "statusUpdatedAt", "createdAt", "created_at"}
	// UserStatusFields are the known names for a user's approval status.
	UserStatusFields = []string{"status", "accountStatus", "approvalStatus"}
	// UserRoleFields are the known names for a user's role.
	UserRoleFields = []string{"role", "userRole", "type"}
	// FinanceAmountFields are the known names for a financial entry amount.
	FinanceAmountFields = []string{"amount", "value", "total"}
	// FinanceTypeFields are the known names for a financial entry type/category.
	FinanceTypeFields = []string{"type", "category", "entryType"}
	// FinanceDateFields are the known names for a financial entry timestamp.
	FinanceDateFields = []string{"createdAt", "created_at", "date", "timestamp"}
)

// PickFirstString tries each candidate key in priority order and returns
// the first non-empty, trimmed string value found, or fallback if none
// match. Numeric values are rendered as text because spreadsheet imports
// store tracking ids as numbers.
func PickFirstString(rec docstore.Record, keys []string, fallback string) string {
	for _, k := range keys {
		v, ok := rec[k]
		if !ok {
			continue
		}
		switch v.Kind {
		case docstore.KindString:
			if s := strings.TrimSpace(v.Str); s != "" {
				return s
			}
		case docstore.KindNumber:
			if !math.IsNaN(v.Num) && !math.IsInf(v.Num, 0) {
				return strconv.FormatFloat(v.Num, 'f', -1, 64)
			}
		}
	}
	return fallback
}

// PickFirstNumber tries each candidate key and returns the first value
// whose parsed numeric form is non-zero and finite, or 0 if none qualify.
func PickFirstNumber(rec docstore.Record, keys []string) float64 {
	for _, k := range keys {
		v, ok := rec[k]
		if !ok {
			continue
		}
		if n := ParseNumber(v); n != 0 {
			return n
		}
	}
	return 0
}

// PickFirstBool tries each candidate key and returns the first value with
// a recognizable boolean shape. Flags arrive as booleans, as "true"/"yes"
// strings, or as 0/1 numbers depending on the producer. The second return
// reports whether any candidate resolved.
func PickFirstBool(rec docstore.Record, keys []string) (bool, bool) {
	for _, k := range keys {
		v, ok := rec[k]
		if !ok {
			continue
		}
		switch v.Kind {
		case docstore.KindBool:
			return v.Bool, true
		case docstore.KindNumber:
			return v.Num != 0, true
		case docstore.KindString:
			switch strings.ToLower(strings.TrimSpace(v.Str)) {
			case "true", "yes", "1":
				return true, true
			case "false", "no", "0":
				return false, true
			}
		}
	}
	return false, false
}

// ParseNumber resolves a value to a finite float64. Numeric values pass
// through unchanged if finite. Anything else is stringified, stripped of
// thousands separators and whitespace, and parsed. Unparsable input
// yields 0; this function never panics.
func ParseNumber(v docstore.Value) float64 {
	switch v.Kind {
	case docstore.KindNumber:
		if math.IsNaN(v.Num) || math.IsInf(v.Num, 0) {
			return 0
		}
		return v.Num
	case docstore.KindString:
		cleaned := strings.Map(func(r rune) rune {
			if r == ',' || unicode.IsSpace(r) {
				return -1
			}
			return r
		}, v.Str)
		if cleaned == "" {
			return 0
		}
		n, err := strconv.ParseFloat(cleaned, 64)
		if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
			return 0
		}
		return n
	default:
		return 0
	}
}
