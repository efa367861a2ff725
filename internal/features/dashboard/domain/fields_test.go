package domain

import (
	"math"
	"testing"

	"dispatch-board/internal/core/docstore"

	"github.com/stretchr/testify/assert"
)

// TestParseNumber verifies tolerant numeric parsing.
func TestParseNumber(t *testing.T) {
	assert.Equal(t, float64(1250), ParseNumber(docstore.String("1,250")))
	assert.Equal(t, float64(0), ParseNumber(docstore.String("")))
	assert.Equal(t, float64(42), ParseNumber(docstore.Number(42)))
	assert.Equal(t, float64(1500.75), ParseNumber(docstore.String(" 1,500.75 ")))
	assert.Equal(t, float64(-300), ParseNumber(docstore.String("-300")))
	assert.Equal(t, float64(0), ParseNumber(docstore.String("abc")))
	assert.Equal(t, float64(0), ParseNumber(docstore.Number(math.NaN())))
	assert.Equal(t, float64(0), ParseNumber(docstore.Number(math.Inf(1))))
	assert.Equal(t, float64(0), ParseNumber(docstore.Boolean(true)))
	assert.Equal(t, float64(0), ParseNumber(docstore.Null()))
}

// TestPickFirstString_FieldNameEquivalence verifies that drifted field
// names yield identical results.
func TestPickFirstString_FieldNameEquivalence(t *testing.T) {
	camel := docstore.Record{"trackingId": docstore.String("AWB-77")}
	snake := docstore.Record{"tracking_id": docstore.String("AWB-77")}

	assert.Equal(t,
		PickFirstString(camel, TrackingIDFields, Placeholder),
		PickFirstString(snake, TrackingIDFields, Placeholder),
	)
}

// TestPickFirstString_Priority verifies that the earliest-listed key wins
// when multiple candidates are populated.
func TestPickFirstString_Priority(t *testing.T) {
	rec := docstore.Record{
		"waybill":    docstore.String("from-waybill"),
		"trackingId": docstore.String("from-trackingId"),
	}

	assert.Equal(t, "from-trackingId", PickFirstString(rec, TrackingIDFields, Placeholder))
}

// TestPickFirstString_Fallback verifies trimming, empty skipping, and the placeholder.
func TestPickFirstString_Fallback(t *testing.T) {
	assert.Equal(t, Placeholder, PickFirstString(docstore.Record{}, TrackingIDFields, Placeholder))

	rec := docstore.Record{
		"trackingId": docstore.String("   "),
		"waybill":    docstore.String("  AWB-9  "),
	}
	assert.Equal(t, "AWB-9", PickFirstString(rec, TrackingIDFields, Placeholder))

	// Numeric tracking ids from spreadsheet imports render as text.
	numeric := docstore.Record{"trackingId": docstore.Number(123456)}
	assert.Equal(t, "123456", PickFirstString(numeric, TrackingIDFields, Placeholder))
}

// TestPickFirstNumber verifies that the first non-zero parse wins.
func TestPickFirstNumber(t *testing.T) {
	rec := docstore.Record{
		"codAmount":  docstore.String("not a number"),
		"cod_amount": docstore.Number(0),
		"cod":        docstore.String("2,500"),
	}
	assert.Equal(t, float64(2500), PickFirstNumber(rec, CODAmountFields))

	assert.Equal(t, float64(0), PickFirstNumber(docstore.Record{}, CODAmountFields))
}

// TestPickFirstBool verifies boolean resolution across producer shapes.
func TestPickFirstBool(t *testing.T) {
	v, ok := PickFirstBool(docstore.Record{"isCod": docstore.Boolean(true)}, CODFlagFields)
	assert.True(t, ok)
	assert.True(t, v)

	v, ok = PickFirstBool(docstore.Record{"is_cod": docstore.String("yes")}, CODFlagFields)
	assert.True(t, ok)
	assert.True(t, v)

	v, ok = PickFirstBool(docstore.Record{"cashOnDelivery": docstore.Number(0)}, CODFlagFields)
	assert.True(t, ok)
	assert.False(t, v)

	_, ok = PickFirstBool(docstore.Record{"isCod": docstore.String("maybe")}, CODFlagFields)
	assert.False(t, ok)

	_, ok = PickFirstBool(docstore.Record{}, CODFlagFields)
	assert.False(t, ok)
}
