package domain

import (
	"fmt"
	"strings"
)

// Status is the canonical classification of a shipment record. Every raw
// status string maps to exactly one of these seven values.
type Status string

const (
	// StatusToAssign indicates the shipment awaits rider assignment.
	StatusToAssign Status = "TO_ASSIGN"
	// StatusAssigned indicates a rider has been assigned.
	StatusAssigned Status = "ASSIGNED"
	// StatusOnWay indicates the shipment is moving.
	StatusOnWay Status = "ON_WAY"
	// StatusDelivered indicates the shipment reached the receiver.
	StatusDelivered Status = "DELIVERED"
	// StatusCanceled indicates the shipment was voided.
	StatusCanceled Status = "CANCELED"
	// StatusReturn indicates the shipment is going back to the sender.
	StatusReturn Status = "RETURN"
	// StatusException indicates a delivery problem needing attention.
	StatusException Status = "EXCEPTION"
)

// statusRules are the declarative synonym tables, listed in the
// documented precedence order: Delivered, OnWay, Assigned, Canceled,
// Return, Exception. Anything unmatched (including empty) classifies as
// ToAssign. Each canonical value's own normalized token appears in its
// set so classification is idempotent.
var statusRules = []struct {
	status   Status
	synonyms []string
}{
	{StatusDelivered, []string{"delivered", "completed", "done"}},
	{StatusOnWay, []string{"on_way", "onway", "in_transit", "transit", "dispatched", "picked_up", "shipped", "out_for_delivery"}},
	{StatusAssigned, []string{"assigned", "rider_assigned", "driver_assigned"}},
	{StatusCanceled, []string{"canceled", "cancelled", "void"}},
	{StatusReturn, []string{"return", "returned", "rto", "return_to_sender"}},
	{StatusException, []string{"exception", "failed", "problem", "hold", "retry"}},
	{StatusToAssign, []string{"to_assign", "created", "new", "pending", "processing", "pickup_pending", "awaiting_assignment"}},
}

// statusIndex maps normalized tokens to their canonical status. Built
// once at init; the build panics if a token is claimed by two synonym
// sets, so disjointness is asserted at construction time instead of
// being resolved silently by evaluation order.
var statusIndex = buildStatusIndex()

func buildStatusIndex() map[string]Status {
	index := make(map[string]Status)
	for _, rule := range statusRules {
		for _, token := range rule.synonyms {
			if prev, exists := index[token]; exists {
				panic(fmt.Sprintf("status synonym %q claimed by both %s and %s", token, prev, rule.status))
			}
			index[token] = rule.status
		}
	}
	return index
}

// ClassifyStatus maps an arbitrary raw status string to its canonical
// Status. Classification is total (every input yields a value) and
// idempotent (a canonical value re-classifies to itself).
func ClassifyStatus(raw string) Status {
	token := normalizeStatusToken(raw)
	if token == "" {
		return StatusToAssign
	}
	if s, ok := statusIndex[token]; ok {
		return s
	}
	return StatusToAssign
}

// normalizeStatusToken lowercases, trims, and collapses whitespace runs
// to single underscores. Hyphens also fold to underscores; CSV imports
// write "in-transit" where the app writes "in_transit".
func normalizeStatusToken(raw string) string {
	lowered := strings.ToLower(strings.TrimSpace(raw))
	lowered = strings.ReplaceAll(lowered, "-", " ")
	return strings.Join(strings.Fields(lowered), "_")
}
