package entity

import "github.com/rs/zerolog/log"

// OrderStatus is the fixed display enumeration, distinct from whatever
// vocabulary the order service uses on the wire.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusAccepted  OrderStatus = "accepted"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

// statusOrder is the strict forward progression; cancelled sits outside
// the linear scale.
var statusOrder = []OrderStatus{
	StatusPending,
	StatusAccepted,
	StatusPreparing,
	StatusReady,
	StatusCompleted,
}

var statusMap = map[string]OrderStatus{
	"received":  StatusPending,
	"pending":   StatusPending,
	"accepted":  StatusAccepted,
	"preparing": StatusPreparing,
	"ready":     StatusReady,
	"completed": StatusCompleted,
	"cancelled": StatusCancelled,
}

// MapStatus translates a backend status string to the display
// enumeration. It is total: unrecognized values fall back to pending so
// an unknown backend vocabulary never breaks rendering. The fallback is
// logged so unmapped values stay discoverable.
func MapStatus(apiStatus string) OrderStatus {
	if status, ok := statusMap[apiStatus]; ok {
		return status
	}
	log.Warn().Str("status", apiStatus).Msg("Unrecognized order status, falling back to pending")
	return StatusPending
}

// Progress returns the linear progress fraction for the status. The
// second return is false for cancelled and unknown statuses, which have
// no place on the linear scale.
func (s OrderStatus) Progress() (float64, bool) {
	for i, status := range statusOrder {
		if status == s {
			return float64(i+1) / float64(len(statusOrder)), true
		}
	}
	return 0, false
}

// CanCancel reports whether the owner may still cancel an order in this
// status. Once preparation starts the kitchen owns the order.
func (s OrderStatus) CanCancel() bool {
	return s == StatusPending || s == StatusAccepted
}

// Terminal reports whether the status admits no further transitions.
func (s OrderStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Next returns the following status on the linear scale. It returns
// false for completed and cancelled.
func (s OrderStatus) Next() (OrderStatus, bool) {
	for i, status := range statusOrder {
		if status == s && i+1 < len(statusOrder) {
			return statusOrder[i+1], true
		}
	}
	return s, false
}
