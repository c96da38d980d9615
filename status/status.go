package status

import (
	"errors"

	"qr-order-api/models"
)

// Lifecycle lists every settable status in its natural progression.
// Transitions are not enforced to follow this order: the dashboard may set
// any valid status directly (e.g. jump straight to paid).
var Lifecycle = []models.OrderStatus{
	models.StatusPending,
	models.StatusAccepted,
	models.StatusPreparing,
	models.StatusFinished,
	models.StatusDelivering,
	models.StatusDelivered,
	models.StatusPaid,
}

// Build a lookup map for O(1) validation
var validSet = func() map[models.OrderStatus]bool {
	m := make(map[models.OrderStatus]bool)
	for _, s := range Lifecycle {
		m[s] = true
	}
	return m
}()

// Active is the set of statuses that hold a slot in the store's queue.
// An order in delivering is not part of this set: it keeps whatever queue
// number it already had and is skipped by renumbering.
var Active = []models.OrderStatus{
	models.StatusPending,
	models.StatusAccepted,
	models.StatusPreparing,
}

// TriggersRenumber reports whether entering s vacates the order's queue slot,
// requiring the store's remaining active orders to be renumbered.
func TriggersRenumber(s models.OrderStatus) bool {
	return s == models.StatusFinished || s == models.StatusDelivered
}

// Validate returns an error when s is not a known status value.
func Validate(s models.OrderStatus) error {
	if validSet[s] {
		return nil
	}
	return errors.New(
		"invalid status '" + string(s) + "'. Valid statuses are: " + describeLifecycle(),
	)
}

func describeLifecycle() string {
	result := ""
	for i, s := range Lifecycle {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}
