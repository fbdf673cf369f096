package client

import (
	"strings"

	"local-market/models"
)

var (
	deliverySteps = []string{"pending", "confirmed", "preparing", "ready", "out_for_delivery", "delivered"}
	pickupSteps   = []string{"pending", "confirmed", "preparing", "ready", "delivered"}
)

// StatusSteps returns the tracking timeline for a delivery type. Pickup
// orders skip the out_for_delivery step.
func StatusSteps(deliveryType string) []string {
	if deliveryType == DeliveryTypePickup {
		steps := make([]string, len(pickupSteps))
		copy(steps, pickupSteps)
		return steps
	}
	steps := make([]string, len(deliverySteps))
	copy(steps, deliverySteps)
	return steps
}

// StatusIndex locates a status in the timeline, case-insensitively. Unknown
// statuses map to the first step so the tracker always renders something.
func StatusIndex(status, deliveryType string) int {
	steps := StatusSteps(deliveryType)
	for i, s := range steps {
		if strings.EqualFold(s, status) {
			return i
		}
	}
	return 0
}

// SettableStatuses is the full set a business owner may assign. There is no
// transition graph; any of these can follow any other.
func SettableStatuses() []string {
	statuses := make([]string, len(models.OrderStatuses))
	copy(statuses, models.OrderStatuses)
	return statuses
}

// CanUpdateStatus is true only for a business account that owns the order's
// business.
func CanUpdateStatus(user *models.User, order *models.Order) bool {
	if user == nil || order == nil {
		return false
	}
	return user.IsBusinessUser && user.ID == order.BusinessOwnerID
}
