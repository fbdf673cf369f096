package client

import (
	"testing"

	"local-market/models"

	"github.com/stretchr/testify/assert"
)

func TestStatusStepsByDeliveryType(t *testing.T) {
	delivery := StatusSteps(DeliveryTypeDelivery)
	assert.Len(t, delivery, 6)
	assert.Contains(t, delivery, "out_for_delivery")

	pickup := StatusSteps(DeliveryTypePickup)
	assert.Len(t, pickup, 5)
	assert.NotContains(t, pickup, "out_for_delivery")
}

func TestStatusIndex(t *testing.T) {
	assert.Equal(t, 3, StatusIndex("ready", DeliveryTypeDelivery))
	assert.Equal(t, 3, StatusIndex("ready", DeliveryTypePickup))
	assert.Equal(t, 4, StatusIndex("out_for_delivery", DeliveryTypeDelivery))
	assert.Equal(t, 5, StatusIndex("delivered", DeliveryTypeDelivery))
	assert.Equal(t, 4, StatusIndex("delivered", DeliveryTypePickup))
}

func TestStatusIndexCaseInsensitive(t *testing.T) {
	assert.Equal(t, 3, StatusIndex("READY", DeliveryTypeDelivery))
	assert.Equal(t, 1, StatusIndex("Confirmed", DeliveryTypePickup))
}

func TestStatusIndexUnknownFallsBack(t *testing.T) {
	assert.Equal(t, 0, StatusIndex("cancelled", DeliveryTypeDelivery))
	assert.Equal(t, 0, StatusIndex("", DeliveryTypePickup))
	assert.Equal(t, 0, StatusIndex("garbage", DeliveryTypeDelivery))
}

func TestSettableStatusesIncludesCancelled(t *testing.T) {
	statuses := SettableStatuses()
	assert.Len(t, statuses, 7)
	assert.Contains(t, statuses, "cancelled")
}

func TestCanUpdateStatus(t *testing.T) {
	order := &models.Order{ID: 1, BusinessID: 10, BusinessOwnerID: 5}

	owner := &models.User{ID: 5, IsBusinessUser: true}
	assert.True(t, CanUpdateStatus(owner, order))

	otherBusiness := &models.User{ID: 6, IsBusinessUser: true}
	assert.False(t, CanUpdateStatus(otherBusiness, order))

	notBusiness := &models.User{ID: 5, IsBusinessUser: false}
	assert.False(t, CanUpdateStatus(notBusiness, order))

	assert.False(t, CanUpdateStatus(nil, order))
	assert.False(t, CanUpdateStatus(owner, nil))
}
