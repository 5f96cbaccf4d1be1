package services

import (
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appfrabric/roilux/models"
)

func newTestOrderService(t *testing.T) *OrderService {
	t.Helper()
	return NewOrderService(newTestDB(t), newTestConfig())
}

func TestSubmitOrder(t *testing.T) {
	svc := newTestOrderService(t)

	order, confirmation, err := svc.SubmitOrder(OrderSubmission{
		Name:  "Jane Smith",
		Email: "jane@example.com",
		Products: []OrderProduct{
			{ProductID: "premium-plywood", Title: "Premium Plywood", Quantity: 100, Notes: "18mm"},
			{ProductID: "melamine-boards", Title: "Melamine Boards", Quantity: 50},
		},
		TotalAmount: "12500.00",
	})
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusInquiry, order.Status)
	assert.Equal(t, "USD", order.Currency)
	assert.Equal(t, "Order inquiry submitted successfully!", confirmation)
	require.NotNil(t, order.UserID)

	var products []OrderProduct
	require.NoError(t, json.Unmarshal([]byte(order.Products), &products))
	require.Len(t, products, 2)
	assert.Equal(t, "premium-plywood", products[0].ProductID)
	assert.Equal(t, 100, products[0].Quantity)
}

func TestGenerateOrderNumber(t *testing.T) {
	pattern := regexp.MustCompile(`^TW-\d{8}-[0-9A-F]{8}$`)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		n := GenerateOrderNumber()
		assert.Regexp(t, pattern, n)
		assert.False(t, seen[n], "order number %s repeated", n)
		seen[n] = true
	}

	assert.Contains(t, GenerateOrderNumber(), time.Now().Format("20060102"))
}

func TestOrderStatusLifecycle(t *testing.T) {
	svc := newTestOrderService(t)

	order, _, err := svc.SubmitOrder(OrderSubmission{
		Name:     "Jane",
		Email:    "jane@example.com",
		Products: []OrderProduct{{ProductID: "logs", Quantity: 10}},
	})
	require.NoError(t, err)

	for _, status := range []models.OrderStatus{
		models.OrderStatusQuoteSent,
		models.OrderStatusConfirmed,
		models.OrderStatusInProduction,
		models.OrderStatusShipped,
		models.OrderStatusDelivered,
	} {
		require.NoError(t, svc.UpdateOrderStatus(order.ID, status))
	}

	var stored models.Order
	require.NoError(t, svc.DB.First(&stored, order.ID).Error)
	assert.Equal(t, models.OrderStatusDelivered, stored.Status)

	t.Run("invalid status", func(t *testing.T) {
		err := svc.UpdateOrderStatus(order.ID, models.OrderStatus("refunded"))
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("archive missing order", func(t *testing.T) {
		assert.ErrorIs(t, svc.ArchiveOrder(9999), ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, svc.DeleteOrder(order.ID))
		assert.ErrorIs(t, svc.DeleteOrder(order.ID), ErrNotFound)
	})
}
