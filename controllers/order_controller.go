package controllers

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"local-market/models"
	"local-market/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct{}

const orderColumns = `
	o.id, o.order_number, o.user_id, o.device_id, o.business_id, b.user_id, b.name,
	o.delivery_type, o.customer_name, o.customer_phone, o.customer_email,
	o.delivery_address, o.payment_method, o.subtotal, o.delivery_fee, o.discount_code,
	o.discount_amount, o.total, o.notes, o.status, o.tracking_url, o.created_at, o.updated_at`

func scanOrderRow(row interface{ Scan(...interface{}) error }) (*models.Order, error) {
	var o models.Order
	err := row.Scan(
		&o.ID, &o.OrderNumber, &o.UserID, &o.DeviceID, &o.BusinessID, &o.BusinessOwnerID,
		&o.BusinessName, &o.DeliveryType, &o.CustomerName, &o.CustomerPhone, &o.CustomerEmail,
		&o.DeliveryAddress, &o.PaymentMethod, &o.Subtotal, &o.DeliveryFee, &o.DiscountCode,
		&o.DiscountAmount, &o.Total, &o.Notes, &o.Status, &o.TrackingURL,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func loadOrderItems(orderID int) ([]models.OrderItem, error) {
	rows, err := models.DB.Query(context.Background(),
		`SELECT id, order_id, product_id, product_name, price, quantity, COALESCE(image,'')
		 FROM order_items WHERE order_id = $1 ORDER BY id`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.OrderItem{}
	for rows.Next() {
		var it models.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.ProductName,
			&it.Price, &it.Quantity, &it.Image); err != nil {
			continue
		}
		items = append(items, it)
	}
	return items, nil
}

// CreateOrder godoc
// @Summary Place an order
// @Description Create an order with item snapshots. Guests order by device ID.
// @Tags Orders
// @Accept json
// @Produce json
// @Param request body models.CreateOrderRequest true "Order payload"
// @Success 201 {object} models.Order
// @Failure 400 {object} models.ErrorResponse
// @Router /api/orders [post]
func (ctrl *OrderController) CreateOrder(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	var ownerID int
	var businessName string
	err := models.DB.QueryRow(context.Background(),
		"SELECT user_id, name FROM businesses WHERE id = $1", req.BusinessID).
		Scan(&ownerID, &businessName)
	if err != nil {
		c.JSON(404, gin.H{"error": "Business not found"})
		return
	}

	orderNumber := req.OrderNumber
	if orderNumber == "" {
		orderNumber = utils.GenerateOrderNumber()
	}

	ctx := context.Background()
	tx, err := models.DB.Begin(ctx)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to create order"})
		return
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	var orderID int
	err = tx.QueryRow(ctx,
		`INSERT INTO orders (order_number, user_id, device_id, business_id, delivery_type,
		 customer_name, customer_phone, customer_email, delivery_address, payment_method,
		 subtotal, delivery_fee, discount_code, discount_amount, total, notes, status,
		 created_at, updated_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,'pending',$17,$17)
		 RETURNING id`,
		orderNumber, req.UserID, req.DeviceID, req.BusinessID, req.DeliveryType,
		req.CustomerName, req.CustomerPhone, req.CustomerEmail, req.DeliveryAddress,
		req.PaymentMethod, req.Subtotal, req.DeliveryFee, req.DiscountCode,
		req.DiscountAmount, req.Total, req.Notes, now).Scan(&orderID)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to create order"})
		return
	}

	for _, item := range req.Items {
		_, err = tx.Exec(ctx,
			`INSERT INTO order_items (order_id, product_id, product_name, price, quantity, image)
			 VALUES ($1,$2,$3,$4,$5,$6)`,
			orderID, item.ProductID, item.ProductName, item.Price, item.Quantity, item.Image)
		if err != nil {
			c.JSON(500, gin.H{"error": "Failed to save order items"})
			return
		}
	}

	if err := tx.Commit(ctx); err != nil {
		c.JSON(500, gin.H{"error": "Failed to create order"})
		return
	}

	order, err := scanOrderRow(models.DB.QueryRow(ctx,
		"SELECT "+orderColumns+" FROM orders o JOIN businesses b ON b.id = o.business_id WHERE o.id = $1",
		orderID))
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to create order"})
		return
	}
	order.Items, _ = loadOrderItems(orderID)

	models.DB.Exec(ctx,
		`INSERT INTO notifications (user_id, business_id, title, body, type, created_at)
		 VALUES ($1, $2, $3, $4, 'new_order', $5)`,
		ownerID, req.BusinessID, "New order received",
		fmt.Sprintf("Order %s from %s", orderNumber, req.CustomerName), now)

	// Confirmation email is best effort, never blocks the response.
	go func(o models.Order) {
		emailService, err := models.NewEmailService()
		if err != nil {
			log.Printf("Email service unavailable: %v", err)
			return
		}
		if err := emailService.SendOrderConfirmationEmail(o.CustomerEmail, &o); err != nil {
			log.Printf("Failed to send order confirmation email: %v", err)
		}
	}(*order)

	c.JSON(201, order)
}

// GetOrders godoc
// @Summary List orders
// @Description List orders for a customer (user_id or device_id) or for businesses (business_ids)
// @Tags Orders
// @Produce json
// @Param user_id query int false "Customer user ID"
// @Param device_id query string false "Guest device ID"
// @Param business_ids query string false "Comma separated business IDs"
// @Success 200 {array} models.Order
// @Router /api/orders [get]
func (ctrl *OrderController) GetOrders(c *gin.Context) {
	userID := c.Query("user_id")
	deviceID := c.Query("device_id")
	businessIDs := c.Query("business_ids")

	query := "SELECT " + orderColumns + " FROM orders o JOIN businesses b ON b.id = o.business_id"
	args := []interface{}{}

	switch {
	case businessIDs != "":
		ids := []int{}
		for _, part := range strings.Split(businessIDs, ",") {
			id, err := strconv.Atoi(strings.TrimSpace(part))
			if err == nil {
				ids = append(ids, id)
			}
		}
		if len(ids) == 0 {
			c.JSON(400, gin.H{"error": "Invalid business_ids"})
			return
		}
		query += " WHERE o.business_id = ANY($1)"
		args = append(args, ids)
	case userID != "":
		query += " WHERE o.user_id = $1"
		args = append(args, userID)
	case deviceID != "":
		query += " WHERE o.device_id = $1"
		args = append(args, deviceID)
	default:
		c.JSON(400, gin.H{"error": "user_id, device_id or business_ids is required"})
		return
	}
	query += " ORDER BY o.created_at DESC"

	rows, err := models.DB.Query(context.Background(), query, args...)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to fetch orders"})
		return
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		o, err := scanOrderRow(rows)
		if err != nil {
			continue
		}
		orders = append(orders, *o)
	}
	rows.Close()

	for i := range orders {
		orders[i].Items, _ = loadOrderItems(orders[i].ID)
	}

	c.JSON(200, orders)
}

// GetOrderByID godoc
// @Summary Get order
// @Tags Orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.Order
// @Failure 404 {object} models.ErrorResponse
// @Router /api/orders/{id} [get]
func (ctrl *OrderController) GetOrderByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(400, gin.H{"error": "Invalid order ID"})
		return
	}

	order, err := scanOrderRow(models.DB.QueryRow(context.Background(),
		"SELECT "+orderColumns+" FROM orders o JOIN businesses b ON b.id = o.business_id WHERE o.id = $1",
		id))
	if err != nil {
		c.JSON(404, gin.H{"error": "Order not found"})
		return
	}
	order.Items, _ = loadOrderItems(order.ID)

	c.JSON(200, order)
}

// TrackOrder godoc
// @Summary Track order by number
// @Description Public lookup by order number, no authentication required
// @Tags Orders
// @Produce json
// @Param orderNumber path string true "Order number"
// @Success 200 {object} models.Order
// @Failure 404 {object} models.ErrorResponse
// @Router /api/orders/track/{orderNumber} [get]
func (ctrl *OrderController) TrackOrder(c *gin.Context) {
	orderNumber := c.Param("orderNumber")
	if orderNumber == "" {
		c.JSON(400, gin.H{"error": "Order number is required"})
		return
	}

	order, err := scanOrderRow(models.DB.QueryRow(context.Background(),
		"SELECT "+orderColumns+" FROM orders o JOIN businesses b ON b.id = o.business_id WHERE o.order_number = $1",
		orderNumber))
	if err != nil {
		c.JSON(404, gin.H{"error": "Order not found"})
		return
	}
	order.Items, _ = loadOrderItems(order.ID)

	c.JSON(200, order)
}

// UpdateOrderStatus godoc
// @Summary Update order status
// @Description Only the owner of the order's business may change its status
// @Tags Orders
// @Accept json
// @Produce json
// @Param request body models.UpdateOrderStatusRequest true "Status update"
// @Success 200 {object} models.Order
// @Failure 403 {object} models.ErrorResponse
// @Router /api/orders/status [patch]
func (ctrl *OrderController) UpdateOrderStatus(c *gin.Context) {
	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	valid := false
	for _, s := range models.OrderStatuses {
		if req.Status == s {
			valid = true
			break
		}
	}
	if !valid {
		c.JSON(400, gin.H{"error": "Invalid status"})
		return
	}

	var ownerID int
	err := models.DB.QueryRow(context.Background(),
		`SELECT b.user_id FROM orders o JOIN businesses b ON b.id = o.business_id WHERE o.id = $1`,
		req.OrderID).Scan(&ownerID)
	if err != nil {
		c.JSON(404, gin.H{"error": "Order not found"})
		return
	}

	if ownerID != req.UserID {
		c.JSON(403, gin.H{"error": "Not authorized to update this order"})
		return
	}

	_, err = models.DB.Exec(context.Background(),
		`UPDATE orders SET status = $1, tracking_url = COALESCE($2, tracking_url), updated_at = $3
		 WHERE id = $4`,
		req.Status, req.TrackingURL, time.Now(), req.OrderID)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to update order"})
		return
	}

	order, err := scanOrderRow(models.DB.QueryRow(context.Background(),
		"SELECT "+orderColumns+" FROM orders o JOIN businesses b ON b.id = o.business_id WHERE o.id = $1",
		req.OrderID))
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to update order"})
		return
	}
	order.Items, _ = loadOrderItems(order.ID)

	if order.UserID != nil {
		models.DB.Exec(context.Background(),
			`INSERT INTO notifications (user_id, business_id, title, body, type, created_at)
			 VALUES ($1, $2, $3, $4, 'order_status', $5)`,
			*order.UserID, order.BusinessID, "Order update",
			fmt.Sprintf("Order %s is now %s", order.OrderNumber, req.Status), time.Now())
	}

	c.JSON(200, order)
}
