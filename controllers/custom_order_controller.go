package controllers

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"local-market/models"

	"github.com/gin-gonic/gin"
)

type CustomOrderController struct{}

const customOrderColumns = `id, business_id, user_id, device_id, customer_name, customer_phone,
	description, image_url, delivery_preference, status, quote_amount, quote_note,
	created_at, updated_at`

func scanCustomOrder(row interface{ Scan(...interface{}) error }) (*models.CustomOrder, error) {
	var co models.CustomOrder
	err := row.Scan(&co.ID, &co.BusinessID, &co.UserID, &co.DeviceID, &co.CustomerName,
		&co.CustomerPhone, &co.Description, &co.ImageURL, &co.DeliveryPreference,
		&co.Status, &co.QuoteAmount, &co.QuoteNote, &co.CreatedAt, &co.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &co, nil
}

// CreateCustomOrder godoc
// @Summary Submit a custom order request
// @Description Free-form request with an optional reference photo. Requires the business to accept custom orders.
// @Tags CustomOrders
// @Accept json
// @Produce json
// @Param request body models.CreateCustomOrderRequest true "Request data"
// @Success 201 {object} models.CustomOrder
// @Failure 400 {object} models.ErrorResponse
// @Router /api/custom-orders [post]
func (ctrl *CustomOrderController) CreateCustomOrder(c *gin.Context) {
	var req models.CreateCustomOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	var ownerID int
	var enabled bool
	err := models.DB.QueryRow(context.Background(),
		"SELECT user_id, custom_orders_enabled FROM businesses WHERE id = $1", req.BusinessID).
		Scan(&ownerID, &enabled)
	if err != nil {
		c.JSON(404, gin.H{"error": "Business not found"})
		return
	}
	if !enabled {
		c.JSON(400, gin.H{"error": "This business does not accept custom orders"})
		return
	}

	now := time.Now()
	order, err := scanCustomOrder(models.DB.QueryRow(context.Background(),
		`INSERT INTO custom_orders (business_id, user_id, device_id, customer_name, customer_phone,
		 description, image_url, delivery_preference, status, created_at, updated_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,'pending',$9,$9)
		 RETURNING `+customOrderColumns,
		req.BusinessID, req.UserID, req.DeviceID, req.CustomerName, req.CustomerPhone,
		req.Description, req.ImageURL, req.DeliveryPreference, now))
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to create custom order"})
		return
	}

	models.DB.Exec(context.Background(),
		`INSERT INTO notifications (user_id, business_id, title, body, type, created_at)
		 VALUES ($1, $2, $3, $4, 'custom_order', $5)`,
		ownerID, req.BusinessID, "New custom order request",
		fmt.Sprintf("Custom request from %s", req.CustomerName), now)

	c.JSON(201, order)
}

// GetCustomOrders godoc
// @Summary List custom orders
// @Description List by business (owner view) or by user/device (customer view)
// @Tags CustomOrders
// @Produce json
// @Param business_id query int false "Business ID"
// @Param user_id query int false "Customer user ID"
// @Param device_id query string false "Guest device ID"
// @Success 200 {array} models.CustomOrder
// @Router /api/custom-orders [get]
func (ctrl *CustomOrderController) GetCustomOrders(c *gin.Context) {
	businessID := c.Query("business_id")
	userID := c.Query("user_id")
	deviceID := c.Query("device_id")

	query := "SELECT " + customOrderColumns + " FROM custom_orders"
	args := []interface{}{}

	switch {
	case businessID != "":
		query += " WHERE business_id = $1"
		args = append(args, businessID)
	case userID != "":
		query += " WHERE user_id = $1"
		args = append(args, userID)
	case deviceID != "":
		query += " WHERE device_id = $1"
		args = append(args, deviceID)
	default:
		c.JSON(400, gin.H{"error": "business_id, user_id or device_id is required"})
		return
	}
	query += " ORDER BY created_at DESC"

	rows, err := models.DB.Query(context.Background(), query, args...)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to fetch custom orders"})
		return
	}
	defer rows.Close()

	orders := []models.CustomOrder{}
	for rows.Next() {
		co, err := scanCustomOrder(rows)
		if err != nil {
			continue
		}
		orders = append(orders, *co)
	}

	c.JSON(200, orders)
}

// QuoteCustomOrder godoc
// @Summary Quote a custom order
// @Description Business sets a price quote; the request moves to quoted status
// @Tags CustomOrders
// @Accept json
// @Produce json
// @Param id path int true "Custom order ID"
// @Param request body models.QuoteCustomOrderRequest true "Quote"
// @Success 200 {object} models.CustomOrder
// @Failure 404 {object} models.ErrorResponse
// @Router /api/custom-orders/{id}/quote [patch]
func (ctrl *CustomOrderController) QuoteCustomOrder(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(400, gin.H{"error": "Invalid custom order ID"})
		return
	}

	var req models.QuoteCustomOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	order, err := scanCustomOrder(models.DB.QueryRow(context.Background(),
		`UPDATE custom_orders SET quote_amount = $1, quote_note = $2, status = 'quoted', updated_at = $3
		 WHERE id = $4 RETURNING `+customOrderColumns,
		req.Amount, req.Note, time.Now(), id))
	if err != nil {
		c.JSON(404, gin.H{"error": "Custom order not found"})
		return
	}

	if order.UserID != nil {
		models.DB.Exec(context.Background(),
			`INSERT INTO notifications (user_id, business_id, title, body, type, created_at)
			 VALUES ($1, $2, $3, $4, 'custom_order_quote', $5)`,
			*order.UserID, order.BusinessID, "Quote received",
			fmt.Sprintf("Your custom order was quoted at %.2f", req.Amount), time.Now())
	}

	c.JSON(200, order)
}

// UpdateCustomOrderStatus godoc
// @Summary Update custom order status
// @Tags CustomOrders
// @Accept json
// @Produce json
// @Param id path int true "Custom order ID"
// @Param request body models.UpdateCustomOrderStatusRequest true "New status"
// @Success 200 {object} models.CustomOrder
// @Failure 404 {object} models.ErrorResponse
// @Router /api/custom-orders/{id}/status [patch]
func (ctrl *CustomOrderController) UpdateCustomOrderStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(400, gin.H{"error": "Invalid custom order ID"})
		return
	}

	var req models.UpdateCustomOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	order, err := scanCustomOrder(models.DB.QueryRow(context.Background(),
		`UPDATE custom_orders SET status = $1, updated_at = $2 WHERE id = $3
		 RETURNING `+customOrderColumns,
		req.Status, time.Now(), id))
	if err != nil {
		c.JSON(404, gin.H{"error": "Custom order not found"})
		return
	}

	c.JSON(200, order)
}

// DeleteCustomOrder godoc
// @Summary Delete a custom order request
// @Tags CustomOrders
// @Produce json
// @Param id path int true "Custom order ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} models.ErrorResponse
// @Router /api/custom-orders/{id} [delete]
func (ctrl *CustomOrderController) DeleteCustomOrder(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(400, gin.H{"error": "Invalid custom order ID"})
		return
	}

	tag, err := models.DB.Exec(context.Background(),
		"DELETE FROM custom_orders WHERE id = $1", id)
	if err != nil || tag.RowsAffected() == 0 {
		c.JSON(404, gin.H{"error": "Custom order not found"})
		return
	}

	c.JSON(200, gin.H{"message": "Custom order deleted"})
}
