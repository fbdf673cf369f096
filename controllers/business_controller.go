package controllers

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"local-market/models"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

type BusinessController struct{}

const businessColumns = `
	id, user_id, name, COALESCE(description,''), COALESCE(image,''), COALESCE(type,''),
	COALESCE(phone,''), COALESCE(email,''), COALESCE(address,''), COALESCE(location,''),
	COALESCE(categories, '{}'), COALESCE(payment_methods, '{}'), delivery_fee, min_order,
	COALESCE(delivery_time,''), order_mode, status, custom_orders_enabled,
	delivery_enabled, pickup_enabled, spin_wheel_enabled, COALESCE(spin_discounts, '{}'),
	created_at, updated_at`

func scanBusiness(row pgx.Row) (*models.Business, error) {
	var b models.Business
	err := row.Scan(
		&b.ID, &b.UserID, &b.Name, &b.Description, &b.Image, &b.Type,
		&b.Phone, &b.Email, &b.Address, &b.Location,
		&b.Categories, &b.PaymentMethods, &b.DeliveryFee, &b.MinOrder,
		&b.DeliveryTime, &b.OrderMode, &b.Status, &b.CustomOrdersEnabled,
		&b.DeliveryEnabled, &b.PickupEnabled, &b.SpinWheelEnabled, &b.SpinDiscounts,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// GetAllBusinesses godoc
// @Summary List businesses
// @Description List businesses with optional category, search and owner filters
// @Tags Businesses
// @Produce json
// @Param category query string false "Filter by category"
// @Param search query string false "Search by name"
// @Param user_id query int false "Filter by owner"
// @Success 200 {array} models.Business
// @Router /api/businesses [get]
func (ctrl *BusinessController) GetAllBusinesses(c *gin.Context) {
	category := c.Query("category")
	search := c.Query("search")
	userID := c.Query("user_id")

	query := "SELECT " + businessColumns + " FROM businesses"

	whereConditions := []string{}
	args := []interface{}{}
	argIndex := 1

	if userID != "" {
		whereConditions = append(whereConditions, fmt.Sprintf("user_id = $%d", argIndex))
		args = append(args, userID)
		argIndex++
	} else {
		whereConditions = append(whereConditions, "status = 'active'")
	}

	if category != "" && category != "All" {
		whereConditions = append(whereConditions, fmt.Sprintf("$%d = ANY(categories)", argIndex))
		args = append(args, category)
		argIndex++
	}

	if search != "" {
		whereConditions = append(whereConditions, fmt.Sprintf("name ILIKE $%d", argIndex))
		args = append(args, "%"+search+"%")
		argIndex++
	}

	if len(whereConditions) > 0 {
		query += " WHERE " + strings.Join(whereConditions, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := models.DB.Query(context.Background(), query, args...)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to fetch businesses"})
		return
	}
	defer rows.Close()

	businesses := []models.Business{}
	for rows.Next() {
		b, err := scanBusiness(rows)
		if err != nil {
			continue
		}
		businesses = append(businesses, *b)
	}

	c.JSON(200, businesses)
}

// GetBusinessByID godoc
// @Summary Get business
// @Description Get a business and its products
// @Tags Businesses
// @Produce json
// @Param id path int true "Business ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} models.ErrorResponse
// @Router /api/businesses/{id} [get]
func (ctrl *BusinessController) GetBusinessByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(400, gin.H{"error": "Invalid business ID"})
		return
	}

	business, err := scanBusiness(models.DB.QueryRow(context.Background(),
		"SELECT "+businessColumns+" FROM businesses WHERE id = $1", id))
	if err != nil {
		c.JSON(404, gin.H{"error": "Business not found"})
		return
	}

	rows, err := models.DB.Query(context.Background(),
		`SELECT id, business_id, name, COALESCE(description,''), price, COALESCE(image,''),
		 COALESCE(category,''), in_stock, created_at, updated_at
		 FROM products WHERE business_id = $1 ORDER BY created_at DESC`, id)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to fetch products"})
		return
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.BusinessID, &p.Name, &p.Description, &p.Price,
			&p.Image, &p.Category, &p.InStock, &p.CreatedAt, &p.UpdatedAt); err != nil {
			continue
		}
		products = append(products, p)
	}

	c.JSON(200, gin.H{
		"business": business,
		"products": products,
	})
}

// CreateBusiness godoc
// @Summary Create business
// @Description Create a storefront. One business per user account.
// @Tags Businesses
// @Accept json
// @Produce json
// @Param request body models.CreateBusinessRequest true "Business data"
// @Success 201 {object} models.Business
// @Failure 400 {object} models.ErrorResponse
// @Router /api/businesses [post]
func (ctrl *BusinessController) CreateBusiness(c *gin.Context) {
	var req models.CreateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	var exists int
	models.DB.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM businesses WHERE user_id = $1", req.UserID).Scan(&exists)
	if exists > 0 {
		c.JSON(400, gin.H{"error": "You already have a business"})
		return
	}

	orderMode := req.OrderMode
	if orderMode == "" {
		orderMode = models.OrderModeCatalog
	}

	now := time.Now()
	row := models.DB.QueryRow(context.Background(),
		`INSERT INTO businesses (user_id, name, description, image, type, phone, email, address,
		 location, categories, payment_methods, delivery_fee, min_order, delivery_time,
		 order_mode, status, custom_orders_enabled, delivery_enabled, pickup_enabled,
		 spin_wheel_enabled, created_at, updated_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,'active',false,true,true,false,$16,$16)
		 RETURNING `+businessColumns,
		req.UserID, req.Name, req.Description, req.Image, req.Type, req.Phone, req.Email,
		req.Address, req.Location, req.Categories, req.PaymentMethods, req.DeliveryFee,
		req.MinOrder, req.DeliveryTime, orderMode, now)

	business, err := scanBusiness(row)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to create business"})
		return
	}

	models.DB.Exec(context.Background(),
		"UPDATE users SET is_business_user = true, updated_at = $1 WHERE id = $2",
		now, req.UserID)

	c.JSON(201, business)
}

// UpdateBusiness godoc
// @Summary Update business
// @Description Update a business. Fields absent from the body keep their current values.
// @Tags Businesses
// @Accept json
// @Produce json
// @Param id path int true "Business ID"
// @Param request body models.UpdateBusinessRequest true "Updates"
// @Success 200 {object} models.Business
// @Failure 404 {object} models.ErrorResponse
// @Router /api/businesses/{id} [put]
func (ctrl *BusinessController) UpdateBusiness(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(400, gin.H{"error": "Invalid business ID"})
		return
	}

	var req models.UpdateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	current, err := scanBusiness(models.DB.QueryRow(context.Background(),
		"SELECT "+businessColumns+" FROM businesses WHERE id = $1", id))
	if err != nil {
		c.JSON(404, gin.H{"error": "Business not found"})
		return
	}

	if req.Name != nil {
		current.Name = *req.Name
	}
	if req.Description != nil {
		current.Description = *req.Description
	}
	if req.Image != nil {
		current.Image = *req.Image
	}
	if req.Type != nil {
		current.Type = *req.Type
	}
	if req.Phone != nil {
		current.Phone = *req.Phone
	}
	if req.Email != nil {
		current.Email = *req.Email
	}
	if req.Address != nil {
		current.Address = *req.Address
	}
	if req.Location != nil {
		current.Location = *req.Location
	}
	if req.Categories != nil {
		current.Categories = *req.Categories
	}
	if req.PaymentMethods != nil {
		current.PaymentMethods = *req.PaymentMethods
	}
	if req.DeliveryFee != nil {
		current.DeliveryFee = *req.DeliveryFee
	}
	if req.MinOrder != nil {
		current.MinOrder = *req.MinOrder
	}
	if req.DeliveryTime != nil {
		current.DeliveryTime = *req.DeliveryTime
	}
	if req.OrderMode != nil {
		current.OrderMode = *req.OrderMode
	}
	if req.Status != nil {
		current.Status = *req.Status
	}
	if req.CustomOrdersEnabled != nil {
		current.CustomOrdersEnabled = *req.CustomOrdersEnabled
	}
	if req.DeliveryEnabled != nil {
		current.DeliveryEnabled = *req.DeliveryEnabled
	}
	if req.PickupEnabled != nil {
		current.PickupEnabled = *req.PickupEnabled
	}
	if req.SpinWheelEnabled != nil {
		current.SpinWheelEnabled = *req.SpinWheelEnabled
	}
	if req.SpinDiscounts != nil {
		current.SpinDiscounts = *req.SpinDiscounts
	}

	row := models.DB.QueryRow(context.Background(),
		`UPDATE businesses SET name=$1, description=$2, image=$3, type=$4, phone=$5, email=$6,
		 address=$7, location=$8, categories=$9, payment_methods=$10, delivery_fee=$11,
		 min_order=$12, delivery_time=$13, order_mode=$14, status=$15,
		 custom_orders_enabled=$16, delivery_enabled=$17, pickup_enabled=$18,
		 spin_wheel_enabled=$19, spin_discounts=$20, updated_at=$21
		 WHERE id=$22 RETURNING `+businessColumns,
		current.Name, current.Description, current.Image, current.Type, current.Phone,
		current.Email, current.Address, current.Location, current.Categories,
		current.PaymentMethods, current.DeliveryFee, current.MinOrder, current.DeliveryTime,
		current.OrderMode, current.Status, current.CustomOrdersEnabled,
		current.DeliveryEnabled, current.PickupEnabled, current.SpinWheelEnabled,
		current.SpinDiscounts, time.Now(), id)

	updated, err := scanBusiness(row)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to update business"})
		return
	}

	c.JSON(200, updated)
}
