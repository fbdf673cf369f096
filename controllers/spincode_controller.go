package controllers

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"local-market/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SpinCodeController struct{}

const (
	spinCodeTTL  = 7 * 24 * time.Hour
	spinCooldown = 24 * time.Hour
)

const spinCodeColumns = `s.id, s.code, s.business_id, b.name, s.discount_type, s.discount_amount,
	s.used, s.user_id, s.device_id, s.expires_at, s.created_at`

func scanSpinCode(row interface{ Scan(...interface{}) error }) (*models.SpinCode, error) {
	var sc models.SpinCode
	err := row.Scan(&sc.ID, &sc.Code, &sc.BusinessID, &sc.BusinessName, &sc.DiscountType,
		&sc.DiscountAmount, &sc.Used, &sc.UserID, &sc.DeviceID, &sc.ExpiresAt, &sc.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &sc, nil
}

func spinCooldownKey(businessID int, userID *int, deviceID *string) string {
	if userID != nil {
		return fmt.Sprintf("spin_cooldown:%d:user:%d", businessID, *userID)
	}
	if deviceID != nil {
		return fmt.Sprintf("spin_cooldown:%d:device:%s", businessID, *deviceID)
	}
	return ""
}

// GetSpinCodes godoc
// @Summary List spin codes for a customer
// @Tags SpinCodes
// @Produce json
// @Param user_id query int false "User ID"
// @Param device_id query string false "Device ID"
// @Param business_id query int false "Business ID"
// @Success 200 {array} models.SpinCode
// @Router /api/spin-codes [get]
func (ctrl *SpinCodeController) GetSpinCodes(c *gin.Context) {
	userID := c.Query("user_id")
	deviceID := c.Query("device_id")
	businessID := c.Query("business_id")

	query := "SELECT " + spinCodeColumns + " FROM spin_codes s JOIN businesses b ON b.id = s.business_id"
	args := []interface{}{}

	switch {
	case businessID != "":
		query += " WHERE s.business_id = $1"
		args = append(args, businessID)
	case userID != "":
		query += " WHERE s.user_id = $1"
		args = append(args, userID)
	case deviceID != "":
		query += " WHERE s.device_id = $1"
		args = append(args, deviceID)
	default:
		c.JSON(400, gin.H{"error": "user_id, device_id or business_id is required"})
		return
	}
	query += " ORDER BY s.created_at DESC"

	rows, err := models.DB.Query(context.Background(), query, args...)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to fetch spin codes"})
		return
	}
	defer rows.Close()

	codes := []models.SpinCode{}
	for rows.Next() {
		sc, err := scanSpinCode(rows)
		if err != nil {
			continue
		}
		codes = append(codes, *sc)
	}

	c.JSON(200, codes)
}

// ValidateSpinCode godoc
// @Summary Validate a discount code at checkout
// @Description The code must belong to the business, be unused and unexpired
// @Tags SpinCodes
// @Accept json
// @Produce json
// @Param request body models.ValidateSpinCodeRequest true "Code and business"
// @Success 200 {object} models.SpinCode
// @Failure 404 {object} models.ErrorResponse
// @Router /api/spin-codes/validate [post]
func (ctrl *SpinCodeController) ValidateSpinCode(c *gin.Context) {
	var req models.ValidateSpinCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	code, err := scanSpinCode(models.DB.QueryRow(context.Background(),
		`SELECT `+spinCodeColumns+` FROM spin_codes s JOIN businesses b ON b.id = s.business_id
		 WHERE s.code = $1 AND s.business_id = $2 AND s.used = false AND s.expires_at > $3`,
		strings.ToUpper(strings.TrimSpace(req.Code)), req.BusinessID, time.Now()))
	if err != nil {
		c.JSON(404, gin.H{"error": "Invalid or expired code"})
		return
	}

	c.JSON(200, code)
}

// MarkSpinCodeUsed godoc
// @Summary Mark a discount code as used
// @Tags SpinCodes
// @Accept json
// @Produce json
// @Param request body models.MarkSpinCodeUsedRequest true "Code"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} models.ErrorResponse
// @Router /api/spin-codes/use [post]
func (ctrl *SpinCodeController) MarkSpinCodeUsed(c *gin.Context) {
	var req models.MarkSpinCodeUsedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	tag, err := models.DB.Exec(context.Background(),
		"UPDATE spin_codes SET used = true WHERE code = $1 AND used = false",
		strings.ToUpper(strings.TrimSpace(req.Code)))
	if err != nil || tag.RowsAffected() == 0 {
		c.JSON(404, gin.H{"error": "Code not found or already used"})
		return
	}

	c.JSON(200, gin.H{"message": "Code marked as used"})
}

// Spin godoc
// @Summary Spin the discount wheel
// @Description One spin per customer per business per day. Wins a fixed-amount discount code.
// @Tags SpinCodes
// @Accept json
// @Produce json
// @Param request body models.SpinRequest true "Business and customer identity"
// @Success 201 {object} models.SpinCode
// @Failure 429 {object} models.ErrorResponse
// @Router /api/spin-codes/spin [post]
func (ctrl *SpinCodeController) Spin(c *gin.Context) {
	var req models.SpinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}
	if req.UserID == nil && req.DeviceID == nil {
		c.JSON(400, gin.H{"error": "userId or deviceId is required"})
		return
	}

	var enabled bool
	var discounts []float64
	err := models.DB.QueryRow(context.Background(),
		"SELECT spin_wheel_enabled, COALESCE(spin_discounts, '{}') FROM businesses WHERE id = $1",
		req.BusinessID).Scan(&enabled, &discounts)
	if err != nil {
		c.JSON(404, gin.H{"error": "Business not found"})
		return
	}
	if !enabled || len(discounts) == 0 {
		c.JSON(400, gin.H{"error": "Spin wheel is not enabled for this business"})
		return
	}

	cooldownKey := spinCooldownKey(req.BusinessID, req.UserID, req.DeviceID)
	if models.RedisClient != nil && cooldownKey != "" {
		set, err := models.RedisClient.SetNX(context.Background(), cooldownKey, 1, spinCooldown).Result()
		if err == nil && !set {
			c.JSON(429, gin.H{"error": "You already spun today. Come back tomorrow"})
			return
		}
	}

	amount := discounts[rand.Intn(len(discounts))]
	code := "SPIN-" + strings.ToUpper(uuid.NewString()[:8])
	now := time.Now()

	spinCode, err := scanSpinCode(models.DB.QueryRow(context.Background(),
		`WITH inserted AS (
		   INSERT INTO spin_codes (code, business_id, discount_type, discount_amount, used,
		     user_id, device_id, expires_at, created_at)
		   VALUES ($1, $2, 'fixed', $3, false, $4, $5, $6, $7)
		   RETURNING *
		 )
		 SELECT s.id, s.code, s.business_id, b.name, s.discount_type, s.discount_amount,
		   s.used, s.user_id, s.device_id, s.expires_at, s.created_at
		 FROM inserted s JOIN businesses b ON b.id = s.business_id`,
		code, req.BusinessID, amount, req.UserID, req.DeviceID, now.Add(spinCodeTTL), now))
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to create spin code"})
		return
	}

	c.JSON(201, spinCode)
}
