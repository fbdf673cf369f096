package controllers

import (
	"context"
	"strconv"
	"time"

	"local-market/models"

	"github.com/gin-gonic/gin"
)

type AddressController struct{}

// GetAddresses godoc
// @Summary List saved addresses for a user
// @Tags Addresses
// @Produce json
// @Param user_id query int true "User ID"
// @Success 200 {array} models.Address
// @Router /api/addresses [get]
func (ctrl *AddressController) GetAddresses(c *gin.Context) {
	userID, err := strconv.Atoi(c.Query("user_id"))
	if err != nil || userID <= 0 {
		c.JSON(400, gin.H{"error": "user_id is required"})
		return
	}

	rows, err := models.DB.Query(context.Background(),
		`SELECT id, user_id, COALESCE(label,''), address, COALESCE(phone,''), is_default, created_at
		 FROM addresses WHERE user_id = $1 ORDER BY is_default DESC, created_at DESC`, userID)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to fetch addresses"})
		return
	}
	defer rows.Close()

	addresses := []models.Address{}
	for rows.Next() {
		var a models.Address
		if err := rows.Scan(&a.ID, &a.UserID, &a.Label, &a.Address, &a.Phone,
			&a.IsDefault, &a.CreatedAt); err != nil {
			continue
		}
		addresses = append(addresses, a)
	}

	c.JSON(200, addresses)
}

// CreateAddress godoc
// @Summary Save an address
// @Tags Addresses
// @Accept json
// @Produce json
// @Param request body models.CreateAddressRequest true "Address data"
// @Success 201 {object} models.Address
// @Failure 400 {object} models.ErrorResponse
// @Router /api/addresses [post]
func (ctrl *AddressController) CreateAddress(c *gin.Context) {
	var req models.CreateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	ctx := context.Background()
	if req.IsDefault {
		models.DB.Exec(ctx,
			"UPDATE addresses SET is_default = false WHERE user_id = $1", req.UserID)
	}

	var a models.Address
	err := models.DB.QueryRow(ctx,
		`INSERT INTO addresses (user_id, label, address, phone, is_default, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, user_id, COALESCE(label,''), address, COALESCE(phone,''), is_default, created_at`,
		req.UserID, req.Label, req.Address, req.Phone, req.IsDefault, time.Now()).
		Scan(&a.ID, &a.UserID, &a.Label, &a.Address, &a.Phone, &a.IsDefault, &a.CreatedAt)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to save address"})
		return
	}

	c.JSON(201, a)
}

// DeleteAddress godoc
// @Summary Delete a saved address
// @Tags Addresses
// @Produce json
// @Param id path int true "Address ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} models.ErrorResponse
// @Router /api/addresses/{id} [delete]
func (ctrl *AddressController) DeleteAddress(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(400, gin.H{"error": "Invalid address ID"})
		return
	}

	tag, err := models.DB.Exec(context.Background(),
		"DELETE FROM addresses WHERE id = $1", id)
	if err != nil || tag.RowsAffected() == 0 {
		c.JSON(404, gin.H{"error": "Address not found"})
		return
	}

	c.JSON(200, gin.H{"message": "Address deleted"})
}
