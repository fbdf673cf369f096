package controllers

import (
	"context"
	"strconv"
	"time"

	"local-market/models"

	"github.com/gin-gonic/gin"
)

type FavoriteController struct{}

// GetFavorites godoc
// @Summary List favorite businesses for a user
// @Tags Favorites
// @Produce json
// @Param user_id query int true "User ID"
// @Success 200 {array} models.Business
// @Router /api/favorites [get]
func (ctrl *FavoriteController) GetFavorites(c *gin.Context) {
	userID, err := strconv.Atoi(c.Query("user_id"))
	if err != nil || userID <= 0 {
		c.JSON(400, gin.H{"error": "user_id is required"})
		return
	}

	rows, err := models.DB.Query(context.Background(),
		`SELECT `+businessColumns+` FROM businesses
		 WHERE id IN (SELECT business_id FROM favorites WHERE user_id = $1)
		 ORDER BY created_at DESC`, userID)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to fetch favorites"})
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

// AddFavorite godoc
// @Summary Favorite a business
// @Tags Favorites
// @Accept json
// @Produce json
// @Param request body models.FavoriteRequest true "User and business"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Router /api/favorites [post]
func (ctrl *FavoriteController) AddFavorite(c *gin.Context) {
	var req models.FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	_, err := models.DB.Exec(context.Background(),
		`INSERT INTO favorites (user_id, business_id, created_at) VALUES ($1, $2, $3)
		 ON CONFLICT (user_id, business_id) DO NOTHING`,
		req.UserID, req.BusinessID, time.Now())
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to add favorite"})
		return
	}

	c.JSON(201, gin.H{"message": "Added to favorites"})
}

// RemoveFavorite godoc
// @Summary Unfavorite a business
// @Tags Favorites
// @Accept json
// @Produce json
// @Param request body models.FavoriteRequest true "User and business"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} models.ErrorResponse
// @Router /api/favorites [delete]
func (ctrl *FavoriteController) RemoveFavorite(c *gin.Context) {
	var req models.FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	tag, err := models.DB.Exec(context.Background(),
		"DELETE FROM favorites WHERE user_id = $1 AND business_id = $2",
		req.UserID, req.BusinessID)
	if err != nil || tag.RowsAffected() == 0 {
		c.JSON(404, gin.H{"error": "Favorite not found"})
		return
	}

	c.JSON(200, gin.H{"message": "Removed from favorites"})
}
