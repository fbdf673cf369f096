package controllers

import (
	"context"
	"strconv"
	"time"

	"local-market/models"

	"github.com/gin-gonic/gin"
)

type AdController struct{}

const adColumns = `id, business_id, title, image, COALESCE(link,''), views, clicks, is_active, created_at`

func scanAd(row interface{ Scan(...interface{}) error }) (*models.Ad, error) {
	var a models.Ad
	err := row.Scan(&a.ID, &a.BusinessID, &a.Title, &a.Image, &a.Link,
		&a.Views, &a.Clicks, &a.IsActive, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// GetAds godoc
// @Summary List ads
// @Description Active ads for the home feed, or all ads for a business
// @Tags Ads
// @Produce json
// @Param business_id query int false "Business ID"
// @Success 200 {array} models.Ad
// @Router /api/ads [get]
func (ctrl *AdController) GetAds(c *gin.Context) {
	businessID := c.Query("business_id")

	var query string
	args := []interface{}{}
	if businessID != "" {
		query = "SELECT " + adColumns + " FROM ads WHERE business_id = $1 ORDER BY created_at DESC"
		args = append(args, businessID)
	} else {
		query = "SELECT " + adColumns + " FROM ads WHERE is_active = true ORDER BY created_at DESC"
	}

	rows, err := models.DB.Query(context.Background(), query, args...)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to fetch ads"})
		return
	}
	defer rows.Close()

	ads := []models.Ad{}
	for rows.Next() {
		a, err := scanAd(rows)
		if err != nil {
			continue
		}
		ads = append(ads, *a)
	}

	c.JSON(200, ads)
}

// CreateAd godoc
// @Summary Create an ad
// @Tags Ads
// @Accept json
// @Produce json
// @Param request body models.CreateAdRequest true "Ad data"
// @Success 201 {object} models.Ad
// @Failure 400 {object} models.ErrorResponse
// @Router /api/ads [post]
func (ctrl *AdController) CreateAd(c *gin.Context) {
	var req models.CreateAdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	ad, err := scanAd(models.DB.QueryRow(context.Background(),
		`INSERT INTO ads (business_id, title, image, link, views, clicks, is_active, created_at)
		 VALUES ($1, $2, $3, $4, 0, 0, true, $5)
		 RETURNING `+adColumns,
		req.BusinessID, req.Title, req.Image, req.Link, time.Now()))
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to create ad"})
		return
	}

	c.JSON(201, ad)
}

// UpdateAd godoc
// @Summary Update an ad
// @Tags Ads
// @Accept json
// @Produce json
// @Param id path int true "Ad ID"
// @Param request body models.UpdateAdRequest true "Updates"
// @Success 200 {object} models.Ad
// @Failure 404 {object} models.ErrorResponse
// @Router /api/ads/{id} [put]
func (ctrl *AdController) UpdateAd(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(400, gin.H{"error": "Invalid ad ID"})
		return
	}

	var req models.UpdateAdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	ad, err := scanAd(models.DB.QueryRow(context.Background(),
		`UPDATE ads SET
		 title = COALESCE($1, title),
		 image = COALESCE($2, image),
		 link = COALESCE($3, link),
		 is_active = COALESCE($4, is_active)
		 WHERE id = $5 RETURNING `+adColumns,
		req.Title, req.Image, req.Link, req.IsActive, id))
	if err != nil {
		c.JSON(404, gin.H{"error": "Ad not found"})
		return
	}

	c.JSON(200, ad)
}

// DeleteAd godoc
// @Summary Delete an ad
// @Tags Ads
// @Produce json
// @Param id path int true "Ad ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} models.ErrorResponse
// @Router /api/ads/{id} [delete]
func (ctrl *AdController) DeleteAd(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(400, gin.H{"error": "Invalid ad ID"})
		return
	}

	tag, err := models.DB.Exec(context.Background(), "DELETE FROM ads WHERE id = $1", id)
	if err != nil || tag.RowsAffected() == 0 {
		c.JSON(404, gin.H{"error": "Ad not found"})
		return
	}

	c.JSON(200, gin.H{"message": "Ad deleted"})
}

// RecordAdView godoc
// @Summary Record an ad impression
// @Tags Ads
// @Produce json
// @Param id path int true "Ad ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/ads/{id}/view [post]
func (ctrl *AdController) RecordAdView(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(400, gin.H{"error": "Invalid ad ID"})
		return
	}

	tag, err := models.DB.Exec(context.Background(),
		"UPDATE ads SET views = views + 1 WHERE id = $1", id)
	if err != nil || tag.RowsAffected() == 0 {
		c.JSON(404, gin.H{"error": "Ad not found"})
		return
	}

	c.JSON(200, gin.H{"message": "View recorded"})
}

// RecordAdClick godoc
// @Summary Record an ad click
// @Tags Ads
// @Produce json
// @Param id path int true "Ad ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/ads/{id}/click [post]
func (ctrl *AdController) RecordAdClick(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(400, gin.H{"error": "Invalid ad ID"})
		return
	}

	tag, err := models.DB.Exec(context.Background(),
		"UPDATE ads SET clicks = clicks + 1 WHERE id = $1", id)
	if err != nil || tag.RowsAffected() == 0 {
		c.JSON(404, gin.H{"error": "Ad not found"})
		return
	}

	c.JSON(200, gin.H{"message": "Click recorded"})
}
