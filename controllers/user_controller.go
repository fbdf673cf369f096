package controllers

import (
	"context"
	"errors"
	"strconv"

	"local-market/models"
	"local-market/repositories"
	"local-market/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	service *services.UserService
}

func NewUserController() *UserController {
	repo := repositories.NewUserRepository(models.DB)
	return &UserController{service: services.NewUserService(repo)}
}

// GetUserByID godoc
// @Summary Get user profile
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.User
// @Failure 404 {object} models.ErrorResponse
// @Router /api/users/{id} [get]
func (ctrl *UserController) GetUserByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(400, gin.H{"error": "Invalid user ID"})
		return
	}

	user, err := ctrl.service.GetByID(context.Background(), id)
	if errors.Is(err, services.ErrUserNotFound) {
		c.JSON(404, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to fetch user"})
		return
	}

	c.JSON(200, user)
}

// UpdateUser godoc
// @Summary Update user profile
// @Tags Users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body models.UpdateUserRequest true "Profile updates"
// @Success 200 {object} models.User
// @Failure 404 {object} models.ErrorResponse
// @Router /api/users/{id} [put]
func (ctrl *UserController) UpdateUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(400, gin.H{"error": "Invalid user ID"})
		return
	}

	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	user, err := ctrl.service.Update(context.Background(), id, &req)
	if errors.Is(err, services.ErrUserNotFound) {
		c.JSON(404, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to update user"})
		return
	}

	c.JSON(200, user)
}

// SavePushToken godoc
// @Summary Save a push notification token
// @Tags Users
// @Accept json
// @Produce json
// @Param request body models.PushTokenRequest true "User and token"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} models.ErrorResponse
// @Router /api/users/push-token [post]
func (ctrl *UserController) SavePushToken(c *gin.Context) {
	var req models.PushTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	err := ctrl.service.SavePushToken(context.Background(), req.UserID, req.PushToken)
	if errors.Is(err, services.ErrUserNotFound) {
		c.JSON(404, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to save push token"})
		return
	}

	c.JSON(200, gin.H{"message": "Push token saved"})
}
