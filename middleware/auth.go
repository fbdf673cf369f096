package middleware

import (
	"local-market/models"
	"local-market/utils"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Error: "Authorization header required",
			})
			c.Abort()
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Error: "Invalid authorization header format",
			})
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(tokenParts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Error:   "Invalid or expired token",
				Details: err.Error(),
			})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)
		c.Set("is_business_user", claims.IsBusinessUser)
		c.Next()
	}
}

func BusinessUserMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		isBusinessUser, exists := c.Get("is_business_user")
		if !exists || isBusinessUser != true {
			c.JSON(http.StatusForbidden, models.ErrorResponse{
				Error: "Access denied. Business account required",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
