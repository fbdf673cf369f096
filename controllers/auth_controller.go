package controllers

import (
	"context"
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"sync"
	"time"

	"local-market/models"
	"local-market/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct{}

const resetCodeTTL = 10 * time.Minute

// In-memory fallback for reset codes when redis is not configured.
var (
	resetCodesMu sync.Mutex
	resetCodes   = map[string]resetCodeEntry{}
)

type resetCodeEntry struct {
	code      string
	expiresAt time.Time
}

func generateResetCode() string {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return fmt.Sprintf("%06d", time.Now().UnixNano()%1000000)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000)
}

func storeResetCode(email, code string) {
	if models.RedisClient != nil {
		err := models.RedisClient.Set(context.Background(), "reset_code:"+email, code, resetCodeTTL).Err()
		if err == nil {
			return
		}
		log.Printf("Redis set failed, falling back to memory: %v", err)
	}
	resetCodesMu.Lock()
	resetCodes[email] = resetCodeEntry{code: code, expiresAt: time.Now().Add(resetCodeTTL)}
	resetCodesMu.Unlock()
}

func checkResetCode(email, code string) bool {
	if models.RedisClient != nil {
		stored, err := models.RedisClient.Get(context.Background(), "reset_code:"+email).Result()
		if err == nil {
			return stored == code
		}
	}
	resetCodesMu.Lock()
	defer resetCodesMu.Unlock()
	entry, ok := resetCodes[email]
	if !ok || time.Now().After(entry.expiresAt) {
		return false
	}
	return entry.code == code
}

func clearResetCode(email string) {
	if models.RedisClient != nil {
		models.RedisClient.Del(context.Background(), "reset_code:"+email)
	}
	resetCodesMu.Lock()
	delete(resetCodes, email)
	resetCodesMu.Unlock()
}

// Register godoc
// @Summary Register a new account
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Registration data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Router /api/auth/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	var exists int
	models.DB.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM users WHERE email = $1", req.Email).Scan(&exists)
	if exists > 0 {
		c.JSON(400, gin.H{"error": "Email already registered"})
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to process password"})
		return
	}

	loginMethod := req.LoginMethod
	if loginMethod == "" {
		loginMethod = "email"
	}

	var user models.User
	now := time.Now()
	err = models.DB.QueryRow(context.Background(),
		`INSERT INTO users (name, email, phone, password, is_business_user, login_method, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		 RETURNING id, name, email, COALESCE(phone,''), is_business_user, login_method, created_at, updated_at`,
		req.Name, req.Email, req.Phone, hashed, req.IsBusinessUser, loginMethod, now).
		Scan(&user.ID, &user.Name, &user.Email, &user.Phone, &user.IsBusinessUser,
			&user.LoginMethod, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to create account"})
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.IsBusinessUser)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(201, gin.H{"user": user, "token": token})
}

// Login godoc
// @Summary Log in
// @Description Email/password login, or social login by verified provider email
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} models.ErrorResponse
// @Router /api/auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	var user models.User
	var passwordHash string
	err := models.DB.QueryRow(context.Background(),
		`SELECT id, name, email, COALESCE(phone,''), password, COALESCE(avatar_url,''),
		 is_business_user, login_method, created_at, updated_at
		 FROM users WHERE email = $1`, req.Email).
		Scan(&user.ID, &user.Name, &user.Email, &user.Phone, &passwordHash, &user.AvatarURL,
			&user.IsBusinessUser, &user.LoginMethod, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		c.JSON(401, gin.H{"error": "Invalid email or password"})
		return
	}

	// Social logins skip the password check; the provider already verified
	// ownership of the email.
	if req.LoginMethod != "google" && req.LoginMethod != "facebook" {
		if req.Password == "" {
			c.JSON(400, gin.H{"error": "Password is required"})
			return
		}
		valid, err := utils.VerifyPassword(passwordHash, req.Password)
		if err != nil || !valid {
			c.JSON(401, gin.H{"error": "Invalid email or password"})
			return
		}
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.IsBusinessUser)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(200, gin.H{"user": user, "token": token})
}

// RequestPasswordReset godoc
// @Summary Request a password reset code
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.ResetPasswordRequest true "Account email"
// @Success 200 {object} map[string]interface{}
// @Router /api/auth/reset-password [post]
func (ctrl *AuthController) RequestPasswordReset(c *gin.Context) {
	var req models.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	var userID int
	err := models.DB.QueryRow(context.Background(),
		"SELECT id FROM users WHERE email = $1", req.Email).Scan(&userID)
	if err != nil {
		// Same response whether or not the account exists.
		c.JSON(200, gin.H{"message": "If the email is registered, a reset code has been sent"})
		return
	}

	code := generateResetCode()
	storeResetCode(req.Email, code)

	go func() {
		emailService, err := models.NewEmailService()
		if err != nil {
			log.Printf("Email service unavailable: %v", err)
			return
		}
		if err := emailService.SendResetCodeEmail(req.Email, code); err != nil {
			log.Printf("Failed to send reset code email: %v", err)
		}
	}()

	c.JSON(200, gin.H{"message": "If the email is registered, a reset code has been sent"})
}

// VerifyResetCode godoc
// @Summary Verify a password reset code
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.VerifyResetCodeRequest true "Email and code"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Router /api/auth/verify-reset-code [post]
func (ctrl *AuthController) VerifyResetCode(c *gin.Context) {
	var req models.VerifyResetCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	if !checkResetCode(req.Email, req.Code) {
		c.JSON(400, gin.H{"error": "Invalid or expired code"})
		return
	}

	c.JSON(200, gin.H{"valid": true})
}

// UpdatePassword godoc
// @Summary Set a new password with a reset code
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.UpdatePasswordRequest true "Email, code and new password"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Router /api/auth/update-password [post]
func (ctrl *AuthController) UpdatePassword(c *gin.Context) {
	var req models.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	if !checkResetCode(req.Email, req.Code) {
		c.JSON(400, gin.H{"error": "Invalid or expired code"})
		return
	}

	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to process password"})
		return
	}

	tag, err := models.DB.Exec(context.Background(),
		"UPDATE users SET password = $1, updated_at = $2 WHERE email = $3",
		hashed, time.Now(), req.Email)
	if err != nil || tag.RowsAffected() == 0 {
		c.JSON(500, gin.H{"error": "Failed to update password"})
		return
	}

	clearResetCode(req.Email)

	c.JSON(200, gin.H{"message": "Password updated"})
}
