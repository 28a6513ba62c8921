package handlers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	userService "weddingsparks/services/user"
)

// AuthHandler exposes account and session endpoints.
type AuthHandler struct {
	Service userService.UserService
}

// saveUpload copies one uploaded file into the OS temp dir and returns
// its path. Callers remove the file after the service consumed it.
func saveUpload(c *gin.Context, field string) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		return "", err
	}
	dst := filepath.Join(os.TempDir(), uuid.NewString()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, dst); err != nil {
		return "", err
	}
	return dst, nil
}

// Register handles signup. Accepts multipart form data with an optional
// avatar image.
func (h *AuthHandler) Register(c *gin.Context) {
	logger := getLogger(c)

	input := userService.RegisterInput{
		Name:        c.PostForm("name"),
		Email:       c.PostForm("email"),
		Password:    c.PostForm("password"),
		PhoneNumber: c.PostForm("phoneNumber"),
		Role:        c.PostForm("role"),
	}
	if path, err := saveUpload(c, "avatar"); err == nil {
		input.AvatarPath = path
		defer os.Remove(path)
	}

	result, err := h.Service.Register(c.Request.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, userService.ErrMissingFields), errors.Is(err, userService.ErrInvalidRole):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, userService.ErrEmailTaken):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("User registration failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
		}
		return
	}
	c.JSON(http.StatusCreated, result)
}

// Login handles credential login and returns the token pair.
func (h *AuthHandler) Login(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	result, err := h.Service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, userService.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// Refresh rotates a refresh token into a new token pair.
func (h *AuthHandler) Refresh(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		RefreshToken string `json:"refreshToken"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.RefreshToken == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "refreshToken is required"})
		return
	}

	tokens, err := h.Service.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, userService.ErrInvalidRefresh) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Token refresh failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Token refresh failed"})
		return
	}
	c.JSON(http.StatusOK, tokens)
}

// Logout revokes the caller's refresh token.
func (h *AuthHandler) Logout(c *gin.Context) {
	userID := c.GetString("userID")
	if err := h.Service.Logout(c.Request.Context(), userID); err != nil {
		getLogger(c).Error("Logout failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Logout failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// Me returns the authenticated account.
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString("userID")
	u, err := h.Service.GetUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, userService.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		getLogger(c).Error("User lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "User lookup failed"})
		return
	}
	c.JSON(http.StatusOK, u)
}

// CheckOnboarding reports whether the vendor completed onboarding.
func (h *AuthHandler) CheckOnboarding(c *gin.Context) {
	userID := c.GetString("userID")
	done, err := h.Service.CheckOnboarding(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, userService.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		getLogger(c).Error("Onboarding check failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Onboarding check failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"onboardingCompleted": done})
}
