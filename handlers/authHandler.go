package handlers

import (
	"CareLink/middlewares"
	"CareLink/services"
	"CareLink/utils"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	AccountService services.AccountService
}

func NewAuthHandler(accountService services.AccountService) *AuthHandler {
	return &AuthHandler{AccountService: accountService}
}

// Register handles new account registration.
func (h *AuthHandler) Register(c *gin.Context) {
	var input utils.RegistrationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	account, err := h.AccountService.Register(c.Request.Context(), input)
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user":    account.ToProfile(),
	})
}

// Login authenticates the account and returns tokens along with profile info.
func (h *AuthHandler) Login(c *gin.Context) {
	var credentials struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&credentials); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	account, err := h.AccountService.Authenticate(c.Request.Context(), credentials.Email, credentials.Password)
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}

	accessToken, refreshToken, err := utils.GenerateTokens(strconv.FormatInt(account.ID, 10))
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}
	utils.SetAuthCookies(c, accessToken, refreshToken)

	c.JSON(http.StatusOK, gin.H{
		"message":      "Login successful",
		"user":         account.ToProfile(),
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
	})
}

// RefreshToken issues a fresh access token from a still-valid token.
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	accountID, err := middlewares.ExtractAccountIDFromContext(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing access token"})
		return
	}

	accessToken, err := utils.GenerateAccessToken(strconv.FormatInt(accountID, 10))
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"accessToken": accessToken})
}

// Logoff logs the account out by clearing cookies.
func (h *AuthHandler) Logoff(c *gin.Context) {
	utils.ClearAuthCookies(c)
	c.Status(http.StatusOK)
}

// GetProfile returns the caller's profile.
func (h *AuthHandler) GetProfile(c *gin.Context) {
	accountID, err := middlewares.ExtractAccountIDFromContext(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	account, err := h.AccountService.Profile(c.Request.Context(), accountID)
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": account.ToProfile()})
}

// UpdateProfile changes the caller's name and email only.
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	accountID, err := middlewares.ExtractAccountIDFromContext(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	account, err := h.AccountService.UpdateProfile(c.Request.Context(), accountID, input.Name, input.Email)
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"user":    account.ToProfile(),
	})
}

// SendResetCode emails a password reset code to the account's address.
func (h *AuthHandler) SendResetCode(c *gin.Context) {
	var input struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.AccountService.SendResetCode(c.Request.Context(), input.Email); err != nil {
		middlewares.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reset code sent"})
}

// ChangePassword sets a new password given a valid reset code.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var input struct {
		Email       string `json:"email"`
		ResetCode   string `json:"reset_code"`
		NewPassword string `json:"new_password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.AccountService.ChangePassword(c.Request.Context(), input.Email, input.ResetCode, input.NewPassword); err != nil {
		middlewares.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
}
