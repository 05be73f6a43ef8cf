package v1

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"go-jobseeker-backend/internal/delivery/http/response"
	"go-jobseeker-backend/internal/domain"
	"go-jobseeker-backend/pkg/apperror"
	"go-jobseeker-backend/pkg/logger"
	"go-jobseeker-backend/pkg/supabase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC    domain.AuthUsecase
	profileUC domain.ProfileUsecase
	sb        *supabase.Client
}

func NewAuthHandler(public *gin.RouterGroup, protected *gin.RouterGroup, authUC domain.AuthUsecase, profileUC domain.ProfileUsecase, sb *supabase.Client) {
	handler := &AuthHandler{
		authUC:    authUC,
		profileUC: profileUC,
		sb:        sb,
	}

	publicAuth := public.Group("/auth")
	{
		publicAuth.POST("/register", handler.Register)
		publicAuth.POST("/login", handler.Login)
		publicAuth.GET("/oauth/:provider", handler.OAuth)
		publicAuth.POST("/forgot-password", handler.ForgotPassword)
		publicAuth.POST("/reset-password", handler.ResetPassword)
	}

	protectedAuth := protected.Group("/auth")
	{
		protectedAuth.POST("/logout", handler.Logout)
		protectedAuth.POST("/sync", handler.SyncProfile)
		protectedAuth.GET("/me", handler.Me)
		protectedAuth.PUT("/password", handler.UpdatePassword)
	}
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// Register godoc
// @Summary      User Registration
// @Description  Register a new user with email and password via Supabase
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        register  body      RegisterRequest  true  "Registration Details"
// @Success      201    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	result, err := h.sb.SignUp(c.Request.Context(), req.Email, req.Password, nil)
	if err != nil {
		c.Error(err)
		return
	}

	// Without auto-confirm the user is synced to the local DB on first
	// login, so email verification gates account creation on our side.
	if result.Session == nil {
		response.Success(c, http.StatusCreated, "Registration successful. Please check your email to confirm.", nil)
		return
	}

	user := &domain.User{
		ID:    result.User.ID,
		Email: req.Email,
	}
	if err := h.authUC.EnsureUserExists(c.Request.Context(), user); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Registration successful", gin.H{
		"token": result.Session.AccessToken,
		"user":  user,
	})
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary      User Login
// @Description  Login with email and password via Supabase
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        login  body      LoginRequest  true  "Login Credentials"
// @Success      200    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Failure      401    {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	session, err := h.sb.SignInWithPassword(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// Keep credential errors generic; pass provider messages like
		// "Email not confirmed" through untouched.
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Code == http.StatusBadRequest {
			c.Error(apperror.Unauthorized("Wrong password or account not found"))
			return
		}
		c.Error(err)
		return
	}

	user := &domain.User{
		ID:    session.User.ID,
		Email: session.User.Email,
	}
	if err := h.authUC.EnsureUserExists(c.Request.Context(), user); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Login successful", gin.H{
		"token": session.AccessToken,
		"user":  user,
	})
}

// Logout godoc
// @Summary      User Logout
// @Description  Revoke the current session token
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /auth/logout [post]
// @Security     BearerAuth
func (h *AuthHandler) Logout(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		c.Error(apperror.Unauthorized("No session token"))
		return
	}
	if err := h.sb.SignOut(c.Request.Context(), token); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Logged out", nil)
}

// OAuth godoc
// @Summary      OAuth Sign-In URL
// @Description  Build the provider authorize URL the frontend should redirect to
// @Tags         auth
// @Produce      json
// @Param        provider  path  string  true  "OAuth provider (google, github, ...)"
// @Success      200  {object}  response.Response
// @Router       /auth/oauth/{provider} [get]
func (h *AuthHandler) OAuth(c *gin.Context) {
	authURL, err := h.sb.OAuthURL(c.Param("provider"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OAuth URL", gin.H{"url": authURL})
}

func (h *AuthHandler) SyncProfile(c *gin.Context) {
	user := &domain.User{
		ID:    c.GetString(string(domain.KeyUserID)),
		Email: c.GetString(string(domain.KeyUserEmail)),
	}
	if err := h.authUC.EnsureUserExists(c.Request.Context(), user); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile synced", user)
}

// Me godoc
// @Summary      Current User
// @Description  Return the logged-in user plus their profile completion state
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /auth/me [get]
// @Security     BearerAuth
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	user, err := h.authUC.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	completion, err := h.profileUC.GetCompletion(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User details", gin.H{
		"user":       user,
		"completion": completion,
	})
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ForgotPassword godoc
// @Summary      Request Password Reset
// @Description  Send password reset email to user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      ForgotPasswordRequest  true  "Email address"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Router       /auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	// Track start time so every path takes the same wall time; response
	// timing must not reveal whether the email exists.
	start := time.Now()
	const targetDuration = 2 * time.Second

	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	// Always the same response whether or not the account exists
	successMessage := "If an account with that email exists, a password reset link has been sent."

	exists, err := h.authUC.CheckEmailExists(c.Request.Context(), req.Email)
	if err != nil {
		logger.Log.Warn("Forgot-password lookup failed", "error", err)
		simulateDelay(start, targetDuration)
		response.Success(c, http.StatusOK, successMessage, nil)
		return
	}

	if exists {
		if err := h.sb.SendPasswordReset(c.Request.Context(), req.Email); err != nil {
			// Log, do not reveal
			logger.Log.Warn("Password reset dispatch failed", "error", err)
		}
	}

	simulateDelay(start, targetDuration)
	response.Success(c, http.StatusOK, successMessage, nil)
}

type ResetPasswordRequest struct {
	AccessToken string `json:"access_token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

// ResetPassword godoc
// @Summary      Reset Password
// @Description  Set new password using the reset token from the email link
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      ResetPasswordRequest  true  "Reset password details"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Router       /auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.sb.UpdatePassword(c.Request.Context(), req.AccessToken, req.NewPassword); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Password has been reset successfully. You can now login with your new password.", nil)
}

type UpdatePasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

// UpdatePassword godoc
// @Summary      Update Password
// @Description  Change the password of the logged-in user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      UpdatePasswordRequest  true  "New password"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Router       /auth/password [put]
// @Security     BearerAuth
func (h *AuthHandler) UpdatePassword(c *gin.Context) {
	var req UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	token := bearerToken(c)
	if token == "" {
		c.Error(apperror.Unauthorized("No session token"))
		return
	}

	if err := h.sb.UpdatePassword(c.Request.Context(), token, req.NewPassword); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Password updated", nil)
}

// bearerToken pulls the raw access token off the request
func bearerToken(c *gin.Context) string {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	if cookie, err := c.Cookie("auth_token"); err == nil {
		return cookie
	}
	return ""
}

// simulateDelay pads the response so all paths take at least targetDuration
func simulateDelay(start time.Time, targetDuration time.Duration) {
	elapsed := time.Since(start)
	if elapsed < targetDuration {
		time.Sleep(targetDuration - elapsed)
	}
}
