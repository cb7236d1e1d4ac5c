package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/storefront-api/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront-api/internal/errors"
	"github.com/aaravmahajanofficial/storefront-api/internal/models"
	service "github.com/aaravmahajanofficial/storefront-api/internal/services"
	"github.com/aaravmahajanofficial/storefront-api/internal/utils"
	"github.com/aaravmahajanofficial/storefront-api/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type UserHandler struct {
	userService service.UserService
	validator   *validator.Validate
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService, validator: validator.New()}
}

// Register godoc
//	@Summary		Register a new account
//	@Description	Creates a customer account and returns a bearer token. Configured bootstrap emails become admins.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			user	body		models.RegisterRequest	true	"Registration details"
//	@Success		201		{object}	models.AuthResponse
//	@Failure		400		{object}	response.ErrorResponse	"Validation error or user already exists"
//	@Failure		500		{object}	response.ErrorResponse	"Internal server error"
//	@Router			/auth/register [post]
func (h *UserHandler) Register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.RegisterRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid registration input")
			return
		}

		resp, err := h.userService.Register(r.Context(), &req)
		if err != nil {
			logger.Warn("User registration failed", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusCreated, resp)
	}
}

// Login godoc
//	@Summary		Log in
//	@Description	Exchanges credentials for a bearer token. Repeated failures for one email are rate limited.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			credentials	body		models.LoginRequest	true	"Email and password"
//	@Success		200			{object}	models.AuthResponse
//	@Failure		400			{object}	response.ErrorResponse	"Validation error"
//	@Failure		401			{object}	response.ErrorResponse	"Invalid email or password"
//	@Failure		429			{object}	response.ErrorResponse	"Too many attempts, see retryAfter"
//	@Failure		500			{object}	response.ErrorResponse	"Internal server error"
//	@Router			/auth/login [post]
func (h *UserHandler) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.LoginRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid login input")
			return
		}

		resp, err := h.userService.Login(r.Context(), &req)
		if err != nil {
			logger.Warn("Login failed", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("User logged in", slog.String("userId", resp.User.ID.String()))
		response.Success(w, http.StatusOK, resp)
	}
}

// Profile godoc
//	@Summary	Get the current user
//	@Tags		Auth
//	@Produce	json
//	@Success	200	{object}	models.ProfileResponse
//	@Failure	401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure	404	{object}	response.ErrorResponse	"User not found"
//	@Failure	500	{object}	response.ErrorResponse	"Internal server error"
//	@Security	BearerAuth
//	@Router		/auth/profile [get]
func (h *UserHandler) Profile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthorized profile access attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		user, err := h.userService.GetUserByID(r.Context(), claims.UserID)
		if err != nil {
			logger.Error("Failed to fetch profile", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, &models.ProfileResponse{User: user})
	}
}

// Logout godoc
//	@Summary		Log out
//	@Description	Revokes the presented token for the rest of its lifetime.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	response.MessageResponse
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		500	{object}	response.ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/auth/logout [post]
func (h *UserHandler) Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		if err := h.userService.Logout(r.Context(), claims); err != nil {
			logger.Error("Failed to log out", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("User logged out")
		response.Message(w, http.StatusOK, "Logged out successfully")
	}
}
