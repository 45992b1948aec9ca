package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/frotaops/frota_backend/internal/core/ports/services"
	"github.com/frotaops/frota_backend/internal/dto"
	"github.com/frotaops/frota_backend/internal/middleware"
	"github.com/frotaops/frota_backend/internal/platform/config"
	"github.com/frotaops/frota_backend/internal/utils"
	"github.com/frotaops/frota_backend/internal/utils/fleet"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

type authHandler struct {
	driverService portssvc.DriverSvcFacade
	cfg           *config.Config
}

// registerAuthRoutes registers the public login route, rate limited by client
// IP.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := &authHandler{driverService: services.Driver, cfg: cfg}

	rate, err := limiter.NewRateFromFormatted(cfg.LoginRateLimit)
	if err != nil {
		// Fall back to a conservative default rather than running unthrottled.
		rate = limiter.Rate{Period: time.Minute, Limit: 5}
	}
	loginLimiter := limiter.New(memory.NewStore(), rate)

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/login", middleware.RateLimit(loginLimiter), h.login)
	}
}

// login godoc
// @Summary Driver login
// @Description Authenticates a driver by CPF and password and returns a bearer token
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   credentials body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 500 {object} map[string]string "Failed to login"
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Login", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	driver, err := h.driverService.VerifyCredentials(c.Request.Context(), req.CPF, req.Password)
	if err != nil {
		logger.Warn("Login failed", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateJWT(driver.DriverID, h.cfg.JWTSecret, h.cfg.JWTExpiryDuration, h.cfg.JWTIssuer)
	if err != nil {
		logger.Error("Failed to generate token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to login"})
		return
	}

	logger.Info("Driver logged in", slog.String("driver_id", driver.DriverID))
	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:    token,
		Driver:   dto.ToDriverResponse(driver, fleet.LicenseStatus(*driver, time.Now())),
		TokenTTL: h.cfg.JWTExpiryDuration.String(),
	})
}
