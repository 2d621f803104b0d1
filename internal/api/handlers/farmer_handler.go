package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/herbtrace/internal/api/middleware"
	"github.com/linskybing/herbtrace/internal/application"
	"github.com/linskybing/herbtrace/internal/config"
	"github.com/linskybing/herbtrace/internal/domain/audit"
	"github.com/linskybing/herbtrace/internal/domain/farmer"
)

type FarmerHandler struct {
	svc *application.FarmerService
}

func NewFarmerHandler(svc *application.FarmerService) *FarmerHandler {
	return &FarmerHandler{svc: svc}
}

func (h *FarmerHandler) Home(c *gin.Context) {
	render(c, "index.html", nil)
}

func (h *FarmerHandler) RegisterPage(c *gin.Context) {
	render(c, "farmer_register.html", gin.H{"Title": "Register"})
}

// Register godoc
// @Summary Farmer registration
// @Tags farmer
// @Accept x-www-form-urlencoded
// @Param input formData farmer.RegisterInput true "Farmer registration info"
// @Success 302 "Redirect to /login_farmer"
// @Router /register_farmer [post]
func (h *FarmerHandler) Register(c *gin.Context) {
	var input farmer.RegisterInput
	if err := c.ShouldBind(&input); err != nil {
		redirectWithFlash(c, "/register_farmer", FlashWarning, bindingMessage(err))
		return
	}

	if _, err := h.svc.Register(input, actorFrom(c, audit.ActorFarmer)); err != nil {
		if errors.Is(err, application.ErrFarmerAlreadyRegistered) {
			redirectWithFlash(c, middleware.LoginPath, FlashWarning, "Farmer already registered. Please login.")
			return
		}
		_ = c.Error(err)
		redirectWithFlash(c, "/register_farmer", FlashDanger, "Registration failed. Please try again.")
		return
	}

	redirectWithFlash(c, middleware.LoginPath, FlashSuccess, "Registration successful! Please login now.")
}

func (h *FarmerHandler) LoginPage(c *gin.Context) {
	render(c, "farmer_login.html", gin.H{"Title": "Login"})
}

// Login godoc
// @Summary Farmer login
// @Tags farmer
// @Accept x-www-form-urlencoded
// @Param phone formData string true "Phone"
// @Param password formData string true "Password"
// @Success 302 "Redirect to /dashboard with the token cookie set"
// @Router /login_farmer [post]
func (h *FarmerHandler) Login(c *gin.Context) {
	var input farmer.LoginInput
	if err := c.ShouldBind(&input); err != nil {
		redirectWithFlash(c, middleware.LoginPath, FlashDanger, "Invalid credentials. Try again.")
		return
	}

	_, token, err := h.svc.Authenticate(input)
	if err != nil {
		if !errors.Is(err, application.ErrInvalidCredentials) {
			_ = c.Error(err)
		}
		redirectWithFlash(c, middleware.LoginPath, FlashDanger, "Invalid credentials. Try again.")
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.TokenCookie, token, int(config.TokenTTL.Seconds()), "/", "", config.IsProduction, true)
	redirectWithFlash(c, "/dashboard", FlashSuccess, "Login successful!")
}

// Logout godoc
// @Summary Farmer logout
// @Tags farmer
// @Success 302 "Redirect to /"
// @Router /logout [get]
func (h *FarmerHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.TokenCookie, "", -1, "/", "", config.IsProduction, true)
	redirectWithFlash(c, "/", FlashInfo, "Logged out successfully")
}
