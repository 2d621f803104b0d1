package routes

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/herbtrace/internal/api/handlers"
	"github.com/linskybing/herbtrace/internal/api/middleware"
	"github.com/linskybing/herbtrace/internal/application"
	"github.com/linskybing/herbtrace/internal/repository"
	"github.com/linskybing/herbtrace/internal/web"
	"github.com/linskybing/herbtrace/pkg/storage"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// RegisterRoutes wires repositories, services and handlers onto r. store may
// be nil when archiving is disabled.
func RegisterRoutes(r *gin.Engine, gormDB *gorm.DB, store storage.ObjectStore) (*application.Services, error) {
	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	r.SetHTMLTemplate(tmpl)

	// init
	reposInstance := repository.NewRepositories(gormDB)
	servicesInstance := application.New(reposInstance, store)
	h := handlers.New(servicesInstance, gormDB)

	// ops
	r.GET("/healthz", h.Health.Healthz)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// pages; lab and manufacturer stages have no accounts
	pages := r.Group("/")
	pages.Use(middleware.OptionalFarmer())
	{
		pages.GET("/", h.Farmer.Home)
		pages.GET("/register_farmer", h.Farmer.RegisterPage)
		pages.POST("/register_farmer", h.Farmer.Register)
		pages.GET("/login_farmer", h.Farmer.LoginPage)
		pages.POST("/login_farmer", h.Farmer.Login)
		pages.GET("/logout", h.Farmer.Logout)

		pages.GET("/lab_dashboard", h.Lab.Dashboard)
		pages.GET("/lab_ticket_view/:ticket_id", h.Lab.TicketView)
		pages.POST("/lab_ticket_view/:ticket_id", h.Lab.SubmitReport)

		pages.GET("/manufacturer_dashboard", h.Manufacturer.Dashboard)
		pages.GET("/manufacturer/ticket/:ticket_id", h.Manufacturer.TicketView)
		pages.POST("/manufacturer/ticket/:ticket_id", h.Manufacturer.Finalize)

		pages.GET("/product_scan/:ticket_id", h.Scan.ProductScan)
		pages.GET("/product_scan/:ticket_id/qr.png", h.Scan.QRImage)
		pages.GET("/product_scan_download/:ticket_id", h.Scan.Download)
	}

	farmer := r.Group("/")
	farmer.Use(middleware.RequireFarmer())
	{
		farmer.GET("/dashboard", h.Dashboard.Dashboard)
		farmer.POST("/dashboard", h.Dashboard.SubmitHerb)
		farmer.GET("/download_report/:ticket_id", h.Dashboard.DownloadReport)
	}

	api := r.Group("/api")
	{
		api.GET("/product_scan/:ticket_id", h.Scan.ScanJSON)
		api.GET("/tickets/:ticket_id/history", h.Scan.History)
	}

	return servicesInstance, nil
}
