package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/herbtrace/pkg/response"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Healthz godoc
// @Summary Liveness and database reachability
// @Tags ops
// @Produce json
// @Success 200 {object} response.MessageResponse
// @Failure 503 {object} response.ErrorResponse
// @Router /healthz [get]
func (h *HealthHandler) Healthz(c *gin.Context) {
	sqlDB, err := h.db.DB()
	if err == nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, response.ErrorResponse{Error: "database unreachable"})
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "ok"})
}
