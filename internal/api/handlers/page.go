package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/linskybing/herbtrace/internal/domain/audit"
	"github.com/linskybing/herbtrace/pkg/utils"
)

const flashCookie = "flash"

const (
	FlashSuccess = "success"
	FlashInfo    = "info"
	FlashWarning = "warning"
	FlashDanger  = "danger"
)

// Flash is a one-shot message shown on the next rendered page.
type Flash struct {
	Category string
	Message  string
}

func setFlash(c *gin.Context, category, message string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(flashCookie, category+":"+message, 60, "/", "", false, true)
}

func popFlash(c *gin.Context) *Flash {
	raw, err := c.Cookie(flashCookie)
	if err != nil || raw == "" {
		return nil
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)

	category, message, ok := strings.Cut(raw, ":")
	if !ok {
		return &Flash{Category: FlashInfo, Message: raw}
	}
	return &Flash{Category: category, Message: message}
}

func redirectWithFlash(c *gin.Context, location, category, message string) {
	setFlash(c, category, message)
	c.Redirect(http.StatusFound, location)
}

// render adds the pending flash and the farmer session, if any, to data.
func render(c *gin.Context, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if f := popFlash(c); f != nil {
		data["Flash"] = f
	}
	if claims, err := utils.GetClaimsFromContext(c); err == nil {
		data["Session"] = claims
	}
	c.HTML(http.StatusOK, name, data)
}

func serverError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.String(http.StatusInternalServerError, "Internal server error")
}

func notFound(c *gin.Context, what string) {
	c.String(http.StatusNotFound, what+" not found")
}

func attachment(c *gin.Context, filename, contentType string, data []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, contentType, data)
}

func actorFrom(c *gin.Context, actorType audit.ActorType) audit.Actor {
	actor := audit.Actor{
		Type:      actorType,
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
	if actorType == audit.ActorFarmer {
		if id, err := utils.GetFarmerIDFromContext(c); err == nil {
			actor.ID = &id
		}
	}
	return actor
}

var fieldLabels = map[string]string{
	"Name":             "name",
	"Phone":            "phone",
	"Password":         "password",
	"HerbName":         "herb name",
	"GrowthMonth":      "growth month",
	"FertilizerUsed":   "fertilizer used",
	"HarvestingMethod": "harvesting method",
	"Location":         "location",
	"LabName":          "lab name",
	"LabLocation":      "lab location",
}

// bindingMessage turns validator errors into a sentence fit for a flash.
func bindingMessage(err error) string {
	var verr validator.ValidationErrors
	if !errors.As(err, &verr) {
		return "Invalid input."
	}

	msgs := make([]string, 0, len(verr))
	for _, fe := range verr {
		lbl, ok := fieldLabels[fe.StructField()]
		if !ok {
			lbl = strings.ToLower(fe.StructField())
		}
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", lbl))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s characters", lbl, fe.Param()))
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", lbl, fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", lbl))
		}
	}
	return strings.Join(msgs, "; ")
}
