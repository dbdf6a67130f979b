package controller

import (
	"net/http"

	"github.com/sanchara/sanchara/internal/config"
	"github.com/sanchara/sanchara/pkg/httputil"
	"github.com/sanchara/sanchara/pkg/services"
)

type Controller struct {
	EventService   *services.EventService
	SummaryService *services.SummaryService
}

func NewController(events *services.EventService, summary *services.SummaryService) *Controller {
	return &Controller{
		EventService:   events,
		SummaryService: summary,
	}
}

func (c *Controller) Version(w http.ResponseWriter, r *http.Request) {
	httputil.JSON(w, http.StatusOK, map[string]string{
		"app":     "sanchara",
		"version": config.Version,
		"status":  "running",
	})
}
