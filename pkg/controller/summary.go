package controller

import (
	"net/http"

	"github.com/sanchara/sanchara/internal/auth"
	"github.com/sanchara/sanchara/pkg/httputil"
)

func (c *Controller) OverviewSummary(w http.ResponseWriter, r *http.Request) {
	res, apperr := c.SummaryService.Overview(r.Context(), auth.UserID(r.Context()))
	if apperr != nil {
		httputil.NewError(w, r, apperr.Code, apperr.Error)
		return
	}
	httputil.JSON(w, http.StatusOK, res)
}

func (c *Controller) FinancialSummary(w http.ResponseWriter, r *http.Request) {
	res, apperr := c.SummaryService.Financial(r.Context(), auth.UserID(r.Context()), r.URL.Query().Get("next_years"))
	if apperr != nil {
		httputil.NewError(w, r, apperr.Code, apperr.Error)
		return
	}
	httputil.JSON(w, http.StatusOK, res)
}
