package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sanchara/sanchara/internal/auth"
	"github.com/sanchara/sanchara/pkg/httputil"
	"github.com/sanchara/sanchara/pkg/schemas"
)

var errMalformedBody = errors.New("malformed request body")

func (c *Controller) ListEvents(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	q := &schemas.EventQuery{
		Status:   query.Get("status"),
		Category: query.Get("category"),
		Year:     query.Get("year"),
		Page:     query.Get("page"),
		PageSize: query.Get("page_size"),
		Sort:     query.Get("sort"),
		Order:    query.Get("order"),
	}

	res, apperr := c.EventService.ListEvents(r.Context(), auth.UserID(r.Context()), q)
	if apperr != nil {
		httputil.NewError(w, r, apperr.Code, apperr.Error)
		return
	}
	httputil.JSON(w, http.StatusOK, res)
}

func (c *Controller) CreateEvent(w http.ResponseWriter, r *http.Request) {
	payload := new(schemas.EventIn)
	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		httputil.NewError(w, r, http.StatusBadRequest, errMalformedBody)
		return
	}

	res, apperr := c.EventService.CreateEvent(r.Context(), auth.UserID(r.Context()), payload)
	if apperr != nil {
		httputil.NewError(w, r, apperr.Code, apperr.Error)
		return
	}
	httputil.JSON(w, http.StatusCreated, res)
}

func (c *Controller) GetEventByID(w http.ResponseWriter, r *http.Request) {
	res, apperr := c.EventService.GetEvent(r.Context(), auth.UserID(r.Context()), chi.URLParam(r, "eventID"))
	if apperr != nil {
		httputil.NewError(w, r, apperr.Code, apperr.Error)
		return
	}
	httputil.JSON(w, http.StatusOK, res)
}

func (c *Controller) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	patch := new(schemas.EventUpdate)
	if err := json.NewDecoder(r.Body).Decode(patch); err != nil {
		httputil.NewError(w, r, http.StatusBadRequest, errMalformedBody)
		return
	}

	res, apperr := c.EventService.UpdateEvent(r.Context(), auth.UserID(r.Context()), chi.URLParam(r, "eventID"), patch)
	if apperr != nil {
		httputil.NewError(w, r, apperr.Code, apperr.Error)
		return
	}
	httputil.JSON(w, http.StatusOK, res)
}

func (c *Controller) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	if apperr := c.EventService.DeleteEvent(r.Context(), auth.UserID(r.Context()), chi.URLParam(r, "eventID")); apperr != nil {
		httputil.NewError(w, r, apperr.Code, apperr.Error)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
