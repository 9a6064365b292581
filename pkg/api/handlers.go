package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"

	"wallpro-landing/pkg/content"
	"wallpro-landing/pkg/models"
	"wallpro-landing/pkg/services"
	"wallpro-landing/pkg/views"
)

// Handlers contains all HTTP handlers for the landing page
type Handlers struct {
	site              *content.Site
	submissionService services.QuoteSubmissionService
	logger            *zap.Logger
}

// NewHandlers creates a new Handlers instance
func NewHandlers(site *content.Site, submissionService services.QuoteSubmissionService, logger *zap.Logger) *Handlers {
	return &Handlers{
		site:              site,
		submissionService: submissionService,
		logger:            logger,
	}
}

// HealthCheck handler for monitoring
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// LandingPage renders the page with an empty quote form.
func (h *Handlers) LandingPage(c *gin.Context) {
	h.render(c, http.StatusOK, models.FormState{}, nil)
}

// RedirectToForm sends a stray GET /quote back to the form on the landing page.
func (h *Handlers) RedirectToForm(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, "/#"+views.FormAnchor)
}

// HandleQuoteForm applies one form interaction (customer type selection,
// submit, or dismissing the success panel) and renders the resulting form.
func (h *Handlers) HandleQuoteForm(c *gin.Context) {
	var state models.FormState
	if err := c.ShouldBindWith(&state, binding.Form); err != nil {
		h.logger.Warn("Error binding quote form", zap.Error(err))
		h.render(c, http.StatusBadRequest, models.FormState{}, nil)
		return
	}

	switch models.ParseAction(c.PostForm("action")) {
	case models.ActionSelectResidential:
		state.SelectCustomerType(models.CustomerResidential)
	case models.ActionSelectCommercial:
		state.SelectCustomerType(models.CustomerCommercial)
	case models.ActionDone:
		state.Dismiss()
	case models.ActionSubmit:
		h.submit(c, state)
		return
	}
	h.render(c, http.StatusOK, state, nil)
}

func (h *Handlers) submit(c *gin.Context, state models.FormState) {
	_, err := h.submissionService.ProcessQuoteRequest(c.Request.Context(), state.QuoteRequest)

	var invalid *services.InvalidQuoteError
	switch {
	case errors.As(err, &invalid):
		state.Dismiss()
		h.render(c, http.StatusUnprocessableEntity, state, invalid.Fields)
		return
	case err != nil:
		_ = c.Error(err)
		h.logger.Error("Error processing quote request", zap.Error(err))
		state.Dismiss()
		h.render(c, http.StatusInternalServerError, state, nil)
		return
	}

	state.MarkSubmitted()
	h.render(c, http.StatusOK, state, nil)
}

func (h *Handlers) render(c *gin.Context, status int, state models.FormState, errs models.FieldErrors) {
	data := views.PageData{Site: h.site, Form: state, Errors: errs}

	c.Header("Vary", htmxRequestHeader)
	if isHTMXRequest(c.Request) {
		// htmx only swaps 2xx responses; the fragment carries its own field errors.
		if status == http.StatusUnprocessableEntity {
			status = http.StatusOK
		}
		c.Render(status, views.Renderer{Node: views.QuoteForm(data)})
		return
	}
	c.Render(status, views.Renderer{Node: views.Page(data)})
}
