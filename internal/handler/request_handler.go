package handler

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/tutor-market/internal/models"
	"github.com/noah-isme/tutor-market/internal/service"
	appErrors "github.com/noah-isme/tutor-market/pkg/errors"
	"github.com/noah-isme/tutor-market/pkg/render"
	"github.com/noah-isme/tutor-market/pkg/response"
)

type requestIntake interface {
	Submit(ctx context.Context, form service.RequestForm) (string, error)
}

// RequestHandler serves the tutor matching request form.
type RequestHandler struct {
	requests      requestIntake
	confirmations confirmationResolver
	pages         pageRenderer
}

// NewRequestHandler constructs a RequestHandler.
func NewRequestHandler(requests requestIntake, confirmations confirmationResolver, pages pageRenderer) *RequestHandler {
	return &RequestHandler{requests: requests, confirmations: confirmations, pages: pages}
}

// RequestPage is the data of the request form.
type RequestPage struct {
	Form        service.RequestForm
	GoalChoices []models.Choice
	TimeChoices []models.Choice
}

// Form godoc
// @Summary Tutor matching request form
// @Tags Requests
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router /request/ [get]
func (h *RequestHandler) Form(c *gin.Context) {
	h.renderForm(c, service.DefaultRequestForm(), nil)
}

// Submit godoc
// @Summary Submit a tutor matching request
// @Tags Requests
// @Accept x-www-form-urlencoded
// @Produce html
// @Param goal formData string true "travel, study, work or relocate"
// @Param time formData string true "1-2, 3-5, 5-7 or 7-10"
// @Param client_name formData string true "Client name"
// @Param client_phone formData string true "Client phone"
// @Success 302 {string} string "Redirect to /request_done/"
// @Success 200 {string} string "Form with field errors"
// @Router /request/ [post]
func (h *RequestHandler) Submit(c *gin.Context) {
	var form service.RequestForm
	if err := c.ShouldBind(&form); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "malformed request form"))
		return
	}

	token, err := h.requests.Submit(c.Request.Context(), form)
	if err != nil {
		if errors.Is(err, appErrors.ErrValidation) {
			h.renderForm(c, form, appErrors.FromError(err).Fields)
			return
		}
		response.Error(c, err)
		return
	}
	response.Redirect(c, "/request_done/?token="+token)
}

// Done godoc
// @Summary Request confirmation
// @Tags Requests
// @Produce html
// @Param token query string true "Confirmation token"
// @Success 200 {string} string "HTML page"
// @Failure 404 {string} string "Unknown or expired token"
// @Router /request_done/ [get]
func (h *RequestHandler) Done(c *gin.Context) {
	var confirmation models.RequestConfirmation
	if err := h.confirmations.Resolve(c.Request.Context(), service.ConfirmationRequest, c.Query("token"), &confirmation); err != nil {
		response.Error(c, err)
		return
	}
	renderOK(c, h.pages, render.PageRequestDone, render.View{Title: "Заявка отправлена", Data: confirmation})
}

func (h *RequestHandler) renderForm(c *gin.Context, form service.RequestForm, fieldErrors map[string]string) {
	renderOK(c, h.pages, render.PageRequest, render.View{
		Title:  "Подбор преподавателя",
		Errors: fieldErrors,
		Data: RequestPage{
			Form:        form,
			GoalChoices: models.RequestGoalChoices,
			TimeChoices: models.RequestTimeChoices,
		},
	})
}
