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

type bookingIntake interface {
	Slot(ctx context.Context, teacherID int64, dayToken, hour string) (*service.BookingSlot, error)
	Book(ctx context.Context, slot *service.BookingSlot, form service.BookingForm) (string, error)
}

type confirmationResolver interface {
	Resolve(ctx context.Context, kind service.ConfirmationKind, token string, dest interface{}) error
}

// BookingHandler serves the trial lesson booking form and its confirmation.
type BookingHandler struct {
	bookings      bookingIntake
	confirmations confirmationResolver
	pages         pageRenderer
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(bookings bookingIntake, confirmations confirmationResolver, pages pageRenderer) *BookingHandler {
	return &BookingHandler{bookings: bookings, confirmations: confirmations, pages: pages}
}

// BookingPage is the data of the booking form.
type BookingPage struct {
	Slot *service.BookingSlot
	Form service.BookingForm
}

// Form godoc
// @Summary Booking form for an open slot
// @Tags Booking
// @Produce html
// @Param id path int true "Teacher ID"
// @Param day path string true "Day token, e.g. mon or monday"
// @Param time path string true "Hour, e.g. 14"
// @Success 200 {string} string "HTML page"
// @Failure 404 {string} string "Slot not open"
// @Router /booking/{id}/{day}/{time}/ [get]
func (h *BookingHandler) Form(c *gin.Context) {
	slot, ok := h.slot(c)
	if !ok {
		return
	}
	h.renderForm(c, slot, slot.Form(), nil)
}

// Submit godoc
// @Summary Book an open slot
// @Tags Booking
// @Accept x-www-form-urlencoded
// @Produce html
// @Param id path int true "Teacher ID"
// @Param day path string true "Day token"
// @Param time path string true "Hour"
// @Param client_name formData string true "Client name"
// @Param client_phone formData string true "Client phone"
// @Success 302 {string} string "Redirect to /booking_done/"
// @Success 200 {string} string "Form with field errors"
// @Failure 404 {string} string "Slot not open"
// @Failure 409 {string} string "Slot already booked"
// @Router /booking/{id}/{day}/{time}/ [post]
func (h *BookingHandler) Submit(c *gin.Context) {
	slot, ok := h.slot(c)
	if !ok {
		return
	}
	var form service.BookingForm
	if err := c.ShouldBind(&form); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "malformed booking form"))
		return
	}

	token, err := h.bookings.Book(c.Request.Context(), slot, form)
	if err != nil {
		if errors.Is(err, appErrors.ErrValidation) {
			h.renderForm(c, slot, form, appErrors.FromError(err).Fields)
			return
		}
		response.Error(c, err)
		return
	}
	response.Redirect(c, "/booking_done/?token="+token)
}

// Done godoc
// @Summary Booking confirmation
// @Tags Booking
// @Produce html
// @Param token query string true "Confirmation token"
// @Success 200 {string} string "HTML page"
// @Failure 404 {string} string "Unknown or expired token"
// @Router /booking_done/ [get]
func (h *BookingHandler) Done(c *gin.Context) {
	var confirmation models.BookingConfirmation
	if err := h.confirmations.Resolve(c.Request.Context(), service.ConfirmationBooking, c.Query("token"), &confirmation); err != nil {
		response.Error(c, err)
		return
	}
	renderOK(c, h.pages, render.PageBookingDone, render.View{Title: "Урок забронирован", Data: confirmation})
}

func (h *BookingHandler) slot(c *gin.Context) (*service.BookingSlot, bool) {
	id, err := teacherIDParam(c)
	if err != nil {
		response.Error(c, err)
		return nil, false
	}
	slot, err := h.bookings.Slot(c.Request.Context(), id, c.Param("day"), c.Param("time"))
	if err != nil {
		response.Error(c, err)
		return nil, false
	}
	return slot, true
}

func (h *BookingHandler) renderForm(c *gin.Context, slot *service.BookingSlot, form service.BookingForm, fieldErrors map[string]string) {
	renderOK(c, h.pages, render.PageBooking, render.View{
		Title:  "Запись на пробный урок",
		Errors: fieldErrors,
		Data:   BookingPage{Slot: slot, Form: form},
	})
}
