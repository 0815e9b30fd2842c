package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/tutor-market/internal/models"
	"github.com/noah-isme/tutor-market/internal/repository"
	appErrors "github.com/noah-isme/tutor-market/pkg/errors"
)

type bookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
}

type teacherLookup interface {
	Get(ctx context.Context, id int64) (*models.Teacher, error)
}

type confirmationIssuer interface {
	Issue(ctx context.Context, kind ConfirmationKind, payload interface{}) (string, error)
}

// BookingForm is the booking submission. Weekday, Time and Teacher are hidden
// fields echoing the slot the page was opened for.
type BookingForm struct {
	Weekday     string `form:"weekday"`
	Time        string `form:"time"`
	Teacher     string `form:"teacher"`
	ClientName  string `form:"client_name" validate:"required"`
	ClientPhone string `form:"client_phone" validate:"required"`
}

var bookingFieldRules = map[string]fieldRule{
	"ClientName":  {key: "client_name", message: "Укажите ваше имя"},
	"ClientPhone": {key: "client_phone", message: "Укажите ваш телефон"},
}

// BookingSlot is a (teacher, day, hour) triple that passed the availability check.
type BookingSlot struct {
	Teacher *models.Teacher
	Day     models.Day
	Hour    string
}

// Form returns an empty form pre-filled with the slot's hidden fields.
func (s *BookingSlot) Form() BookingForm {
	return BookingForm{
		Weekday: s.Day.Code,
		Time:    s.Hour,
		Teacher: strconv.FormatInt(s.Teacher.ID, 10),
	}
}

// BookingService validates and stores bookings.
type BookingService struct {
	teachers      teacherLookup
	repo          bookingRepository
	catalog       *Catalog
	confirmations confirmationIssuer
	validator     *validator.Validate
	metrics       *MetricsService
	logger        *zap.Logger
}

// NewBookingService constructs a BookingService.
func NewBookingService(teachers teacherLookup, repo bookingRepository, catalog *Catalog, confirmations confirmationIssuer, validate *validator.Validate, metrics *MetricsService, logger *zap.Logger) *BookingService {
	if catalog == nil {
		catalog = NewCatalog(nil, nil)
	}
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BookingService{
		teachers:      teachers,
		repo:          repo,
		catalog:       catalog,
		confirmations: confirmations,
		validator:     validate,
		metrics:       metrics,
		logger:        logger,
	}
}

// Slot checks that the teacher exists and currently offers the (day, hour)
// slot. Any failure is not found: such links are stale or tampered with.
func (s *BookingService) Slot(ctx context.Context, teacherID int64, dayToken, hour string) (*BookingSlot, error) {
	teacher, err := s.teachers.Get(ctx, teacherID)
	if err != nil {
		return nil, err
	}
	if !IsSlotOpen(ResolveSchedule(teacher.Free), dayToken, hour) {
		s.metrics.RecordSubmission(ConfirmationBooking, OutcomeRejected)
		return nil, appErrors.Clone(appErrors.ErrNotFound, "slot not available")
	}
	day, ok := s.catalog.DayByToken(dayToken)
	if !ok {
		// the blob may carry day codes missing from the reference table
		day = models.Day{Code: DayCode(dayToken), Label: DayCode(dayToken), Name: dayToken}
	}
	return &BookingSlot{Teacher: teacher, Day: day, Hour: hour}, nil
}

// Book validates the form against the guarded slot, stores the booking and
// returns the confirmation token.
func (s *BookingService) Book(ctx context.Context, slot *BookingSlot, form BookingForm) (string, error) {
	form.ClientName = strings.TrimSpace(form.ClientName)
	form.ClientPhone = strings.TrimSpace(form.ClientPhone)

	expected := slot.Form()
	if form.Weekday != expected.Weekday || form.Time != expected.Time || form.Teacher != expected.Teacher {
		s.metrics.RecordSubmission(ConfirmationBooking, OutcomeRejected)
		s.logger.Warn("booking form does not match slot",
			zap.Int64("teacher_id", slot.Teacher.ID),
			zap.String("weekday", form.Weekday),
			zap.String("time", form.Time))
		return "", appErrors.Clone(appErrors.ErrNotFound, "slot not available")
	}
	if err := s.validator.Struct(form); err != nil {
		s.metrics.RecordSubmission(ConfirmationBooking, OutcomeInvalid)
		return "", toValidationError(err, bookingFieldRules)
	}

	booking := &models.Booking{
		ClientName:  form.ClientName,
		ClientPhone: form.ClientPhone,
		Day:         slot.Day.Code,
		Time:        slot.Hour,
		TeacherID:   slot.Teacher.ID,
	}
	if err := s.repo.Create(ctx, booking); err != nil {
		if errors.Is(err, repository.ErrSlotTaken) {
			s.metrics.RecordSubmission(ConfirmationBooking, OutcomeConflict)
			return "", appErrors.Clone(appErrors.ErrConflict, "slot already booked")
		}
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create booking")
	}
	s.metrics.RecordSubmission(ConfirmationBooking, OutcomeCreated)
	s.logger.Info("booking created",
		zap.Int64("booking_id", booking.ID),
		zap.Int64("teacher_id", booking.TeacherID),
		zap.String("day", booking.Day),
		zap.String("time", booking.Time))

	token, err := s.confirmations.Issue(ctx, ConfirmationBooking, models.BookingConfirmation{
		TeacherID:   slot.Teacher.ID,
		TeacherName: slot.Teacher.Name,
		Day:         slot.Day.Code,
		DayLabel:    slot.Day.Label,
		Time:        slot.Hour,
		ClientName:  booking.ClientName,
		ClientPhone: booking.ClientPhone,
	})
	if err != nil {
		s.logger.Error("booking stored but confirmation failed",
			zap.Int64("booking_id", booking.ID),
			zap.Error(err))
		return "", err
	}
	return token, nil
}
