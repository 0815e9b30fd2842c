package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/tutor-market/internal/models"
	appErrors "github.com/noah-isme/tutor-market/pkg/errors"
)

type requestRepository interface {
	Create(ctx context.Context, request *models.Request) error
}

// RequestForm is the free-form tutoring request submission.
type RequestForm struct {
	Goal        string `form:"goal" validate:"required,oneof=travel study work relocate"`
	Time        string `form:"time" validate:"required,oneof=1-2 3-5 5-7 7-10"`
	ClientName  string `form:"client_name" validate:"required"`
	ClientPhone string `form:"client_phone" validate:"required"`
}

// DefaultRequestForm is the form shown before the first submission.
func DefaultRequestForm() RequestForm {
	return RequestForm{Goal: models.DefaultRequestGoal, Time: models.DefaultRequestTime}
}

var requestFieldRules = map[string]fieldRule{
	"Goal":        {key: "goal", message: "Выберите цель занятий"},
	"Time":        {key: "time", message: "Выберите, сколько времени есть"},
	"ClientName":  {key: "client_name", message: "Укажите ваше имя"},
	"ClientPhone": {key: "client_phone", message: "Укажите ваш телефон"},
}

// RequestService validates and stores tutoring requests.
type RequestService struct {
	repo          requestRepository
	confirmations confirmationIssuer
	validator     *validator.Validate
	metrics       *MetricsService
	logger        *zap.Logger
}

// NewRequestService constructs a RequestService.
func NewRequestService(repo requestRepository, confirmations confirmationIssuer, validate *validator.Validate, metrics *MetricsService, logger *zap.Logger) *RequestService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RequestService{repo: repo, confirmations: confirmations, validator: validate, metrics: metrics, logger: logger}
}

// Submit validates the form, stores the request and returns the confirmation token.
func (s *RequestService) Submit(ctx context.Context, form RequestForm) (string, error) {
	form.ClientName = strings.TrimSpace(form.ClientName)
	form.ClientPhone = strings.TrimSpace(form.ClientPhone)

	if err := s.validator.Struct(form); err != nil {
		s.metrics.RecordSubmission(ConfirmationRequest, OutcomeInvalid)
		return "", toValidationError(err, requestFieldRules)
	}

	request := &models.Request{
		Goal:        form.Goal,
		Time:        form.Time,
		ClientName:  form.ClientName,
		ClientPhone: form.ClientPhone,
	}
	if err := s.repo.Create(ctx, request); err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create request")
	}
	s.metrics.RecordSubmission(ConfirmationRequest, OutcomeCreated)
	s.logger.Info("request created", zap.Int64("request_id", request.ID), zap.String("goal", request.Goal))

	goalLabel, _ := models.ChoiceLabel(models.RequestGoalChoices, form.Goal)
	timeLabel, _ := models.ChoiceLabel(models.RequestTimeChoices, form.Time)
	token, err := s.confirmations.Issue(ctx, ConfirmationRequest, models.RequestConfirmation{
		Goal:        form.Goal,
		GoalLabel:   goalLabel,
		Time:        form.Time,
		TimeLabel:   timeLabel,
		ClientName:  request.ClientName,
		ClientPhone: request.ClientPhone,
	})
	if err != nil {
		s.logger.Error("request stored but confirmation failed",
			zap.Int64("request_id", request.ID),
			zap.Error(err))
		return "", err
	}
	return token, nil
}
