package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"wallpro-landing/pkg/models"
)

var ErrInvalidQuoteRequest = errors.New("invalid quote request")

// InvalidQuoteError carries the per-field messages of a rejected quote request.
type InvalidQuoteError struct {
	Fields models.FieldErrors
}

func (e *InvalidQuoteError) Error() string {
	return fmt.Sprintf("%s: %d field(s) failed", ErrInvalidQuoteRequest, len(e.Fields))
}

func (e *InvalidQuoteError) Is(target error) bool {
	return target == ErrInvalidQuoteRequest
}

// QuoteSubmissionService defines the interface for handling quote form submissions
type QuoteSubmissionService interface {
	ProcessQuoteRequest(ctx context.Context, quote models.QuoteRequest) (*models.Lead, error)
}

type quoteSubmissionServiceImpl struct {
	validator *QuoteValidator
	recorder  LeadRecorder
	logger    *zap.Logger
	now       func() time.Time
}

// NewQuoteSubmissionService creates a new submission service
func NewQuoteSubmissionService(
	validator *QuoteValidator,
	recorder LeadRecorder,
	logger *zap.Logger,
) QuoteSubmissionService {
	return &quoteSubmissionServiceImpl{
		validator: validator,
		recorder:  recorder,
		logger:    logger,
		now:       time.Now,
	}
}

// ProcessQuoteRequest checks the request and, when it passes, merges it into a
// lead and hands it to the recorder.
func (s *quoteSubmissionServiceImpl) ProcessQuoteRequest(ctx context.Context, quote models.QuoteRequest) (*models.Lead, error) {
	fields, err := s.validator.Validate(quote)
	if err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		s.logger.Debug("Quote request rejected",
			zap.String("customer_type", string(quote.CustomerType)),
			zap.Int("failed_fields", len(fields)))
		return nil, &InvalidQuoteError{Fields: fields}
	}

	lead := &models.Lead{
		ID:         uuid.NewString(),
		ReceivedAt: s.now().UTC(),
		Quote:      quote,
	}
	if err := s.recorder.Record(ctx, lead); err != nil {
		return nil, fmt.Errorf("error recording lead %s: %w", lead.ID, err)
	}
	return lead, nil
}
