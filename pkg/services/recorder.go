package services

import (
	"context"

	"go.uber.org/zap"

	"wallpro-landing/pkg/models"
	"wallpro-landing/pkg/utils"
)

// LeadRecorder receives accepted leads.
type LeadRecorder interface {
	Record(ctx context.Context, lead *models.Lead) error
}

type logRecorder struct {
	logger *zap.Logger
}

// NewLogRecorder returns a recorder that logs a summary of each lead and
// then drops it. Contact details are logged as a phone hash only.
func NewLogRecorder(logger *zap.Logger) LeadRecorder {
	return &logRecorder{logger: logger}
}

func (r *logRecorder) Record(_ context.Context, lead *models.Lead) error {
	fields := []zap.Field{
		zap.String("lead_id", lead.ID),
		zap.Time("received_at", lead.ReceivedAt),
		zap.String("customer_type", string(lead.Quote.CustomerType)),
		zap.String("phone_hash", utils.HashPhone(lead.Quote.Phone)),
		zap.Bool("has_details", lead.Quote.ProjectDetails != ""),
	}
	if lead.Quote.IsCommercial() {
		fields = append(fields,
			zap.String("facility_type", lead.Quote.FacilityType),
			zap.String("project_size", lead.Quote.ProjectSize),
			zap.String("urgency", lead.Quote.Urgency))
	}
	r.logger.Info("Quote request received", fields...)
	return nil
}
