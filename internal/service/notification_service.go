package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/lead-dashboard/internal/config"
	"github.com/spec-kit/lead-dashboard/internal/events"
	"github.com/spec-kit/lead-dashboard/internal/observability"
)

// NotificationService handles emitting notifications for domain events.
type NotificationService struct {
	logger  *zap.Logger
	metrics *observability.Metrics
	cfg     config.NotificationConfig
}

// NotificationEvents lists the event types the service reacts to.
var NotificationEvents = []events.EventType{
	events.EventLeadUpdated,
	events.EventAssessmentSubmitted,
}

// NewNotificationService creates the service.
func NewNotificationService(logger *zap.Logger, metrics *observability.Metrics, cfg config.NotificationConfig) *NotificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationService{
		logger:  logger,
		metrics: metrics,
		cfg:     cfg,
	}
}

// Handle emits the notifications for a single event.
func (n *NotificationService) Handle(ctx context.Context, event events.Event) error {
	switch event.Type {
	case events.EventLeadUpdated:
		return n.handleLeadUpdated(ctx, event)
	case events.EventAssessmentSubmitted:
		return n.handleAssessmentSubmitted(ctx, event)
	}
	return nil
}

func (n *NotificationService) handleLeadUpdated(ctx context.Context, event events.Event) error {
	fields := []zap.Field{zap.String("lead_id", event.SubjectID)}
	if payload, ok := event.Payload.(events.LeadUpdatedPayload); ok {
		fields = append(fields, zap.Strings("changed", payload.ChangedFields()))
	}
	n.logger.Info("LeadUpdated", fields...)
	n.metrics.RecordLeadUpdate()
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleAssessmentSubmitted(ctx context.Context, event events.Event) error {
	n.logger.Info("AssessmentSubmitted", zap.String("assessment_id", event.SubjectID), zap.Any("payload", event.Payload))
	n.metrics.RecordAssessment()
	n.sendEmailNotificationStub(ctx, event)
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendEmailNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("subject_id", event.SubjectID),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhookNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("subject_id", event.SubjectID),
		zap.String("event_type", string(event.Type)))
}
