package services

import (
	"chat-gate/contract"
	"chat-gate/domain"
	"chat-gate/repositories"
	"context"
	"log/slog"
	"time"
)

var _ contract.Notifier = (*NotifierService)(nil)

// NotifierService delivers notifications and never lets a delivery problem escape.
// Failures end up in the logs, the returned SendReport and the history.
type NotifierService struct {
	client    contract.MessagingClient
	formatter Formatter
	history   repositories.INotificationRepository
	log       *slog.Logger
}

// NewNotifierService builds a notifier. history may be nil.
func NewNotifierService(client contract.MessagingClient, formatter Formatter,
	history repositories.INotificationRepository, log *slog.Logger) *NotifierService {
	return &NotifierService{client: client, formatter: formatter, history: history, log: log}
}

func (s *NotifierService) Send(ctx context.Context, n domain.Notification) domain.SendReport {
	report := domain.SendReport{Phase: n.Phase}

	if err := validate.Struct(n); err != nil {
		s.log.Error("Notification rejected", "phase", n.Phase, "error", err)
		report.Err = err
		return report
	}
	messages, err := s.formatter.Messages(n)
	if err != nil {
		s.log.Error("Notification not sent", "phase", n.Phase, "error", err)
		report.Err = err
		return report
	}

	for _, msg := range messages {
		ack, err := s.client.PostMessage(ctx, msg)
		delivery := domain.Delivery{
			OutgoingMessage: msg,
			Status:          ack.Status,
			Err:             err,
			At:              time.Now().UTC(),
		}
		if err != nil {
			s.log.Warn("Sending failed", "room", msg.Room, "phase", n.Phase, "error", err)
		}
		report.Deliveries = append(report.Deliveries, delivery)
		s.record(n, delivery)
	}
	return report
}

func (s *NotifierService) record(n domain.Notification, delivery domain.Delivery) {
	if s.history == nil {
		return
	}
	if err := s.history.StoreNotification(repositories.ToNotificationRecord(n.Phase, n.ActionName, delivery)); err != nil {
		s.log.Warn("Failed to record notification", "room", delivery.Room, "error", err)
	}
}
