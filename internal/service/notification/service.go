package notification

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/sinarkarya/leave-backend-go/internal/domain/notification"
	"github.com/sinarkarya/leave-backend-go/internal/pkg/sse"
)

// Config holds notification dispatcher configuration.
type Config struct {
	BatchSize     int           // default: 100
	FlushInterval time.Duration // default: 5 seconds
	WorkerCount   int           // default: 2
	QueueSize     int           // default: 1000
}

type service struct {
	repo   notification.Repository
	hub    *sse.Hub
	config Config

	queue  chan notification.CreateNotificationRequest
	wg     sync.WaitGroup
	stopCh chan struct{}
}

// NewNotificationService creates a notification service with background
// workers that batch inserts and push events to live streams.
func NewNotificationService(repo notification.Repository, hub *sse.Hub, cfg Config) notification.Service {
	if cfg.BatchSize == 0 {
		cfg.BatchSize = 100
	}
	if cfg.FlushInterval == 0 {
		cfg.FlushInterval = 5 * time.Second
	}
	if cfg.WorkerCount == 0 {
		cfg.WorkerCount = 2
	}
	if cfg.QueueSize == 0 {
		cfg.QueueSize = 1000
	}

	s := &service{
		repo:   repo,
		hub:    hub,
		config: cfg,
		queue:  make(chan notification.CreateNotificationRequest, cfg.QueueSize),
		stopCh: make(chan struct{}),
	}

	for i := 0; i < cfg.WorkerCount; i++ {
		s.wg.Add(1)
		go s.worker(i)
	}

	slog.Info("notification dispatcher started",
		"workers", cfg.WorkerCount, "batch_size", cfg.BatchSize, "flush_interval", cfg.FlushInterval)

	return s
}

func (s *service) worker(id int) {
	defer s.wg.Done()

	batch := make([]notification.CreateNotificationRequest, 0, s.config.BatchSize)
	ticker := time.NewTicker(s.config.FlushInterval)
	defer ticker.Stop()

	flush := func() {
		if len(batch) == 0 {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		notifications := make([]notification.Notification, len(batch))
		for i, req := range batch {
			notifications[i] = notification.Notification{
				RecipientID: req.RecipientID,
				Type:        req.Type,
				Title:       req.Title,
				Message:     req.Message,
				CreatedAt:   time.Now(),
			}
		}

		if err := s.repo.CreateBatch(ctx, notifications); err != nil {
			slog.Error("failed to batch insert notifications", "worker", id, "count", len(notifications), "error", err)
		} else {
			for _, n := range notifications {
				s.hub.Publish(n.RecipientID, sse.Event{
					RecipientID: n.RecipientID,
					Name:        "notification",
					Data:        n,
				})
			}
		}

		batch = batch[:0]
	}

	for {
		select {
		case req := <-s.queue:
			batch = append(batch, req)
			if len(batch) >= s.config.BatchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		case <-s.stopCh:
			flush()
			return
		}
	}
}

// Notify implements notification.Service. Best effort: when the queue is
// full the notification is dropped with a log line, never blocking the
// caller's workflow.
func (s *service) Notify(ctx context.Context, req notification.CreateNotificationRequest) {
	select {
	case s.queue <- req:
	default:
		slog.Warn("notification queue full, dropping",
			"recipient_id", req.RecipientID, "type", req.Type)
	}
}

// List implements notification.Service.
func (s *service) List(ctx context.Context, recipientID string, unreadOnly bool) (notification.ListResponse, error) {
	notifications, err := s.repo.ListByRecipient(ctx, recipientID, unreadOnly, 50)
	if err != nil {
		return notification.ListResponse{}, err
	}
	unread, err := s.repo.UnreadCount(ctx, recipientID)
	if err != nil {
		return notification.ListResponse{}, err
	}
	if notifications == nil {
		notifications = []notification.Notification{}
	}
	return notification.ListResponse{
		Notifications: notifications,
		UnreadCount:   unread,
	}, nil
}

// UnreadCount implements notification.Service.
func (s *service) UnreadCount(ctx context.Context, recipientID string) (int, error) {
	return s.repo.UnreadCount(ctx, recipientID)
}

// MarkRead implements notification.Service.
func (s *service) MarkRead(ctx context.Context, recipientID string, req notification.MarkReadRequest) error {
	return s.repo.MarkRead(ctx, recipientID, req.IDs)
}

// MarkAllRead implements notification.Service.
func (s *service) MarkAllRead(ctx context.Context, recipientID string) error {
	return s.repo.MarkAllRead(ctx, recipientID)
}

// Shutdown implements notification.Service.
func (s *service) Shutdown() {
	close(s.stopCh)
	s.wg.Wait()
	slog.Info("notification dispatcher stopped")
}
