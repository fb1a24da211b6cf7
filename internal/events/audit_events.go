package events

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/white/fluxx-sales/pkg/amqp"
	"github.com/white/fluxx-sales/pkg/kafka"
	"go.uber.org/zap"
)

// AuditAction represents the type of action being audited
type AuditAction string

const (
	ActionUserRegistered AuditAction = "USER_REGISTERED"
	ActionLogin          AuditAction = "LOGIN"
	ActionLoginFailed    AuditAction = "LOGIN_FAILED"
	ActionActivityLogged AuditAction = "ACTIVITY_LOGGED"
)

// AuditResource represents the type of resource being audited
type AuditResource string

const (
	ResourceAuth     AuditResource = "AUTH"
	ResourceUser     AuditResource = "USER"
	ResourceActivity AuditResource = "ACTIVITY"
)

// AuditEvent is one audit record handed to the configured sink.
type AuditEvent struct {
	EventID     string                 `json:"event_id"`
	Timestamp   int64                  `json:"timestamp"`
	UserID      string                 `json:"user_id,omitempty"`
	UserEmail   string                 `json:"user_email,omitempty"`
	ReferenceID string                 `json:"reference_id,omitempty"`
	Action      AuditAction            `json:"action"`
	Resource    AuditResource          `json:"resource"`
	ResourceID  string                 `json:"resource_id,omitempty"`
	Details     string                 `json:"details"`
	IPAddress   string                 `json:"ip_address,omitempty"`
	UserAgent   string                 `json:"user_agent,omitempty"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
	Success     bool                   `json:"success"`
}

// Sink delivers a single event to a broker.
type Sink interface {
	Publish(ctx context.Context, event *AuditEvent) error
}

// KafkaSink writes events to a topic keyed by reference id.
type KafkaSink struct {
	Producer *kafka.Producer
	Topic    string
}

func (s KafkaSink) Publish(ctx context.Context, event *AuditEvent) error {
	return s.Producer.PublishJSON(s.Topic, event.ReferenceID, event)
}

// AMQPSink writes events to a durable RabbitMQ queue.
type AMQPSink struct {
	Publisher *amqp.Publisher
}

func (s AMQPSink) Publish(ctx context.Context, event *AuditEvent) error {
	return s.Publisher.PublishJSON(ctx, event)
}

// AuditPublisher logs every event and forwards it to the sink in the
// background. A failed delivery never reaches the request that caused it.
type AuditPublisher struct {
	sink    Sink
	logger  *zap.Logger
	timeout time.Duration
	wg      sync.WaitGroup
}

// NewAuditPublisher creates a publisher. A nil sink means events are logged only.
func NewAuditPublisher(sink Sink, logger *zap.Logger) *AuditPublisher {
	if sink != nil {
		logger.Info("Audit event publisher initialized (broker enabled)")
	} else {
		logger.Info("Audit event publisher initialized (broker disabled - events will be logged only)")
	}
	return &AuditPublisher{sink: sink, logger: logger, timeout: 10 * time.Second}
}

// Publish stamps the event and sends it (fire-and-forget).
func (p *AuditPublisher) Publish(event *AuditEvent) {
	if p == nil {
		return
	}
	if event.EventID == "" {
		event.EventID = uuid.New().String()
	}
	if event.Timestamp == 0 {
		event.Timestamp = time.Now().Unix()
	}

	p.logger.Info("AUDIT",
		zap.String("event_id", event.EventID),
		zap.String("action", string(event.Action)),
		zap.String("resource", string(event.Resource)),
		zap.String("resource_id", event.ResourceID),
		zap.Bool("success", event.Success))

	if p.sink == nil {
		return
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
		defer cancel()
		if err := p.sink.Publish(ctx, event); err != nil {
			p.logger.Error("Failed to publish audit event", zap.String("event_id", event.EventID), zap.Error(err))
		}
	}()
}

// PublishFromRequest fills client details from r and publishes.
func (p *AuditPublisher) PublishFromRequest(r *http.Request, event *AuditEvent) {
	event.IPAddress = getClientIP(r)
	event.UserAgent = r.UserAgent()
	p.Publish(event)
}

// Close waits for in-flight deliveries.
func (p *AuditPublisher) Close() {
	if p == nil {
		return
	}
	p.wg.Wait()
}

// Helper to get client IP address
func getClientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		return strings.TrimSpace(first)
	}
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	return r.RemoteAddr
}
