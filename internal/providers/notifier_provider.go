package providers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	json "github.com/goccy/go-json"

	"bguard/internal/structures"
)

// Actions reported to the host webhook.
const (
	ActionRestore = "restore"
	ActionBackup  = "backup"
)

// NotifierProviderInterface carries the host-supplied "restore from backup"
// action. Both the loss modal and the reminder banner funnel into it.
type NotifierProviderInterface interface {
	Notify(action string) error
}

type WebhookNotifier struct {
	url     string
	client  *http.Client
	logger  Logger
	metrics MetricsProviderInterface
}

type notifyPayload struct {
	Action      string `json:"action"`
	RequestedAt int64  `json:"requested_at"`
}

func NewNotifierProvider(conf *structures.Config, logger Logger, metrics MetricsProviderInterface) NotifierProviderInterface {
	if conf.Host.WebhookURL == "" {
		logger.Infof(TypeApp, "Host webhook not configured, backup actions will be logged only")
		return &noopNotifier{logger: logger}
	}

	timeout := conf.Host.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &WebhookNotifier{
		url:     conf.Host.WebhookURL,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
		metrics: metrics,
	}
}

func (n *WebhookNotifier) Notify(action string) error {
	payload, err := json.Marshal(notifyPayload{
		Action:      action,
		RequestedAt: time.Now().UnixMilli(),
	})
	if err != nil {
		return err
	}

	resp, err := n.client.Post(n.url, "application/json", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("host webhook call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("host webhook returned status %d", resp.StatusCode)
	}

	n.metrics.IncNotifications(action)
	n.logger.Infof(TypeApp, "Notified host: %s", action)
	return nil
}

type noopNotifier struct {
	logger Logger
}

func (n *noopNotifier) Notify(action string) error {
	n.logger.Warnf(TypeApp, "Dropping %s action: no host webhook configured", action)
	return nil
}
