package observability

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/helioworks/fieldops/internal/core"
)

// consoleNotifier writes toast notifications to the given writer, typically
// stderr. Notifications are fire-and-forget; write failures are swallowed.
type consoleNotifier struct {
	out io.Writer
}

// NewConsoleNotifier creates a ToastSink that prints notifications to out.
func NewConsoleNotifier(out io.Writer) core.ToastSink {
	return &consoleNotifier{out: out}
}

// Notify prints the message with a level marker. The duration is meaningful
// only for graphical shells and is ignored here.
func (n *consoleNotifier) Notify(message string, level core.ToastLevel, duration time.Duration) {
	marker := "·"
	switch level {
	case core.ToastSuccess:
		marker = "✓"
	case core.ToastError:
		marker = "✗"
	}
	_, _ = fmt.Fprintf(n.out, "%s %s\n", marker, message)
}

// webhookNotifier forwards error-level toasts to an ops webhook so field
// failures are visible off-device.
type webhookNotifier struct {
	next       core.ToastSink
	webhookURL string
	client     *http.Client
}

// NewWebhookNotifier wraps next with a notifier that also posts error-level
// notifications to the given webhook URL.
func NewWebhookNotifier(next core.ToastSink, webhookURL string) core.ToastSink {
	return &webhookNotifier{
		next:       next,
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

type webhookMessage struct {
	Text string `json:"text"`
}

// Notify delivers the toast locally and, for errors, posts it to the
// webhook. Webhook failures are swallowed: notification is fire-and-forget.
func (n *webhookNotifier) Notify(message string, level core.ToastLevel, duration time.Duration) {
	if n.next != nil {
		n.next.Notify(message, level, duration)
	}
	if level != core.ToastError {
		return
	}

	body, err := json.Marshal(webhookMessage{
		Text: fmt.Sprintf("[%s] fieldops: %s", strings.ToUpper(string(level)), message),
	})
	if err != nil {
		return
	}
	resp, err := n.client.Post(n.webhookURL, "application/json", bytes.NewReader(body))
	if err != nil {
		return
	}
	_ = resp.Body.Close()
}
