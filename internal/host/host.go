// internal/host/host.go
package host

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// The chat-client host owns toasts, haptic feedback and dialogs; the
// application only ever calls into it. Notifier is that outbound edge.

type Haptic string

const (
	HapticLight   Haptic = "light"
	HapticMedium  Haptic = "medium"
	HapticHeavy   Haptic = "heavy"
	HapticSuccess Haptic = "success"
	HapticWarning Haptic = "warning"
	HapticError   Haptic = "error"
)

type Notifier interface {
	Toast(message string)
	Haptic(kind Haptic)
}

// Signal is one queued host call, serialized into response metadata so
// the webview can replay it against the real host SDK.
type Signal struct {
	Type    string `json:"type"` // "toast" or "haptic"
	Message string `json:"message,omitempty"`
	Haptic  Haptic `json:"haptic,omitempty"`
}

// Buffer queues signals raised while handling a request. All access is
// same-session; the mutex only covers overlapping requests from one
// client.
type Buffer struct {
	mu      sync.Mutex
	signals []Signal
}

func NewBuffer() *Buffer {
	return &Buffer{}
}

func (b *Buffer) Toast(message string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.signals = append(b.signals, Signal{Type: "toast", Message: message})
}

func (b *Buffer) Haptic(kind Haptic) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.signals = append(b.signals, Signal{Type: "haptic", Haptic: kind})
}

// Drain returns the queued signals and empties the buffer.
func (b *Buffer) Drain() []Signal {
	b.mu.Lock()
	defer b.mu.Unlock()
	signals := b.signals
	b.signals = nil
	return signals
}

// LogNotifier serves headless use; it writes signals to the log.
type LogNotifier struct{}

func (LogNotifier) Toast(message string) {
	logrus.WithField("toast", message).Info("host signal")
}

func (LogNotifier) Haptic(kind Haptic) {
	logrus.WithField("haptic", kind).Debug("host signal")
}
