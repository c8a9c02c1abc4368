package notify

import (
	"context"
	"sync"

	"github.com/hexaaagon/tugascollecter/internal/logger"
)

// LogNotifier is a Notifier for headless runs: it records what would have
// been scheduled and logs it, never touching a real native subsystem.
type LogNotifier struct {
	logger *logger.Logger

	mu      sync.Mutex
	pending map[string]Notification
}

func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{
		logger:  log,
		pending: make(map[string]Notification),
	}
}

func (l *LogNotifier) Schedule(_ context.Context, n Notification) error {
	l.mu.Lock()
	l.pending[n.ID] = n
	l.mu.Unlock()

	l.logger.Info().
		Str("id", n.ID).
		Str("title", n.Title).
		Dur("delay", n.Delay).
		Msg("notification scheduled")
	return nil
}

func (l *LogNotifier) Cancel(_ context.Context, id string) error {
	l.mu.Lock()
	delete(l.pending, id)
	l.mu.Unlock()
	return nil
}

func (l *LogNotifier) CancelAll(context.Context) error {
	l.mu.Lock()
	l.pending = make(map[string]Notification)
	l.mu.Unlock()
	return nil
}

func (l *LogNotifier) Scheduled(context.Context) ([]Notification, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Notification, 0, len(l.pending))
	for _, n := range l.pending {
		out = append(out, n)
	}
	return out, nil
}

// AlwaysGranted is a PermissionGate for environments without an OS prompt.
type AlwaysGranted struct{}

func (AlwaysGranted) Status(context.Context) (bool, error)  { return true, nil }
func (AlwaysGranted) Request(context.Context) (bool, error) { return true, nil }
