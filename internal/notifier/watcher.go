// Package notifier watches the latest group's deadline and fires the
// one-shot reminder and summary notifications.
package notifier

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/hctsai/lunchgo/internal/group"
	"github.com/hctsai/lunchgo/internal/localtime"
	"github.com/hctsai/lunchgo/internal/notify"
	"github.com/hctsai/lunchgo/internal/order"
	"github.com/hctsai/lunchgo/pkg/metrics"
)

const (
	// Reminder fires when the truncated minutes-to-deadline falls in
	// [reminderFloor, reminderCeil]. The window is over a minute wide so a
	// minute-granularity poll cannot step over it: truncation turns 4m59s
	// into 4.
	reminderFloor = 4
	reminderCeil  = 5

	// Summaries are only sent within this many minutes after the deadline,
	// so a restart does not re-announce long-closed groups.
	summaryGraceMinutes = 1

	// Dedup sets are cleared wholesale past this size. At most one group is
	// live at a time, so the sets stay tiny in practice.
	dedupCap = 10
)

// Watcher polls the group deadline once per interval. Sent-notification
// tracking is in-memory only: at most once within the process lifetime,
// best effort across restarts.
type Watcher struct {
	groups   *group.Service
	orders   *order.Service
	sender   notify.Sender
	appURL   string
	interval time.Duration

	// test seam
	now func() time.Time

	mu            sync.Mutex
	sentReminders map[string]struct{}
	sentSummaries map[string]struct{}
}

// New creates a watcher polling once per minute. A nil sender disables it.
func New(groups *group.Service, orders *order.Service, sender notify.Sender, appURL string) *Watcher {
	return &Watcher{
		groups:        groups,
		orders:        orders,
		sender:        sender,
		appURL:        appURL,
		interval:      time.Minute,
		now:           localtime.Now,
		sentReminders: make(map[string]struct{}),
		sentSummaries: make(map[string]struct{}),
	}
}

// Run polls until the context is cancelled. Nothing a tick does can stop
// the loop.
func (w *Watcher) Run(ctx context.Context) {
	if w.sender == nil {
		slog.Info("notification channel not configured, deadline watcher disabled")
		return
	}

	slog.Info("deadline watcher started", "interval", w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("deadline watcher stopped")
			return
		case <-ticker.C:
			w.tick(ctx)
		}
	}
}

// tick runs one poll. Every failure is logged and swallowed.
func (w *Watcher) tick(ctx context.Context) {
	if w.sender == nil {
		return
	}

	groups, err := w.groups.List(ctx)
	if err != nil {
		slog.Error("deadline check failed to list groups", "error", err)
		return
	}
	if len(groups) == 0 {
		return
	}

	// Only the most recent group matters; older ones were either handled
	// already or superseded.
	latest := groups[len(groups)-1]
	deadline, err := localtime.ParseDeadline(latest.Deadline)
	if err != nil {
		slog.Warn("skipping deadline check, unparseable deadline",
			"group", latest.ID, "deadline", latest.Deadline)
		return
	}

	now := w.now()
	minutesLeft := int(deadline.Sub(now).Minutes())
	slog.Debug("deadline check", "group", latest.Name, "minutesLeft", minutesLeft)

	if minutesLeft >= reminderFloor && minutesLeft <= reminderCeil && !w.seenReminder(latest.ID) {
		w.sendReminder(ctx, latest)
	}

	if !now.Before(deadline) && int(now.Sub(deadline).Minutes()) <= summaryGraceMinutes && !w.seenSummary(latest.ID) {
		w.sendSummary(ctx, latest)
	}

	w.pruneSent()
}

func (w *Watcher) sendReminder(ctx context.Context, g *group.Group) {
	text, err := notify.Reminder(g.Name, g.Deadline, g.ID, w.appURL)
	if err != nil {
		slog.Warn("failed to format reminder", "group", g.ID, "error", err)
		return
	}
	if err := w.sender.Push(ctx, text); err != nil {
		slog.Error("failed to send reminder", "group", g.ID, "error", err)
		return
	}
	w.markReminder(g.ID)
	metrics.NotificationsSent.WithLabelValues("reminder").Inc()
	slog.Info("sent deadline reminder", "group", g.ID)
}

func (w *Watcher) sendSummary(ctx context.Context, g *group.Group) {
	orders, err := w.orders.ListByGroup(ctx, g.ID)
	if err != nil {
		slog.Error("failed to load orders for summary", "group", g.ID, "error", err)
		return
	}
	if len(orders) == 0 {
		slog.Info("no orders to summarize", "group", g.ID)
		return
	}

	text, err := notify.Summary(g.Deadline, orders)
	if err != nil {
		slog.Warn("failed to format summary", "group", g.ID, "error", err)
		return
	}
	if err := w.sender.Push(ctx, text); err != nil {
		slog.Error("failed to send summary", "group", g.ID, "error", err)
		return
	}
	w.markSummary(g.ID)
	metrics.NotificationsSent.WithLabelValues("summary").Inc()
	slog.Info("sent order summary", "group", g.ID)

	if err := w.sender.Push(ctx, notify.Statistics(g.RestaurantPhone, orders)); err != nil {
		slog.Error("failed to send statistics", "group", g.ID, "error", err)
		return
	}
	metrics.NotificationsSent.WithLabelValues("statistics").Inc()
	slog.Info("sent order statistics", "group", g.ID)
}

func (w *Watcher) seenReminder(groupID string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, ok := w.sentReminders[groupID]
	return ok
}

func (w *Watcher) seenSummary(groupID string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, ok := w.sentSummaries[groupID]
	return ok
}

func (w *Watcher) markReminder(groupID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.sentReminders[groupID] = struct{}{}
}

func (w *Watcher) markSummary(groupID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.sentSummaries[groupID] = struct{}{}
}

func (w *Watcher) pruneSent() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.sentReminders) > dedupCap {
		w.sentReminders = make(map[string]struct{})
	}
	if len(w.sentSummaries) > dedupCap {
		w.sentSummaries = make(map[string]struct{})
	}
}
