// Package metrics declares the application's prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// OrdersCreated counts orders written to the live ledger.
	OrdersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lunchgo_orders_created_total",
		Help: "Number of orders added to the live ledger.",
	})

	// NotificationsSent counts chat notifications by kind
	// (reminder, summary, statistics).
	NotificationsSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lunchgo_notifications_sent_total",
		Help: "Number of chat notifications pushed, by kind.",
	}, []string{"kind"})
)
