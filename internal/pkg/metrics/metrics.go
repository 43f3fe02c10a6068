package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AnnouncementsPublished = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "mythos",
		Subsystem: "announcements",
		Name:      "published_total",
		Help:      "Announcements published successfully.",
	})

	AnnouncementsDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "mythos",
		Subsystem: "announcements",
		Name:      "deleted_total",
		Help:      "Announcements removed successfully.",
	})

	ChatReplies = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mythos",
		Subsystem: "chat",
		Name:      "replies_total",
		Help:      "Chat replies served, by outcome.",
	}, []string{"outcome"}) // generated | fallback

	NotificationsEmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mythos",
		Subsystem: "notifications",
		Name:      "emitted_total",
		Help:      "Notifications emitted, by severity.",
	}, []string{"severity"})
)
