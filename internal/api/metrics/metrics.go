// Package metrics defines and registers all custom Prometheus metrics for the
// forum API. It is the single source of truth for metric names, labels, and
// help strings. Metrics register with the default registry at import time and
// are served by the /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "forum"

// UsersRegisteredTotal counts fresh identities created through Register.
var UsersRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of newly registered users.",
	},
)

// LoginsTotal counts successful logins.
// Label:
//   - result: "updated" (known id) or "created" (unseen id claimed)
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of successful logins, by outcome.",
	},
	[]string{"result"},
)

// PostsCreatedTotal counts newly created posts.
var PostsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "posts_created_total",
		Help:      "Total number of posts created.",
	},
)

// RepliesCreatedTotal counts replies appended to posts.
var RepliesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "replies_created_total",
		Help:      "Total number of replies appended to posts.",
	},
)

// PostCacheTotal counts recent-posts cache lookups.
// Label:
//   - result: "hit" (served from cache) or "miss" (fetched from the store)
var PostCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "post_cache_total",
		Help:      "Total number of recent-posts cache lookups, by result (hit/miss).",
	},
	[]string{"result"},
)
