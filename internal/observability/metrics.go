package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ChatRequests counts /chat requests by outcome.
	ChatRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "backster_chat_requests_total",
		Help: "Chat requests handled, by outcome.",
	}, []string{"outcome"})

	// ModelInvocations counts round-trips to the language model.
	ModelInvocations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "backster_model_invocations_total",
		Help: "Language model invocations.",
	})

	// CapabilityInvocations counts capability dispatches by name.
	CapabilityInvocations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "backster_capability_invocations_total",
		Help: "Capability invocations, by capability name.",
	}, []string{"capability"})

	// MailDispatches counts outbound emails by status.
	MailDispatches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "backster_mail_dispatches_total",
		Help: "Outbound email dispatches, by status.",
	}, []string{"status"})
)
