// Package metrics define y registra las métricas Prometheus de crm-pro.
// Es la única fuente de verdad de nombres de métricas, labels y help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "crm"

// AuthzDecisionsTotal cuenta decisiones de la cadena de control de acceso.
// Labels:
//   - check: qué guardia decidió ("auth", "role", "permission", "finalized", "ownership", "bulk_limit")
//   - result: "allow" o "deny"
var AuthzDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authz_decisions_total",
		Help:      "Total de decisiones allow/deny de la cadena de control de acceso.",
	},
	[]string{"check", "result"},
)

// AuditWritesTotal cuenta escrituras de auditoría por resultado.
// Label:
//   - result: "ok" o "error" (el error nunca afecta la operación primaria)
var AuditWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_writes_total",
		Help:      "Total de escrituras del log de auditoría, por resultado.",
	},
	[]string{"result"},
)

// SecurityEventsTotal cuenta eventos de seguridad emitidos por severidad.
var SecurityEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "security_events_total",
		Help:      "Total de eventos de seguridad emitidos, por severidad.",
	},
	[]string{"severity"},
)

// FinalizationsTotal cuenta transiciones de finalización aplicadas.
// Label:
//   - transition: "finalize" o "unfinalize"
var FinalizationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "finalizations_total",
		Help:      "Total de transiciones de finalización aplicadas con éxito.",
	},
	[]string{"transition"},
)
