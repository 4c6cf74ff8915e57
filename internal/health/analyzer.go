package health

import (
	"strings"

	"host-insight/internal/logs"
	"host-insight/internal/metrics"
)

// Analyzer converts counters + recent logs into a health report.
type Analyzer struct {
	metrics *metrics.Registry
	logger  *logs.Logger
	rules   []Rule
}

// NewAnalyzer creates an analyzer over the service's registry and logger.
func NewAnalyzer(reg *metrics.Registry, logger *logs.Logger) *Analyzer {
	return &Analyzer{
		metrics: reg,
		logger:  logger,
		rules: []Rule{
			SummaryFailureRule,
			AuthFailureRule,
			RejectedPayloadRule,
			PanicRule,
		},
	}
}

// Analyze evaluates counters and logs and returns a health report.
func (a *Analyzer) Analyze() Report {
	snapshot := a.metrics.Snapshot()

	var (
		signals         = []string{}
		recommendations = []string{}
		status          = StatusOK
	)

	for _, rule := range a.rules {
		result := rule(snapshot)
		if !result.Triggered {
			continue
		}

		signals = append(signals, result.Signal)
		recommendations = append(recommendations, result.Recommendation)

		// Escalate status
		if result.Severity == StatusCritical {
			status = StatusCritical
		} else if result.Severity == StatusDegraded && status == StatusOK {
			status = StatusDegraded
		}
	}

	// Log-based signals over the most recent entries.
	logEntries := a.logger.GetLast(100)

	summaryFailures := 0
	panicCount := 0

	for _, entry := range logEntries {
		if entry.Level == logs.WARN &&
			strings.Contains(entry.Message, "summary request") {
			summaryFailures++
		}

		if entry.Level == logs.ERROR &&
			strings.Contains(entry.Message, "panic") {
			panicCount++
		}
	}

	if summaryFailures >= 3 {
		signals = append(signals,
			"Repeated summarization failures detected in logs",
		)
		recommendations = append(recommendations,
			"Verify the completion API credential and endpoint",
		)
		if status == StatusOK {
			status = StatusDegraded
		}
	}

	if panicCount > 0 {
		signals = append(signals,
			"Application panics detected in logs",
		)
		recommendations = append(recommendations,
			"Inspect stack traces and stabilize error handling",
		)
		status = StatusCritical
	}

	summary := "Service is healthy"
	if status != StatusOK {
		summary = "Service health issues detected"
	}

	return Report{
		OverallStatus:   status,
		Summary:         summary,
		Signals:         signals,
		Recommendations: recommendations,
	}
}
