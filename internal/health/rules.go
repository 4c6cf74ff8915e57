package health

import "host-insight/internal/metrics"

// RuleResult represents the outcome of a single rule.
type RuleResult struct {
	Triggered      bool
	Signal         string
	Recommendation string
	Severity       Status
}

// Rule evaluates a counter snapshot.
type Rule func(snapshot map[string]int64) RuleResult

// ---------- RULES ----------

// Upstream summarization failures mean clients are getting error text
// instead of AI summaries.
func SummaryFailureRule(snapshot map[string]int64) RuleResult {
	failures := snapshot[string(metrics.SummaryFailuresTotal)]

	if failures > 0 {
		return RuleResult{
			Triggered:      true,
			Signal:         "Upstream summarization calls are failing",
			Recommendation: "Check completion API reachability and the outbound timeout",
			Severity:       StatusDegraded,
		}
	}
	return RuleResult{}
}

// Authentication rejections mean the configured credential is wrong or
// missing, so no summary will ever succeed.
func AuthFailureRule(snapshot map[string]int64) RuleResult {
	rejections := snapshot[string(metrics.UpstreamAuthFailuresTotal)]

	if rejections > 0 {
		return RuleResult{
			Triggered:      true,
			Signal:         "Completion API rejected the configured credential",
			Recommendation: "Set PERPLEXITY_API_KEY to a valid key and restart",
			Severity:       StatusCritical,
		}
	}
	return RuleResult{}
}

// A sustained stream of rejected payloads points at a broken client.
func RejectedPayloadRule(snapshot map[string]int64) RuleResult {
	rejected := snapshot[string(metrics.PayloadsRejectedTotal)]

	if rejected >= 10 {
		return RuleResult{
			Triggered:      true,
			Signal:         "Many inbound payloads rejected as malformed",
			Recommendation: "Inspect client serialization of the hosts array",
			Severity:       StatusDegraded,
		}
	}
	return RuleResult{}
}

// Recovered panics indicate a bug in request handling.
func PanicRule(snapshot map[string]int64) RuleResult {
	panics := snapshot[string(metrics.PanicsRecoveredTotal)]

	if panics > 0 {
		return RuleResult{
			Triggered:      true,
			Signal:         "Request handlers recovered from panics",
			Recommendation: "Inspect server logs for stack traces",
			Severity:       StatusCritical,
		}
	}
	return RuleResult{}
}
