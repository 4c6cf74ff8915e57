package analysis

import (
	"sort"

	"host-insight/internal/schema"
)

// Report aggregates quick-overview statistics over a batch of host records.
// JSON field names are part of the /summarize response contract.
type Report struct {
	TotalHosts            int      `json:"total_hosts"`
	CriticalRisk          int      `json:"critical_risk"`
	HighRisk              int      `json:"high_risk"`
	UniqueVulnerabilities []string `json:"unique_vulnerabilities"`
	ServicesCount         int      `json:"services_count"`
	Countries             []string `json:"countries"`
}

// ExtractMetrics computes a Report in a single pass over the hosts.
// It is total over arbitrary input: missing or empty nested structures
// degrade to their documented defaults and never fail. The input is not
// mutated.
func ExtractMetrics(hosts []schema.HostRecord) Report {
	report := Report{TotalHosts: len(hosts)}

	vulns := make(map[string]struct{})
	countries := make(map[string]struct{})

	for _, host := range hosts {
		// Each host classifies into exactly one risk bucket.
		switch host.RiskLevel() {
		case "critical":
			report.CriticalRisk++
		case "high":
			report.HighRisk++
		}

		for _, svc := range host.Services {
			report.ServicesCount++
			for _, vuln := range svc.Vulnerabilities {
				vulns[vuln.CVE()] = struct{}{}
			}
		}

		countries[host.Country()] = struct{}{}
	}

	report.UniqueVulnerabilities = sortedKeys(vulns)
	report.Countries = sortedKeys(countries)
	return report
}

// sortedKeys flattens a set into a sorted slice. Never nil, so empty sets
// serialize as [] rather than null.
func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
