package schema

import "strings"

// Unknown is substituted whenever an optional field the pipeline depends on
// is absent from the upstream scan data.
const Unknown = "Unknown"

// HostRecord is one scanned network endpoint as reported by upstream scan
// tooling. Every field is optional: absent values decode to zero values and
// consumers go through the accessor methods below instead of touching nested
// fields directly.
type HostRecord struct {
	IP                 string             `json:"ip,omitempty"`
	Location           Location           `json:"location,omitempty"`
	AutonomousSystem   AutonomousSystem   `json:"autonomous_system,omitempty"`
	ThreatIntelligence ThreatIntelligence `json:"threat_intelligence,omitempty"`
	Services           []ServiceRecord    `json:"services,omitempty"`
}

// Location is the geolocation block attached to a host.
type Location struct {
	Country string `json:"country,omitempty"`
	City    string `json:"city,omitempty"`
}

// AutonomousSystem identifies the network operator announcing the host.
type AutonomousSystem struct {
	ASN  int64  `json:"asn,omitempty"`
	Name string `json:"name,omitempty"`
}

// ThreatIntelligence carries the coarse risk labeling produced by upstream
// threat-intel tooling.
type ThreatIntelligence struct {
	RiskLevel      string   `json:"risk_level,omitempty"`
	SecurityLabels []string `json:"security_labels,omitempty"`
}

// ServiceRecord is one network service observed on a host.
type ServiceRecord struct {
	Port            int                   `json:"port,omitempty"`
	ServiceName     string                `json:"service_name,omitempty"`
	Banner          string                `json:"banner,omitempty"`
	Vulnerabilities []VulnerabilityRecord `json:"vulnerabilities,omitempty"`
}

// VulnerabilityRecord is one known vulnerability affecting a service.
type VulnerabilityRecord struct {
	CVEID    string  `json:"cve_id,omitempty"`
	Severity string  `json:"severity,omitempty"`
	CVSS     float64 `json:"cvss,omitempty"`
}

// Country returns the host's country, or Unknown when the location block
// is missing or incomplete.
func (h HostRecord) Country() string {
	if h.Location.Country == "" {
		return Unknown
	}
	return h.Location.Country
}

// RiskLevel returns the host's risk label folded to lower case. Hosts
// without threat-intel data yield an empty string, which classifies as
// neither critical nor high.
func (h HostRecord) RiskLevel() string {
	return strings.ToLower(h.ThreatIntelligence.RiskLevel)
}

// CVE returns the vulnerability identifier, or Unknown when the upstream
// entry carries no cve_id.
func (v VulnerabilityRecord) CVE() string {
	if v.CVEID == "" {
		return Unknown
	}
	return v.CVEID
}
