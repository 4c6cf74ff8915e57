package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHostRecord_DecodeWithMissingFields(t *testing.T) {
	raw := `{"ip":"10.0.0.1","services":[{"port":22,"vulnerabilities":[{"severity":"high"}]}]}`

	var host HostRecord
	require.NoError(t, json.Unmarshal([]byte(raw), &host))

	assert.Equal(t, "10.0.0.1", host.IP)
	assert.Equal(t, Unknown, host.Country())
	assert.Equal(t, "", host.RiskLevel())
	require.Len(t, host.Services, 1)
	assert.Equal(t, Unknown, host.Services[0].Vulnerabilities[0].CVE())
}

func TestHostRecord_Accessors(t *testing.T) {
	host := HostRecord{
		Location:           Location{Country: "BR"},
		ThreatIntelligence: ThreatIntelligence{RiskLevel: "HiGh"},
	}

	assert.Equal(t, "BR", host.Country())
	assert.Equal(t, "high", host.RiskLevel())

	vuln := VulnerabilityRecord{CVEID: "CVE-2020-0001"}
	assert.Equal(t, "CVE-2020-0001", vuln.CVE())
}

func TestHostRecord_ExtraFieldsIgnored(t *testing.T) {
	// Upstream scan data carries far more fields than the pipeline
	// consumes; unknown keys must decode without error.
	raw := `{"ip":"10.0.0.2","dns":{"names":["example.com"]},"last_updated":"2025-01-01",
		"location":{"country":"JP","timezone":"Asia/Tokyo"}}`

	var host HostRecord
	require.NoError(t, json.Unmarshal([]byte(raw), &host))
	assert.Equal(t, "JP", host.Country())
}
