package llm

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildHostDataPrompt(t *testing.T) {
	payload := json.RawMessage(`{"hosts":[{"ip":"1.2.3.4","location":{"country":"US"}}]}`)

	prompt, err := BuildHostDataPrompt(payload)
	require.NoError(t, err)

	t.Run("FixedInstructionText", func(t *testing.T) {
		assert.True(t, strings.HasPrefix(prompt,
			"\n    You are a security analyst summarizing Censys host data."))

		// The seven named sections are a contract with the UI that
		// renders the returned markdown.
		for _, section := range []string{
			"1. Executive Summary (2-3 sentences in plain language)",
			"2. Quick Metrics (bulleted counts)",
			"3. Overall Risk Assessment (concise, no repetition)",
			"4. Key Vulnerabilities (markdown table)",
			"5. Services and Security Issues (markdown table, one row per host)",
			"6. Notable Observations (3-5 concise bullets)",
			"7. Recommended Next Actions (3-5 bullets)",
		} {
			assert.Contains(t, prompt, section)
		}

		assert.Contains(t, prompt,
			"TONE: Professional yet approachable for both technical and non-technical audiences.")
	})

	t.Run("PayloadEmbeddedPrettyPrinted", func(t *testing.T) {
		assert.Contains(t, prompt, "Host Data:\n")
		assert.Contains(t, prompt, "\"hosts\": [")
		assert.Contains(t, prompt, "  \"ip\": \"1.2.3.4\"")
	})

	t.Run("StableAcrossInputWhitespace", func(t *testing.T) {
		spaced := json.RawMessage("{ \"hosts\" : [ {\"ip\":\"1.2.3.4\",\n\"location\":{\"country\":\"US\"}} ] }")
		other, err := BuildHostDataPrompt(spaced)
		require.NoError(t, err)
		assert.Equal(t, prompt, other)
	})
}

func TestBuildHostDataPrompt_InvalidPayload(t *testing.T) {
	_, err := BuildHostDataPrompt(json.RawMessage(`{broken`))
	assert.Error(t, err)
}
