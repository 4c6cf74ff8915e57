package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// systemPrompt is the fixed system-role instruction sent with every
// summarization request.
const systemPrompt = "You are a cybersecurity analyst specializing in host data analysis."

// hostDataPromptTemplate is the instruction sent as the user message. The
// seven-section structure is rendered verbatim by the consuming UI, so the
// wording must not drift.
const hostDataPromptTemplate = `
    You are a security analyst summarizing Censys host data. Generate a concise summary for technical and non-technical audiences that includes:

    STRUCTURE:
    1. Executive Summary (2-3 sentences in plain language)
    2. Quick Metrics (bulleted counts)
    3. Overall Risk Assessment (concise, no repetition)
    4. Key Vulnerabilities (markdown table)
    5. Services and Security Issues (markdown table, one row per host)
    6. Notable Observations (3-5 concise bullets)
    7. Recommended Next Actions (3-5 bullets)

    EXECUTIVE SUMMARY REQUIREMENTS:
    - Start with 2-3 sentence high-level overview in plain language
    - Example: "Three servers were analyzed, revealing serious risks like hacker tools and software flaws. One server in China is highly dangerous due to malware, and all need urgent fixes."
    - Highlight most critical findings (malware, vulnerabilities) without technical jargon

    ACCESSIBILITY FOR NON-TECHNICAL USERS:
    - Use simple language for key terms or add brief explanations in parentheses
    - Examples: "Cobalt Strike (a hacking tool for remote control)", "username enumeration (guessing valid usernames)", "self-signed cert (less secure encryption)"
    - Keep technical details (CVEs, ports) in tables for experts but summarize simply in text

    LENGTH AND BREVITY:
    - Total length ~250-300 words (excluding tables), including executive summary
    - Condense verbose sentences: "FTP with self-signed TLS; vulnerable OpenSSH 8.9p1; multiple HTTP services (some restricted); MySQL access restricted"
    - Merge related points: "Two hosts in Chinese Huawei Cloud data centers (ASN 55990) and one in the US (ASN 263744) may have geopolitical or threat attribution implications"
    - Eliminate redundancy - detail CVEs only in table, reference briefly elsewhere

    OUTPUT FORMAT (Markdown):
    - Executive Summary
    - Quick Metrics (Total Hosts, Critical Risk, High Risk, Services, Unique Vulnerabilities, Countries)
    - Overall Risk Assessment
    - Key Vulnerabilities (CVE ID | Severity | CVSS | Affected Hosts | Service/Version | Brief Note)
    - Services and Security Issues (Host IP | Services & Ports | Key Issues/Notes)
    - Notable Observations
    - Recommended Next Actions

    TONE: Professional yet approachable for both technical and non-technical audiences.

    Host Data:
    %s
    `

// BuildHostDataPrompt renders the summarization instruction with the full
// request payload embedded. The payload is compacted and re-indented so the
// embedded JSON is stable regardless of the caller's whitespace, while the
// caller's key order is preserved.
func BuildHostDataPrompt(payload json.RawMessage) (string, error) {
	var compact bytes.Buffer
	if err := json.Compact(&compact, payload); err != nil {
		return "", fmt.Errorf("compact payload: %w", err)
	}
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, compact.Bytes(), "", "  "); err != nil {
		return "", fmt.Errorf("indent payload: %w", err)
	}
	return fmt.Sprintf(hostDataPromptTemplate, pretty.String()), nil
}
