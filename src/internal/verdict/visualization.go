// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package verdict

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	x509chain "github.com/H0llyW00dzZ/keybox-integrity-checker/src/internal/x509/chain"
)

// RenderASCIITree renders the certificate chain as an ASCII tree diagram in
// display order (ROOT first), with a status icon per certificate and the
// verdict line at the end.
func (r *ValidationReport) RenderASCIITree() string {
	var result strings.Builder

	result.WriteString(fmt.Sprintf("Keybox %s (%s)\n", r.DeviceID, r.Strategy))

	if len(r.Certificates) == 0 {
		result.WriteString("└── (no certificates in chain)\n")
	}

	for i, rec := range r.Certificates {
		connector := "├── "
		if i == len(r.Certificates)-1 {
			connector = "└── "
		}

		statusIcon := "✓"
		if rec.IsExpired || rec.IsRevoked {
			statusIcon = "✗"
		}

		result.WriteString(fmt.Sprintf("%s[%s] %s (%s)\n", connector, statusIcon, rec.Subject, roleLabel(rec.Role)))
	}

	result.WriteString(fmt.Sprintf("Verdict: %s (score %d", r.OverallStatus, r.Score))
	if r.RiskBand != "" {
		result.WriteString(fmt.Sprintf(", %s revocation risk", r.RiskBand))
	}
	result.WriteString(")\n")

	return result.String()
}

// RenderTable renders the certificate records as a formatted markdown table
// using tablewriter, followed by the audit log.
func (r *ValidationReport) RenderTable() string {
	var buf strings.Builder

	buf.WriteString(fmt.Sprintf("## Keybox %s: %s\n\n", r.DeviceID, r.OverallStatus))

	if len(r.Certificates) > 0 {
		table := tablewriter.NewTable(&buf,
			tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
		)

		table.Header([]string{"#", "Role", "Subject", "Issuer", "Valid Until", "Fingerprint", "Status"})

		var rows [][]string
		for _, rec := range r.Certificates {
			status := "ok"
			switch {
			case rec.IsRevoked:
				status = "revoked"
			case rec.IsExpired:
				status = "expired"
			}

			rows = append(rows, []string{
				fmt.Sprintf("%d", rec.Position),
				roleLabel(rec.Role),
				rec.Subject,
				rec.Issuer,
				rec.NotAfter.Format("2006-01-02"),
				rec.Fingerprint,
				status,
			})
		}

		table.Bulk(rows)
		table.Render()
		buf.WriteString("\n")
	}

	buf.WriteString("### Audit Log\n\n")
	for _, entry := range r.AuditLog {
		buf.WriteString(fmt.Sprintf("- [%s] %s\n", entry.Severity, entry.Message))
	}

	return buf.String()
}

// roleLabel returns a descriptive label for a chain role.
func roleLabel(role x509chain.Role) string {
	switch role {
	case x509chain.RoleRoot:
		return "Root CA"
	case x509chain.RoleIntermediate:
		return "Intermediate CA"
	default:
		return "End-Entity"
	}
}
