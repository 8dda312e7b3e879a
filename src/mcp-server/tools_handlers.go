// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/H0llyW00dzZ/keybox-integrity-checker/src/internal/keybox"
	"github.com/H0llyW00dzZ/keybox-integrity-checker/src/internal/verdict"
	x509certs "github.com/H0llyW00dzZ/keybox-integrity-checker/src/internal/x509/certs"
	x509chain "github.com/H0llyW00dzZ/keybox-integrity-checker/src/internal/x509/chain"
)

// decoder is shared by all tool handlers; it holds no per-request state.
var decoder = x509certs.New()

// readKeyboxInput resolves the keybox parameter, which may be raw XML, a file
// path, or base64-encoded XML.
func readKeyboxInput(input string) ([]byte, error) {
	if strings.HasPrefix(strings.TrimSpace(input), "<") {
		return []byte(input), nil
	}

	if fileData, err := os.ReadFile(input); err == nil {
		return fileData, nil
	}

	if decoded, err := base64.StdEncoding.DecodeString(input); err == nil {
		return decoded, nil
	}

	return nil, fmt.Errorf("keybox parameter is not raw XML, a readable file path, or valid base64 data")
}

// extractChain parses the keybox XML and builds the classified certificate
// records, shared by the chain-oriented handlers.
func extractChain(input string) (*keybox.Keybox, []x509chain.CertificateRecord, []x509chain.DecodeFailure, error) {
	data, err := readKeyboxInput(input)
	if err != nil {
		return nil, nil, nil, err
	}

	kb, err := keybox.FromXML(data)
	if err != nil {
		return nil, nil, nil, err
	}

	records, failures := x509chain.Build(decoder, kb.CertificateChain, time.Now())
	return kb, records, failures, nil
}

// handleValidateKeybox runs the full validation pipeline on a keybox bundle
// and renders the report in the requested format.
func handleValidateKeybox(request mcp.CallToolRequest, config *Config) (*mcp.CallToolResult, error) {
	keyboxInput, err := request.RequireString("keybox")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("keybox parameter required: %v", err)), nil
	}

	strategyName := request.GetString("strategy", config.Defaults.Strategy)
	format := request.GetString("format", config.Defaults.Format)

	data, err := readKeyboxInput(keyboxInput)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to read keybox: %v", err)), nil
	}

	strategy, err := verdict.ForName(strategyName)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("unknown strategy %q: use 'categorical' or 'score'", strategyName)), nil
	}

	report, err := verdict.Validate(data, strategy, time.Now())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to validate keybox: %v", err)), nil
	}

	var output string
	switch format {
	case "yaml":
		rendered, err := report.ToYAML()
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to render report: %v", err)), nil
		}
		output = string(rendered)
	case "tree":
		output = report.RenderASCIITree()
	case "table":
		output = report.RenderTable()
	case "json":
		rendered, err := report.ToJSON()
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to render report: %v", err)), nil
		}
		output = string(rendered)
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unknown format %q: use 'json', 'yaml', 'tree' or 'table'", format)), nil
	}

	return mcp.NewToolResultText(output), nil
}

// handleClassifyChain classifies every certificate in the keybox chain and
// reports per-certificate details.
func handleClassifyChain(request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	keyboxInput, err := request.RequireString("keybox")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("keybox parameter required: %v", err)), nil
	}

	kb, records, failures, err := extractChain(keyboxInput)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to extract keybox: %v", err)), nil
	}

	var result strings.Builder
	result.WriteString(fmt.Sprintf("Chain classification for device %q:\n", kb.DeviceID))
	for _, rec := range records {
		selfSigned := ""
		if rec.IsSelfSigned {
			selfSigned = ", self-signed"
		}
		result.WriteString(fmt.Sprintf("%d: %s: subject %q, issuer %q, serial %s%s\n",
			rec.Position, rec.Role, rec.Subject, rec.Issuer, rec.SerialHex, selfSigned))
	}
	for _, f := range failures {
		result.WriteString(fmt.Sprintf("certificate %d failed to decode: %v\n", f.Position, f.Err))
	}
	result.WriteString(fmt.Sprintf("\nTotal: %d certificate(s), %d decode failure(s)\n", len(records), len(failures)))

	if x509chain.HasTrustedRoot(records) {
		result.WriteString("Chain anchors on a trusted root.\n")
	} else {
		result.WriteString("No trusted root found in chain.\n")
	}

	return mcp.NewToolResultText(result.String()), nil
}

// handleCheckKeyboxExpiry reports the expiry status of every certificate in
// the keybox chain, warning about certificates close to expiry.
func handleCheckKeyboxExpiry(request mcp.CallToolRequest, config *Config) (*mcp.CallToolResult, error) {
	keyboxInput, err := request.RequireString("keybox")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("keybox parameter required: %v", err)), nil
	}

	warnDays := request.GetInt("warn_days", config.Defaults.WarnDays)

	kb, records, _, err := extractChain(keyboxInput)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to extract keybox: %v", err)), nil
	}

	now := time.Now()
	var result strings.Builder
	result.WriteString(fmt.Sprintf("Expiry check for device %q (warn threshold: %d days):\n", kb.DeviceID, warnDays))

	expired, expiring := 0, 0
	for _, rec := range records {
		days := int(rec.NotAfter.Sub(now).Hours() / 24)
		switch {
		case rec.IsExpired:
			expired++
			result.WriteString(fmt.Sprintf("%d: %s EXPIRED on %s\n",
				rec.Position, rec.Subject, rec.NotAfter.Format("2006-01-02")))
		case days <= warnDays:
			expiring++
			result.WriteString(fmt.Sprintf("%d: %s expires in %d day(s) on %s - WARNING\n",
				rec.Position, rec.Subject, days, rec.NotAfter.Format("2006-01-02")))
		default:
			result.WriteString(fmt.Sprintf("%d: %s valid until %s (%d days remaining)\n",
				rec.Position, rec.Subject, rec.NotAfter.Format("2006-01-02"), days))
		}
	}

	switch {
	case expired > 0:
		result.WriteString(fmt.Sprintf("\n%d certificate(s) expired.\n", expired))
	case expiring > 0:
		result.WriteString(fmt.Sprintf("\n%d certificate(s) expiring within %d days.\n", expiring, warnDays))
	case len(records) == 0:
		result.WriteString("\nNo certificates in chain.\n")
	default:
		result.WriteString("\nAll certificates are within their validity period.\n")
	}

	return mcp.NewToolResultText(result.String()), nil
}

// handleInspectCertificate returns the full classified record of a single
// certificate in the chain as indented JSON.
func handleInspectCertificate(request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	keyboxInput, err := request.RequireString("keybox")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("keybox parameter required: %v", err)), nil
	}

	position := request.GetInt("position", 0)

	_, records, _, err := extractChain(keyboxInput)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to extract keybox: %v", err)), nil
	}

	for _, rec := range records {
		if rec.Position == position {
			data, err := json.MarshalIndent(rec, "", "  ")
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("failed to marshal certificate record: %v", err)), nil
			}
			return mcp.NewToolResultText(string(data)), nil
		}
	}

	return mcp.NewToolResultError(fmt.Sprintf("no decodable certificate at position %d (chain has %d decoded certificates)", position, len(records))), nil
}
