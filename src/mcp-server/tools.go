// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// createTools builds the tool definitions exposed by the server together with
// their handlers. The definitions depend on the loaded configuration for
// their defaults, so they are created once per Run.
func createTools(config *Config) []server.ServerTool {
	validateKeyboxTool := mcp.NewTool("validate_keybox",
		mcp.WithDescription("Validate an Android keybox attestation bundle: extract the keybox, classify the certificate chain, check the leak registry and produce a full validation report"),
		mcp.WithString("keybox",
			mcp.Required(),
			mcp.Description("Keybox XML file path, raw XML, or base64-encoded XML"),
		),
		mcp.WithString("strategy",
			mcp.Description("Validation strategy: 'categorical' or 'score' (default: "+config.Defaults.Strategy+")"),
			mcp.DefaultString(config.Defaults.Strategy),
		),
		mcp.WithString("format",
			mcp.Description("Output format: 'json', 'yaml', 'tree' or 'table' (default: "+config.Defaults.Format+")"),
			mcp.DefaultString(config.Defaults.Format),
		),
	)

	classifyChainTool := mcp.NewTool("classify_chain",
		mcp.WithDescription("Classify every certificate in a keybox chain as END_ENTITY, INTERMEDIATE or ROOT and report per-certificate details"),
		mcp.WithString("keybox",
			mcp.Required(),
			mcp.Description("Keybox XML file path, raw XML, or base64-encoded XML"),
		),
	)

	checkKeyboxExpiryTool := mcp.NewTool("check_keybox_expiry",
		mcp.WithDescription("Check keybox certificate expiry dates and warn about upcoming expirations"),
		mcp.WithString("keybox",
			mcp.Required(),
			mcp.Description("Keybox XML file path, raw XML, or base64-encoded XML"),
		),
		mcp.WithNumber("warn_days",
			mcp.Description(fmt.Sprintf("Number of days before expiry to show warning (default: %d)", config.Defaults.WarnDays)),
			mcp.DefaultNumber(float64(config.Defaults.WarnDays)),
		),
	)

	inspectCertificateTool := mcp.NewTool("inspect_certificate",
		mcp.WithDescription("Inspect a single certificate in a keybox chain by its position in the supplied order"),
		mcp.WithString("keybox",
			mcp.Required(),
			mcp.Description("Keybox XML file path, raw XML, or base64-encoded XML"),
		),
		mcp.WithNumber("position",
			mcp.Description("Zero-based position of the certificate in the supplied chain order (default: 0)"),
			mcp.DefaultNumber(0),
		),
	)

	return []server.ServerTool{
		{Tool: validateKeyboxTool, Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleValidateKeybox(request, config)
		}},
		{Tool: classifyChainTool, Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleClassifyChain(request)
		}},
		{Tool: checkKeyboxExpiryTool, Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleCheckKeyboxExpiry(request, config)
		}},
		{Tool: inspectCertificateTool, Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleInspectCertificate(request)
		}},
	}
}
