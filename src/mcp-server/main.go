// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"

	verpkg "github.com/H0llyW00dzZ/keybox-integrity-checker/src/version"
)

var serverName = "Android Keybox Integrity Checker" // MCP server name
var appVersion = verpkg.Version                     // default version

// GetVersion returns the current version of the MCP server.
//
// The version is initially set to the default from the version package,
// but can be overridden when calling Run() with a specific version string.
func GetVersion() string {
	return appVersion
}

// Run starts the MCP server with keybox integrity validation tools.
//
// It loads configuration from the MCP_KEYBOX_CONFIG_FILE environment
// variable (falling back to defaults), registers the keybox tools, and
// serves over stdio until the context is cancelled by SIGINT or SIGTERM.
//
// Tools exposed:
//   - validate_keybox: full validation report with selectable strategy and format
//   - classify_chain: per-certificate role classification
//   - check_keybox_expiry: expiry status with configurable warning threshold
//   - inspect_certificate: single certificate record as JSON
func Run(version string) error {
	// Set the version for GetVersion
	appVersion = version

	// Load configuration
	config, err := loadConfig(os.Getenv(configFileEnv))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Create MCP server
	s := server.NewMCPServer(
		serverName,
		appVersion,
		server.WithToolCapabilities(true),
	)

	// Register keybox tools with their handlers
	s.AddTools(createTools(config)...)

	// Create cancellable context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Create stdio server to connect with our context
	stdioServer := server.NewStdioServer(s)

	// Start server with graceful shutdown support
	errChan := make(chan error, 1)
	go func() {
		errChan <- stdioServer.Listen(ctx, os.Stdin, os.Stdout)
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		// Graceful shutdown triggered by signal
		return fmt.Errorf("server shutdown: %w", ctx.Err())
	}
}
