// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package mcpserver provides the [MCP] server for Android keybox integrity validation.
// It implements the Model Context Protocol ([MCP]) server with tools for keybox
// operations, including full validation with selectable strategies, certificate
// chain role classification, expiry checking, and single certificate inspection.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
package mcpserver
