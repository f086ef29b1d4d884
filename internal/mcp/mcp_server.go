// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mpetrulis/lexirank/internal/contract"
)

// NewMCPServer initializes and configures the Lexirank MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, store contract.WordStore) *server.MCPServer {
	s := server.NewMCPServer(
		"Lexirank Word Frequency Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		store:   store,
	}

	// --- 1. Tool: get_top_words ---
	s.AddTool(mcp.NewTool("get_top_words",
		mcp.WithDescription("Compute the combined word frequency ranking across corpora and return the top words."),
		mcp.WithString("corpora", mcp.Description("Comma-separated corpus names to restrict the ranking to (defaults to all enabled corpora).")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of results returned.")),
		mcp.WithBoolean("include_outliers", mcp.Description("Include words flagged as statistical outliers. Defaults to false.")),
	), h.handleGetTopWords)

	// --- 2. Tool: get_corpus_status ---
	s.AddTool(mcp.NewTool("get_corpus_status",
		mcp.WithDescription("List registered corpora with their weights, word counts and enabled state."),
	), h.handleGetCorpusStatus)

	// --- 3. Tool: correlate_corpora ---
	s.AddTool(mcp.NewTool("correlate_corpora",
		mcp.WithDescription("Compute the pairwise Spearman rank correlation between enabled corpora over shared words."),
	), h.handleCorrelateCorpora)

	return s
}

// StartMCPServer starts the Lexirank MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, store contract.WordStore) error {
	s := NewMCPServer(baseCfg, store)
	return server.ServeStdio(s)
}
