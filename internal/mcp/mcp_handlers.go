package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mpetrulis/lexirank/core"
	"github.com/mpetrulis/lexirank/internal/contract"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	store   contract.WordStore
}

func (h *toolHandler) handleGetTopWords(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if c := request.GetString("corpora", ""); c != "" {
		cfg.Corpora = splitCorpusList(c)
	}
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = l
	}
	includeOutliers := request.GetBool("include_outliers", false)

	results, _, err := core.CalculateCombinedRanks(h.store, core.AggregateOptions{
		CorpusNames:      cfg.Corpora,
		OutlierThreshold: cfg.OutlierThreshold,
		UnknownRank:      cfg.UnknownRank,
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("ranking failed: %v", err)), nil
	}

	if !includeOutliers {
		results = core.FilterOutliers(results)
	}
	results = core.TopResults(results, cfg.ResultLimit)

	jsonData, _ := json.MarshalIndent(results, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetCorpusStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	statuses, err := h.store.CorpusStatuses()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("status lookup failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(statuses, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleCorrelateCorpora(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	results, err := core.CorrelateCorpora(h.store)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("correlation failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(results, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

// splitCorpusList parses a comma-separated corpus list, dropping empty parts.
func splitCorpusList(s string) []string {
	var names []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			names = append(names, trimmed)
		}
	}
	return names
}
