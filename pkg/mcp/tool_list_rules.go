package mcp

import (
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rwjstewart/gfsbuddy/pkg/rule"
)

// ListRulesParams defines parameters for the list_rules tool.
type ListRulesParams struct{}

// RuleInfo describes one rule in the schedule.
type RuleInfo struct {
	Name    string `json:"name"`
	Message string `json:"message"`
	Enabled bool   `json:"enabled"`
}

// ListRulesResult contains the rule schedule in evaluation order.
type ListRulesResult struct {
	Rules     []RuleInfo `json:"rules"`
	RuleCount int        `json:"ruleCount"`
}

// createListRulesResult creates the MCP tool result from ListRulesResult.
func createListRulesResult(result ListRulesResult) *mcp.CallToolResult {
	msg := fmt.Sprintf("Schedule has %d rules.", result.RuleCount)

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{
				Text: msg,
			},
		},
	}
}

// populateResultFromRegistry fills the result with the registry's rules.
func populateResultFromRegistry(result *ListRulesResult, rules []*rule.Rule) {
	result.RuleCount = len(rules)
	for _, r := range rules {
		result.Rules = append(result.Rules, RuleInfo{
			Name:    r.Name,
			Message: r.Message().String(),
			Enabled: r.Enabled,
		})
	}
}
