package mcp

import (
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ClassifyDateParams defines parameters for the classify_date tool.
type ClassifyDateParams struct {
	Date   string `json:"date"             jsonschema:"description=the date to classify"`
	Format string `json:"format,omitempty" jsonschema:"description=strftime format of the date, defaults to %Y-%m-%d"`
}

// ClassifyDateResult contains the result of classifying a date.
type ClassifyDateResult struct {
	Rule    string `json:"rule,omitempty"`
	Message string `json:"message,omitempty"`
	Matched bool   `json:"matched"`
}

// createClassifyDateResult creates the MCP tool result from ClassifyDateResult.
func createClassifyDateResult(result ClassifyDateResult, date string) *mcp.CallToolResult {
	msg := fmt.Sprintf("No enabled rule matches %s.", date)
	if result.Matched {
		msg = fmt.Sprintf("Rule %q matches %s: %s", result.Rule, date, result.Message)
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{
				Text: msg,
			},
		},
	}
}
