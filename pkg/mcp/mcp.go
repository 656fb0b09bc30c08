package mcp

const (
	name         = "gfsbuddy"
	instructions = `MCP Server 'gfsbuddy' classifies dates against a Grandfather-Father-Son backup tape rotation schedule.

When to use these tools:
- Determining which backup tape should be used on a given date
- Checking whether a date is a rotation boundary (end of week, month, year, or financial year)
- Inspecting the active rotation schedule and its rules

Workflow:
1. Use 'list_rules' to see the rule schedule, in evaluation order, with each rule's enabled state
2. Use 'classify_date' with a date to find the first enabled rule that matches it
`
)
