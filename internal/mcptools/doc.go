// Package mcptools exposes feeboard's workflows to agents as MCP tools.
//
// The tools mirror the dashboard: fee_recommend, fee_estimate, fee_compare,
// fee_live_status, fee_mining_target and fee_history. Arguments pass
// through the same validators as dashboard input, so an agent asking for
// 9 blocks gets 6 and a non-positive fee is rejected before any request.
// Results are the backend records encoded as indented JSON.
package mcptools
