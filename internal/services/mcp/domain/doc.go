// Package domain exposes darts checkout operations as MCP tools and resources.
//
// Handlers are thin: they parse labels into board targets, call the throw
// simulator or the checkout advisor, and return JSON-friendly views so MCP
// clients never see internal types.
package domain
