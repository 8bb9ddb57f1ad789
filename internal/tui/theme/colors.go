// Package theme holds the color palette shared by all TUI components.
package theme

const (
	Background     = "#1A202C"
	Highlight      = "#63B3ED"
	Subtle         = "#718096"
	Normal         = "#E2E8F0"
	Create         = "#68D391"
	SelectedBorder = "#63B3ED"
	CardBg         = "#2D3748"
	Overdue        = "#FC8181"
	InfoFg         = "#BEE3F8"
	ErrorFg        = "#FED7D7"
	ErrorBg        = "#742A2A"
)
