// Package ui holds the terminal styling helpers shared by all commands.
package ui

import "github.com/charmbracelet/lipgloss"

// Color palette.
var (
	ColorSuccess = lipgloss.Color("#00D26A") // green  — confirmed, success
	ColorWarning = lipgloss.Color("#FFB800") // yellow — pending, warning
	ColorError   = lipgloss.Color("#FF4444") // red    — rejected, error
	ColorAddress = lipgloss.Color("#00B4D8") // cyan   — addresses, hashes
	ColorMeta    = lipgloss.Color("#555555") // dim gray — paths, metadata
	ColorAccent  = lipgloss.Color("#9B5DE5") // purple — networks, headers
)

// Base styles.
var (
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)
	StyleError   = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	StyleAddress = lipgloss.NewStyle().Foreground(ColorAddress)
	StyleMeta    = lipgloss.NewStyle().Foreground(ColorMeta)
	StyleAccent  = lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
)

// Banner returns the nile startup banner.
func Banner() string {
	art := `
  ███╗   ██╗██╗██╗     ███████╗
  ████╗  ██║██║██║     ██╔════╝
  ██╔██╗ ██║██║██║     █████╗
  ██║╚██╗██║██║██║     ██╔══╝
  ██║ ╚████║██║███████╗███████╗
  ╚═╝  ╚═══╝╚═╝╚══════╝╚══════╝`

	tagline := StyleMeta.Render("  StarkNet development workflows")
	return StyleAccent.Render(art) + "\n" + tagline + "\n"
}

// Success formats a success message.
func Success(msg string) string { return StyleSuccess.Render("✓ " + msg) }

// Warn formats a warning message.
func Warn(msg string) string { return StyleWarning.Render("⚠ " + msg) }

// Err formats an error message.
func Err(msg string) string { return StyleError.Render("✗ " + msg) }

// Hint formats a follow-up suggestion.
func Hint(msg string) string { return StyleMeta.Render("→ " + msg) }

// Addr formats an address or transaction hash.
func Addr(a string) string { return StyleAddress.Render(a) }

// Network formats a network name.
func Network(n string) string { return StyleAccent.Render(n) }

// Meta formats metadata text.
func Meta(m string) string { return StyleMeta.Render(m) }
