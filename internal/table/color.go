package table

import (
	"github.com/fatih/color"
)

// ColorHelper provides utilities for coloring listing output
type ColorHelper struct {
	enabled bool
}

// NewColorHelper creates a new color helper
// Colors are enabled only when outputting to a terminal
func NewColorHelper() *ColorHelper {
	return &ColorHelper{
		enabled: !color.NoColor,
	}
}

// Success returns green colored text
func (c *ColorHelper) Success(text string) string {
	if !c.enabled {
		return text
	}
	return color.GreenString(text)
}

// Failure returns red colored text
func (c *ColorHelper) Failure(text string) string {
	if !c.enabled {
		return text
	}
	return color.RedString(text)
}

// Warning returns yellow colored text
func (c *ColorHelper) Warning(text string) string {
	if !c.enabled {
		return text
	}
	return color.YellowString(text)
}

// Muted returns gray colored text
func (c *ColorHelper) Muted(text string) string {
	if !c.enabled {
		return text
	}
	return color.New(color.FgHiBlack).Sprint(text)
}

// Header returns bold cyan text for section headers
func (c *ColorHelper) Header(text string) string {
	if !c.enabled {
		return text
	}
	return color.New(color.FgCyan, color.Bold).Sprint(text)
}

// FormatSize highlights empty result files, which usually mean the runner crashed mid-write
func (c *ColorHelper) FormatSize(size int64, text string) string {
	if size == 0 {
		return c.Warning(text)
	}
	return text
}

// FormatAge shows results from the last day in green and older ones muted
func (c *ColorHelper) FormatAge(recent bool, text string) string {
	if recent {
		return c.Success(text)
	}
	return c.Muted(text)
}
