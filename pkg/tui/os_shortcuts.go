package tui

import (
	"runtime"
	"strings"
)

// OSType represents the operating system type
type OSType int

const (
	OSMac OSType = iota
	OSLinux
	OSWindows
	OSUnknown
)

// GetOS returns the current operating system type
func GetOS() OSType {
	switch runtime.GOOS {
	case "darwin":
		return OSMac
	case "linux":
		return OSLinux
	case "windows":
		return OSWindows
	default:
		return OSUnknown
	}
}

// ShortcutKey represents a keyboard shortcut with OS-specific variations
type ShortcutKey struct {
	Mac     string
	Linux   string
	Windows string
	Default string // Fallback if OS-specific not defined
}

// Get returns the appropriate shortcut for the current OS
func (s ShortcutKey) Get() string {
	switch GetOS() {
	case OSMac:
		if s.Mac != "" {
			return s.Mac
		}
	case OSLinux:
		if s.Linux != "" {
			return s.Linux
		}
	case OSWindows:
		if s.Windows != "" {
			return s.Windows
		}
	}
	return s.Default
}

// Shortcuts contains the widget keyboard shortcuts with OS-specific variations.
// Calculator keys themselves come from the keypad table.
var Shortcuts = struct {
	// Navigation
	SwitchView ShortcutKey
	Next       ShortcutKey
	Previous   ShortcutKey

	// Slider playback
	TogglePlay ShortcutKey
	Reset      ShortcutKey

	// Calculator tape
	Copy      ShortcutKey
	ClearTape ShortcutKey

	// System
	Help ShortcutKey
	Quit ShortcutKey
}{
	SwitchView: ShortcutKey{
		Default: "tab",
	},
	Next: ShortcutKey{
		Default: "right",
	},
	Previous: ShortcutKey{
		Default: "left",
	},

	TogglePlay: ShortcutKey{
		Default: " ",
	},
	Reset: ShortcutKey{
		Default: "r",
	},

	Copy: ShortcutKey{
		Default: "y",
	},
	ClearTape: ShortcutKey{
		Mac:     "ctrl+x",
		Linux:   "alt+x", // Avoid terminal cut conflict
		Windows: "alt+x", // Consistent with Linux
		Default: "ctrl+x",
	},

	Help: ShortcutKey{
		Default: "?",
	},
	Quit: ShortcutKey{
		Default: "ctrl+c",
	},
}

// FormatShortcutForHelp formats a shortcut key for display in help text
func FormatShortcutForHelp(key ShortcutKey) string {
	shortcut := key.Get()
	switch shortcut {
	case " ":
		return "space"
	case "left":
		return "←"
	case "right":
		return "→"
	}
	// Use M- prefix for Alt on Linux/Windows (common terminal convention)
	if GetOS() == OSLinux || GetOS() == OSWindows {
		shortcut = strings.ReplaceAll(shortcut, "alt+", "M-")
	} else {
		shortcut = strings.ReplaceAll(shortcut, "alt+", "⌥")
	}
	shortcut = strings.ReplaceAll(shortcut, "ctrl+", "^")
	return shortcut
}
