package schema

import "strings"

// DefaultTheme is the theme a fresh terminal starts with.
const DefaultTheme ThemeName = "neon-green"

// Theme names in cycle order.
const (
	ThemeNeonGreen  ThemeName = "neon-green"
	ThemeMatrixBlue ThemeName = "matrix-blue"
	ThemeAmberCRT   ThemeName = "amber-crt"
)

var themeNames = []ThemeName{
	ThemeNeonGreen,
	ThemeMatrixBlue,
	ThemeAmberCRT,
}

// AvailableThemes returns the supported theme names in cycle order.
func AvailableThemes() []ThemeName {
	out := make([]ThemeName, len(themeNames))
	copy(out, themeNames)
	return out
}

// NextTheme returns the theme after current in the cycle.
// Unknown themes advance to the first theme.
func NextTheme(current ThemeName) ThemeName {
	idx := -1
	for i, name := range themeNames {
		if name == current {
			idx = i
			break
		}
	}
	return themeNames[(idx+1)%len(themeNames)]
}

// DisplayName renders a theme for humans, e.g. "NEON GREEN".
func (t ThemeName) DisplayName() string {
	return strings.ToUpper(strings.Replace(string(t), "-", " ", 1))
}

// Valid reports whether t is a supported theme.
func (t ThemeName) Valid() bool {
	for _, name := range themeNames {
		if name == t {
			return true
		}
	}
	return false
}

// NormalizeThemeName returns a canonical theme name if supported.
func NormalizeThemeName(name string) (ThemeName, bool) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.ReplaceAll(normalized, "_", "-")
	normalized = strings.ReplaceAll(normalized, " ", "-")
	switch normalized {
	case "neon-green", "neon", "green":
		return ThemeNeonGreen, true
	case "matrix-blue", "matrix", "blue":
		return ThemeMatrixBlue, true
	case "amber-crt", "amber", "crt":
		return ThemeAmberCRT, true
	default:
		return "", false
	}
}
