package schema

import "strings"

// NormalizeExecRequest trims the line and resolves the theme.
// An empty theme resolves to fallback.
func NormalizeExecRequest(req ExecRequest, fallback ThemeName) (ExecRequest, error) {
	req.Line = strings.TrimSpace(req.Line)
	if req.Line == "" {
		return ExecRequest{}, ErrEmptyCommand
	}
	if strings.TrimSpace(string(req.Theme)) == "" {
		if fallback == "" {
			fallback = DefaultTheme
		}
		req.Theme = fallback
		return req, nil
	}
	theme, ok := NormalizeThemeName(string(req.Theme))
	if !ok {
		return ExecRequest{}, ErrUnknownTheme
	}
	req.Theme = theme
	return req, nil
}
