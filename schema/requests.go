package schema

// ExecRequest runs one terminal line.
type ExecRequest struct {
	Line      string    `json:"line"`
	Theme     ThemeName `json:"theme,omitempty"`
	SessionID SessionID `json:"-"`
}

// ExecResponse reports the command result and the theme to apply.
type ExecResponse struct {
	Response Response  `json:"response"`
	Theme    ThemeName `json:"theme"`
}

// CompleteResponse lists autocomplete suggestions for a prefix.
type CompleteResponse struct {
	Suggestions []string `json:"suggestions"`
}

// ThemesResponse lists supported themes.
type ThemesResponse struct {
	Themes  []ThemeName `json:"themes"`
	Default ThemeName   `json:"default"`
}

// HealthResponse reports service readiness.
type HealthResponse struct {
	Status string              `json:"status"`
	Ready  map[Collection]bool `json:"ready"`
}
