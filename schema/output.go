package schema

// Line markers let formatters tag transcript lines for themed renderers.
// Plain renderers strip them.

// HeaderMarker prefixes transcript entry headers ("[time] prompt command").
const HeaderMarker = "\x1a"

// ErrorMarker prefixes error response lines.
const ErrorMarker = "\x1f"

// ArtMarker prefixes ascii-art lines (centred, no wrapping).
const ArtMarker = "\x1c"

// StatsTitleMarker prefixes the title line of a stats response.
const StatsTitleMarker = "\x1d"

// StatBarMarker prefixes a stats row line.
const StatBarMarker = "\x1e"

// BannerMarker prefixes welcome banner lines.
const BannerMarker = "\x16"

// Markers lists every line marker.
func Markers() []string {
	return []string{HeaderMarker, ErrorMarker, ArtMarker, StatsTitleMarker, StatBarMarker, BannerMarker}
}
