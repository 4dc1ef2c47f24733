package httpapi

// Config defines HTTP API settings.
type Config struct {
	Addr string
	// BasePath mounts every route under a prefix, e.g. "/portfolio".
	BasePath string
}
