package openapifx

type Config struct {
	Enabled bool

	// PublicHost and PublicPath override the host and base path advertised in the document.
	PublicHost string
	PublicPath string
}
