package configs

// HTTP defines configuration for the HTTP server. The Port specifies which
// port the server will bind to. AllowedOrigins configures CORS for the
// browser wizard; the default permits any origin, which suits local use.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`

	// AllowedOrigins lists origins permitted by the CORS middleware.
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envDefault:"*"`
}
