package config

const defaultPort = 8080

var defaultRateLimit = RateLimit{
	Enabled: true,
	Limit:   100,
	Ticks:   10,
}

// DefaultPort returns the default HTTP port.
func DefaultPort() int {
	return defaultPort
}

// DefaultRateLimit returns the default admission limiter settings.
func DefaultRateLimit() RateLimit {
	return defaultRateLimit
}
