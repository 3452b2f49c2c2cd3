package constants

const (
	APIPrefix   = "/api"
	HealthzPath = "/healthz"
)
