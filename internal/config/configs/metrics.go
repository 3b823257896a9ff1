package configs

// Metrics configures the Prometheus endpoint.
type Metrics struct {
	Enabled   bool   `env:"ENABLED" envDefault:"true"`
	Namespace string `env:"NAMESPACE" envDefault:"adrelay"`
}
