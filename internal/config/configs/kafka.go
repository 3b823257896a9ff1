package configs

// Kafka configures publishing of visit events. Publishing is off unless
// Enabled is set.
type Kafka struct {
	Enabled  bool     `env:"ENABLED" envDefault:"false"`
	Brokers  []string `env:"BROKERS" envDefault:"localhost:9092" envSeparator:","`
	Topic    string   `env:"TOPIC" envDefault:"ad-visits"`
	ClientID string   `env:"CLIENT_ID" envDefault:"adrelay"`

	// QueueSize bounds the events waiting for the broker. Events beyond it
	// are dropped so redirects never wait on Kafka.
	QueueSize int `env:"QUEUE_SIZE" envDefault:"1024"`
}
