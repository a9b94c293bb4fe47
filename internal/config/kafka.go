package config

// Kafka configures the optional event stream. Addresses empty means eventing
// is disabled and the service runs without a producer or consumer.
type Kafka struct {
	Addresses []string `env:"KAFKA_ADDRESSES" envSeparator:","`
	Group     string   `env:"KAFKA_GROUP" envDefault:"storefront"`
}

func (k Kafka) Enabled() bool {
	return len(k.Addresses) > 0
}
