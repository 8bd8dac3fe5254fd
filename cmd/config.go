package cmd

import "time"

// Config carries everything the composition root needs to wire the
// application: database connection, HTTP port, Kafka topic, and the
// stale-order sweep window.
type Config struct {
	HTTPPort              string
	DBHost                string
	DBPort                string
	DBUser                string
	DBPassword            string
	DBName                string
	DBSslMode             string
	KafkaHost             string
	KafkaOrderEventsTopic string
	StaleOrderMaxAge      time.Duration
}
