package kafka

import "time"

type PublisherConfig struct {
	Brokers      []string
	Topic        string
	WriteTimeout time.Duration
}
