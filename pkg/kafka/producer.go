package kafka

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/white/fluxx-sales/config"
	"go.uber.org/zap"
)

// Producer publishes JSON messages. Delivery is asynchronous; failed
// deliveries are logged by a background reader of the events channel.
type Producer struct {
	producer *kafka.Producer
	logger   *zap.Logger
	done     chan struct{}
}

// ConfigMap translates the application's Kafka settings into librdkafka keys.
func ConfigMap(cfg config.KafkaConfig) *kafka.ConfigMap {
	configMap := &kafka.ConfigMap{
		"bootstrap.servers": strings.Join(cfg.Brokers, ","),
		"client.id":         cfg.ClientID,
		"acks":              "all",
	}

	if cfg.Username != "" && cfg.Password != "" {
		_ = configMap.SetKey("sasl.mechanism", strings.ToUpper(cfg.SASLMechanism))
		_ = configMap.SetKey("sasl.username", cfg.Username)
		_ = configMap.SetKey("sasl.password", cfg.Password)

		if cfg.SSL {
			_ = configMap.SetKey("security.protocol", "SASL_SSL")
		} else {
			_ = configMap.SetKey("security.protocol", "SASL_PLAINTEXT")
		}
	}
	return configMap
}

func NewProducer(cfg config.KafkaConfig, logger *zap.Logger) (*Producer, error) {
	producer, err := kafka.NewProducer(ConfigMap(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	p := &Producer{producer: producer, logger: logger, done: make(chan struct{})}
	go p.watchDeliveries()
	return p, nil
}

func (p *Producer) watchDeliveries() {
	defer close(p.done)
	for e := range p.producer.Events() {
		if m, ok := e.(*kafka.Message); ok && m.TopicPartition.Error != nil {
			p.logger.Error("Kafka delivery failed",
				zap.String("topic", *m.TopicPartition.Topic),
				zap.Error(m.TopicPartition.Error))
		}
	}
}

// PublishJSON marshals data and enqueues it on topic under key.
func (p *Producer) PublishJSON(topic, key string, data interface{}) error {
	value, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	message := &kafka.Message{
		TopicPartition: kafka.TopicPartition{
			Topic:     &topic,
			Partition: kafka.PartitionAny,
		},
		Key:   []byte(key),
		Value: value,
	}
	return p.producer.Produce(message, nil)
}

// Close flushes pending messages for up to five seconds and shuts down.
func (p *Producer) Close() {
	if p.producer == nil {
		return
	}
	p.producer.Flush(5000)
	p.producer.Close()
	<-p.done
}
