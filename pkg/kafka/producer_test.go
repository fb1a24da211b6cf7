package kafka

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/white/fluxx-sales/config"
)

func TestConfigMap(t *testing.T) {
	t.Run("plaintext", func(t *testing.T) {
		m := ConfigMap(config.KafkaConfig{Brokers: []string{"a:9092", "b:9092"}, ClientID: "fluxx"})

		v, err := m.Get("bootstrap.servers", nil)
		require.NoError(t, err)
		assert.Equal(t, "a:9092,b:9092", v)

		v, err = m.Get("security.protocol", nil)
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("sasl over ssl", func(t *testing.T) {
		m := ConfigMap(config.KafkaConfig{
			Brokers:       []string{"a:9092"},
			Username:      "u",
			Password:      "p",
			SSL:           true,
			SASLMechanism: "scram-sha-512",
		})

		v, err := m.Get("sasl.mechanism", nil)
		require.NoError(t, err)
		assert.Equal(t, "SCRAM-SHA-512", v)

		v, err = m.Get("security.protocol", nil)
		require.NoError(t, err)
		assert.Equal(t, "SASL_SSL", v)
	})
}
