// Package mqtt publishes display payloads as retained messages, so a sign
// that (re)connects immediately receives the last known view.
package mqtt

import (
	"fmt"
	"time"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/WinteruOfficiel/next-tramway/internal/common/config"
	"github.com/WinteruOfficiel/next-tramway/internal/common/logger"
)

const (
	connectTimeout = 10 * time.Second
	publishTimeout = 5 * time.Second
	// at-least-once: a retained display frame must survive broker
	// reconnects
	publishQoS = 1
)

type Publisher struct {
	client pahomqtt.Client
	logger logger.Logger
}

func NewPublisher(cfg config.MQTTConfig, log logger.Logger) (*Publisher, error) {
	opts := pahomqtt.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(cfg.ClientID).
		SetAutoReconnect(true).
		SetConnectTimeout(connectTimeout)
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}
	opts.SetOnConnectHandler(func(pahomqtt.Client) {
		log.Info("Connected to MQTT broker", "broker", cfg.Broker)
	})
	opts.SetConnectionLostHandler(func(_ pahomqtt.Client, err error) {
		log.Warn("MQTT connection lost, reconnecting", "broker", cfg.Broker, "error", err)
	})

	client := pahomqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(connectTimeout) {
		return nil, fmt.Errorf("timed out connecting to MQTT broker %s", cfg.Broker)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("connecting to MQTT broker %s: %w", cfg.Broker, err)
	}

	return &Publisher{client: client, logger: log}, nil
}

// Publish sends payload to topic as a retained message
func (p *Publisher) Publish(topic, payload string) error {
	token := p.client.Publish(topic, publishQoS, true, payload)
	if !token.WaitTimeout(publishTimeout) {
		return fmt.Errorf("publish to %s timed out", topic)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("publishing to %s: %w", topic, err)
	}
	p.logger.Debug("Published display message", "topic", topic, "bytes", len(payload))
	return nil
}

// Close disconnects from the broker, allowing in-flight messages to drain
func (p *Publisher) Close() {
	p.client.Disconnect(250)
}
