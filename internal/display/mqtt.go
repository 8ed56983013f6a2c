// Package display pushes prayer tables to mosque screens over MQTT.
package display

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/masjidsite/internal/prayer"
)

const (
	topicPrefix    = "masjidsite/prayer-times/"
	publishQoS     = 1
	publishTimeout = 5 * time.Second
)

// Topic is where screens for zone subscribe.
func Topic(zone string) string {
	return topicPrefix + zone
}

// Publisher sends each fresh table as a retained message so a screen that
// connects later still receives the day's times.
type Publisher struct {
	client mqtt.Client
}

func NewPublisher(client mqtt.Client) *Publisher {
	return &Publisher{client: client}
}

// Connect dials brokerURL with automatic reconnects.
func Connect(brokerURL, clientID string) (mqtt.Client, error) {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(brokerURL)
	opts.SetClientID(clientID)
	opts.SetAutoReconnect(true)
	opts.SetConnectRetry(true)
	opts.SetConnectTimeout(10 * time.Second)
	opts.OnConnect = func(mqtt.Client) {
		log.Info().Str("broker", brokerURL).Msg("connected to MQTT broker")
	}
	opts.OnConnectionLost = func(_ mqtt.Client, err error) {
		log.Warn().Err(err).Str("broker", brokerURL).Msg("MQTT connection lost")
	}

	client := mqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(publishTimeout) {
		// SetConnectRetry keeps trying in the background
		log.Warn().Str("broker", brokerURL).Msg("MQTT broker not reachable yet, continuing")
		return client, nil
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker: %w", err)
	}
	return client, nil
}

func (p *Publisher) PublishTable(ctx context.Context, zone string, table *prayer.DailyTable) error {
	payload, err := json.Marshal(table)
	if err != nil {
		return err
	}

	token := p.client.Publish(Topic(zone), publishQoS, true, payload)
	select {
	case <-token.Done():
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(publishTimeout):
		return fmt.Errorf("publish to %s timed out", Topic(zone))
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", Topic(zone), err)
	}

	log.Debug().Str("topic", Topic(zone)).Msg("published prayer table")
	return nil
}

// Close disconnects, giving in-flight messages up to 250ms.
func (p *Publisher) Close() {
	p.client.Disconnect(250)
}

var _ prayer.Publisher = (*Publisher)(nil)
