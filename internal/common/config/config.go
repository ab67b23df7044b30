package config

import (
	"fmt"
	"os"
	"time"
)

type Config struct {
	Transit       TransitConfig
	MQTT          MQTTConfig
	HomeAssistant HomeAssistantConfig
	Logging       LoggingConfig
	LinesPath     string
}

// TransitConfig for the upstream stop-times API
type TransitConfig struct {
	APIBase        string
	StopID         string
	OriginHeader   string
	UpdateInterval time.Duration
	FetchTimeout   time.Duration
}

// MQTTConfig for the display-sign message sink
type MQTTConfig struct {
	Broker      string // empty disables the MQTT sink
	ClientID    string
	Username    string
	Password    string
	TopicPrefix string
}

// HomeAssistantConfig for the state-entity sink
type HomeAssistantConfig struct {
	URL      string // empty disables the state sink
	Token    string
	EntityID string
}

type LoggingConfig struct {
	Level    string
	FilePath string
}

func Load() (*Config, error) {
	cfg := &Config{
		Transit: TransitConfig{
			APIBase:        getEnv("TRANSIT_API_BASE", "http://data.mobilites-m.fr/api"),
			StopID:         getEnv("STOP_ID", ""),
			OriginHeader:   getEnv("ORIGIN_HEADER", "http://localhost:"),
			UpdateInterval: getDurationEnv("UPDATE_INTERVAL", 20*time.Second),
			FetchTimeout:   getDurationEnv("FETCH_TIMEOUT", 10*time.Second),
		},
		MQTT: MQTTConfig{
			Broker:      getEnv("MQTT_BROKER", ""),
			ClientID:    getEnv("MQTT_CLIENT_ID", "next-tramway"),
			Username:    getEnv("MQTT_USERNAME", ""),
			Password:    getEnv("MQTT_PASSWORD", ""),
			TopicPrefix: getEnv("MQTT_TOPIC_PREFIX", "next-tramway"),
		},
		HomeAssistant: HomeAssistantConfig{
			URL:      getEnv("HA_URL", ""),
			Token:    getEnv("HA_TOKEN", ""),
			EntityID: getEnv("HA_ENTITY_ID", "sensor.next_tramway"),
		},
		Logging: LoggingConfig{
			Level:    getEnv("LOG_LEVEL", "info"),
			FilePath: getEnv("LOG_FILE", "next-tramway.log"),
		},
		LinesPath: getEnv("LINES_CONFIG", "lines.yml"),
	}

	return cfg, nil
}

func (c *TransitConfig) Validate() error {
	if c.StopID == "" {
		return fmt.Errorf("STOP_ID is required")
	}
	if c.UpdateInterval <= 0 {
		return fmt.Errorf("update interval must be positive")
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("fetch timeout must be positive")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
