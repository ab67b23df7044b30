package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Transit.APIBase != "http://data.mobilites-m.fr/api" {
		t.Errorf("unexpected API base %q", cfg.Transit.APIBase)
	}
	if cfg.Transit.UpdateInterval != 20*time.Second {
		t.Errorf("expected 20s update interval, got %v", cfg.Transit.UpdateInterval)
	}
	if cfg.MQTT.TopicPrefix != "next-tramway" {
		t.Errorf("unexpected topic prefix %q", cfg.MQTT.TopicPrefix)
	}
	if cfg.HomeAssistant.EntityID != "sensor.next_tramway" {
		t.Errorf("unexpected entity id %q", cfg.HomeAssistant.EntityID)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("STOP_ID", "SEM:GENCLUSTER")
	t.Setenv("UPDATE_INTERVAL", "45s")
	t.Setenv("MQTT_BROKER", "tcp://broker.local:1883")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Transit.StopID != "SEM:GENCLUSTER" {
		t.Errorf("unexpected stop id %q", cfg.Transit.StopID)
	}
	if cfg.Transit.UpdateInterval != 45*time.Second {
		t.Errorf("expected 45s update interval, got %v", cfg.Transit.UpdateInterval)
	}
	if cfg.MQTT.Broker != "tcp://broker.local:1883" {
		t.Errorf("unexpected broker %q", cfg.MQTT.Broker)
	}
}

func TestTransitValidate(t *testing.T) {
	valid := TransitConfig{
		StopID:         "SEM:GENCLUSTER",
		UpdateInterval: 20 * time.Second,
		FetchTimeout:   10 * time.Second,
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}

	missing := valid
	missing.StopID = ""
	if err := missing.Validate(); err == nil {
		t.Error("expected an error for a missing stop id")
	}

	badInterval := valid
	badInterval.UpdateInterval = 0
	if err := badInterval.Validate(); err == nil {
		t.Error("expected an error for a non-positive interval")
	}
}
