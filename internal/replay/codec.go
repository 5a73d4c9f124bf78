package replay

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/tui-dodge/internal/config"
)

// EncodeEvents packs an event log into a compact blob.
func EncodeEvents(events []Event) ([]byte, error) {
	data, err := msgpack.Marshal(events)
	if err != nil {
		return nil, fmt.Errorf("replay: cannot encode events: %w", err)
	}
	return data, nil
}

// DecodeEvents unpacks a blob produced by EncodeEvents.
func DecodeEvents(data []byte) ([]Event, error) {
	var events []Event
	if err := msgpack.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("replay: cannot decode events: %w", err)
	}
	return events, nil
}

// EncodeConfig packs the configuration a recording was made with.
func EncodeConfig(cfg config.DodgeConfig) ([]byte, error) {
	data, err := msgpack.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("replay: cannot encode config: %w", err)
	}
	return data, nil
}

// DecodeConfig unpacks a blob produced by EncodeConfig.
func DecodeConfig(data []byte) (config.DodgeConfig, error) {
	var cfg config.DodgeConfig
	if err := msgpack.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("replay: cannot decode config: %w", err)
	}
	return cfg, nil
}
