package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/viper"

	"zendo/internal/telemetry"
)

func isJSON() bool {
	return viper.GetBool("json")
}

func isVerbose() bool {
	return viper.GetBool("verbose")
}

func printJSON(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(output))
	return nil
}

// newTelemetry builds the telemetry client from config. Failures degrade
// to a no-op client; usage reporting must never break a command.
func newTelemetry() telemetry.Client {
	cfg := GetConfig().Telemetry
	if !cfg.Enabled || cfg.APIKey == "" {
		return telemetry.Noop{}
	}
	anonymousID, err := telemetry.AnonymousID(DataDir())
	if err != nil {
		LogError("telemetry identity", err)
		return telemetry.Noop{}
	}
	client, err := telemetry.New(true, cfg.APIKey, cfg.Host, anonymousID, version)
	if err != nil {
		LogError("telemetry init", err)
		return telemetry.Noop{}
	}
	return client
}
