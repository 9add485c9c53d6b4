package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"zendo/types"
)

const (
	configName = ".zendo"
	envPrefix  = "ZENDO"
)

// GlobalAppConfig holds the global application configuration instance.
var GlobalAppConfig types.AppConfig

// validate caches struct info across config validations.
var validate = validator.New()

// InitConfig reads in config file and ENV variables if set.
func InitConfig() {
	// A .env next to the working directory is optional.
	_ = godotenv.Load()

	viper.SetEnvPrefix(envPrefix) // e.g. ZENDO_VERBOSE, ZENDO_LLM_APIKEY
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfgFileFlag := viper.GetString("config")
	if cfgFileFlag != "" {
		viper.SetConfigFile(cfgFileFlag)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)
		viper.AddConfigPath(".")
		viper.AddConfigPath(home)
		viper.SetConfigName(configName)
	}

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	} else {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if cfgFileFlag != "" {
				fmt.Fprintln(os.Stderr, "Error: Specified config file not found:", cfgFileFlag)
			}
		} else {
			fmt.Fprintln(os.Stderr, "Error reading config file:", viper.ConfigFileUsed(), "-", err)
		}
	}

	viper.SetDefault("data.dir", "")
	viper.SetDefault("data.file", "tasks.json")
	viper.SetDefault("data.format", "json")

	viper.SetDefault("llm.provider", "gemini")
	viper.SetDefault("llm.modelName", "gemini-2.5-flash")
	viper.SetDefault("llm.apiKey", "")
	viper.SetDefault("llm.temperature", 0.7)
	viper.SetDefault("llm.requestTimeoutSeconds", 60)

	viper.SetDefault("server.addr", "127.0.0.1:8787")

	viper.SetDefault("telemetry.enabled", false)

	if err := viper.Unmarshal(&GlobalAppConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Error unmarshaling config: %s\n", err)
		os.Exit(1)
	}

	// GEMINI_API_KEY is the conventional env var for the default provider.
	if GlobalAppConfig.LLM.APIKey == "" {
		GlobalAppConfig.LLM.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	GlobalAppConfig.LLM.Debug = GlobalAppConfig.LLM.Debug || viper.GetBool("verbose")

	if err := validate.Struct(&GlobalAppConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration validation error: %s\n", err)
		os.Exit(1)
	}
}

// GetConfig returns a pointer to the global types.AppConfig instance.
func GetConfig() *types.AppConfig {
	return &GlobalAppConfig
}
