package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// NewViper reads config.json when present and lets environment variables
// override every key (DATABASE_HOST overrides database.host, etc).
func NewViper() *viper.Viper {
	config := viper.New()
	config.SetConfigName("config")
	config.SetConfigType("json")
	config.AddConfigPath("./")
	config.AddConfigPath("./../")

	if err := config.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			panic(fmt.Errorf("failed to read config file: %w", err))
		}
	}

	config.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	config.AutomaticEnv()

	return config
}
