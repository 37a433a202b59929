package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Model   ModelConfig   `mapstructure:"model"`
	History HistoryConfig `mapstructure:"history"`
}

type ServerConfig struct {
	Address       string `mapstructure:"address"`
	MaxTextLength int    `mapstructure:"max_text_length"`
	MaxBatchSize  int    `mapstructure:"max_batch_size"`
}

type ModelConfig struct {
	Dir string `mapstructure:"dir"`
}

type HistoryConfig struct {
	Capacity int `mapstructure:"capacity"`
}

func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	// Set default values
	v.SetDefault("server.address", ":5000")
	v.SetDefault("server.max_text_length", 1000)
	v.SetDefault("server.max_batch_size", 50)
	v.SetDefault("model.dir", "model")
	v.SetDefault("history.capacity", 100)

	// Enable environment variable support
	v.AutomaticEnv()

	// Read the config file
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
