package main

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Storage struct {
		Database string `yaml:"database"`
	} `yaml:"storage"`
	API struct {
		Port string `yaml:"port"`
		Key  string `yaml:"key"`
	} `yaml:"api"`
	Archive struct {
		Enabled   bool   `yaml:"enabled"`
		Bucket    string `yaml:"bucket"`
		Prefix    string `yaml:"prefix"`
		Region    string `yaml:"region"`
		Endpoint  string `yaml:"endpoint"`
		AccessKey string `yaml:"access_key"`
		SecretKey string `yaml:"secret_key"`
	} `yaml:"archive"`
}

func LoadConfig() *Config {
	configPath := "config.yaml"
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		configPath = envPath
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		log.Printf("Failed to read config file, using defaults: %v", err)
		return defaultConfig()
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		log.Printf("Failed to parse config file, using defaults: %v", err)
		return defaultConfig()
	}

	// Override API key from environment variable if set
	if envAPIKey := os.Getenv("CHATFS_API_KEY"); envAPIKey != "" {
		config.API.Key = envAPIKey
	}

	if config.API.Key == "" {
		log.Fatal("API key must be set via CHATFS_API_KEY environment variable or config file")
	}

	return &config
}

func defaultConfig() *Config {
	apiKey := os.Getenv("CHATFS_API_KEY")
	if apiKey == "" {
		log.Fatal("API key must be set via CHATFS_API_KEY environment variable or config file")
	}

	config := &Config{}
	config.Storage.Database = "./chatfs.db"
	config.API.Port = "8080"
	config.API.Key = apiKey
	return config
}
