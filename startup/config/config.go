package config

import "os"

type Config struct {
	APIBaseURL    string
	JaegerAddress string
	LogFilePath   string
	Email         string
	Password      string
}

func NewConfig() *Config {
	return &Config{
		APIBaseURL:    os.Getenv("API_BASE_URL"),
		JaegerAddress: os.Getenv("JAEGER_ADDRESS"),
		LogFilePath:   os.Getenv("LOG_FILE_PATH"),
		Email:         os.Getenv("HOSTELHUB_EMAIL"),
		Password:      os.Getenv("HOSTELHUB_PASSWORD"),
	}
}
