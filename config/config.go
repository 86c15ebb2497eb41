package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Gateway GatewayConfig
	Server  ServerConfig
	Redis   RedisConfig
}

// GatewayConfig carrega as credenciais da GestaoPay. As chaves nunca
// devem aparecer em logs.
type GatewayConfig struct {
	PublicKey string
	SecretKey string
	BaseURL   string
}

type ServerConfig struct {
	Port string
}

type RedisConfig struct {
	URL string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	return &Config{
		Gateway: GatewayConfig{
			PublicKey: os.Getenv("GESTAOPAY_PUBLIC_KEY"),
			SecretKey: os.Getenv("GESTAOPAY_SECRET_KEY"),
			BaseURL:   getEnv("GESTAOPAY_API_URL", "https://api.gestaopay.com.br"),
		},
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
		},
		Redis: RedisConfig{
			// Vazio desativa o recorder de diagnóstico
			URL: os.Getenv("REDIS_URL"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}
