package config

import (
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	MongoDB  MongoDBConfig
	Firebase FirebaseConfig
	Stripe   StripeConfig
	LogLevel string
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port           string
	AllowedOrigins []string
}

// MongoDBConfig holds MongoDB-specific configuration
type MongoDBConfig struct {
	URI      string
	Database string
}

// FirebaseConfig holds identity-provider configuration. With MockVerifier set
// the server accepts any well-formed ID token and trusts its email claim,
// which is only meant for local development.
type FirebaseConfig struct {
	CredentialsFile string
	MockVerifier    bool
}

// StripeConfig holds payment-provider configuration
type StripeConfig struct {
	SecretKey  string
	Currency   string
	SuccessURL string
	CancelURL  string
	MockAPI    bool
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// It's okay if config file is not found, we'll use environment variables
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// setDefaults sets default values for configuration
func setDefaults() {
	viper.SetDefault("Server.Port", "5000")
	viper.SetDefault("Server.AllowedOrigins", []string{"http://localhost:5173"})
	viper.SetDefault("MongoDB.URI", "mongodb://localhost:27017")
	viper.SetDefault("MongoDB.Database", "article_arena")
	viper.SetDefault("Firebase.MockVerifier", false)
	viper.SetDefault("Stripe.Currency", "usd")
	viper.SetDefault("Stripe.SuccessURL", "http://localhost:5173/payment/success?session_id={CHECKOUT_SESSION_ID}")
	viper.SetDefault("Stripe.CancelURL", "http://localhost:5173/payment/cancelled")
	viper.SetDefault("Stripe.MockAPI", false)
	viper.SetDefault("LogLevel", "info")
}
