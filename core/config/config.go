package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/1ns0mn1a7/seller-apis/core/feed"
	"github.com/1ns0mn1a7/seller-apis/core/logger"
	"github.com/1ns0mn1a7/seller-apis/core/storage"
	"github.com/1ns0mn1a7/seller-apis/feature/market"
	"github.com/1ns0mn1a7/seller-apis/feature/ozon"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Feed holds configuration for the supplier feed loader.
	Feed feed.Config `mapstructure:"feed"`
	// Archive holds configuration for raw feed archiving.
	Archive storage.Config `mapstructure:"archive"`
	// Ozon holds credentials for the Ozon seller API.
	Ozon ozon.Config `mapstructure:"ozon"`
	// Market holds credentials and campaigns for the Yandex Market API.
	Market market.Config `mapstructure:"market"`
}

var validate = validator.New()

// ValidateOzon checks that the credentials an Ozon run needs are set.
func (c *Config) ValidateOzon() error {
	if err := validate.Struct(c.Ozon); err != nil {
		return fmt.Errorf("ozon config: %w", err)
	}
	return nil
}

// ValidateMarket checks that the token and both campaign contexts a
// Market run needs are set.
func (c *Config) ValidateMarket() error {
	if err := validate.Struct(c.Market); err != nil {
		return fmt.Errorf("market config: %w", err)
	}
	return nil
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	// Load .env file if it exists; missing is fine (e.g. cron host
	// configured through real environment variables).
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. OZON_API_KEY -> ozon.api_key)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
