package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	AppEnv         string `mapstructure:"APP_ENV"`
	Port           string `mapstructure:"PORT"`
	DatabaseURL    string `mapstructure:"DATABASE_URL"`
	SessionSecret  string `mapstructure:"SESSION_SECRET"`
	MigrationsPath string `mapstructure:"MIGRATIONS_PATH"`
}

func LoadConfig() (config Config, err error) {
	viper.SetDefault("APP_ENV", "local")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DATABASE_URL", "sqlite://gonotes.db")
	viper.SetDefault("SESSION_SECRET", "dev-secret-change-me-1234567890ab")
	viper.SetDefault("MIGRATIONS_PATH", "")

	viper.AutomaticEnv()

	err = viper.Unmarshal(&config)
	if err != nil {
		log.Printf("unable to decode into struct, %v", err)
		return
	}

	return
}
