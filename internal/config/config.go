package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Database struct {
		// Driver is "sqlite3" (embedded default) or "pgx" (postgres).
		Driver string `mapstructure:"driver"`
		DSN    string `mapstructure:"dsn"`
	} `mapstructure:"database"`

	Models struct {
		// Dir holds one JSON bundle per job field.
		Dir string `mapstructure:"dir"`
	} `mapstructure:"models"`

	Training struct {
		// RetrainThreshold: retrain a field on every Nth swipe.
		RetrainThreshold int `mapstructure:"retrain_threshold"`
		// MaxFeatures caps the TF-IDF vocabulary per model.
		MaxFeatures int `mapstructure:"max_features"`
		// MaxIter bounds the classifier fit.
		MaxIter int `mapstructure:"max_iter"`
	} `mapstructure:"training"`

	Server struct {
		Addr string `mapstructure:"addr"`
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`

	Redis struct {
		Address  string `mapstructure:"address"`
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"db"`
	} `mapstructure:"redis"`

	Worker struct {
		Concurrency int            `mapstructure:"concurrency"`
		Queues      map[string]int `mapstructure:"queues"`
	} `mapstructure:"worker"`
}

func setDefaults() {
	viper.SetDefault("database.driver", "sqlite3")
	viper.SetDefault("database.dsn", "resumemash.db")
	viper.SetDefault("models.dir", "models")
	viper.SetDefault("training.retrain_threshold", 10)
	viper.SetDefault("training.max_features", 5000)
	viper.SetDefault("training.max_iter", 1000)
	viper.SetDefault("server.addr", "localhost")
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("redis.address", "localhost:6379")
	viper.SetDefault("worker.concurrency", 2)
	viper.SetDefault("worker.queues", map[string]int{"training": 1})
}

// LoadConfig reads config.yaml from the working directory, falling back to
// defaults and environment variables (RESUMEMASH_DATABASE_DSN and friends).
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	setDefaults()

	viper.SetEnvPrefix("RESUMEMASH")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// Missing file is fine; defaults and env vars carry the config.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}
	return &config, nil
}
