package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Game     GameConfig     `mapstructure:"game"`
	Words    WordsConfig    `mapstructure:"words"`
	Database DatabaseConfig `mapstructure:"database"`
}

type ServerConfig struct {
	HTTPAddress    string `mapstructure:"http_address"`
	RPCAddress     string `mapstructure:"rpc_address"`
	MonitorAddress string `mapstructure:"monitor_address"`
}

type GameConfig struct {
	// OfferCount is how many words the drawer gets to choose from.
	OfferCount int `mapstructure:"offer_count"`
	// NegotiationTimeout bounds the start and round ack phases.
	// Zero disables the deadline.
	NegotiationTimeout time.Duration `mapstructure:"negotiation_timeout"`
}

type WordsConfig struct {
	// Source is either "static" (use Static below) or "postgres".
	Source   string   `mapstructure:"source"`
	Language string   `mapstructure:"language"`
	Static   []string `mapstructure:"static"`
}

type DatabaseConfig struct {
	Postgres PostgresConfig `mapstructure:"postgres"`
}

type PostgresConfig struct {
	// Driver picks the store implementation: "gorm" (default) or
	// "sql" for plain database/sql.
	Driver   string `mapstructure:"driver"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
}

func LoadConfig(path string) (config *Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetDefault("server.http_address", ":8080")
	viper.SetDefault("server.rpc_address", ":8081")
	viper.SetDefault("server.monitor_address", ":9090")
	viper.SetDefault("game.offer_count", 3)
	viper.SetDefault("game.negotiation_timeout", 30*time.Second)
	viper.SetDefault("words.source", "static")
	viper.SetDefault("words.language", "en")
	viper.SetDefault("database.postgres.driver", "gorm")

	viper.AutomaticEnv()

	err = viper.ReadInConfig()
	if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	return
}
