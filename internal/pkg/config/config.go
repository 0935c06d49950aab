package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, Discord app
//   credentials, bot secret), security settings
// - default: Values common across all environments (timezone, timeout, page
//   size), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server     ServerConfig
	CORS       CORSConfig
	Log        LogConfig
	Discord    DiscordConfig
	Bot        BotConfig
	Session    SessionConfig
	Rewards    RewardsConfig
	Departures DeparturesConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/Zurich"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"3600"` // 1*60*60
}

type DiscordConfig struct {
	ClientID        string        `envconfig:"DISCORD_CLIENT_ID" required:"true"`
	ClientSecret    string        `envconfig:"DISCORD_CLIENT_SECRET" required:"true"`
	AuthURL         string        `envconfig:"DISCORD_AUTH_URL" default:"https://discord.com/api/oauth2/authorize"`
	TokenURL        string        `envconfig:"DISCORD_TOKEN_URL" default:"https://discord.com/api/oauth2/token"`
	APIBaseURL      string        `envconfig:"DISCORD_API_BASE_URL" default:"https://discord.com/api"`
	ExchangeTimeout time.Duration `envconfig:"DISCORD_EXCHANGE_TIMEOUT" default:"10s"`
}

type BotConfig struct {
	SecretToken string `envconfig:"BOT_SECRET_TOKEN" required:"true"`
}

type SessionConfig struct {
	TTL time.Duration `envconfig:"SESSION_TTL" default:"24h"`
}

type RewardsConfig struct {
	AdminUserIDs        []string `envconfig:"REWARDS_ADMIN_IDS"`
	DefaultFlightPoints int      `envconfig:"REWARDS_DEFAULT_FLIGHT_POINTS" default:"5"`
	LeaderboardPageSize int      `envconfig:"REWARDS_LEADERBOARD_PAGE_SIZE" default:"10"`
}

type DeparturesConfig struct {
	TimeZone string `envconfig:"DEPARTURES_TIMEZONE" default:"Europe/Zurich"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		CORS: CORSConfig{
			AllowOrigins:     []string{"http://localhost:3000", "http://localhost:8080"},
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Europe/Zurich",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 3600,
		},
		Discord: DiscordConfig{
			ClientID:        "test-client-id",
			ClientSecret:    "test-client-secret",
			AuthURL:         "https://discord.com/api/oauth2/authorize",
			TokenURL:        "https://discord.com/api/oauth2/token",
			APIBaseURL:      "https://discord.com/api",
			ExchangeTimeout: 2 * time.Second,
		},
		Bot: BotConfig{
			SecretToken: "test-bot-secret",
		},
		Session: SessionConfig{
			TTL: time.Hour,
		},
		Rewards: RewardsConfig{
			AdminUserIDs:        []string{"admin-1"},
			DefaultFlightPoints: 5,
			LeaderboardPageSize: 10,
		},
		Departures: DeparturesConfig{
			TimeZone: "Europe/Zurich",
		},
	}
}
