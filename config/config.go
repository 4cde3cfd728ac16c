package config

import (
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	Redis    Redis
	Gemini   Gemini
	Quran    Quran
	Log      Log

	PromptTemplatePath string
	AutoMigrate        bool
}

type Server struct {
	Port               string
	CORSAllowedOrigins []string
}

type Database struct {
	Host            string
	Port            string
	User            string
	Password        string `json:"-"`
	Name            string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// DSN renders the libpq keyword/value connection string used by the postgres driver.
func (d Database) DSN() string {
	return "host=" + d.Host +
		" user=" + d.User +
		" password=" + d.Password +
		" dbname=" + d.Name +
		" port=" + d.Port +
		" sslmode=" + d.SSLMode
}

type Redis struct {
	URL string `json:"-"`
	TTL time.Duration
}

// Enabled reports whether the exam cache should be wired.
func (r Redis) Enabled() bool {
	return strings.TrimSpace(r.URL) != ""
}

type Gemini struct {
	APIKey         string `json:"-"`
	Model          string
	Temperature    float32
	CandidateCount int32
}

type Quran struct {
	BaseURL string
	Edition string
	Timeout time.Duration
}

type Log struct {
	Level  string
	Pretty bool
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", "8000")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:8080")
	v.SetDefault("DATABASE_HOST", "localhost")
	v.SetDefault("DATABASE_PORT", "5432")
	v.SetDefault("DATABASE_SSLMODE", "disable")
	v.SetDefault("DATABASE_MAX_OPEN_CONNS", 5)
	v.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	v.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")
	v.SetDefault("CACHE_TTL", "1h")
	v.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
	v.SetDefault("GEMINI_TEMPERATURE", 0.7)
	v.SetDefault("QURAN_API_BASE_URL", "https://api.alquran.cloud/v1/ayah")
	v.SetDefault("QURAN_API_EDITION", "quran-indopak")
	v.SetDefault("HTTP_CLIENT_TIMEOUT", "15s")
	v.SetDefault("LOG_LEVEL", "debug")
	v.SetDefault("LOG_PRETTY", true)
	v.SetDefault("AUTO_MIGRATE", true)
}

func NewConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	var config Config

	config.Server.Port = v.GetString("SERVER_PORT")
	config.Server.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))

	config.Database.Host = v.GetString("DATABASE_HOST")
	config.Database.Port = v.GetString("DATABASE_PORT")
	config.Database.User = v.GetString("DATABASE_USER")
	config.Database.Password = v.GetString("DATABASE_PASSWORD")
	config.Database.Name = v.GetString("DATABASE_NAME")
	config.Database.SSLMode = v.GetString("DATABASE_SSLMODE")
	config.Database.MaxOpenConns = v.GetInt("DATABASE_MAX_OPEN_CONNS")
	config.Database.MaxIdleConns = v.GetInt("DATABASE_MAX_IDLE_CONNS")
	config.Database.ConnMaxLifetime = v.GetDuration("DATABASE_CONN_MAX_LIFETIME")

	config.Redis.URL = v.GetString("REDIS_URL")
	config.Redis.TTL = v.GetDuration("CACHE_TTL")

	config.Gemini.APIKey = v.GetString("GEMINI_API_KEY")
	config.Gemini.Model = v.GetString("GEMINI_MODEL")
	config.Gemini.Temperature = float32(v.GetFloat64("GEMINI_TEMPERATURE"))
	config.Gemini.CandidateCount = 1

	config.Quran.BaseURL = strings.TrimRight(v.GetString("QURAN_API_BASE_URL"), "/")
	config.Quran.Edition = v.GetString("QURAN_API_EDITION")
	config.Quran.Timeout = v.GetDuration("HTTP_CLIENT_TIMEOUT")

	config.Log.Level = v.GetString("LOG_LEVEL")
	config.Log.Pretty = v.GetBool("LOG_PRETTY")

	config.PromptTemplatePath = v.GetString("PROMPT_TEMPLATE_PATH")
	config.AutoMigrate = v.GetBool("AUTO_MIGRATE")

	log.Info().Interface("config", config).Msg("Config loaded")
	return &config
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
