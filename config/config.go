package config

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	JWT      JWT
	Scoring  Scoring
}

type Server struct {
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type JWT struct {
	Secret     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

type Scoring struct {
	// SnapshotQuestions scores submissions against the answer rows a
	// candidate actually submitted instead of the exam's current question
	// list. Protects recorded percentages from later question edits.
	SnapshotQuestions bool
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("JWT_ACCESS_TTL", "15m")
	viper.SetDefault("JWT_REFRESH_TTL", "24h")
	viper.SetDefault("SCORING_SNAPSHOT_QUESTIONS", false)

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.JWT.Secret = viper.GetString("JWT_SECRET")
	config.JWT.AccessTTL = viper.GetDuration("JWT_ACCESS_TTL")
	config.JWT.RefreshTTL = viper.GetDuration("JWT_REFRESH_TTL")

	config.Scoring.SnapshotQuestions = viper.GetBool("SCORING_SNAPSHOT_QUESTIONS")

	log.Info().Str("port", config.Server.Port).Msg("Config loaded")
	return &config, nil
}
