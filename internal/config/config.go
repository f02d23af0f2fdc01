// Package config reads the runtime configuration from the environment.
//
// A .env file in the working directory is loaded first if it exists.
// Variables already set in the environment always take precedence over it.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var ErrInvalidAPIURL = errors.New("environment variable API_URL must be a valid absolute URL")

// Database holds the connection settings for PostgreSQL.
type Database struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
}

// Config is the complete runtime configuration.
type Config struct {
	APIURL           *url.URL
	Port             string
	GinMode          string
	LogFormat        string
	CORSAllowOrigins []string
	EnablePprof      bool
	DataDir          string
	DefaultLanguage  string
	Database         Database
}

// Load reads the configuration. If no files are passed, ".env" is tried.
// Missing files are not an error.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("could not load environment file: %w", err)
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("API_URL", "http://localhost:8080/api")
	v.SetDefault("PORT", "8080")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("LOG_FORMAT", "")
	v.SetDefault("CORS_ALLOW_ORIGINS", "")
	v.SetDefault("ENABLE_PPROF", false)
	v.SetDefault("DATA_DIR", "data")
	v.SetDefault("DEFAULT_LANGUAGE", "ja")
	v.SetDefault("DB_HOST", "")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "kakeibo")

	apiURL, err := url.Parse(v.GetString("API_URL"))
	if err != nil || apiURL.Scheme == "" || apiURL.Host == "" {
		return Config{}, ErrInvalidAPIURL
	}

	return Config{
		APIURL:           apiURL,
		Port:             v.GetString("PORT"),
		GinMode:          v.GetString("GIN_MODE"),
		LogFormat:        v.GetString("LOG_FORMAT"),
		CORSAllowOrigins: strings.Fields(v.GetString("CORS_ALLOW_ORIGINS")),
		EnablePprof:      v.GetBool("ENABLE_PPROF"),
		DataDir:          v.GetString("DATA_DIR"),
		DefaultLanguage:  v.GetString("DEFAULT_LANGUAGE"),
		Database: Database{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetInt("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
		},
	}, nil
}

// UsePostgres reports if a PostgreSQL server is configured.
func (c Config) UsePostgres() bool {
	return c.Database.Host != ""
}

// SQLitePath is the path of the SQLite database file.
func (c Config) SQLitePath() string {
	return filepath.Join(c.DataDir, "gorm.db")
}

// DSN returns the PostgreSQL connection string.
func (d Database) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable", d.Host, d.Port, d.User, d.Password, d.Name)
}
