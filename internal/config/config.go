package config

import "time"

// Config holds server configuration values.
type Config struct {
	Addr              string        `mapstructure:"addr" yaml:"addr"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" yaml:"read_header_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
	LogLevel          string        `mapstructure:"log_level" yaml:"log_level"`
	Rooms             []string      `mapstructure:"rooms" yaml:"rooms"`
	DatabasePath      string        `mapstructure:"database_path" yaml:"database_path"`
	ContactRateLimit  int           `mapstructure:"contact_rate_limit" yaml:"contact_rate_limit"`
	SMTP              SMTPConfig    `mapstructure:"smtp" yaml:"smtp"`
}

// SMTPConfig holds settings for the contact-form mailer.
// An empty Host disables outbound mail; submissions are still stored.
type SMTPConfig struct {
	Host     string `mapstructure:"host" yaml:"host"`
	Port     int    `mapstructure:"port" yaml:"port"`
	Username string `mapstructure:"username" yaml:"username"`
	Password string `mapstructure:"password" yaml:"password"`
	To       string `mapstructure:"to" yaml:"to"`
}

// Default returns configuration with reasonable starter defaults.
func Default() Config {
	return Config{
		Addr:              ":5000",
		ReadHeaderTimeout: 5 * time.Second,
		ShutdownTimeout:   5 * time.Second,
		LogLevel:          "info",
		Rooms:             []string{"general", "homework", "events", "sports"},
		DatabasePath:      "campuschat.db",
		ContactRateLimit:  30,
		SMTP: SMTPConfig{
			Port: 465,
		},
	}
}
