package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	ptime "github.com/yaa110/go-persian-calendar"
)

const tehran = "Asia/Tehran"

type Config struct {
	ServiceName     string
	HTTPPort        string
	GRPCPort        string
	DefaultLocale   string
	DefaultTimezone string
	RangeSeparator  string
	LogLevel        string
}

func Load() *Config {
	return &Config{
		ServiceName:     getEnv("SERVICE_NAME", "dateformat-service"),
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		GRPCPort:        getEnv("GRPC_PORT", "50060"),
		DefaultLocale:   getEnv("DEFAULT_LOCALE", "fa"),
		DefaultTimezone: getEnv("DEFAULT_TIMEZONE", tehran),
		RangeSeparator:  getRawEnv("RANGE_SEPARATOR", " – "),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
	}
}

// Location resolves DefaultTimezone. Tehran uses the calendar library's
// Iran zone so it does not depend on the host's tzdata.
func (c *Config) Location() (*time.Location, error) {
	name := strings.TrimSpace(c.DefaultTimezone)
	switch {
	case strings.EqualFold(name, tehran) || strings.EqualFold(name, "Iran"):
		return ptime.Iran(), nil
	case name == "" || strings.EqualFold(name, "UTC"):
		return time.UTC, nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", name, err)
	}
	return loc, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getRawEnv keeps surrounding whitespace, which is significant for separators.
func getRawEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}
