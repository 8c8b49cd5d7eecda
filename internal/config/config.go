package config

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	ServerAddress  string
	GRPCAddress    string
	ServiceURL     string
	PageOrigin     string
	RequestTimeout time.Duration
	LogLevel       string
}

type jsonConfig struct {
	ServerAddress  string `json:"server_address"`
	GRPCAddress    string `json:"grpc_address"`
	ServiceURL     string `json:"service_url"`
	PageOrigin     string `json:"page_origin"`
	RequestTimeout string `json:"request_timeout"`
	LogLevel       string `json:"log_level"`
}

// NewConfig resolves gateway settings from defaults, an optional JSON file,
// flags and environment variables, in increasing order of priority.
func NewConfig() *Config {
	return load(true)
}

// NewClientConfig resolves the settings a one-shot client needs. The gateway
// listen addresses are neither registered as flags nor read from the
// environment.
func NewClientConfig() *Config {
	return load(false)
}

func load(gateway bool) *Config {
	cfg := &Config{
		ServerAddress: ":8080",
		ServiceURL:    "http://localhost:8000",
		LogLevel:      "info",
	}

	var (
		flags      Config
		configPath string
	)

	if gateway {
		flag.StringVar(&flags.ServerAddress, "a", cfg.ServerAddress, "HTTP gateway address (e.g. localhost:8888)")
		flag.StringVar(&flags.GRPCAddress, "g", "", "gRPC gateway address, disabled when empty")
	}
	flag.StringVar(&flags.ServiceURL, "s", cfg.ServiceURL, "Base URL of the shortening service")
	flag.StringVar(&flags.PageOrigin, "o", "", "Origin short URLs are shown under (e.g. https://sho.rt)")
	flag.DurationVar(&flags.RequestTimeout, "t", 0, "Timeout for calls to the shortening service, 0 for none")
	flag.StringVar(&flags.LogLevel, "l", cfg.LogLevel, "Log level")
	flag.StringVar(&configPath, "c", "", "Path to JSON config file")

	flag.Parse()

	if envConfig := os.Getenv("CONFIG"); envConfig != "" {
		configPath = envConfig
	}

	if configPath != "" {
		if err := cfg.loadJSON(configPath); err != nil {
			log.Warn().Err(err).Str("path", configPath).Msg("Ignoring config file")
		}
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "a":
			cfg.ServerAddress = flags.ServerAddress
		case "g":
			cfg.GRPCAddress = flags.GRPCAddress
		case "s":
			cfg.ServiceURL = flags.ServiceURL
		case "o":
			cfg.PageOrigin = flags.PageOrigin
		case "t":
			cfg.RequestTimeout = flags.RequestTimeout
		case "l":
			cfg.LogLevel = flags.LogLevel
		}
	})

	if gateway {
		if envServerAddress := os.Getenv("SERVER_ADDRESS"); envServerAddress != "" {
			cfg.ServerAddress = envServerAddress
		}

		if envGRPCAddress := os.Getenv("GRPC_ADDRESS"); envGRPCAddress != "" {
			cfg.GRPCAddress = envGRPCAddress
		}
	}

	if envServiceURL := os.Getenv("SERVICE_URL"); envServiceURL != "" {
		cfg.ServiceURL = envServiceURL
	}

	if envPageOrigin := os.Getenv("PAGE_ORIGIN"); envPageOrigin != "" {
		cfg.PageOrigin = envPageOrigin
	}

	if envTimeout := os.Getenv("REQUEST_TIMEOUT"); envTimeout != "" {
		if d, err := time.ParseDuration(envTimeout); err == nil {
			cfg.RequestTimeout = d
		} else {
			log.Warn().Err(err).Msg("Ignoring REQUEST_TIMEOUT")
		}
	}

	if envLogLevel := os.Getenv("LOG_LEVEL"); envLogLevel != "" {
		cfg.LogLevel = envLogLevel
	}

	return cfg
}

// Origin returns the configured page origin, or the service URL when none is set.
func (c *Config) Origin() string {
	if c.PageOrigin != "" {
		return c.PageOrigin
	}
	return c.ServiceURL
}

func (c *Config) loadJSON(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	if jc.ServerAddress != "" {
		c.ServerAddress = jc.ServerAddress
	}
	if jc.GRPCAddress != "" {
		c.GRPCAddress = jc.GRPCAddress
	}
	if jc.ServiceURL != "" {
		c.ServiceURL = jc.ServiceURL
	}
	if jc.PageOrigin != "" {
		c.PageOrigin = jc.PageOrigin
	}
	if jc.LogLevel != "" {
		c.LogLevel = jc.LogLevel
	}
	if jc.RequestTimeout != "" {
		d, err := time.ParseDuration(jc.RequestTimeout)
		if err != nil {
			return fmt.Errorf("parse request_timeout: %w", err)
		}
		c.RequestTimeout = d
	}

	return nil
}
