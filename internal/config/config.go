package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-core-fx/config"
	"github.com/samber/lo"
)

type http struct {
	Address     string   `koanf:"address"`
	ProxyHeader string   `koanf:"proxy_header"`
	Proxies     []string `koanf:"proxies"`

	CORS    corsConfig    `koanf:"cors"`
	OpenAPI openAPIConfig `koanf:"openapi"`
}

type corsConfig struct {
	AllowOrigins []string `koanf:"allow_origins"`
}

type openAPIConfig struct {
	Enabled    bool   `koanf:"enabled"`
	PublicHost string `koanf:"public_host"`
	PublicPath string `koanf:"public_path"`
}

type workspaceConfig struct {
	BaseDir    string        `koanf:"base_dir"`
	StaleAfter time.Duration `koanf:"stale_after"`
}

type gitConfig struct {
	Driver                  string        `koanf:"driver"`
	Binary                  string        `koanf:"binary"`
	Timeout                 time.Duration `koanf:"timeout"`
	ProbeTimeout            time.Duration `koanf:"probe_timeout"`
	MaxConcurrentOperations int           `koanf:"max_concurrent_operations"`
}

type scannerConfig struct {
	ExcludeDirs string `koanf:"exclude_dirs"`
}

type Config struct {
	HTTP http `koanf:"http"`

	Workspace workspaceConfig `koanf:"workspace"`
	Git       gitConfig       `koanf:"git"`
	Scanner   scannerConfig   `koanf:"scanner"`
}

func Default() Config {
	//nolint:exhaustruct,mnd //default values
	return Config{
		HTTP: http{
			Address:     "0.0.0.0:8080",
			ProxyHeader: "X-Forwarded-For",
			Proxies:     []string{},
			CORS: corsConfig{
				AllowOrigins: []string{"http://localhost:3000"},
			},
			OpenAPI: openAPIConfig{
				Enabled: true,
			},
		},

		Workspace: workspaceConfig{
			BaseDir:    "",
			StaleAfter: time.Hour,
		},

		Git: gitConfig{
			Driver:                  "go-git",
			Binary:                  "git",
			Timeout:                 2 * time.Minute,
			ProbeTimeout:            10 * time.Second,
			MaxConcurrentOperations: 4,
		},
	}
}

func New() (Config, error) {
	cfg := Default()

	options := []config.Option{}
	if yamlPath := os.Getenv("CONFIG_PATH"); yamlPath != "" {
		options = append(options, config.WithLocalYAML(yamlPath))
	}

	if err := config.Load(&cfg, options...); err != nil {
		return Config{}, fmt.Errorf("failed to load config: %w", err)
	}

	// URL is the frontend origin variable understood by earlier deployments.
	if origin := strings.TrimSpace(os.Getenv("URL")); origin != "" {
		cfg.HTTP.CORS.AllowOrigins = append(cfg.HTTP.CORS.AllowOrigins, origin)
	}
	cfg.HTTP.CORS.AllowOrigins = lo.Uniq(lo.Compact(cfg.HTTP.CORS.AllowOrigins))

	return cfg, nil
}
