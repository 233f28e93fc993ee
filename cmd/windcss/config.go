package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/yacobolo/windcss"
)

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	// Resolve config file path from flag
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".windcss.yaml"
	}

	// Load config file and env vars
	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence, only flags that were explicitly set)
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (WINDCSS_* prefix)
	if err := k.Load(env.Provider("WINDCSS_", ".", func(s string) string {
		// WINDCSS_BUILD_OUTPUT -> build.output
		// WINDCSS_BUILD_STRICT -> build.strict
		// WINDCSS_VERBOSE -> verbose
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "WINDCSS_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildBuildConfig constructs the library's Config struct from koanf state.
func buildBuildConfig() windcss.Config {
	config := windcss.Config{
		DarkMode: getStringWithFallback("dark-mode", "build.dark-mode", windcss.DarkModeMedia),
		NoShake:  getBoolWithFallback("no-shake", "build.no-shake", false),
	}

	// Handle list keys: check flag key first, then config key
	if paths := k.Strings("paths"); len(paths) > 0 {
		config.ScanPaths = paths
	} else if paths := k.Strings("build.paths"); len(paths) > 0 {
		config.ScanPaths = paths
	} else {
		config.ScanPaths = []string{"**/*.html", "**/*.templ", "**/*.go"}
	}

	if safelist := k.Strings("safelist"); len(safelist) > 0 {
		config.Safelist = safelist
	} else {
		config.Safelist = k.Strings("build.safelist")
	}

	if include := k.Strings("include"); len(include) > 0 {
		config.Include = include
	} else {
		config.Include = k.Strings("build.include")
	}

	return config
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}
