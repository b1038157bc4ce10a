package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yacobolo/vitecn/internal/project"
)

var k = koanf.New(".")

// envKeys restores the hyphens of multi-word keys after "_" became ".".
var envKeys = strings.NewReplacer(
	"package.manager", "package-manager",
	"dry.run", "dry-run",
	"output.format", "output-format",
	"dev.packages", "dev-packages",
	"log.level", "log-level",
)

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".vitecn.yaml"
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence, only flags that were explicitly set).
	// Unset flags are dropped so their defaults cannot shadow config keys
	// with a different name, such as skip-install over install.skip.
	flags := cmd.Flags()
	if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		return f.Name, posflag.FlagVal(flags, f)
	}), nil); err != nil {
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

	// 2. Environment variables (VITECN_* prefix)
	if err := k.Load(env.Provider("VITECN_", ".", func(s string) string {
		// VITECN_INSTALL_SKIP -> install.skip
		// VITECN_PACKAGE_MANAGER -> package-manager
		// VITECN_VERBOSE -> verbose
		return envKeys.Replace(strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "VITECN_")),
			"_", ".",
		))
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// setupConfig is the resolved configuration of a setup run.
type setupConfig struct {
	Dir            string
	Language       project.Language
	Yes            bool
	PackageManager project.PackageManager
	Packages       []string
	DevPackages    []string
	SkipInstall    bool
	SkipInit       bool
	InitCommand    string
	DryRun         bool
	Timeout        time.Duration
	OutputFormat   string
	Verbose        bool
	LogLevel       string
	Quiet          bool
	Color          bool
}

// buildSetupConfig resolves the setup configuration from koanf state.
func buildSetupConfig() (setupConfig, error) {
	config := setupConfig{
		Dir:          getStringWithFallback("dir", "dir", "."),
		Yes:          getBoolWithFallback("yes", "yes", false),
		Packages:     getStringsWithFallback("packages", "install.packages", nil),
		SkipInstall:  getBoolWithFallback("skip-install", "install.skip", false),
		SkipInit:     getBoolWithFallback("skip-init", "init.skip", false),
		InitCommand:  getStringWithFallback("init-command", "init.command", ""),
		DryRun:       getBoolWithFallback("dry-run", "dry-run", false),
		Timeout:      getDurationWithFallback("timeout", "timeout", 0),
		OutputFormat: getStringWithFallback("output-format", "output-format", "text"),
		Verbose:      getBoolWithFallback("verbose", "verbose", false),
		LogLevel:     getStringWithFallback("log-level", "log-level", ""),
		Quiet:        getBoolWithFallback("quiet", "quiet", false),
		Color:        getBoolWithFallback("color", "color", false),
	}

	// An explicit empty list disables the dev install.
	if k.Exists("install.dev-packages") {
		config.DevPackages = getStringsWithFallback("dev-packages", "install.dev-packages", []string{})
	}

	if lang := getStringWithFallback("language", "language", ""); lang != "" {
		parsed, err := project.ParseLanguage(lang)
		if err != nil {
			return config, err
		}
		config.Language = parsed
	}

	if pm := getStringWithFallback("package-manager", "package-manager", ""); pm != "" {
		parsed, err := project.ParsePackageManager(pm)
		if err != nil {
			return config, err
		}
		config.PackageManager = parsed
	}

	return config, nil
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

// getDurationWithFallback checks the flag key first, then the config file key, then returns the default.
func getDurationWithFallback(flagKey, configKey string, defaultVal time.Duration) time.Duration {
	if k.Exists(flagKey) {
		return k.Duration(flagKey)
	}
	if k.Exists(configKey) {
		return k.Duration(configKey)
	}
	return defaultVal
}

// getStringsWithFallback checks the flag key first, then the config file key,
// then returns the default. A plain string value (as set from the
// environment) is split on whitespace.
func getStringsWithFallback(flagKey, configKey string, defaultVal []string) []string {
	for _, key := range []string{flagKey, configKey} {
		if !k.Exists(key) {
			continue
		}
		if s, ok := k.Get(key).(string); ok {
			return strings.Fields(s)
		}
		return k.Strings(key)
	}
	return defaultVal
}
