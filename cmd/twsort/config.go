package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/tidwall/jsonc"

	"github.com/yacobolo/twsort"
	"github.com/yacobolo/twsort/internal/runner"
)

const defaultConfigFile = ".twsort.yaml"

var k = koanf.New(".")

// configFile is the path of the config file merged into k, if any.
var configFile string

// envConfigKeys maps env names (lower-cased, "_" as "-") onto config file
// keys. Other TWSORT_* variables set the flag of the same name.
var envConfigKeys = map[string]string{
	"allow-duplicates": "allowDuplicates",
	"sort-order":       "sortOrder",
	"ignored-files":    "ignoredFiles",
	"output-css-file":  "outputCssFile",
	"jobs":             "jobs",
}

// envListKeys hold whitespace separated lists.
var envListKeys = map[string]bool{
	"sortOrder":    true,
	"ignoredFiles": true,
}

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	k = koanf.New(".")

	// Resolve config file path from flag. Only an explicit path must exist.
	configPath, _ := cmd.Flags().GetString("config-file")
	if configPath == "" {
		configPath = defaultConfigFile
	}

	if err := loadConfigFromPath(configPath, cmd.Flags().Changed("config-file")); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence: only flags that were explicitly set)
	if err := k.Load(posflag.ProviderWithFlag(cmd.Flags(), ".", k, changedFlag(cmd.Flags())), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// changedFlag keeps unset flags out of koanf so their defaults never hide
// config file or environment values.
func changedFlag(fs *pflag.FlagSet) func(*pflag.Flag) (string, interface{}) {
	return func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		return f.Name, posflag.FlagVal(fs, f)
	}
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string, required bool) error {
	configFile = ""

	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(configProvider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
		configFile = configPath
	} else if required {
		return fmt.Errorf("reading config file %s (make sure it exists): %w", configPath, err)
	}

	// 2. Environment variables (TWSORT_* prefix)
	if err := k.Load(env.ProviderWithValue("TWSORT_", ".", envKeyValue), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// envKeyValue maps a TWSORT_* variable onto its koanf key.
//
//	TWSORT_SORT_ORDER="b a"  -> sortOrder: [b a]
//	TWSORT_CUSTOM_REGEX=...  -> custom-regex
func envKeyValue(name, value string) (string, interface{}) {
	key := strings.ReplaceAll(
		strings.ToLower(strings.TrimPrefix(name, "TWSORT_")),
		"_", "-",
	)
	configKey, ok := envConfigKeys[key]
	if !ok {
		return key, value
	}
	if envListKeys[configKey] {
		return configKey, strings.Fields(value)
	}
	return configKey, value
}

// configProvider picks the file provider for a config path. JSON files may
// carry comments, which are stripped before parsing.
func configProvider(path string) koanf.Provider {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		return jsoncFile(path)
	default:
		return file.Provider(path)
	}
}

// jsoncFile is a koanf provider for JSON with comments and trailing commas.
type jsoncFile string

func (f jsoncFile) ReadBytes() ([]byte, error) {
	data, err := os.ReadFile(string(f))
	if err != nil {
		return nil, err
	}
	return jsonc.ToJSON(data), nil
}

func (f jsoncFile) Read() (map[string]interface{}, error) {
	return nil, errors.New("jsonc provider does not support this method")
}

// buildOptions constructs the engine options from koanf state.
func buildOptions() (twsort.Options, error) {
	opts := twsort.Options{
		AllowDuplicates: getBoolWithFallback("allow-duplicates", "allowDuplicates", false),
	}

	patterns, err := buildPatterns()
	if err != nil {
		return opts, err
	}
	opts.Patterns = patterns

	table, err := buildTable()
	if err != nil {
		return opts, err
	}
	opts.Table = table

	return opts, nil
}

// buildPatterns prefers a command line pattern over config entries. A nil
// result selects the default pattern.
func buildPatterns() (twsort.PatternSet, error) {
	if expr := k.String("custom-regex"); expr != "" {
		return twsort.NewCustomPattern(expr)
	}

	if !k.Exists("customRegex") {
		return nil, nil
	}
	specs, err := twsort.ParseEntrySpecs(k.Get("customRegex"))
	if err != nil {
		return nil, configError(fmt.Errorf("parsing customRegex: %w", err))
	}
	patterns, err := twsort.NewPatternEntries(specs)
	if err != nil {
		return nil, configError(err)
	}
	return patterns, nil
}

// configError names the loaded config file in err.
func configError(err error) error {
	if configFile == "" {
		return err
	}
	return fmt.Errorf("config file %s: %w", configFile, err)
}

// buildTable reads the class order from a stylesheet or the sortOrder key.
// The stylesheet wins; a nil result selects the built-in table.
func buildTable() (*twsort.PrecedenceTable, error) {
	if path := getStringWithFallback("output-css-file", "outputCssFile", ""); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening css file: %w", err)
		}
		defer f.Close()

		table, err := twsort.PrecedenceFromCSS(f)
		if err != nil {
			return nil, fmt.Errorf("reading class order from %s: %w", path, err)
		}
		return table, nil
	}

	if k.Exists("sortOrder") {
		return twsort.NewPrecedenceTable(k.Strings("sortOrder")), nil
	}
	return nil, nil
}

// runSettings are the options that drive the runner rather than the engine.
type runSettings struct {
	Flags        runner.Flags
	Jobs         int
	IgnoredFiles []string
}

func buildRunSettings() runSettings {
	return runSettings{
		Flags: runner.Flags{
			DryRun: k.Bool("dry-run"),
			Write:  k.Bool("write"),
			Check:  k.Bool("check-formatted"),
			Print:  k.Bool("print"),
			Stdin:  k.Bool("stdin"),
		},
		Jobs:         getIntWithFallback("jobs", "jobs", 0),
		IgnoredFiles: getStringsWithFallback("ignored-files", "ignoredFiles"),
	}
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

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}

// getStringsWithFallback checks the flag key first, then the config file key.
func getStringsWithFallback(flagKey, configKey string) []string {
	if v := k.Strings(flagKey); len(v) > 0 {
		return v
	}
	return k.Strings(configKey)
}
