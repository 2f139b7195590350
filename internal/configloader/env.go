package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/yaklabco/uiguide/pkg/config"
)

// envVarPrefix is the prefix for all uiguide environment variables.
const envVarPrefix = "UIGUIDE_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeSlice
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field string
	typ   envFieldType
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"FORMAT":             {field: "format", typ: envTypeString},
	"OUTPUT":             {field: "output", typ: envTypeString},
	"STRICT":             {field: "strict", typ: envTypeBool},
	"REQUIRED_SECTIONS":  {field: "required_sections", typ: envTypeSlice},
	"COMPONENT_SECTIONS": {field: "component_sections", typ: envTypeSlice},
}

// EnvLookup resolves an environment variable, reporting whether it is set.
type EnvLookup func(key string) (string, bool)

// LoadFromEnv applies process environment overrides to the configuration.
// Environment variables are prefixed with UIGUIDE_ (e.g., UIGUIDE_FORMAT).
func LoadFromEnv(cfg *config.Config) error {
	return LoadFromEnvLookup(cfg, os.LookupEnv)
}

// LoadFromEnvLookup applies overrides resolved through lookup.
func LoadFromEnvLookup(cfg *config.Config, lookup EnvLookup) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value, ok := lookup(envVar)
		if !ok || value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// DotenvLookup reads the env file at path and returns a lookup in which the
// process environment takes precedence over the file.
func DotenvLookup(path string) (EnvLookup, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return func(key string) (string, bool) {
		if value, ok := os.LookupEnv(key); ok {
			return value, true
		}
		value, ok := values[key]
		return value, ok
	}, nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	case envTypeSlice:
		return setSliceField(cfg, mapping.field, parseSliceValue(value))
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// parseSliceValue parses a comma-separated string into a slice.
// Each element is trimmed of whitespace.
func parseSliceValue(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "format":
		cfg.Format = config.OutputFormat(value)
	case "output":
		cfg.Output = value
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "strict":
		cfg.Strict = value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

func setSliceField(cfg *config.Config, field string, value []string) error {
	switch field {
	case "required_sections":
		cfg.RequiredSections = value
	case "component_sections":
		cfg.ComponentSections = value
	default:
		return fmt.Errorf("unknown slice field: %s", field)
	}
	return nil
}

// ListEnvVars returns all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	return map[string]string{
		"UIGUIDE_FORMAT":             "Report format: text or json",
		"UIGUIDE_OUTPUT":             "Report path (accepted, reports go to stdout)",
		"UIGUIDE_STRICT":             "Strict mode: true or false (accepted, verdict unchanged)",
		"UIGUIDE_REQUIRED_SECTIONS":  "Comma-separated required section titles",
		"UIGUIDE_COMPONENT_SECTIONS": "Comma-separated component section titles",
	}
}
