package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"sort"
	"strings"

	"github.com/invopop/jsonschema"
)

//go:embed schema.json
var embeddedSchema string

// VerifyAgainstEmbeddedSchema validates the config against the embedded JSON schema
func VerifyAgainstEmbeddedSchema(cfg *Config) error {
	return verify(cfg, []byte(embeddedSchema))
}

// VerifyAgainstSchema validates the config against the JSON schema from file
func VerifyAgainstSchema(cfg *Config, schemaPath string) error {
	schemaData, err := os.ReadFile(schemaPath) //nolint:gosec // schema path is controlled by us
	if err != nil {
		return fmt.Errorf("read schema file: %w", err)
	}
	return verify(cfg, schemaData)
}

func verify(cfg *Config, schemaData []byte) error {
	var schema map[string]any
	if err := json.Unmarshal(schemaData, &schema); err != nil {
		return fmt.Errorf("parse schema: %w", err)
	}

	// convert config to JSON for validation
	configData, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	var configMap map[string]any
	if err := json.Unmarshal(configData, &configMap); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validateRequiredFields(cfg); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	defs, _ := schema["$defs"].(map[string]any)
	if err := checkValue(schema, defs, configMap, ""); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// checkValue walks value along the schema and checks minimum, maximum and enum keywords.
// It covers the subset of draft 2020-12 that the reflected config schema uses.
func checkValue(schema, defs map[string]any, value any, path string) error {
	if ref, ok := schema["$ref"].(string); ok {
		name := strings.TrimPrefix(ref, "#/$defs/")
		def, ok := defs[name].(map[string]any)
		if !ok {
			return fmt.Errorf("unknown schema reference %s", ref)
		}
		return checkValue(def, defs, value, path)
	}

	switch v := value.(type) {
	case map[string]any:
		props, _ := schema["properties"].(map[string]any)
		keys := make([]string, 0, len(props))
		for k := range props {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			sub, ok := props[k].(map[string]any)
			if !ok {
				continue
			}
			val, ok := v[k]
			if !ok {
				continue
			}
			if err := checkValue(sub, defs, val, joinPath(path, k)); err != nil {
				return err
			}
		}
	case float64:
		if minimum, ok := schema["minimum"].(float64); ok && v < minimum {
			return fmt.Errorf("%s must be >= %v, got %v", path, minimum, v)
		}
		if maximum, ok := schema["maximum"].(float64); ok && v > maximum {
			return fmt.Errorf("%s must be <= %v, got %v", path, maximum, v)
		}
	case string:
		enum, _ := schema["enum"].([]any)
		if len(enum) > 0 && !slices.Contains(enum, any(v)) {
			return fmt.Errorf("%s must be one of %v, got %q", path, enum, v)
		}
	}
	return nil
}

func joinPath(base, key string) string {
	if base == "" {
		return key
	}
	return base + "." + key
}

// validateRequiredFields performs basic validation of required fields
func validateRequiredFields(cfg *Config) error {
	if cfg.Server.Listen == "" {
		return fmt.Errorf("server.listen is required")
	}
	if cfg.Server.Timeout == 0 {
		return fmt.Errorf("server.timeout is required")
	}
	if cfg.Feed.ScreenWidth == 0 {
		return fmt.Errorf("feed.screen_width is required")
	}
	if cfg.Animation.Duration == 0 {
		return fmt.Errorf("animation.duration is required")
	}
	if cfg.Catalog.Source == SourceRSS && cfg.Catalog.RSSURL == "" {
		return fmt.Errorf("catalog.rss_url is required when catalog.source is rss")
	}
	return nil
}

// GenerateSchema generates a JSON schema for the Config struct
func GenerateSchema() (*jsonschema.Schema, error) {
	return jsonschema.Reflect(&Config{}), nil
}
