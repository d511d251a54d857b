package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/lexcodex/spirvconf/internal/workspacecfg"
)

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// flagOrSetting returns the flag value when it was given explicitly, else
// the settings value, else the flag default.
func flagOrSetting(cmd *cobra.Command, name, flagValue, setting string) string {
	if cmd.Flags().Changed(name) || setting == "" {
		return flagValue
	}
	return setting
}

// readConfigMap deserializes the settings file into a generic map for dotted lookups.
func readConfigMap(path string) (map[string]interface{}, error) {
	data := map[string]interface{}{}
	bytes, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return data, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(bytes, &data); err != nil {
		return nil, err
	}
	return data, nil
}

// writeConfigMap persists the map after checking it still decodes as Settings.
func writeConfigMap(path string, data map[string]interface{}) error {
	bytes, err := yaml.Marshal(data)
	if err != nil {
		return err
	}
	var decoded workspacecfg.Settings
	dec := yaml.NewDecoder(strings.NewReader(string(bytes)))
	dec.KnownFields(true)
	if err := dec.Decode(&decoded); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	if err := decoded.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, bytes, 0o644)
}

// getConfigValue traverses a nested map using dotted notation.
func getConfigValue(data map[string]interface{}, key string) (interface{}, bool) {
	parts := strings.Split(key, ".")
	var current interface{} = data
	for _, part := range parts {
		m, ok := current.(map[string]interface{})
		if !ok {
			return nil, false
		}
		value, ok := m[part]
		if !ok {
			return nil, false
		}
		current = value
	}
	return current, true
}

// setConfigValue mutates/creates nested keys referenced via dotted notation.
func setConfigValue(data map[string]interface{}, key string, value interface{}) error {
	parts := strings.Split(key, ".")
	current := data
	for i, part := range parts {
		if part == "" {
			return fmt.Errorf("invalid key %q", key)
		}
		if i == len(parts)-1 {
			current[part] = value
			return nil
		}
		next, ok := current[part].(map[string]interface{})
		if !ok {
			next = map[string]interface{}{}
			current[part] = next
		}
		current = next
	}
	return nil
}

// parseValue keeps settings as strings; defines and env take comma-separated lists.
func parseValue(key, input string) interface{} {
	if key != "defines" && key != "env" {
		return input
	}
	var list []interface{}
	for _, item := range strings.Split(input, ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}
	return list
}

// prettyValue renders nested values in a human-readable one-line format.
func prettyValue(v interface{}) string {
	switch value := v.(type) {
	case []interface{}:
		var parts []string
		for _, item := range value {
			parts = append(parts, prettyValue(item))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case map[string]interface{}:
		b, _ := yaml.Marshal(value)
		return strings.TrimSpace(string(b))
	default:
		return fmt.Sprint(value)
	}
}

// noDirectoryArgs rejects positional arguments on a subcommand whose name
// shadowed a source directory, pointing at the ./name spelling instead.
func noDirectoryArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return nil
	}
	name := cmd.Name()
	return fmt.Errorf("%q is a subcommand and does not take %q; to configure a source directory named %s, pass it as ./%s",
		name, args[0], name, name)
}
