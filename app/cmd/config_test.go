package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lexcodex/spirvconf/configure"
	"github.com/lexcodex/spirvconf/internal/workspacecfg"
)

func TestConfigHelpers(t *testing.T) {
	data := map[string]interface{}{
		"logging": map[string]interface{}{
			"level": "info",
		},
	}
	value, ok := getConfigValue(data, "logging.level")
	require.True(t, ok)
	require.Equal(t, "info", value)

	require.NoError(t, setConfigValue(data, "logging.level", "debug"))
	value, ok = getConfigValue(data, "logging.level")
	require.True(t, ok)
	require.Equal(t, "debug", value)

	require.NoError(t, setConfigValue(data, "generator", "Ninja"))
	value, ok = getConfigValue(data, "generator")
	require.True(t, ok)
	require.Equal(t, "Ninja", value)

	_, ok = getConfigValue(data, "generator.name")
	require.False(t, ok)
	require.Error(t, setConfigValue(data, "logging..level", "x"))
}

func TestParseValue(t *testing.T) {
	require.Equal(t, "true", parseValue("cc", "true"))
	require.Equal(t, []interface{}{"A:BOOL=ON", "B:STRING=x;y"}, parseValue("defines", "A:BOOL=ON, B:STRING=x;y,"))
}

func TestConfigSetAndGet(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, workspacecfg.FileName)

	out, err := runCLI(t, &fakeRunner{}, "config", "set", "generator", "Unix Makefiles", "--config", path)
	require.NoError(t, err)
	require.Equal(t, "generator updated\n", out)

	_, err = runCLI(t, &fakeRunner{}, "config", "set", "defines", "LLVM_ENABLE_ASSERTIONS:BOOL=ON", "--config", path)
	require.NoError(t, err)

	out, err = runCLI(t, &fakeRunner{}, "config", "get", "generator", "--config", path)
	require.NoError(t, err)
	require.Equal(t, "Unix Makefiles\n", out)

	settings, err := workspacecfg.Load(path)
	require.NoError(t, err)
	require.Equal(t, "Unix Makefiles", settings.Generator)
	require.Equal(t, []string{"LLVM_ENABLE_ASSERTIONS:BOOL=ON"}, settings.Defines)
}

func TestConfigSetRejectsUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), workspacecfg.FileName)

	_, err := runCLI(t, &fakeRunner{}, "config", "set", "compiler", "clang", "--config", path)
	require.ErrorContains(t, err, "invalid settings")
	_, statErr := os.Stat(path)
	require.True(t, os.IsNotExist(statErr))
}

func TestConfigGetMissingKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), workspacecfg.FileName)

	_, err := runCLI(t, &fakeRunner{}, "config", "get", "cc", "--config", path)
	require.EqualError(t, err, "key cc not found")
}

func TestConfigSetRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), workspacecfg.FileName)

	_, err := runCLI(t, &fakeRunner{}, "config", "set", "profile", "Fast", "--config", path)
	require.ErrorIs(t, err, configure.ErrInvalidProfile)

	_, err = runCLI(t, &fakeRunner{}, "config", "set", "defines", "BROKEN", "--config", path)
	require.ErrorIs(t, err, configure.ErrInvalidDefinition)

	_, statErr := os.Stat(path)
	require.True(t, os.IsNotExist(statErr))

	_, err = runCLI(t, &fakeRunner{}, "config", "set", "profile", "Release", "--config", path)
	require.NoError(t, err)
}

func TestConfigGroupRejectsUnknownArgument(t *testing.T) {
	path := filepath.Join(t.TempDir(), workspacecfg.FileName)

	_, err := runCLI(t, &fakeRunner{}, "config", "list", "--config", path)
	require.ErrorContains(t, err, `"config" is a subcommand and does not take "list"`)

	out, err := runCLI(t, &fakeRunner{}, "config", "--config", path)
	require.NoError(t, err)
	require.Contains(t, out, "Inspect or modify the settings file")
}
