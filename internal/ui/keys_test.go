package ui

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"focusflow/internal/config"
)

func TestNewKeyMapDefaults(t *testing.T) {
	keys := NewKeyMap(nil)

	assert.Equal(t, []string{"h", "?"}, keys.Application.Help.Binding.Keys())
	assert.Equal(t, []string{" "}, keys.Timer.StartPause.Binding.Keys())
	assert.Equal(t, []string{"enter"}, keys.Tasks.ToggleDone.Binding.Keys())
	assert.Equal(t, "space", keys.Timer.StartPause.Binding.Help().Key)
}

func TestNewKeyMapCustomOverride(t *testing.T) {
	keys := NewKeyMap(config.KeyBindingsConfig{
		"quit":     {"Q"},
		"new_task": {"a", "+"},
	})

	assert.Equal(t, []string{"Q"}, keys.Application.Quit.Binding.Keys())
	assert.Equal(t, []string{"a", "+"}, keys.Tasks.New.Binding.Keys())
	// Unconfigured bindings keep their defaults
	assert.Equal(t, []string{"up", "k"}, keys.Navigation.Up.Binding.Keys())
}

func TestNewKeyMapEmptyOverrideKeepsDefault(t *testing.T) {
	keys := NewKeyMap(config.KeyBindingsConfig{"quit": {}})

	assert.Equal(t, []string{"q"}, keys.Application.Quit.Binding.Keys())
}

func TestTipRegistrationIsStableAcrossKeyMaps(t *testing.T) {
	NewKeyMap(nil)
	count := len(GetTips())
	require.NotZero(t, count)

	// Building another key map, as each server session does, must not
	// duplicate the registered tips
	NewKeyMap(nil)
	NewKeyMap(config.KeyBindingsConfig{"quit": {"Q"}})

	assert.Len(t, GetTips(), count)
}

func TestGetValidKeyNames(t *testing.T) {
	names := GetValidKeyNames()

	require.Len(t, names, len(AllKeyDefinitions))
	assert.True(t, sort.StringsAreSorted(names))
	assert.Contains(t, names, "start_pause")
	assert.Contains(t, names, "toggle_done")
}

func TestIsValidKeyName(t *testing.T) {
	assert.True(t, IsValidKeyName("help"))
	assert.False(t, IsValidKeyName("attach"))
}

func TestKeyBindingsConfigValidationUsesKeyNames(t *testing.T) {
	valid := config.KeyBindingsConfig{"help": {"F1"}}
	assert.NoError(t, valid.Validate(GetValidKeyNames()))

	unknown := config.KeyBindingsConfig{"open_editor": {"o"}}
	assert.Error(t, unknown.Validate(GetValidKeyNames()))
}

func TestShortHelpBindings(t *testing.T) {
	keys := NewKeyMap(nil)

	bindings := keys.ShortHelp()

	require.NotEmpty(t, bindings)
	// Quit is always reachable from the bottom bar
	last := bindings[len(bindings)-1]
	assert.Equal(t, []string{"q"}, last.Keys())
}
