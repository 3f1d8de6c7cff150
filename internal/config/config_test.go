package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VarunSharma3520/floatinput/internal/validation"
)

func TestLoadEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("FLOATINPUT_VAULT", "")
		t.Setenv("FLOATINPUT_LOG_PATH", "")
		t.Setenv("FLOATINPUT_FORM", "")
		t.Setenv("FLOATINPUT_THEME", "")
		t.Setenv("FLOATINPUT_LOG_LEVEL", "")

		cfg, err := LoadEnv()
		require.NoError(t, err)
		assert.Equal(t, "INFO", cfg.LogLevel)
		assert.Equal(t, getDefaultVaultPath(), cfg.VaultPath)
		assert.Equal(t, filepath.Join(getDefaultVaultPath(), defaultLogFile), cfg.LogPath)
		assert.Equal(t, "standard", cfg.Theme)
		assert.Empty(t, cfg.FormPath)
	})

	t.Run("overrides", func(t *testing.T) {
		vault := t.TempDir()
		t.Setenv("FLOATINPUT_VAULT", vault)
		t.Setenv("FLOATINPUT_LOG_PATH", "")
		t.Setenv("FLOATINPUT_FORM", "/tmp/form.yaml")
		t.Setenv("FLOATINPUT_THEME", "dark")
		t.Setenv("FLOATINPUT_LOG_LEVEL", "debug")

		cfg, err := LoadEnv()
		require.NoError(t, err)
		assert.Equal(t, vault, cfg.VaultPath)
		assert.Equal(t, filepath.Join(vault, defaultLogFile), cfg.LogPath)
		assert.Equal(t, "/tmp/form.yaml", cfg.FormPath)
		assert.Equal(t, "dark", cfg.Theme)
		assert.Equal(t, "debug", cfg.LogLevel)
	})
}

const sampleForm = `
title: Account
theme: dark
fields:
  - name: code
    placeholder: Code
    can_empty: false
    min_length: 2
    max_length: 6
    input_type: digits
    messages:
      empty: Enter a code
  - name: nick
    placeholder: Nickname
    can_empty: true
    pattern: "[<>]"
    divider_height: 2
`

func TestLoadForm(t *testing.T) {
	path := filepath.Join(t.TempDir(), "form.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleForm), 0644))

	form, err := LoadForm(path)
	require.NoError(t, err)
	assert.Equal(t, "Account", form.Title)
	assert.Equal(t, "dark", form.Theme)
	require.Len(t, form.Fields, 2)

	code := form.Fields[0]
	assert.Equal(t, "code", code.Name)
	require.NotNil(t, code.CanEmpty)
	assert.False(t, *code.CanEmpty)
	assert.Equal(t, 2, *code.MinLength)
	assert.Equal(t, 6, *code.MaxLength)
	assert.Equal(t, "Enter a code", code.Messages.Empty)

	nick := form.Fields[1]
	assert.Equal(t, "[<>]", nick.Pattern)
	assert.Equal(t, 2, nick.DividerHeight)
}

func TestLoadFormErrors(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(body), 0644))
		return p
	}

	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "missing file", path: filepath.Join(dir, "nope.yaml"), want: "does not exist"},
		{name: "bad yaml", path: write("bad.yaml", "fields: [\n"), want: "invalid form file"},
		{name: "no fields", path: write("empty.yaml", "title: x\n"), want: "no fields"},
		{name: "unnamed field", path: write("unnamed.yaml", "fields:\n  - placeholder: x\n"), want: "has no name"},
		{name: "duplicate", path: write("dup.yaml", "fields:\n  - name: a\n  - name: a\n"), want: "duplicate field"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadForm(tt.path)
			require.ErrorIs(t, err, ErrFormFile)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestFieldFileSettings(t *testing.T) {
	form, err := ParseForm([]byte(sampleForm))
	require.NoError(t, err)

	var notified []string
	notify := func(field string, status validation.Status) {
		notified = append(notified, field+":"+status.String())
	}

	s, err := form.Fields[0].Settings(validation.DarkTheme, notify)
	require.NoError(t, err)
	assert.Equal(t, validation.DarkTheme, s.Theme)
	assert.Equal(t, "Code", s.Placeholder)
	assert.Equal(t, validation.Digits, *s.InputType)
	assert.Equal(t, "Enter a code", s.EmptyViolation.Message)
	assert.Equal(t, "Use at least 2 characters", s.MinLengthViolation.Message)
	assert.Equal(t, "Use fewer than 6 characters", s.MaxLengthViolation.Message)
	assert.Equal(t, 1, s.DividerHeight)

	s.EmptyViolation.Callback()
	s.InputTypeViolation.Callback()
	assert.Equal(t, []string{"code:emptyViolated", "code:inputTypeViolated"}, notified)

	nick, err := form.Fields[1].Settings(validation.StandardTheme, nil)
	require.NoError(t, err)
	assert.Equal(t, "[<>]", nick.InputType.Pattern)
	assert.Nil(t, nick.InputTypeViolation.Callback)
	assert.Nil(t, nick.EmptyViolation)
	assert.Equal(t, 2, nick.DividerHeight)
}

func TestFieldFileSettingsErrors(t *testing.T) {
	t.Run("can_empty required", func(t *testing.T) {
		_, err := FieldFile{Name: "x"}.Settings(validation.StandardTheme, nil)
		assert.ErrorIs(t, err, validation.ErrCanEmptyUnset)
		assert.ErrorContains(t, err, `field "x"`)
	})

	t.Run("unknown input type", func(t *testing.T) {
		_, err := FieldFile{Name: "x", CanEmpty: validation.Bool(true), InputType: "hex"}.
			Settings(validation.StandardTheme, nil)
		assert.ErrorIs(t, err, ErrFormFile)
	})

	t.Run("input type and pattern", func(t *testing.T) {
		_, err := FieldFile{Name: "x", CanEmpty: validation.Bool(true), InputType: "digits", Pattern: "a"}.
			Settings(validation.StandardTheme, nil)
		assert.ErrorIs(t, err, ErrFormFile)
	})
}

func TestDefaultFormSettingsValidate(t *testing.T) {
	for _, f := range DefaultForm().Fields {
		_, err := f.Settings(validation.StandardTheme, nil)
		assert.NoError(t, err, f.Name)
	}
}
