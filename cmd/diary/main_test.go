package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFoodsCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "foods.yaml")
	require.NoError(t, os.WriteFile(path, []byte("foods:\n  Kale:\n    calories: 33\n    unit: 1 cup\n"), 0o644))
	t.Setenv("FOODS_FILE", path)
	t.Setenv("DB_DRIVER", "sqlite")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"foods"})
	require.NoError(t, rootCmd.Execute())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.NotEmpty(t, lines)
	assert.True(t, strings.HasPrefix(lines[0], "FOOD"))
	assert.Contains(t, out.String(), "apple")
	assert.Contains(t, out.String(), "kale")
	assert.Contains(t, out.String(), "1 cup")
}

func TestFoodsCommandBadDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")

	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"foods"})
	assert.Error(t, rootCmd.Execute())
}
