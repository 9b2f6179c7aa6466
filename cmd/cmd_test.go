/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRenameCommandPrompts(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a1.jpg", "a2.jpg"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}

	out, err := run(t, "y\n", "rename", "-p", "-w", "-d", dir, "--log-level", "error", "a{num}.jpg", "img_{num}{+suffix}")
	require.NoError(t, err)
	assert.Contains(t, out, "img_1JPG")
	assert.Contains(t, out, "(y 确认 / c 取消)")

	_, err = os.Stat(filepath.Join(dir, "img_2JPG"))
	assert.NoError(t, err)
}

func TestRenameCommandRejectsBadTemplate(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), nil, 0o644))

	_, err := run(t, "", "rename", "-d", dir, "--log-level", "error", "a", "{unknown}")
	assert.Error(t, err)
	_, statErr := os.Stat(filepath.Join(dir, "a.txt"))
	assert.NoError(t, statErr)
}

func TestAboutCommand(t *testing.T) {
	out, err := run(t, "", "about")
	require.NoError(t, err)
	assert.Contains(t, out, "renamer")
}
