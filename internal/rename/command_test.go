/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package rename

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"renamer/internal/pattern"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigVerify(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{Source: "a", Target: " {n}", Dir: dir}
	require.NoError(t, cfg.Verify())
	assert.Equal(t, " {n}", cfg.Target, "surrounding spaces belong to the template")
	assert.True(t, filepath.IsAbs(cfg.Dir))

	assert.Error(t, (&Config{Target: "b", Dir: dir}).Verify())
	assert.Error(t, (&Config{Source: "a", Target: "   ", Dir: dir}).Verify())

	file := filepath.Join(dir, "plain.txt")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	assert.Error(t, (&Config{Source: "a", Target: "b", Dir: file}).Verify())
	assert.Error(t, (&Config{Source: "a", Target: "b", Dir: filepath.Join(dir, "missing")}).Verify())
}

func TestConfigVerifyDefaultsToWorkingDir(t *testing.T) {
	cfg := Config{Source: "a", Target: "b"}
	require.NoError(t, cfg.Verify())
	wd, err := os.Getwd()
	require.NoError(t, err)
	want, err := filepath.EvalSymlinks(wd)
	require.NoError(t, err)
	assert.Equal(t, want, cfg.Dir)
}

func newTestCommand(t *testing.T, cfg Config) *Command {
	t.Helper()
	cfg.Yes = true
	c, err := NewCommand(cfg)
	require.NoError(t, err)
	c.Renamer.Out = &bytes.Buffer{}
	c.Renamer.Metadata = fakeProvider{}
	return c
}

func TestCommandPatternMode(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a1.jpg", "a2.jpg", "notes.txt")

	c := newTestCommand(t, Config{Source: "a{num}.jpg", Target: "img_{num}{+suffix}", Dir: dir, Pattern: true, Wildcard: true})
	result, err := c.Execute()
	require.NoError(t, err)
	assert.True(t, result.OK())
	assert.Equal(t, []string{"img_1JPG", "img_2JPG", "notes.txt"}, listNames(t, dir))
}

func TestCommandPatternRegexMode(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "IMG_0001.JPG", "IMG_0002.jpeg", "readme.md")

	c := newTestCommand(t, Config{Source: `IMG_{id}\.(?i:jpe?g)$`, Target: "photo-{id}.jpg", Dir: dir, Pattern: true})
	result, err := c.Execute()
	require.NoError(t, err)
	assert.Len(t, result.Succeeded, 2)
	assert.Equal(t, []string{"photo-0001.jpg", "photo-0002.jpg", "readme.md"}, listNames(t, dir))
}

func TestCommandPatternLiteralMode(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "v(1).draft", "v1xdraft")

	c := newTestCommand(t, Config{Source: "v(1).{name}", Target: "{name}.txt", Dir: dir, Pattern: true, Literal: true})
	result, err := c.Execute()
	require.NoError(t, err)
	assert.Equal(t, []string{"v(1).draft"}, result.Succeeded)
	assert.Equal(t, []string{"draft.txt", "v1xdraft"}, listNames(t, dir))
}

func TestCommandPatternInvalidRegex(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.txt")

	c := newTestCommand(t, Config{Source: "({a}", Target: "{a}", Dir: dir, Pattern: true})
	_, err := c.Execute()
	assert.True(t, errors.Is(err, pattern.ErrInvalidPattern))
	assert.Equal(t, []string{"a.txt"}, listNames(t, dir))
}

func TestCommandSubstringMode(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "draft-1.txt", "draft-2.txt")

	c := newTestCommand(t, Config{Source: "draft", Target: "final.txt", Dir: dir})
	result, err := c.Execute()
	require.NoError(t, err)
	assert.Equal(t, []string{"draft-1.txt"}, result.Succeeded)
	assert.Equal(t, []string{"draft-2.txt", "final.txt"}, listNames(t, dir))
}

func TestCommandRegexSingleMode(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.log", "b.log")

	c := newTestCommand(t, Config{Source: `^b\.`, Target: "{+prefix}.{suffix}", Dir: dir, Regex: true, Wildcard: true})
	result, err := c.Execute()
	require.NoError(t, err)
	assert.Equal(t, []string{"b.log"}, result.Succeeded)
	assert.Equal(t, []string{"B.log", "a.log"}, listNames(t, dir))

	c = newTestCommand(t, Config{Source: `(`, Target: "x", Dir: dir, Regex: true})
	_, err = c.Execute()
	assert.True(t, errors.Is(err, pattern.ErrInvalidPattern))
}

func TestCommandNoMatchIsNoop(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.txt")

	c := newTestCommand(t, Config{Source: "zzz", Target: "b.txt", Dir: dir})
	result, err := c.Execute()
	require.NoError(t, err)
	assert.True(t, result.OK())
	assert.Empty(t, result.Succeeded)
	assert.Equal(t, []string{"a.txt"}, listNames(t, dir))
}

func TestCommandDryRun(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.txt")

	c := newTestCommand(t, Config{Source: "a", Target: "b.txt", Dir: dir, DryRun: true})
	c.Renamer.Prompter = failingPrompter{t}
	result, err := c.Execute()
	require.NoError(t, err)
	assert.True(t, result.DryRun)
	assert.Equal(t, []string{"a.txt"}, listNames(t, dir))
}
