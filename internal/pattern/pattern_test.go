/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package pattern

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractNamedGroupsRoundTrip(t *testing.T) {
	matched, maps, err := ExtractNamedGroups([]string{"foo-bar.txt"}, `{a}-{b}\.{c}`)
	require.NoError(t, err)
	require.Equal(t, []string{"foo-bar.txt"}, matched)
	assert.Equal(t, VariableMap{"a": "foo", "b": "bar", "c": "txt"}, maps[0])
}

func TestExtractNamedGroupsLiteralRoundTrip(t *testing.T) {
	m, err := Compile("{a}-{b}.{c}", Options{Literal: true})
	require.NoError(t, err)
	matched, maps := m.Extract([]string{"foo-bar.txt"})
	require.Equal(t, []string{"foo-bar.txt"}, matched)
	assert.Equal(t, VariableMap{"a": "foo", "b": "bar", "c": "txt"}, maps[0])
}

func TestExtractNamedGroupsRegexSource(t *testing.T) {
	names := []string{"IMG_001_cat.jpg", "IMG_x_dog.jpg", "IMG_002_owl.jpg"}
	matched, maps, err := ExtractNamedGroups(names, `IMG_\d+_{name}\.jpg`)
	require.NoError(t, err)
	assert.Equal(t, []string{"IMG_001_cat.jpg", "IMG_002_owl.jpg"}, matched)
	require.Len(t, maps, 2)
	assert.Equal(t, "cat", maps[0]["name"])
	assert.Equal(t, "owl", maps[1]["name"])
}

func TestExtractNamedGroupsInvalidRegex(t *testing.T) {
	_, _, err := ExtractNamedGroups([]string{"x"}, "({a}")
	assert.True(t, errors.Is(err, ErrInvalidPattern))
}

func TestExtractPartitionsUnmatched(t *testing.T) {
	names := []string{"a1.jpg", "b2.jpg", "a2.jpg", "a3.png"}
	matched, maps, err := ExtractNamedGroups(names, "a{num}.jpg")
	require.NoError(t, err)
	assert.Equal(t, []string{"a1.jpg", "a2.jpg"}, matched)
	require.Len(t, maps, len(matched))
	assert.Equal(t, "1", maps[0]["num"])
	assert.Equal(t, "2", maps[1]["num"])
}

func TestExtractEmptyResult(t *testing.T) {
	matched, maps, err := ExtractNamedGroups([]string{"x.txt"}, "nothing{here}.jpg")
	require.NoError(t, err)
	assert.Empty(t, matched)
	assert.Empty(t, maps)
}

func TestCompileGreedyCapture(t *testing.T) {
	m, err := Compile("{stem}.{ext}", Options{Literal: true})
	require.NoError(t, err)
	vars, ok := m.Match("archive.tar.gz")
	require.True(t, ok)
	assert.Equal(t, "archive.tar", vars["stem"])
	assert.Equal(t, "gz", vars["ext"])
}

func TestCompileRegexMode(t *testing.T) {
	m, err := Compile(`^IMG_{num}\.(jpe?g)$`, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"num"}, m.Names())

	vars, ok := m.Match("IMG_0042.jpeg")
	require.True(t, ok)
	assert.Equal(t, VariableMap{"num": "0042"}, vars)

	_, ok = m.Match("IMG_0042.png")
	assert.False(t, ok)
}

func TestCompileLiteralModeQuotesMeta(t *testing.T) {
	m, err := Compile("v(1).{name}", Options{Literal: true})
	require.NoError(t, err)
	vars, ok := m.Match("v(1).draft")
	require.True(t, ok)
	assert.Equal(t, "draft", vars["name"])

	_, ok = m.Match("v1xdraft")
	assert.False(t, ok)
}

func TestCompileInvalidRegex(t *testing.T) {
	_, err := Compile("({a}", Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidPattern))
}

func TestDuplicatePlaceholderLastWins(t *testing.T) {
	m, err := Compile("{x}-{x}", Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, m.Names())
	vars, ok := m.Match("left-right")
	require.True(t, ok)
	assert.Equal(t, "right", vars["x"])
}

func TestMatchRequiresEveryPlaceholder(t *testing.T) {
	m, err := Compile("(?:{a}|b{c})", Options{})
	require.NoError(t, err)
	_, ok := m.Match("bz")
	assert.False(t, ok, "a or c does not participate, name must be dropped")
}
