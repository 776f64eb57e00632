package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/khalid-nowaf/wordtrie/pkg/logger"
	"github.com/khalid-nowaf/wordtrie/pkg/trie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run parses args like the binary does and returns stdout and the log output.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var root CLI
	parser, err := kong.New(&root, Options()...)
	require.NoError(t, err)

	kctx, err := parser.Parse(args)
	if err != nil {
		return "", "", err
	}

	var out, logs bytes.Buffer
	log := logger.New(logger.Options{Level: root.LogLevel, Console: &logs})
	err = kctx.Run(&Context{Log: log, Out: &out})
	return out.String(), logs.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// TestDemoOutput verifies running with no arguments prints only the sorted demo words.
func TestDemoOutput(t *testing.T) {
	out, logs, err := run(t)
	require.NoError(t, err)

	expected := "huawei\niphone\nmoto\nmotorola\noneplus\nsamsang\nsamsung\nsoney\nsony\nxiaomi\n"
	assert.Equal(t, expected, out)
	assert.Empty(t, logs, "Nothing should be logged at the default level")
}

func TestPositionalWords(t *testing.T) {
	out, _, err := run(t, "sony", "soney", "sony", "apple")
	require.NoError(t, err)
	assert.Equal(t, "apple\nsoney\nsony\n", out)
}

func TestExplicitCommand(t *testing.T) {
	out, _, err := run(t, "words", "b", "a")
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", out)
}

// TestInvalidWordFails verifies an invalid word aborts the command.
func TestInvalidWordFails(t *testing.T) {
	out, _, err := run(t, "moto", "Moto")
	assert.ErrorIs(t, err, trie.ErrInvalidCharacter)
	assert.Contains(t, err.Error(), `insert "Moto"`)
	assert.Empty(t, out, "Nothing should be printed after a failure")
}

// TestSkipInvalid verifies invalid words are logged and skipped.
func TestSkipInvalid(t *testing.T) {
	out, logs, err := run(t, "--skip-invalid", "moto", "Moto", "sony1", "sony")
	require.NoError(t, err)
	assert.Equal(t, "moto\nsony\n", out)
	assert.Contains(t, logs, "skipping word")
	assert.Contains(t, logs, "word=Moto")
	assert.Contains(t, logs, "word=sony1")
}

func TestWordFiles(t *testing.T) {
	txt := writeFile(t, "words.txt", "# phones\nsony\n\n  moto  \n")
	jsonFile := writeFile(t, "words.json", `["xiaomi", "huawei"]`)
	yamlFile := writeFile(t, "words.yaml", "- oneplus\n- iphone\n")

	out, _, err := run(t, "--file", txt, "-f", jsonFile, "--file", yamlFile, "apple")
	require.NoError(t, err)
	assert.Equal(t, "apple\nhuawei\niphone\nmoto\noneplus\nsony\nxiaomi\n", out)
}

func TestMissingFile(t *testing.T) {
	_, _, err := run(t, "--file", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestOutputFormats(t *testing.T) {
	out, _, err := run(t, "--format", "json", "sony", "moto")
	require.NoError(t, err)
	assert.JSONEq(t, `["moto", "sony"]`, out)

	out, _, err = run(t, "--format", "yaml", "sony", "moto")
	require.NoError(t, err)
	assert.Equal(t, "- moto\n- sony\n", out)

	_, _, err = run(t, "--format", "csv", "sony")
	assert.Error(t, err, "Unknown formats should be rejected by the parser")
}

func TestAlphabetSize(t *testing.T) {
	out, _, err := run(t, "--alphabet-size", "3", "cab", "abc")
	require.NoError(t, err)
	assert.Equal(t, "abc\ncab\n", out)

	_, _, err = run(t, "--alphabet-size", "3", "dab")
	assert.ErrorIs(t, err, trie.ErrInvalidCharacter)

	_, _, err = run(t, "--alphabet-size", "0", "abc")
	assert.ErrorContains(t, err, "alphabet size must be positive")
}

func TestStats(t *testing.T) {
	out, logs, err := run(t, "--log-level", "info", "--stats", "sony", "soney")
	require.NoError(t, err)
	assert.Equal(t, "soney\nsony\n", out)
	assert.Contains(t, logs, "words=2")
	assert.Contains(t, logs, "nodes=7")
}

// TestConfigFile verifies YAML config values act as flag defaults.
func TestConfigFile(t *testing.T) {
	config := writeFile(t, "wordtrie.yaml", "format: json\nalphabet_size: 3\nlog-level: error\n")

	out, _, err := run(t, "--config", config, "cab", "abc")
	require.NoError(t, err)
	assert.JSONEq(t, `["abc", "cab"]`, out)

	out, _, err = run(t, "--config", config, "--format", "lines", "cab")
	require.NoError(t, err)
	assert.Equal(t, "cab\n", out, "Command line flags should win over the config file")
}
