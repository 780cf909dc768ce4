package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeCorpus creates a temp directory with the given name/content pairs.
func writeCorpus(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
	return dir
}

func TestSniffCommandStructure(t *testing.T) {
	assert.NotNil(t, sniffCmd)
	assert.Equal(t, "sniff", sniffCmd.Use)
	assert.NotEmpty(t, sniffCmd.Short)
	assert.Contains(t, sniffCmd.Long, "Example:")
	assert.Contains(t, sniffCmd.Long, "roundsniff sniff")
	assert.NotNil(t, sniffCmd.RunE)
}

func TestRunSniffFullReport(t *testing.T) {
	resetFlags(t)

	corpusDir = writeCorpus(t, map[string]string{
		"p1.json": `[{"player": "A", "score": 70}]`,
		"p2.json": `[{"player": "B", "score": 68}]`,
		"p3.json": `[{"player": "C", "score": 72}]`,
	})
	noColor = true

	var buf bytes.Buffer
	sniffCmd.SetOut(&buf)

	require.NoError(t, runSniff(sniffCmd, nil))
	out := buf.String()

	assert.Contains(t, out, "=== TOP KEYS (most common) ===")
	assert.Contains(t, out, "=== SAMPLE VALUES (first few) ===")
	assert.Contains(t, out, "=== HEURISTIC FIELD CANDIDATES ===")
	assert.Contains(t, out, "=== MOST COMMON ROUND SHAPES (key sets) ===")
	assert.Contains(t, out, "score")
	assert.Contains(t, out, "Count: 3")
	assert.Contains(t, out, "Keys: [player, score]")
}

func TestRunSniffMissingDirectory(t *testing.T) {
	resetFlags(t)

	corpusDir = filepath.Join(t.TempDir(), "does-not-exist")

	var buf bytes.Buffer
	sniffCmd.SetOut(&buf)

	err := runSniff(sniffCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "directory not found")
	assert.Empty(t, buf.String(), "no report should be printed on configuration errors")
}

func TestRunSniffEmptyDirectory(t *testing.T) {
	resetFlags(t)

	corpusDir = t.TempDir()

	var buf bytes.Buffer
	sniffCmd.SetOut(&buf)

	err := runSniff(sniffCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no .json files found")
	assert.Empty(t, buf.String())
}

func TestRunSniffMalformedFileAborts(t *testing.T) {
	resetFlags(t)

	corpusDir = writeCorpus(t, map[string]string{
		"good.json": `[{"player": "A"}]`,
		"rot.json":  `{"rounds": [{`,
	})

	var buf bytes.Buffer
	sniffCmd.SetOut(&buf)

	err := runSniff(sniffCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rot.json")
	assert.Empty(t, buf.String(), "no partial report on parse failure")
}

func TestRunSniffHonorsSamplingOverrides(t *testing.T) {
	resetFlags(t)

	var records string
	for i := 0; i < 30; i++ {
		if i > 0 {
			records += ","
		}
		records += fmt.Sprintf(`{"n": %d}`, i)
	}
	corpusDir = writeCorpus(t, map[string]string{
		"big.json": "[" + records + "]",
	})
	maxRecords = 10
	noColor = true

	var buf bytes.Buffer
	sniffCmd.SetOut(&buf)

	require.NoError(t, runSniff(sniffCmd, nil))
	assert.Contains(t, buf.String(), "n"+strings.Repeat(" ", 29)+"  10")
}

func TestSniffIsAddedToRoot(t *testing.T) {
	found := false
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == "sniff" {
			found = true
			break
		}
	}
	assert.True(t, found, "sniff command should be added to root command")
}
