package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cakeart/cakeart/internal/config"
	"github.com/cakeart/cakeart/internal/db"
)

func TestCheckConfigWritable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.DefaultPath)

	assert.NoError(t, checkConfigWritable(path, false))

	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 8080\n"), 0o600))
	err := checkConfigWritable(path, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")
	assert.NoError(t, checkConfigWritable(path, true))
}

func TestPrintNextSteps(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Server.Port = 9090

	var buf bytes.Buffer
	printNextSteps(&buf, "site.yml", cfg)
	out := buf.String()
	assert.Contains(t, out, "Wrote site.yml.")
	assert.Contains(t, out, "cakeart server --config site.yml")
	assert.Contains(t, out, "http://localhost:9090")
}

func TestPrintVersion(t *testing.T) {
	var buf bytes.Buffer
	printVersion(&buf, "abc123def456")
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "cakeart "+Version+"\n"))
	assert.Contains(t, out, "commit: abc123def456")
	assert.Contains(t, out, "schema: v"+strconv.Itoa(db.LatestVersion()))

	buf.Reset()
	printVersion(&buf, "")
	assert.NotContains(t, buf.String(), "commit:")
}
