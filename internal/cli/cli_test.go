package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zero-day-ai/enumkit"
)

const testCatalog = `enums:
  - name: Color
    description: primary colors
    values: [RED, GREEN, BLUE]
  - name: Size
    values: [SMALL, LARGE]
`

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "enums.yaml"), []byte(testCatalog), 0o600))

	var stdout, stderr bytes.Buffer
	cmd := New()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--catalog", dir}, args...))

	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestLookup(t *testing.T) {
	out, _, err := run(t, "lookup", "Color", "GREEN")
	require.NoError(t, err)
	assert.Equal(t, "Color.GREEN ordinal=1\n", out)

	_, stderr, err := run(t, "lookup", "Color", "green")
	require.Error(t, err)
	assert.ErrorIs(t, err, enumkit.ErrNameNotFound)
	assert.Contains(t, stderr, "is not a constant of Color")

	_, _, err = run(t, "lookup", "Color")
	assert.Error(t, err)
}

func TestList(t *testing.T) {
	out, _, err := run(t, "list")
	require.NoError(t, err)
	assert.Equal(t, "Color\nSize\n", out)

	out, _, err = run(t, "list", "Size")
	require.NoError(t, err)
	assert.Equal(t, "SMALL\nLARGE\n", out)

	_, _, err = run(t, "list", "Weight")
	assert.ErrorIs(t, err, enumkit.ErrTypeNotRegistered)
}

func TestSchema(t *testing.T) {
	out, _, err := run(t, "schema", "Color")
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"string","title":"Color","description":"primary colors","enum":["RED","GREEN","BLUE"]}`, out)
}

func TestEval(t *testing.T) {
	out, _, err := run(t, "eval", `valueOf("Size", "LARGE") > valueOf("Size", "SMALL")`)
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)
}

func TestVerboseLogsLoad(t *testing.T) {
	_, stderr, err := run(t, "--verbose", "list")
	require.NoError(t, err)
	assert.Contains(t, stderr, "loaded enum catalog")
}
