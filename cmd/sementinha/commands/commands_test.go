package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sementinha/internal/domain"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("SEMENTINHA_LOG_LEVEL", "disabled")
	t.Setenv("SEMENTINHA_SEAL_PASSPHRASE", "")

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestDemo(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "", "demo", "--export", "--export-dir", dir)
	require.NoError(t, err)

	assert.Contains(t, out, "Plant Trees (Project: Green Earth) - Goal: 1000.00 - Raised: 1100.00 - Goal reached: true")
	assert.Contains(t, out, " - 600.00 for campaign Plant Trees\n - 500.00 for campaign Plant Trees\n")
	for _, name := range []string{"users.txt", "projects.txt", "campaigns.txt"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
}

func TestRunScript(t *testing.T) {
	script := filepath.Join(t.TempDir(), "menu.txt")
	require.NoError(t, os.WriteFile(script, []byte("2\nGreen Earth\nTrees\n4\n0\n"), 0o600))

	out, err := execute(t, "", "run", script, "--export-dir", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "Project Green Earth registered.")
	assert.Contains(t, out, "No campaigns registered.")
	assert.Contains(t, out, "Goodbye!")

	_, err = execute(t, "", "run", filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
}

func TestShellReadsStdin(t *testing.T) {
	out, err := execute(t, "9\n0\n", "shell", "--export-dir", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "Invalid option. Try again.")
}

func TestSealAndUnseal(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "", "demo", "--export", "--export-dir", dir, "-p", "s3cret")
	require.NoError(t, err)

	sealed := filepath.Join(dir, "campaigns.txt.sealed")
	out, err := execute(t, "", "unseal", sealed, "-p", "s3cret")
	require.NoError(t, err)
	assert.Contains(t, out, "Total raised: 1100.00")

	plain := filepath.Join(dir, "campaigns.txt")
	_, err = execute(t, "", "unseal", sealed, "-p", "s3cret", "-o", plain)
	require.NoError(t, err)
	b, err := os.ReadFile(plain)
	require.NoError(t, err)
	assert.Contains(t, string(b), "Goal: 1000.00")

	_, err = execute(t, "", "unseal", sealed, "-p", "wrong")
	require.Error(t, err)

	_, err = execute(t, "", "unseal", sealed)
	require.Error(t, err)
}

func TestUnknownFormatRejectedAtStartup(t *testing.T) {
	out, err := execute(t, "2\nGreen Earth\nTrees\n0\n", "shell", "--format", "xml", "--export-dir", t.TempDir())
	require.ErrorIs(t, err, domain.ErrUnknownFormat)
	assert.NotContains(t, out, "Main Menu")
}

func TestUnsealRenamedArtifactFails(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "", "demo", "--export", "--export-dir", dir, "-p", "s3cret")
	require.NoError(t, err)

	swapped := filepath.Join(dir, "projects.txt.sealed")
	require.NoError(t, os.Rename(filepath.Join(dir, "users.txt.sealed"), swapped))

	_, err = execute(t, "", "unseal", swapped, "-p", "s3cret")
	require.Error(t, err)
}

func TestLogsGoToCommandStderr(t *testing.T) {
	t.Setenv("SEMENTINHA_LOG_LEVEL", "info")
	t.Setenv("SEMENTINHA_SEAL_PASSPHRASE", "")

	root := newRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs([]string{"demo", "--export", "--export-dir", t.TempDir()})
	require.NoError(t, root.Execute())

	assert.Contains(t, stderr.String(), "export written")
	assert.NotContains(t, stdout.String(), "export written")
}
