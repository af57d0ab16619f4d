package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solwire/cli/internal/config"
	serrors "github.com/solwire/cli/internal/errors"
	"github.com/solwire/cli/internal/testutil"
)

func TestUpdateCommand_RequiresInit(t *testing.T) {
	dir, cleanup := testutil.TempDir(t)
	t.Cleanup(cleanup)
	g, _ := testGlobals()

	_, err := execute(t, NewUpdateCmd(g), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestUpdateCommand_PrintsDiffAndReapplies(t *testing.T) {
	dir := reactProject(t)
	g, _ := testGlobals()

	_, err := execute(t, NewInitCmd(g), dir, "--skip-install")
	require.NoError(t, err)

	out, err := execute(t, NewUpdateCmd(g), dir, "--network", "mainnet-beta", "--skip-install")
	require.NoError(t, err)

	assert.Contains(t, out, "Settings changes:")
	assert.Contains(t, out, "mainnet-beta")

	saved := testutil.ReadFile(t, filepath.Join(dir, config.FileName))
	assert.Contains(t, saved, `"network": "mainnet-beta"`)
}

func TestUpdateCommand_NoChanges(t *testing.T) {
	dir := reactProject(t)
	g, _ := testGlobals()

	_, err := execute(t, NewInitCmd(g), dir, "--skip-install")
	require.NoError(t, err)

	out, err := execute(t, NewUpdateCmd(g), dir, "--skip-install")
	require.NoError(t, err)
	assert.Contains(t, out, "Settings unchanged")
}

// TestUpdateCommand_Idempotent verifies a no-op update leaves the patched
// entry file byte-identical.
func TestUpdateCommand_Idempotent(t *testing.T) {
	dir := reactProject(t)
	g, _ := testGlobals()

	_, err := execute(t, NewInitCmd(g), dir, "--skip-install")
	require.NoError(t, err)
	once := testutil.ReadFile(t, filepath.Join(dir, "src", "main.jsx"))

	_, err = execute(t, NewUpdateCmd(g), dir, "--skip-install")
	require.NoError(t, err)
	assert.Equal(t, once, testutil.ReadFile(t, filepath.Join(dir, "src", "main.jsx")))
}
