package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solwire/cli/internal/config"
	serrors "github.com/solwire/cli/internal/errors"
	"github.com/solwire/cli/internal/exec"
	"github.com/solwire/cli/internal/output"
	"github.com/solwire/cli/internal/testutil"
)

// stubRunner records package-manager invocations without running anything.
type stubRunner struct {
	calls []stubCall
	exit  int
}

type stubCall struct {
	name string
	args []string
	dir  string
}

func (s *stubRunner) Run(_ context.Context, name string, args []string, opts exec.RunOpts) (exec.Result, error) {
	s.calls = append(s.calls, stubCall{name: name, args: args, dir: opts.Dir})
	return exec.Result{ExitCode: s.exit}, nil
}

func testGlobals() (*Globals, *stubRunner) {
	runner := &stubRunner{}
	return &Globals{Log: output.NewRecorder(), Runner: runner}, runner
}

const entryFile = `import { StrictMode } from 'react'
import { createRoot } from 'react-dom/client'
import App from './App.jsx'

createRoot(document.getElementById('root')).render(
  <StrictMode>
    <App />
  </StrictMode>,
)
`

// reactProject lays out a minimal Vite React project and returns its root.
func reactProject(t *testing.T) string {
	t.Helper()
	dir, cleanup := testutil.TempDir(t)
	t.Cleanup(cleanup)
	testutil.WriteFile(t, dir, "package.json",
		`{"name":"demo","dependencies":{"react":"^18.2.0","react-dom":"^18.2.0"}}`)
	testutil.WriteFile(t, dir, "src/main.jsx", entryFile)
	return dir
}

// execute runs a command with captured output. A nil args slice would make
// cobra fall back to os.Args, which under go test carries test flags.
func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	if args == nil {
		args = []string{}
	}
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestInitCommand_FullRun(t *testing.T) {
	dir := reactProject(t)
	g, runner := testGlobals()

	out, err := execute(t, NewInitCmd(g), dir, "--network", "testnet")
	require.NoError(t, err)

	require.NotEmpty(t, runner.calls)
	assert.Equal(t, "npm", runner.calls[0].name)
	assert.Equal(t, dir, runner.calls[0].dir)

	saved := testutil.ReadFile(t, filepath.Join(dir, config.FileName))
	assert.Contains(t, saved, `"network": "testnet"`)

	entry := testutil.ReadFile(t, filepath.Join(dir, "src", "main.jsx"))
	assert.Contains(t, entry, "WalletContextProvider")

	assert.Contains(t, out, "solwire.json")
	assert.Contains(t, out, "wired for react (wallet-adapter, testnet)")
}

func TestInitCommand_SkipInstall(t *testing.T) {
	dir := reactProject(t)
	g, runner := testGlobals()

	out, err := execute(t, NewInitCmd(g), dir, "--skip-install")
	require.NoError(t, err)
	assert.Empty(t, runner.calls)
	assert.NotContains(t, out, "Installed")
}

func TestInitCommand_AppKitRequiresProjectID(t *testing.T) {
	dir := reactProject(t)
	g, runner := testGlobals()

	// Not a TTY under go test, so nothing prompts for the missing ID.
	_, err := execute(t, NewInitCmd(g), dir, "--appkit")
	require.Error(t, err)
	assert.ErrorIs(t, err, serrors.ErrValidation)
	assert.Empty(t, runner.calls)
}

func TestInitCommand_UnknownFramework(t *testing.T) {
	dir := reactProject(t)
	g, _ := testGlobals()

	_, err := execute(t, NewInitCmd(g), dir, "--framework", "angular")
	require.Error(t, err)
	assert.ErrorIs(t, err, serrors.ErrValidation)
}

func TestInitCommand_UnknownFeature(t *testing.T) {
	dir := reactProject(t)
	g, _ := testGlobals()

	_, err := execute(t, NewInitCmd(g), dir, "--features", "metrics")
	require.Error(t, err)
	assert.ErrorIs(t, err, serrors.ErrValidation)
}

func TestInitCommand_InstallFailure(t *testing.T) {
	dir := reactProject(t)
	runner := &stubRunner{exit: 1}
	g := &Globals{Log: output.NewRecorder(), Runner: runner}

	_, err := execute(t, NewInitCmd(g), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, serrors.ErrInstall)
}

func TestNetworkOptions(t *testing.T) {
	opts := networkOptions()
	require.Len(t, opts, len(config.Networks))
	assert.Equal(t, "mainnet-beta", opts[0].Value)
	assert.Equal(t, "https://api.mainnet-beta.solana.com", opts[0].Description)
}

func TestWalletOptions(t *testing.T) {
	opts := walletOptions()
	require.Len(t, opts, len(config.KnownWallets))
	assert.Equal(t, "phantom", opts[0].Value)
	assert.Equal(t, "Phantom", opts[0].Label)
	assert.Equal(t, "Coinbase Wallet", opts[2].Label)
}
