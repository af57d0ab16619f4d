package prompt

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(t tea.KeyType) tea.Msg {
	return tea.KeyMsg{Type: t}
}

func runes(s string) tea.Msg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var networkOptions = []Option{
	{Value: "mainnet-beta", Label: "Mainnet Beta"},
	{Value: "devnet", Label: "Devnet", Description: "recommended for development"},
	{Value: "testnet", Label: "Testnet"},
}

var walletOptions = []Option{
	{Value: "phantom", Label: "Phantom"},
	{Value: "solflare", Label: "Solflare"},
	{Value: "coinbase", Label: "Coinbase"},
	{Value: "ledger", Label: "Ledger"},
}

// TestSelectNavigationWraps checks that the cursor wraps at both ends and
// that the vim keys mirror the arrows.
func TestSelectNavigationWraps(t *testing.T) {
	m := selectModel{title: "Network", options: networkOptions}

	next, _ := m.Update(key(tea.KeyUp))
	m = next.(selectModel)
	assert.Equal(t, 2, m.index, "up from the top wraps to the bottom")

	next, _ = m.Update(key(tea.KeyDown))
	m = next.(selectModel)
	assert.Equal(t, 0, m.index, "down from the bottom wraps to the top")

	next, _ = m.Update(runes("j"))
	m = next.(selectModel)
	assert.Equal(t, 1, m.index)

	next, _ = m.Update(runes("k"))
	m = next.(selectModel)
	assert.Equal(t, 0, m.index)
}

func TestSelectEnterConfirms(t *testing.T) {
	m := selectModel{title: "Network", options: networkOptions}

	next, _ := m.Update(key(tea.KeyDown))
	m = next.(selectModel)

	next, cmd := m.Update(key(tea.KeyEnter))
	m = next.(selectModel)

	require.True(t, m.done)
	require.NotNil(t, cmd, "enter must quit the program")
	assert.False(t, m.canceled)
	assert.Equal(t, "devnet", m.options[m.index].Value)
}

func TestSelectCancelKeys(t *testing.T) {
	for _, k := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		m := selectModel{title: "Network", options: networkOptions}

		next, cmd := m.Update(key(k))
		m = next.(selectModel)

		assert.True(t, m.canceled)
		assert.False(t, m.done)
		require.NotNil(t, cmd, "cancel must quit the program")
	}
}

func TestSelectViewHighlightsCursor(t *testing.T) {
	m := selectModel{title: "Select a network", options: networkOptions}

	view := m.View()

	assert.Contains(t, view, "Select a network")
	assert.Contains(t, view, "> Mainnet Beta")
	assert.Contains(t, view, "  Devnet")
	assert.Contains(t, view, "recommended for development")
	assert.Contains(t, view, "Esc to cancel")
}

func TestSelectViewClearsAfterQuit(t *testing.T) {
	m := selectModel{title: "Network", options: networkOptions, done: true}
	assert.Empty(t, m.View())
}

func TestMultiSelectSpaceToggles(t *testing.T) {
	m := newMultiSelectModel("Wallets", walletOptions, nil)

	next, _ := m.Update(key(tea.KeySpace))
	m = next.(multiSelectModel)
	assert.Equal(t, []string{"phantom"}, m.values())

	next, _ = m.Update(key(tea.KeySpace))
	m = next.(multiSelectModel)
	assert.Empty(t, m.values(), "space on a checked entry unchecks it")
}

func TestMultiSelectPreselected(t *testing.T) {
	m := newMultiSelectModel("Wallets", walletOptions, []string{"ledger", "solflare"})

	assert.Equal(t, []string{"solflare", "ledger"}, m.values(),
		"values come back in display order, not selection order")
}

// TestMultiSelectNavigateAndConfirm swaps the preselected phantom for
// solflare and confirms.
func TestMultiSelectNavigateAndConfirm(t *testing.T) {
	m := newMultiSelectModel("Wallets", walletOptions, []string{"phantom"})

	next, _ := m.Update(key(tea.KeyDown))
	m = next.(multiSelectModel)
	next, _ = m.Update(key(tea.KeySpace))
	m = next.(multiSelectModel)

	next, _ = m.Update(key(tea.KeyUp))
	m = next.(multiSelectModel)
	next, _ = m.Update(key(tea.KeySpace))
	m = next.(multiSelectModel)

	next, cmd := m.Update(key(tea.KeyEnter))
	m = next.(multiSelectModel)

	require.True(t, m.done)
	require.NotNil(t, cmd)
	assert.Equal(t, []string{"solflare"}, m.values())
}

func TestMultiSelectCancel(t *testing.T) {
	m := newMultiSelectModel("Wallets", walletOptions, []string{"phantom"})

	next, cmd := m.Update(key(tea.KeyEsc))
	m = next.(multiSelectModel)

	assert.True(t, m.canceled)
	require.NotNil(t, cmd)
}

func TestMultiSelectViewMarks(t *testing.T) {
	m := newMultiSelectModel("Select wallets", walletOptions, []string{"phantom"})

	view := m.View()

	assert.Contains(t, view, "Select wallets")
	assert.Contains(t, view, "[x] Phantom")
	assert.Contains(t, view, "[ ] Solflare")
	assert.Contains(t, view, "Space to toggle")
}

func TestInputTypedValue(t *testing.T) {
	m := newInputModel("Reown project ID", "from your Reown dashboard")

	next, _ := m.Update(runes("abc123"))
	m = next.(inputModel)

	next, cmd := m.Update(key(tea.KeyEnter))
	m = next.(inputModel)

	require.True(t, m.done)
	require.NotNil(t, cmd)
	assert.Equal(t, "abc123", m.input.Value())
}

func TestInputCancel(t *testing.T) {
	m := newInputModel("Reown project ID", "")

	next, _ := m.Update(runes("abc"))
	m = next.(inputModel)

	next, cmd := m.Update(key(tea.KeyEsc))
	m = next.(inputModel)

	assert.True(t, m.canceled)
	require.NotNil(t, cmd)
}

func TestInputViewShowsTitleAndValue(t *testing.T) {
	m := newInputModel("Reown project ID", "abc")

	next, _ := m.Update(runes("my-project"))
	m = next.(inputModel)

	view := m.View()

	assert.Contains(t, view, "Reown project ID")
	assert.Contains(t, view, "my-project")
	assert.Contains(t, view, "Enter to confirm")
}
