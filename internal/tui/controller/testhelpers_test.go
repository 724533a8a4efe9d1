package controller

import (
	"testing"

	"feeboard/internal/api/apitest"
	"feeboard/internal/config"
	"feeboard/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T, fake *apitest.Fake) *model.Model {
	t.Helper()
	m := model.InitializeModel(config.GetDefaultConfig(), fake, nil, false, nil)
	m.Width = 100
	m.Height = 40
	return m
}

// exec runs a fetch command and feeds its result back through Update.
func exec(t *testing.T, m *model.Model, cmd tea.Cmd) *model.Model {
	t.Helper()
	require.NotNil(t, cmd)
	msg := cmd()
	m, _ = Update(msg, m)
	return m
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyEsc() tea.KeyMsg   { return tea.KeyMsg{Type: tea.KeyEsc} }
func keyEnter() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyEnter} }
func keyTab() tea.KeyMsg   { return tea.KeyMsg{Type: tea.KeyTab} }
