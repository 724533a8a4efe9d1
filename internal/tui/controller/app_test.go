package controller

import (
	"testing"

	"feeboard/internal/api/apitest"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppModel(t *testing.T) {
	m := newTestModel(t, &apitest.Fake{})
	app := NewAppModel(m)
	assert.Equal(t, m, app.model)
}

func TestAppModel_InitPreloadsMinerTargets(t *testing.T) {
	m := newTestModel(t, &apitest.Fake{})
	app := NewAppModel(m)

	cmd := app.Init()
	assert.NotNil(t, cmd)
	assert.True(t, m.MinerLoading)
}

func TestAppModel_Update_WindowSizeMsg(t *testing.T) {
	m := newTestModel(t, &apitest.Fake{})
	app := NewAppModel(m)

	updated, cmd := app.Update(tea.WindowSizeMsg{Width: 120, Height: 50})
	updatedApp, ok := updated.(AppModel)
	require.True(t, ok)
	assert.Equal(t, 120, updatedApp.model.Width)
	assert.Equal(t, 50, updatedApp.model.Height)
	assert.Nil(t, cmd)
}

func TestAppModel_View(t *testing.T) {
	m := newTestModel(t, &apitest.Fake{})
	app := NewAppModel(m)
	assert.NotEmpty(t, app.View())
}
