package controller

import (
	"feeboard/internal/tui/model"
	"feeboard/internal/tui/view"

	tea "github.com/charmbracelet/bubbletea"
)

// AppModel wraps the model to handle updates and views
type AppModel struct {
	model *model.Model
}

// NewAppModel creates a new app wrapper
func NewAppModel(m *model.Model) AppModel {
	return AppModel{model: m}
}

// Init implements tea.Model. Besides the model's own listeners it preloads
// the miner targets so that tab is not empty on first view.
func (a AppModel) Init() tea.Cmd {
	return tea.Batch(a.model.Init(), startMinerTargets(a.model))
}

// Update implements tea.Model
func (a AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		a.model.Width = msg.Width
		a.model.Height = msg.Height
		return a, nil
	}

	updatedModel, cmd := Update(msg, a.model)
	a.model = updatedModel
	return a, cmd
}

// View implements tea.Model
func (a AppModel) View() string {
	return view.Render(a.model)
}
