package model

import (
	"context"
	"strconv"

	"feeboard/internal/api"
	"feeboard/internal/config"
	"feeboard/internal/live"
	"feeboard/internal/params"
	"feeboard/internal/render"
	"feeboard/pkg/logging"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DefaultKeyMap returns a KeyMap with the default bindings used by the TUI.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Tab: key.NewBinding(
			key.WithKeys("tab", "right"),
			key.WithHelp("tab/→", "next tab"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab", "left"),
			key.WithHelp("shift+tab/←", "previous tab"),
		),
		JumpTab: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5"),
			key.WithHelp("1-5", "jump to tab"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run/confirm"),
		),
		Esc: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel/back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q/ctrl+c", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "toggle help"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "run/refresh tab"),
		),
		Priority: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "cycle priority"),
		),
		Explain: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "cycle explain mode"),
		),
		EditInput: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "edit inputs"),
		),
		CopyFee: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy fee"),
		),
		ToggleDebug: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "toggle debug log"),
		),
		CopyLogs: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy logs"),
		),
		ToggleLog: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "toggle log overlay"),
		),
	}
}

func newInput(placeholder, value string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = 12
	ti.Prompt = ""
	ti.SetValue(value)
	return ti
}

// InitializeModel constructs the dashboard model from configuration. The
// poller is started by Init; it may be nil in tests.
func InitializeModel(
	cfg config.FeeboardConfig,
	feeAPI api.FeeAPI,
	poller *live.Poller,
	debugMode bool,
	logChannel <-chan logging.LogEntry,
) *Model {
	priority, err := params.ParsePriority(cfg.Dashboard.DefaultPriority)
	if err != nil {
		priority = api.PriorityFast
	}
	explain, err := params.ParseExplainMode(cfg.Dashboard.DefaultExplain)
	if err != nil {
		explain = api.ExplainDefault
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	m := &Model{
		CurrentAppMode:   ModeMainDashboard,
		LastAppMode:      ModeMainDashboard,
		DebugMode:        debugMode,
		BaseURL:          cfg.Backend.BaseURL,
		FeeAPI:           feeAPI,
		Poller:           poller,
		Priority:         priority,
		RecommendExplain: explain,
		EstimateExplain:  explain,
		CompareExplain:   explain,
		CustomFeeInput:   newInput("e.g. 12.5", "", 16),
		MinerCountInput:  newInput(strconv.Itoa(params.DefaultResultCount), cfg.Dashboard.MinerCount, 3),
		MinerFeeInput:    newInput("sat/vB", cfg.Dashboard.MinerFee, 16),
		TargetInput:      newInput(params.DefaultTarget, cfg.Dashboard.TargetBlocks, 3),
		Status:           StatusLine{Text: ReadyText},
		Live:             render.NewLiveBoard(),
		ActivityLog:      make([]string, 0),
		ActivityLogDirty: true,
		LogViewport:      viewport.New(0, 0),
		Spinner:          s,
		Keys:             DefaultKeyMap(),
		Help:             help.New(),
		LogChannel:       logChannel,
	}
	m.MinerCommitted = m.MinerRaw()
	return m
}

// Init implements tea.Model. It starts the live poller and the listeners
// for its updates and for log entries.
func (m *Model) Init() tea.Cmd {
	var cmds []tea.Cmd

	if m.Poller != nil && m.LiveUpdates == nil {
		m.LiveUpdates = m.Poller.Start(context.Background())
	}
	if cmd := ListenForLiveUpdatesCmd(m.LiveUpdates); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if cmd := ListenForLogEntriesCmd(m.LogChannel); cmd != nil {
		cmds = append(cmds, cmd)
	}

	cmds = append(cmds, m.Spinner.Tick)
	return tea.Batch(cmds...)
}
