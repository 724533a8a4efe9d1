package model

import (
	"time"

	"feeboard/internal/api"
	"feeboard/internal/live"
	"feeboard/internal/render"
	"feeboard/pkg/logging"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// AppMode represents the current mode of the application
type AppMode int

const (
	ModeMainDashboard AppMode = iota
	ModeHelpOverlay
	ModeLogOverlay
	ModeQuitting
)

// String provides a human-readable representation of the AppMode.
func (m AppMode) String() string {
	switch m {
	case ModeMainDashboard:
		return "MainDashboard"
	case ModeHelpOverlay:
		return "HelpOverlay"
	case ModeLogOverlay:
		return "LogOverlay"
	case ModeQuitting:
		return "Quitting"
	default:
		return "Unknown"
	}
}

// MessageType represents the type of status bar message
type MessageType int

const (
	StatusBarInfo MessageType = iota
	StatusBarSuccess
	StatusBarError
	StatusBarWarning
)

// Constants for UI
const (
	MaxActivityLogLines = 1000
	ReadyText           = "Ready"
	DoneText            = "Done"
	RecommendLoading    = "Loading recommendation..."
	EstimateLoading     = "Estimating..."
	CompareLoading      = "Loading comparison..."
)

// InputField identifies a text input of the dashboard.
type InputField int

const (
	InputNone InputField = iota
	InputCustomFee
	InputMinerCount
	InputMinerFee
	InputTargetBlocks
)

// MinerInputs lists the miner-target inputs in focus order.
var MinerInputs = []InputField{InputMinerCount, InputMinerFee, InputTargetBlocks}

// KeyMap defines all the key bindings for the application
type KeyMap struct {
	Tab         key.Binding
	ShiftTab    key.Binding
	JumpTab     key.Binding
	Enter       key.Binding
	Esc         key.Binding
	Quit        key.Binding
	Help        key.Binding
	Refresh     key.Binding
	Priority    key.Binding
	Explain     key.Binding
	EditInput   key.Binding
	CopyFee     key.Binding
	ToggleDebug key.Binding
	CopyLogs    key.Binding
	ToggleLog   key.Binding
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.JumpTab, k.Refresh, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap; the outer slice is columns.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.ShiftTab, k.JumpTab, k.Enter, k.Esc},
		{k.Refresh, k.Priority, k.Explain, k.EditInput, k.CopyFee},
		{k.ToggleLog, k.CopyLogs, k.ToggleDebug, k.Help, k.Quit},
	}
}

// StatusLine is a per-workflow status indicator.
type StatusLine struct {
	Text    string
	IsError bool
	Loading bool
}

// Model is the dashboard state. One Model exists per program run and it
// owns every slot; nothing is kept at package level.
type Model struct {
	// Terminal dimensions
	Width  int
	Height int

	// Global application state
	QuitApp         bool
	CurrentAppMode  AppMode
	LastAppMode     AppMode
	DebugMode       bool
	QuittingMessage string
	BaseURL         string

	// Collaborators
	FeeAPI      api.FeeAPI
	Poller      *live.Poller
	LiveUpdates <-chan live.Update

	// Tabs and in-flight request bookkeeping
	Tabs TabState
	Gen  Generations

	// Controls
	Priority         api.Priority
	RecommendExplain api.ExplainMode
	EstimateExplain  api.ExplainMode
	CompareExplain   api.ExplainMode
	FocusedInput     InputField
	CustomFeeInput   textinput.Model
	MinerCountInput  textinput.Model
	MinerFeeInput    textinput.Model
	TargetInput      textinput.Model
	// MinerCommitted holds count, fee and target as last used for a
	// request; committing an input that differs triggers a reload.
	MinerCommitted [3]string

	// Slots
	Status         StatusLine
	EstimateStatus StatusLine
	CompareStatus  StatusLine
	SingleResult   ResultSlot
	EstimateResult ResultSlot
	Compare        CompareSlot
	Miner          render.MinerView
	MinerLoading   bool
	History        render.HistoryView
	HistoryLoading bool
	Live           *render.LiveBoard

	// UI State & Output
	ActivityLog          []string
	ActivityLogDirty     bool
	LogViewportLastWidth int
	LogViewport          viewport.Model
	Spinner              spinner.Model
	Keys                 KeyMap
	Help                 help.Model
	StatusBarMessage     string
	StatusBarMessageType MessageType
	StatusBarClearCancel chan struct{}

	// Logging
	LogChannel <-chan logging.LogEntry
}

// Input returns the text input for field, or nil for InputNone.
func (m *Model) Input(field InputField) *textinput.Model {
	switch field {
	case InputCustomFee:
		return &m.CustomFeeInput
	case InputMinerCount:
		return &m.MinerCountInput
	case InputMinerFee:
		return &m.MinerFeeInput
	case InputTargetBlocks:
		return &m.TargetInput
	default:
		return nil
	}
}

// FocusInput focuses field and blurs every other input. InputNone blurs all.
func (m *Model) FocusInput(field InputField) tea.Cmd {
	for _, f := range []InputField{InputCustomFee, InputMinerCount, InputMinerFee, InputTargetBlocks} {
		m.Input(f).Blur()
	}
	m.FocusedInput = field
	if in := m.Input(field); in != nil {
		return in.Focus()
	}
	return nil
}

// MinerRaw returns the current text of the miner count, fee and target inputs.
func (m *Model) MinerRaw() [3]string {
	return [3]string{m.MinerCountInput.Value(), m.MinerFeeInput.Value(), m.TargetInput.Value()}
}

// SetStatusMessage updates the status bar message
func (m *Model) SetStatusMessage(message string, msgType MessageType, clearAfter time.Duration) tea.Cmd {
	m.StatusBarMessage = message
	m.StatusBarMessageType = msgType

	if m.StatusBarClearCancel != nil {
		close(m.StatusBarClearCancel)
	}

	m.StatusBarClearCancel = make(chan struct{})
	captured := m.StatusBarClearCancel

	return tea.Tick(clearAfter, func(t time.Time) tea.Msg {
		select {
		case <-captured:
			return nil
		default:
			return ClearStatusBarMsg{}
		}
	})
}
