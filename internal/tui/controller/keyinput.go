package controller

import (
	"feeboard/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyMsgInputMode handles keys while a text input has focus. Leaving
// a miner input commits it: a changed value reloads the miner targets.
func handleKeyMsgInputMode(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	field := m.FocusedInput

	switch keyMsg.String() {
	case "esc":
		m.FocusInput(model.InputNone)
		if field == model.InputCustomFee {
			return m, nil
		}
		return m, commitMinerInputs(m)

	case "enter":
		m.FocusInput(model.InputNone)
		if field == model.InputCustomFee {
			return m, startEstimate(m)
		}
		return m, commitMinerInputs(m)

	case "tab", "shift+tab":
		if field == model.InputCustomFee {
			return m, nil
		}
		delta := 1
		if keyMsg.String() == "shift+tab" {
			delta = -1
		}
		focusCmd := m.FocusInput(neighborInput(field, delta))
		return m, tea.Batch(focusCmd, commitMinerInputs(m))
	}

	in := m.Input(field)
	if in == nil {
		m.FocusInput(model.InputNone)
		return m, nil
	}
	var cmd tea.Cmd
	*in, cmd = in.Update(keyMsg)
	return m, cmd
}

// commitMinerInputs reloads the miner targets when any miner input differs
// from what the last request used.
func commitMinerInputs(m *model.Model) tea.Cmd {
	if m.MinerRaw() == m.MinerCommitted {
		return nil
	}
	return startMinerTargets(m)
}

func neighborInput(field model.InputField, delta int) model.InputField {
	n := len(model.MinerInputs)
	for i, f := range model.MinerInputs {
		if f == field {
			return model.MinerInputs[(i+delta+n)%n]
		}
	}
	return model.MinerInputs[0]
}
