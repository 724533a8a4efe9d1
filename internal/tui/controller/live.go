package controller

import (
	"feeboard/internal/tui/model"
)

// handleLiveUpdate applies one poll to the live board. A failed poll only
// touches the error slot.
func handleLiveUpdate(m *model.Model, msg model.LiveUpdateMsg) *model.Model {
	u := msg.Update
	if m.Live == nil {
		return m
	}
	var applied bool
	if u.Err != nil {
		applied = m.Live.Fail(u.Seq, u.Err)
	} else {
		applied = m.Live.Apply(u.Seq, u.Status)
	}
	if !applied {
		LogDebug(m, "Ignoring out-of-order live update %d", u.Seq)
	}
	return m
}
