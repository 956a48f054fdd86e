package controller

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rgbctl/internal/clipboard"
	"rgbctl/internal/colormodel"
	"rgbctl/internal/picker"
	"rgbctl/internal/state"
	"rgbctl/internal/tui/model"
	"rgbctl/pkg/logging"
)

type fakeCopier struct {
	texts []string
	err   error
}

func (f *fakeCopier) Copy(text string) (clipboard.Method, error) {
	f.texts = append(f.texts, text)
	if f.err != nil {
		return clipboard.MethodNone, f.err
	}
	return clipboard.MethodSystem, nil
}

func newTestModel(t *testing.T) (*model.Model, *state.MemoryStore, *fakeCopier) {
	t.Helper()
	store := state.NewMemoryStore(nil)
	ctrl := picker.New(store, picker.WithRandom(func(n int) int { return n / 2 }))
	ctrl.Initialize()
	copier := &fakeCopier{}
	m := model.InitialModel(model.TUIConfig{
		Controller: ctrl,
		Copier:     copier,
		Feedback:   time.Millisecond,
	})
	return m, store, copier
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(m *model.Model, msgs ...tea.Msg) (*model.Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		m, cmd = Update(msg, m)
	}
	return m, cmd
}

func typeText(m *model.Model, s string) *model.Model {
	for _, r := range s {
		m, _ = Update(runes(string(r)), m)
	}
	return m
}

func TestUpdate_NudgeFocusedChannel(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, colormodel.RGB{R: 1}, m.Channels)

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyShiftRight})
	assert.Equal(t, colormodel.RGB{R: 17}, m.Channels)

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyShiftLeft}, tea.KeyMsg{Type: tea.KeyShiftLeft})
	assert.Equal(t, colormodel.RGB{}, m.Channels, "nudging clamps at zero")

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyDown}, runes("+"))
	assert.Equal(t, colormodel.RGB{G: 1}, m.Channels)
	assert.Equal(t, "1", m.Inputs[model.FieldGreen].Value())
}

func TestUpdate_NudgeDecimal(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.Focus = model.FieldDecimal

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyShiftRight})
	assert.Equal(t, 16, m.Decimal)
	assert.Equal(t, colormodel.RGB{B: 16}, m.Channels)
}

func TestUpdate_FocusWraps(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, model.FieldDecimal, m.Focus)

	m, _ = send(m, runes("j"))
	assert.Equal(t, model.FieldRed, m.Focus)
}

func TestUpdate_HexEditingIsLiveAndStrict(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.Focus = model.FieldHex

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, model.ModeEditing, m.CurrentAppMode)
	m.Inputs[model.FieldHex].SetValue("")

	m = typeText(m, "ab")
	assert.Equal(t, colormodel.Black, m.Channels, "incomplete hex changes nothing")
	assert.Equal(t, "0", m.Inputs[model.FieldRed].Value())

	m = typeText(m, "c")
	assert.Equal(t, colormodel.RGB{R: 0xAA, G: 0xBB, B: 0xCC}, m.Channels)
	assert.Equal(t, "170", m.Inputs[model.FieldRed].Value())
	assert.Equal(t, "abc", m.Inputs[model.FieldHex].Value(), "edited input keeps the typed text")

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, model.ModeMain, m.CurrentAppMode)
	assert.Equal(t, "AABBCC", m.Inputs[model.FieldHex].Value())
}

func TestUpdate_HexCommitPadsShortInput(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.Focus = model.FieldHex

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	m.Inputs[model.FieldHex].SetValue("")
	m = typeText(m, "ab")
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, colormodel.RGB{B: 0xAB}, m.Channels)
	assert.Equal(t, "0000AB", m.Inputs[model.FieldHex].Value())
}

func TestUpdate_InvalidHexCommitRestoresInput(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.Controller.ApplyColor(1, 2, 3)
	m.Focus = model.FieldHex

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	m.Inputs[model.FieldHex].SetValue("")
	m = typeText(m, "zz")
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, colormodel.RGB{R: 1, G: 2, B: 3}, m.Channels)
	assert.Equal(t, "010203", m.Inputs[model.FieldHex].Value())
}

func TestUpdate_ChannelEditingClampsLive(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	m.Inputs[model.FieldRed].SetValue("")
	m = typeText(m, "300")

	assert.Equal(t, colormodel.RGB{R: 255}, m.Channels)
	assert.Equal(t, "FF0000", m.HexValue)

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, model.ModeMain, m.CurrentAppMode)
	assert.Equal(t, model.FieldGreen, m.Focus)
	assert.Equal(t, "255", m.Inputs[model.FieldRed].Value())
}

func TestUpdate_EmptyNumericCommitIsZero(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.Controller.ApplyColor(200, 10, 10)

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	m.Inputs[model.FieldRed].SetValue("")
	assert.Equal(t, colormodel.RGB{R: 200, G: 10, B: 10}, m.Channels, "empty live input is a no-op")

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, colormodel.RGB{G: 10, B: 10}, m.Channels)
	assert.Equal(t, "0", m.Inputs[model.FieldRed].Value())
}

func TestUpdate_EscDiscardsEdit(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.Controller.ApplyColor(9, 0, 0)

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	m.Inputs[model.FieldRed].SetValue("")
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, model.ModeMain, m.CurrentAppMode)
	assert.Equal(t, "9", m.Inputs[model.FieldRed].Value())
}

func TestUpdate_RandomAndReset(t *testing.T) {
	m, store, _ := newTestModel(t)

	m, _ = send(m, runes("r"))
	assert.Equal(t, colormodel.RGB{R: 128, G: 128, B: 128}, m.Channels)

	m, _ = send(m, runes("x"))
	assert.Equal(t, colormodel.Black, m.Channels)

	saved, err := store.Load()
	require.NoError(t, err)
	r, _ := saved.Number(state.KeyRed)
	assert.Equal(t, float64(0), r)
}

func TestUpdate_CopyFlow(t *testing.T) {
	m, _, copier := newTestModel(t)
	m.Controller.ApplyColor(255, 0, 0)

	m, cmd := send(m, runes("c"))
	require.NotNil(t, cmd)
	assert.True(t, m.CopyPending)

	_, again := send(m, runes("c"))
	assert.Nil(t, again, "no second copy while one is pending")

	m, feedback := send(m, cmd())
	assert.Equal(t, []string{"#FF0000"}, copier.texts)
	assert.True(t, m.CopyConfirmed)
	assert.Equal(t, model.CopiedLabel, m.CopyButtonLabel())
	require.NotNil(t, feedback)

	m, _ = send(m, model.CopyFeedbackDoneMsg{})
	assert.False(t, m.CopyConfirmed)
	assert.False(t, m.CopyPending)
	assert.Equal(t, model.CopyLabel, m.CopyButtonLabel())
}

func TestUpdate_CopyFailureIsSilent(t *testing.T) {
	m, _, copier := newTestModel(t)
	copier.err = errors.New("no clipboard")

	m, cmd := send(m, runes("c"))
	require.NotNil(t, cmd)
	m, _ = send(m, cmd())

	assert.False(t, m.CopyConfirmed)
	assert.False(t, m.CopyPending)
	assert.Equal(t, model.CopyLabel, m.CopyButtonLabel())
}

func TestUpdate_ToggleTheme(t *testing.T) {
	m, store, _ := newTestModel(t)

	m, cmd := send(m, runes("t"))
	assert.NotNil(t, cmd)
	assert.Equal(t, picker.ThemeDark, m.Theme)
	assert.Contains(t, m.StatusBarMessage, "dark")

	saved, err := store.Load()
	require.NoError(t, err)
	theme, _ := saved.String(state.KeyTheme)
	assert.Equal(t, "dark", theme)
}

func TestUpdate_Overlays(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, _ = send(m, runes("h"))
	assert.Equal(t, model.ModeHelpOverlay, m.CurrentAppMode)
	assert.True(t, m.Help.ShowAll)

	m, _ = send(m, runes("r"))
	assert.Equal(t, colormodel.Black, m.Channels, "picker keys are inactive under the help overlay")

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, model.ModeMain, m.CurrentAppMode)

	m, _ = send(m, runes("L"))
	assert.Equal(t, model.ModeLogOverlay, m.CurrentAppMode)
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, model.ModeMain, m.CurrentAppMode)
}

func TestUpdate_LogEntries(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, cmd := send(m, model.NewLogEntryMsg{Entry: logging.LogEntry{
		Timestamp: time.Now(), Level: logging.LevelInfo, Subsystem: "State", Message: "saved",
	}})
	assert.Nil(t, cmd, "no channel to listen on")
	require.Len(t, m.ActivityLog, 1)
	assert.Contains(t, m.ActivityLog[0], "[State] saved")

	m, _ = send(m, model.NewLogEntryMsg{Entry: logging.LogEntry{Level: logging.LevelDebug, Message: "noise"}})
	assert.Len(t, m.ActivityLog, 1)

	m.DebugMode = true
	m, _ = send(m, model.NewLogEntryMsg{Entry: logging.LogEntry{Level: logging.LevelDebug, Message: "noise"}})
	assert.Len(t, m.ActivityLog, 2)
}

func TestUpdate_Quit(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, cmd := send(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, model.ModeQuitting, m.CurrentAppMode)
}

func TestNextFocus(t *testing.T) {
	assert.Equal(t, model.FieldGreen, nextFocus(model.FieldRed, 1))
	assert.Equal(t, model.FieldRed, nextFocus(model.FieldDecimal, 1))
	assert.Equal(t, model.FieldDecimal, nextFocus(model.FieldRed, -1))
}
