package prompt

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/vitecn/internal/project"
)

func press(t *testing.T, m model, keys ...tea.KeyMsg) (model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(k)
		var ok bool
		m, ok = next.(model)
		require.True(t, ok)
	}
	return m, cmd
}

func TestModel_Select(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.KeyMsg
		want project.Language
	}{
		{
			name: "default is first choice",
			keys: []tea.KeyMsg{{Type: tea.KeyEnter}},
			want: project.JavaScript,
		},
		{
			name: "move down",
			keys: []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyEnter}},
			want: project.TypeScript,
		},
		{
			name: "clamped at bottom",
			keys: []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyEnter}},
			want: project.TypeScript,
		},
		{
			name: "vim keys",
			keys: []tea.KeyMsg{
				{Type: tea.KeyRunes, Runes: []rune("j")},
				{Type: tea.KeyRunes, Runes: []rune("k")},
				{Type: tea.KeyEnter},
			},
			want: project.JavaScript,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, cmd := press(t, newModel(project.Languages), tt.keys...)
			assert.True(t, m.chosen)
			assert.NotNil(t, cmd)
			assert.Equal(t, tt.want, m.selected())
		})
	}
}

func TestModel_Abort(t *testing.T) {
	m, cmd := press(t, newModel(project.Languages), tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, m.aborted)
	assert.False(t, m.chosen)
	assert.NotNil(t, cmd)
	assert.Empty(t, m.View())
}

func TestModel_View(t *testing.T) {
	m := newModel(project.Languages)
	view := m.View()
	assert.Contains(t, view, question)
	assert.Contains(t, view, "JavaScript")
	assert.Contains(t, view, "TypeScript")
}
