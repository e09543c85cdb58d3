package tui

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/streak/internal/errors"
	"github.com/julianstephens/streak/internal/logger"
	"github.com/julianstephens/streak/internal/models"
	"github.com/julianstephens/streak/internal/tui/components/habitlist"
	"github.com/julianstephens/streak/internal/validation"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state == StateAddHabit {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		h, v := docStyle.GetFrameSize()
		// Leave room for tabs, status and help
		m.habitList.SetSize(msg.Width-h, msg.Height-v-4)
		m.progressModel.SetSize(msg.Width-h, msg.Height-v-4)
		return m, nil

	case habitlist.AddHabitMsg:
		return m.startAddHabit()

	case habitlist.CompleteHabitMsg:
		m.completeHabit(msg.Position)
		return m, nil

	case tea.KeyMsg:
		if m.state == StateHabits && m.habitList.Filtering() {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case StateHabits:
		m.habitList, cmd = m.habitList.Update(msg)
	case StateProgress:
		m.progressModel, cmd = m.progressModel.Update(msg)
	}
	return m, cmd
}

func (m Model) startAddHabit() (tea.Model, tea.Cmd) {
	m.habitForm = &HabitFormModel{Frequency: models.FrequencyDaily}
	m.form = newHabitForm(m.habitForm)
	m.state = StateAddHabit
	return m, m.form.Init()
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.cancelForm()
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.addHabit(m.habitForm.Name, m.habitForm.Frequency)
		m.cancelForm()
		return m, nil
	case huh.StateAborted:
		m.cancelForm()
		return m, nil
	}

	return m, cmd
}

func (m *Model) cancelForm() {
	m.form = nil
	m.habitForm = nil
	m.state = StateHabits
}

// working returns a reconciled copy of the habit list. Changes are made on the
// copy and only become the model's state once they have been saved.
func (m *Model) working() []models.Habit {
	habits := slices.Clone(m.habits)
	// A TUI session can cross a period boundary.
	m.tracker.Reconcile(habits)
	return habits
}

func (m *Model) completeHabit(position int) {
	habits := m.working()

	result, err := m.tracker.Complete(habits, position)
	if err != nil {
		m.status = errors.Format(err)
		logger.Warn("Completion rejected", "position", position, "error", err)
		return
	}

	if err := m.save(habits); err != nil {
		return
	}
	m.habits = habits
	m.status = result.String()
	m.refresh()
}

func (m *Model) addHabit(name string, frequency models.Frequency) {
	if err := validation.ValidateName(name); err != nil {
		m.status = errors.Format(err)
		return
	}

	habits, habit := m.tracker.Create(m.working(), name, frequency)
	if err := m.save(habits); err != nil {
		return
	}
	m.habits = habits
	m.status = "Added habit: " + habit.Name
	m.refresh()
}

func (m *Model) save(habits []models.Habit) error {
	if err := m.store.Save(habits); err != nil {
		logger.Error("Failed to save habits", "error", err)
		m.status = errors.Format(err)
		return err
	}
	return nil
}
