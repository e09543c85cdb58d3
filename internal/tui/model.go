package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/streak/internal/models"
	"github.com/julianstephens/streak/internal/storage"
	"github.com/julianstephens/streak/internal/tracker"
	"github.com/julianstephens/streak/internal/tui/components/habitlist"
	"github.com/julianstephens/streak/internal/tui/components/progress"
)

type SessionState int

const (
	StateHabits SessionState = iota
	StateProgress
	StateAddHabit
)

// tabCount is the number of states reachable with tab
const tabCount = 2

type HabitFormModel struct {
	Name      string
	Frequency models.Frequency
}

type Model struct {
	store         storage.Provider
	tracker       *tracker.Tracker
	habits        []models.Habit
	state         SessionState
	keys          KeyMap
	help          help.Model
	habitList     habitlist.Model
	progressModel progress.Model
	form          *huh.Form
	habitForm     *HabitFormModel
	status        string
	quitting      bool
	width         int
	height        int
}

// NewModel builds the TUI over habits that were loaded and reconciled by the caller
func NewModel(store storage.Provider, tr *tracker.Tracker, habits []models.Habit) Model {
	pm := progress.New(0, 0)
	pm.SetHabits(habits)

	return Model{
		store:         store,
		tracker:       tr,
		habits:        habits,
		state:         StateHabits,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		habitList:     habitlist.New(habits, 0, 0),
		progressModel: pm,
	}
}

// Habits returns the current in-memory list
func (m Model) Habits() []models.Habit {
	return m.habits
}

// Status returns the last status line shown to the user
func (m Model) Status() string {
	return m.status
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	if m.state == StateHabits {
		keys = append(keys, m.keys.Complete, m.keys.Add)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down}

	var actions []key.Binding
	if m.state == StateHabits {
		actions = []key.Binding{m.keys.Complete, m.keys.Add}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) refresh() {
	m.habitList.SetHabits(m.habits)
	m.progressModel.SetHabits(m.habits)
}
