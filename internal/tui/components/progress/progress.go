package progress

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/streak/internal/models"
	"github.com/julianstephens/streak/internal/tracker"
)

var (
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(12)

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	noteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

type Model struct {
	viewport viewport.Model
	habits   []models.Habit
	width    int
	height   int
}

func New(width, height int) Model {
	return Model{
		viewport: viewport.New(width, height),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.habits) == 0 {
		return "No habits to summarize yet."
	}
	return m.viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	m.Render()
}

func (m *Model) SetHabits(habits []models.Habit) {
	m.habits = habits
	m.Render()
}

func (m *Model) Render() {
	m.viewport.SetContent(Render(m.habits))
}

// Render formats the progress summary of habits
func Render(habits []models.Habit) string {
	p := tracker.Summarize(habits)

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s %s\n",
		labelStyle.Render("overall"),
		countStyle.Render(fmt.Sprintf("%d/%d", p.Completed, p.Total)),
		noteStyle.Render(fmt.Sprintf("%d%%", p.Percent())),
	)
	for _, f := range models.Frequencies {
		fp, ok := p.ByFrequency[f]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "%s %s %s\n",
			labelStyle.Render(f.String()),
			countStyle.Render(fmt.Sprintf("%d/%d", fp.Completed, fp.Total)),
			noteStyle.Render("done "+f.PeriodLabel()),
		)
	}
	if p.LongestStreak > 0 {
		fmt.Fprintf(&b, "\n%s %s\n",
			labelStyle.Render("longest"),
			countStyle.Render(fmt.Sprintf("%s (%d🔥)", p.LongestHabit, p.LongestStreak)),
		)
	}
	return b.String()
}
