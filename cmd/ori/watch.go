package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// watchModel is a minimal Bubble Tea progress view over the build
// pipeline's stage events, grounded on the teacher's internal/ui
// progressModel (spinner + lipgloss styling) but trimmed to a single
// file's stage sequence instead of a multi-file queue, since `build` (C9
// through C11) operates on one file at a time.
type watchModel struct {
	path    string
	stages  <-chan string
	spinner spinner.Model
	current string
	history []string
	done    bool
	err     error
}

type stageMsg string
type buildDoneMsg struct{ err error }

func newWatchModel(path string, stages <-chan string) watchModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	return watchModel{path: path, stages: stages, spinner: sp}
}

func (m watchModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.waitForStage())
}

func (m watchModel) waitForStage() tea.Cmd {
	return func() tea.Msg {
		stage, ok := <-m.stages
		if !ok {
			return buildDoneMsg{}
		}
		return stageMsg(stage)
	}
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stageMsg:
		m.current = string(msg)
		m.history = append(m.history, m.current)
		return m, m.waitForStage()
	case buildDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m watchModel) View() string {
	title := lipgloss.NewStyle().Bold(true).Render("building " + m.path)
	if m.done {
		status := "done"
		if m.err != nil {
			status = "failed: " + m.err.Error()
		}
		return fmt.Sprintf("%s\n%s\n", title, status)
	}
	return fmt.Sprintf("%s %s %s\n", m.spinner.View(), title, m.current)
}
