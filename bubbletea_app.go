// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

const (
	focusInput = iota
	focusGeneral
	focusBinary
	focusOutput
	focusCount
)

const (
	inputHeight  = 3
	bottomHeight = 9
	logLines     = 6
	toastRefresh = 250 * time.Millisecond
)

// Model represents the Bubble Tea application state
type Model struct {
	ready bool

	textInput    textinput.Model
	generalView  viewport.Model
	binaryView   viewport.Model
	outputView   viewport.Model
	session      *Session
	history      []string
	historyIndex int

	focusIndex int
	// output is the raw text of the last result (what ctrl+y copies);
	// outputContent is what the output pane shows.
	output        string
	outputContent string

	styles          *Styles
	cards           *CardStyles
	glamourRenderer *glamour.TermRenderer

	width  int
	height int
}

// Styles holds all the styling for the application
type Styles struct {
	BorderFocused  lipgloss.Style
	BorderBlurred  lipgloss.Style
	Title          lipgloss.Style
	InputPrompt    lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	WarnMessage    lipgloss.Style
	ErrorMessage   lipgloss.Style
}

func NewStyles(scheme *ColorScheme) *Styles {
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(scheme.BorderFocus).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(scheme.Border),
		Title: lipgloss.NewStyle().
			Foreground(scheme.Primary).
			Padding(0, 1).
			Bold(true),
		InputPrompt: lipgloss.NewStyle().
			Foreground(scheme.Accent).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(scheme.TextMuted).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(scheme.TextMuted),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(scheme.Success).
			Bold(true),
		WarnMessage: lipgloss.NewStyle().
			Foreground(scheme.Warning).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(scheme.Error).
			Bold(true),
	}
}

type toastTickMsg time.Time

type clipboardMsg struct {
	text string
	err  error
}

func toastTick() tea.Cmd {
	return tea.Tick(toastRefresh, func(t time.Time) tea.Msg { return toastTickMsg(t) })
}

func InitialModel(session *Session) Model {
	scheme := GetColorScheme()

	ti := textinput.New()
	ti.Placeholder = fmt.Sprintf(`g "Title" "What happened today" -m %s   (type help)`, RandomMood())
	ti.Prompt = "› "
	ti.Focus()
	ti.CharLimit = session.Config().Journal.ContentLimit + 256
	ti.Width = 50

	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)

	m := Model{
		textInput:       ti,
		generalView:     viewport.New(0, 0),
		binaryView:      viewport.New(0, 0),
		outputView:      viewport.New(0, 0),
		session:         session,
		historyIndex:    -1,
		focusIndex:      focusInput,
		styles:          NewStyles(scheme),
		cards:           NewCardStyles(scheme),
		glamourRenderer: glamourRenderer,
	}
	m.textInput.PromptStyle = m.styles.InputPrompt
	m.outputContent = "Type `help` for the list of commands, or `seed` to load examples."
	return m
}

// Init is called when the program starts
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, toastTick())
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKeys(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.refreshPanes()
		m.ready = true
		return m, nil

	case toastTickMsg:
		// redraw so an expired toast disappears
		return m, toastTick()

	case clipboardMsg:
		if msg.err != nil {
			log.Printf("clipboard: %v", msg.err)
			m.session.Notify(ToastError, fmt.Sprintf("Failed to copy: %v", msg.err))
		} else {
			m.session.Notify(ToastSuccess, "📋 Copied "+msg.text)
		}
		return m, nil
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "tab":
		m.setFocus((m.focusIndex + 1) % focusCount)
		return m, nil
	case "shift+tab":
		m.setFocus((m.focusIndex + focusCount - 1) % focusCount)
		return m, nil
	case "ctrl+y":
		if m.output != "" {
			return m, copyCmd(m.output)
		}
		return m, nil
	}

	if m.focusIndex != focusInput {
		vp := m.focusedViewport()
		*vp, cmd = vp.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "enter":
		return m.submit()
	case "up":
		m.recall(1)
		return m, nil
	case "down":
		m.recall(-1)
		return m, nil
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m *Model) focusedViewport() *viewport.Model {
	switch m.focusIndex {
	case focusGeneral:
		return &m.generalView
	case focusBinary:
		return &m.binaryView
	default:
		return &m.outputView
	}
}

func (m *Model) setFocus(index int) {
	m.focusIndex = index
	if index == focusInput {
		m.textInput.Focus()
	} else {
		m.textInput.Blur()
	}
}

// recall walks the command history; step 1 is older, -1 newer.
func (m *Model) recall(step int) {
	if len(m.history) == 0 {
		return
	}
	next := m.historyIndex + step
	if next < 0 {
		m.historyIndex = -1
		m.textInput.SetValue("")
		return
	}
	if next >= len(m.history) {
		return
	}
	m.historyIndex = next
	m.textInput.SetValue(m.history[len(m.history)-1-next])
	m.textInput.CursorEnd()
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.textInput.Value())
	if line == "" {
		return m, nil
	}
	m.history = append(m.history, line)
	m.historyIndex = -1
	m.textInput.SetValue("")

	log.Printf("command: %s", line)
	result, err := m.session.Execute(line)
	if err != nil {
		log.Printf("command failed: %v", err)
		if errors.Is(err, errEmptyCommand) {
			return m, nil
		}
		m.setOutput(m.styles.ErrorMessage.Render(err.Error()), "")
		m.refreshPanes()
		return m, nil
	}

	if result.Quit {
		return m, tea.Quit
	}
	if result.Output != "" {
		display := result.Output
		if result.Markdown {
			display = m.renderMarkdown(result.Output)
		}
		m.setOutput(display, result.Output)
	}
	m.refreshPanes()

	if result.Copy != "" {
		return m, copyCmd(result.Copy)
	}
	return m, nil
}

func (m *Model) setOutput(display, raw string) {
	m.output = raw
	m.outputContent = display
	m.outputView.SetContent(display)
	m.outputView.GotoTop()
}

func (m Model) renderMarkdown(text string) string {
	if m.glamourRenderer == nil {
		return text
	}
	rendered, err := m.glamourRenderer.Render(text)
	if err != nil {
		return text
	}
	return rendered
}

func copyCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return clipboardMsg{text: text, err: clipboard.WriteAll(text)}
	}
}

func (m *Model) columnWidths() (int, int) {
	left := (m.width / 2) - 1
	return left, m.width - left - 3
}

func (m *Model) treeHeight() int {
	return max(m.height-inputHeight-bottomHeight-8, 3)
}

// updateLayout updates component dimensions
func (m *Model) updateLayout() {
	left, right := m.columnWidths()
	m.textInput.Width = m.width - 8

	m.generalView.Width = left - 2
	m.generalView.Height = m.treeHeight()
	m.binaryView.Width = right - 2
	m.binaryView.Height = m.treeHeight()
	m.outputView.Width = left - 2
	m.outputView.Height = bottomHeight - 2
	m.outputView.SetContent(m.outputContent)
}

// refreshPanes redraws both tree views from the session.
func (m *Model) refreshPanes() {
	config := m.session.Config()
	m.generalView.SetContent(RenderGeneral(m.session.General, config, m.cards, m.generalView.Width-2))
	m.binaryView.SetContent(RenderBinary(m.session.Binary, config, m.cards, m.binaryView.Width-2))
}

func (m Model) box(focus int, title string, width, height int, content string) string {
	style := m.styles.BorderBlurred
	if m.focusIndex == focus {
		style = m.styles.BorderFocused
		title += " (Active)"
	}
	return style.
		Width(width).
		Height(height).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render(title),
			content,
		))
}

func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 40 || m.height < 20 {
		return "Terminal too small. Please resize your terminal."
	}

	left, right := m.columnWidths()
	general, binary := m.session.General.Size(), m.session.Binary.Size()

	inputBox := m.box(focusInput, " ✎ Journal", m.width-2, inputHeight-1, m.textInput.View())

	panes := lipgloss.JoinHorizontal(lipgloss.Top,
		m.box(focusGeneral, fmt.Sprintf(" 🌳 General: %d nodes", general), left, m.treeHeight()+1, m.generalView.View()),
		m.box(focusBinary, fmt.Sprintf(" 🔀 Binary: %d nodes", binary), right, m.treeHeight()+1, m.binaryView.View()),
	)

	bottom := lipgloss.JoinHorizontal(lipgloss.Top,
		m.box(focusOutput, " ⇄ Output", left, bottomHeight-1, m.outputView.View()),
		m.box(-1, " 📜 Operations", right, bottomHeight-1, RenderLog(m.session.Log(), m.cards, logLines)),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		inputBox,
		panes,
		bottom,
		m.renderStatus(),
		m.renderHelp(),
	)
}

func (m Model) renderStatus() string {
	toast, ok := m.session.Toast()
	if !ok {
		return ""
	}
	style := m.styles.SuccessMessage
	switch toast.Kind {
	case ToastWarn:
		style = m.styles.WarnMessage
	case ToastError:
		style = m.styles.ErrorMessage
	}
	return lipgloss.NewStyle().Padding(0, 2).Render(style.Render(toast.Icon() + " " + toast.Message))
}

func (m Model) renderHelp() string {
	keys := []string{"enter", "↑/↓", "tab", "pgup/pgdn", "ctrl+y", "esc"}
	descs := []string{"run command", "history", "switch focus", "scroll", "copy output", "quit"}

	var helpEntries []string
	for i, key := range keys {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(key),
				m.styles.HelpDesc.Render(descs[i])))
	}

	return lipgloss.NewStyle().
		Padding(0, 0, 0, 2).
		Render(strings.Join(helpEntries, " • "))
}

// runBubbleTeaApp starts the Bubble Tea application
func runBubbleTeaApp(session *Session) error {
	InitializeColors()

	if path := session.Config().UI.DebugLog; path != "" {
		f, err := tea.LogToFile(path, "treejournal")
		if err != nil {
			return fmt.Errorf("failed to open debug log: %v", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	program := tea.NewProgram(
		InitialModel(session),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := program.Run()
	return err
}
