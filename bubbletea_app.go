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
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	shellwords "github.com/mattn/go-shellwords"
)

// Model represents the Bubble Tea application state
type Model struct {
	ready bool

	// Components
	textInput      textinput.Model
	keysList       list.Model
	resultViewport viewport.Model

	// Data
	keyset *KeySet
	config *Config

	// State
	focusIndex int // 0: input, 1: key list
	showHelp   bool
	statusMsg  string
	quote      string

	// Styling
	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	// Dimensions
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
	ErrorMessage   lipgloss.Style
}

// NewStyles creates the default styles
func NewStyles() *Styles {
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Padding(0, 1).
			Bold(true),
		InputPrompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")),
	}
}

// keyItem adapts a plain key to the bubbles list item interface.
type keyItem string

func (k keyItem) Title() string       { return string(k) }
func (k keyItem) Description() string { return "" }
func (k keyItem) FilterValue() string { return string(k) }

// InitialModel builds the starting application state over a key set.
func InitialModel(ks *KeySet, config *Config) Model {
	ti := textinput.New()
	ti.Placeholder = `add cherry | range apple, mango | has kiwi | undo`
	ti.Focus()
	ti.CharLimit = 256

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	keys := list.New(keyItems(ks.Keys()), delegate, 0, 0)
	keys.Title = "Keys (ascending)"
	keys.SetShowStatusBar(false)
	keys.SetFilteringEnabled(true)

	vp := viewport.New(0, 0)
	vp.SetContent("Results appear here. Press f1 for help.")

	renderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)

	return Model{
		textInput:       ti,
		keysList:        keys,
		resultViewport:  vp,
		keyset:          ks,
		config:          config,
		styles:          NewStyles(),
		glamourRenderer: renderer,
		quote:           GetRandomQuote(),
	}
}

func keyItems(keys []string) []list.Item {
	items := make([]list.Item, 0, len(keys))
	for _, key := range keys {
		items = append(items, keyItem(key))
	}
	return items
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "f1":
			m.showHelp = !m.showHelp
			if m.showHelp {
				m.resultViewport.SetContent(m.renderHelp())
			} else {
				m.resultViewport.SetContent("")
			}
			return m, nil
		case "tab":
			if m.focusIndex == 0 {
				m.focusIndex = 1
				m.textInput.Blur()
			} else {
				m.focusIndex = 0
				m.textInput.Focus()
			}
			return m, nil
		case "ctrl+y":
			listing := strings.Join(m.keyset.Keys(), "\n")
			return m, func() tea.Msg {
				copyToClipboard(listing)
				return tea.Quit()
			}
		case "enter":
			if m.focusIndex == 0 {
				input := strings.TrimSpace(m.textInput.Value())
				if input != "" {
					m = m.executeCommand(input)
					m.textInput.SetValue("")
				}
				return m, nil
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
	}

	var cmd tea.Cmd
	if m.focusIndex == 0 {
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	} else {
		m.keysList, cmd = m.keysList.Update(msg)
		cmds = append(cmds, cmd)
	}
	m.resultViewport, cmd = m.resultViewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// executeCommand parses one line of input, runs it against the key set and
// refreshes the panes.
func (m Model) executeCommand(input string) Model {
	args, err := shellwords.Parse(input)
	if err != nil || len(args) == 0 {
		m.statusMsg = m.styles.ErrorMessage.Render(fmt.Sprintf("cannot parse %q", input))
		return m
	}

	verb, rest := strings.ToLower(args[0]), args[1:]
	switch verb {
	case "add":
		if len(rest) == 0 {
			m.statusMsg = m.styles.ErrorMessage.Render("add wants at least one key")
			return m
		}
		added := 0
		for _, key := range rest {
			if m.keyset.Add(key) {
				added++
			}
		}
		m.statusMsg = m.styles.SuccessMessage.Render(
			fmt.Sprintf("added %d of %d (duplicates replace silently)", added, len(rest)))

	case "del":
		if len(rest) == 0 {
			m.statusMsg = m.styles.ErrorMessage.Render("del wants at least one key")
			return m
		}
		removed := 0
		for _, key := range rest {
			if m.keyset.Remove(key) {
				removed++
			}
		}
		m.statusMsg = m.styles.SuccessMessage.Render(fmt.Sprintf("removed %d of %d", removed, len(rest)))

	case "has":
		if len(rest) != 1 {
			m.statusMsg = m.styles.ErrorMessage.Render("has wants exactly one key")
			return m
		}
		if m.keyset.Has(rest[0]) {
			m.resultViewport.SetContent(fmt.Sprintf("✔ %q is in the set", rest[0]))
		} else {
			m.resultViewport.SetContent(fmt.Sprintf("✘ %q is not in the set", rest[0]))
		}

	case "range":
		if len(rest) != 2 {
			m.statusMsg = m.styles.ErrorMessage.Render("range wants two bounds: range <from> <to>")
			return m
		}
		start := strings.TrimSuffix(rest[0], ",")
		res := m.keyset.Range(start, rest[1])
		if len(res) == 0 {
			m.resultViewport.SetContent(fmt.Sprintf("no keys in [%s, %s]", start, rest[1]))
		} else {
			m.resultViewport.SetContent(fmt.Sprintf("%d keys in [%s, %s]:\n\n%s",
				len(res), start, rest[1], strings.Join(res, "\n")))
		}

	case "snap":
		if len(rest) != 1 {
			m.statusMsg = m.styles.ErrorMessage.Render("snap wants a name")
			return m
		}
		snap := m.keyset.TakeSnapshot(rest[0])
		m.statusMsg = m.styles.SuccessMessage.Render(
			fmt.Sprintf("snapshot %q taken at %s (%d keys)", rest[0], FormatDateTime(snap.TakenAt), snap.Tree.Size()))

	case "snaps":
		snaps := m.keyset.Snapshots()
		if len(snaps) == 0 {
			m.resultViewport.SetContent("no snapshots yet; take one with: snap <name>")
			break
		}
		names := make([]string, 0, len(snaps))
		for name := range snaps {
			names = append(names, name)
		}
		sort.Strings(names)
		var b strings.Builder
		for _, name := range names {
			snap := snaps[name]
			fmt.Fprintf(&b, "%s  %s  %d keys\n", FormatDateTime(snap.TakenAt), name, snap.Tree.Size())
		}
		m.resultViewport.SetContent(b.String())

	case "restore":
		if len(rest) != 1 {
			m.statusMsg = m.styles.ErrorMessage.Render("restore wants a snapshot name")
			return m
		}
		if err := m.keyset.RestoreSnapshot(rest[0]); err != nil {
			m.statusMsg = m.styles.ErrorMessage.Render(err.Error())
			return m
		}
		m.statusMsg = m.styles.SuccessMessage.Render(fmt.Sprintf("restored snapshot %q", rest[0]))

	case "undo":
		if err := m.keyset.Undo(); err != nil {
			m.statusMsg = m.styles.ErrorMessage.Render(err.Error())
			return m
		}
		m.statusMsg = m.styles.SuccessMessage.Render("stepped back one version")

	case "clear":
		m.resultViewport.SetContent("")
		m.statusMsg = ""

	default:
		m.statusMsg = m.styles.ErrorMessage.Render(fmt.Sprintf("unknown command %q; press f1 for help", verb))
		return m
	}

	m.keysList.SetItems(keyItems(m.keyset.Keys()))
	m.keysList.Title = fmt.Sprintf("Keys (ascending) — %d, height %d", m.keyset.Len(), m.keyset.Height())
	return m
}

func (m Model) renderHelp() string {
	if m.glamourRenderer != nil {
		if out, err := m.glamourRenderer.Render(tuiHelpMarkdown); err == nil {
			return out
		}
	}
	return tuiHelpMarkdown
}

// updateLayout recalculates component sizes based on terminal dimensions
func (m *Model) updateLayout() {
	inputHeight := 3
	footerHeight := 2
	panelHeight := m.height - inputHeight - footerHeight - 2
	if panelHeight < 3 {
		panelHeight = 3
	}

	listWidth := m.width / 2
	viewportWidth := m.width - listWidth - 4
	if viewportWidth < 10 {
		viewportWidth = 10
	}

	m.textInput.Width = m.width - 8
	m.keysList.SetSize(listWidth-2, panelHeight)
	m.resultViewport.Width = viewportWidth
	m.resultViewport.Height = panelHeight
}

func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	title := m.styles.Title.Render(fmt.Sprintf("🌳 Keytree %s", version))

	inputStyle := m.styles.BorderBlurred
	listStyle := m.styles.BorderBlurred
	if m.focusIndex == 0 {
		inputStyle = m.styles.BorderFocused
	} else {
		listStyle = m.styles.BorderFocused
	}

	input := inputStyle.Width(m.width - 4).Render(m.textInput.View())
	left := listStyle.Render(m.keysList.View())
	right := m.styles.BorderBlurred.Render(m.resultViewport.View())
	panels := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	hints := m.styles.HelpDesc.Render("tab: focus • f1: help • ctrl+y: copy keys • esc: quit")
	footer := hints
	if m.statusMsg != "" {
		footer = m.statusMsg + "  " + hints
	}
	quote := m.styles.HelpDesc.Render("“" + m.quote + "”")

	return lipgloss.JoinVertical(lipgloss.Left, title, input, panels, footer, quote)
}

// copyToClipboard copies text to clipboard
func copyToClipboard(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "📋 Copied %s%d keys%s to clipboard.\n", Green, strings.Count(text, "\n")+1, Reset)
	return nil
}

// runBubbleTeaApp starts the Bubble Tea application
func runBubbleTeaApp(ks *KeySet, config *Config) error {
	model := InitialModel(ks, config)

	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := program.Run()
	return err
}
