// ============================================================================
// spiffy - SPIF Patent Number Checker
// ============================================================================
//
// Package:     resultviewer
// Description: Bubbletea model for browsing check results
// Author:      Mike Stoffels
// Created:     2025-12-14
// License:     MIT
// ============================================================================

package resultviewer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/spiffy/internal/validator"
)

// StatusFilter tracks which categories are shown
type StatusFilter struct {
	OK          bool
	Invalid     bool
	Unchecked   bool
	Unsupported bool
}

func allCategories() StatusFilter {
	return StatusFilter{OK: true, Invalid: true, Unchecked: true, Unsupported: true}
}

// Allows reports whether entries of category c pass the filter
func (f StatusFilter) Allows(c Category) bool {
	switch c {
	case CategoryOK:
		return f.OK
	case CategoryInvalid:
		return f.Invalid
	case CategoryUnsupported:
		return f.Unsupported
	default:
		return f.Unchecked
	}
}

// Loader checks the workbook and returns its entries
type Loader func() ([]Entry, string, error)

// Config holds result viewer configuration
type Config struct {
	Input  string
	Loader Loader
}

// Model is the main Bubbletea model for the result viewer
type Model struct {
	// State
	width   int
	height  int
	ready   bool
	loading bool
	err     error

	// Components
	viewport viewport.Model
	spinner  spinner.Model

	// Result state
	allEntries      []Entry
	filteredEntries []Entry
	statusFilter    StatusFilter
	kindFilter      *validator.Kind
	sheet           string

	// Configuration
	input  string
	loader Loader
}

// New creates a new result viewer model
func New(cfg Config) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(BadgeOKStyle.GetForeground())

	return Model{
		spinner:      sp,
		loading:      cfg.Loader != nil,
		statusFilter: allCategories(),
		input:        cfg.Input,
		loader:       cfg.Loader,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	if m.loader == nil {
		return nil
	}
	return tea.Batch(m.spinner.Tick, m.load)
}

func (m Model) load() tea.Msg {
	entries, sheet, err := m.loader()
	return resultsLoadedMsg{entries: entries, sheet: sheet, err: err}
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 4 // Title + filter bar
		footerHeight := 4 // Status bar + help
		viewportHeight := msg.Height - headerHeight - footerHeight
		if viewportHeight < 1 {
			viewportHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, viewportHeight)
			m.viewport.YPosition = headerHeight
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = viewportHeight
		}
		m.updateViewportContent()

	case spinner.TickMsg:
		if m.loading {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case resultsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
		} else {
			m.allEntries = msg.entries
			m.sheet = msg.sheet
			m.applyFilters()
			m.updateViewportContent()
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit

	case tea.KeyRunes:
		switch string(msg.Runes) {
		case "q":
			return m, tea.Quit

		// Status filters
		case "1":
			m.statusFilter.OK = !m.statusFilter.OK
		case "2":
			m.statusFilter.Invalid = !m.statusFilter.Invalid
		case "3":
			m.statusFilter.Unchecked = !m.statusFilter.Unchecked
		case "4":
			m.statusFilter.Unsupported = !m.statusFilter.Unsupported
		case "0":
			m.statusFilter = allCategories()
			m.kindFilter = nil

		// Kind filter cycles all -> application -> publication
		case "k":
			m.kindFilter = nextKind(m.kindFilter)

		case "g":
			m.viewport.GotoTop()
			return m, nil
		case "G":
			m.viewport.GotoBottom()
			return m, nil
		default:
			return m, nil
		}
		m.applyFilters()
		m.updateViewportContent()
		return m, nil

	case tea.KeyPgUp:
		m.viewport.ViewUp()
		return m, nil

	case tea.KeyPgDown:
		m.viewport.ViewDown()
		return m, nil

	case tea.KeyUp:
		m.viewport.LineUp(1)
		return m, nil

	case tea.KeyDown:
		m.viewport.LineDown(1)
		return m, nil
	}

	return m, nil
}

func nextKind(k *validator.Kind) *validator.Kind {
	if k == nil {
		next := validator.Application
		return &next
	}
	if *k == validator.Application {
		next := validator.Publication
		return &next
	}
	return nil
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Loading results..."
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderFilterBar())
	b.WriteString("\n")
	b.WriteString(m.renderResultArea())
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(m.renderHelpBar())

	return b.String()
}

func (m Model) renderHeader() string {
	header := lipgloss.JoinHorizontal(lipgloss.Center,
		LogoStyle.Render(Logo),
		strings.Repeat(" ", 3),
		SubHeaderStyle.Render(m.input),
	)
	return TitlePanelStyle.Width(m.width - 4).Render(header)
}

func (m Model) renderFilterBar() string {
	filters := []string{
		fmt.Sprintf("1:%s", RenderFilterStatus("OK", m.statusFilter.OK)),
		fmt.Sprintf("2:%s", RenderFilterStatus("INVALID", m.statusFilter.Invalid)),
		fmt.Sprintf("3:%s", RenderFilterStatus("SKIPPED", m.statusFilter.Unchecked)),
		fmt.Sprintf("4:%s", RenderFilterStatus("UNSUPPORTED", m.statusFilter.Unsupported)),
	}

	kind := "all"
	if m.kindFilter != nil {
		kind = m.kindFilter.String()
	}

	content := strings.Join(filters, "  ") +
		"  " + HelpDescStyle.Render(fmt.Sprintf("[%d/%d]", len(m.filteredEntries), len(m.allEntries))) +
		"  " + FilterActiveStyle.Render("kind:"+kind)

	return FilterBarStyle.Width(m.width - 2).Render(content)
}

func (m Model) renderResultArea() string {
	style := PanelStyle.Width(m.width - 2).Height(m.viewport.Height + 2)
	return style.Render(m.viewport.View())
}

func (m Model) renderStatusBar() string {
	var left string
	switch {
	case m.loading:
		left = m.spinner.View() + " Checking..."
	case m.err != nil:
		left = ErrorStyle.Render(m.err.Error())
	default:
		left = HelpDescStyle.Render(fmt.Sprintf("Sheet: %s", m.sheet))
	}
	return StatusBarStyle.Width(m.width - 2).Render(left)
}

func (m Model) renderHelpBar() string {
	items := []string{
		RenderKeyHint("1-4", "Status"),
		RenderKeyHint("0", "All"),
		RenderKeyHint("k", "Kind"),
		RenderKeyHint("g/G", "Top/Bottom"),
		RenderKeyHint("q", "Quit"),
	}
	return HelpStyle.Render(strings.Join(items, "  "))
}

// updateViewportContent renders the filtered entries into the viewport
func (m *Model) updateViewportContent() {
	if !m.ready {
		return
	}

	var content strings.Builder
	for _, e := range m.filteredEntries {
		o := e.Outcome
		line := lipgloss.JoinHorizontal(lipgloss.Top,
			RowNumberStyle.Render(fmt.Sprintf("%d", e.SheetRow)),
			" ",
			KindStyle.Render(kindTag(o.Kind)),
			RenderBadge(CategoryOf(o)),
			" ",
			IdentifierStyle.Render(o.Identifier),
			MessageStyle.Render(o.Text()),
		)
		content.WriteString(line)
		content.WriteString("\n")
	}
	m.viewport.SetContent(content.String())
}

func kindTag(k validator.Kind) string {
	if k == validator.Publication {
		return "PUB"
	}
	return "APP"
}

// applyFilters filters entries based on the current filter settings
func (m *Model) applyFilters() {
	m.filteredEntries = make([]Entry, 0, len(m.allEntries))
	for _, e := range m.allEntries {
		if m.kindFilter != nil && e.Outcome.Kind != *m.kindFilter {
			continue
		}
		if !m.statusFilter.Allows(CategoryOf(e.Outcome)) {
			continue
		}
		m.filteredEntries = append(m.filteredEntries, e)
	}
}

// Visible returns the entries that pass the current filters
func (m Model) Visible() []Entry {
	return m.filteredEntries
}

// Err returns the load error, if any
func (m Model) Err() error {
	return m.err
}

// Run starts the result viewer TUI
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok && m.err != nil {
		return m.err
	}
	return nil
}
