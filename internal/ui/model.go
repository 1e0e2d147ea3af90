package ui

import (
	"fmt"
	"time"

	tslc "github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"weathercompare.app/internal/models"
	"weathercompare.app/internal/store"
)

// AppState represents the current state of the application
type AppState int

const (
	StateSearch  AppState = iota // Enter a location or dataset key
	StateLoading                 // Loading weather data
	StateDisplay                 // Chart + available dates for the selection
	StateError                   // Error state
)

// ActivePane represents which pane is currently focused
type ActivePane int

const (
	PaneChart ActivePane = iota
	PaneDates
)

// Model represents the application's state
type Model struct {
	state      AppState
	activePane ActivePane
	width      int
	height     int
	err        error

	store  *store.Store
	window models.HourWindow

	// Startup load targets
	initialDataset  string
	initialLocation string

	// Search
	searchInput textinput.Model
	searchQuery string

	// Loading
	spinner spinner.Model

	// Display
	availableDates []time.Time
	dateList       list.Model
	chart          tslc.Model
	chartReady     bool
}

// NewModel creates a new application model. datasetKey and location
// control what loads at startup; both empty means the default sample.
func NewModel(s *store.Store, window models.HourWindow, datasetKey, location string) Model {
	ti := textinput.New()
	ti.Placeholder = "Enter a location (e.g. London,UK) or sample key (46220, 70601)..."
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return Model{
		state:           StateLoading,
		activePane:      PaneChart,
		store:           s,
		window:          window,
		initialDataset:  datasetKey,
		initialLocation: location,
		searchInput:     ti,
		spinner:         sp,
	}
}

// Init kicks off the startup load
func (m Model) Init() tea.Cmd {
	if m.initialLocation != "" {
		return tea.Batch(m.spinner.Tick, loadWeatherData(m.store, m.initialLocation))
	}
	return tea.Batch(m.spinner.Tick, loadSampleData(m.store, m.initialDataset))
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		if m.state == StateDisplay {
			m.refreshDisplay()
		}
		return m, nil
	}

	switch msg := msg.(type) {
	case errMsg:
		m.err = msg.err
		m.state = StateError
		return m, nil

	case dataLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.state = StateError
			return m, nil
		}
		// Default the selected range to the full availability span
		if m.store.SelectedTimeRange() == nil {
			m.store.SetSelectedTimeRange(m.store.AvailableTimeRange(m.store.SelectedLocation()))
		}
		m.refreshDisplay()
		m.state = StateDisplay
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		switch m.state {
		case StateSearch:
			return m.handleSearchInput(keyMsg)

		case StateDisplay:
			return m.handleDisplayKeys(keyMsg)

		case StateError:
			if keyMsg.String() == "q" {
				return m, tea.Quit
			}
			// Any other key returns to search
			m.state = StateSearch
			m.err = nil
			m.searchInput.Focus()
			return m, textinput.Blink
		}
	}

	switch m.state {
	case StateLoading:
		m.spinner, cmd = m.spinner.Update(msg)
	case StateSearch:
		m.searchInput, cmd = m.searchInput.Update(msg)
	case StateDisplay:
		if m.activePane == PaneDates {
			m.dateList, cmd = m.dateList.Update(msg)
		}
	}

	return m, cmd
}

// handleSearchInput handles keyboard input in search state
func (m Model) handleSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if m.err != nil && msg.Type != tea.KeyEnter {
		m.err = nil
	}

	if msg.Type == tea.KeyEnter {
		query := m.searchInput.Value()
		if query == "" {
			return m, nil
		}
		m.searchQuery = query
		m.err = nil
		m.state = StateLoading
		return m, tea.Batch(m.spinner.Tick, loadQuery(m.store, query))
	}

	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// handleDisplayKeys handles keyboard input in display state
func (m Model) handleDisplayKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "s":
		m.state = StateSearch
		m.searchInput.SetValue("")
		m.searchInput.Focus()
		return m, textinput.Blink

	case "tab":
		if m.activePane == PaneChart {
			m.activePane = PaneDates
		} else {
			m.activePane = PaneChart
		}
		return m, nil

	case "b":
		hours := m.store.BufferHours() - 1
		if hours < 0 {
			hours = 0
		}
		m.store.SetBufferHours(hours)
		m.refreshDisplay()
		return m, nil

	case "B":
		m.store.SetBufferHours(m.store.BufferHours() + 1)
		m.refreshDisplay()
		return m, nil

	case "[":
		m.window.StartHour = (m.window.StartHour + 23) % 24
		m.refreshDisplay()
		return m, nil

	case "]":
		m.window.StartHour = (m.window.StartHour + 1) % 24
		m.refreshDisplay()
		return m, nil

	case "{":
		m.window.EndHour = (m.window.EndHour + 23) % 24
		m.refreshDisplay()
		return m, nil

	case "}":
		m.window.EndHour = (m.window.EndHour + 1) % 24
		m.refreshDisplay()
		return m, nil

	case "c":
		m.store.ClearSelectedDates()
		m.refreshDisplay()
		return m, nil

	case "enter":
		if m.activePane == PaneDates {
			if item, ok := m.dateList.SelectedItem().(dateItem); ok {
				m.store.ToggleDateSelection(item.date)
				m.refreshDateList()
			}
		}
		return m, nil
	}

	if m.activePane == PaneDates {
		m.dateList, cmd = m.dateList.Update(msg)
	}
	return m, cmd
}

// refreshDisplay recomputes the derived availability and chart state
func (m *Model) refreshDisplay() {
	location := m.store.SelectedLocation()
	m.availableDates = m.store.AvailableDates(location, m.window)
	m.refreshDateList()
	m.rebuildChart()
}

// refreshDateList rebuilds the date list, preserving the cursor
func (m *Model) refreshDateList() {
	index := m.dateList.Index()
	m.dateList = createDateList(m.store, m.availableDates, m.listWidth(), m.listHeight())
	if index < len(m.availableDates) {
		m.dateList.Select(index)
	}
}

// rebuildChart redraws the temperature chart for the selected range
func (m *Model) rebuildChart() {
	location := m.store.SelectedLocation()
	r := m.store.SelectedTimeRange()
	if r == nil {
		r = m.store.AvailableTimeRange(location)
	}
	if location == "" || r == nil {
		m.chartReady = false
		return
	}

	metrics := m.store.WeatherForTimeRange(location, *r)
	if len(metrics) == 0 {
		m.chartReady = false
		return
	}

	chart := tslc.New(m.chartWidth(), m.chartHeight())
	for _, metric := range metrics {
		chart.Push(tslc.TimePoint{Time: time.Unix(metric.Timestamp, 0), Value: metric.Temp})
	}
	chart.SetStyle(chartLineStyle)
	chart.DrawBraille()

	m.chart = chart
	m.chartReady = true
}

func (m Model) chartWidth() int {
	w := m.width - 8
	if w < 40 {
		w = 40
	}
	return w
}

func (m Model) chartHeight() int {
	h := m.height / 3
	if h < 10 {
		h = 10
	}
	return h
}

func (m Model) listWidth() int {
	w := m.width - 8
	if w < 40 {
		w = 40
	}
	return w
}

func (m Model) listHeight() int {
	h := m.height / 3
	if h < 8 {
		h = 8
	}
	return h
}

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	switch m.state {
	case StateSearch:
		return m.viewSearch()
	case StateLoading:
		return m.viewLoading()
	case StateDisplay:
		return m.viewDisplay()
	case StateError:
		return m.viewError()
	}

	return ""
}

// viewSearch renders the search view
func (m Model) viewSearch() string {
	title := titleStyle.Render("🌤 Weather Compare")
	subtitle := mutedStyle.Render("Hourly weather history, side by side")

	searchBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(1, 2).
		Width(64).
		Render(m.searchInput.View())

	var sections []string
	sections = append(sections, title, subtitle, "", searchBox)

	if m.err != nil {
		sections = append(sections, "", errorStyle.Padding(0, 2).Render("✗ "+m.err.Error()))
	}

	examples := mutedStyle.Render("Examples: 46220 | 70601 | Lake Charles,LA")
	help := helpStyle.Render("Enter: Load • Ctrl+C: Quit")
	sections = append(sections, "", examples, "", help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// viewLoading renders the loading view
func (m Model) viewLoading() string {
	target := m.searchQuery
	if target == "" {
		target = "sample data"
	}
	return fmt.Sprintf("\n %s Loading weather for %s...\n", m.spinner.View(), target)
}

// viewError renders the error view
func (m Model) viewError() string {
	title := errorStyle.Render("✗ Error")

	errorText := "An unknown error occurred"
	if m.err != nil {
		errorText = m.err.Error()
	}

	help := helpStyle.Render("Press any key to return to search • Q: Quit")

	return lipgloss.JoinVertical(lipgloss.Left, title, "", errorText, "", help)
}

// viewDisplay renders the chart and available dates
func (m Model) viewDisplay() string {
	location := m.store.SelectedLocation()
	data := m.store.LocationData(location)

	var sections []string

	header := titleStyle.Render(fmt.Sprintf("🌤 %s", location))
	if data != nil && data.ResolvedAddress != "" {
		header += " " + mutedStyle.Render(data.ResolvedAddress)
	}
	sections = append(sections, header)

	status := fmt.Sprintf("%s %s   %s %02d:00–%02d:59   %s %d",
		labelStyle.Render("buffer"), valueStyle.Render(fmt.Sprintf("%.0fh", m.store.BufferHours())),
		labelStyle.Render("window"), m.window.StartHour, m.window.EndHour,
		labelStyle.Render("selected"), len(m.store.SelectedDates()))
	sections = append(sections, mutedStyle.Render(status), "")

	// Chart pane
	sections = append(sections, sectionHeaderStyle.Render("TEMPERATURE"))
	chartPane := paneStyle
	if m.activePane == PaneChart {
		chartPane = activePaneStyle
	}
	if m.chartReady {
		sections = append(sections, chartPane.Render(m.chart.View()))
	} else {
		sections = append(sections, chartPane.Render(mutedStyle.Render("No data in the selected range")))
	}

	// Dates pane
	sections = append(sections, sectionHeaderStyle.Render("AVAILABLE DATES"))
	datesPane := paneStyle
	if m.activePane == PaneDates {
		datesPane = activePaneStyle
	}
	if len(m.availableDates) > 0 {
		sections = append(sections, datesPane.Render(m.dateList.View()))
	} else {
		sections = append(sections, datesPane.Render(mutedStyle.Render("No days with full coverage for this window")))
	}

	if selected := m.store.SelectedDates(); len(selected) > 0 {
		var days string
		for i, d := range selected {
			if i > 0 {
				days += "  "
			}
			days += selectedDateStyle.Render(d.Format("Jan 2"))
		}
		sections = append(sections, "", days)
	}

	help := helpStyle.Render("S: Search • Tab: Pane • Enter: Toggle date • b/B: Buffer • [/] {/}: Window • C: Clear • Q: Quit")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
