package redirecttui

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MacroPower/bookredirect/pkg/redirect"
)

// GenerateModel shows a progress bar, a spinner per page being written, and a
// line per finished page.
type GenerateModel struct {
	err        error
	inFlight   map[string]int
	spinner    spinner.Model
	progress   progress.Model
	totalPages int
	completed  int
	failed     int
	width      int
	height     int
	mu         sync.RWMutex
	done       bool
}

func NewGenerateModel() *GenerateModel {
	p := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	)

	s := spinner.New()
	s.Style = spinnerStyle

	return &GenerateModel{
		inFlight: map[string]int{},
		spinner:  s,
		progress: p,
	}
}

func (m *GenerateModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.setPercent(0))
}

// setPercent moves the bar using a copy of the progress model. The returned
// command reads the model it was created from when its tick fires, so that
// model must not be written afterwards.
func (m *GenerateModel) setPercent(pct float64) tea.Cmd {
	p := m.progress
	cmd := p.SetPercent(pct)
	m.progress = p

	return cmd
}

// Completed returns the number of finished pages, failed pages included.
func (m *GenerateModel) Completed() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.completed
}

// Failed returns the number of pages that could not be written.
func (m *GenerateModel) Failed() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.failed
}

// Err returns the error the run ended with, if any.
func (m *GenerateModel) Err() error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.err
}

//nolint:ireturn // Third-party.
func (m *GenerateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height

	case tea.KeyMsg:
		if keyExits(msg) {
			return m, tea.Quit
		}

	case teaMsgWriteLog:
		return m, writeLog(msg, m.width)

	case redirect.EventSetPageTotal:
		m.mu.Lock()
		defer m.mu.Unlock()

		m.totalPages = int(msg)

	case redirect.EventWritingPage:
		m.mu.Lock()
		defer m.mu.Unlock()

		m.inFlight[string(msg)]++

	case redirect.EventWrotePage:
		m.mu.Lock()
		defer m.mu.Unlock()

		m.inFlight[msg.Path]--
		if m.inFlight[msg.Path] <= 0 {
			delete(m.inFlight, msg.Path)
		}

		icon := checkMark
		if msg.Err != nil {
			m.failed++
			icon = errorMark
		}

		m.completed++

		var progressCmd tea.Cmd
		if m.totalPages > 0 {
			progressCmd = m.setPercent(float64(m.completed) / float64(m.totalPages))
		}

		return m, tea.Batch(
			progressCmd,
			tea.Printf("%s %s", icon, msg.Path),
		)

	case redirect.EventDone:
		m.mu.Lock()
		defer m.mu.Unlock()

		m.done = true
		m.err = msg.Err

		return m, tea.Sequence(finalPause(), tea.Quit)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd

	case progress.FrameMsg:
		newModel, cmd := m.progress.Update(msg)
		if newModel, ok := newModel.(progress.Model); ok {
			m.progress = newModel
		}

		return m, cmd
	}

	return m, nil
}

func (m *GenerateModel) View() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.done {
		if m.err != nil {
			return getErrorMessage(m.err, m.width)
		}

		return doneStyle.Render(fmt.Sprintf("Done! Wrote %d pages.\n", m.completed))
	}

	w := lipgloss.Width(strconv.Itoa(m.totalPages))
	pageCount := fmt.Sprintf(" %*d/%*d", w, m.completed, w, m.totalPages)

	progRendered := progressStyle.Render(m.progress.View() + pageCount)
	gap := strings.Repeat(" ", max(0, m.width-lipgloss.Width(progRendered)))
	progOut := progRendered + gap + "\n"

	pages := make([]string, 0, len(m.inFlight))
	for p := range m.inFlight {
		pages = append(pages, p)
	}

	slices.Sort(pages)

	spinners := make([]string, 0, len(pages))
	for _, p := range pages {
		spin := m.spinner.View() + " "
		cellsAvail := max(0, m.width-lipgloss.Width(spin))

		info := lipgloss.NewStyle().MaxWidth(cellsAvail).Render("Writing " + currentPageStyle.Render(p))
		gap := strings.Repeat(" ", max(0, m.width-lipgloss.Width(spin+info)))

		spinners = append(spinners, spin+info+gap)
	}

	return strings.Join(spinners, "\n") + "\n" + progOut
}
