package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexbl00m/vo2calc/internal/config"
	apperrors "github.com/alexbl00m/vo2calc/internal/errors"
	"github.com/alexbl00m/vo2calc/internal/export"
	"github.com/alexbl00m/vo2calc/internal/logging"
	"github.com/alexbl00m/vo2calc/internal/server"
	"github.com/alexbl00m/vo2calc/internal/sysmon"
	"github.com/alexbl00m/vo2calc/internal/vo2max"
)

// TickMsg drives the elapsed-time display and system stat sampling.
type TickMsg time.Time

// SysStatsMsg carries a system resource snapshot for the footer.
type SysStatsMsg sysmon.Stats

// ExportDoneMsg reports the outcome of a CSV export.
type ExportDoneMsg struct {
	Path string
	Err  error
}

// tabState holds the input fields of one protocol tab.
type tabState struct {
	protocol vo2max.Protocol
	fields   []inputField
}

// Model is the root bubbletea model for the calculator form.
type Model struct {
	tabs       []tabState
	activeTab  int
	focusField int

	sex       vo2max.Sex
	result    *vo2max.Result
	resultErr error

	exportPath string
	exportErr  error

	keymap  KeyMap
	styles  Styles
	config  config.AppConfig
	metrics *server.Metrics
	log     logging.Logger

	version   string
	startTime time.Time
	sysStats  sysmon.Stats
	width     int
	height    int
	exitCode  int
}

// NewModel creates the form model with fields pre-filled from the
// configuration defaults.
func NewModel(cfg config.AppConfig, version string, metrics *server.Metrics, log logging.Logger) Model {
	tabs := make([]tabState, 0, len(vo2max.Protocols()))
	for _, p := range vo2max.Protocols() {
		tabs = append(tabs, tabState{protocol: p, fields: fieldsFor(p, cfg)})
	}

	return Model{
		tabs:      tabs,
		sex:       cfg.Sex,
		keymap:    DefaultKeyMap(),
		styles:    newStyles(),
		config:    cfg,
		metrics:   metrics,
		log:       log,
		version:   version,
		startTime: time.Now(),
		exitCode:  apperrors.ExitSuccess,
	}
}

// fieldsFor builds the input field set for one protocol tab.
func fieldsFor(p vo2max.Protocol, cfg config.AppConfig) []inputField {
	weight := newInputField("Body Weight", "kg", cfg.WeightKg, config.MinWeightKg, config.MaxWeightKg, 0.5)
	switch p {
	case vo2max.ProtocolRamp:
		return []inputField{
			weight,
			newInputField("Final Stage Power", "W", cfg.FinalStagePowerW, config.MinFinalStageW, config.MaxFinalStageW, cfg.StageIncrementW),
			newInputField("Seconds into Final Stage", "s", cfg.SecondsIntoFinalStage, config.MinSecondsInStage, cfg.StageDurationSec, 5),
		}
	case vo2max.ProtocolFTP:
		return []inputField{
			weight,
			newInputField("Functional Threshold Power", "W", cfg.FTPW, config.MinFTPW, config.MaxFTPW, 5),
		}
	default:
		return []inputField{
			weight,
			newInputField("Average Power", "W", cfg.PowerW, config.MinPowerW, config.MaxPowerW, 5),
		}
	}
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case TickMsg:
		return m, tea.Batch(sampleSysStatsCmd(), tickCmd())

	case SysStatsMsg:
		m.sysStats = sysmon.Stats(msg)
		return m, nil

	case ExportDoneMsg:
		m.exportPath = msg.Path
		m.exportErr = msg.Err
		if msg.Err != nil {
			m.log.Error("export failed", logging.Err(msg.Err))
		} else {
			m.log.Info("results exported", logging.String("path", msg.Path))
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keymap.NextTab):
		m.activeTab = (m.activeTab + 1) % len(m.tabs)
		m.focusField = 0
		return m, nil

	case key.Matches(msg, m.keymap.PrevTab):
		m.activeTab = (m.activeTab + len(m.tabs) - 1) % len(m.tabs)
		m.focusField = 0
		return m, nil

	case key.Matches(msg, m.keymap.NextField):
		fields := m.tabs[m.activeTab].fields
		if m.focusField < len(fields)-1 {
			m.focusField++
		}
		return m, nil

	case key.Matches(msg, m.keymap.PrevField):
		if m.focusField > 0 {
			m.focusField--
		}
		return m, nil

	case key.Matches(msg, m.keymap.Adjust):
		tab := &m.tabs[m.activeTab]
		if m.focusField < len(tab.fields) {
			if msg.String() == "+" {
				tab.fields[m.focusField].adjust(1)
			} else {
				tab.fields[m.focusField].adjust(-1)
			}
		}
		return m, nil

	case key.Matches(msg, m.keymap.Calculate):
		return m.calculate(), nil

	case key.Matches(msg, m.keymap.ToggleSex):
		if m.sex == vo2max.Male {
			m.sex = vo2max.Female
		} else {
			m.sex = vo2max.Male
		}
		return m, nil

	case key.Matches(msg, m.keymap.Export):
		if m.result != nil {
			target := m.config.OutputFile
			if target == "auto" {
				target = ""
			}
			return m, exportCmd(target, *m.result)
		}
		return m, nil
	}

	// Remaining keys edit the focused input field.
	tab := &m.tabs[m.activeTab]
	if m.focusField < len(tab.fields) {
		tab.fields[m.focusField].handleKey(msg)
	}
	return m, nil
}

// calculate parses the active tab's fields and runs the matching estimator.
func (m Model) calculate() Model {
	tab := m.tabs[m.activeTab]

	values := make([]float64, len(tab.fields))
	for i, f := range tab.fields {
		v, err := f.parse()
		if err != nil {
			m.resultErr = err
			m.result = nil
			return m
		}
		if !f.valid() {
			m.resultErr = apperrors.NewInvalidInput(f.label, "value %g outside range %s", v, f.rangeHint())
			m.result = nil
			return m
		}
		values[i] = v
	}

	var (
		res vo2max.Result
		err error
	)
	switch tab.protocol {
	case vo2max.ProtocolFiveMinute:
		res, err = vo2max.FromFiveMinuteTest(values[0], values[1])
	case vo2max.ProtocolSixMinute:
		res, err = vo2max.FromSixMinuteTest(values[0], values[1])
	case vo2max.ProtocolRamp:
		res, err = vo2max.FromRampTest(values[0], values[1], values[2], m.config.RampOptions())
	case vo2max.ProtocolFTP:
		res, err = vo2max.FromFTP(values[0], values[1])
	}

	if err != nil {
		m.resultErr = err
		m.result = nil
		return m
	}

	m.resultErr = nil
	m.result = &res
	m.exportPath = ""
	m.exportErr = nil

	if m.metrics != nil {
		m.metrics.ObserveCalculation(tab.protocol, res)
	}
	m.log.Info("calculated",
		logging.String("protocol", string(tab.protocol)),
		logging.Float64("vo2max_relative", res.VO2maxRelative))

	return m
}

// View renders the full form.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	sections := []string{
		m.renderHeader(),
		m.renderTabs(),
		m.renderForm(),
		m.renderResult(),
		m.renderFooter(),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// Run is the public entry point for the TUI mode.
// It creates the bubbletea program, runs it, and returns the exit code.
func Run(ctx context.Context, cfg config.AppConfig, version string, metrics *server.Metrics, log logging.Logger) int {
	model := NewModel(cfg, version, metrics, log)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	finalModel, err := p.Run()
	if err != nil {
		if apperrors.IsContextError(err) || ctx.Err() != nil {
			return apperrors.ExitErrorCanceled
		}
		return apperrors.ExitErrorGeneric
	}

	if m, ok := finalModel.(Model); ok {
		return m.exitCode
	}
	return apperrors.ExitSuccess
}

// tickCmd returns a command that sends a TickMsg after 2 seconds.
func tickCmd() tea.Cmd {
	return tea.Tick(2*time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// sampleSysStatsCmd reads system-wide CPU and memory stats for the footer.
func sampleSysStatsCmd() tea.Cmd {
	return func() tea.Msg {
		return SysStatsMsg(sysmon.Sample())
	}
}

// exportCmd writes the result to CSV off the UI loop.
func exportCmd(path string, res vo2max.Result) tea.Cmd {
	return func() tea.Msg {
		written, err := export.WriteFile(path, export.Record{Date: time.Now(), Result: res})
		return ExportDoneMsg{Path: written, Err: err}
	}
}
