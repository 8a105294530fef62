package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"houseprice/internal/domain"
	"houseprice/internal/features"
	"houseprice/internal/importance"
	"houseprice/internal/service"
)

// PricePort is the TUI-facing subset of the price service.
type PricePort interface {
	Fields() []features.Field
	Assemble(in features.RawInputs) domain.FeatureVector
	Predict(ctx context.Context, in features.RawInputs) (domain.PredictionResult, error)
	Impact() (importance.Ranking, error)
	Importance() (importance.Ranking, error)
	Overview() (*service.Overview, error)
	ModelErr() error
	DatasetErr() error
}

type page int

const (
	pagePredict page = iota
	pageOverview
	pageImportance
	pageCount
)

var pageTitles = [pageCount]string{"Prediction", "Data Overview", "Feature Importance"}

// Model is the Bubble Tea model for the TUI application.
type Model struct {
	service  PricePort
	keys     keyMap
	help     help.Model
	input    textinput.Model
	viewport viewport.Model

	fields  []features.Field
	inputs  features.RawInputs
	vector  domain.FeatureVector
	cursor  int
	editing bool

	result    *domain.PredictionResult
	predErr   error
	impact    importance.Ranking
	impactErr error

	overview    *service.Overview
	overviewErr error
	ranking     importance.Ranking
	rankingErr  error

	page   page
	status string
	ready  bool
}

// New creates a new TUI model instance with the form at its defaults.
func New(svc PricePort) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 32
	m := Model{
		service:  svc,
		keys:     defaultKeyMap(),
		help:     help.New(),
		input:    ti,
		viewport: viewport.New(0, 0),
		fields:   svc.Fields(),
		inputs:   features.DefaultInputs(),
		status:   startupStatus(svc),
	}
	m.vector = svc.Assemble(m.inputs)
	return m
}

func startupStatus(svc PricePort) string {
	switch merr, derr := svc.ModelErr(), svc.DatasetErr(); {
	case merr != nil && derr != nil:
		return fmt.Sprintf("Error: %v. Warning: %v", merr, derr)
	case merr != nil:
		return "Error: " + merr.Error()
	case derr != nil:
		return "Warning: could not load the dataset. Some features may be limited."
	}
	return "Ready. Fill in the form and press Enter on Predict."
}

// Init initializes the model.
func (m Model) Init() tea.Cmd { return nil }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		m.help.Width = msg.Width
		m.viewport.Width = max(20, msg.Width-bodyStyle.GetHorizontalFrameSize())
		m.viewport.Height = max(3, msg.Height-chromeLines)
		m.refresh()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.editing {
			return m.updateEditing(msg)
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextPage):
			m.setPage((m.page + 1) % pageCount)
			return m, nil
		case key.Matches(msg, m.keys.PrevPage):
			m.setPage((m.page + pageCount - 1) % pageCount)
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
		if m.page == pagePredict {
			return m.updateForm(msg)
		}
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	onButton := m.cursor == len(m.fields)
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.fields) {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Left) && !onButton:
		m.fields[m.cursor].Nudge(&m.inputs, -1)
		m.rebuild()
	case key.Matches(msg, m.keys.Right) && !onButton:
		m.fields[m.cursor].Nudge(&m.inputs, 1)
		m.rebuild()
	case key.Matches(msg, m.keys.Edit):
		if onButton {
			m.predict()
			break
		}
		f := m.fields[m.cursor]
		m.input.SetValue(f.Value(&m.inputs))
		m.input.CursorEnd()
		m.input.Placeholder = f.Label
		m.editing = true
		m.status = editHint(f)
		cmd := m.input.Focus()
		m.refresh()
		return m, cmd
	case key.Matches(msg, m.keys.Predict):
		m.predict()
	case key.Matches(msg, m.keys.Reset):
		m.inputs = features.DefaultInputs()
		m.result, m.predErr = nil, nil
		m.rebuild()
		m.status = "Form reset to defaults."
	default:
		return m, nil
	}
	m.refresh()
	return m, nil
}

func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Edit):
		f := m.fields[m.cursor]
		if err := f.Set(&m.inputs, m.input.Value()); err != nil {
			m.status = "Invalid value: " + err.Error()
			return m, nil
		}
		m.editing = false
		m.input.Blur()
		m.rebuild()
		m.status = fmt.Sprintf("%s set to %s", f.Label, f.Value(&m.inputs))
		m.refresh()
		return m, nil
	case key.Matches(msg, m.keys.Cancel):
		m.editing = false
		m.input.Blur()
		m.status = "Edit cancelled."
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func editHint(f features.Field) string {
	if f.Kind == features.KindChoice {
		return fmt.Sprintf("%s: type one of %v", f.Label, f.Options())
	}
	hint := fmt.Sprintf("%s: %g to %g", f.Label, f.Min, f.Max)
	if f.Optional {
		hint += ` or "none"`
	}
	return hint
}

// rebuild re-assembles the feature vector after any form change.
func (m *Model) rebuild() {
	m.vector = m.service.Assemble(m.inputs)
}

func (m *Model) predict() {
	res, err := m.service.Predict(context.Background(), m.inputs)
	if err != nil {
		m.result, m.predErr = nil, err
		m.status = "Error: " + err.Error()
		return
	}
	m.result, m.predErr = &res, nil
	m.impact, m.impactErr = m.service.Impact()
	m.status = fmt.Sprintf("Predicted %s with the %s model.", res.Display(), res.Model)
}

func (m *Model) setPage(p page) {
	m.page = p
	switch p {
	case pageOverview:
		if m.overview == nil && m.overviewErr == nil {
			m.overview, m.overviewErr = m.service.Overview()
		}
	case pageImportance:
		m.ranking, m.rankingErr = m.service.Importance()
	}
	m.viewport.GotoTop()
	m.refresh()
}

// refresh re-renders the current page into the viewport and keeps the form cursor visible.
func (m *Model) refresh() {
	switch m.page {
	case pagePredict:
		content, line := m.renderForm()
		m.viewport.SetContent(content)
		if line < m.viewport.YOffset {
			m.viewport.SetYOffset(line)
		} else if h := m.viewport.Height; h > 0 && line >= m.viewport.YOffset+h {
			m.viewport.SetYOffset(line - h + 1)
		}
	case pageOverview:
		m.viewport.SetContent(m.renderOverview())
	case pageImportance:
		m.viewport.SetContent(m.renderImportance())
	}
}

// View renders the TUI layout and current page.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	out := titleStyle.Render("House Price Prediction") + "\n" + m.renderTabs() + "\n"
	out += bodyStyle.Render(m.viewport.View()) + "\n"
	if m.editing {
		out += inputBoxStyle.Render(m.input.View()) + "\n"
	} else if m.page == pagePredict && m.cursor < len(m.fields) {
		out += hintStyle.Render(m.fields[m.cursor].Help) + "\n"
	}
	out += statusStyle.Render(m.status) + "\n"
	out += m.help.View(m.keys) + "\n"
	out += noteStyle.Render(footerNote)
	return out
}

const footerNote = "Note: this is a demonstration app for house price prediction. " +
	"Actual predictions may vary based on model training and data quality."
