package tui

import (
	"context"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/footprint/internal/engine"
	"github.com/rshade/footprint/internal/footprint"
	"github.com/rshade/footprint/internal/survey"
)

// SurveyState represents the current state of the survey form.
type SurveyState int

const (
	// SurveyStateEditing indicates the user is answering questions.
	SurveyStateEditing SurveyState = iota
	// SurveyStateSubmitted indicates the form was submitted with valid answers.
	SurveyStateSubmitted
	// SurveyStateQuitting indicates the user left without submitting.
	SurveyStateQuitting
)

// fieldKind distinguishes free-text numeric questions from option pickers.
type fieldKind int

const (
	fieldNumber fieldKind = iota
	fieldInteger
	fieldChoice
)

// SurveyField is one question on the form.
type SurveyField struct {
	Key      string
	Section  string
	Question string

	kind    fieldKind
	input   textinput.Model
	options []string
	choice  int
}

// Value returns the field's current answer as entered or selected.
func (f SurveyField) Value() string {
	if f.kind == fieldChoice {
		return f.options[f.choice]
	}
	return f.input.Value()
}

// EstimateFunc computes a result for a complete survey.
type EstimateFunc func(context.Context, footprint.SurveyResponse) (*engine.Result, error)

// surveyRecalculateMsg is sent when a background estimate completes.
// seq identifies the request so superseded results can be dropped.
type surveyRecalculateMsg struct {
	seq    uint64
	result *engine.Result
	err    error
}

// Form sections, in display order.
const (
	SectionTransportation = "🚗 Transportation"
	SectionDiet           = "🍽 Diet"
	SectionHomeEnergy     = "🏠 Home Energy"
	SectionConsumption    = "🛍 Consumption & Waste"
)

// Form layout.
const (
	numberInputLimit    = 12
	surveyDefaultWidth  = 80
	surveyDefaultHeight = 24
)

// SurveyModel is the Bubble Tea model for the interactive survey form.
// Every committed change triggers a background estimate so the running
// total stays current; enter on the last question submits the form.
type SurveyModel struct {
	ctx context.Context

	initial footprint.SurveyResponse
	fields  []SurveyField
	focused int

	result *engine.Result
	err    error

	state   SurveyState
	loading bool
	seq     uint64

	width  int
	height int

	estimateFn EstimateFunc
}

// NewSurveyModel creates a form pre-filled with initial. estimateFn may be
// nil, in which case no running total is shown and Submit only validates.
func NewSurveyModel(ctx context.Context, initial footprint.SurveyResponse, estimateFn EstimateFunc) *SurveyModel {
	m := &SurveyModel{
		ctx:        ctx,
		initial:    initial,
		state:      SurveyStateEditing,
		width:      surveyDefaultWidth,
		height:     surveyDefaultHeight,
		estimateFn: estimateFn,
	}
	m.fields = buildSurveyFields(initial)
	m.fields[0].input.Focus()
	return m
}

// buildSurveyFields lays out the questions in form order with initial's answers.
func buildSurveyFields(initial footprint.SurveyResponse) []SurveyField {
	diets := footprint.Diets()
	dietLabels := make([]string, len(diets))
	for i, d := range diets {
		dietLabels[i] = d.Label()
	}
	freqs := footprint.ShoppingFrequencies()
	freqLabels := make([]string, len(freqs))
	for i, f := range freqs {
		freqLabels[i] = f.Label()
	}
	habits := footprint.RecyclingHabits()
	habitLabels := make([]string, len(habits))
	for i, h := range habits {
		habitLabels[i] = h.Label()
	}

	return []SurveyField{
		numberField("annual_car_miles", SectionTransportation,
			"How many miles do you drive per year?",
			strconv.FormatFloat(initial.AnnualCarMiles, 'f', -1, 64), fieldNumber),
		numberField("annual_round_trip_flights", SectionTransportation,
			"How many round-trip flights do you take per year (domestic)?",
			strconv.Itoa(initial.AnnualRoundTripFlights), fieldInteger),
		choiceField("diet_category", SectionDiet,
			"What best describes your diet?", dietLabels, int(initial.Diet)),
		numberField("household_size", SectionHomeEnergy,
			"How many people live in your household?",
			strconv.Itoa(initial.HouseholdSize), fieldInteger),
		numberField("annual_electricity_kwh", SectionHomeEnergy,
			"How much electricity do you use per year (in kWh)?",
			strconv.FormatFloat(initial.AnnualElectricityKWh, 'f', -1, 64), fieldNumber),
		choiceField("shopping_frequency", SectionConsumption,
			"How often do you buy new clothes?", freqLabels, int(initial.Shopping)),
		choiceField("recycling_habit", SectionConsumption,
			"Do you regularly recycle paper, plastics, and metals?", habitLabels, int(initial.Recycling)),
	}
}

func numberField(key, section, question, value string, kind fieldKind) SurveyField {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = numberInputLimit
	ti.SetValue(value)
	ti.Blur()
	return SurveyField{Key: key, Section: section, Question: question, kind: kind, input: ti}
}

func choiceField(key, section, question string, options []string, choice int) SurveyField {
	if choice < 0 || choice >= len(options) {
		choice = 0
	}
	return SurveyField{Key: key, Section: section, Question: question, kind: fieldChoice, options: options, choice: choice}
}

// Init starts the first estimate so the running total is visible at once.
func (m *SurveyModel) Init() tea.Cmd {
	if m.estimateFn == nil {
		return textinput.Blink
	}
	return tea.Batch(textinput.Blink, m.triggerRecalculation())
}

// Update handles messages and updates the model state.
func (m *SurveyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case surveyRecalculateMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.loading = false
		m.result = msg.result
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

// handleKeyMsg processes keyboard input.
//
//nolint:exhaustive // Only handling relevant key types for form navigation.
func (m *SurveyModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.state = SurveyStateQuitting
		return m, tea.Quit

	case tea.KeyUp, tea.KeyShiftTab:
		return m, m.moveFocus(-1)

	case tea.KeyDown, tea.KeyTab:
		return m, m.moveFocus(1)

	case tea.KeyEnter:
		if m.focused < len(m.fields)-1 {
			return m, m.moveFocus(1)
		}
		return m.submit()

	case tea.KeyLeft, tea.KeyRight:
		f := &m.fields[m.focused]
		if f.kind == fieldChoice {
			step := 1
			if msg.Type == tea.KeyLeft {
				step = -1
			}
			f.choice = (f.choice + step + len(f.options)) % len(f.options)
			return m, m.triggerRecalculation()
		}
	}

	f := &m.fields[m.focused]
	if f.kind == fieldChoice {
		return m, nil
	}

	before := f.input.Value()
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	if f.input.Value() != before {
		return m, tea.Batch(cmd, m.triggerRecalculation())
	}
	return m, cmd
}

// moveFocus moves to the previous or next question, wrapping at the ends.
func (m *SurveyModel) moveFocus(step int) tea.Cmd {
	if f := &m.fields[m.focused]; f.kind != fieldChoice {
		f.input.Blur()
	}
	m.focused = (m.focused + step + len(m.fields)) % len(m.fields)
	if f := &m.fields[m.focused]; f.kind != fieldChoice {
		return f.input.Focus()
	}
	return nil
}

// submit validates the answers and quits when they are complete.
func (m *SurveyModel) submit() (tea.Model, tea.Cmd) {
	resp, err := m.Response()
	if err == nil {
		err = resp.Validate()
	}
	if err != nil {
		m.err = err
		return m, nil
	}
	m.err = nil
	m.state = SurveyStateSubmitted
	return m, tea.Quit
}

// triggerRecalculation creates a command that estimates the current answers.
// Answers that do not parse yet are reported without calling estimateFn.
// Each call supersedes any estimate still in flight.
func (m *SurveyModel) triggerRecalculation() tea.Cmd {
	if m.estimateFn == nil {
		return nil
	}

	m.seq++
	resp, err := m.Response()
	if err != nil {
		m.err = err
		m.result = nil
		m.loading = false
		return nil
	}
	m.loading = true

	// Capture references before the command runs off the update loop.
	ctx := m.ctx
	estimateFn := m.estimateFn
	seq := m.seq

	return func() tea.Msg {
		result, estErr := estimateFn(ctx, resp)
		return surveyRecalculateMsg{seq: seq, result: result, err: estErr}
	}
}

// GetOverrides returns the current answers keyed by survey field name.
func (m *SurveyModel) GetOverrides() map[string]string {
	overrides := make(map[string]string, len(m.fields))
	for _, f := range m.fields {
		overrides[f.Key] = f.Value()
	}
	return overrides
}

// Response converts the current answers into a SurveyResponse. It does not
// validate ranges; callers validate before calculating.
func (m *SurveyModel) Response() (footprint.SurveyResponse, error) {
	return survey.ApplyOverrides(m.initial, m.GetOverrides())
}

// State returns the form state.
func (m *SurveyModel) State() SurveyState {
	return m.state
}

// Submitted reports whether the user submitted valid answers.
func (m *SurveyModel) Submitted() bool {
	return m.state == SurveyStateSubmitted
}

// Result returns the most recent running estimate, if any.
func (m *SurveyModel) Result() *engine.Result {
	return m.result
}

// Err returns the most recent parse, validation or estimate error.
func (m *SurveyModel) Err() error {
	return m.err
}
