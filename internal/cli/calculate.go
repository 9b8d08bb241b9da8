package cli

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/footprint/internal/config"
	"github.com/rshade/footprint/internal/engine"
	"github.com/rshade/footprint/internal/footprint"
	"github.com/rshade/footprint/internal/logging"
	"github.com/rshade/footprint/internal/survey"
	"github.com/rshade/footprint/internal/tui"
)

// CalculateParams holds the parameters for the calculate command execution.
// Exported for testing.
type CalculateParams struct {
	// Answers, defaulting to the blank form.
	CarMiles       float64
	Flights        int
	Diet           string
	HouseholdSize  int
	ElectricityKWh float64
	Shopping       string
	Recycling      string

	// Input sources
	SurveyFile  string
	Sets        []string // key=value format
	Interactive bool

	// Output
	Output string
	Plain  bool
}

// answerFlags maps answer flag names to survey field names. Only flags the
// user set are applied, so a survey file is not clobbered by flag defaults.
//
//nolint:gochecknoglobals // Compile-time constant lookup table.
var answerFlags = []struct {
	flag  string
	field string
}{
	{"miles", "annual_car_miles"},
	{"flights", "annual_round_trip_flights"},
	{"diet", "diet_category"},
	{"household", "household_size"},
	{"kwh", "annual_electricity_kwh"},
	{"shopping", "shopping_frequency"},
	{"recycling", "recycling_habit"},
}

// NewCalculateCmd creates the "calculate" command.
//
// Answers are resolved in order: the blank-form defaults, --survey file,
// individual answer flags, then --set overrides. With --interactive the
// resolved answers pre-fill a terminal form.
func NewCalculateCmd() *cobra.Command {
	var params CalculateParams
	defaults := footprint.DefaultSurvey()

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Estimate an annual carbon footprint",
		Long: `Estimate a household's annual CO2 emissions from seven survey answers and
compare the result with the US average, the global average and a low-impact goal.

Diet: meat-heavy, average, vegetarian, vegan
Shopping (new clothes): weekly, monthly, every-few-months, rarely
Recycling: always, sometimes, rarely, never

Exits with code 2 when an answer is out of range.`,
		Example: `  # Default answers
  footprint calculate

  # Individual answers
  footprint calculate --miles 4000 --flights 1 --diet vegetarian --household 3

  # From a survey file (YAML, JSON or JSONC) with an override
  footprint calculate --survey household.yaml --set recycling=always

  # Interactive form
  footprint calculate --interactive`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return wrapInputError(executeCalculate(cmd, params))
		},
	}

	cmd.Flags().Float64Var(&params.CarMiles, "miles", defaults.AnnualCarMiles, "Miles driven per year")
	cmd.Flags().IntVar(&params.Flights, "flights", defaults.AnnualRoundTripFlights,
		"Domestic round-trip flights per year")
	cmd.Flags().StringVar(&params.Diet, "diet", defaults.Diet.String(), "Diet category")
	cmd.Flags().IntVar(&params.HouseholdSize, "household", defaults.HouseholdSize, "People in the household")
	cmd.Flags().Float64Var(&params.ElectricityKWh, "kwh", defaults.AnnualElectricityKWh,
		"Household electricity use per year in kWh")
	cmd.Flags().StringVar(&params.Shopping, "shopping", defaults.Shopping.String(),
		"How often new clothes are bought")
	cmd.Flags().StringVar(&params.Recycling, "recycling", defaults.Recycling.String(),
		"How consistently the household recycles")

	cmd.Flags().StringVar(&params.SurveyFile, "survey", "", "Survey file (.yaml, .yml, .json, .jsonc)")
	cmd.Flags().StringArrayVar(&params.Sets, "set", nil, "Answer override key=value (repeatable)")
	cmd.Flags().BoolVar(&params.Interactive, "interactive", false, "Answer the survey in an interactive form")

	cmd.Flags().StringVar(&params.Output, "output", "", "Output format (table, json, ndjson)")
	cmd.Flags().BoolVar(&params.Plain, "plain", false, "Disable styled table output")

	return cmd
}

// executeCalculate resolves the answers, runs the estimate and renders it.
func executeCalculate(cmd *cobra.Command, params CalculateParams) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	// Reject a bad --output before doing any work.
	if _, err := resolveOutputFormat(params.Output); err != nil {
		return err
	}

	resp, err := resolveSurvey(cmd, params)
	if err != nil {
		return err
	}

	calc, err := config.GetGlobalConfig().Calculator()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	eng := engine.New(calc)

	if params.Interactive {
		var submitted bool
		resp, submitted, err = runInteractiveSurvey(ctx, resp, eng)
		if err != nil {
			return err
		}
		if !submitted {
			cmd.PrintErrln("Cancelled.")
			return nil
		}
	}

	log.Debug().Ctx(ctx).
		Str("component", "cli").
		Str("survey_file", params.SurveyFile).
		Int("overrides", len(params.Sets)).
		Bool("interactive", params.Interactive).
		Msg("survey resolved")

	result, err := eng.Estimate(ctx, resp)
	if err != nil {
		return err
	}

	return RenderFootprintOutput(cmd, params.Output, params.Plain, result)
}

// resolveSurvey layers the survey file, changed answer flags and --set
// overrides onto the blank form. The merged answers are validated by
// Estimate, not layer by layer.
func resolveSurvey(cmd *cobra.Command, params CalculateParams) (footprint.SurveyResponse, error) {
	resp := footprint.DefaultSurvey()
	if params.SurveyFile != "" {
		loaded, err := survey.LoadFileUnvalidated(params.SurveyFile)
		if err != nil {
			return footprint.SurveyResponse{}, err
		}
		resp = loaded
	}

	flagOverrides := make(map[string]string)
	for _, af := range answerFlags {
		if f := cmd.Flags().Lookup(af.flag); f != nil && f.Changed {
			flagOverrides[af.field] = f.Value.String()
		}
	}
	resp, err := survey.ApplyOverrides(resp, flagOverrides)
	if err != nil {
		return footprint.SurveyResponse{}, err
	}

	setOverrides, err := survey.ParseOverrides(params.Sets)
	if err != nil {
		return footprint.SurveyResponse{}, err
	}
	return survey.ApplyOverrides(resp, setOverrides)
}

// runInteractiveSurvey runs the Bubble Tea form pre-filled with initial.
// It returns the submitted answers and whether the user submitted.
func runInteractiveSurvey(
	ctx context.Context,
	initial footprint.SurveyResponse,
	eng *engine.Engine,
) (footprint.SurveyResponse, bool, error) {
	if !tui.IsTTY() {
		return footprint.SurveyResponse{}, false, errors.New("--interactive requires a terminal")
	}

	model := tui.NewSurveyModel(ctx, initial, eng.Estimate)
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return footprint.SurveyResponse{}, false, fmt.Errorf("failed to run interactive survey: %w", err)
	}

	m, ok := final.(*tui.SurveyModel)
	if !ok || !m.Submitted() {
		return footprint.SurveyResponse{}, false, nil
	}
	resp, err := m.Response()
	return resp, true, err
}
