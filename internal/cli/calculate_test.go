package cli_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/footprint/internal/cli"
	"github.com/rshade/footprint/internal/footprint"
)

type calculateJSON struct {
	Survey struct {
		Diet      string `json:"diet_category"`
		Household int    `json:"household_size"`
	} `json:"survey"`
	Report struct {
		Total float64 `json:"total_kg_co2"`
	} `json:"report"`
	Benchmarks []footprint.BenchmarkEntry `json:"benchmarks"`
	Tips       []string                   `json:"tips"`
}

func calculateTotal(t *testing.T, args ...string) calculateJSON {
	t.Helper()
	out := mustRunCLI(t, append([]string{"calculate", "--output", "json"}, args...)...)
	var decoded calculateJSON
	require.NoError(t, json.Unmarshal([]byte(out), &decoded), out)
	return decoded
}

func TestCalculate_DefaultAnswers(t *testing.T) {
	setupCLITest(t)

	out := mustRunCLI(t, "calculate", "--plain")

	assert.Contains(t, out, "Your estimated annual carbon footprint is 11,276.00 kg CO2.")
	assert.Contains(t, out, "US Average")
	assert.Contains(t, out, "Tips to Reduce Your Emissions")
	for _, tip := range footprint.Tips() {
		assert.Contains(t, out, tip)
	}
}

func TestCalculate_AnswerFlags(t *testing.T) {
	setupCLITest(t)

	tests := []struct {
		name string
		args []string
		want float64
	}{
		{"defaults", nil, 11276},
		{"diet only", []string{"--diet", "vegetarian"}, 10976},
		{"form label", []string{"--diet", "Average (mixed) diet", "--shopping", "Every week"}, 11676},
		{
			name: "all answers",
			args: []string{
				"--miles", "4000", "--flights", "0", "--diet", "vegan", "--household", "2",
				"--kwh", "6000", "--shopping", "rarely", "--recycling", "always",
			},
			want: 4267,
		},
		{
			name: "minimum input",
			args: []string{
				"--miles", "0", "--flights", "0", "--diet", "vegan", "--kwh", "0",
				"--shopping", "rarely", "--recycling", "always",
			},
			want: 1400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, calculateTotal(t, tt.args...).Report.Total, 1e-9)
		})
	}
}

func TestCalculate_JSONShape(t *testing.T) {
	setupCLITest(t)

	got := calculateTotal(t)

	assert.Equal(t, "average", got.Survey.Diet)
	require.Len(t, got.Benchmarks, 4)
	assert.Equal(t, footprint.LabelYou, got.Benchmarks[0].Label)
	assert.InDelta(t, 11276.0, got.Benchmarks[0].KgCO2, 1e-9)
	assert.Len(t, got.Tips, 5)
}

func TestCalculate_NDJSON(t *testing.T) {
	setupCLITest(t)

	out := mustRunCLI(t, "calculate", "--output", "ndjson")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 11)
	for _, line := range lines {
		assert.True(t, json.Valid([]byte(line)), line)
	}
}

func TestCalculate_SurveyFileAndOverrides(t *testing.T) {
	setupCLITest(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "household.yaml")
	require.NoError(t, os.WriteFile(path, []byte("diet_category: vegetarian\n"), 0o600))

	got := calculateTotal(t, "--survey", path)
	assert.InDelta(t, 10976.0, got.Report.Total, 1e-9)

	// --set wins over the file and the flags.
	got = calculateTotal(t, "--survey", path, "--diet", "vegan", "--set", "recycling=always", "--set", "diet=meat-heavy")
	assert.Equal(t, "meat-heavy", got.Survey.Diet)
	assert.InDelta(t, 11676.0, got.Report.Total, 1e-9)
}

func TestCalculate_LaterLayerCorrectsSurveyFile(t *testing.T) {
	setupCLITest(t)

	path := filepath.Join(t.TempDir(), "household.yaml")
	require.NoError(t, os.WriteFile(path, []byte("household_size: 0\n"), 0o600))

	t.Run("flag overrides file", func(t *testing.T) {
		got := calculateTotal(t, "--survey", path, "--household", "2")
		assert.Equal(t, 2, got.Survey.Household)
		assert.InDelta(t, 9608.0, got.Report.Total, 1e-9)
	})

	t.Run("set overrides file", func(t *testing.T) {
		got := calculateTotal(t, "--survey", path, "--set", "household=2")
		assert.Equal(t, 2, got.Survey.Household)
		assert.InDelta(t, 9608.0, got.Report.Total, 1e-9)
	})

	t.Run("uncorrected file fails after merge", func(t *testing.T) {
		_, _, err := runCLI(t, "calculate", "--survey", path)
		require.Error(t, err)
		assert.ErrorIs(t, err, footprint.ErrInvalidInput)
	})
}

func TestCalculate_JSONCSurveyFile(t *testing.T) {
	setupCLITest(t)

	path := filepath.Join(t.TempDir(), "household.jsonc")
	body := `{
  // two people share the electricity bill
  "household_size": 2,
}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	got := calculateTotal(t, "--survey", path)
	assert.Equal(t, 2, got.Survey.Household)
	assert.InDelta(t, 9608.0, got.Report.Total, 1e-9)
}

func TestCalculate_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"zero household", []string{"--household", "0"}},
		{"negative miles", []string{"--miles", "-1"}},
		{"unknown diet", []string{"--diet", "carnivore"}},
		{"unknown set key", []string{"--set", "pets=3"}},
		{"malformed set", []string{"--set", "diet"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupCLITest(t)

			_, _, err := runCLI(t, append([]string{"calculate"}, tt.args...)...)
			require.Error(t, err)
			assert.ErrorIs(t, err, footprint.ErrInvalidInput)

			var exitErr *cli.InputExitError
			require.True(t, errors.As(err, &exitErr))
			assert.Equal(t, cli.ExitCodeInvalidInput, exitErr.ExitCode())
		})
	}
}

func TestCalculate_MissingSurveyFile(t *testing.T) {
	setupCLITest(t)

	_, _, err := runCLI(t, "calculate", "--survey", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	var exitErr *cli.InputExitError
	assert.False(t, errors.As(err, &exitErr))
}

func TestCalculate_UnsupportedOutput(t *testing.T) {
	setupCLITest(t)

	_, _, err := runCLI(t, "calculate", "--output", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}

func TestCalculate_InteractiveRequiresTerminal(t *testing.T) {
	setupCLITest(t)

	_, _, err := runCLI(t, "calculate", "--interactive")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires a terminal")
}

func TestCalculate_ConfiguredPrecisionAndFactors(t *testing.T) {
	home := setupCLITest(t)

	cfg := "output:\n  precision: 0\nfactors:\n  flight_kg_per_round_trip: 1000\n"
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte(cfg), 0o600))

	out := mustRunCLI(t, "calculate", "--plain")
	assert.Contains(t, out, "Your estimated annual carbon footprint is 11,476 kg CO2.")
}
