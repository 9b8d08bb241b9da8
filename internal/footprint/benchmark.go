package footprint

// Reference annual footprints, in kg CO2 per person.
const (
	USAverageKgCO2     = 16000.0
	GlobalAverageKgCO2 = 4500.0
	LowImpactGoalKgCO2 = 2000.0
)

// Benchmark row labels.
const (
	LabelYou           = "You"
	LabelUSAverage     = "US Average"
	LabelGlobalAverage = "Global Average"
	LabelLowImpactGoal = "Low Impact Goal"
)

// BenchmarkEntry is one bar of the comparison chart.
type BenchmarkEntry struct {
	Label string  `json:"label"`
	KgCO2 float64 `json:"kg_co2"`
}

// BenchmarkTable is the ordered comparison dataset: the respondent first,
// then the three reference values.
type BenchmarkTable []BenchmarkEntry

// NewBenchmarkTable places report's total next to the reference footprints,
// in the order You, US Average, Global Average, Low Impact Goal.
func NewBenchmarkTable(report EmissionsReport) BenchmarkTable {
	table := make(BenchmarkTable, 0, len(ReferenceBenchmarks())+1)
	table = append(table, BenchmarkEntry{Label: LabelYou, KgCO2: report.TotalKgCO2})
	return append(table, ReferenceBenchmarks()...)
}

// ReferenceBenchmarks returns the three fixed reference rows.
func ReferenceBenchmarks() []BenchmarkEntry {
	return []BenchmarkEntry{
		{Label: LabelUSAverage, KgCO2: USAverageKgCO2},
		{Label: LabelGlobalAverage, KgCO2: GlobalAverageKgCO2},
		{Label: LabelLowImpactGoal, KgCO2: LowImpactGoalKgCO2},
	}
}

// Max returns the largest value in the table, or 0 for an empty table.
func (t BenchmarkTable) Max() float64 {
	highest := 0.0
	for _, e := range t {
		if e.KgCO2 > highest {
			highest = e.KgCO2
		}
	}
	return highest
}
