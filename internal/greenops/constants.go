package greenops

// EPA Greenhouse Gas Equivalencies (2024 edition).
// Source: https://www.epa.gov/energy/greenhouse-gas-equivalencies-calculator
//
//	equivalency = kg_CO2 / factor
const (
	// EPAMilesDrivenFactor is kg CO2e per mile for an average passenger vehicle.
	EPAMilesDrivenFactor = 0.192

	// EPASmartphoneChargeFactor is kg CO2e per smartphone charge.
	EPASmartphoneChargeFactor = 0.00822

	// EPATreeSeedlingFactor is kg CO2e absorbed per tree seedling grown for 10 years.
	EPATreeSeedlingFactor = 60.0

	// EPAHomeDayFactor is kg CO2e per day of average US home electricity.
	EPAHomeDayFactor = 18.3
)

// Display thresholds.
const (
	// MinEquivalencyThresholdKg is the smallest total for which equivalencies are shown.
	MinEquivalencyThresholdKg = 1.0

	// LargeNumberThreshold switches to "~X.X million" display.
	LargeNumberThreshold = 1_000_000

	// BillionThreshold switches to "~X.X billion" display.
	BillionThreshold = 1_000_000_000
)
