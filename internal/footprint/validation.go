package footprint

import "fmt"

// Validate checks every field against its declared domain. The first
// violation is returned wrapped in ErrInvalidInput.
func (r SurveyResponse) Validate() error {
	if !isFinite(r.AnnualCarMiles) || r.AnnualCarMiles < 0 {
		return fmt.Errorf("%w: annual_car_miles must be a finite number >= 0, got %v", ErrInvalidInput, r.AnnualCarMiles)
	}
	if r.AnnualRoundTripFlights < 0 {
		return fmt.Errorf("%w: annual_round_trip_flights must be >= 0, got %d", ErrInvalidInput, r.AnnualRoundTripFlights)
	}
	if !r.Diet.Valid() {
		return fmt.Errorf("%w: diet_category %s is not a declared diet", ErrInvalidInput, r.Diet)
	}
	if r.HouseholdSize < 1 {
		return fmt.Errorf("%w: household_size must be >= 1, got %d", ErrInvalidInput, r.HouseholdSize)
	}
	if !isFinite(r.AnnualElectricityKWh) || r.AnnualElectricityKWh < 0 {
		return fmt.Errorf("%w: annual_electricity_kwh must be a finite number >= 0, got %v",
			ErrInvalidInput, r.AnnualElectricityKWh)
	}
	if !r.Shopping.Valid() {
		return fmt.Errorf("%w: shopping_frequency %s is not a declared frequency", ErrInvalidInput, r.Shopping)
	}
	if !r.Recycling.Valid() {
		return fmt.Errorf("%w: recycling_habit %s is not a declared habit", ErrInvalidInput, r.Recycling)
	}
	return nil
}
