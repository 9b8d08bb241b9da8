package footprint

// Tips returns the fixed reduction advice shown with every report, in order:
// driving, flights, diet, home efficiency, recycling and clothing.
func Tips() []string {
	return []string{
		"Consider reducing car travel or switching to public transport.",
		"Fly less or offset your flights through verified programs.",
		"Shift toward more plant-based meals.",
		"Improve home efficiency (LEDs, insulation, smart thermostats).",
		"Recycle consistently and buy fewer fast fashion items.",
	}
}
