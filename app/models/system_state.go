package models

// SystemState records the (month, year) the monthly attendance reset
// last ran for, guarding against a double reset within the same month.
type SystemState struct {
	LastProcessedMonth string `json:"last_processed_month"`
	LastProcessedYear  int    `json:"last_processed_year"`
}

// AlreadyProcessed reports whether the reset already ran for the given month.
func (s SystemState) AlreadyProcessed(month string, year int) bool {
	return s.LastProcessedMonth == month && s.LastProcessedYear == year
}
