package models

// SeedReport accounts for one seed run. Skipped rows are the ones whose
// unique keys already existed; they are never an error.
type SeedReport struct {
	Inserted int64 `json:"inserted"`
	Skipped  int64 `json:"skipped"`
}
