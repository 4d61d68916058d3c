package models

// ChemicalRecord is a single row of the paint-industry substance dataset.
// Records are loaded once at startup and are read-only afterwards, so they
// may be shared freely between concurrent requests.
type ChemicalRecord struct {
	// CAS is the registry identifier of the substance. It is trimmed at load
	// time and acts as the lookup key; uniqueness within the dataset is a
	// data-quality expectation, not an enforced constraint.
	CAS string `json:"cas_number"`

	// Name is the Chinese name of the substance.
	Name string `json:"name"`

	// Tier is the parsed green-procurement hazard tier.
	Tier HazardTier `json:"-"`

	// RawTier keeps the tier value exactly as it appeared in the dataset
	// (e.g. "1级"), including values that failed to parse.
	RawTier string `json:"tier"`

	// LimitRequirement is the current paint-standard limit text.
	LimitRequirement string `json:"limit_requirement"`

	// ControlRequirement is the national new-pollutant control text.
	ControlRequirement string `json:"control_requirement"`
}
