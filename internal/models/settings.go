package models

// AppSettings is the singleton troop configuration record. Exactly one
// instance exists; reads synthesize defaults for missing fields so that
// settings persisted before a field existed remain valid.
type AppSettings struct {
	// LeaderName is the responsible leader, printed on reports.
	LeaderName string `json:"leaderName"`

	// CoordinatorName is the troop coordinator. May be empty.
	CoordinatorName string `json:"coordinatorName"`

	// SecretaryName is the troop secretary. May be empty.
	SecretaryName string `json:"secretaryName"`

	// TroopName is the organization display name.
	TroopName string `json:"troopName"`

	// LogoURL is an optional logo image as a base64 data URL. The size
	// cap is enforced at the input boundary, not here.
	LogoURL string `json:"logoUrl"`
}

// DefaultSettings returns the fixed baseline settings object.
func DefaultSettings() AppSettings {
	return AppSettings{
		LeaderName: "القائد",
		TroopName:  "عشيرة جوالة صحم 2026",
	}
}

// WithDefaults backfills fields that carry a non-empty default and are
// unset in s. Decoding stored JSON over a DefaultSettings value gives the
// same result for fields missing from storage; this form covers settings
// objects that arrive already decoded, such as a backup snapshot section.
func (s AppSettings) WithDefaults() AppSettings {
	defaults := DefaultSettings()
	if s.LeaderName == "" {
		s.LeaderName = defaults.LeaderName
	}
	if s.TroopName == "" {
		s.TroopName = defaults.TroopName
	}
	return s
}
