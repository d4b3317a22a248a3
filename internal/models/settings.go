package models

// SettingsID is the fixed identifier of the single settings record.
const SettingsID = "appSettings"

// AppSettings holds the shared access codes, stored only as bcrypt hashes.
type AppSettings struct {
	EditorCodeHash  string
	PartnerCodeHash string

	// UpdatedAt is the Unix timestamp of the last change.
	UpdatedAt int64
}

// CodesConfigured reports whether both access codes have been set.
func (s *AppSettings) CodesConfigured() bool {
	return s != nil && s.EditorCodeHash != "" && s.PartnerCodeHash != ""
}
