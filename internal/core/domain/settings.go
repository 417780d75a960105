package domain

// DefaultMaxUploadBytes is the input file size cap (5MB).
const DefaultMaxUploadBytes = 5 * 1024 * 1024

// AppSettings is the complete application configuration.
type AppSettings struct {
	Intake IntakeSettings
	Export ExportSettings
	Server ServerSettings
}

// IntakeSettings constrains which files may be read as booking input.
type IntakeSettings struct {
	// MaxBytes is the largest accepted file size.
	MaxBytes int

	// Extensions are accepted file extensions including the dot, lower case.
	Extensions []string
}

// ExportSettings controls exported files.
type ExportSettings struct {
	Format    ExportFormat
	Directory string
}

// ServerSettings controls the HTTP API.
type ServerSettings struct {
	Address string
}

// DefaultAppSettings returns the default configuration.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Intake: IntakeSettings{
			MaxBytes:   DefaultMaxUploadBytes,
			Extensions: []string{".csv", ".txt"},
		},
		Export: ExportSettings{
			Format:    ExportFormatCSV,
			Directory: ".",
		},
		Server: ServerSettings{
			Address: ":8080",
		},
	}
}
