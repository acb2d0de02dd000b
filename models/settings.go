package models

// Settings holds the process-wide configuration read once at startup.
type Settings struct {
	ProjectID string // cloud project that owns the registry and services
	Region    string // Cloud Run region
}
