package constants

// JobStatus is the canonical status for a stored extraction.
type JobStatus string

// Stable values (store these exact strings).
const (
	JobStatusQueued    JobStatus = "QUEUED"    // waiting for a worker
	JobStatusRunning   JobStatus = "RUNNING"   // in progress
	JobStatusOCROK     JobStatus = "OCR_OK"    // stage 1 completed (pages acquired)
	JobStatusExtracted JobStatus = "EXTRACTED" // stage 2 completed (record built)
	JobStatusFailed    JobStatus = "FAILED"    // terminal failure
)

// Extraction modes.
const (
	ModeCV  = "cv"  // résumé / CV document
	ModeCIN = "cin" // Moroccan national identity card
)
