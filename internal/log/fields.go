package log

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldRequestID = "request_id"
	FieldBackend   = "backend"
	FieldRecords   = "records"
)

// Component names, one per binary or subsystem
const (
	ComponentApp    = "app"
	ComponentAPI    = "api"
	ComponentWorker = "worker"
	ComponentIngest = "ingest"
)
