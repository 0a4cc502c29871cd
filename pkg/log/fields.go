package log

const (
	// Run
	FieldRunID   = "run_id"
	FieldLatency = "latency_ms"

	// Search
	FieldGame    = "game"
	FieldMethod  = "method"
	FieldSeed    = "seed"
	FieldFrames  = "frames"
	FieldMatches = "matches"
	FieldFilter  = "filter"

	// Parallel search
	FieldWorkers = "workers"
	FieldWorker  = "worker"

	// Program
	FieldService = "service"
)
