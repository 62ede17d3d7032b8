package worker

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// DefaultWorkers caps the pool size when the caller passes zero
const DefaultWorkers = 4

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount  = 2
	TestQueueSize    = 10
	TestJobCount     = 5
	TestFailingIndex = 3
)
