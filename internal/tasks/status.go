package tasks

import "time"

// Export job states as stored in Redis and pushed over the notify channel.
const (
	StatusQueued     = "queued"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusError      = "error"
)

// StatusTTL bounds how long a finished job's status record lingers.
const StatusTTL = 24 * time.Hour

// ExportStatus is the Redis-stored progress record for one export job.
type ExportStatus struct {
	Status       string `json:"status"`
	File         string `json:"file,omitempty"`
	Key          string `json:"key,omitempty"`
	ErrorCode    int    `json:"error_code,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
	UpdatedAt    int64  `json:"updated_at"`
}

// StatusKey is the Redis key holding the status record for an export job.
func StatusKey(exportID string) string {
	return "export_status:" + exportID
}
