package worker

// NotifyChannel is the Redis Pub/Sub channel the WebSocket gateway relays to
// the client. Field names must stay in sync with the client-side parser.
const NotifyChannel = "exports:notify"

// ExportNotifyMessage announces the terminal state of an export job.
type ExportNotifyMessage struct {
	Status        string `json:"status"`
	ExportID      string `json:"export_id"`
	CorrelationID string `json:"correlation_id"`
	File          string `json:"file,omitempty"`
	ErrorCode     int    `json:"error_code"`
	ErrorMessage  string `json:"error_message,omitempty"`
}
