package tasks

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

// Task type constants shared by queue producers and consumers.
const (
	TypePDFExport = "export:pdf"
)

// PDFExportPayload carries the minimum an export task needs. The worker
// reads the state snapshot from the persistence layer itself; the payload
// only identifies the job.
type PDFExportPayload struct {
	ExportID      string `json:"export_id"`
	CorrelationID string `json:"correlation_id"`
}

// NewPDFExportTask builds a new resume PDF export task.
func NewPDFExportTask(exportID, correlationID string) (*asynq.Task, error) {
	payload, err := json.Marshal(PDFExportPayload{
		ExportID:      exportID,
		CorrelationID: correlationID,
	})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypePDFExport, payload), nil
}
