package async

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Job is one receipt scan waiting for a worker. Either ImagePath or RawText
// is set, mirroring pipeline.ScanRequest.
type Job struct {
	HouseholdID uuid.UUID
	ImagePath   string
	RawText     string
	SubmittedAt time.Time
	TraceID     string
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}
