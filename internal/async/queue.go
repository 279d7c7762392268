package async

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/smartjects/importer/internal/entity"
)

// Job is one queued import run: the rows already parsed from a workbook.
type Job struct {
	RunID       uuid.UUID
	Rows        []entity.Row
	SubmittedAt time.Time
	TraceID     string
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}

// Processor executes one import run.
type Processor interface {
	ProcessRun(ctx context.Context, job Job) error
}
