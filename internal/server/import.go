package server

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	importerpb "github.com/smartjects/importer/gen/proto/importer/v1"
	"github.com/smartjects/importer/internal/async"
	"github.com/smartjects/importer/internal/batch"
	"github.com/smartjects/importer/internal/common"
	"github.com/smartjects/importer/internal/entity"
	"github.com/smartjects/importer/internal/export"
	"github.com/smartjects/importer/internal/logos"
	"github.com/smartjects/importer/internal/reconcile"
	"github.com/smartjects/importer/internal/repository"
	"github.com/smartjects/importer/internal/rows"
	"github.com/smartjects/importer/internal/utils"
	"github.com/smartjects/importer/internal/xlsx"
)

// ImportServer exposes the batch importer over gRPC.
type ImportServer struct {
	importerpb.UnimplementedImportServiceServer

	store    *repository.ImportStore
	registry *logos.Registry
	rcfg     reconcile.Config
	opts     batch.Options
	queue    async.Queue
	runs     *runRegistry
	logger   *slog.Logger
}

func NewImportServer(store *repository.ImportStore, registry *logos.Registry, rcfg reconcile.Config, opts batch.Options, logger *slog.Logger) *ImportServer {
	if logger == nil {
		logger = slog.Default()
	}
	s := &ImportServer{
		store:    store,
		registry: registry,
		rcfg:     rcfg,
		opts:     opts,
		runs:     newRunRegistry(),
		logger:   logger,
	}
	s.queue = async.NewProcessorQueue(s, logger,
		async.WithWorkers(2),
		async.WithQueueSize(64),
	)
	return s
}

// Shutdown drains queued runs.
func (s *ImportServer) Shutdown(ctx context.Context) {
	s.queue.Shutdown(ctx)
}

// ImportWorkbook runs the batch import synchronously and returns the stats
// plus a rendered report.
func (s *ImportServer) ImportWorkbook(ctx context.Context, req *importerpb.ImportWorkbookRequest) (*importerpb.ImportWorkbookResponse, error) {
	input, err := s.parseWorkbook(req.GetWorkbook(), req.GetSheet())
	if err != nil {
		return nil, err
	}

	orch := batch.NewOrchestrator(s.store, s.registry, s.rcfg, s.opts, nil, s.logger)
	report, err := orch.Run(ctx, input)
	if err != nil {
		s.logger.Error("import.run.failed", "error", err)
		return nil, common.InternalError(err.Error())
	}

	reportXLSX, err := export.ReportXLSX(report, s.logger)
	if err != nil {
		s.logger.Error("import.report.failed", "error", err)
		return nil, common.InternalError(err.Error())
	}

	return &importerpb.ImportWorkbookResponse{
		Stats:      utils.ToPBImportStats(report.Stats),
		ReportXlsx: reportXLSX,
	}, nil
}

// StartImport enqueues a run and returns its id for polling.
func (s *ImportServer) StartImport(ctx context.Context, req *importerpb.StartImportRequest) (*importerpb.StartImportResponse, error) {
	input, err := s.parseWorkbook(req.GetWorkbook(), req.GetSheet())
	if err != nil {
		return nil, err
	}

	runID := uuid.New()
	s.runs.create(runID)
	job := async.Job{RunID: runID, Rows: input, TraceID: common.RequestIDFromContext(ctx)}
	if err := s.queue.Enqueue(ctx, job); err != nil {
		s.runs.fail(runID, err)
		return nil, common.InternalError(err.Error())
	}
	return &importerpb.StartImportResponse{RunId: runID.String()}, nil
}

func (s *ImportServer) GetImportStatus(ctx context.Context, req *importerpb.GetImportStatusRequest) (*importerpb.GetImportStatusResponse, error) {
	v := common.NewValidator()
	v.Field("run_id", req.GetRunId(), common.Required, common.UUID)
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}
	runID, _ := uuid.Parse(req.GetRunId())

	state, ok := s.runs.get(runID)
	if !ok {
		return nil, common.NotFoundError("unknown run id")
	}
	resp := &importerpb.GetImportStatusResponse{State: string(state.phase)}
	if state.report != nil {
		resp.Stats = utils.ToPBImportStats(state.report.Stats)
	}
	if state.err != nil {
		resp.Error = state.err.Error()
	}
	return resp, nil
}

// SyncWorkbook runs the strict create-or-update policy.
func (s *ImportServer) SyncWorkbook(ctx context.Context, req *importerpb.SyncWorkbookRequest) (*importerpb.SyncWorkbookResponse, error) {
	input, err := s.parseWorkbook(req.GetWorkbook(), req.GetSheet())
	if err != nil {
		return nil, err
	}

	syncer := batch.NewSynchronizer(s.store, batch.SyncOptions{
		DryRun: req.GetDryRun(),
		Limit:  int(req.GetLimit()),
	}, s.logger)
	stats, err := syncer.Run(ctx, input)
	if err != nil {
		s.logger.Error("sync.run.failed", "error", err)
		return nil, common.InternalError(err.Error())
	}
	return &importerpb.SyncWorkbookResponse{Stats: utils.ToPBSyncStats(stats)}, nil
}

// RelinkLogos re-matches stored items against the institution registry.
func (s *ImportServer) RelinkLogos(ctx context.Context, req *importerpb.RelinkLogosRequest) (*importerpb.RelinkLogosResponse, error) {
	if s.registry == nil {
		return nil, common.InvalidArgumentError("no institution registry configured")
	}
	stats, err := logos.Relink(ctx, s.store, s.registry, req.GetDryRun(), s.logger)
	if err != nil {
		s.logger.Error("logos.relink.failed", "error", err)
		return nil, common.InternalError(err.Error())
	}
	return &importerpb.RelinkLogosResponse{Stats: utils.ToPBRelinkStats(stats)}, nil
}

// ListRegistry returns the loaded institution registry names.
func (s *ImportServer) ListRegistry(ctx context.Context, req *importerpb.ListRegistryRequest) (*importerpb.ListRegistryResponse, error) {
	if s.registry == nil {
		return nil, common.InvalidArgumentError("no institution registry configured")
	}
	return &importerpb.ListRegistryResponse{Institutions: s.registry.Institutions()}, nil
}

// DeleteItem removes one item and its relations.
func (s *ImportServer) DeleteItem(ctx context.Context, req *importerpb.DeleteItemRequest) (*importerpb.DeleteItemResponse, error) {
	v := common.NewValidator()
	v.Field("item_id", req.GetItemId(), common.Required, common.UUID)
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}
	itemID, _ := uuid.Parse(req.GetItemId())

	if err := s.store.DeleteItem(ctx, itemID); err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, common.NotFoundError(err.Error())
		}
		s.logger.Error("item.delete.failed", "id", itemID, "error", err)
		return nil, common.InternalError(err.Error())
	}
	return &importerpb.DeleteItemResponse{}, nil
}

// ProcessRun executes a queued run; it satisfies async.Processor.
func (s *ImportServer) ProcessRun(ctx context.Context, job async.Job) error {
	s.runs.start(job.RunID)
	orch := batch.NewOrchestrator(s.store, s.registry, s.rcfg, s.opts, nil, s.logger)
	report, err := orch.Run(ctx, job.Rows)
	if err != nil {
		s.runs.fail(job.RunID, err)
		return err
	}
	s.runs.finish(job.RunID, report)
	return nil
}

func (s *ImportServer) parseWorkbook(workbook []byte, sheet string) ([]entity.Row, error) {
	if len(workbook) == 0 {
		return nil, common.InvalidArgumentError("workbook is required")
	}
	sheet = strings.TrimSpace(sheet)

	raw, err := xlsx.Read(bytes.NewReader(workbook), sheet, s.logger)
	if err != nil {
		return nil, common.InvalidArgumentErrorf("parse workbook: %v", err)
	}
	input := make([]entity.Row, 0, len(raw))
	for _, m := range raw {
		input = append(input, rows.ParseRow(m))
	}
	return input, nil
}
