package server

import (
	"sync"

	"github.com/google/uuid"

	"github.com/smartjects/importer/internal/batch"
)

type runPhase string

const (
	runPending runPhase = "pending"
	runRunning runPhase = "running"
	runDone    runPhase = "done"
	runFailed  runPhase = "failed"
)

type runState struct {
	phase  runPhase
	report *batch.Report
	err    error
}

// runRegistry tracks queued runs for status polling. Entries live for the
// process lifetime; run history is not persisted.
type runRegistry struct {
	mu   sync.RWMutex
	runs map[uuid.UUID]*runState
}

func newRunRegistry() *runRegistry {
	return &runRegistry{runs: make(map[uuid.UUID]*runState)}
}

func (r *runRegistry) create(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runs[id] = &runState{phase: runPending}
}

func (r *runRegistry) start(id uuid.UUID) {
	r.setPhase(id, runRunning)
}

func (r *runRegistry) finish(id uuid.UUID, report *batch.Report) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if state, ok := r.runs[id]; ok {
		state.phase = runDone
		state.report = report
	}
}

func (r *runRegistry) fail(id uuid.UUID, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if state, ok := r.runs[id]; ok {
		state.phase = runFailed
		state.err = err
	}
}

func (r *runRegistry) get(id uuid.UUID) (runState, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	state, ok := r.runs[id]
	if !ok {
		return runState{}, false
	}
	return *state, true
}

func (r *runRegistry) setPhase(id uuid.UUID, phase runPhase) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if state, ok := r.runs[id]; ok {
		state.phase = phase
	}
}
