// Package domain defines ports and types for the contact reconciler
package domain

import "context"

// Result summarizes one reconcile cycle
type Result struct {
	Staged  int // device rows consumed
	Changed int // canonical rows written back
}

// WorkerPort runs the reconcile loop until the context ends
type WorkerPort interface {
	Run(ctx context.Context) error
}

// ReconcilePort executes a single reconcile cycle
type ReconcilePort interface {
	RunOnce(ctx context.Context) (Result, error)
}
