// Package domain defines ports and types for the location linker
package domain

import "context"

// Result summarizes one link cycle
type Result struct {
	Leased   int // events taken this cycle
	Linked   int // events that got a sample
	Unlinked int // events marked done with no sample
}

// WorkerPort runs the link loop until the context ends
type WorkerPort interface {
	Run(ctx context.Context) error
}

// LinkPort executes a single link cycle
type LinkPort interface {
	RunOnce(ctx context.Context) (Result, error)
}
