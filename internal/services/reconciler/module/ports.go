package module

import (
	rdom "followup/internal/services/reconciler/domain"
)

// Ports exposes the reconciler worker ports for cross-module lookups
type Ports struct {
	Worker    rdom.WorkerPort
	Reconcile rdom.ReconcilePort
}
