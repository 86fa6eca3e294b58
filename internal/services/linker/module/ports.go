package module

import (
	ldom "followup/internal/services/linker/domain"
)

// Ports exposes the linker worker ports for cross-module lookups
type Ports struct {
	Worker ldom.WorkerPort
	Link   ldom.LinkPort
}
