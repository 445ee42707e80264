package services

import (
	"time"

	portsrepo "github.com/vinque/vinque_backend/internal/core/ports/repositories"
	portssvc "github.com/vinque/vinque_backend/internal/core/ports/services"
	"github.com/vinque/vinque_backend/internal/platform/metrics"
)

// Test hooks for the external services_test package.

var CleanupBackoff = cleanupBackoff

// FileKeeper is exported for tests so workflows can be built without the container.
type FileKeeper = fileKeeper

func NewTestFileKeeper(store portsrepo.FileStore, queue portsrepo.CleanupQueueRepository, fm *metrics.FileMetrics, nudger Nudger) *FileKeeper {
	k := newFileKeeper(store, queue, fm, nudger)
	k.now = func() time.Time { return time.Unix(1700000000, 0) }
	return k
}

func SetOTPGenerator(svc portssvc.OTPSvcFacade, gen func(digits int) (string, error)) {
	svc.(*otpService).generate = gen
}

func SetSweeperClock(s *CleanupSweeper, now func() time.Time) {
	s.now = now
}

func SetAdminClock(svc portssvc.AdminSvcFacade, now func() time.Time) {
	svc.(*adminService).now = now
}

func SetAnalyticsClock(svc portssvc.AnalyticsSvcFacade, now func() time.Time) {
	svc.(*analyticsService).now = now
}
