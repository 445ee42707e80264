package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Namespace prefixes every collector exported by the service.
const Namespace = "vinque"

// Register registers c with reg, returning the already registered collector
// when an identical one exists.
func Register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if err := reg.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if !errors.As(err, &already) {
			var zero T
			return zero, fmt.Errorf("register collector: %w", err)
		}
		existing, ok := already.ExistingCollector.(T)
		if !ok {
			var zero T
			return zero, fmt.Errorf("existing collector has unexpected type %T", already.ExistingCollector)
		}
		return existing, nil
	}
	return c, nil
}

// FileMetrics tracks uploaded-file housekeeping.
type FileMetrics struct {
	// Compensations counts deletions of files orphaned by a failed request,
	// by result ("deleted", "queued", "failed").
	Compensations *prometheus.CounterVec
	// SweepDeletes counts sweeper attempts by result ("deleted", "retry").
	SweepDeletes *prometheus.CounterVec
}

// NewFileMetrics registers the file housekeeping collectors.
func NewFileMetrics(reg prometheus.Registerer) (*FileMetrics, error) {
	compensations, err := Register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Subsystem: "files",
		Name:      "compensations_total",
		Help:      "Uploaded files removed because the request that stored them failed.",
	}, []string{"result"}))
	if err != nil {
		return nil, err
	}
	sweeps, err := Register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Subsystem: "files",
		Name:      "sweep_deletes_total",
		Help:      "Deletions attempted by the cleanup sweeper.",
	}, []string{"result"}))
	if err != nil {
		return nil, err
	}
	return &FileMetrics{Compensations: compensations, SweepDeletes: sweeps}, nil
}

// ObserveCompensation records one compensation outcome. Nil receivers are ignored.
func (m *FileMetrics) ObserveCompensation(result string) {
	if m == nil {
		return
	}
	m.Compensations.WithLabelValues(result).Inc()
}

// ObserveSweep records one sweeper outcome. Nil receivers are ignored.
func (m *FileMetrics) ObserveSweep(result string) {
	if m == nil {
		return
	}
	m.SweepDeletes.WithLabelValues(result).Inc()
}
