package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Namespace for all metric names.
const namespace = "xcbuild"

// Records the metrics of a single build.
type Recorder struct {
	registry    *prometheus.Registry
	duration    *prometheus.GaugeVec
	exitCode    *prometheus.GaugeVec
	success     *prometheus.GaugeVec
	archiveSize *prometheus.GaugeVec
	finished    *prometheus.GaugeVec
}

// Creates a recorder. Every metric carries the scheme label.
func NewRecorder() *Recorder {
	labels := []string{"scheme"}

	r := &Recorder{
		registry: prometheus.NewRegistry(),
		duration: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "build_duration_seconds",
			Help:      "Wall-clock duration of the build tool invocation.",
		}, labels),
		exitCode: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "build_exit_code",
			Help:      "Exit code reported by the build tool.",
		}, labels),
		success: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "build_success",
			Help:      "1 if the build was classified as successful, 0 otherwise.",
		}, labels),
		archiveSize: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "result_bundle_archive_bytes",
			Help:      "Size of the uploaded result bundle archive.",
		}, labels),
		finished: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "build_last_finished_timestamp_seconds",
			Help:      "Unix time at which the build finished.",
		}, labels),
	}

	r.registry.MustRegister(r.duration, r.exitCode, r.success, r.archiveSize, r.finished)
	return r
}

// Records a finished build invocation.
func (r *Recorder) ObserveBuild(scheme string, duration time.Duration, exitCode int, success bool, finished time.Time) {
	r.duration.WithLabelValues(scheme).Set(duration.Seconds())
	r.exitCode.WithLabelValues(scheme).Set(float64(exitCode))
	r.success.WithLabelValues(scheme).Set(boolValue(success))
	r.finished.WithLabelValues(scheme).Set(float64(finished.Unix()))
}

// Records the size of an uploaded result bundle archive.
func (r *Recorder) ObserveArchive(scheme string, size int64) {
	r.archiveSize.WithLabelValues(scheme).Set(float64(size))
}

// Returns the recorder's registry.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// Writes all recorded metrics to path in the text exposition format.
//
// The file is written to a temporary name and renamed into place.
func (r *Recorder) WriteFile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}

func boolValue(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
