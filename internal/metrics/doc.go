// Package metrics records build metrics for the Prometheus textfile
// collector.
//
// A [Recorder] owns a private registry with one set of gauges describing a
// single build: its duration, the tool's exit code, whether it succeeded,
// and the size of the captured result bundle archive. [Recorder.WriteFile]
// writes the registry atomically in the text exposition format, for
// node_exporter's textfile collector to pick up.
package metrics
