package workflow

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"

	"github.com/cruciblehq/xcbuild/internal/paths"
)

// Environment variable naming the step output file.
const outputEnv = "GITHUB_OUTPUT"

// Sequence counter for unique heredoc delimiters.
var delimiterSeq uint64

// Writes step outputs and failure annotations.
type Reporter struct {
	stdout     io.Writer // Receives workflow commands.
	outputPath string    // Step output file. Empty uses workflow commands.
}

// Creates a reporter configured from the process environment.
func FromEnv() *Reporter {
	return New(os.Stdout, os.Getenv(outputEnv))
}

// Creates a reporter writing commands to stdout and outputs to outputPath.
func New(stdout io.Writer, outputPath string) *Reporter {
	return &Reporter{stdout: stdout, outputPath: outputPath}
}

// Sets a step output.
func (r *Reporter) SetOutput(name, value string) error {
	if r.outputPath == "" {
		_, err := fmt.Fprintf(r.stdout, "::set-output name=%s::%s\n", escapeProperty(name), escapeData(value))
		return err
	}

	f, err := os.OpenFile(r.outputPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, paths.DefaultFileMode)
	if err != nil {
		return fmt.Errorf("open %s: %w", outputEnv, err)
	}

	if _, err := io.WriteString(f, formatOutput(name, value)); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", outputEnv, err)
	}
	return f.Close()
}

// Reports a failed build.
func (r *Reporter) Fail(err error) {
	fmt.Fprintf(r.stdout, "::error::%s\n", escapeData("Build failed with an unexpected error: "+err.Error()))
}

// Reports a warning.
func (r *Reporter) Warning(msg string) {
	fmt.Fprintf(r.stdout, "::warning::%s\n", escapeData(msg))
}

// Formats an output file entry.
func formatOutput(name, value string) string {
	if !strings.ContainsAny(value, "\r\n") {
		return name + "=" + value + "\n"
	}

	delimiter := fmt.Sprintf("ghadelimiter_xcbuild_%d", atomic.AddUint64(&delimiterSeq, 1))
	for strings.Contains(value, delimiter) {
		delimiter += "_"
	}
	return name + "<<" + delimiter + "\n" + value + "\n" + delimiter + "\n"
}

// Escapes a workflow command message.
func escapeData(s string) string {
	s = strings.ReplaceAll(s, "%", "%25")
	s = strings.ReplaceAll(s, "\r", "%0D")
	return strings.ReplaceAll(s, "\n", "%0A")
}

// Escapes a workflow command property value.
func escapeProperty(s string) string {
	s = escapeData(s)
	s = strings.ReplaceAll(s, ":", "%3A")
	return strings.ReplaceAll(s, ",", "%2C")
}
