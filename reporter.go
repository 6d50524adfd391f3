package consola

import (
	"bytes"
	"fmt"
	"io"
)

// Reporter is any implementation that can render a LogRecord onto a byte
// sink. Implementations must write a single, complete, newline-terminated
// unit per Emit call, and must be safe to invoke from any thread a shared
// Logger is used from (synchronizing access to a Logger itself is the
// caller's responsibility, per spec.md §4.6).
type Reporter interface {
	Emit(record *LogRecord, sink io.Writer) error
}

// MemoryReporter appends every emitted record to an in-memory slice instead
// of rendering bytes, so logic tests assert on structured data and are
// immune to unrelated formatting changes, per spec.md §4.6 and §9.
type MemoryReporter struct {
	Records []*LogRecord
}

// Emit appends a copy of record and writes nothing to sink.
func (m *MemoryReporter) Emit(record *LogRecord, _ io.Writer) error {
	m.Records = append(m.Records, record.clone())
	return nil
}

// TextReporter writes a minimal human-readable line per record. It exists
// to satisfy the reporter contract's test surface (spec.md §4.6); the rich
// plain/fancy/JSON renderers are external collaborators out of scope here.
type TextReporter struct{}

// Emit writes "[TYPE] message (xN)\n" to sink, omitting the repetition
// suffix when the record was emitted exactly once.
func (TextReporter) Emit(record *LogRecord, sink io.Writer) error {
	var buf bytes.Buffer
	buf.WriteByte('[')
	buf.WriteString(record.TypeName)
	buf.WriteByte(']')
	if record.HasMessage {
		buf.WriteByte(' ')
		buf.WriteString(record.Message)
	}
	if record.RepetitionCount > 1 {
		fmt.Fprintf(&buf, " (x%d)", record.RepetitionCount)
	}
	buf.WriteByte('\n')
	_, err := sink.Write(buf.Bytes())
	return err
}
