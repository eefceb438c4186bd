package share

import (
	"fmt"
	"io"
	"sync"

	"github.com/rs/zerolog"
)

// MIMETextPlain is the MIME type used for share summaries.
const MIMETextPlain = "text/plain"

// Sink names accepted by FromNames.
const (
	SinkLog    = "log"
	SinkStdout = "stdout"
)

// Sink receives shared text. Implementations must not report failure back to the
// caller: sharing is fire-and-forget.
type Sink interface {
	Send(text, mimeType string)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(text, mimeType string)

// Send implements Sink.
func (f SinkFunc) Send(text, mimeType string) { f(text, mimeType) }

// Deliver hands text to sink as text/plain. It reports false, and does nothing,
// when no sink is available.
func Deliver(sink Sink, text string) bool {
	if sink == nil {
		return false
	}
	sink.Send(text, MIMETextPlain)
	return true
}

// Fanout forwards each message to every configured sink.
type Fanout []Sink

// Send implements Sink.
func (f Fanout) Send(text, mimeType string) {
	for _, sink := range f {
		if sink == nil {
			continue
		}
		sink.Send(text, mimeType)
	}
}

// LogSink writes shared summaries to a structured log.
type LogSink struct {
	Logger zerolog.Logger
}

// Send implements Sink.
func (s LogSink) Send(text, mimeType string) {
	s.Logger.Info().
		Str("mime_type", mimeType).
		Int("length", len(text)).
		Str("text", text).
		Msg("share_message")
}

// WriterSink prints each summary followed by a blank line. Writes are serialised.
type WriterSink struct {
	mu  sync.Mutex
	out io.Writer
}

// NewWriterSink constructs a WriterSink writing to out.
func NewWriterSink(out io.Writer) *WriterSink {
	return &WriterSink{out: out}
}

// Send implements Sink. Write errors are dropped.
func (s *WriterSink) Send(text, _ string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = fmt.Fprintf(s.out, "%s\n\n", text)
}

// FromNames builds the sinks selected by configuration. Several names fan out to
// every sink; no names yield a nil sink so that sharing is skipped.
func FromNames(names []string, logger zerolog.Logger, out io.Writer) (Sink, error) {
	sinks := make(Fanout, 0, len(names))
	for _, name := range names {
		switch name {
		case SinkLog:
			sinks = append(sinks, LogSink{Logger: logger})
		case SinkStdout:
			sinks = append(sinks, NewWriterSink(out))
		default:
			return nil, fmt.Errorf("unknown share sink %q", name)
		}
	}
	switch len(sinks) {
	case 0:
		return nil, nil
	case 1:
		return sinks[0], nil
	default:
		return sinks, nil
	}
}
