package restore

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/srcmd/srcmd/document"
	"github.com/srcmd/srcmd/header"
)

// ErrInputNotFound indicates the input document does not exist.
var ErrInputNotFound = errors.New("input document not found")

// TraceFunc receives diagnostic messages when debug tracing is enabled.
type TraceFunc func(format string, args ...any)

// State is the engine's per-run parse state. Exactly one State exists per
// Restore call; Step mutates it line by line. Exposing it lets tests probe
// the state machine at any point without running a whole document through.
type State struct {
	// Path is the pending file path from the most recent header, or "".
	Path string

	// Buffer accumulates content lines while inside a fenced block.
	// Lines keep their original terminators.
	Buffer []string

	// InsideBlock reports whether an opening fence has been seen without
	// its closing fence.
	InsideBlock bool

	// Line is the 1-based number of the last line fed to Step.
	Line int

	written []string
	errs    []error
}

// Written returns the sink paths emitted so far, in document order.
func (s *State) Written() []string {
	return s.written
}

// Engine restores files from a bundle document.
type Engine struct {
	// Extractor recognizes header lines. Defaults to header.NewExtractor().
	Extractor *header.Extractor

	// Trace, when non-nil, receives a line-by-line diagnostic trace.
	Trace TraceFunc
}

// NewEngine creates an engine with the default header extractor.
func NewEngine() *Engine {
	return &Engine{Extractor: header.NewExtractor()}
}

// Open opens the input document at path, mapping a missing file to
// ErrInputNotFound so callers can fail fast before any processing.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("open input document: %w", err)
	}
	return f, nil
}

// Restore reads the document from r in a single pass and writes every
// recognized file record to sink. It returns the sink paths written in
// document order. Write failures do not stop the pass; they are joined into
// the returned error after all records have been attempted.
func (e *Engine) Restore(r io.Reader, sink Sink) ([]string, error) {
	st := &State{}
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			e.Step(st, line, sink)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			st.errs = append(st.errs, fmt.Errorf("read input document: %w", err))
			return st.written, errors.Join(st.errs...)
		}
	}
	e.Finish(st, sink)
	return st.written, errors.Join(st.errs...)
}

// Step advances the state machine by one input line. The line should retain
// its original terminator; content lines are buffered verbatim.
func (e *Engine) Step(st *State, line string, sink Sink) {
	st.Line++
	trimmed := strings.TrimSpace(line)

	if isSeparator(trimmed, st.InsideBlock) {
		e.tracef("line %d: separator, skipped", st.Line)
		return
	}

	if strings.HasPrefix(trimmed, document.Fence) {
		if !st.InsideBlock {
			// Opening fence; the language tag, if any, is ignored.
			st.InsideBlock = true
			e.tracef("line %d: fence open (path=%q)", st.Line, st.Path)
			return
		}
		st.InsideBlock = false
		if st.Path != "" {
			e.emit(st, sink)
		} else {
			// Code block with no recognized header: discard.
			e.tracef("line %d: fence close with no header, %d lines discarded", st.Line, len(st.Buffer))
		}
		st.Path = ""
		st.Buffer = nil
		return
	}

	if st.InsideBlock {
		st.Buffer = append(st.Buffer, line)
		return
	}

	if trimmed == "" {
		return
	}

	if m, ok := e.Extractor.Match(line); ok {
		if st.Path != "" {
			e.tracef("line %d: header %q replaces pending %q", st.Line, m.Path, st.Path)
		} else {
			e.tracef("line %d: header %q (%s rule)", st.Line, m.Path, m.Rule)
		}
		// A new header always discards an incomplete prior record.
		st.Path = m.Path
		st.Buffer = nil
		return
	}

	e.tracef("line %d: ignored", st.Line)
}

// Finish flushes a final record if the document ended inside an unterminated
// block with a pending path. Call it exactly once, after the last Step.
func (e *Engine) Finish(st *State, sink Sink) {
	if st.InsideBlock && st.Path != "" && len(st.Buffer) > 0 {
		e.tracef("input ended inside block, flushing %q", st.Path)
		e.emit(st, sink)
	}
	st.Path = ""
	st.Buffer = nil
	st.InsideBlock = false
}

// emit hands the accumulated record to the sink and records the outcome.
func (e *Engine) emit(st *State, sink Sink) {
	rec := document.FileRecord{Path: st.Path, Lines: st.Buffer}
	target, err := sink.Write(rec)
	if err != nil {
		st.errs = append(st.errs, fmt.Errorf("write %s: %w", rec.Path, err))
		e.tracef("write %s failed: %v", rec.Path, err)
		return
	}
	st.written = append(st.written, target)
	e.tracef("wrote %s (%d lines)", target, len(rec.Lines))
}

func (e *Engine) tracef(format string, args ...any) {
	if e.Trace != nil {
		e.Trace(format, args...)
	}
}

// isSeparator reports whether the trimmed line is a record separator.
// Outside a block, horizontal rules (---, ***, ___) and ==== runs are
// separators. Inside a block only ==== runs are skipped, so file content
// such as YAML document markers survives the round trip.
func isSeparator(trimmed string, insideBlock bool) bool {
	if len(trimmed) < 3 {
		return false
	}
	marker := trimmed[0]
	switch marker {
	case '=':
	case '-', '*', '_':
		if insideBlock {
			return false
		}
	default:
		return false
	}
	for i := 1; i < len(trimmed); i++ {
		if trimmed[i] != marker {
			return false
		}
	}
	return true
}
