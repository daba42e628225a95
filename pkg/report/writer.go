package report

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
)

// separator frames the report header.
var separator = strings.Repeat("-", 60)

// Writer renders dependency update reports. A single mutex serializes
// render calls on the same Writer, so concurrent renders against a
// shared sink always produce contiguous blocks of text. Callers that
// share a sink must share the Writer.
type Writer struct {
	mu          sync.Mutex
	diagnostics DiagnosticsSink
}

// NewWriter creates a report writer. Unresolved-dependency causes are
// sent to diagnostics; a nil sink discards them.
func NewWriter(diagnostics DiagnosticsSink) *Writer {
	if diagnostics == nil {
		diagnostics = nopDiagnostics{}
	}
	return &Writer{diagnostics: diagnostics}
}

// Render writes the full report to out. Sections appear in fixed
// order and entries within a section are sorted by group, then name.
// Sink failures propagate unchanged; there is no rollback of partial
// output. Render does not close out.
func (w *Writer) Render(input Input, out io.Writer) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	p := &linePrinter{w: out}
	w.writeHeader(p, input)
	w.writeUpToDate(p, input)
	if err := w.writeExceedLatestFound(p, input); err != nil {
		return err
	}
	if err := w.writeUpgrades(p, input); err != nil {
		return err
	}
	w.writeUnresolved(p, input)
	return p.err
}

// RenderToConsole renders the report to standard output.
func (w *Writer) RenderToConsole(input Input) error {
	return w.Render(input, os.Stdout)
}

// RenderToFile renders the report to the file at path, creating or
// truncating it. The file is closed on every exit path.
func (w *Writer) RenderToFile(input Input, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to open report file %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return w.Render(input, f)
}

func (w *Writer) writeHeader(p *linePrinter, input Input) {
	p.Println("")
	p.Println(separator)
	p.Println(input.ProjectLabel + " Project Dependency Updates")
	p.Println(separator)
}

func (w *Writer) writeUpToDate(p *linePrinter, input Input) {
	if len(input.UpToDateVersions) == 0 {
		p.Println("\nAll dependencies have later versions.")
		return
	}
	p.Printf("\nThe following dependencies are using the latest %s version:\n", input.RevisionLabel)
	for _, key := range sortedKeys(input.UpToDateVersions) {
		p.Printf(" - %s:%s\n", key.Label(), input.UpToDateVersions[key])
	}
}

func (w *Writer) writeExceedLatestFound(p *linePrinter, input Input) error {
	if len(input.DowngradeVersions) == 0 {
		return nil
	}
	p.Printf("\nThe following dependencies exceed the version found at the %s revision level:\n", input.RevisionLabel)
	for _, key := range sortedKeys(input.DowngradeVersions) {
		current, ok := input.CurrentVersions[key]
		if !ok {
			return fmt.Errorf("no current version recorded for dependency %s", key.Label())
		}
		p.Printf(" - %s [%s <- %s]\n", key.Label(), current, input.DowngradeVersions[key])
	}
	return nil
}

func (w *Writer) writeUpgrades(p *linePrinter, input Input) error {
	if len(input.UpgradeVersions) == 0 {
		p.Printf("\nAll dependencies are using the latest %s versions.\n", input.RevisionLabel)
		return nil
	}
	p.Printf("\nThe following dependencies have later %s versions:\n", input.RevisionLabel)
	for _, key := range sortedKeys(input.UpgradeVersions) {
		current, ok := input.CurrentVersions[key]
		if !ok {
			return fmt.Errorf("no current version recorded for dependency %s", key.Label())
		}
		p.Printf(" - %s [%s -> %s]\n", key.Label(), current, input.UpgradeVersions[key])
	}
	return nil
}

func (w *Writer) writeUnresolved(p *linePrinter, input Input) {
	if len(input.Unresolved) == 0 {
		return
	}
	p.Println("\nFailed to determine the latest version for the following dependencies (use --info for details):")
	entries := make([]UnresolvedEntry, len(input.Unresolved))
	copy(entries, input.Unresolved)
	sort.Slice(entries, func(i, j int) bool { return entries[i].Key.Less(entries[j].Key) })
	for _, entry := range entries {
		p.Printf(" - %s\n", entry.Key.Label())
		w.diagnostics.Record(entry.Key, entry.Problem)
	}
}

// linePrinter writes to an io.Writer and remembers the first error,
// so section writers do not have to check every Fprintf.
type linePrinter struct {
	w   io.Writer
	err error
}

func (p *linePrinter) Printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *linePrinter) Println(line string) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, line)
}
