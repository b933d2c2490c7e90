// Package export renders the task list in interchange and print formats.
package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"gopkg.in/yaml.v3"

	"weekplan/internal/planner"
)

// Formats lists the supported export formats.
var Formats = []string{"json", "csv", "yaml", "pdf"}

// ErrUnknownFormat is returned for a format not in Formats.
var ErrUnknownFormat = errors.New("unknown export format")

// Source supplies the tasks to export.
type Source interface {
	Tasks(ctx context.Context) ([]planner.Task, error)
}

// Exporter renders the tasks of a Source in one of Formats.
type Exporter struct{ src Source }

// NewExporter creates an Exporter reading from src.
func NewExporter(src Source) *Exporter { return &Exporter{src: src} }

// Export renders every task in display order.
func (e *Exporter) Export(ctx context.Context, format string) ([]byte, error) {
	tasks, err := e.src.Tasks(ctx)
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []planner.Task{}
	}
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		b, err := json.MarshalIndent(tasks, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(b, '\n'), nil
	case "csv":
		var b bytes.Buffer
		w := csv.NewWriter(&b)
		_ = w.Write([]string{"position", "title", "date", "time", "id"})
		for i, t := range tasks {
			_ = w.Write([]string{strconv.Itoa(i + 1), t.Title, t.Date, t.Time, t.ID})
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return nil, err
		}
		return b.Bytes(), nil
	case "yaml":
		return yaml.Marshal(tasks)
	case "pdf":
		return renderPDF(tasks)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

func renderPDF(tasks []planner.Task) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Weekly Planner", true)
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(40, 10, "Weekly Planner")
	pdf.Ln(12)
	pdf.SetFont("Arial", "", 10)
	if len(tasks) == 0 {
		pdf.MultiCell(0, 6, "No tasks planned.", "0", "L", false)
	}
	for i, t := range tasks {
		line := fmt.Sprintf("%d. %s - %s", i+1, t.Title, t.Date)
		if t.Time != "" {
			line += " at " + t.Time
		}
		pdf.MultiCell(0, 6, tr(line), "0", "L", false)
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
