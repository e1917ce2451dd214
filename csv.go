package siunit

import (
	"io"

	"github.com/apache/arrow-go/v18/arrow/memory"
	siunitio "github.com/paveg/siunit/internal/io"
)

// CSVOptions configures ReadCSV and WriteCSV.
type CSVOptions = siunitio.CSVOptions

// DefaultCSVOptions returns comma-delimited options with a header row.
func DefaultCSVOptions() CSVOptions {
	return siunitio.DefaultCSVOptions()
}

// ReadCSV reads a frame from CSV. Columns whose cells carry a unit marker
// ("21.5°C", "70°F") become temperature columns, as do columns named in
// opts.TemperatureColumns.
func ReadCSV(r io.Reader, opts CSVOptions, mem memory.Allocator) (*DataFrame, error) {
	df, err := siunitio.NewCSVReader(r, opts, mem).Read()
	if err != nil {
		return nil, err
	}
	return &DataFrame{df: df}, nil
}

// WriteCSV writes the frame as CSV; temperatures keep their unit glyph.
func (d *DataFrame) WriteCSV(w io.Writer, opts CSVOptions) error {
	return siunitio.NewCSVWriter(w, opts).Write(d.df)
}
