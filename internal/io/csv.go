package io

import (
	"encoding/csv"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/paveg/siunit/internal/dataframe"
	"github.com/paveg/siunit/internal/extarray"
	"github.com/paveg/siunit/internal/series"
	"github.com/paveg/siunit/internal/temparray"
	"github.com/paveg/siunit/internal/temperature"
)

const (
	// Boolean string constants
	trueStr  = "true"
	falseStr = "false"
)

// columnType is the inferred type of a CSV column.
type columnType int

const (
	stringColumn columnType = iota
	boolColumn
	intColumn
	floatColumn
	temperatureColumn
)

// unitMarkers flag a cell as a temperature rather than a bare number.
var unitMarkers = []string{"℃", "℉", "°C", "°F"}

// Read reads CSV data and returns a DataFrame
func (r *CSVReader) Read() (*dataframe.DataFrame, error) {
	csvReader := csv.NewReader(r.reader)
	csvReader.Comma = r.options.Delimiter
	csvReader.Comment = r.options.Comment
	csvReader.TrimLeadingSpace = r.options.SkipInitialSpace
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}

	if len(records) == 0 {
		return dataframe.New(), nil
	}

	var headers []string
	dataRows := records
	if r.options.Header {
		headers, dataRows = records[0], records[1:]
	} else {
		headers = make([]string, len(records[0]))
		for i := range headers {
			headers[i] = fmt.Sprintf("column_%d", i)
		}
	}

	// Transpose data to work with columns
	columns := make([][]string, len(headers))
	for i := range columns {
		columns[i] = make([]string, len(dataRows))
		for j, row := range dataRows {
			if i < len(row) {
				columns[i][j] = row[i]
			}
		}
	}

	seriesList := make([]dataframe.ISeries, 0, len(headers))
	for i, header := range headers {
		s, err := r.createSeries(header, columns[i])
		if err != nil {
			for _, built := range seriesList {
				built.Release()
			}
			return nil, fmt.Errorf("creating series for column %s: %w", header, err)
		}
		seriesList = append(seriesList, s)
	}

	return dataframe.New(seriesList...), nil
}

func (r *CSVReader) createSeries(name string, data []string) (dataframe.ISeries, error) {
	kind := inferColumnType(data)
	if slices.Contains(r.options.TemperatureColumns, name) {
		kind = temperatureColumn
	}

	switch kind {
	case temperatureColumn:
		return r.createTemperatureSeries(name, data)
	case boolColumn:
		return parseColumn(name, data, r, func(s string) (bool, error) {
			return strings.EqualFold(s, trueStr), nil
		}), nil
	case intColumn:
		return parseColumn(name, data, r, func(s string) (int64, error) {
			return strconv.ParseInt(s, 10, 64)
		}), nil
	case floatColumn:
		return parseColumn(name, data, r, func(s string) (float64, error) {
			return strconv.ParseFloat(s, 64)
		}), nil
	default:
		return series.NewWithValidity(name, data, nil, r.mem), nil
	}
}

// parseColumn converts cells with parse; empty cells become nulls. Callers only
// pass parsers that accept every non-empty cell.
func parseColumn[T series.Element](name string, data []string, r *CSVReader, parse func(string) (T, error)) dataframe.ISeries {
	values := make([]T, len(data))
	valid := make([]bool, len(data))
	for i, cell := range data {
		if cell == "" {
			continue
		}
		v, err := parse(cell)
		if err != nil {
			continue
		}
		values[i], valid[i] = v, true
	}
	return series.NewWithValidity(name, values, valid, r.mem)
}

// createTemperatureSeries parses every cell as a reading; empty cells become NA.
func (r *CSVReader) createTemperatureSeries(name string, data []string) (dataframe.ISeries, error) {
	values := make([]float64, len(data))
	for i, cell := range data {
		if strings.TrimSpace(cell) == "" {
			values[i] = math.NaN()
			continue
		}
		v, err := temperature.Parse(cell)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		values[i] = v.Celsius()
	}
	arr := temparray.FromBuffer(values, extarray.WithCopy(true), extarray.WithAllocator(r.mem))
	return series.NewTemperature(name, arr), nil
}

// inferColumnType determines the most specific type every non-empty cell fits.
// A column is a temperature column when every cell parses as a temperature and
// at least one carries a unit marker.
func inferColumnType(data []string) columnType {
	canBeInt, canBeFloat, canBeBool := true, true, true
	canBeTemperature, hasUnit := true, false
	hasNonEmptyValue := false

	for _, value := range data {
		if value == "" {
			continue
		}
		hasNonEmptyValue = true

		if canBeBool {
			lower := strings.ToLower(value)
			canBeBool = lower == trueStr || lower == falseStr
		}
		if canBeInt {
			_, err := strconv.ParseInt(value, 10, 64)
			canBeInt = err == nil
		}
		if canBeFloat {
			_, err := strconv.ParseFloat(value, 64)
			canBeFloat = err == nil
		}
		if canBeTemperature {
			_, err := temperature.Parse(value)
			canBeTemperature = err == nil
			hasUnit = hasUnit || hasUnitMarker(value)
		}
	}

	switch {
	case !hasNonEmptyValue:
		return stringColumn
	case canBeBool:
		return boolColumn
	case canBeTemperature && hasUnit:
		return temperatureColumn
	case canBeInt:
		return intColumn
	case canBeFloat:
		return floatColumn
	default:
		return stringColumn
	}
}

func hasUnitMarker(s string) bool {
	for _, marker := range unitMarkers {
		if strings.Contains(s, marker) {
			return true
		}
	}
	return false
}

// Write writes the DataFrame to CSV format
func (w *CSVWriter) Write(df *dataframe.DataFrame) error {
	csvWriter := csv.NewWriter(w.writer)
	if w.options.Delimiter != 0 {
		csvWriter.Comma = w.options.Delimiter
	}

	if w.options.Header {
		header := df.Columns()
		if w.options.Index {
			header = append([]string{""}, header...)
		}
		if err := csvWriter.Write(header); err != nil {
			return fmt.Errorf("writing headers: %w", err)
		}
	}

	for i := 0; i < df.Len(); i++ {
		row := make([]string, 0, df.Width()+1)
		if w.options.Index {
			row = append(row, strconv.Itoa(i))
		}
		for _, name := range df.Columns() {
			column, _ := df.Column(name)
			row = append(row, cellString(column, i))
		}
		if err := csvWriter.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}

	csvWriter.Flush()
	return csvWriter.Error()
}

// cellString renders a value; nulls become empty cells and missing readings "nan".
func cellString(column dataframe.ISeries, index int) string {
	if _, ok := column.(*series.Temperature); ok {
		return column.GetAsString(index)
	}
	if column.IsNull(index) {
		return ""
	}
	return column.GetAsString(index)
}
