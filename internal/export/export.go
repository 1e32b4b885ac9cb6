// Package export writes snapshots of a field for inspection outside the tool.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/san-kum/voxgeo/internal/render"
	"github.com/san-kum/voxgeo/internal/surface"
	"github.com/san-kum/voxgeo/internal/voxel"
)

type ExportData struct {
	Pattern   string      `json:"pattern"`
	Parameter int         `json:"parameter"`
	Width     int         `json:"width"`
	Height    int         `json:"height"`
	Rows      [][]float64 `json:"rows"`
}

func snapshot(pattern string, param int, f *voxel.Field) ExportData {
	data := ExportData{
		Pattern:   pattern,
		Parameter: param,
		Width:     f.Width(),
		Height:    f.Height(),
		Rows:      make([][]float64, f.Height()),
	}
	cells := f.Cells()
	for y := range data.Rows {
		row := make([]float64, f.Width())
		copy(row, cells[y*f.Width():(y+1)*f.Width()])
		data.Rows[y] = row
	}
	return data
}

// WriteJSON encodes the field as rows of values.
func WriteJSON(w io.Writer, pattern string, param int, f *voxel.Field) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(snapshot(pattern, param, f))
}

// WriteCSV writes one record per row.
func WriteCSV(w io.Writer, f *voxel.Field) error {
	cw := csv.NewWriter(w)
	record := make([]string, f.Width())
	cells := f.Cells()
	for y := 0; y < f.Height(); y++ {
		for x := range record {
			record[x] = strconv.FormatFloat(cells[x+y*f.Width()], 'f', -1, 64)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func drawImage(f *voxel.Field, cellW, cellH int) (*surface.Image, error) {
	if cellW <= 0 || cellH <= 0 {
		return nil, fmt.Errorf("export: cell size %dx%d must be positive", cellW, cellH)
	}
	img, err := surface.NewImage(f.Width()*cellW, f.Height()*cellH)
	if err != nil {
		return nil, err
	}
	r, err := render.New(img, cellW, cellH)
	if err != nil {
		img.Close()
		return nil, err
	}
	r.Draw(f)
	return img, nil
}

// WritePNG renders the field at the given cell size and encodes it to w.
func WritePNG(w io.Writer, f *voxel.Field, cellW, cellH int) error {
	img, err := drawImage(f, cellW, cellH)
	if err != nil {
		return err
	}
	defer img.Close()
	return img.EncodePNG(w)
}

// SavePNG renders the field at the given cell size and writes it to path.
func SavePNG(path string, f *voxel.Field, cellW, cellH int) error {
	img, err := drawImage(f, cellW, cellH)
	if err != nil {
		return err
	}
	defer img.Close()
	return img.SavePNG(path)
}

// Save writes the field to path as png, svg, csv or json. Every format goes
// to stdout when path is empty or "-".
func Save(path, format, pattern string, param int, f *voxel.Field, cellW, cellH int) error {
	return SaveTo(os.Stdout, path, format, pattern, param, f, cellW, cellH)
}

// SaveTo is Save with stdout replaced by out.
func SaveTo(out io.Writer, path, format, pattern string, param int, f *voxel.Field, cellW, cellH int) error {
	var write func(io.Writer) error
	switch format {
	case "png":
		write = func(w io.Writer) error { return WritePNG(w, f, cellW, cellH) }
	case "csv":
		write = func(w io.Writer) error { return WriteCSV(w, f) }
	case "json":
		write = func(w io.Writer) error { return WriteJSON(w, pattern, param, f) }
	case "svg":
		write = func(w io.Writer) error { return WriteSVG(w, f, cellW, cellH) }
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if path == "" || path == "-" {
		return write(out)
	}
	if format == "png" {
		return SavePNG(path, f, cellW, cellH)
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	if err := write(file); err != nil {
		return err
	}
	return file.Close()
}
