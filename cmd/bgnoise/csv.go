package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	ambient "github.com/tphakala/go-ambient-noise"
)

var spectrumHeader = []string{"frequency_hz", "level_db"}

// writeSpectrumCSV writes s as frequency,level rows with a header.
func writeSpectrumCSV(w io.Writer, s ambient.Spectrum) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(spectrumHeader); err != nil {
		return err
	}
	for i := range s.Len() {
		f, db := s.At(i)
		row := []string{
			strconv.FormatFloat(f, 'f', frequencyDecimals, 64),
			strconv.FormatFloat(db, 'f', levelDecimals, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// emitSpectrum writes s to path, or to fallback when path is empty.
func emitSpectrum(path string, fallback io.Writer, s ambient.Spectrum) error {
	if path == "" {
		return writeSpectrumCSV(fallback, s)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := writeSpectrumCSV(f, s); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}
