// Package deckfile loads question/answer pairs from deck files.
package deckfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vokabulatr/vokabulatr/internal/quiz"
)

var ErrUnsupportedFormat = errors.New("deckfile: unsupported file extension")

// Load reads a deck from path. The format is chosen by the file extension:
// .csv for two columns without a header, .yml or .yaml for a list of front/back entries.
func Load(path string) ([]quiz.Pair, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("os.Open(%s) > %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	var pairs []quiz.Pair
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		pairs, err = ReadCSV(file)
	case ".yml", ".yaml":
		pairs, err = ReadYAML(file)
	default:
		return nil, fmt.Errorf("%s (%q) > %w", path, ext, ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("%s > %w", path, err)
	}
	return pairs, nil
}

// ReadCSV reads two-column records with no header row
func ReadCSV(r io.Reader) ([]quiz.Pair, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 2
	reader.TrimLeadingSpace = true

	var pairs []quiz.Pair
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv.Reader.Read() > %w", err)
		}
		pair := quiz.Pair{
			Front: record[0],
			Back:  record[1],
		}
		if !isComplete(pair) {
			line, _ := reader.FieldPos(0)
			return nil, fmt.Errorf("record on line %d needs both front and back", line)
		}
		pairs = append(pairs, pair)
	}
	return pairs, nil
}

// ReadYAML reads a YAML sequence of mappings with front and back keys
func ReadYAML(r io.Reader) ([]quiz.Pair, error) {
	var pairs []quiz.Pair
	if err := yaml.NewDecoder(r).Decode(&pairs); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("yaml.NewDecoder().Decode() > %w", err)
	}
	for i, pair := range pairs {
		if !isComplete(pair) {
			return nil, fmt.Errorf("entry %d needs both front and back", i+1)
		}
	}
	return pairs, nil
}

// isComplete reports whether both sides of pair have something to show
func isComplete(pair quiz.Pair) bool {
	return strings.TrimSpace(pair.Front) != "" && strings.TrimSpace(pair.Back) != ""
}
