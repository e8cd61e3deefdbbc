// Package export writes the currently loaded page of history to local files.
// Everything here is a pure client-side transform; no network calls.
package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/abhisek/codecade/internal/api"
)

// ErrNothingToExport is returned for an empty page; no file is written.
var ErrNothingToExport = errors.New("nothing to export")

// Format selects the output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatHTML Format = "html"
)

// Result describes a completed export.
type Result struct {
	Path  string
	Count int
}

// Write exports challenges to a timestamped file in dir. dir defaults to the
// current directory.
func Write(challenges []api.Challenge, format Format, dir string, now time.Time) (*Result, error) {
	if len(challenges) == 0 {
		return nil, ErrNothingToExport
	}
	if dir == "" {
		dir = "."
	}

	name := fmt.Sprintf("codecade-history-%s.%s", now.Format("2006-01-02-150405"), format)
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create export file: %w", err)
	}
	defer func() { _ = f.Close() }()

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(f)
		enc.SetIndent("", "  ")
		err = enc.Encode(challenges)
	case FormatCSV:
		err = writeCSV(f, challenges)
	case FormatHTML:
		err = writeHTML(f, challenges, now)
	default:
		err = fmt.Errorf("unknown export format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("write %s export: %w", format, err)
	}

	return &Result{Path: path, Count: len(challenges)}, nil
}

func writeCSV(f *os.File, challenges []api.Challenge) error {
	w := csv.NewWriter(f)
	header := []string{"id", "title", "topic", "difficulty", "question", "correct_option", "explanation", "created"}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, ch := range challenges {
		correct := ""
		if ch.CorrectAnswerID >= 0 && ch.CorrectAnswerID < len(ch.Options) {
			correct = ch.Options[ch.CorrectAnswerID]
		}
		row := []string{
			strconv.Itoa(ch.ID),
			ch.Title,
			ch.Topic,
			ch.Difficulty,
			ch.Question,
			correct,
			ch.Explanation,
			ch.DateCreated,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
