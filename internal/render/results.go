package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"codeberg.org/snonux/phonconv/internal/batch"
)

type resultView struct {
	Line   int    `json:"line,omitempty" yaml:"line,omitempty"`
	Word   string `json:"word,omitempty" yaml:"word,omitempty"`
	Input  string `json:"input" yaml:"input"`
	Output string `json:"output,omitempty" yaml:"output,omitempty"`
	Error  string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Results writes conversion results. Text and CSV output leave out failed
// entries; JSON and YAML carry the error message instead of an output.
func Results(w io.Writer, results []batch.Result, format Format) error {
	switch format {
	case FormatText, FormatTable, "":
		for _, r := range results {
			if r.Err != nil {
				continue
			}
			var err error
			if r.Entry.Word != "" {
				_, err = fmt.Fprintf(w, "%s\t%s\n", r.Entry.Word, r.Output)
			} else {
				_, err = fmt.Fprintln(w, r.Output)
			}
			if err != nil {
				return err
			}
		}
		return nil

	case FormatCSV:
		cw := csv.NewWriter(w)
		if err := cw.Write([]string{"line", "word", "input", "output"}); err != nil {
			return err
		}
		for _, r := range results {
			if r.Err != nil {
				continue
			}
			row := []string{strconv.Itoa(r.Entry.Line), r.Entry.Word, r.Entry.Transcription, r.Output}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()

	case FormatJSON:
		return writeJSON(w, resultViews(results))

	case FormatYAML:
		return writeYAML(w, resultViews(results))

	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func resultViews(results []batch.Result) []resultView {
	views := make([]resultView, len(results))
	for i, r := range results {
		views[i] = resultView{
			Line:   r.Entry.Line,
			Word:   r.Entry.Word,
			Input:  r.Entry.Transcription,
			Output: r.Output,
		}
		if r.Err != nil {
			views[i].Error = r.Err.Error()
		}
	}
	return views
}
