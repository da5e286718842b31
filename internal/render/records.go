package render

import (
	"encoding/csv"
	"fmt"
	"io"

	"codeberg.org/snonux/phonconv/internal/lexicon"
)

// Records writes lexicon records
func Records(w io.Writer, records []lexicon.Record, format Format) error {
	switch format {
	case FormatText, "":
		for _, r := range records {
			if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.Word, r.ARPABET, r.XSAMPA, r.IPA); err != nil {
				return err
			}
		}
		return nil

	case FormatCSV:
		cw := csv.NewWriter(w)
		if err := cw.Write([]string{"word", "arpabet", "xsampa", "ipa"}); err != nil {
			return err
		}
		for _, r := range records {
			if err := cw.Write([]string{r.Word, r.ARPABET, r.XSAMPA, r.IPA}); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()

	case FormatTable:
		rows := make([][]string, len(records))
		for i, r := range records {
			rows[i] = []string{r.Word, r.ARPABET, r.XSAMPA, r.IPA}
		}
		_, err := fmt.Fprintln(w, drawTable(DefaultStyles, []string{"WORD", "ARPABET", "X-SAMPA", "IPA"}, rows))
		return err

	case FormatJSON:
		if records == nil {
			records = []lexicon.Record{}
		}
		return writeJSON(w, records)

	case FormatYAML:
		return writeYAML(w, records)

	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}
