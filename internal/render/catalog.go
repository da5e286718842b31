package render

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"codeberg.org/snonux/phonconv/internal/phonetic"
)

// Styles holds the lipgloss styles used for tables
type Styles struct {
	Header lipgloss.Style
	Cell   lipgloss.Style
	Border lipgloss.Style
}

// DefaultStyles is a plain green theme
var DefaultStyles = Styles{
	Header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff9f")).Padding(0, 1),
	Cell:   lipgloss.NewStyle().Padding(0, 1),
	Border: lipgloss.NewStyle().Foreground(lipgloss.Color("#6e7681")),
}

type phonemeView struct {
	ARPABET string `json:"arpabet" yaml:"arpabet"`
	XSAMPA  string `json:"xsampa" yaml:"xsampa"`
	IPA     string `json:"ipa" yaml:"ipa"`
	Class   string `json:"class" yaml:"class"`
}

var catalogHeaders = []string{"ARPA", "X-SAMPA", "IPA", "CLASS"}

// Catalog writes every entry of t. FormatText behaves like FormatTable.
func Catalog(w io.Writer, t *phonetic.Table, format Format) error {
	entries := t.Entries()
	rows := make([][]string, len(entries))
	views := make([]phonemeView, len(entries))
	for i, p := range entries {
		rows[i] = []string{p.ARPABET, p.XSAMPA, p.IPA, p.Class.String()}
		views[i] = phonemeView{p.ARPABET, p.XSAMPA, p.IPA, p.Class.String()}
	}

	switch format {
	case FormatTable, FormatText, "":
		_, err := fmt.Fprintln(w, drawTable(DefaultStyles, catalogHeaders, rows))
		return err

	case FormatCSV:
		cw := csv.NewWriter(w)
		if err := cw.Write(catalogHeaders); err != nil {
			return err
		}
		if err := cw.WriteAll(rows); err != nil {
			return err
		}
		return cw.Error()

	case FormatJSON:
		return writeJSON(w, views)

	case FormatYAML:
		return writeYAML(w, views)

	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func drawTable(s Styles, headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(s.Border).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.Header
			}
			return s.Cell
		}).
		Headers(headers...).
		Rows(rows...).
		String()
}
