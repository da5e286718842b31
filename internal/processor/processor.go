package processor

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"codeberg.org/snonux/phonconv/internal/archive"
	"codeberg.org/snonux/phonconv/internal/batch"
	"codeberg.org/snonux/phonconv/internal/cli"
	"codeberg.org/snonux/phonconv/internal/lexicon"
	"codeberg.org/snonux/phonconv/internal/logging"
	"codeberg.org/snonux/phonconv/internal/phonetic"
	"codeberg.org/snonux/phonconv/internal/render"
	"codeberg.org/snonux/phonconv/internal/transcription"
)

// Processor handles the conversion requests of one command invocation
type Processor struct {
	flags     *cli.Flags
	from      phonetic.Notation
	to        phonetic.Notation
	format    render.Format
	converter *transcription.Converter
	out       io.Writer
	log       zerolog.Logger
}

// NewProcessor validates flags and creates a processor writing to out
func NewProcessor(flags *cli.Flags, out io.Writer) (*Processor, error) {
	from, err := phonetic.ParseNotation(flags.From)
	if err != nil {
		return nil, fmt.Errorf("invalid --from: %w", err)
	}
	if !from.IsKey() {
		return nil, fmt.Errorf("invalid --from: %s can only be used as an output notation", from)
	}
	to, err := phonetic.ParseNotation(flags.To)
	if err != nil {
		return nil, fmt.Errorf("invalid --to: %w", err)
	}
	format, err := render.ParseFormat(flags.Format)
	if err != nil {
		return nil, err
	}

	return &Processor{
		flags:     flags,
		from:      from,
		to:        to,
		format:    format,
		converter: transcription.NewConverter(phonetic.English()),
		out:       out,
		log:       logging.Get(),
	}, nil
}

// SetOutput redirects rendered output to out
func (p *Processor) SetOutput(out io.Writer) {
	p.out = out
}

// ProcessSingle converts one transcription given on the command line
func (p *Processor) ProcessSingle(ctx context.Context, text string) error {
	entry := batch.Entry{Transcription: strings.Join(strings.Fields(text), " ")}
	if entry.Transcription == "" {
		return fmt.Errorf("please provide a transcription or use --batch")
	}

	results := batch.Convert(ctx, p.converter, []batch.Entry{entry}, p.from, p.to, 1)
	if err := results[0].Err; err != nil {
		return err
	}

	if err := render.Results(p.out, results, p.format); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return p.store(ctx, results)
}

// ProcessBatch converts every transcription in the batch file. Failed
// entries are logged and counted; the remaining entries are still written.
func (p *Processor) ProcessBatch(ctx context.Context) error {
	entries, err := batch.ReadBatchFile(p.flags.BatchFile)
	if err != nil {
		return err
	}

	p.log.Info().
		Str("file", p.flags.BatchFile).
		Int("entries", len(entries)).
		Int("workers", p.flags.Workers).
		Stringer("from", p.from).
		Stringer("to", p.to).
		Msg("converting batch")

	results := batch.Convert(ctx, p.converter, entries, p.from, p.to, p.flags.Workers)
	for _, r := range results {
		if r.Err != nil {
			l := entryLogger(r.Entry)
			l.Warn().Err(r.Err).Msg("conversion failed")
		}
	}

	if err := render.Results(p.out, results, p.format); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if err := p.store(ctx, results); err != nil {
		return err
	}

	failed := batch.Failed(results)
	p.log.Info().
		Int("total", len(results)).
		Int("converted", len(results)-failed).
		Int("failed", failed).
		Msg("batch finished")

	if failed > 0 {
		return fmt.Errorf("%d of %d transcriptions could not be converted", failed, len(results))
	}
	return nil
}

// PrintCatalog writes the phoneme catalog
func (p *Processor) PrintCatalog() error {
	return render.Catalog(p.out, p.converter.Table(), p.format)
}

// Lookup prints the lexicon records stored for word, or all of them when
// word is empty
func (p *Processor) Lookup(ctx context.Context, word string) error {
	if p.flags.LexiconPath == "" {
		return fmt.Errorf("no lexicon database configured (use --db)")
	}
	if _, err := os.Stat(p.flags.LexiconPath); err != nil {
		return fmt.Errorf("lexicon database not found: %w", err)
	}

	store, err := lexicon.Open(p.flags.LexiconPath)
	if err != nil {
		return err
	}
	defer store.Close()

	var records []lexicon.Record
	if word == "" {
		records, err = store.All(ctx)
	} else {
		records, err = store.Lookup(ctx, word)
	}
	if err != nil {
		return err
	}
	if len(records) == 0 && word != "" {
		return fmt.Errorf("no pronunciation stored for %q", word)
	}

	return render.Records(p.out, records, p.format)
}

// store records every successful result in the lexicon, when one is
// configured
func (p *Processor) store(ctx context.Context, results []batch.Result) error {
	if p.flags.LexiconPath == "" {
		return nil
	}

	if p.flags.Archive {
		if _, err := os.Stat(p.flags.LexiconPath); err == nil {
			archived, err := archive.ArchiveFile(p.flags.LexiconPath)
			if err != nil {
				return err
			}
			p.log.Info().Str("path", archived).Msg("archived lexicon")
		}
	}

	db, err := lexicon.Open(p.flags.LexiconPath)
	if err != nil {
		return err
	}
	defer db.Close()

	saved := 0
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		rec, err := p.record(r.Entry)
		if err != nil {
			l := entryLogger(r.Entry)
			l.Warn().Err(err).Msg("skipping lexicon entry")
			continue
		}
		if err := db.Save(ctx, rec); err != nil {
			return err
		}
		saved++
	}

	p.log.Info().Str("path", p.flags.LexiconPath).Int("saved", saved).Msg("lexicon updated")
	return nil
}

// record converts entry into every notation
func (p *Processor) record(entry batch.Entry) (lexicon.Record, error) {
	rec := lexicon.Record{Word: entry.Word}
	for _, n := range phonetic.Notations {
		s, err := p.converter.Convert(entry.Transcription, p.from, n)
		if err != nil {
			return lexicon.Record{}, err
		}
		s = strings.TrimSuffix(s, n.Separator())
		switch n {
		case phonetic.ARPABET:
			rec.ARPABET = s
		case phonetic.XSAMPA:
			rec.XSAMPA = s
		case phonetic.IPA:
			rec.IPA = s
		}
	}
	return rec, nil
}

func entryLogger(e batch.Entry) zerolog.Logger {
	return logging.With(map[string]interface{}{
		"line": e.Line,
		"word": e.Word,
	})
}
