package batch

import (
	"context"
	"sync"

	"codeberg.org/snonux/phonconv/internal/phonetic"
)

// Converter is the subset of transcription.Converter used by Convert
type Converter interface {
	Convert(text string, from, to phonetic.Notation) (string, error)
}

// Result pairs an entry with its converted form or the error that stopped it
type Result struct {
	Entry  Entry
	Output string
	Err    error
}

// Convert converts every entry using up to workers goroutines. Results are
// returned in input order. Entries not yet started when ctx is cancelled
// carry ctx.Err().
func Convert(ctx context.Context, conv Converter, entries []Entry, from, to phonetic.Notation, workers int) []Result {
	results := make([]Result, len(entries))
	if len(entries) == 0 {
		return results
	}
	if workers < 1 {
		workers = 1
	}
	if workers > len(entries) {
		workers = len(entries)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i].Entry = entries[i]
				if err := ctx.Err(); err != nil {
					results[i].Err = err
					continue
				}
				results[i].Output, results[i].Err = conv.Convert(entries[i].Transcription, from, to)
			}
		}()
	}

	for i := range entries {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}

// Failed counts results that carry an error
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}
	return n
}
