package processor

import (
	"context"
	"fmt"
	"os"
	"strings"

	"codeberg.org/snonux/csvtrans/internal/csvfile"
	"codeberg.org/snonux/csvtrans/internal/markup"
	"codeberg.org/snonux/csvtrans/internal/memory"
	"codeberg.org/snonux/csvtrans/internal/translator"
)

// Stats tracks per-run counters. A new Processor starts at zero; the
// counters are printed at the end of the run and then discarded.
type Stats struct {
	RowsProcessed    int
	CacheHits        int
	RemoteCalls      int
	RemoteErrors     int
	ValidationErrors int
}

// Processor orchestrates the translation of one input file into one or
// more target languages
type Processor struct {
	provider  translator.Provider
	store     memory.Store
	outputDir string
	stats     Stats
}

// New creates a new Processor writing output files to outputDir
func New(provider translator.Provider, store memory.Store, outputDir string) *Processor {
	return &Processor{
		provider:  provider,
		store:     store,
		outputDir: outputDir,
	}
}

// Stats returns the counters accumulated so far
func (p *Processor) Stats() Stats {
	return p.stats
}

// Run translates the input file into every requested language, writing
// one output file per language. Per-cell failures are absorbed: the cell
// falls back to its source text and processing continues. Cancellation
// of ctx stops the run between cells; translations already obtained stay
// in the memory store for the caller to flush.
func (p *Processor) Run(ctx context.Context, inputPath string, targetLanguages []string) error {
	file, err := csvfile.Read(inputPath)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(p.outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	for _, language := range targetLanguages {
		fmt.Printf("\nTranslating to: %s\n", language)

		if err := p.translateLanguage(ctx, file, inputPath, language); err != nil {
			return err
		}
	}

	p.printSummary()
	return nil
}

// translateLanguage produces the output file for a single target language
func (p *Processor) translateLanguage(ctx context.Context, file *csvfile.File, inputPath, language string) error {
	output := &csvfile.File{Header: file.Header}

	for i, row := range file.Rows {
		if err := ctx.Err(); err != nil {
			fmt.Fprintf(os.Stderr, "\nInterrupted, saving translation memory\n")
			return err
		}

		translated := p.translateCell(ctx, row.Source, language)
		output.Rows = append(output.Rows, csvfile.Row{
			Key:    row.Key,
			Source: row.Source,
			Target: translated,
		})
		p.stats.RowsProcessed++

		fmt.Printf("\rProgress: %d/%d | Remote calls: %d | Cached: %d",
			i+1, len(file.Rows), p.stats.RemoteCalls, p.stats.CacheHits)
	}
	fmt.Println()

	outputPath := csvfile.OutputPath(inputPath, language, p.outputDir)
	if err := output.Write(outputPath); err != nil {
		return err
	}

	fmt.Printf("Output saved to: %s\n", outputPath)
	return nil
}

// translateCell resolves one (cell, language) pair: blank cells stay
// blank, cached translations are reused, and anything that cannot be
// translated and validated falls back to the source text.
func (p *Processor) translateCell(ctx context.Context, source, language string) string {
	if strings.TrimSpace(source) == "" {
		return ""
	}

	if cached, ok := p.store.Get(source, language); ok {
		p.stats.CacheHits++
		return cached
	}

	p.stats.RemoteCalls++
	translated, err := p.provider.Translate(ctx, translator.Request{
		Text:           source,
		TargetLanguage: language,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "\nWarning: translation failed, keeping original text: %v\n", err)
		p.stats.RemoteErrors++
		return source
	}

	if !markup.Validate(source, translated) {
		fmt.Fprintf(os.Stderr, "\nWarning: translation dropped markup tokens, keeping original text\n")
		p.stats.ValidationErrors++
		return source
	}

	p.store.Put(source, language, translated)
	if err := p.store.Flush(); err != nil {
		// Keep going: the entry stays in memory for the final flush
		fmt.Fprintf(os.Stderr, "\nWarning: failed to save translation memory: %v\n", err)
	}

	return translated
}

func (p *Processor) printSummary() {
	fmt.Printf("\n=== Translation Summary ===\n")
	fmt.Printf("Cells processed: %d\n", p.stats.RowsProcessed)
	fmt.Printf("Remote calls: %d\n", p.stats.RemoteCalls)
	fmt.Printf("From cache: %d\n", p.stats.CacheHits)
	if p.stats.RemoteErrors > 0 {
		fmt.Printf("Remote errors: %d\n", p.stats.RemoteErrors)
	}
	if p.stats.ValidationErrors > 0 {
		fmt.Printf("Markup mismatches: %d\n", p.stats.ValidationErrors)
	}
	fmt.Printf("Translation memory entries: %d\n", p.store.Len())
	fmt.Printf("===========================\n")
}
