// Package services orchestrates consolidation runs: loading migrations,
// extracting statements, and writing the combined script.
package services

import (
	"context"
	"fmt"

	"github.com/vvka-141/schemafold/internal/checksum"
	"github.com/vvka-141/schemafold/internal/consolidate"
	"github.com/vvka-141/schemafold/internal/sourcemap"
	"github.com/vvka-141/schemafold/pkg/schemafold"
)

// FileOccurrences lists the CREATE TABLE occurrences found in one migration.
type FileOccurrences struct {
	File        string
	Occurrences []consolidate.Occurrence
}

// ConsolidationService runs consolidation against a MigrationSource.
// Thread-Safety: stateless between calls; safe for concurrent use when the
// injected dependencies are.
type ConsolidationService struct {
	source     schemafold.MigrationSource
	writer     schemafold.OutputWriter
	logger     schemafold.Logger
	calculator checksum.Calculator
}

// NewConsolidationService creates a ConsolidationService.
// Panics on nil dependencies.
func NewConsolidationService(
	source schemafold.MigrationSource,
	writer schemafold.OutputWriter,
	logger schemafold.Logger,
) *ConsolidationService {
	if source == nil {
		panic("source cannot be nil")
	}
	if writer == nil {
		panic("writer cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}

	return &ConsolidationService{
		source:     source,
		writer:     writer,
		logger:     logger,
		calculator: checksum.New(),
	}
}

// Run consolidates and writes the output unless cfg.DryRun is set.
// A missing baseline aborts before anything is written.
func (s *ConsolidationService) Run(ctx context.Context, cfg schemafold.ConsolidationConfig) (schemafold.Report, error) {
	output, report, err := s.Build(ctx, cfg)
	if err != nil {
		return report, err
	}

	if cfg.DryRun {
		s.logger.Info("Dry run: %s not written", cfg.OutputPath)
		return report, nil
	}

	if err := s.writer.WriteOutput(cfg.OutputPath, []byte(output)); err != nil {
		return report, err
	}
	s.logger.Info("Wrote %s", cfg.OutputPath)
	return report, nil
}

// Build consolidates in memory and returns the output without writing it.
func (s *ConsolidationService) Build(ctx context.Context, cfg schemafold.ConsolidationConfig) (string, schemafold.Report, error) {
	output, _, report, err := s.BuildMapped(ctx, cfg)
	return output, report, err
}

// BuildMapped is Build plus a source map from output lines to migration files.
func (s *ConsolidationService) BuildMapped(ctx context.Context, cfg schemafold.ConsolidationConfig) (string, *sourcemap.SourceMap, schemafold.Report, error) {
	baseline, files, skipped, err := s.load(ctx, cfg)
	if err != nil {
		return "", nil, schemafold.Report{}, err
	}

	known := schemafold.NewKnownEntitySet(cfg.KnownTables...)
	s.logger.Verbose("Known tables (%d): %v", known.Len(), known.Names())

	res := consolidate.Consolidate(baseline.Content, files, known, consolidate.Options{
		HeaderReplacements: cfg.HeaderReplacements,
		BaselineName:       baseline.Name,
	})
	for _, c := range res.Candidates {
		s.logger.Info("  + %s (from %s)", c.Entity, c.Source)
	}
	for _, name := range res.Report.DroppedEntities {
		s.logger.Verbose("Dropped malformed CREATE TABLE %s", name)
	}

	report := res.Report
	report.FilesSkipped = skipped
	report.OutputChecksum = s.calculator.CalculateRaw([]byte(res.Output))
	s.logger.Verbose("Output checksum: %s", report.OutputChecksum)

	return res.Output, res.SourceMap, report, nil
}

// Inspect reports every CREATE TABLE occurrence per additional migration,
// in processing order, without assembling output.
func (s *ConsolidationService) Inspect(ctx context.Context, cfg schemafold.ConsolidationConfig) ([]FileOccurrences, []*schemafold.FileError, error) {
	cfg.DryRun = true
	_, files, skipped, err := s.load(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	known := schemafold.NewKnownEntitySet(cfg.KnownTables...)
	result := make([]FileOccurrences, 0, len(files))
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		result = append(result, FileOccurrences{
			File:        f.Name,
			Occurrences: consolidate.ScanFile(f, known),
		})
	}
	return result, skipped, nil
}

func (s *ConsolidationService) load(ctx context.Context, cfg schemafold.ConsolidationConfig) (schemafold.MigrationFile, []schemafold.MigrationFile, []*schemafold.FileError, error) {
	if err := cfg.Validate(); err != nil {
		return schemafold.MigrationFile{}, nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	s.logger.Info("Reading baseline %s", cfg.BaselineFile)
	baseline, err := s.source.LoadBaseline(cfg.MigrationsDir, cfg.BaselineFile)
	if err != nil {
		// Reported once by the caller.
		return schemafold.MigrationFile{}, nil, nil, err
	}

	if err := ctx.Err(); err != nil {
		return schemafold.MigrationFile{}, nil, nil, err
	}

	files, skipped, err := s.source.LoadAdditional(cfg.MigrationsDir, cfg.BaselineFile)
	if err != nil {
		return schemafold.MigrationFile{}, nil, nil, err
	}
	if err := ctx.Err(); err != nil {
		return schemafold.MigrationFile{}, nil, nil, err
	}
	for _, fe := range skipped {
		s.logger.Error("Skipping %v", fe)
	}
	s.logger.Info("Scanning %d additional migration(s)", len(files))

	return baseline, files, skipped, nil
}
