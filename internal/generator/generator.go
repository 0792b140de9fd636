// Package generator implements the generate action: assemble a name from
// the current configuration, capture its metadata, and record it.
package generator

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/yunhoi129/adtax/internal/history"
	"github.com/yunhoi129/adtax/internal/naming"
	"github.com/yunhoi129/adtax/pkg/models"
)

// Generator ties the configuration store to the history log.
type Generator struct {
	configs *naming.ConfigStore
	history *history.Store
	logger  *zap.Logger
	now     func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock replaces the time source.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// New creates a Generator.
func New(configs *naming.ConfigStore, hist *history.Store, opts ...Option) *Generator {
	g := &Generator{
		configs: configs,
		history: hist,
		logger:  zap.NewNop(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.logger = g.logger.Named("generator")
	return g
}

// Preview assembles the name for sel without recording it.
func (g *Generator) Preview(ctx context.Context, sel models.Selection) (string, error) {
	cfg, err := g.configs.Load(ctx)
	if err != nil {
		return "", err
	}
	return naming.Assemble(cfg, sel), nil
}

// Generate assembles the name for sel, appends it to the history log and
// returns the recorded entry.
func (g *Generator) Generate(ctx context.Context, sel models.Selection) (models.GeneratedNameRecord, error) {
	cfg, err := g.configs.Load(ctx)
	if err != nil {
		return models.GeneratedNameRecord{}, err
	}

	rec := Build(cfg, sel, g.now())
	if err := g.history.Record(ctx, rec); err != nil {
		return models.GeneratedNameRecord{}, fmt.Errorf("record generated name: %w", err)
	}
	g.logger.Info("name generated", zap.String("file_name", rec.FileName))
	return rec, nil
}

// Build creates the history entry for sel under cfg without persisting it.
func Build(cfg models.Configuration, sel models.Selection, at time.Time) models.GeneratedNameRecord {
	return models.GeneratedNameRecord{
		FileName:  naming.Assemble(cfg, sel),
		Metadata:  BuildMetadata(cfg, sel),
		Timestamp: at.UnixMilli(),
	}
}

// BuildMetadata records each segment's value under the metadata field its
// variable maps to. Variables with no matching field are left out.
// Values are stored as selected, before case transformation.
func BuildMetadata(cfg models.Configuration, sel models.Selection) models.Metadata {
	var md models.Metadata
	for _, seg := range naming.Segments(cfg, sel) {
		if f, ok := models.MetadataFieldFor(seg.Variable); ok {
			md.Set(f, seg.Text)
		}
	}
	return md
}
