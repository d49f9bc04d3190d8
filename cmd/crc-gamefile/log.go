package main

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"crc.gg/gamefile/gamefile"
)

// newLogger writes console-encoded logs to w. Debug entries are only kept
// when verbose is set.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = ""
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder

	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if verbose {
		level.SetLevel(zapcore.DebugLevel)
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.AddSync(w), level)
	return zap.New(core)
}

func logDocument(logger *zap.Logger, doc *gamefile.Document, detailsRaw string) {
	logger.Debug("parsed submission",
		zap.String("game_id", doc.GameID),
		zap.Int("details_bytes", len(detailsRaw)),
		zap.Strings("aliases", doc.Aliases),
		zap.Strings("platforms", doc.Platforms),
		zap.Strings("categories", categoryLabels(doc.Categories)),
		zap.Strings("challenges", entryLabels(doc.Challenges)),
		zap.Strings("restrictions", entryLabels(doc.Restrictions)),
		zap.Strings("glitches", entryLabels(doc.Glitches)),
		zap.Bool("glitches_relevant", doc.GlitchesRelevant),
		zap.Bool("char_enabled", doc.CharacterColumn.Enabled),
		zap.String("char_label", doc.CharacterColumn.Label),
		zap.Int("character_options", len(doc.Notes.CharacterOptions)))
}

func entryLabels(entries []gamefile.Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Label)
	}
	return out
}

func categoryLabels(cats []gamefile.Category) []string {
	out := make([]string, 0, len(cats))
	for _, c := range cats {
		out = append(out, c.Label)
		for _, ch := range c.Children {
			out = append(out, c.Label+" - "+ch.Label)
		}
	}
	return out
}
