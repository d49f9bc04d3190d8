package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"crc.gg/gamefile/cidutil"
	"crc.gg/gamefile/compliance"
	"crc.gg/gamefile/gamefile"
	"crc.gg/gamefile/internal/envinput"
	"crc.gg/gamefile/slug"
	"crc.gg/gamefile/storage"
	"crc.gg/gamefile/storage/localfs"
)

func main() {
	os.Exit(run(os.Args[1:], os.LookupEnv, os.Stdout, os.Stderr))
}

func run(args []string, env envinput.Lookup, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		printUsage(errOut)
		return 2
	}

	switch args[0] {
	case "generate":
		return cmdGenerate(args[1:], env, out, errOut)
	case "check":
		return cmdCheck(args[1:], out, errOut)
	case "slug":
		return cmdSlug(args[1:], out, errOut)
	case "doc-cid":
		return cmdDocCID(args[1:], out, errOut)
	case "help", "-h", "--help":
		printUsage(out)
		return 0
	default:
		fmt.Fprintf(errOut, "unknown command: %s\n\n", args[0])
		printUsage(errOut)
		return 2
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "crc-gamefile: build pending-review game files from form submissions")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  crc-gamefile generate [--out <file>] [--name <n>] [--id <id>] [--categories <text>] [--challenges <text>] [--details <json>] [--archive <dir>] [-v]")
	fmt.Fprintln(w, "  crc-gamefile check [--mode strict|permissive] <file> [<file> ...]")
	fmt.Fprintln(w, "  crc-gamefile slug <label> [<label> ...]")
	fmt.Fprintln(w, "  crc-gamefile doc-cid <file>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Notes:")
	fmt.Fprintln(w, "  - generate reads GAME_NAME, GAME_ID, FIRST_LETTER, CATEGORIES, CHALLENGES,")
	fmt.Fprintln(w, "    CHAR_ENABLED, CHAR_LABEL, SUBMITTER, CREDIT_REQUESTED, DETAILS_IN and OUT_FILE;")
	fmt.Fprintln(w, "    flags override the matching variable")
	fmt.Fprintln(w, "  - missing name, id, categories or output path exit 1 before anything is written")
	fmt.Fprintln(w, "  - --archive keeps every generated revision under <dir>/<game_id>/<cid>.md")
	fmt.Fprintln(w, "  - check exits 1 if any file violates the canonical key rules (strict mode)")
}

func cmdGenerate(args []string, env envinput.Lookup, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.SetOutput(errOut)

	cfg := envinput.FromEnv(env)
	var details string
	var archiveDir string
	var verbose bool
	fs.StringVar(&cfg.OutFile, "out", cfg.OutFile, "Output file (default $OUT_FILE)")
	fs.StringVar(&cfg.Input.Name, "name", cfg.Input.Name, "Game display name (default $GAME_NAME)")
	fs.StringVar(&cfg.Input.ID, "id", cfg.Input.ID, "Game id (default $GAME_ID, else derived from the name)")
	fs.StringVar(&cfg.Input.Categories, "categories", cfg.Input.Categories, "Newline-separated categories (default $CATEGORIES)")
	fs.StringVar(&cfg.Input.Challenges, "challenges", cfg.Input.Challenges, "Challenge list (default $CHALLENGES)")
	fs.StringVar(&details, "details", "", "Details JSON (default $DETAILS_IN)")
	fs.StringVar(&archiveDir, "archive", "", "Also store the output in this revision archive")
	fs.BoolVar(&verbose, "v", false, "Log parsed submission details")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(errOut, "usage: crc-gamefile generate [flags]")
		return 2
	}
	cfg.OutFile = strings.TrimSpace(cfg.OutFile)
	if details != "" {
		cfg.SetDetails(details)
	}

	logger := newLogger(errOut, verbose)
	defer func() { _ = logger.Sync() }()

	schema := gamefile.CurrentSchema()
	doc, err := gamefile.Build(cfg.Input, schema)
	if err != nil {
		return reportError(errOut, err)
	}
	if err := cfg.Validate(); err != nil {
		return reportError(errOut, err)
	}
	logDocument(logger, doc, cfg.DetailsRaw)

	rendered, err := gamefile.Render(doc, schema)
	if err != nil {
		return reportError(errOut, err)
	}
	if err := storage.WriteFile(cfg.OutFile, rendered); err != nil {
		fmt.Fprintf(errOut, "write %s: %v\n", cfg.OutFile, err)
		return 1
	}
	id := cidutil.String(rendered)
	logger.Info("generated game file",
		zap.String("path", cfg.OutFile),
		zap.String("game_id", doc.GameID),
		zap.String("cid", id),
		zap.Int("bytes", len(rendered)))

	if archiveDir != "" {
		archive, err := localfs.New(archiveDir)
		if err != nil {
			fmt.Fprintf(errOut, "archive: %v\n", err)
			return 1
		}
		if _, err := archive.Put(doc.GameID, rendered); err != nil {
			fmt.Fprintf(errOut, "archive %s: %v\n", doc.GameID, err)
			return 1
		}
		logger.Debug("archived revision", zap.String("dir", archiveDir), zap.String("cid", id))
	}

	characters := 0
	if doc.CharacterColumn.Enabled {
		characters = len(doc.Characters)
	}
	fmt.Fprintf(out, "✓ Generated %s\n", cfg.OutFile)
	fmt.Fprintf(out, "  - cid: %s\n", id)
	fmt.Fprintf(out, "  - categories: %d\n", len(doc.Categories))
	fmt.Fprintf(out, "  - standard challenges: %d\n", len(doc.Challenges))
	fmt.Fprintf(out, "  - community challenges: %d\n", len(doc.CommunityChallenges))
	fmt.Fprintf(out, "  - restrictions: %d\n", len(doc.Restrictions))
	fmt.Fprintf(out, "  - glitch categories: %d\n", len(doc.Glitches))
	fmt.Fprintf(out, "  - platforms: %d\n", len(doc.Platforms))
	fmt.Fprintf(out, "  - characters: %d\n", characters)
	return 0
}

func cmdCheck(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(errOut)
	modeFlag := fs.String("mode", compliance.Strict.String(), "strict fails on violations; permissive only reports them")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(errOut, "usage: crc-gamefile check [--mode strict|permissive] <file> [<file> ...]")
		return 2
	}
	mode, err := compliance.ParseMode(*modeFlag)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 2
	}

	schema := gamefile.CurrentSchema()
	failed := false
	for _, path := range fs.Args() {
		b, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(errOut, "read %s: %v\n", filepath.Base(path), err)
			failed = true
			continue
		}
		rec, err := gamefile.Extract(b, schema)
		if err != nil {
			fmt.Fprintf(errOut, "%s: %s\n", path, describe(err))
			failed = true
			continue
		}
		violations := gamefile.Check(rec, schema)
		for _, v := range violations {
			fmt.Fprintf(errOut, "%s: %s\n", path, describe(v))
		}
		if mode.Fails(len(violations)) {
			failed = true
			continue
		}
		if len(violations) > 0 {
			_, _ = fmt.Fprintf(out, "WARN %s (%d violations)\n", path, len(violations))
			continue
		}
		_, _ = fmt.Fprintf(out, "OK %s\n", path)
	}
	if failed {
		return 1
	}
	return 0
}

func cmdSlug(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("slug", flag.ContinueOnError)
	fs.SetOutput(errOut)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(errOut, "usage: crc-gamefile slug <label> [<label> ...]")
		return 2
	}
	for _, label := range fs.Args() {
		_, _ = fmt.Fprintf(out, "%s\t%s\n", slug.Slugify(label), label)
	}
	return 0
}

func cmdDocCID(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("doc-cid", flag.ContinueOnError)
	fs.SetOutput(errOut)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: crc-gamefile doc-cid <file>")
		return 2
	}
	path := fs.Arg(0)
	b, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(errOut, "read %s: %v\n", filepath.Base(path), err)
		return 1
	}
	_, _ = fmt.Fprintln(out, cidutil.String(b))
	return 0
}

func reportError(errOut io.Writer, err error) int {
	fmt.Fprintf(errOut, "ERROR: %s\n", describe(err))
	return 1
}

func describe(err error) string {
	var e *gamefile.Error
	if errors.As(err, &e) && e.RuleID != "" {
		return fmt.Sprintf("%s [%s]", err.Error(), e.RuleID)
	}
	return err.Error()
}
