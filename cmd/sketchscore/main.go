package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/katalvlaran/sketchscore/canvas"
	"github.com/katalvlaran/sketchscore/evaluate"
	"github.com/katalvlaran/sketchscore/observe"
	"github.com/katalvlaran/sketchscore/report"
	"github.com/katalvlaran/sketchscore/store"
)

const version = "0.1.0"

func main() {
	flag.Usage = printUsage
	flag.Parse()

	if flag.NArg() < 1 {
		printUsage()
		os.Exit(1)
	}

	command := flag.Arg(0)
	args := flag.Args()[1:]

	switch command {
	case "eval":
		handleEval(args)
	case "replay":
		handleReplay(args)
	case "version":
		fmt.Printf("sketchscore version %s\n", version)
	case "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`sketchscore - drawing accuracy scorer

Usage: sketchscore <command> [options]

Commands:
  eval       Score sheet images (reference left, drawing right)
  replay     Replay a sheet's observation stroke by stroke
  version    Show sketchscore version
  help       Show this help message

Sheet layout:
  Each input image must be at least 1010x500: the reference drawing in
  columns 0-499, the observed drawing in columns 510-1009.

Examples:
  # Score a white-background sheet
  sketchscore eval sheet.png

  # Score several sheets in sequence
  sketchscore eval day1.png day2.png day3.png

  # Score a transparent-canvas export, emit JSON and an HTML heatmap
  sketchscore eval --transparent --json --html out.html sheet.png

  # Reuse a cached reference fill across runs
  sketchscore eval --cache scores.db --key lighthouse-v1 sheet.png

  # Watch the score converge as strokes stream in
  sketchscore replay --batch 200 sheet.png`)
}

// evalConfig carries the eval subcommand's flag values.
type evalConfig struct {
	transparent bool
	asJSON      bool
	htmlPath    string
	cachePath   string
	cacheKey    string
}

// handleEval scores one or more sheets in sequence.
func handleEval(args []string) {
	fs := flag.NewFlagSet("eval", flag.ExitOnError)
	transparent := fs.Bool("transparent", false, "Read the alpha channel instead of luma")
	asJSON := fs.Bool("json", false, "Emit the results as JSON instead of text")
	htmlPath := fs.String("html", "", "Write an HTML heatmap of the error grid to this path")
	cachePath := fs.String("cache", "", "SQLite cache for reference states and result history")
	cacheKey := fs.String("key", "", "Cache key identifying the reference drawing")
	_ = fs.Parse(args)

	if fs.NArg() < 1 {
		fatalf("eval: expected at least one sheet image")
	}
	cfg := evalConfig{
		transparent: *transparent,
		asJSON:      *asJSON,
		htmlPath:    *htmlPath,
		cachePath:   *cachePath,
		cacheKey:    *cacheKey,
	}
	if err := runEval(fs.Args(), cfg, os.Stdout); err != nil {
		fatalf("eval: %v", err)
	}
}

// runEval scores each sheet in order, stopping at the first failure.
// The cache key and HTML report both identify a single reference, so those
// flags are limited to single-sheet runs.
func runEval(paths []string, cfg evalConfig, out io.Writer) error {
	if len(paths) > 1 && cfg.cacheKey != "" {
		return errors.New("--key identifies one reference; pass a single sheet")
	}
	if len(paths) > 1 && cfg.htmlPath != "" {
		return errors.New("--html writes one report; pass a single sheet")
	}

	for i, path := range paths {
		m, err := evalSheet(path, cfg)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if cfg.asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			if err := enc.Encode(m); err != nil {
				return err
			}
			continue
		}
		if len(paths) > 1 {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "== %s\n", path)
		}
		fmt.Fprintln(out, m.Summary())
	}
	return nil
}

// evalSheet loads, scores, and optionally caches and reports one sheet.
func evalSheet(path string, cfg evalConfig) (evaluate.ErrorMetrics, error) {
	sheet, err := canvas.Load(path, cfg.transparent)
	if err != nil {
		return evaluate.ErrorMetrics{}, err
	}

	started := time.Now()
	sess, db, err := openSession(sheet, cfg)
	if err != nil {
		return evaluate.ErrorMetrics{}, err
	}
	if db != nil {
		defer db.Close()
	}

	if _, err := sess.AddObservation(sheet.Observation().Pixels()); err != nil {
		return evaluate.ErrorMetrics{}, err
	}
	m, err := sess.FullResult()
	if err != nil {
		return evaluate.ErrorMetrics{}, err
	}
	elapsed := time.Since(started)

	if db != nil {
		if _, err := db.SaveResult(cfg.cacheKey, m, elapsed.Milliseconds()); err != nil {
			return evaluate.ErrorMetrics{}, err
		}
	}
	if cfg.htmlPath != "" {
		if err := writeHeatmap(cfg.htmlPath, m); err != nil {
			return evaluate.ErrorMetrics{}, err
		}
	}
	return m, nil
}

// handleReplay feeds the observation in batches, printing the running score.
// Strokes are synthesized by shuffling the drawn pixels; real clients feed
// genuine stroke events instead.
func handleReplay(args []string) {
	fs := flag.NewFlagSet("replay", flag.ExitOnError)
	transparent := fs.Bool("transparent", false, "Read the alpha channel instead of luma")
	batch := fs.Int("batch", 100, "Pixels per synthetic stroke")
	seed := fs.Int64("seed", 1, "Shuffle seed for the synthetic stroke order")
	_ = fs.Parse(args)

	if fs.NArg() != 1 {
		fatalf("replay: expected exactly one sheet image, got %d", fs.NArg())
	}
	if *batch <= 0 {
		fatalf("replay: --batch must be positive")
	}
	sheet, err := canvas.Load(fs.Arg(0), *transparent)
	if err != nil {
		fatalf("replay: %v", err)
	}

	sess, err := evaluate.NewSession(sheet.Reference().Pixels(), evaluate.DefaultOptions())
	if err != nil {
		fatalf("replay: %v", err)
	}

	drawn := sheet.Observation().Pixels()
	rand.New(rand.NewSource(*seed)).Shuffle(len(drawn), func(i, j int) {
		drawn[i], drawn[j] = drawn[j], drawn[i]
	})

	tracker := observe.NewTracker(sess.ReferencePixelCount())
	for start := 0; start < len(drawn); start += *batch {
		end := start + *batch
		if end > len(drawn) {
			end = len(drawn)
		}
		stroke := drawn[start:end]
		score, err := sess.AddObservation(stroke)
		if err != nil {
			fatalf("replay: %v", err)
		}
		tracker.RecordStroke(len(stroke))
		fmt.Printf("stroke %3d  pixels %6d  top-%d error %6.2f\n",
			tracker.Stats().Count, sess.ObservationPixelCount(), sess.Options().TopK, score)
	}
	tracker.Finish()

	m, err := sess.FullResult()
	if err != nil {
		fatalf("replay: %v", err)
	}
	stats := tracker.Stats()
	fmt.Println()
	fmt.Println(m.Summary())
	fmt.Printf("Strokes: %d (mean %.0f px)\nDuration: %s\nSpeed: %.0f px/s\n",
		stats.Count, stats.MeanSize, tracker.Duration().Round(time.Millisecond), tracker.Speed())
}

// openSession builds the scoring session, going through the cache when one
// is configured: a hit skips the reference flood fill, a miss fills and
// stores the state for next time.
func openSession(sheet *canvas.Sheet, cfg evalConfig) (*evaluate.Session, *store.Store, error) {
	opts := evaluate.DefaultOptions()
	opts.TransparentBG = cfg.transparent

	if cfg.cachePath == "" {
		sess, err := evaluate.NewSession(sheet.Reference().Pixels(), opts)
		return sess, nil, err
	}
	if cfg.cacheKey == "" {
		return nil, nil, errors.New("--cache requires --key")
	}
	db, err := store.Open(cfg.cachePath)
	if err != nil {
		return nil, nil, err
	}

	state, ok, err := db.LoadState(cfg.cacheKey)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	if ok {
		sess, err := evaluate.Restore(state, opts)
		if err == nil {
			return sess, db, nil
		}
		// Stale or mismatched cache entry; fall through to a fresh fill.
		fmt.Fprintf(os.Stderr, "eval: cached state unusable (%v), rebuilding\n", err)
	}

	sess, err := evaluate.NewSession(sheet.Reference().Pixels(), opts)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	if _, err := db.SaveState(cfg.cacheKey, sess.ExportState()); err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	return sess, db, nil
}

// writeHeatmap renders the error-grid heatmap to an HTML file.
func writeHeatmap(path string, m evaluate.ErrorMetrics) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return report.RenderGridHeatmap(f, m, "drawing error grid")
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
