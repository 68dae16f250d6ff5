// Command wordofday prints the word of the day and when it next changes.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"wordofday/internal/config"
	"wordofday/internal/domain"
	"wordofday/internal/render"
	"wordofday/internal/repository"
	"wordofday/internal/service"
	"wordofday/internal/wordlist"

	"go.uber.org/zap"
)

func main() {
	date := flag.String("date", "", "day to show, YYYY-MM-DD in the configured timezone (default: now)")
	surface := flag.String("surface", "", "render for a passive surface instead of the interactive view")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(os.Stdout, *date, *surface, logger); err != nil {
		logger.Fatal("wordofday failed", zap.Error(err))
	}
}

func run(out io.Writer, date, surfaceName string, logger *zap.Logger) error {
	cfg, err := config.LoadWords()
	if err != nil {
		return err
	}

	location, err := cfg.Location()
	if err != nil {
		return err
	}

	var repo repository.WordRepository = wordlist.NewEmbeddedRepo()
	switch cfg.WordsSource {
	case config.SourceFile:
		if repo, err = wordlist.FileRepo(cfg.WordsFile); err != nil {
			return err
		}
	case config.SourcePostgres:
		return fmt.Errorf("WORDS_SOURCE=%s is only supported by the bot", cfg.WordsSource)
	}

	words, err := service.NewWordService(repo, logger).LoadList()
	if err != nil {
		return err
	}

	scheduler, err := service.NewScheduler(words, location, logger)
	if err != nil {
		return err
	}

	now := time.Now()
	if date != "" {
		if now, err = time.ParseInLocation("2006-01-02", date, location); err != nil {
			return fmt.Errorf("invalid -date: %w", err)
		}
	}

	timeline, err := scheduler.Timeline(now)
	if err != nil {
		return err
	}

	text := render.Interactive(timeline.Entry, scheduler.Len())
	if surfaceName != "" {
		surface, err := domain.ParseSurface(surfaceName)
		if err != nil {
			return err
		}
		text = render.Text(surface, timeline.Entry)
	}

	_, err = fmt.Fprintf(out, "%s\n\nnext refresh: %s\n", text, timeline.Policy.After.Format(time.RFC3339))
	return err
}
