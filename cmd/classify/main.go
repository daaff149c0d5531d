// Command classify runs the sentiment pipeline over text from flags or stdin.
//
//	classify -text "Great product"
//	cat reviews.txt | classify -translate
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/AKC07-Dev/English-Text-Sentiment-Analysis-stage-2/internal/classifier"
	"github.com/AKC07-Dev/English-Text-Sentiment-Analysis-stage-2/internal/config"
	"github.com/AKC07-Dev/English-Text-Sentiment-Analysis-stage-2/internal/logger"
	"github.com/AKC07-Dev/English-Text-Sentiment-Analysis-stage-2/internal/service"
	"github.com/AKC07-Dev/English-Text-Sentiment-Analysis-stage-2/internal/storage"
	"github.com/AKC07-Dev/English-Text-Sentiment-Analysis-stage-2/internal/textproc"
	"github.com/AKC07-Dev/English-Text-Sentiment-Analysis-stage-2/internal/translation"
)

func main() {
	appLogger := logger.New(&logger.Config{
		Level:       "warn",
		Format:      "text",
		Output:      os.Stderr,
		ServiceName: "review-sentiment-classify",
	})
	logger.SetDefaultLogger(appLogger)

	text := flag.String("text", "", "Review text to classify; reads one review per line from stdin when empty")
	translate := flag.Bool("translate", false, "Translate non-English text before classifying")
	configPath := flag.String("config", "", "Path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to load config")
	}

	ctx := context.Background()

	stopwords, err := textproc.LoadStopwords(cfg.Text.StopwordsPath)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to load stopwords")
	}

	artifactStore, err := storage.NewStorage(cfg.Model.Storage.StorageConfig())
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to initialize artifact storage")
	}
	clf, err := classifier.Load(ctx, artifactStore, cfg.Model.VectorizerKey, cfg.Model.ModelKey)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to load sentiment model")
	}

	var gw translation.Gateway = translation.NoopGateway{}
	if *translate {
		gw = translation.NewGoogleGateway(translation.GoogleConfig{
			BaseURL: cfg.Translation.BaseURL,
			Timeout: cfg.Translation.Timeout,
		}, nil)
	}

	// No store: this command never saves.
	svc := service.NewReviewService(textproc.NewNormalizer(stopwords), clf, gw, nil, nil, appLogger)

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	classify := func(line string) {
		p, err := svc.Predict(ctx, line)
		if err != nil {
			appLogger.WithError(err).WithField("text", line).Error("Classification failed")
			return
		}
		fmt.Fprintf(out, "%d\t%s\t%s\t%s\n", p.Label, p.Tag, p.Message, line)
	}

	if *text != "" {
		classify(*text)
		return
	}

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		classify(line)
	}
	if err := scanner.Err(); err != nil {
		appLogger.WithError(err).Fatal("Failed to read stdin")
	}
}
