// Command analyze runs the form discovery pipeline once over the given bid
// PDFs and prints the analysis record as JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"seosik/internal/classifier/openai"
	"seosik/internal/config"
	"seosik/internal/pdf"
	"seosik/internal/port"
	"seosik/internal/resolver"
	"seosik/internal/service"
	s3storage "seosik/internal/storage/s3"
)

func main() {
	folder := flag.String("folder", "", "bid folder name under the shared root; pins the remote destination")
	localOnly := flag.Bool("local-only", false, "skip remote storage even when configured")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: analyze [-folder NAME] [-local-only] FILE.pdf [FILE.pdf ...]")
		os.Exit(2)
	}

	if err := run(*folder, *localOnly, flag.Args()); err != nil {
		log.Fatal(err)
	}
}

func run(folder string, localOnly bool, paths []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	var remote port.RemoteStorage
	if !localOnly {
		remote, err = s3storage.NewS3Client(&cfg.Storage)
		if err != nil {
			log.Printf("remote storage unavailable, continuing locally: %v", err)
		}
	}

	svc := service.NewAnalyzeService(
		pdf.NewTextExtractor(),
		pdf.NewPageSlicer(),
		openai.NewClassifier(&cfg.Classifier),
		resolver.New(&cfg.Resolver, cfg.Storage.SharedRoot),
		service.NewResultPersister(remote, cfg.Storage.SharedRoot),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := svc.AnalyzeForms(ctx, service.AnalyzeInput{
		Paths:      paths,
		FolderHint: folder,
		Observer: port.FuncObserver{
			OnLog: func(msg string) { log.Print(msg) },
		},
	})
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
