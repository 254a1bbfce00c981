package main

import (
	"claty/internal/app"
	"claty/internal/config"
	"context"
	"encoding/json"
	"flag"
	"log"
	"log/slog"
	"os"
	"strings"
)

func main() {
	persona := flag.String("persona", "default", "answer persona: default, child, scientist, alien, conspiracy, comedian, journalist")
	trends := flag.Bool("trends", false, "print trend suggestions instead of answering a query")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	query := strings.Join(flag.Args(), " ")
	if query == "" && !*trends {
		log.Fatalf("usage: insight [-persona name] <query> | insight -trends")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	ctx := context.Background()

	a, err := app.New(ctx, cfg)
	if err != nil {
		log.Fatalf("error initializing app: %v", err)
	}
	defer a.Close()

	var out any
	if *trends {
		out = a.Service.Trends(ctx)
	} else {
		result, err := a.Service.Search(ctx, query, *persona)
		if err != nil {
			log.Fatalf("error generating insight: %v", err)
		}
		out = result
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatalf("error writing result: %v", err)
	}
}
