// cmd/export/main.go
// Dumps one tab of the configured backing store as canonical CSV.
//
// Usage:
//
//	go run ./cmd/export -tab Jogadores -out convocacoes.csv
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"

	"github.com/rferraz1/interfacefinalvasco/backend"
	"github.com/rferraz1/interfacefinalvasco/config"
	"github.com/rferraz1/interfacefinalvasco/roster"
)

func main() {
	tab := flag.String("tab", "", "tab name (required)")
	out := flag.String("out", "", "output file (default stdout)")
	flag.Parse()

	if *tab == "" {
		log.Fatal("-tab is required")
	}

	ctx := context.Background()
	cfg := config.Load()

	st, closeStore, err := backend.Open(ctx, cfg)
	if err != nil {
		log.Fatal("open store:", err)
	}
	defer closeStore()

	var schema roster.Schema
	switch *tab {
	case cfg.PlayersTab:
		schema = roster.Players(cfg.DefaultCategory)
	case cfg.TitlesTab:
		schema = roster.Titles()
	case cfg.MarketTab:
		schema = roster.Market()
	default:
		log.Fatalf("unknown tab %q", *tab)
	}

	rows, err := st.Read(ctx, *tab)
	if err != nil {
		log.Fatalf("read %s: %v", *tab, err)
	}

	var w io.Writer = os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatal("create output:", err)
		}
		defer f.Close()
		w = f
	}

	if err := roster.WriteCSV(w, schema, schema.Normalize(rows)); err != nil {
		log.Fatal("write csv:", err)
	}
}
