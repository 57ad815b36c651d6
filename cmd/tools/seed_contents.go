// Seeds content rows into the bot's database, one body per line:
//
//	go run ./cmd/tools -db ./data -category free -file contents.txt
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"reline-bot/domain"
	"reline-bot/repositories"
)

func main() {
	dbPath := flag.String("db", "", "badger database directory")
	category := flag.String("category", string(domain.CategoryFree), "content category (contact|free|text)")
	file := flag.String("file", "", "text file with one content body per line")
	flag.Parse()

	if err := seed(*dbPath, domain.ContentCategory(*category), *file); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

func seed(dbPath string, category domain.ContentCategory, file string) error {
	if dbPath == "" || file == "" {
		return fmt.Errorf("both -db and -file are required")
	}

	db, err := badger.Open(badger.DefaultOptions(dbPath).WithLoggingLevel(badger.ERROR))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer db.Close()

	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	repository := repositories.NewContentRepository(db, slog.Default())
	ctx := context.Background()
	seeded := 0

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		body := strings.TrimSpace(scanner.Text())
		if body == "" {
			continue
		}
		content := domain.Content{
			ID:        uuid.NewString(),
			Category:  category,
			Body:      body,
			CreatedAt: time.Now().UTC(),
		}
		if err := repository.Put(ctx, content); err != nil {
			return fmt.Errorf("seed %q: %w", body, err)
		}
		seeded++
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	fmt.Printf("Seeded %d contents into category %s\n", seeded, category)
	return nil
}
