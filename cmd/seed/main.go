package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"irindex/internal/benchmark"
	"irindex/internal/config"
	"irindex/internal/repository"
)

// Seeds the benchmark reference table into MongoDB. Run once per research
// report import; the server falls back to the compiled-in snapshot until
// this has run.
func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(cfg.MongoDB)
	repo := repository.NewBenchmarkRepo(db)

	table := benchmark.DefaultTable()
	if err := repo.Replace(ctx, table); err != nil {
		log.Fatalf("Failed to seed benchmark table: %v", err)
	}

	fmt.Printf("Seeded benchmark table: overall %.1f, %d industries, %d size brackets\n",
		table.Overall, len(table.Industries), len(table.Sizes))
}
