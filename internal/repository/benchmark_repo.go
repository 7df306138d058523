package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"irindex/internal/model"
)

// referenceTableID is the fixed id of the single live reference table document
const referenceTableID = "current"

// BenchmarkRepo handles MongoDB operations for the benchmark reference table
type BenchmarkRepo interface {
	Get(ctx context.Context) (*model.ReferenceTable, error)
	Replace(ctx context.Context, table *model.ReferenceTable) error
}

type benchmarkRepo struct {
	collection *mongo.Collection
}

// NewBenchmarkRepo creates a new benchmark repository
func NewBenchmarkRepo(db *mongo.Database) BenchmarkRepo {
	return &benchmarkRepo{
		collection: db.Collection("benchmarks"),
	}
}

func (r *benchmarkRepo) Get(ctx context.Context) (*model.ReferenceTable, error) {
	var table model.ReferenceTable
	err := r.collection.FindOne(ctx, bson.M{"_id": referenceTableID}).Decode(&table)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &table, nil
}

func (r *benchmarkRepo) Replace(ctx context.Context, table *model.ReferenceTable) error {
	table.ID = referenceTableID
	table.UpdatedAt = time.Now()

	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": referenceTableID}, table, opts)
	return err
}
