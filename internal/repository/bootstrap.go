package repository

import (
	"context"
	"fmt"

	"github.com/go-kivik/kivik/v4"
)

// EnsureDatabase creates the database on first start.
func EnsureDatabase(ctx context.Context, client *kivik.Client, dbName string) error {
	exists, err := client.DBExists(ctx, dbName)
	if err != nil {
		return fmt.Errorf("failed to check database existence: %w", err)
	}

	if !exists {
		if err := client.CreateDB(ctx, dbName); err != nil {
			return fmt.Errorf("failed to create database: %w", err)
		}
	}

	return nil
}

// EnsureIndexes creates the Mango indexes backing the email lookup and the
// per-owner note listing.
func EnsureIndexes(ctx context.Context, client *kivik.Client, dbName string) error {
	db := client.DB(dbName)

	indexes := []struct {
		name   string
		fields []string
	}{
		{"users-by-email", []string{"doc_type", "email"}},
		{"notes-by-owner", []string{"doc_type", "ownerId", "createdAt"}},
	}

	for _, idx := range indexes {
		index := map[string]interface{}{
			"fields": idx.fields,
		}
		if err := db.CreateIndex(ctx, "", idx.name, index); err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}
