// Package memstore keeps clients and accounts in an in-process go-memdb
// database. It backs the development API when no Postgres is configured.
package memstore

import (
	"fmt"
	"sync/atomic"

	"github.com/hashicorp/go-memdb"
)

const (
	tableClients  = "clients"
	tableAccounts = "accounts"
)

// Store owns the memdb instance shared by the repositories.
type Store struct {
	db         *memdb.MemDB
	clientSeq  atomic.Int64
	accountSeq atomic.Int64
}

func schema() *memdb.DBSchema {
	return &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			tableClients: {
				Name: tableClients,
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:    "id",
						Unique:  true,
						Indexer: &memdb.IntFieldIndex{Field: "ID"},
					},
				},
			},
			tableAccounts: {
				Name: tableAccounts,
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:    "id",
						Unique:  true,
						Indexer: &memdb.IntFieldIndex{Field: "ID"},
					},
					"client_id": {
						Name:    "client_id",
						Indexer: &memdb.IntFieldIndex{Field: "ClientID"},
					},
					"client_type": {
						Name:   "client_type",
						Unique: true,
						Indexer: &memdb.CompoundIndex{
							Indexes: []memdb.Indexer{
								&memdb.IntFieldIndex{Field: "ClientID"},
								&memdb.StringFieldIndex{Field: "Type"},
							},
						},
					},
				},
			},
		},
	}
}

// New creates an empty store.
func New() (*Store, error) {
	db, err := memdb.NewMemDB(schema())
	if err != nil {
		return nil, fmt.Errorf("failed to create memdb: %w", err)
	}
	return &Store{db: db}, nil
}
