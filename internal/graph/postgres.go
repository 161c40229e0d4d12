package graph

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresNodeStore loads graph node coordinates from PostgreSQL. The graph
// import pipeline writes one row per node; this store only ever reads.
type PostgresNodeStore struct {
	pool *pgxpool.Pool
}

// NewPostgresNodeStore creates a PostgresNodeStore backed by the given pool.
func NewPostgresNodeStore(pool *pgxpool.Pool) *PostgresNodeStore {
	return &PostgresNodeStore{pool: pool}
}

// CurrentVersion returns the most recently imported graph version.
func (s *PostgresNodeStore) CurrentVersion(ctx context.Context) (string, error) {
	query := `
		SELECT version
		FROM graph_versions
		WHERE imported_at = (SELECT MAX(imported_at) FROM graph_versions)`

	var version string
	if err := s.pool.QueryRow(ctx, query).Scan(&version); err != nil {
		return "", fmt.Errorf("query current graph version: %w", err)
	}
	return version, nil
}

// LoadNodes reads all node coordinates of the given graph version, ordered
// by node index, into an in-memory store.
func (s *PostgresNodeStore) LoadNodes(ctx context.Context, version string) (*MemoryNodeStore, error) {
	query := `
		SELECT lat, lon
		FROM graph_nodes
		WHERE graph_version = $1
		ORDER BY node_index`

	rows, err := s.pool.Query(ctx, query, version)
	if err != nil {
		return nil, fmt.Errorf("query graph nodes: %w", err)
	}
	defer rows.Close()

	var nodes []Node
	for rows.Next() {
		var n Node
		if err := rows.Scan(&n.Lat, &n.Lon); err != nil {
			return nil, fmt.Errorf("scan graph node: %w", err)
		}
		nodes = append(nodes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate graph nodes: %w", err)
	}

	return NewMemoryNodeStore(nodes), nil
}
