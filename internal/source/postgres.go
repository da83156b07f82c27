package source

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/jackc/pgx/v5"
)

// Querier is the part of a pgx pool or connection a Postgres source needs.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Postgres reads a document stored as a row of a documents table, with columns
// name (text, unique) and content (bytea or text).
type Postgres struct {
	db    Querier
	table string
	name  string
}

func NewPostgres(db Querier, table, name string) *Postgres {
	if table == "" {
		table = "documents"
	}
	return &Postgres{db: db, table: table, name: name}
}

func (p *Postgres) ID() string { return fmt.Sprintf("pg:%s/%s", p.table, p.name) }

func (p *Postgres) Open(ctx context.Context) (io.ReadCloser, error) {
	var content []byte
	err := p.db.QueryRow(ctx,
		fmt.Sprintf(`SELECT content FROM %s WHERE name = $1`, pgx.Identifier{p.table}.Sanitize()),
		p.name,
	).Scan(&content)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(content)), nil
}
