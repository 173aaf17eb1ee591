// persistence/postgresql.go
package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
)

// PostgreSQL is the plain database/sql word store, for deployments that
// would rather not carry the ORM.
type PostgreSQL struct {
	db *sql.DB
}

func NewPostgreSQL(host string, port int, user, password, dbname string) (*PostgreSQL, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbname)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := initTables(db); err != nil {
		return nil, err
	}

	return &PostgreSQL{db: db}, nil
}

func initTables(db *sql.DB) error {
	_, err := db.Exec(`
        CREATE TABLE IF NOT EXISTS words (
            id SERIAL PRIMARY KEY,
            language TEXT NOT NULL,
            word TEXT NOT NULL,
            created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
            UNIQUE (language, word)
        )`)
	return err
}

func (p *PostgreSQL) LoadWords(language string) ([]string, error) {
	rows, err := p.db.Query(`SELECT word FROM words WHERE language = $1 ORDER BY word`, language)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, err
		}
		result = append(result, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(result) == 0 {
		return nil, ErrNoWords
	}
	return result, nil
}

func (p *PostgreSQL) AddWords(language string, words []string) error {
	for _, w := range words {
		_, err := p.db.Exec(
			`INSERT INTO words (language, word) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			language, w)
		if err != nil {
			return err
		}
	}
	return nil
}

func (p *PostgreSQL) Close() error {
	return p.db.Close()
}
