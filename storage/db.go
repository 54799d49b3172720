package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq"

	"pipetrak/config"
)

// InitDB opens the postgres pool used by the raw-SQL component reader.
func InitDB(cfg config.DBConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Report reads are bursty; keep a small pool that drains when idle.
	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database %s:%s/%s: %w", cfg.Host, cfg.Port, cfg.Name, err)
	}

	log.Printf("[db] connected to %s:%s/%s", cfg.Host, cfg.Port, cfg.Name)
	return db, nil
}
