package mysql

import (
	"fmt"
	"sync"
	"time"

	"ride-service/src/pkg/log"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/viper"
)

// DBInterface hands out the shared connection pool. Callers acquire it per
// unit of work and never hold it beyond their own statements.
type DBInterface interface {
	GetDB() (*sqlx.DB, error)
	Close() error
}

type Database struct {
	db  *sqlx.DB
	cfg *viper.Viper
	log log.Log
	mu  sync.Mutex
}

// InitConnection opens the process-wide pool and verifies it with a ping.
func InitConnection(v *viper.Viper, logger log.Log) (DBInterface, error) {
	d := &Database{
		cfg: v,
		log: logger,
	}
	if err := d.connect(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Database) connect() error {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true",
		d.cfg.GetString("database.user"),
		d.cfg.GetString("database.password"),
		d.cfg.GetString("database.host"),
		d.cfg.GetInt("database.port"),
		d.cfg.GetString("database.name"),
	)

	db, err := sqlx.Connect("mysql", dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	maxOpen := d.cfg.GetInt("database.pool.max_open")
	if maxOpen == 0 {
		maxOpen = 20
	}
	maxIdle := d.cfg.GetInt("database.pool.max_idle")
	if maxIdle == 0 {
		maxIdle = 5
	}
	lifetime := d.cfg.GetInt("database.pool.conn_lifetime_seconds")
	if lifetime == 0 {
		lifetime = 300
	}

	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxIdle)
	db.SetConnMaxLifetime(time.Duration(lifetime) * time.Second)

	d.db = db
	return nil
}

// GetDB returns the pool, re-establishing it if the ping fails.
func (d *Database) GetDB() (*sqlx.DB, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.db == nil {
		if err := d.connect(); err != nil {
			return nil, err
		}
		return d.db, nil
	}

	if err := d.db.Ping(); err != nil {
		d.log.Error("mysql", fmt.Sprintf("ping failed, reconnecting: %v", err), "GetDB", "")
		if err := d.connect(); err != nil {
			return nil, err
		}
	}
	return d.db, nil
}

func (d *Database) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.db == nil {
		return nil
	}
	return d.db.Close()
}
