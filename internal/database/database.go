// Package database contains the logic for establishing connections to
// the MySQL database and executing built statements against it.
//
// It handles:
//   - building a DSN from config
//   - opening the database/sql handle with pool tuning applied
//   - running SELECTs into generic row maps and DML with result metadata
//   - statement logging, including slow statement detection
package database

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog"

	"github.com/deppfellow/campus-registry/internal/config"
)

// Database wraps the shared database/sql handle and a logger. The
// handle maintains its own connection pool; one Database is shared by
// the whole application.
type Database struct {
	DB  *sql.DB
	log *zerolog.Logger

	slowQueryThreshold time.Duration
	logStatements      bool
}

// DatabasePingTimeout defines the number of seconds to wait for a ping
// before considering the database unreachable.
const DatabasePingTimeout = 10

// New opens the MySQL handle described by cfg, applies pool tuning,
// and pings it so startup fails fast when the database is down.
func New(cfg *config.Config, logger *zerolog.Logger) (*Database, error) {
	mysqlConfig := mysql.NewConfig()
	mysqlConfig.User = cfg.Database.User
	mysqlConfig.Passwd = cfg.Database.Password
	mysqlConfig.Net = "tcp"
	mysqlConfig.Addr = net.JoinHostPort(cfg.Database.Host, strconv.Itoa(cfg.Database.Port))
	mysqlConfig.DBName = cfg.Database.Name
	// parseTime scans DATE/DATETIME columns into time.Time values so
	// they serialize as timestamps instead of raw byte strings.
	mysqlConfig.ParseTime = true

	db, err := sql.Open("mysql", mysqlConfig.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database handle: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)
	db.SetConnMaxIdleTime(time.Duration(cfg.Database.ConnMaxIdleTime) * time.Second)

	database := &Database{
		DB:                 db,
		log:                logger,
		slowQueryThreshold: cfg.Logging.SlowQueryThreshold,
		// Per-statement debug logging is noisy, so it stays local-only.
		logStatements: cfg.IsLocal(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), DatabasePingTimeout*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info().Msg("connected to the database")

	return database, nil
}

// Close closes the database handle and its connection pool.
func (db *Database) Close() error {
	db.log.Info().Msg("closing database connection pool")
	return db.DB.Close()
}
