package database

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/XSAM/otelsql"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/sirupsen/logrus"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"

	"medvault/internal/config"
)

var (
	openDB = sql.Open

	// retryDelay is multiplied by the attempt number between failed pings.
	retryDelay = time.Second

	// otelsql hands out a fresh driver name per Register call, so the
	// traced pgx driver is registered once per process.
	tracedDriver = sync.OnceValues(func() (string, error) {
		return otelsql.Register("pgx",
			otelsql.WithAttributes(semconv.DBSystemPostgreSQL),
			otelsql.WithSQLCommenter(true),
		)
	})
)

// DSN renders the records store settings as a postgres:// URL, e.g.
// postgres://clinic:secret@db:5432/medvault?application_name=medvault&connect_timeout=5&sslmode=disable
func DSN(c config.DatabaseConfig) (string, error) {
	var missing []string
	for _, f := range []struct{ env, val string }{
		{"DB_HOST", c.Host},
		{"DB_PORT", c.Port},
		{"DB_USER", c.User},
		{"DB_NAME", c.Name},
	} {
		if f.val == "" {
			missing = append(missing, f.env)
		}
	}
	if len(missing) > 0 {
		return "", fmt.Errorf("database config: missing %s", strings.Join(missing, ", "))
	}

	u := url.URL{
		Scheme: "postgres",
		Host:   c.Host + ":" + c.Port,
		Path:   "/" + c.Name,
		User:   url.User(c.User),
	}
	if c.Password != "" {
		u.User = url.UserPassword(c.User, c.Password)
	}

	params := url.Values{}
	if c.SSLMode != "" {
		params.Set("sslmode", c.SSLMode)
	}
	if c.ApplicationName != "" {
		params.Set("application_name", c.ApplicationName)
	}
	if c.ConnectTimeoutSec > 0 {
		params.Set("connect_timeout", strconv.Itoa(c.ConnectTimeoutSec))
	}
	u.RawQuery = params.Encode()

	return u.String(), nil
}

// Connect opens the doctors/patients store through the traced pgx driver and
// blocks until the server answers a ping, retrying up to c.ConnectRetries times.
func Connect(ctx context.Context, c config.DatabaseConfig, log logrus.FieldLogger) (*sql.DB, error) {
	dsn, err := DSN(c)
	if err != nil {
		return nil, err
	}

	driver, err := tracedDriver()
	if err != nil {
		return nil, fmt.Errorf("register traced driver: %w", err)
	}

	db, err := openDB(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open records store: %w", err)
	}
	tunePool(db, c)

	log = log.WithFields(logrus.Fields{
		"component": "database",
		"db_host":   c.Host,
		"db_name":   c.Name,
	})
	if err := waitReady(ctx, db, c, log); err != nil {
		_ = db.Close()
		return nil, err
	}

	log.Info("records store reachable")
	return db, nil
}

func tunePool(db *sql.DB, c config.DatabaseConfig) {
	if c.MaxOpenConns > 0 {
		db.SetMaxOpenConns(c.MaxOpenConns)
	}
	if c.MaxIdleConns > 0 {
		db.SetMaxIdleConns(c.MaxIdleConns)
	}
	if c.ConnMaxLifetimeSec > 0 {
		db.SetConnMaxLifetime(time.Duration(c.ConnMaxLifetimeSec) * time.Second)
	}
}

func waitReady(ctx context.Context, db *sql.DB, c config.DatabaseConfig, log logrus.FieldLogger) error {
	attempts := max(c.ConnectRetries, 1)
	timeout := time.Duration(max(c.ConnectTimeoutSec, 1)) * time.Second

	for attempt := 1; ; attempt++ {
		pingCtx, cancel := context.WithTimeout(ctx, timeout)
		err := db.PingContext(pingCtx)
		cancel()
		if err == nil {
			return nil
		}
		if attempt >= attempts {
			return fmt.Errorf("ping records store (%d/%d): %w", attempt, attempts, err)
		}

		log.WithError(err).WithField("attempt", attempt).Warn("records store not ready, retrying")
		select {
		case <-ctx.Done():
			return fmt.Errorf("ping records store: %w", ctx.Err())
		case <-time.After(retryDelay * time.Duration(attempt)):
		}
	}
}
