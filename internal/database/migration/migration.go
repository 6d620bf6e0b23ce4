package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

type migrationStep struct {
	Name string
	SQL  string
}

// The email UNIQUE constraints are what actually keep emails unique per kind;
// the services only pre-check to produce a friendlier error.
var steps = []migrationStep{
	{
		Name: "create_extension_uuid_ossp",
		SQL:  `CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	},
	{
		Name: "create_table_doctors",
		SQL: `CREATE TABLE IF NOT EXISTS doctors (
  doctor_id      UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  first_name     TEXT        NOT NULL,
  last_name      TEXT        NOT NULL DEFAULT '',
  dob            DATE,
  gender         TEXT        NOT NULL DEFAULT '',
  email          TEXT        NOT NULL,
  phone          TEXT        NOT NULL DEFAULT '',
  address        TEXT        NOT NULL DEFAULT '',
  qualification  TEXT        NOT NULL DEFAULT '',
  specialization TEXT        NOT NULL DEFAULT '',
  created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
  CONSTRAINT doctors_email_key UNIQUE (email)
);`,
	},
	{
		Name: "create_table_patients",
		SQL: `CREATE TABLE IF NOT EXISTS patients (
  patient_id UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  first_name TEXT        NOT NULL,
  last_name  TEXT        NOT NULL,
  dob        DATE,
  gender     TEXT        NOT NULL,
  address    TEXT        NOT NULL DEFAULT '',
  email      TEXT,
  phone      TEXT        NOT NULL DEFAULT '',
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  CONSTRAINT patients_email_key UNIQUE (email)
);`,
	},
	{
		Name: "create_index_doctors_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_doctors_created_at ON doctors (created_at);`,
	},
	{
		Name: "create_index_patients_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_patients_created_at ON patients (created_at);`,
	},
}

const sentinelQuery = `SELECT to_regclass('public.doctors') IS NOT NULL AND to_regclass('public.patients') IS NOT NULL`

// EnsureMigrated checks whether the doctors and patients tables exist and creates the schema if they don't.
func EnsureMigrated(ctx context.Context, db *sql.DB, log logrus.FieldLogger) error {
	start := time.Now()
	entry := log.WithField("component", "database")

	entry.WithField("event", "db_migration_check").Info("checking schema")

	var exists bool
	if err := db.QueryRowContext(ctx, sentinelQuery).Scan(&exists); err != nil {
		entry.WithFields(logrus.Fields{
			"event":       "db_migration_failed",
			"duration_ms": time.Since(start).Milliseconds(),
		}).WithError(err).Error("failed to check sentinel tables")
		return fmt.Errorf("failed to check sentinel tables: %w", err)
	}

	if exists {
		entry.WithFields(logrus.Fields{
			"event":       "db_migration_skip",
			"duration_ms": time.Since(start).Milliseconds(),
		}).Info("schema already exists, skipping migration")
		return nil
	}

	entry.WithField("event", "db_migration_start").Info("creating schema")

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			entry.WithFields(logrus.Fields{
				"event":            "db_migration_failed",
				"migration_step":   step.Name,
				"duration_ms":      time.Since(start).Milliseconds(),
				"step_duration_ms": time.Since(stepStart).Milliseconds(),
			}).WithError(err).Error("migration step failed")
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		entry.WithFields(logrus.Fields{
			"event":            "db_migration_step",
			"migration_step":   step.Name,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		}).Debug("migration step applied")
	}

	entry.WithFields(logrus.Fields{
		"event":       "db_migration_success",
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("schema created")

	return nil
}
