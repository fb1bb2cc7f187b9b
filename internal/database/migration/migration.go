package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"resumeapi/internal/logging"
)

type migrationStep struct {
	Name string
	SQL  string
}

// SentinelTable is checked before migrating; when it exists the schema is
// considered current.
const SentinelTable = "resumes_personal_info"

func sectionTable(name, columns string) migrationStep {
	return migrationStep{
		Name: "create_table_" + name,
		SQL: fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
  id         BIGSERIAL   PRIMARY KEY,
  owner      TEXT        NOT NULL,
%s,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`, name, columns),
	}
}

func ownerIndex(table string) migrationStep {
	return migrationStep{
		Name: "create_index_" + table + "_owner",
		SQL:  fmt.Sprintf(`CREATE INDEX IF NOT EXISTS idx_%s_owner ON %s (owner);`, table, table),
	}
}

var steps = []migrationStep{
	{
		Name: "create_table_resumes_personal_info",
		SQL: `CREATE TABLE IF NOT EXISTS resumes_personal_info (
  owner      TEXT        PRIMARY KEY,
  full_name  TEXT        NOT NULL,
  title      TEXT        NOT NULL DEFAULT '',
  email      TEXT        NOT NULL,
  phone      TEXT        NOT NULL DEFAULT '',
  location   TEXT        NOT NULL DEFAULT '',
  website    TEXT        NOT NULL DEFAULT '',
  summary    TEXT        NOT NULL DEFAULT '',
  photo_url  TEXT        NOT NULL DEFAULT '',
  updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	sectionTable("resumes_experiences", `  company      TEXT    NOT NULL,
  position     TEXT    NOT NULL,
  location     TEXT    NOT NULL DEFAULT '',
  start_date   TEXT    NOT NULL,
  end_date     TEXT    NOT NULL DEFAULT '',
  is_current   BOOLEAN NOT NULL DEFAULT false,
  description  TEXT    NOT NULL DEFAULT '',
  achievements JSONB   NOT NULL DEFAULT '[]'::jsonb`),
	ownerIndex("resumes_experiences"),
	sectionTable("resumes_education", `  institution TEXT NOT NULL,
  degree      TEXT NOT NULL,
  field       TEXT NOT NULL DEFAULT '',
  location    TEXT NOT NULL DEFAULT '',
  start_date  TEXT NOT NULL DEFAULT '',
  end_date    TEXT NOT NULL DEFAULT '',
  gpa         TEXT NOT NULL DEFAULT '',
  description TEXT NOT NULL DEFAULT ''`),
	ownerIndex("resumes_education"),
	sectionTable("resumes_skills", `  name     TEXT NOT NULL,
  level    TEXT NOT NULL CHECK (level IN ('beginner', 'intermediate', 'advanced', 'expert')),
  category TEXT NOT NULL DEFAULT ''`),
	ownerIndex("resumes_skills"),
	sectionTable("resumes_certifications", `  name           TEXT NOT NULL,
  issuer         TEXT NOT NULL,
  issue_date     TEXT NOT NULL DEFAULT '',
  expiry_date    TEXT NOT NULL DEFAULT '',
  credential_id  TEXT NOT NULL DEFAULT '',
  credential_url TEXT NOT NULL DEFAULT ''`),
	ownerIndex("resumes_certifications"),
	sectionTable("resumes_social_links", `  platform TEXT NOT NULL,
  url      TEXT NOT NULL`),
	ownerIndex("resumes_social_links"),
	sectionTable("resumes_custom_sections", `  title TEXT  NOT NULL,
  items JSONB NOT NULL DEFAULT '[]'::jsonb`),
	ownerIndex("resumes_custom_sections"),
	sectionTable("cover_letters", `  title           TEXT        NOT NULL DEFAULT '',
  company_name    TEXT        NOT NULL,
  position        TEXT        NOT NULL,
  hiring_manager  TEXT        NOT NULL DEFAULT '',
  tone            TEXT        NOT NULL DEFAULT '',
  highlights      JSONB       NOT NULL DEFAULT '[]'::jsonb,
  job_description TEXT        NOT NULL DEFAULT '',
  content         TEXT        NOT NULL DEFAULT '',
  updated_at      TIMESTAMPTZ NOT NULL DEFAULT now()`),
	ownerIndex("cover_letters"),
	sectionTable("resume_links", `  path          TEXT        NOT NULL,
  template      TEXT        NOT NULL,
  active        BOOLEAN     NOT NULL DEFAULT true,
  expires_at    TIMESTAMPTZ,
  views         BIGINT      NOT NULL DEFAULT 0 CHECK (views >= 0),
  password_hash TEXT        NOT NULL DEFAULT ''`),
	ownerIndex("resume_links"),
	{
		Name: "create_unique_index_resume_links_path",
		SQL:  `CREATE UNIQUE INDEX IF NOT EXISTS uq_resume_links_path ON resume_links (lower(path));`,
	},
	sectionTable("ats_reports", `  total            INT   NOT NULL CHECK (total BETWEEN 0 AND 100),
  label            TEXT  NOT NULL,
  categories       JSONB NOT NULL,
  matched_keywords JSONB NOT NULL DEFAULT '[]'::jsonb,
  missing_keywords JSONB NOT NULL DEFAULT '[]'::jsonb,
  suggestions      JSONB NOT NULL DEFAULT '[]'::jsonb`),
	ownerIndex("ats_reports"),
	sectionTable("score_reports", `  total       INT   NOT NULL CHECK (total BETWEEN 0 AND 100),
  label       TEXT  NOT NULL,
  categories  JSONB NOT NULL,
  suggestions JSONB NOT NULL DEFAULT '[]'::jsonb`),
	ownerIndex("score_reports"),
	sectionTable("assessment_results", `  category TEXT NOT NULL,
  correct  INT  NOT NULL CHECK (correct >= 0),
  total    INT  NOT NULL CHECK (total > 0),
  score    INT  NOT NULL CHECK (score BETWEEN 0 AND 100),
  label    TEXT NOT NULL`),
	ownerIndex("assessment_results"),
	{
		Name: "create_table_privacy_settings",
		SQL: `CREATE TABLE IF NOT EXISTS privacy_settings (
  owner                    TEXT        PRIMARY KEY,
  public_profile           BOOLEAN     NOT NULL DEFAULT true,
  show_contact             BOOLEAN     NOT NULL DEFAULT true,
  allow_analytics          BOOLEAN     NOT NULL DEFAULT true,
  default_link_expiry_days INT         NOT NULL DEFAULT 0 CHECK (default_link_expiry_days >= 0),
  updated_at               TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
}

// EnsureMigrated checks if the sentinel table exists and runs migrations if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, loc *time.Location, dbHost string) error {
	start := time.Now()

	logging.JSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_check",
		"status":    "starting",
		"db_host":   dbHost,
	})

	var exists bool
	query := "SELECT to_regclass('public." + SentinelTable + "') IS NOT NULL"
	if err := db.QueryRowContext(ctx, query).Scan(&exists); err != nil {
		logging.JSON(loc, map[string]any{
			"component":     "database",
			"event":         "db_migration_failed",
			"status":        "error",
			"error_message": fmt.Sprintf("failed to check sentinel table: %v", err),
			"db_host":       dbHost,
			"duration_ms":   time.Since(start).Milliseconds(),
		})
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		logging.JSON(loc, map[string]any{
			"component":   "database",
			"event":       "db_migration_skip",
			"status":      "success",
			"msg":         "schema already exists, skipping migration",
			"db_host":     dbHost,
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return nil
	}

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			logging.JSON(loc, map[string]any{
				"component":        "database",
				"event":            "db_migration_failed",
				"status":           "error",
				"migration_step":   step.Name,
				"error_message":    err.Error(),
				"db_host":          dbHost,
				"step_duration_ms": time.Since(stepStart).Milliseconds(),
			})
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		logging.JSON(loc, map[string]any{
			"component":        "database",
			"event":            "db_migration_step",
			"status":           "success",
			"migration_step":   step.Name,
			"db_host":          dbHost,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		})
	}

	logging.JSON(loc, map[string]any{
		"component":   "database",
		"event":       "db_migration_success",
		"status":      "success",
		"steps":       len(steps),
		"db_host":     dbHost,
		"duration_ms": time.Since(start).Milliseconds(),
	})
	return nil
}
