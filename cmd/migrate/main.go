package main

import (
	"context"
	"log"

	"github.com/Iqrahussain-041/Attendance-Portal-System/internal/config"
	"github.com/Iqrahussain-041/Attendance-Portal-System/internal/pkg/database"
)

var statements = []string{
	`CREATE TABLE IF NOT EXISTS employees (
		id            VARCHAR(36)  PRIMARY KEY,
		name          VARCHAR(255) NOT NULL,
		unique_link   VARCHAR(50)  NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		designation   VARCHAR(255) NOT NULL DEFAULT '',
		email         VARCHAR(255) NOT NULL,
		created_at    TIMESTAMPTZ  NOT NULL DEFAULT NOW()
	)`,
	// No foreign keys: deleting an employee keeps their attendance and
	// leave history in place.
	`CREATE TABLE IF NOT EXISTS attendance (
		employee_id VARCHAR(36) NOT NULL,
		date        DATE        NOT NULL,
		clock_in    VARCHAR(8),
		clock_out   VARCHAR(8),
		status      VARCHAR(16) NOT NULL,
		is_late     BOOLEAN     NOT NULL DEFAULT FALSE,
		is_half_day BOOLEAN     NOT NULL DEFAULT FALSE,
		UNIQUE (employee_id, date)
	)`,
	`CREATE TABLE IF NOT EXISTS leave_requests (
		employee_id  VARCHAR(36)  NOT NULL,
		date         DATE         NOT NULL,
		type         VARCHAR(16)  NOT NULL,
		reason       TEXT         NOT NULL,
		status       VARCHAR(16)  NOT NULL,
		requested_at TIMESTAMPTZ  NOT NULL,
		UNIQUE (employee_id, date)
	)`,
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	ctx := context.Background()
	log.Println("Running database migrations...")
	for _, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			log.Fatal("Migration failed: ", err)
		}
	}
	log.Println("Database migrations completed successfully")
}
