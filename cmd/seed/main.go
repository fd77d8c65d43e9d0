package main

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/airlabs/air-tasks/config"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "demo@airtasks.local"
	password := "password123"
	name := "Demo User"

	var userID int64
	err = db.QueryRow(`
		INSERT INTO users (email, password, name)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, email, password, name).Scan(&userID)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%d email=%s password=%s\n", userID, email, password)

	now := time.Now()
	tomorrow := now.Add(24 * time.Hour)
	lastWeek := now.Add(-7 * 24 * time.Hour)

	type seedTask struct {
		title       string
		description string
		due         *time.Time
		priority    string
		completed   bool
	}
	tasks := []seedTask{
		{"Pay electricity bill", "Account 4411, due this week", &lastWeek, "high", false},
		{"Prepare sprint demo", "Slides plus a five minute walkthrough", &tomorrow, "medium", false},
		{"Read the pgx docs", "", nil, "low", false},
		{"Book dentist appointment", "Ask for a morning slot", nil, "medium", true},
	}

	for _, t := range tasks {
		if _, err := db.Exec(`
			INSERT INTO tasks (user_id, title, description, due_date, priority, completed)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, userID, t.title, t.description, t.due, t.priority, t.completed); err != nil {
			log.Fatalf("failed to seed task %q: %v", t.title, err)
		}
	}
	fmt.Printf("seeded %d tasks for user %d\n", len(tasks), userID)
}
