package projectgen

const configTemplate = `package config

import (
	"os"
	"strconv"
	"strings"
)

// Settings is read from the environment, optionally seeded from .env.
type Settings struct {
	AppName string
	Version string
	Debug   bool
	Addr    string

	DatabaseURL string

	SecretKey                string
	AccessTokenExpireMinutes int
	Algorithm                string

	CORSOrigins []string
}

// Load returns the settings with defaults for every unset key.
func Load() Settings {
	return Settings{
		AppName:                  env("APP_NAME", {{quote .Name}}),
		Version:                  env("VERSION", "1.0.0"),
		Debug:                    envBool("DEBUG", false),
		Addr:                     env("ADDR", ":8000"),
		DatabaseURL:              env("DATABASE_URL", "app.db"),
		SecretKey:                env("SECRET_KEY", "your-secret-key-change-in-production"),
		AccessTokenExpireMinutes: envInt("ACCESS_TOKEN_EXPIRE_MINUTES", 30),
		Algorithm:                env("ALGORITHM", "HS256"),
		CORSOrigins:              strings.Split(env("CORS_ORIGINS", "http://localhost:3000"), ","),
	}
}

func env(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v, err := strconv.Atoi(env(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func envBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(env(key, ""))
	if err != nil {
		return fallback
	}
	return v
}
`

const databaseTemplate = `package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Session hands out pooled connections to request handlers.
type Session struct {
	db *sql.DB
}

// Open opens the SQLite database at path.
func Open(path string) (*Session, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// sqlite allows a single writer, and ":memory:" lives on one connection.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &Session{db: db}, nil
}

// Conn returns a dedicated connection. Callers must Close it.
func (s *Session) Conn(ctx context.Context) (*sql.Conn, error) {
	return s.db.Conn(ctx)
}

// Migrate executes each statement in order.
func (s *Session) Migrate(ctx context.Context, stmts ...string) error {
	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

func (s *Session) Close() error {
	return s.db.Close()
}
`

const userModelTemplate = `package models

import "time"

const UserTable = "users"

// UserSchema creates the users table.
const UserSchema = {{bt}}CREATE TABLE IF NOT EXISTS users (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	email TEXT NOT NULL UNIQUE,
	username TEXT NOT NULL UNIQUE,
	hashed_password TEXT NOT NULL,
	is_active BOOLEAN NOT NULL DEFAULT TRUE,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
){{bt}}

type User struct {
	ID             int64     {{tag "db" "id"}}
	Email          string    {{tag "db" "email"}}
	Username       string    {{tag "db" "username"}}
	HashedPassword string    {{tag "db" "hashed_password"}}
	IsActive       bool      {{tag "db" "is_active"}}
	CreatedAt      time.Time {{tag "db" "created_at"}}
}
`

const taskModelTemplate = `package models

import "time"

const TaskTable = "tasks"

// TaskSchema creates the tasks table. Tasks belong to a user.
const TaskSchema = {{bt}}CREATE TABLE IF NOT EXISTS tasks (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	description TEXT,
	completed BOOLEAN NOT NULL DEFAULT FALSE,
	owner_id INTEGER NOT NULL REFERENCES users(id),
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP
){{bt}}

type Task struct {
	ID          int64      {{tag "db" "id"}}
	Title       string     {{tag "db" "title"}}
	Description *string    {{tag "db" "description"}}
	Completed   bool       {{tag "db" "completed"}}
	OwnerID     int64      {{tag "db" "owner_id"}}
	CreatedAt   time.Time  {{tag "db" "created_at"}}
	UpdatedAt   *time.Time {{tag "db" "updated_at"}}
}
`

const userSchemaTemplate = `package schemas

import "time"

type UserBase struct {
	Email    string {{tag "json" "email"}}
	Username string {{tag "json" "username"}}
}

type UserCreate struct {
	UserBase
	Password string {{tag "json" "password"}}
}

type User struct {
	ID int64 {{tag "json" "id"}}
	UserBase
	IsActive  bool      {{tag "json" "is_active"}}
	CreatedAt time.Time {{tag "json" "created_at"}}
}
`

const taskSchemaTemplate = `package schemas

import "time"

type TaskBase struct {
	Title       string  {{tag "json" "title"}}
	Description *string {{tag "json" "description"}}
	Completed   bool    {{tag "json" "completed"}}
}

type TaskCreate struct {
	TaskBase
}

// TaskUpdate carries a partial update. Omitted fields keep their value.
type TaskUpdate struct {
	Title       *string {{tag "json" "title,omitempty"}}
	Description *string {{tag "json" "description,omitempty"}}
	Completed   *bool   {{tag "json" "completed,omitempty"}}
}

type Task struct {
	ID int64 {{tag "json" "id"}}
	TaskBase
	OwnerID   int64      {{tag "json" "owner_id"}}
	CreatedAt time.Time  {{tag "json" "created_at"}}
	UpdatedAt *time.Time {{tag "json" "updated_at"}}
}
`

const routersTemplate = `// Package routers holds the HTTP handlers for each resource.
package routers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func internalError(w http.ResponseWriter, err error) {
	slog.Error("request failed", "error", err)
	writeDetail(w, http.StatusInternalServerError, "Internal Server Error")
}

func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("id must be a positive integer")
	}
	return id, nil
}

func queryInt(r *http.Request, key string, fallback int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%s must be a non-negative integer", key)
	}
	return v, nil
}
`

const authRouterTemplate = `package routers

import "net/http"

// RegisterAuthRoutes wires placeholder authentication endpoints.
func RegisterAuthRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /auth/register", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"message": "Register endpoint - implement authentication"})
	})
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"message": "Login endpoint - implement authentication"})
	})
}
`

const tasksRouterTemplate = `package routers

import (
	"net/http"

	"{{.Module}}/app/database"
	"{{.Module}}/app/schemas"
)

// RegisterTaskRoutes wires the starter task endpoints. Replace them with
// "scaffold generate-crud" output or your own handlers.
func RegisterTaskRoutes(mux *http.ServeMux, db *database.Session) {
	mux.HandleFunc("GET /tasks", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []schemas.Task{})
	})
	mux.HandleFunc("POST /tasks", func(w http.ResponseWriter, r *http.Request) {
		var in schemas.TaskCreate
		if err := decodeBody(r, &in); err != nil {
			writeDetail(w, http.StatusBadRequest, err.Error())
			return
		}
		writeJSON(w, http.StatusCreated, map[string]string{"message": "Create task - implement logic"})
	})
}
`
