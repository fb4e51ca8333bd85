package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

const defaultConnectionString = "Host=localhost;Port=5432;Database=ledger_db;Username=postgres;Password=postgres;Timeout=30;CommandTimeout=30"
const defaultListenAddr = ":8080"
const defaultLogLevel = "info"

type Config struct {
	DatabaseDSN       string
	MigrationsDir     string
	ListenAddr        string
	LogLevel          string
	RulesPath         string
	HistoryDBPath     string
	BasicAuthUsername string
	BasicAuthPassword string
}

func Load() (Config, error) {
	// Pick up a local .env when present; real environments set variables
	// directly.
	_ = godotenv.Load()

	conn := strings.TrimSpace(os.Getenv("DATABASE_DSN"))
	if conn == "" {
		conn = defaultConnectionString
	}

	migrationsDir := strings.TrimSpace(os.Getenv("MIGRATIONS_DIR"))
	if migrationsDir == "" {
		migrationsDir = "migrations"
	}

	listenAddr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = defaultListenAddr
	}

	logLevel := strings.TrimSpace(os.Getenv("LOG_LEVEL"))
	if logLevel == "" {
		logLevel = defaultLogLevel
	}

	rulesPath := strings.TrimSpace(os.Getenv("RULES_PATH"))
	if rulesPath == "" {
		rulesPath = filepath.Join("config", "rules.yaml")
	}

	historyDBPath := strings.TrimSpace(os.Getenv("HISTORY_DB_PATH"))
	if historyDBPath == "" {
		historyDBPath = filepath.Join("data", "history.db")
	}

	return Config{
		DatabaseDSN:       normalizeConnectionString(conn),
		MigrationsDir:     migrationsDir,
		ListenAddr:        listenAddr,
		LogLevel:          logLevel,
		RulesPath:         rulesPath,
		HistoryDBPath:     historyDBPath,
		BasicAuthUsername: strings.TrimSpace(os.Getenv("BASIC_AUTH_USERNAME")),
		BasicAuthPassword: strings.TrimSpace(os.Getenv("BASIC_AUTH_PASSWORD")),
	}, nil
}

// normalizeConnectionString accepts both libpq keyword strings and the
// semicolon-delimited form used by ops handovers, producing a libpq string.
func normalizeConnectionString(raw string) string {
	parts := strings.Split(raw, ";")
	out := make([]string, 0, len(parts))
	hasSSLMode := false

	for _, part := range parts {
		p := strings.TrimSpace(part)
		if p == "" {
			continue
		}

		kv := strings.SplitN(p, "=", 2)
		if len(kv) != 2 {
			continue
		}

		key := strings.ToLower(strings.TrimSpace(kv[0]))
		val := strings.TrimSpace(kv[1])

		switch key {
		case "host":
			out = append(out, "host="+val)
		case "port":
			out = append(out, "port="+val)
		case "database":
			out = append(out, "dbname="+val)
		case "username":
			out = append(out, "user="+val)
		case "password":
			out = append(out, "password="+val)
		case "timeout", "connect timeout":
			out = append(out, "connect_timeout="+val)
		case "commandtimeout", "command timeout":
			out = append(out, "statement_timeout="+val+"s")
		case "sslmode":
			hasSSLMode = true
			out = append(out, "sslmode="+val)
		default:
			out = append(out, key+"="+val)
		}
	}

	if len(out) == 0 {
		return raw
	}

	if !hasSSLMode {
		out = append(out, "sslmode=disable")
	}

	return strings.Join(out, " ")
}
