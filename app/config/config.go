package config

import (
	"database/sql"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

type Config struct {
	DB           *sql.DB
	Port         string
	DatabaseURL  string
	JWTSecret    string
	UploadFolder string
}

var AppConfig *Config

// Load reads configuration from the environment (a local .env file is
// honoured when present) and opens the database pool.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Port:         getEnv("PORT", "5000"),
		DatabaseURL:  getEnv("DATABASE_URL", "host=localhost port=5432 user=postgres dbname=cedtc sslmode=disable"),
		JWTSecret:    getEnv("SECRET_KEY", "ced-udus-dev-secret"),
		UploadFolder: getEnv("UPLOAD_FOLDER", "./static/uploads"),
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	if err = db.Ping(); err != nil {
		log.Fatal("Cannot establish database connection:", err)
	}
	log.Println("Database connected successfully")

	if err := os.MkdirAll(cfg.UploadFolder, 0o755); err != nil {
		log.Fatal("Cannot create upload folder:", err)
	}

	cfg.DB = db
	AppConfig = cfg
	return cfg
}

func GetDB() *sql.DB {
	return AppConfig.DB
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
