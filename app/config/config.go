package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

type Config struct {
	DB        *sql.DB
	JWTSecret []byte
	Port      string
}

var AppConfig *Config

// LoadEnv reads .env if present so local development doesn't need exported vars.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func InitDB() {
	var psqlInfo string

	if url := os.Getenv("DATABASE_URL"); url != "" {
		psqlInfo = url
	} else {
		host := getenv("PGHOST", "localhost")
		port := getenv("PGPORT", "5432")
		user := getenv("PGUSER", "postgres")
		password := os.Getenv("PGPASSWORD")
		dbname := getenv("PGDATABASE", "stafflog")

		psqlInfo = fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=disable connect_timeout=60",
			host, port, user, dbname)
		if password != "" {
			psqlInfo += " password=" + password
		}
		log.Printf("Connecting to database %s at %s:%s", dbname, host, port)
	}

	db, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	// Set connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	log.Println("Testing database connection...")
	if err = db.Ping(); err != nil {
		log.Printf("Database connection failed: %v", err)
		log.Println("Set DATABASE_URL or PGHOST/PGPORT/PGUSER/PGPASSWORD/PGDATABASE and try again")
		log.Fatal("Cannot establish database connection")
	}

	AppConfig = &Config{
		DB:        db,
		JWTSecret: []byte(getenv("JWT_SECRET", "stafflog-secret-key")),
		Port:      getenv("PORT", "3000"),
	}
	log.Println("Database connected successfully")
}

func GetDB() *sql.DB {
	return AppConfig.DB
}

func JWTSecret() []byte {
	return AppConfig.JWTSecret
}
