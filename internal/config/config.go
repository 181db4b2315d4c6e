package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config carries everything a service binary needs from the environment.
// Downstream base URLs are fixed configuration, not discovered dynamically.
type Config struct {
	Port string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	JWTSecret string

	WorkRequestServiceURL  string
	ScheduleServiceURL     string
	NotificationServiceURL string
	EmployeeServiceURL     string
	SchedulerServiceURL    string
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads configs/.env if present and builds the Config with defaults
// suitable for local development. defaultPort is the port the calling
// service listens on when PORT is unset.
func Load(defaultPort string) Config {
	if err := godotenv.Load("configs/.env"); err != nil {
		log.Println("No configs/.env file found or error loading it")
	}

	return Config{
		Port: getenv("PORT", defaultPort),

		DBHost:     getenv("DB_HOST", "localhost"),
		DBPort:     getenv("DB_PORT", "5432"),
		DBUser:     getenv("DB_USER", "postgres"),
		DBPassword: getenv("DB_PASSWORD", "postgres"),
		DBName:     getenv("DB_NAME", "wfh"),
		DBSSLMode:  getenv("DB_SSLMODE", "disable"),

		JWTSecret: getenv("JWT_SECRET", "default_super_secret_key"),

		WorkRequestServiceURL:  getenv("WORK_REQUEST_SERVICE_URL", "http://localhost:5003"),
		ScheduleServiceURL:     getenv("SCHEDULE_SERVICE_URL", "http://localhost:5004"),
		NotificationServiceURL: getenv("NOTIFICATION_SERVICE_URL", "http://localhost:5008"),
		EmployeeServiceURL:     getenv("EMPLOYEE_SERVICE_URL", "http://localhost:5002"),
		SchedulerServiceURL:    getenv("SCHEDULER_SERVICE_URL", "http://localhost:5005"),
	}
}

// DSN renders the postgres connection string.
func (c Config) DSN() string {
	return "postgres://" + c.DBUser + ":" + c.DBPassword + "@" + c.DBHost + ":" + c.DBPort + "/" + c.DBName + "?sslmode=" + c.DBSSLMode
}
