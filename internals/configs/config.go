package configs

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config agrupa todo lo que el proceso lee del entorno.
type Config struct {
	DatabaseURL string
	Port        string
	Env         string // development | production
	UploadDir   string

	// Límites del pool de conexiones (ver databases.TunePool)
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxIdleTime time.Duration
	ConnMaxLifetime time.Duration

	// Tiempo máximo que una request espera por una conexión del pool
	AcquireTimeout time.Duration
}

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No se encontró archivo .env, usando ENV del sistema")
	} else {
		log.Println("✅ Archivo .env cargado")
	}
}

func Load() Config {
	cfg := Config{
		DatabaseURL:     GetEnv("DATABASE_URL"),
		Port:            GetEnv("PORT", "8080"),
		Env:             GetEnv("APP_ENV", "development"),
		UploadDir:       GetEnv("UPLOAD_DIR", "uploads"),
		MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 10),
		MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
		ConnMaxIdleTime: 30 * time.Second,
		ConnMaxLifetime: 10 * time.Minute,
		AcquireTimeout:  10 * time.Second,
	}

	if cfg.DatabaseURL == "" {
		// Alternativa: piezas sueltas DB_* como en los despliegues antiguos
		cfg.DatabaseURL = fmt.Sprintf(
			"postgres://%s:%s@%s:%s/%s?sslmode=%s",
			GetEnv("DB_USER", "admin"),
			GetEnv("DB_PASSWORD", ""),
			GetEnv("DB_HOST", "localhost"),
			GetEnv("DB_PORT", "5432"),
			GetEnv("DB_NAME", "sistema_policial"),
			GetEnv("DB_SSLMODE", "require"),
		)
	}

	return cfg
}

// IsProduction decide si se exponen detalles de diagnóstico en las respuestas.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("⚠️ %s=%q no es un entero, usando %d", key, v, def)
		return def
	}
	return n
}
