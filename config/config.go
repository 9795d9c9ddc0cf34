package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config agrupa la configuración del proceso leída del entorno
type Config struct {
	DBHost     string
	DBPort     int
	DBName     string
	DBUser     string
	DBPassword string

	Port     int
	Path     string
	LogLevel string
}

// LoadEnv carga las variables del archivo .env si existe
func LoadEnv(logger *logrus.Logger, files ...string) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if _, err := os.Stat(file); err != nil {
			if logger != nil {
				logger.Debugf("Archivo %s no encontrado, se usa el entorno del proceso", file)
			}
			continue
		}
		if err := godotenv.Load(file); err != nil && logger != nil {
			logger.WithError(err).Warnf("No se pudo cargar el archivo %s", file)
		}
	}
}

// Load construye la configuración aplicando los valores por defecto
func Load() Config {
	return Config{
		DBHost:     GetEnv("DB_HOST", "localhost"),
		DBPort:     GetEnvInt("DB_PORT", 5432),
		DBName:     GetEnv("DB_NAME", "cita_medica"),
		DBUser:     GetEnv("DB_USER", "postgres"),
		DBPassword: GetEnv("DB_PASSWORD", "entraste"),
		Port:       GetEnvInt("PORT", 4005),
		Path:       GetEnv("GRAPHQL_PATH", "/cita_medica"),
		LogLevel:   GetEnv("LOG_LEVEL", "info"),
	}
}

// DatabaseURL arma la cadena de conexión para pgxpool
func (c Config) DatabaseURL() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.DBUser, c.DBPassword),
		Host:   net.JoinHostPort(c.DBHost, strconv.Itoa(c.DBPort)),
		Path:   "/" + c.DBName,
	}
	return u.String()
}

// Addr es la dirección de escucha del servidor HTTP
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// GetEnv obtiene una variable de entorno o el valor por defecto
func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvInt obtiene una variable entera; si no se puede convertir usa el valor por defecto
func GetEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
