package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/lizet96/cita-medica/config"
	"github.com/lizet96/cita-medica/metrics"
)

// Querier es lo mínimo que se necesita del pool; pgxpool.Pool lo cumple
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// DB es el proveedor de conexión compartido por todos los resolvers
type DB struct {
	pool      Querier
	logger    *logrus.Logger
	collector *metrics.Collector
}

// New envuelve un Querier ya abierto
func New(pool Querier, logger *logrus.Logger, collector *metrics.Collector) *DB {
	if logger == nil {
		logger = logrus.New()
	}
	return &DB{pool: pool, logger: logger, collector: collector}
}

// Connect abre el pool de conexiones y verifica que la base responda
func Connect(ctx context.Context, cfg config.Config, logger *logrus.Logger, collector *metrics.Collector) (*DB, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL())
	if err != nil {
		return nil, errors.Wrap(err, "error al parsear la configuración de la base de datos")
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, errors.Wrap(err, "error al crear el pool de conexiones")
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var version string
	if err := pool.QueryRow(pingCtx, "SELECT version()").Scan(&version); err != nil {
		pool.Close()
		return nil, errors.Wrapf(err, "no se pudo conectar a %s:%d/%s", cfg.DBHost, cfg.DBPort, cfg.DBName)
	}

	logger.WithFields(logrus.Fields{
		"host":     cfg.DBHost,
		"port":     cfg.DBPort,
		"database": cfg.DBName,
	}).Infof("Conectado a la base de datos: %s", version)

	return New(pool, logger, collector), nil
}

// Close cierra el pool si es un pgxpool
func (db *DB) Close() {
	if p, ok := db.pool.(*pgxpool.Pool); ok {
		p.Close()
	}
}

func (db *DB) query(ctx context.Context, nombre, sql string, args ...any) (pgx.Rows, error) {
	db.logger.WithFields(logrus.Fields{"consulta": nombre, "args": args}).Debug(sql)
	return db.pool.Query(ctx, sql, args...)
}

// NotFoundError indica que una búsqueda estricta no encontró exactamente una fila
type NotFoundError struct {
	Consulta string
	Filas    int
}

func (e *NotFoundError) Error() string {
	if e.Filas == 0 {
		return fmt.Sprintf("%s: no se encontró ningún registro", e.Consulta)
	}
	return fmt.Sprintf("%s: se esperaba un registro y se encontraron %d", e.Consulta, e.Filas)
}

// IsNotFound reporta si err (o su causa) es un NotFoundError
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// Many ejecuta la sentencia y devuelve todas las filas leídas con scan
func Many[T any](ctx context.Context, db *DB, nombre string, scan pgx.RowToFunc[T], sql string, args ...any) ([]T, error) {
	inicio := time.Now()
	rows, err := db.query(ctx, nombre, sql, args...)
	if err != nil {
		db.collector.ObserveStatement(nombre, inicio, err)
		return nil, errors.Wrap(err, nombre)
	}
	result, err := pgx.CollectRows(rows, scan)
	db.collector.ObserveStatement(nombre, inicio, err)
	if err != nil {
		return nil, errors.Wrap(err, nombre)
	}
	return result, nil
}

// One exige que la sentencia devuelva exactamente una fila
func One[T any](ctx context.Context, db *DB, nombre string, scan pgx.RowToFunc[T], sql string, args ...any) (T, error) {
	var zero T
	result, err := Many(ctx, db, nombre, scan, sql, args...)
	if err != nil {
		return zero, err
	}
	if len(result) != 1 {
		return zero, &NotFoundError{Consulta: nombre, Filas: len(result)}
	}
	return result[0], nil
}
