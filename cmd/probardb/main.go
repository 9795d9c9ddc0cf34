// Comando probardb verifica la conexión a la base de datos configurada.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5"

	"github.com/lizet96/cita-medica/config"
	"github.com/lizet96/cita-medica/database"
	"github.com/lizet96/cita-medica/logging"
)

type identidad struct {
	Database string
	Usuario  string
}

func main() {
	logger := logging.NewLogger(config.GetEnv("LOG_LEVEL", "info"))
	config.LoadEnv(logger)
	cfg := config.Load()
	logger.SetLevel(logging.ParseLevel(cfg.LogLevel))

	logger.WithFields(logging.Fields{
		"host":     cfg.DBHost,
		"database": cfg.DBName,
		"user":     cfg.DBUser,
	}).Info("Probando conexión")

	if err := probar(context.Background(), cfg, logger); err != nil {
		logger.WithError(err).Error("La conexión falló")
		os.Exit(1)
	}
}

func probar(ctx context.Context, cfg config.Config, logger logging.Logger) error {
	db, err := database.Connect(ctx, cfg, logger, nil)
	if err != nil {
		return err
	}
	defer db.Close()

	yo, err := database.One(ctx, db, "identidad", pgx.RowToStructByPos[identidad], "SELECT current_database(), current_user")
	if err != nil {
		return err
	}
	fmt.Printf("Conexión exitosa. DB/Usuario actual: %s/%s\n", yo.Database, yo.Usuario)

	tablas, err := database.Many(ctx, db, "tablas", pgx.RowTo[string],
		"SELECT table_name FROM information_schema.tables WHERE table_schema = 'public'")
	if err != nil {
		return err
	}
	fmt.Println("Tablas en el esquema público:", tablas)

	total, err := database.One(ctx, db, "totalMedicos", pgx.RowTo[int64], "SELECT count(*) FROM medico")
	if err != nil {
		return err
	}
	fmt.Println("Total de médicos en la tabla:", total)
	return nil
}
