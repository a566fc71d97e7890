package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/jmfarina/sales-ops-api/infrastructure/database/postgres"
	"github.com/jmfarina/sales-ops-api/infrastructure/integrator/pipedrive"
	"github.com/jmfarina/sales-ops-api/infrastructure/integrator/pipedrive/pipedriveclient"
	"github.com/jmfarina/sales-ops-api/infrastructure/repository"
	"github.com/jmfarina/sales-ops-api/internal/api"
	"github.com/jmfarina/sales-ops-api/internal/config"
	"github.com/jmfarina/sales-ops-api/internal/scheduler"
	"github.com/jmfarina/sales-ops-api/internal/usecases/authenticating"
	"github.com/jmfarina/sales-ops-api/internal/usecases/goaltracking"
	"github.com/sirupsen/logrus"
)

func main() {
	// Inicializa la configuración de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define el nivel de log según la configuración
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nivel de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nivel de log configurado en: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	goalRepo := repository.NewQuarterlyGoalRepository(pgConn)
	snapshotRepo := repository.NewGoalsSnapshotRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	pipedriveClient := pipedriveclient.NewClient(cfg)
	pipedriveIntegrator := pipedrive.New(cfg, pipedriveClient)

	goalsService := goaltracking.NewService(
		cfg,
		pipedriveIntegrator,
		userRepo,
		goalRepo,
		snapshotRepo,
	)

	goalsSyncService := scheduler.NewGoalsSyncService(userRepo, goalsService, cfg)

	if err := goalsSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Error al iniciar el agendador de sincronización de objetivos")
	} else {
		logrus.Info("Agendador de sincronización de objetivos iniciado con éxito")
	}

	server, err := api.New(
		cfg,
		goalsService,
		authenticator,
		goalsSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura el formato y comportamiento de los logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn crea la conexión con la base de datos
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Error al conectar con PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Error al probar la conexión con PostgreSQL")
	}

	logrus.Info("Conexión con PostgreSQL establecida con éxito")
	return conn
}
