package bootstrap

import (
	"context"

	"github.com/osse101/TemplateOverrides_Go/internal/database"
	"github.com/osse101/TemplateOverrides_Go/internal/logger"
	"github.com/osse101/TemplateOverrides_Go/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server *server.Server
	DBPool database.Pool
}

// GracefulShutdown stops the HTTP server, then closes the database pool.
// Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	log := logger.FromContext(ctx)

	if components.Server != nil {
		log.Info(LogMsgShuttingDownServer)
		if err := components.Server.Stop(ctx); err != nil {
			log.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.DBPool != nil {
		log.Info(LogMsgClosingDatabase)
		components.DBPool.Close()
	}

	log.Info(LogMsgServerStopped)
}
