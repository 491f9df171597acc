// Package http wires the gin engine for the presentation shell. The
// shell is a thin collaborator: every route delegates to a use case.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"tansy/internal/application/ticket/usecases"
	"tansy/internal/infrastructure/repository"
	tickethandlers "tansy/internal/interfaces/http/handlers/ticket"
	"tansy/internal/interfaces/http/routes"
	"tansy/internal/shared/logger"
)

type Router struct {
	engine *gin.Engine
	db     *gorm.DB
	logger logger.Interface
}

func NewRouter(db *gorm.DB, log logger.Interface) *Router {
	engine := gin.New()
	engine.Use(gin.Recovery())

	return &Router{
		engine: engine,
		db:     db,
		logger: log,
	}
}

func (r *Router) SetupRoutes() {
	tickethandlers.RegisterValidations()

	ticketRepo := repository.NewTicketRepository(r.db)
	commentRepo := repository.NewCommentRepository(r.db)

	handler := tickethandlers.NewTicketHandler(
		usecases.NewCreateTicketUseCase(ticketRepo, r.logger),
		usecases.NewGetTicketUseCase(ticketRepo, r.logger),
		usecases.NewListTicketsUseCase(ticketRepo, r.logger),
		usecases.NewSearchTicketsUseCase(ticketRepo, r.logger),
		usecases.NewUpdateTicketUseCase(ticketRepo, r.logger),
		usecases.NewAddCommentUseCase(commentRepo, r.logger),
		usecases.NewListCommentsUseCase(commentRepo, r.logger),
		usecases.NewExportTicketsUseCase(ticketRepo, r.logger),
	)

	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler: handler,
	})

	r.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
