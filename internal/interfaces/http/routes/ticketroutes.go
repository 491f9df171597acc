package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "tansy/internal/interfaces/http/handlers/ticket"
)

type TicketRouteConfig struct {
	TicketHandler *tickethandlers.TicketHandler
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	tickets := engine.Group("/tickets")
	{
		// Specific paths register before parameterized paths to avoid
		// route conflicts.
		tickets.POST("", config.TicketHandler.CreateTicket)
		tickets.GET("", config.TicketHandler.ListTickets)
		tickets.GET("/export.csv", config.TicketHandler.ExportTickets)

		tickets.POST("/:id/comments", config.TicketHandler.AddComment)
		tickets.GET("/:id/comments", config.TicketHandler.ListComments)

		tickets.GET("/:id", config.TicketHandler.GetTicket)
		tickets.PATCH("/:id", config.TicketHandler.UpdateTicket)
	}
}
