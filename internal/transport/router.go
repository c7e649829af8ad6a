package transport

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/alanyang/projecthub/internal/domain/event"
	portbus "github.com/alanyang/projecthub/internal/port/eventbus"
	projectsvc "github.com/alanyang/projecthub/internal/service/project"
	mcptransport "github.com/alanyang/projecthub/internal/transport/mcp"
	projecthandler "github.com/alanyang/projecthub/internal/transport/project"
	wshandler "github.com/alanyang/projecthub/internal/transport/ws"
)

func NewRouter(
	ctx context.Context,
	projectSvc *projectsvc.Service,
	mcpServer *mcptransport.Server,
	eventBus portbus.EventBus,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(RequestLogger())
	r.Use(CORSMiddleware())

	api := r.Group("/api")

	projecthandler.Register(api.Group("/projects"), projectSvc)

	hub := wshandler.NewHub()
	hub.Register(api.Group("/ws"))

	// Bridge: forward every project lifecycle event to connected WS clients.
	// event.Type in the payload lets the client filter.
	if _, err := eventBus.Subscribe(ctx, event.ChannelProject, func(_ context.Context, e event.Event) {
		hub.Broadcast(e)
	}); err != nil {
		slog.Error("failed to subscribe project channel to WS hub", "error", err)
	}

	if mcpServer != nil {
		r.Any("/mcp", gin.WrapH(mcpServer.Handler()))
		r.Any("/mcp/*path", gin.WrapH(mcpServer.Handler()))
	}

	return r
}
