package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gestionusuarios/userhub/internal/config"
	"gestionusuarios/userhub/internal/dto"
	"gestionusuarios/userhub/internal/handler/middleware"
	"gestionusuarios/userhub/internal/i18n"
	"gestionusuarios/userhub/internal/metrics"
)

type Handlers struct {
	Administrators *AccountHandler[dto.AdministratorRequest, dto.AdministratorResponse]
	Clients        *AccountHandler[dto.ClientRequest, dto.ClientResponse]
	SalesEmployees *AccountHandler[dto.SalesEmployeeRequest, dto.SalesEmployeeResponse]
	StoreManagers  *AccountHandler[dto.StoreManagerRequest, dto.StoreManagerResponse]
	Orders         *OrderHandler
	UserTypes      *UserTypeHandler
	Health         *HealthHandler
}

// crud is the route set shared by every resource with a full lifecycle.
type crud interface {
	List(c *gin.Context)
	Get(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

func mountCRUD(g *gin.RouterGroup, h crud) {
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

// SetupRouter wires middleware and routes. m may be nil when metrics are disabled.
func SetupRouter(
	cfg *config.Config,
	logger *zap.Logger,
	translator *i18n.Translator,
	m *metrics.Metrics,
	h Handlers,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(logger))
	// metrics wrap Recovery so a recovered panic is counted as a 500
	if m != nil {
		r.Use(m.Middleware())
	}
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.CORS(cfg.CORS))
	if m != nil {
		r.GET(cfg.Metrics.Path, gin.WrapH(m.Handler()))
	}

	r.GET("/healthz", h.Health.Check)

	mountCRUD(r.Group("/administradores"), h.Administrators)

	clients := r.Group("/clientes")
	mountCRUD(clients, h.Clients)
	clients.GET("/:id/pedidos", h.Orders.ListByClient)

	mountCRUD(r.Group("/empleados-ventas"), h.SalesEmployees)
	mountCRUD(r.Group("/gerentes-tienda"), h.StoreManagers)
	mountCRUD(r.Group("/pedidos"), h.Orders)

	userTypes := r.Group("/tipos-usuario")
	{
		userTypes.GET("", h.UserTypes.List)
		userTypes.POST("", h.UserTypes.Create)
		userTypes.GET("/:id", h.UserTypes.Get)
		userTypes.PUT("/:id", h.UserTypes.Update)
	}

	notFound := errorWriter{translator: translator, logger: logger}
	r.NoRoute(notFound.noRoute)

	return r
}
