package routes

import (
	"context"
	"fmt"
	"strconv"

	_ "tiffin_tales/docs" // swag init output
	"tiffin_tales/internal/adapter/http/handlers"
	"tiffin_tales/internal/adapter/persistence/repository"
	"tiffin_tales/internal/domain/entities"
	"tiffin_tales/internal/infrastructure/cache"
	"tiffin_tales/internal/infrastructure/catalog"
	"tiffin_tales/internal/infrastructure/config"
	"tiffin_tales/internal/infrastructure/database"
	"tiffin_tales/internal/infrastructure/documents"
	"tiffin_tales/internal/usecase"
	"tiffin_tales/internal/usecase/interfaces"
	"tiffin_tales/pkg"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups everything the router serves.
type Handlers struct {
	Estimator *handlers.EstimatorHandler
	Quote     *handlers.QuoteHandler
	Catalog   *handlers.CatalogHandler
}

// Run will start the server
func Run() {
	cfg, err := config.Load(config.Path())
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := config.ConfigureLogging(cfg.Log); err != nil {
		log.Fatalf("Invalid log level %q: %v", cfg.Log.Level, err)
	}

	ctx := context.Background()
	repo, err := newSessionRepository(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect session store %q: %v", cfg.Session.Store, err)
	}

	h, err := NewHandlers(cfg, repo)
	if err != nil {
		log.Fatalf("Failed to build handlers: %v", err)
	}

	router := NewRouter(h)
	log.Infof("[server][http] listening port=%d store=%s", cfg.Server.Port, cfg.Session.Store)
	if err := router.Run(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// NewRouter registers middlewares, Swagger and the /v1 routes.
func NewRouter(h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public routes
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addEstimatorRoutes(v1, h.Estimator, h.Quote)
	addCatalogRoutes(v1, h.Catalog)
	return router
}

// NewHandlers wires use cases and handlers on top of a session store.
func NewHandlers(cfg config.Application, repo interfaces.ISessionRepository) (Handlers, error) {
	taxRate, err := cfg.Estimator.TaxRateDecimal()
	if err != nil {
		return Handlers{}, err
	}
	defaultUnitPrice, err := cfg.Estimator.DefaultUnitPriceDecimal()
	if err != nil {
		return Handlers{}, err
	}

	formatter := pkg.NewCurrencyFormatter(cfg.Estimator.Locale, cfg.Estimator.CurrencySymbol)
	catalogSource := catalog.NewStaticCatalog()

	estimatorUseCase := usecase.NewEstimatorUseCase(repo, catalogSource, usecase.EstimatorSettings{
		TaxRate:          taxRate,
		DefaultUnitPrice: defaultUnitPrice,
		SessionTTL:       cfg.Session.TTL,
	})
	quoteUseCase := usecase.NewQuoteUseCase(repo, formatter, usecase.QuoteSettings{
		Business: entities.BusinessIdentity{
			Name:        cfg.Business.Name,
			Tagline:     cfg.Business.Tagline,
			ServiceArea: cfg.Business.ServiceArea,
			Phone:       cfg.Business.Phone,
			Website:     cfg.Business.Website,
		},
		TaxRate:  taxRate,
		Filename: cfg.Estimator.QuoteFilename,
	}, documents.NewPDFQuoteRenderer(), documents.NewXLSXQuoteRenderer())
	catalogUseCase := usecase.NewCatalogUseCase(catalogSource)

	return Handlers{
		Estimator: handlers.NewEstimatorHandler(estimatorUseCase, formatter),
		Quote:     handlers.NewQuoteHandler(quoteUseCase),
		Catalog:   handlers.NewCatalogHandler(catalogUseCase, formatter),
	}, nil
}

func newSessionRepository(ctx context.Context, cfg config.Application) (interfaces.ISessionRepository, error) {
	switch cfg.Session.Store {
	case config.SessionStoreMemory:
		return repository.NewSessionMemoryRepository(), nil
	case config.SessionStoreRedis:
		rdb, err := cache.ConnectRedis(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		return repository.NewSessionRedisRepository(rdb), nil
	case config.SessionStoreDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return nil, err
		}
		return repository.NewSessionDynamoRepository(ddb, cfg.DynamoDB.Table), nil
	default:
		return nil, fmt.Errorf("unknown session store %q", cfg.Session.Store)
	}
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Errorf("[server][http] recovered from panic path=%s err=%v", c.Request.URL.Path, recovered)
		c.AbortWithStatus(500)
	}))
}
