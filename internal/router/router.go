package router

import (
	"time"

	"essencia/internal/config"
	"essencia/internal/handler"
	"essencia/internal/middleware"
	"essencia/internal/repository"
	"essencia/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(cfg.RateLimitPerMinute, time.Minute))

	// ── Repositories ─────────────────────────────────────────────────────────
	inventoryRepo := repository.NewInventoryRepository(db)
	movementRepo := repository.NewStockMovementRepository(db)
	fragranceRepo := repository.NewFragranceRepository(db)
	productRepo := repository.NewProductRepository(db)
	bannerRepo := repository.NewBannerRepository(db)
	marqueeRepo := repository.NewMarqueeRepository(db)
	assetRepo := repository.NewAssetRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	inventorySvc := service.NewInventoryService(inventoryRepo, movementRepo, fragranceRepo, productRepo)
	fragranceSvc := service.NewFragranceService(fragranceRepo, inventoryRepo)
	productSvc := service.NewProductService(productRepo, inventoryRepo)
	bannerSvc := service.NewBannerService(bannerRepo, marqueeRepo)
	assetSvc := service.NewAssetService(assetRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	inventoryH := handler.NewInventoryHandler(inventorySvc, rdb, cfg.StatsCacheTTL())
	fragrancesH := handler.NewFragrancesHandler(fragranceSvc)
	productsH := handler.NewProductsHandler(productSvc)
	bannersH := handler.NewBannersHandler(bannerSvc)
	assetsH := handler.NewAssetsHandler(assetSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb))

	v1 := r.Group("/v1")
	{
		inv := v1.Group("/inventory")
		{
			inv.GET("", inventoryH.List)
			inv.POST("", inventoryH.Create)
			inv.GET("/stats", inventoryH.Stats)
			inv.GET("/:id", inventoryH.GetByID)
			inv.PUT("/:id", inventoryH.Update)
			inv.DELETE("/:id", inventoryH.Delete)
			inv.POST("/:id/adjust", inventoryH.Adjust)
		}

		v1.GET("/stock-movements", inventoryH.ListMovements)

		frags := v1.Group("/fragrances")
		{
			frags.GET("", fragrancesH.List)
			frags.POST("", fragrancesH.Create)
			frags.GET("/:id", fragrancesH.GetByID)
			frags.PUT("/:id", fragrancesH.Update)
			frags.DELETE("/:id", fragrancesH.Delete)
		}

		prods := v1.Group("/products")
		{
			prods.GET("", productsH.List)
			prods.POST("", productsH.Create)
			prods.GET("/:id", productsH.GetByID)
			prods.PUT("/:id", productsH.Update)
			prods.DELETE("/:id", productsH.Delete)
		}

		banners := v1.Group("/banners")
		{
			banners.GET("", bannersH.List)
			banners.POST("", bannersH.Create)
			banners.GET("/active", bannersH.Active)
			banners.GET("/:id", bannersH.GetByID)
			banners.PUT("/:id", bannersH.Update)
			banners.DELETE("/:id", bannersH.Delete)
		}

		marquee := v1.Group("/marquee")
		{
			marquee.GET("", bannersH.ListMarquee)
			marquee.POST("", bannersH.CreateMarquee)
			marquee.GET("/active", bannersH.ActiveMarquee)
			marquee.PUT("/:id", bannersH.UpdateMarquee)
			marquee.DELETE("/:id", bannersH.DeleteMarquee)
		}

		assets := v1.Group("/assets")
		{
			assets.GET("", assetsH.List)
			assets.POST("", assetsH.Create)
			assets.GET("/stats", assetsH.Stats)
			assets.GET("/:id", assetsH.GetByID)
			assets.PUT("/:id", assetsH.Update)
			assets.PUT("/:id/usage", assetsH.UpdateUsage)
			assets.DELETE("/:id", assetsH.Delete)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
