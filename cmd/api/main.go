package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/swiftshop/swiftshop-api/internal/config"
	"github.com/swiftshop/swiftshop-api/internal/gateway"
	"github.com/swiftshop/swiftshop-api/internal/handler"
	"github.com/swiftshop/swiftshop-api/internal/middleware"
	"github.com/swiftshop/swiftshop-api/internal/repository"
	"github.com/swiftshop/swiftshop-api/internal/service"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		log.Error("load config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// MongoDB
	connectCtx, connectCancel := context.WithTimeout(ctx, 10*time.Second)
	defer connectCancel()

	clientOpts := options.Client().
		ApplyURI(cfg.Mongo.URI).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))
	mongoClient, err := mongo.Connect(connectCtx, clientOpts)
	if err != nil {
		log.Error("connect to MongoDB", "error", err)
		os.Exit(1)
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()

	if err := mongoClient.Ping(connectCtx, readpref.Primary()); err != nil {
		log.Error("ping MongoDB", "error", err)
		os.Exit(1)
	}
	log.Info("connected to MongoDB")

	db := mongoClient.Database(cfg.Mongo.Database)

	// Redis (optional product cache)
	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Error("connect to Redis", "error", err)
			os.Exit(1)
		}
		log.Info("connected to Redis")
	}

	// Repositories
	userRepo := repository.NewUserRepository(db.Collection("users"))
	productRepo := repository.NewProductRepository(db.Collection("products"))
	cartRepo := repository.NewCartRepository(db.Collection("carts"))
	orderRepo := repository.NewOrderRepository(db.Collection("orders"))
	paymentRepo := repository.NewPaymentRepository(db.Collection("payments"))
	reviewRepo := repository.NewReviewRepository(db.Collection("reviews"))
	featureRepo := repository.NewFeatureRepository(db.Collection("features"))
	blogRepo := repository.NewBlogRepository(db.Collection("blogs"))

	// Services
	authSvc := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration)
	userSvc := service.NewUserService(userRepo)
	productSvc := service.NewProductService(productRepo, redisClient)
	cartSvc := service.NewCartService(cartRepo)
	orderSvc := service.NewOrderService(orderRepo)
	paymentSvc := service.NewPaymentService(paymentRepo, gateway.NewStripeGateway(cfg.Stripe.SecretKey))
	contentSvc := service.NewContentService(reviewRepo, featureRepo, blogRepo)

	// Handlers
	authH := handler.NewAuthHandler(authSvc, cfg.JWT.Expiration, cfg.Server.CookieSecure)
	userH := handler.NewUserHandler(userSvc)
	productH := handler.NewProductHandler(productSvc)
	cartH := handler.NewCartHandler(cartSvc)
	orderH := handler.NewOrderHandler(orderSvc)
	paymentH := handler.NewPaymentHandler(paymentSvc, log)
	contentH := handler.NewContentHandler(contentSvc)
	healthH := handler.NewHealthHandler(mongoClient, redisClient)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	router.GET("/", healthH.Root)
	router.GET("/healthz", healthH.Healthz)
	router.GET("/readyz", healthH.Readyz)

	v1 := router.Group("/swiftshop/api/v1")
	{
		v1.POST("/jwt", authH.IssueToken)
		v1.GET("/logout", authH.Logout)

		v1.POST("/users", userH.Save)
		v1.GET("/add-products", productH.List)
		v1.GET("/products-count", productH.Count)
		v1.GET("/reviews", contentH.ListReviews)
		v1.GET("/features", contentH.ListFeatures)
		v1.GET("/features/:id", contentH.GetFeature)
		v1.GET("/blogs", contentH.ListBlogs)
		v1.GET("/blogs/:id", contentH.GetBlog)

		authed := v1.Group("", middleware.AuthRequired(cfg.JWT.Secret))
		{
			authed.POST("/carts", cartH.AddItem)
			authed.GET("/carts", cartH.List)
			authed.PATCH("/carts/:id", cartH.UpdateItem)
			authed.DELETE("/carts/:id", cartH.DeleteItem)

			authed.POST("/orders", orderH.Create)
			authed.GET("/orders", orderH.List)
			authed.GET("/orders/:id", orderH.GetByID)
			authed.PUT("/orders/:id", orderH.Update)

			authed.POST("/create-payment-intent", paymentH.CreateIntent)
			authed.POST("/payment", paymentH.Record)
			authed.GET("/payment", paymentH.ListSucceeded)

			authed.POST("/reviews", contentH.CreateReview)
			authed.GET("/users/:email", userH.GetByEmail)

			admin := authed.Group("", middleware.AdminOnly())
			{
				admin.POST("/add-products", productH.Create)
				admin.PUT("/add-products/:id", productH.Update)

				admin.GET("/all-orders", orderH.ListAll)
				admin.PATCH("/orders/:id", orderH.SetStatus)

				admin.GET("/delivered-product", paymentH.ListDelivered)
				admin.GET("/pending-product", paymentH.ListPending)
				admin.GET("/payments", paymentH.ListPaged)
				admin.PATCH("/payments/:id", paymentH.Update)

				admin.GET("/users", userH.List)
				admin.GET("/users-count", userH.Count)
				admin.PUT("/users/:id", userH.Update)
				admin.PATCH("/users/:id", userH.ChangeRole)
				admin.DELETE("/users/:id", userH.Delete)

				admin.DELETE("/features/:id", contentH.DeleteFeature)
			}
		}
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info("starting HTTP server", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown", "error", err)
	}

	log.Info("server stopped")
}
