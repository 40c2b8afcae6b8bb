package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"employeehub/cache"
	"employeehub/db"
	_ "employeehub/docs" // Swagger docs
	"employeehub/handlers"
	"employeehub/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	// Audit trail
	audit, err := db.New(cfg.AuditDBPath)
	if err != nil {
		return fmt.Errorf("failed to initialize audit store: %w", err)
	}
	defer audit.Close()

	// Employees database
	database, err := service.NewDatabase(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	pipeline, aiService, err := newPipeline(cfg, database)
	if err != nil {
		return err
	}
	defer aiService.Close()

	// Metadata cache, shared through Redis when configured
	var store cache.Store = cache.New()
	if cfg.Redis.Host != "" {
		redisStore, err := cache.NewRedis(cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.Username, cfg.Redis.Password)
		if err != nil {
			log.Printf("Warning: %v, falling back to in-memory cache", err)
		} else {
			defer redisStore.Close()
			store = redisStore
		}
	}

	var notifier service.ChangeNotifier
	if cfg.Mail.Enabled() {
		notifier = service.NewMailNotifier(cfg.Mail)
	} else {
		log.Println("SMTP not configured, change notifications are disabled")
	}
	employees := service.NewEmployeeService(database, audit, notifier)

	deps := handlers.Dependencies{
		Employees: employees,
		Searcher:  pipeline,
		Audit:     audit,
		Cache:     store,
		Info: handlers.SystemInfo{
			Model:        aiService.ModelName(),
			LLMProvider:  aiService.Provider(),
			Engine:       database.Engine(),
			DatabaseName: database.Name(),
		},
		SearchTimeout: cfg.Search.Timeout,
		DatabaseUp:    database.IsConnected,
	}
	if model := loadPredictor(cfg.ModelPath); model != nil {
		deps.Predictor = model
	}
	h := handlers.New(deps)

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), handlers.RequestID())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-User-ID", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	h.Register(r)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case <-quit:
	}

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Println("Server exiting")
	return nil
}
