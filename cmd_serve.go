package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"sync"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"pipetrak/config"
	_ "pipetrak/docs"
	"pipetrak/handlers"
	"pipetrak/progress"
	"pipetrak/repository"
	"pipetrak/services"
	"pipetrak/storage"
)

func serveCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if port != "" {
				cfg.ServerPort = port
			}
			if err := cfg.RequireServer(); err != nil {
				return err
			}
			return runServe(cfg)
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "HTTP port (overrides PORT)")
	return cmd
}

// CORSConfig allows the configured front-end origins.
func CORSConfig(origins []string) cors.Config {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = origins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{
		"Content-Type", "Content-Length", "Accept-Encoding", "Accept",
		"Origin", "X-Requested-With", "Authorization", "Cache-Control",
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "HEAD"}
	corsConfig.ExposeHeaders = []string{
		"Content-Length", "Content-Type", "Content-Disposition", "X-Archive-Name",
	}
	corsConfig.MaxAge = 12 * time.Hour
	return corsConfig
}

// loadCatalog returns the catalog file at path, or the built-in default.
func loadCatalog(path string) (*progress.WeightCatalog, error) {
	if path == "" {
		return progress.DefaultCatalog(), nil
	}
	catalog, err := progress.LoadCatalogFile(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return catalog, nil
}

func safeGo(
	ctx context.Context,
	wg *sync.WaitGroup,
	name string,
	fn func(context.Context) error,
) {
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[cron] PANIC in %s: %v\n%s", name, r, debug.Stack())
			}
		}()

		if err := fn(ctx); err != nil {
			log.Printf("[cron] %s failed: %v", name, err)
		} else {
			log.Printf("[cron] %s completed successfully", name)
		}
	}()
}

func runServe(cfg *config.Config) error {
	db, err := storage.InitDB(cfg.DB)
	if err != nil {
		return err
	}
	defer db.Close()

	gormDB, err := storage.InitGormDB(cfg.DB, cfg.GormLogLevel)
	if err != nil {
		return err
	}

	catalog, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		return err
	}
	log.Printf("[catalog] %d component types loaded", len(catalog.Types()))

	archive, err := services.NewExportArchive(cfg.ExportDir, cfg.ExportRetention)
	if err != nil {
		return err
	}
	log.Printf("[export] archiving exports in %s for %s", archive.Dir(), cfg.ExportRetention)

	mailer := services.NewEmailService(cfg.SMTP)
	if !mailer.Enabled() {
		log.Println("[email] SMTP_HOST/SMTP_FROM not set, report e-mail is disabled")
	}

	weights := repository.NewWeightOverrideRepository(gormDB)
	reports := services.NewReportService(repository.NewComponentRepository(db), weights, catalog)

	// Purge expired exports on schedule
	c := cron.New(
		cron.WithLogger(cron.VerbosePrintfLogger(log.New(os.Stdout, "cron: ", log.LstdFlags))),
	)
	var jobs sync.WaitGroup
	_, err = c.AddFunc(cfg.ExportPurgeSchedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()
		var wg sync.WaitGroup
		safeGo(ctx, &wg, "ExportArchivePurge", archive.RunPurge)
		wg.Wait()
	})
	if err != nil {
		return fmt.Errorf("schedule export purge %q: %w", cfg.ExportPurgeSchedule, err)
	}
	c.Start()

	// Clear anything left over from before a restart
	safeGo(context.Background(), &jobs, "ExportArchivePurgeAtStartup", archive.RunPurge)

	r := gin.Default()
	r.Use(cors.New(CORSConfig(cfg.CORSOrigins)))

	handlers.API{
		JWTSecret:     cfg.JWTSecret,
		Reports:       reports,
		Configs:       repository.NewReportConfigRepository(gormDB),
		Weights:       weights,
		Activity:      repository.NewActivityLogRepository(gormDB),
		Archive:       archive,
		Mailer:        mailer,
		ProductPrefix: cfg.ProductPrefix,
	}.Register(r)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serveErr := make(chan error, 1)
	go func() {
		log.Printf("[http] listening on :%s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("start server: %w", err)
		}
	case <-quit:
	}
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Stop scheduling first, then let running jobs finish
	<-c.Stop().Done()
	jobs.Wait()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	log.Println("Server exiting")
	return nil
}
