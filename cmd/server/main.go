// @title           Consulting Site Backend API
// @version         1.0.0
// @description     Backend API for the consulting company website: public pages (services, projects, jobs, contact) and an admin area for team members, services, projects, job applications and contact messages, backed by Supabase Postgres and Storage.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "consulting-site-backend/docs"
	"consulting-site-backend/internal/config"
	"consulting-site-backend/internal/database"
	"consulting-site-backend/internal/handlers"
	"consulting-site-backend/internal/logger"
	"consulting-site-backend/internal/middleware"
	"consulting-site-backend/internal/services"
	"consulting-site-backend/internal/store"
	"consulting-site-backend/internal/supabase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	logger.Init(cfg.Environment)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Supabase clients
	supabaseClient, err := supabase.NewClient(cfg)
	if err != nil {
		logger.L().Fatal("failed to initialize supabase client", zap.Error(err))
	}

	storageClient, err := supabase.NewStorageClient(cfg.SupabaseURL, cfg.SupabasePublishableKey)
	if err != nil {
		logger.L().Fatal("failed to initialize storage client", zap.Error(err))
	}

	realtimeClient := supabase.NewRealtimeClient(supabaseClient.Supabase)

	// Migrations
	migrator, err := database.NewMigrator(cfg.DatabaseURL)
	if err != nil {
		logger.L().Fatal("failed to initialize migrator", zap.Error(err))
	}
	if err := migrator.Run(); err != nil {
		logger.L().Fatal("migration failed", zap.Error(err))
	}
	migrator.Close()

	// Record store
	recordStore, err := store.New(cfg.DatabaseURL)
	if err != nil {
		logger.L().Fatal("failed to initialize record store", zap.Error(err))
	}
	defer recordStore.Close()

	// Persistence services
	teamService := services.NewTeamService(recordStore, storageClient, cfg.Buckets.TeamImages)
	catalogService := services.NewCatalogService(recordStore, storageClient, cfg.Buckets.ServiceImages)
	projectService := services.NewProjectService(recordStore, storageClient, cfg.Buckets.ProjectImages, cfg.Buckets.ProjectReports)
	applicationService := services.NewApplicationService(recordStore, storageClient, cfg.Buckets.ApplicationCVs)
	messageService := services.NewMessageService(recordStore)

	// Change feed: any change event on a collection bumps its revision,
	// which paginated list responses expose so open sessions re-fetch.
	revisions := handlers.NewRevisions()
	for _, collection := range []string{"team_members", "services", "projects", "job_applications", "contact_messages"} {
		collection := collection
		realtimeClient.Subscribe(collection, func() {
			revisions.Bump(collection)
		})
	}

	// Handlers
	teamHandler := handlers.NewTeamHandler(teamService, revisions)
	catalogHandler := handlers.NewCatalogHandler(catalogService, revisions)
	projectsHandler := handlers.NewProjectsHandler(projectService, revisions)
	applicationsHandler := handlers.NewApplicationsHandler(applicationService, revisions)
	messagesHandler := handlers.NewMessagesHandler(messageService, revisions)
	jobsHandler := handlers.NewJobsHandler(recordStore)
	dashboardHandler := handlers.NewDashboardHandler(recordStore)
	changeFeedHandler := handlers.NewChangeFeedHandler(realtimeClient)

	// Router
	router := gin.New()
	router.Use(middleware.RequestLogger())
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", handlers.HealthHandler)

	api := router.Group("/api/v1")

	// Public site
	api.GET("/services", catalogHandler.ListPublic)
	api.GET("/team", teamHandler.ListPublic)
	api.GET("/projects", projectsHandler.ListPublic)
	api.GET("/jobs", jobsHandler.List)
	api.POST("/applications", applicationsHandler.Submit)
	api.POST("/contact", messagesHandler.Submit)

	// Supabase database webhook for the change feed
	api.POST("/internal/changefeed", changeFeedHandler.Handle)

	// Admin back-office
	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(cfg))

	admin.GET("/dashboard", dashboardHandler.Get)

	admin.GET("/team", teamHandler.List)
	admin.POST("/team", teamHandler.Create)
	admin.PUT("/team/:id", teamHandler.Update)
	admin.DELETE("/team/:id", teamHandler.Delete)

	admin.GET("/services", catalogHandler.List)
	admin.POST("/services", catalogHandler.Create)
	admin.PUT("/services/:id", catalogHandler.Update)
	admin.DELETE("/services/:id", catalogHandler.Delete)

	admin.GET("/projects", projectsHandler.List)
	admin.POST("/projects", projectsHandler.Create)
	admin.PUT("/projects/:id", projectsHandler.Update)
	admin.DELETE("/projects/:id", projectsHandler.Delete)

	admin.GET("/applications", applicationsHandler.List)
	admin.PATCH("/applications/:id/status", applicationsHandler.UpdateStatus)
	admin.DELETE("/applications/:id", applicationsHandler.Delete)

	admin.GET("/messages", messagesHandler.List)
	admin.DELETE("/messages/:id", messagesHandler.Delete)

	logger.Info("server starting", zap.String("port", cfg.Port))
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}
