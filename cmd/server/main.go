package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MoAlsharqawy/Sanivita-CRM-sub001/internal/auth"
	"github.com/MoAlsharqawy/Sanivita-CRM-sub001/internal/cache"
	"github.com/MoAlsharqawy/Sanivita-CRM-sub001/internal/database"
	"github.com/MoAlsharqawy/Sanivita-CRM-sub001/internal/handlers"
	"github.com/MoAlsharqawy/Sanivita-CRM-sub001/internal/middleware"
	"github.com/gin-gonic/gin"
)

var Version = "dev"

func main() {
	ctx := context.Background()

	// Platform database (org routing)
	platformURL := os.Getenv("PLATFORM_DATABASE_URL")
	if platformURL == "" {
		log.Fatal("PLATFORM_DATABASE_URL is required")
	}
	platformDB, err := database.NewPlatformDB(ctx, platformURL)
	if err != nil {
		log.Fatalf("Failed to connect to platform database: %v", err)
	}
	defer platformDB.Close()

	orgDBs := database.NewOrgDBManager(platformDB)
	defer orgDBs.Close()

	// JWT service
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}
	jwtService := auth.NewJWTService(jwtSecret, "sanivita-crm")

	// Stats cache (optional; disabled without REDIS_ADDR)
	statsCache := cache.New(os.Getenv("REDIS_ADDR"), 5*time.Minute)
	defer statsCache.Close()

	baseDomain := os.Getenv("BASE_DOMAIN")
	if baseDomain == "" {
		baseDomain = "sanivita-crm.com"
	}

	// Initialize Gin
	r := gin.Default()
	r.Use(middleware.OrgMiddleware(orgDBs, baseDomain))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"version": Version,
		})
	})

	// Version endpoint
	r.GET("/api/version", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"version": Version,
			"service": "sanivita-crm",
		})
	})

	// Root endpoint
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Sanivita CRM API",
			"version": Version,
			"docs":    "/api/docs",
		})
	})

	api := r.Group("/api", middleware.RequireOrg())
	api.POST("/auth/login", handlers.Login(jwtService))

	authed := api.Group("", middleware.RequireAuth(jwtService))
	{
		// Visits and absences
		authed.GET("/visits", handlers.ListVisits)
		authed.POST("/visits", handlers.CreateVisit(statsCache))
		authed.POST("/absences", handlers.CreateAbsence)
		authed.DELETE("/absences/:id", handlers.DeleteAbsence)

		// Rosters
		authed.GET("/doctors", handlers.ListDoctors)
		authed.GET("/regions", handlers.ListRegions)

		// Own weekly plan
		authed.GET("/plan", handlers.GetCurrentPlan)
		authed.PUT("/plan", handlers.SavePlan)
		authed.POST("/plan/submit", handlers.SubmitPlan)
		authed.GET("/plan/pending-doctors", handlers.GetPendingDoctors)

		// Manager approval workflow
		authed.POST("/plans/:rep_id/approve", middleware.RequireManager(), handlers.ApprovePlan)
		authed.POST("/plans/:rep_id/reject", middleware.RequireManager(), handlers.RejectPlan)

		// Weekly grid and dashboards
		authed.GET("/schedule/week", handlers.GetWeekGrid)
		authed.GET("/reports/daily", handlers.GetDailyStats)
		authed.GET("/reports/monthly", handlers.GetMonthlyStats(statsCache))
		authed.GET("/reports/monthly/export", middleware.RequirePaidPlan(), handlers.ExportMonthlyVisits)

		// Off-day configuration
		authed.GET("/settings", handlers.GetSettings)
		authed.PUT("/settings", middleware.RequireManager(), handlers.UpdateSettings)
	}

	// Server configuration
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", port),
		Handler: r,
	}

	// Start server in goroutine
	go func() {
		log.Printf("🚀 Server starting on port %s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Server shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("✅ Server exited")
}
