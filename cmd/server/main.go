package main

import (
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/anasbendaikha-blip/baggplanning-sub000/pkg/auth"
	"github.com/anasbendaikha-blip/baggplanning-sub000/pkg/database"
	"github.com/anasbendaikha-blip/baggplanning-sub000/pkg/handlers"
	"github.com/anasbendaikha-blip/baggplanning-sub000/pkg/roster"
	"github.com/anasbendaikha-blip/baggplanning-sub000/pkg/timerange"
)

func main() {
	// Load .env if it exists
	// Try root and parent directories for flexibility
	envPaths := []string{".env", "../.env", "../../.env"}
	for _, p := range envPaths {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Load(p)
			break
		}
	}

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	db := database.InitDB()
	_ = auth.EnsureAdminExists(db)
	h := &handlers.Handler{DB: db, CoverageRule: coverageRuleFromEnv()}

	r := gin.Default()

	// Routes
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Pharmacy Planning API",
			"version": "1.0.0",
		})
	})

	r.POST("/login", h.Login)

	// Authenticated endpoints: roster views, availability, requests
	api := r.Group("/api")
	api.Use(h.AuthMiddleware())
	{
		api.GET("/roster", h.GetRoster)
		api.GET("/roster/coverage", h.Coverage)
		api.GET("/roster/hours", h.Hours)
		api.GET("/employees/:id/availability", h.GetAvailability)
		api.PUT("/employees/:id/availability", h.PutAvailability)
		api.POST("/requests", h.CreateRequest)
		api.GET("/requests", h.ListRequests)
		api.GET("/guards", h.ListGuards)
	}

	// Administrative endpoints: staff records and roster mutations
	admin := r.Group("/admin")
	admin.Use(h.AuthMiddleware(), h.AdminOnly())
	{
		admin.POST("/employees", h.CreateEmployee)
		admin.GET("/employees", h.ListEmployees)
		admin.PUT("/employees/:id", h.UpdateEmployee)
		admin.DELETE("/employees/:id", h.DeleteEmployee)

		admin.POST("/roster/seed", h.SeedWeek)
		admin.POST("/roster/assign", h.Assign)
		admin.POST("/roster/assign/override", h.AssignOverride)
		admin.DELETE("/roster/assign", h.Unassign)
		admin.GET("/roster/export", h.ExportWeek)

		admin.POST("/requests/:id/approve", h.ApproveRequest)
		admin.POST("/requests/:id/refuse", h.RefuseRequest)

		admin.POST("/guards/rotation", h.SeedRotation)
		admin.PUT("/guards/:id/assign", h.AssignGuardRefs)
		admin.POST("/guards/:id/validate", h.ValidateGuard)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	log.Printf("Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("could not run server: %v", err)
	}
}

// coverageRuleFromEnv reads the peak-window staffing policy, falling
// back to the 16:00-18:00 / 2 default
func coverageRuleFromEnv() roster.CoverageRule {
	rule := roster.DefaultCoverageRule()

	if window := os.Getenv("PEAK_WINDOW"); window != "" {
		rng, err := timerange.ParseRange(window)
		if err != nil {
			log.Fatalf("invalid PEAK_WINDOW: %v", err)
		}
		rule.PeakStart = rng.Start
		rule.PeakEnd = rng.End
	}
	if raw := os.Getenv("PEAK_MIN_STAFF"); raw != "" {
		min, err := strconv.Atoi(raw)
		if err != nil || min < 1 {
			log.Fatalf("invalid PEAK_MIN_STAFF: %s", raw)
		}
		rule.MinStaff = min
	}
	return rule
}
