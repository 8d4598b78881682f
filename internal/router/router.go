package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"hrms-lite/internal/handlers"
	"hrms-lite/internal/repository"
)

func Setup(r *gin.Engine, pool *pgxpool.Pool) {
	// Open policy: the API serves browser frontends on arbitrary origins.
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "Authorization"},
	}))

	employees := repository.NewEmployeeRepository(pool)
	attendance := repository.NewAttendanceRepository(pool)
	dashboard := repository.NewDashboardRepository(pool)

	eh := handlers.NewEmployeeHandler(employees)
	ah := handlers.NewAttendanceHandler(attendance, employees)
	dh := handlers.NewDashboardHandler(dashboard)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "HRMS Lite API is running"})
	})

	// Simple health check (also verifies DB connectivity)
	r.GET("/health", func(c *gin.Context) {
		var one int
		if err := pool.QueryRow(c.Request.Context(), "select 1").Scan(&one); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "db_error", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	emp := api.Group("/employees")
	emp.GET("/", eh.ListEmployees)
	emp.POST("/", eh.CreateEmployee)
	emp.GET("/:id", eh.GetEmployee)
	emp.DELETE("/:id", eh.DeleteEmployee)

	att := api.Group("/attendance")
	att.GET("/recent", ah.RecentAttendance)
	att.POST("/", ah.MarkAttendance)
	att.GET("/:id", ah.GetEmployeeAttendance)

	api.GET("/dashboard/", dh.GetDashboard)
}
