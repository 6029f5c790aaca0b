package routes

import (
	"os"
	"strings"

	"github.com/BelskviK/Styler-sub001/config"
	"github.com/BelskviK/Styler-sub001/controllers"
	"github.com/BelskviK/Styler-sub001/models"
	"github.com/BelskviK/Styler-sub001/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	origins := []string{"http://localhost:3000"}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	manageStaff := utils.RequireRole(string(models.RoleAdmin), string(models.RoleSuperadmin))
	authLimiter := utils.NewRateLimiter(5, 10)

	auth := r.Group("/auth")
	{
		auth.POST("/register", authLimiter.Middleware(), controllers.Register)
		auth.POST("/login", authLimiter.Middleware(), controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Appointment routes
		appointments := api.Group("/appointments")
		{
			appointments.GET("", controllers.GetAppointments)
			appointments.POST("", controllers.CreateAppointment)
			appointments.PATCH("/:id/status", controllers.UpdateAppointmentStatus)
			appointments.DELETE("/:id", controllers.DeleteAppointment)
		}

		// Stylist routes
		stylists := api.Group("/stylists")
		{
			stylists.GET("", controllers.GetStylists)
			stylists.POST("", manageStaff, controllers.AddStylist)
			stylists.PUT("/:id", manageStaff, controllers.UpdateStylist)
			stylists.PUT("/:id/services", manageStaff, controllers.AssignServices)
			stylists.DELETE("/:id", manageStaff, controllers.DeleteStylist)
		}

		// Service routes
		services := api.Group("/services")
		{
			services.GET("", controllers.GetServices)
			services.GET("/:id", controllers.GetService)
			services.POST("", manageStaff, controllers.CreateService)
			services.PUT("/:id", manageStaff, controllers.UpdateService)
			services.DELETE("/:id", manageStaff, controllers.DeleteService)
		}

		// Subscription routes
		api.POST("/subscriptions", controllers.CreateSubscription)
	}

	return r
}
