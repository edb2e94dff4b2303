package router

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/dineres/booking-backend/controllers"
	"github.com/dineres/booking-backend/integration"
	"github.com/dineres/booking-backend/middlewares"
	"github.com/dineres/booking-backend/repositories"
	"github.com/dineres/booking-backend/services"
)

// SetupRouter wires repositories, services and controllers and registers the
// route table. /auth, /ping and /metrics are public; everything under /api
// requires a bearer token issued by the auth workflow.
func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestIDMiddleware())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.MetricsMiddleware())

	userRepo := repositories.NewUserRepository(db)
	tableRepo := repositories.NewTableRepository(db)
	reservationRepo := repositories.NewReservationRepository(db)
	adminRepo := repositories.NewAdminRepository(db)

	crm := integration.NewCRMNotifier(os.Getenv("CRM_URL"))
	gastro := integration.NewGastroNotifier(os.Getenv("GASTRO_URL"))

	userCtrl := controllers.NewUserController(services.NewUserService(userRepo))
	tableCtrl := controllers.NewTableController(services.NewTableService(tableRepo))
	reservationCtrl := controllers.NewReservationController(
		services.NewReservationService(reservationRepo, tableRepo, userRepo, crm, gastro))
	authCtrl := controllers.NewAuthController(services.NewAuthService(adminRepo))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	auth := r.Group("/auth")
	auth.Use(middlewares.LoginRateLimiter())
	{
		auth.POST("/register", authCtrl.Register)
		auth.POST("/login", authCtrl.Login)
	}

	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/reservations/available", reservationCtrl.CheckAvailability)
		api.POST("/reservations", reservationCtrl.CreateReservation)
		api.GET("/reservations", reservationCtrl.GetAllReservations)

		api.GET("/tables", tableCtrl.GetAllTables)
		api.POST("/tables", tableCtrl.CreateTable)
		api.GET("/tables/number/:number", tableCtrl.GetTableByNumber)
		api.GET("/tables/exists/number/:number", tableCtrl.CheckTableExistsByNumber)
		api.GET("/tables/exists/:table_id", tableCtrl.CheckTableExists)
		api.GET("/tables/:table_id", tableCtrl.GetTableByID)
		api.PUT("/tables/:table_id", tableCtrl.UpdateTable)
		api.DELETE("/tables/:table_id", tableCtrl.DeleteTable)

		api.GET("/users", userCtrl.GetAllUsers)
		api.POST("/users", userCtrl.CreateUser)
		api.GET("/users/email/:email", userCtrl.GetUserByEmail)
		api.GET("/users/email/:email/exists", userCtrl.CheckUserExistsByEmail)
		api.GET("/users/:user_id", userCtrl.GetUserByID)
		api.GET("/users/:user_id/exists", userCtrl.CheckUserExists)
		api.PUT("/users/:user_id", userCtrl.UpdateUser)
		api.DELETE("/users/:user_id", userCtrl.DeleteUser)
	}

	return r
}
