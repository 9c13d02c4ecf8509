// backend/main.go
package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sqpaloma/novak-sub002/backend/config"
	"github.com/sqpaloma/novak-sub002/backend/controllers"
	"github.com/sqpaloma/novak-sub002/backend/initializers"
	"github.com/sqpaloma/novak-sub002/backend/middleware"
	"github.com/sqpaloma/novak-sub002/backend/models"
	"github.com/sqpaloma/novak-sub002/backend/services"
	"github.com/sqpaloma/novak-sub002/backend/websocket"
)

func init() {
	config.LoadConfig()
	initializers.ConnectToDB()
}

func main() {
	log.Println("Iniciando a migração da base de dados...")
	err := initializers.DB.AutoMigrate(
		&models.Employee{},
		&models.Supplier{},
		&models.Person{},
		&models.Department{},
		&models.Subdepartment{},
		&models.DepartmentPersonLink{},
		&models.WorkItem{},
		&models.AuditLog{},
	)
	if err != nil {
		log.Fatalf("Falha na migração da base de dados: %v", err)
	}

	if err := services.SeedDefaultData(initializers.DB); err != nil {
		log.Fatalf("Falha ao semear a base de dados: %v", err)
	}
	if err := services.SeedAdminEmployee(initializers.DB, services.NewHasher()); err != nil {
		log.Fatalf("Falha ao semear o colaborador admin: %v", err)
	}
	log.Println("Seeding da base de dados concluído com sucesso.")

	go websocket.H.Run()
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	r.POST("/login", controllers.Login)

	api := r.Group("/api")
	api.Use(middleware.RequireAuth)
	{
		api.GET("/ws", websocket.ServeWs)
		api.GET("/capabilities", middleware.RouteGate, controllers.GetCapabilities)
		api.GET("/items", middleware.RequireCapability("dashboard"), controllers.GetItems)
		api.PUT("/user/change-password", controllers.ChangePassword)

		management := api.Group("/management")
		management.Use(middleware.RequireCapability("settings"))
		{
			management.GET("/employees", controllers.GetEmployees)
			management.POST("/employees", controllers.CreateEmployee)
			management.PUT("/employees/:id/reset-password", controllers.AdminResetPassword)

			management.GET("/departments", controllers.GetDepartments)
			management.POST("/departments", controllers.CreateDepartment)
			management.PUT("/departments/:id", controllers.UpdateDepartment)
			management.PUT("/departments/:id/toggle", controllers.ToggleDepartment)
			management.POST("/subdepartments", controllers.CreateSubdepartment)

			management.POST("/people", controllers.CreatePerson)
			management.PUT("/people/:id", controllers.UpdatePerson)
			management.PUT("/people/:id/toggle", controllers.TogglePerson)
			management.GET("/people/:id/supervisors", controllers.GetSupervisorChain)
			management.GET("/people/:id/links", controllers.GetPersonLinks)

			management.POST("/links", controllers.CreateLink)
			management.PUT("/links/:id/toggle", controllers.ToggleLink)

			management.GET("/logs", controllers.GetAuditLogs)
		}
	}

	log.Printf("Iniciando o servidor na porta %s...", config.AppConfig.ServerPort)
	r.Run(":" + config.AppConfig.ServerPort)
}
