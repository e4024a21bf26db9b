package app

import (
	"net/http"

	"github.com/subhankar-techs/emp-management/internal/activity"
	"github.com/subhankar-techs/emp-management/internal/auth"
	"github.com/subhankar-techs/emp-management/internal/employee"
	"github.com/subhankar-techs/emp-management/internal/leave"
	"github.com/subhankar-techs/emp-management/internal/middleware"
	"github.com/subhankar-techs/emp-management/internal/report"
	"github.com/subhankar-techs/emp-management/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"gorm.io/gorm"
)

type dependencies struct {
	gormDB      *gorm.DB
	redis       *redis.Client
	kafkaWriter *kafkago.Writer
}

func registerModules(router *gin.Engine, deps dependencies) error {
	db, err := deps.gormDB.DB()
	if err != nil {
		return err
	}

	// --- Repositories ---
	userRepo := user.NewRepository(deps.gormDB)
	leaveRepo := leave.NewRepository(deps.gormDB)
	activityRepo := activity.NewRepository(deps.gormDB)
	reportRepo := report.NewRepository(deps.gormDB)

	// --- Audit trail ---
	recorder := activity.NewRecorder(activityRepo)
	if deps.kafkaWriter != nil {
		recorder = recorder.WithPublisher(activity.NewKafkaPublisher(deps.kafkaWriter))
	}

	// --- Services ---
	authService := auth.NewService(userRepo, recorder)
	employeeService := employee.NewService(userRepo, recorder)
	leaveService := leave.NewService(db, leaveRepo, recorder)
	reportService := report.NewService(reportRepo, leaveRepo, userRepo, activityRepo, deps.redis)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	employeeHandler := employee.NewHandler(employeeService)
	leaveHandler := leave.NewHandler(leaveService)
	reportHandler := report.NewHandler(reportService)

	authn := middleware.AuthMiddleware(userRepo)

	// --- Routes ---
	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"success": true, "message": "OK"})
		})

		auth.RegisterRoutes(api, authHandler, authn)
		employee.RegisterRoutes(api, employeeHandler, authn)
		leave.RegisterRoutes(api, leaveHandler, authn)
		report.RegisterRoutes(api, reportHandler, authn)
	}

	return nil
}
