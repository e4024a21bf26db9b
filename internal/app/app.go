package app

import (
	"os"
	"strings"

	"github.com/subhankar-techs/emp-management/internal/activity"
	"github.com/subhankar-techs/emp-management/internal/leave"
	"github.com/subhankar-techs/emp-management/internal/shared/connection"
	"github.com/subhankar-techs/emp-management/internal/user"

	"github.com/gin-gonic/gin"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

func BuildApp(router *gin.Engine) error {
	logger := zap.L().Named("app")

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	if err := gormDB.AutoMigrate(
		&user.User{},
		&leave.Leave{},
		&activity.Entry{},
	); err != nil {
		return err
	}

	// Redis is optional: without it the department report runs uncached.
	deps := dependencies{gormDB: gormDB}
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb, err := connection.ConnectRedisWithRetry(addr, 5)
		if err != nil {
			return err
		}
		deps.redis = rdb
	} else {
		logger.Info("REDIS_ADDR not set, report caching disabled")
	}

	// Kafka fan-out of the audit trail is optional too.
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		deps.kafkaWriter = &kafkago.Writer{
			Addr:     kafkago.TCP(strings.Split(brokers, ",")...),
			Balancer: &kafkago.LeastBytes{},
		}
		logger.Info("kafka audit publishing enabled", zap.String("brokers", brokers))
	}

	if err := seedSuperAdmin(gormDB); err != nil {
		return err
	}

	return registerModules(router, deps)
}
