package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/proto"
	"liyu1981.xyz/farm-sustainability-service/pkg/common"
	"liyu1981.xyz/farm-sustainability-service/pkg/db"
	"liyu1981.xyz/farm-sustainability-service/pkg/events"
	"liyu1981.xyz/farm-sustainability-service/pkg/farm"
	farmGrpc "liyu1981.xyz/farm-sustainability-service/pkg/grpc"
	pb "liyu1981.xyz/farm-sustainability-service/pkg/grpc/farm_service"
	farmHttp "liyu1981.xyz/farm-sustainability-service/pkg/http"
	"liyu1981.xyz/farm-sustainability-service/pkg/observability"
	"liyu1981.xyz/farm-sustainability-service/pkg/scheduler"
	"liyu1981.xyz/farm-sustainability-service/pkg/scoring"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file loaded, using process environment only")
	}

	settings, err := common.LoadSettings()
	if err != nil {
		log.Fatal(err)
	}

	logger := common.GetLogger()

	engineConfig := scoring.DefaultConfig()
	if settings.ScoreWeights == common.WeightsLegacy {
		logger.Warn("Scoring with the deprecated legacy weight set")
		engineConfig = scoring.LegacyConfig()
	}
	engine, err := scoring.NewEngine(engineConfig)
	if err != nil {
		log.Fatalf("invalid scoring configuration: %v", err)
	}

	var publisher events.Publisher = events.NopPublisher{}
	if settings.KafkaEnabled() {
		publisher = events.NewKafkaPublisher(settings.KafkaBrokers, settings.KafkaTopic)
		logger.Info("Publishing records to kafka",
			zap.Strings("brokers", settings.KafkaBrokers),
			zap.String("topic", settings.KafkaTopic))
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Warn("Failed to close publisher", zap.Error(err))
		}
	}()

	metrics := observability.NewMetrics()
	clock := clockwork.NewRealClock()

	farmCore := farm.Farm{
		Db:           *db.GetInstance(db.UseDialector(settings.DBType)),
		Engine:       engine,
		Clock:        clock,
		Publisher:    publisher,
		Metrics:      metrics,
		LookbackDays: settings.ScoreLookbackDays,
		Workers:      settings.ScoreWorkers,
		FireTiering:  settings.FireTiering,
	}
	farmCore.WithDefaultServices()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	jobs := scheduler.NewJobScheduler("daily_scoring", settings.ScoreInterval, clock)
	jobs.Metrics = metrics
	jobs.AddJob(scheduler.Job{
		Name: "score_all_farms",
		Run: func(ctx context.Context) error {
			_, err := farmCore.Score.ScoreAllFarms(ctx)
			return err
		},
	})
	go jobs.Run(ctx)

	var grpcServer *grpc.Server
	if settings.GRPCHostPort != "" {
		farmGrpcServer := farmGrpc.FarmServer{
			Farm:             &farmCore,
			RateLimiterStore: farm.NewRateLimiterStore(rate.Limit(settings.DefaultRate), settings.DefaultBurst),
			Metrics:          metrics,
		}
		interceptor := farmGrpcServer.CreateRateLimitInterceptor([]proto.Message{
			&pb.FarmRequest{},
			&pb.AssessFireRiskRequest{},
		})
		grpcServer = grpc.NewServer(grpc.UnaryInterceptor(interceptor))
		pb.RegisterFarmServiceServer(grpcServer, &farmGrpcServer)
		logger.Info("gRPC server created with:",
			zap.String("default_limiter",
				fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", settings.DefaultRate, settings.DefaultBurst)))

		listener, err := net.Listen("tcp", settings.GRPCHostPort)
		if err != nil {
			log.Fatalf("failed to listen: %v", err)
		}

		go func() {
			logger.Info("Starting gRPC server on: " + settings.GRPCHostPort)
			if err := grpcServer.Serve(listener); err != nil {
				log.Fatalf("grpc server failed to serve: %v", err)
			}
		}()
	}

	rs := &farmHttp.RestfulServer{
		Server:           gin.Default(),
		Farm:             &farmCore,
		RateLimiterStore: farm.NewRateLimiterStore(rate.Limit(settings.DefaultRate), settings.DefaultBurst),
		Metrics:          metrics,
	}
	rs.Setup()

	logger.Info("http server created with:",
		zap.String("default_limiter",
			fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", settings.DefaultRate, settings.DefaultBurst)),
		zap.Duration("score_interval", settings.ScoreInterval),
		zap.String("score_weights", settings.ScoreWeights),
		zap.String("fire_tiering", settings.FireTiering))

	srv := &http.Server{
		Addr:    settings.HTTPHostPort,
		Handler: rs.Server,
	}

	go func() {
		logger.Info("Starting HTTP server on: " + settings.HTTPHostPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server failed to serve: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down", zap.Duration("timeout", settings.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), settings.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown failed", zap.Error(err))
	}
	if grpcServer != nil {
		grpcServer.GracefulStop()
	}
}
