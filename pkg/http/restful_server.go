package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
	"liyu1981.xyz/farm-sustainability-service/pkg/farm"
	"liyu1981.xyz/farm-sustainability-service/pkg/observability"
)

type RestfulServer struct {
	Server           *gin.Engine
	Farm             *farm.Farm
	RateLimiterStore *farm.RateLimiterStore
	Metrics          *observability.Metrics
	// Gatherer backs /metrics; nil means the default registry.
	Gatherer prometheus.Gatherer
}

func (rs *RestfulServer) GetLimiter(farmID string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(farmID)
	}
}

func (rs *RestfulServer) CheckFarmLimiter(farmID string) bool {
	limiter := rs.GetLimiter(farmID)
	if limiter == nil {
		return true
	}
	if limiter.Allow() {
		return true
	}
	if rs.Metrics != nil {
		rs.Metrics.RateLimited.Inc()
	}
	return false
}

func (rs *RestfulServer) SetLimiter(farmID string, farmRate float64, farmBurst int) {
	if rs.RateLimiterStore == nil {
		return
	}
	rs.RateLimiterStore.SetLimiter(farmID, rate.Limit(farmRate), farmBurst)
}

func (rs *RestfulServer) metricsHandler() gin.HandlerFunc {
	gatherer := rs.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)
	rs.Server.GET("/metrics", rs.metricsHandler())

	rs.Server.GET("/farms", rs.ListFarms)
	rs.Server.POST("/scores/run", rs.RunBatchScoring)

	farms := rs.Server.Group("/farms/:farm_id")
	{
		farms.POST("", rs.UpsertFarm)
		farms.POST("/readings", rs.PostReading)
		farms.GET("/readings/live", rs.GetLiveReadings)
		farms.POST("/score", rs.CalculateScore)
		farms.GET("/score", rs.GetLatestScore)
		farms.GET("/scores", rs.GetScoreHistory)
		farms.POST("/fire-risk", rs.PostFireRisk)
		farms.GET("/fire-risk", rs.GetLatestFireRisk)
		farms.GET("/dashboard", rs.GetDashboard)
		farms.POST("/limiter", rs.PostLimiter)
	}
}
