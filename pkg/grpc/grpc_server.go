package grpc

//go:generate protoc --proto_path=farm_service --go_out=farm_service --go_opt=paths=source_relative --go-grpc_out=farm_service --go-grpc_opt=paths=source_relative farm_service.proto

import (
	"golang.org/x/time/rate"
	pb "liyu1981.xyz/farm-sustainability-service/pkg/grpc/farm_service"

	"liyu1981.xyz/farm-sustainability-service/pkg/farm"
	"liyu1981.xyz/farm-sustainability-service/pkg/observability"
)

type FarmServer struct {
	Farm             *farm.Farm
	RateLimiterStore *farm.RateLimiterStore
	Metrics          *observability.Metrics
	pb.UnimplementedFarmServiceServer
}

func (s *FarmServer) GetLimiter(farmID string) *rate.Limiter {
	if s.RateLimiterStore == nil {
		return nil
	} else {
		return s.RateLimiterStore.GetLimiter(farmID)
	}
}

func (s *FarmServer) CheckFarmLimiter(farmID string) bool {
	limiter := s.GetLimiter(farmID)
	if limiter == nil {
		return true
	}
	if limiter.Allow() {
		return true
	}
	if s.Metrics != nil {
		s.Metrics.RateLimited.Inc()
	}
	return false
}
