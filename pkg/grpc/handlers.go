package grpc

import (
	"context"
	"fmt"
	"maps"
	"slices"

	z "github.com/Oudwins/zog"
	"golang.org/x/time/rate"
	"google.golang.org/protobuf/types/known/timestamppb"
	"liyu1981.xyz/farm-sustainability-service/pkg/common"
	pb "liyu1981.xyz/farm-sustainability-service/pkg/grpc/farm_service"
	"liyu1981.xyz/farm-sustainability-service/pkg/models"
)

func statusOK() *pb.StatusResponse {
	return &pb.StatusResponse{Success: true, Message: "OK"}
}

func validationFailed(err z.ZogIssueList) *pb.StatusResponse {
	return &pb.StatusResponse{Success: false, Message: fmt.Sprintf("validation error: %v", err)}
}

func failed(err error) *pb.StatusResponse {
	return &pb.StatusResponse{Success: false, Message: err.Error()}
}

func validateFarmID(farmID *string) z.ZogIssueList {
	var farmIdValidator = z.String().Min(1).Required()
	return farmIdValidator.Validate(farmID)
}

func componentsToPb(components models.ComponentScores) []*pb.ComponentScore {
	return common.Mapper(slices.Sorted(maps.Keys(components)), func(name models.ComponentName) *pb.ComponentScore {
		return &pb.ComponentScore{Name: string(name), Value: components[name].Value}
	})
}

func scoreToPb(s *models.SustainabilityScore) *pb.SustainabilityScore {
	return &pb.SustainabilityScore{
		Id:                s.ID,
		FarmId:            s.FarmID,
		OverallScore:      int32(s.OverallScore),
		Grade:             string(s.Grade),
		Components:        componentsToPb(s.Components.Data()),
		Recommendations:   s.Recommendations.Data(),
		CalculationMethod: s.CalculationMethod,
		Timestamp:         timestamppb.New(s.Timestamp),
	}
}

func assessmentToPb(a *models.FireRiskAssessment) *pb.FireRiskAssessment {
	return &pb.FireRiskAssessment{
		Id:                  a.ID,
		FarmId:              a.FarmID,
		RiskLevel:           string(a.RiskLevel),
		NearbyCount:         int32(a.NearbyCount),
		HighConfidenceCount: int32(a.HighConfidenceCount),
		ClosestDistanceKm:   a.ClosestDistanceKm,
		Recommendation:      a.Recommendation,
		TieringMethod:       a.TieringMethod,
		Timestamp:           timestamppb.New(a.Timestamp),
	}
}

func farmToPb(f *models.Farm) *pb.Farm {
	if f == nil {
		return nil
	}
	return &pb.Farm{
		Id:           f.ID,
		Name:         f.Name,
		Latitude:     f.Latitude,
		Longitude:    f.Longitude,
		Crop:         f.Crop,
		SoilType:     f.SoilType,
		FarmingType:  f.FarmingType,
		AreaHectares: f.AreaHectares,
		Owner:        f.Owner,
	}
}

// incidentFromPb keeps the raw coordinate and confidence text; malformed
// values are skipped by the fire analysis, not rejected here.
func incidentFromPb(i *pb.FireIncident) models.FireIncident {
	incident := models.FireIncident{
		Latitude:   models.RawValue(i.GetLatitude()),
		Longitude:  models.RawValue(i.GetLongitude()),
		Confidence: models.RawValue(i.GetConfidence()),
	}
	if i.GetAcquiredAt() != nil {
		incident.AcquiredAt = i.GetAcquiredAt().AsTime()
	}
	return incident
}

func (s *FarmServer) CalculateScore(ctx context.Context, req *pb.FarmRequest) (*pb.ScoreResponse, error) {
	if err := validateFarmID(&req.FarmId); err != nil {
		return &pb.ScoreResponse{Status: validationFailed(err)}, nil
	}

	score, err := s.Farm.Score.CalculateAndStoreScore(req.FarmId)
	if err != nil {
		return &pb.ScoreResponse{Status: failed(err)}, nil
	}

	return &pb.ScoreResponse{Status: statusOK(), Score: scoreToPb(score)}, nil
}

func (s *FarmServer) GetLatestScore(ctx context.Context, req *pb.FarmRequest) (*pb.ScoreResponse, error) {
	if err := validateFarmID(&req.FarmId); err != nil {
		return &pb.ScoreResponse{Status: validationFailed(err)}, nil
	}

	score, err := s.Farm.Score.GetLatestScore(req.FarmId)
	if err != nil {
		return &pb.ScoreResponse{Status: failed(err)}, nil
	}

	return &pb.ScoreResponse{Status: statusOK(), Score: scoreToPb(score)}, nil
}

func (s *FarmServer) AssessFireRisk(ctx context.Context, req *pb.AssessFireRiskRequest) (*pb.FireRiskResponse, error) {
	if err := validateFarmID(&req.FarmId); err != nil {
		return &pb.FireRiskResponse{Status: validationFailed(err)}, nil
	}

	assessment, err := s.Farm.Fire.AssessAndStoreFireRisk(req.FarmId, common.Mapper(req.Incidents, incidentFromPb))
	if err != nil {
		return &pb.FireRiskResponse{Status: failed(err)}, nil
	}

	return &pb.FireRiskResponse{Status: statusOK(), Assessment: assessmentToPb(assessment)}, nil
}

func (s *FarmServer) GetLatestFireRisk(ctx context.Context, req *pb.FarmRequest) (*pb.FireRiskResponse, error) {
	if err := validateFarmID(&req.FarmId); err != nil {
		return &pb.FireRiskResponse{Status: validationFailed(err)}, nil
	}

	assessment, err := s.Farm.Fire.GetLatestFireRisk(req.FarmId)
	if err != nil {
		return &pb.FireRiskResponse{Status: failed(err)}, nil
	}

	return &pb.FireRiskResponse{Status: statusOK(), Assessment: assessmentToPb(assessment)}, nil
}

func (s *FarmServer) GetDashboard(ctx context.Context, req *pb.FarmRequest) (*pb.DashboardResponse, error) {
	if err := validateFarmID(&req.FarmId); err != nil {
		return &pb.DashboardResponse{Status: validationFailed(err)}, nil
	}

	dashboard, err := s.Farm.Dashboard.GetDashboard(req.FarmId)
	if err != nil {
		return &pb.DashboardResponse{Status: failed(err)}, nil
	}

	resp := &pb.DashboardResponse{
		Status:              statusOK(),
		Farm:                farmToPb(dashboard.Farm),
		SustainabilityScore: int32(dashboard.SustainabilityScore),
		Grade:               string(dashboard.Grade),
		Components:          componentsToPb(dashboard.Components),
		Recommendations:     dashboard.Recommendations,
		ActiveAlerts: common.Mapper(dashboard.ActiveAlerts, func(a models.FireRiskAssessment) *pb.FireRiskAssessment {
			return assessmentToPb(&a)
		}),
		GeneratedAt: timestamppb.New(dashboard.GeneratedAt),
	}
	if dashboard.ScoredAt != nil {
		resp.ScoredAt = timestamppb.New(*dashboard.ScoredAt)
	}
	return resp, nil
}

func (s *FarmServer) ScoreAllFarms(ctx context.Context, req *pb.ScoreAllFarmsRequest) (*pb.ScoreAllFarmsResponse, error) {
	report, err := s.Farm.Score.ScoreAllFarms(ctx)
	if err != nil {
		return &pb.ScoreAllFarmsResponse{Status: failed(err)}, nil
	}

	return &pb.ScoreAllFarmsResponse{
		Status:   statusOK(),
		Farms:    int32(report.Farms),
		ScoreIds: report.ScoreIDs,
		Failures: common.Mapper(report.Failures, func(f models.FailureSummary) *pb.FarmFailure {
			return &pb.FarmFailure{FarmId: f.FarmID, Error: f.Error}
		}),
	}, nil
}

func (s *FarmServer) PostLimiter(ctx context.Context, req *pb.PostLimiterRequest) (*pb.PostLimiterResponse, error) {
	if err := validateFarmID(&req.FarmId); err != nil {
		return &pb.PostLimiterResponse{Status: validationFailed(err)}, nil
	}

	var rateValidator = z.Float64().Required()
	if err := rateValidator.Validate(&req.FarmRate); err != nil {
		return &pb.PostLimiterResponse{Status: validationFailed(err)}, nil
	}

	var burstValidator = z.Int32().Required()
	if err := burstValidator.Validate(&req.FarmBurst); err != nil {
		return &pb.PostLimiterResponse{Status: validationFailed(err)}, nil
	}

	if s.RateLimiterStore == nil {
		return &pb.PostLimiterResponse{
			Status: &pb.StatusResponse{
				Success: false,
				Message: "RateLimiterStore is not used. No effect.",
			},
		}, nil
	}

	s.RateLimiterStore.SetLimiter(req.FarmId, rate.Limit(req.FarmRate), int(req.FarmBurst))
	return &pb.PostLimiterResponse{Status: statusOK()}, nil
}
