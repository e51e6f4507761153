package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyFarmDBType  string = "FARM_DB_TYPE"
	EnvKeyFarmDbPath  string = "FARM_DB_PATH"
	EnvKeyFarmLogsDir string = "FARM_LOGS_DIR"

	EnvKeyFarmHttpHostPort string = "FARM_HTTP_HOST_PORT"
	EnvKeyFarmGrpcHostPort string = "FARM_GRPC_HOST_PORT"

	EnvKeyFarmDefaultRate  string = "FARM_DEFAULT_RATE"
	EnvKeyFarmDefaultBurst string = "FARM_DEFAULT_BURST"

	EnvKeyScoreInterval     string = "SCORE_INTERVAL"
	EnvKeyScoreWorkers      string = "SCORE_WORKERS"
	EnvKeyScoreLookbackDays string = "SCORE_LOOKBACK_DAYS"
	EnvKeyScoreWeights      string = "SCORE_WEIGHTS"
	EnvKeyFireTiering       string = "FIRE_TIERING"

	EnvKeyKafkaBrokers string = "KAFKA_BROKERS"
	EnvKeyKafkaTopic   string = "KAFKA_TOPIC"

	EnvKeyShutdownTimeout string = "SHUTDOWN_TIMEOUT"

	LoggerNameScoring       string = "scoring"
	LoggerNameFarmCore      string = "farm_core"
	LoggerNameRestfulServer string = "restful_server"
	LoggerNameScheduler     string = "scheduler"
	LoggerNameEvents        string = "events"

	LoggerFieldCategory        string = "category"
	LoggerCategoryReading      string = "reading"
	LoggerCategoryScore        string = "score"
	LoggerCategoryFire         string = "fire"
	LoggerCategoryProfile      string = "profile"
	LoggerCategoryBatch        string = "batch"
	LoggerCategoryDashboard    string = "dashboard"
	LoggerCategoryPublish      string = "publish"
	LoggerCategoryScheduledJob string = "scheduled_job"
)
