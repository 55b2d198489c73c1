package config

import (
	"testing"
	"time"

	"github.com/riskibarqy/buzzerbeater-analyzer/internal/platform/logging"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("REDIS_ENABLED", "")
	t.Setenv("UPTRACE_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.StorageDriver != StorageMemory {
		t.Fatalf("expected memory storage by default, got %q", cfg.StorageDriver)
	}
	if cfg.LogFormat != logging.FormatConsole {
		t.Fatalf("expected console logs in dev, got %q", cfg.LogFormat)
	}
	if cfg.AnalysisMaxWorkers != 4 || cfg.CacheTTL != time.Minute {
		t.Fatalf("unexpected defaults: workers=%d ttl=%s", cfg.AnalysisMaxWorkers, cfg.CacheTTL)
	}
	if cfg.RedisEnabled || cfg.RedisStream != "buzzerbeaters.detected" {
		t.Fatalf("unexpected redis defaults: enabled=%v stream=%q", cfg.RedisEnabled, cfg.RedisStream)
	}
	if !cfg.RedisCircuit.Enabled || cfg.RedisCircuit.FailureThreshold != 5 {
		t.Fatalf("unexpected circuit defaults: %+v", cfg.RedisCircuit)
	}
}

func TestLoad_ProdDefaultsToJSONLogs(t *testing.T) {
	t.Setenv("APP_ENV", EnvProd)
	t.Setenv("APP_LOG_FORMAT", "")
	t.Setenv("UPTRACE_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.LogFormat != logging.FormatJSON {
		t.Fatalf("expected json logs in prod, got %q", cfg.LogFormat)
	}
}

func TestLoad_PostgresRequiresDBURL(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("STORAGE_DRIVER", StoragePostgres)
	t.Setenv("DB_URL", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when STORAGE_DRIVER=postgres without DB_URL")
	}
}

func TestLoad_InvalidStorageDriver(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("STORAGE_DRIVER", "sqlite")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for unknown STORAGE_DRIVER")
	}
}

func TestLoad_AnalysisMaxWorkersMustBePositive(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("STORAGE_DRIVER", StorageMemory)
	t.Setenv("ANALYSIS_MAX_WORKERS", "-2")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for negative ANALYSIS_MAX_WORKERS")
	}
}

func TestLoad_RedisCircuitParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("STORAGE_DRIVER", StorageMemory)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("REDIS_STREAM", "hits")
	t.Setenv("REDIS_CIRCUIT_ENABLED", "false")
	t.Setenv("REDIS_CIRCUIT_FAILURE_COUNT", "3")
	t.Setenv("REDIS_CIRCUIT_OPEN_TIMEOUT", "30s")
	t.Setenv("REDIS_CIRCUIT_HALF_OPEN_MAX_REQ", "1")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.RedisEnabled || cfg.RedisAddr != "redis:6379" || cfg.RedisDB != 2 || cfg.RedisStream != "hits" {
		t.Fatalf("unexpected redis config: %+v", cfg)
	}
	if cfg.RedisCircuit.Enabled || cfg.RedisCircuit.FailureThreshold != 3 ||
		cfg.RedisCircuit.OpenTimeout != 30*time.Second || cfg.RedisCircuit.HalfOpenMaxReq != 1 {
		t.Fatalf("unexpected circuit config: %+v", cfg.RedisCircuit)
	}
}

func TestLoad_RedisCircuitValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("STORAGE_DRIVER", StorageMemory)
	t.Setenv("REDIS_CIRCUIT_FAILURE_COUNT", "0")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for REDIS_CIRCUIT_FAILURE_COUNT=0")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "uptrace-dsn=https://token@api.uptrace.dev?grpc=4317")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev?grpc=4317" {
		t.Fatalf("unexpected UptraceDSN: %q", cfg.UptraceDSN)
	}
}

func TestLoad_SwaggerDefaultsByEnv(t *testing.T) {
	t.Setenv("APP_ENV", EnvProd)
	t.Setenv("SWAGGER_ENABLED", "")
	t.Setenv("UPTRACE_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.SwaggerEnabled {
		t.Fatalf("expected swagger disabled in prod by default")
	}
}

func TestLoad_CORSOriginsMustNotBeEmpty(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("CORS_ALLOWED_ORIGINS", " , ")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for empty CORS_ALLOWED_ORIGINS")
	}
}

func TestSplitCSV(t *testing.T) {
	got := splitCSV(" https://a.example, ,https://b.example ")
	if len(got) != 2 || got[0] != "https://a.example" || got[1] != "https://b.example" {
		t.Fatalf("unexpected split result: %#v", got)
	}
}
