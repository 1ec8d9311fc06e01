package middleware

import (
	"fmt"
	"os"

	"github.com/grafana/pyroscope-go"
	"go.uber.org/zap"

	"github.com/praneeth-grandhi/Hostel-Management/config"
)

var profiler *pyroscope.Profiler

// pyroscopeLogger routes profiler output through zap
type pyroscopeLogger struct {
	sugar *zap.SugaredLogger
}

func (l pyroscopeLogger) Infof(format string, args ...interface{})  { l.sugar.Infof(format, args...) }
func (l pyroscopeLogger) Debugf(format string, args ...interface{}) { l.sugar.Debugf(format, args...) }
func (l pyroscopeLogger) Errorf(format string, args ...interface{}) { l.sugar.Errorf(format, args...) }

// InitProfiling starts Pyroscope continuous profiling. The application name
// comes from OTEL_SERVICE_NAME or SERVICE_NAME.
func InitProfiling(cfg *config.Config, logger *zap.Logger) error {
	id := detectIdentity(cfg.Service, os.Getenv)

	p, err := pyroscope.Start(pyroscope.Config{
		ApplicationName: id.Name,
		ServerAddress:   cfg.Profiling.Endpoint,
		Tags: map[string]string{
			"service":     id.Name,
			"namespace":   id.Namespace,
			"version":     id.Version,
			"environment": id.Environment,
		},
		ProfileTypes: []pyroscope.ProfileType{
			pyroscope.ProfileCPU,
			pyroscope.ProfileAllocObjects,
			pyroscope.ProfileAllocSpace,
			pyroscope.ProfileInuseObjects,
			pyroscope.ProfileInuseSpace,
			pyroscope.ProfileGoroutines,
		},
		Logger: pyroscopeLogger{sugar: logger.Sugar()},
	})
	if err != nil {
		return fmt.Errorf("start pyroscope profiler: %w", err)
	}
	profiler = p
	return nil
}

// StopProfiling stops Pyroscope profiling
func StopProfiling() {
	if profiler != nil {
		_ = profiler.Stop()
	}
}
