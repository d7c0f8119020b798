package verify

import (
	"context"
	"io"

	"image-verifier/core/client"
	"image-verifier/core/logger"
	"image-verifier/feature/verify/checks"

	"go.uber.org/zap"
)

// Service runs verification checks against a local fixture and a server.
type Service struct {
	client     client.Client
	imagePath  string
	localImage string
	endpoints  []checks.Endpoint
	logger     *zap.Logger
	reporter   *Reporter
}

// NewService creates a new verification service that prints its report to out.
func NewService(c client.Client, imagePath string, cfg Config, logger *zap.Logger, out io.Writer) *Service {
	return &Service{
		client:     c,
		imagePath:  imagePath,
		localImage: cfg.LocalImage,
		endpoints:  checks.DefaultEndpoints,
		logger:     logger,
		reporter:   NewReporter(out),
	}
}

type step func(ctx context.Context, log *zap.Logger, sum *Summary)

// Run executes the local image check, the server image check and the endpoint scan,
// in that order. Every check runs regardless of earlier failures.
func (s *Service) Run(ctx context.Context) *Summary {
	return s.run(ctx, s.checkLocal, s.checkServer, s.scanEndpoints)
}

// RunLocal executes only the local image check.
func (s *Service) RunLocal(ctx context.Context) *Summary {
	return s.run(ctx, s.checkLocal)
}

// RunServer executes only the server image check.
func (s *Service) RunServer(ctx context.Context) *Summary {
	return s.run(ctx, s.checkServer)
}

// RunEndpoints executes only the endpoint scan.
func (s *Service) RunEndpoints(ctx context.Context) *Summary {
	return s.run(ctx, s.scanEndpoints)
}

func (s *Service) run(ctx context.Context, steps ...step) *Summary {
	sum := newSummary()
	log := logger.WithRunID(s.logger, sum.RunID)
	log.Debug("Starting verification", zap.String("base_url", s.client.BaseURL()))

	s.reporter.Header()
	for _, st := range steps {
		st(ctx, log, sum)
	}
	sum.finish()
	s.reporter.Summary(sum)

	log.Info("Verification finished",
		zap.Bool("passed", sum.Passed()),
		zap.Duration("execution_time", sum.Duration()),
	)
	return sum
}

func (s *Service) checkLocal(_ context.Context, log *zap.Logger, sum *Summary) {
	s.reporter.Section(SectionLocal)
	log.Debug("Checking local image", zap.String("path", s.localImage))

	report := checks.CheckLocalImage(s.localImage)
	sum.Local = report
	s.reporter.Local(report)

	if !report.Passed {
		log.Warn("Local image check failed", zap.String("path", report.Path), zap.String("error", report.Error))
	}
}

func (s *Service) checkServer(ctx context.Context, log *zap.Logger, sum *Summary) {
	s.reporter.Section(SectionServer)
	log.Debug("Checking server image", zap.String("path", s.imagePath))

	report := checks.CheckServerImage(ctx, s.client, s.imagePath)
	sum.Server = report
	s.reporter.Server(report)

	if !report.Passed {
		log.Warn("Server image check failed",
			zap.String("url", report.URL),
			zap.Int("status", report.StatusCode),
			zap.String("error", report.Error),
		)
	}
}

func (s *Service) scanEndpoints(ctx context.Context, log *zap.Logger, sum *Summary) {
	s.reporter.Section(SectionEndpoints)
	log.Debug("Scanning endpoints", zap.Int("count", len(s.endpoints)))

	results := checks.ScanEndpoints(ctx, s.client, s.endpoints)
	sum.Endpoints = results
	for _, r := range results {
		s.reporter.Endpoint(r)
		if !r.Passed {
			log.Warn("Endpoint check failed", zap.String("path", r.Path), zap.String("error", r.Error))
		}
	}
}
