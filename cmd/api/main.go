package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"resumeapi/internal/ai"
	"resumeapi/internal/auth"
	"resumeapi/internal/config"
	"resumeapi/internal/database"
	"resumeapi/internal/database/migration"
	"resumeapi/internal/events"
	handlers "resumeapi/internal/http/handler"
	"resumeapi/internal/http/middleware"
	"resumeapi/internal/logging"
	"resumeapi/internal/metrics"
	"resumeapi/internal/otel"
	"resumeapi/internal/render"
	"resumeapi/internal/repository/postgres"
	"resumeapi/internal/service"
	"resumeapi/internal/storage"
)

// @title Resume API
// @version 1.0
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	loc := cfg.Location()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, loc)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(sctx)
	}()

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, loc, cfg.Database.Host); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	// PDF export stays disabled without object storage.
	var objStore storage.Storage
	if cfg.MinIO.Endpoint != "" {
		objStore, err = storage.NewMinIO(ctx, cfg.MinIO)
		if err != nil {
			log.Fatalf("failed to initialize object storage: %v", err)
		}
	}

	var publisher events.Publisher = events.Noop{}
	if cfg.Events.AMQPURL != "" {
		amqpPub, err := events.DialAMQP(cfg.Events.AMQPURL, cfg.Events.Exchange, loc)
		if err != nil {
			logging.Error(loc, "events", "amqp_dial_failed", err)
		} else {
			publisher = amqpPub
		}
	}
	defer publisher.Close()

	gen, err := ai.NewGenerator(ctx, cfg.AI)
	if err != nil {
		log.Fatalf("failed to initialize AI provider: %v", err)
	}
	writer := ai.NewWriter(gen)

	domainMetrics, err := metrics.New(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatalf("failed to register metrics: %v", err)
	}
	promMW, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatalf("failed to register http metrics: %v", err)
	}

	sections := service.Sections{
		PersonalInfo:   postgres.NewPersonalInfoPostgres(db),
		Experiences:    postgres.NewExperiencePostgres(db),
		Education:      postgres.NewEducationPostgres(db),
		Skills:         postgres.NewSkillPostgres(db),
		Certifications: postgres.NewCertificationPostgres(db),
		SocialLinks:    postgres.NewSocialLinkPostgres(db),
		CustomSections: postgres.NewCustomSectionPostgres(db),
	}
	resumeSvc := service.NewResumeService(sections, service.ResumeOptions{
		PDF:           render.NewChromePDF(cfg.Render.ChromePath, time.Duration(cfg.Render.PDFTimeoutSec)*time.Second),
		Store:         objStore,
		PresignExpiry: time.Duration(cfg.MinIO.PresignExpirySec) * time.Second,
		Events:        publisher,
	})
	privacySvc := service.NewPrivacyService(postgres.NewPrivacyPostgres(db))
	linkRepo := postgres.NewLinkPostgres(db)
	atsRepo := postgres.NewATSReportPostgres(db)
	scoreRepo := postgres.NewScoreReportPostgres(db)
	assessmentRepo := postgres.NewAssessmentPostgres(db)

	svc := handlers.Services{
		PersonalInfo:   service.NewPersonalInfoService(sections.PersonalInfo),
		Experiences:    service.NewExperienceService(sections.Experiences, writer),
		Education:      service.NewEducationService(sections.Education),
		Skills:         service.NewSkillService(sections.Skills),
		Certifications: service.NewCertificationService(sections.Certifications),
		SocialLinks:    service.NewSocialLinkService(sections.SocialLinks),
		CustomSections: service.NewCustomSectionService(sections.CustomSections),
		CoverLetters:   service.NewCoverLetterService(postgres.NewCoverLetterPostgres(db), writer, resumeSvc),
		Resume:         resumeSvc,
		Links: service.NewLinkService(linkRepo, privacySvc, resumeSvc, service.LinkOptions{
			PublicBaseURL: cfg.Links.PublicBaseURL,
			BcryptCost:    cfg.Links.BcryptCost,
			Events:        publisher,
			Metrics:       domainMetrics,
		}),
		Scoring:     service.NewScoringService(resumeSvc, atsRepo, scoreRepo, publisher, domainMetrics),
		Assessments: service.NewAssessmentService(assessmentRepo, publisher, domainMetrics),
		Analytics:   service.NewAnalyticsService(linkRepo, atsRepo, scoreRepo, assessmentRepo),
		Privacy:     privacySvc,
	}

	tokens := auth.NewService(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TTLHours)*time.Hour)
	opts := handlers.Options{
		Verifier:   tokens,
		RateMax:    cfg.RateLimit.Max,
		RateWindow: time.Duration(cfg.RateLimit.WindowSec) * time.Second,
	}
	if cfg.Auth.DevTokens {
		opts.Issuer = tokens
		logging.JSON(loc, map[string]any{"component": "auth", "event": "dev_tokens_enabled", "level": "warn"})
	}

	app := fiber.New(fiber.Config{
		AppName:      "resumeapi",
		ErrorHandler: handlers.ErrorHandler(),
		BodyLimit:    2 * 1024 * 1024,
	})

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware())
	app.Use(middleware.Logger(loc))
	app.Use(promMW.Handler())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-ID, " + handlers.PasswordHeader,
	}))
	app.Use(helmet.New(helmet.Config{CrossOriginResourcePolicy: "cross-origin"}))
	app.Use(compress.New(compress.Config{Level: compress.LevelBestSpeed}))

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	configureSwagger(cfg.AppHost, cfg.AppScheme)
	app.Get("/swagger/*", swagger.HandlerDefault)

	handlers.RegisterRoutes(app, db, svc, opts)

	go func() {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(sctx); err != nil {
			logging.Error(loc, "http", "shutdown_failed", err)
		}
	}()

	addr := ":" + cfg.Port
	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
