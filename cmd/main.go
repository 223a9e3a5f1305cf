package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joseph-ezekiel/verboheit-mlc/config"
	"github.com/joseph-ezekiel/verboheit-mlc/database"
	_ "github.com/joseph-ezekiel/verboheit-mlc/docs" // Swagger docs - auto-generated
	"github.com/joseph-ezekiel/verboheit-mlc/internal/auth"
	"github.com/joseph-ezekiel/verboheit-mlc/internal/controller"
	adminctrl "github.com/joseph-ezekiel/verboheit-mlc/internal/controller/admin"
	candidatectrl "github.com/joseph-ezekiel/verboheit-mlc/internal/controller/candidate"
	"github.com/joseph-ezekiel/verboheit-mlc/internal/logger"
	"github.com/joseph-ezekiel/verboheit-mlc/internal/model"
	"github.com/joseph-ezekiel/verboheit-mlc/internal/repository"
	"github.com/joseph-ezekiel/verboheit-mlc/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Verboheit Mathematics League API
// @version 1.0
// @description Exam, scoring and leaderboard backend for the Verboheit Mathematics League Competition.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		// Core application components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
			NewTokenService,
			auth.NewMiddleware,
		),

		// Repositories layer
		fx.Provide(
			repository.NewUserRepository,
			repository.NewCandidateRepository,
			repository.NewStaffRepository,
			repository.NewExamRepository,
			repository.NewQuestionRepository,
			repository.NewScoreRepository,
			repository.NewSnapshotRepository,
			repository.NewFlagRepository,
		),

		// Services layer
		fx.Provide(
			NewScoringService,
			service.NewSubmissionService,
			service.NewExamService,
			service.NewQuestionService,
			service.NewScoreService,
			service.NewFlagService,
			service.NewLeaderboardService,
			service.NewDashboardService,
			service.NewAccountService,
		),

		// API controllers layer
		fx.Provide(
			controller.NewAccountController,
			adminctrl.NewExamController,
			adminctrl.NewQuestionController,
			adminctrl.NewPeopleController,
			adminctrl.NewPlatformController,
			candidatectrl.NewCandidateController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewTokenService(cfg *config.Config) auth.TokenService {
	return auth.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL)
}

func NewScoringService(cfg *config.Config) service.ScoringService {
	return service.NewScoringService(cfg.Scoring.SnapshotQuestions)
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.DebugMode)

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	mw *auth.Middleware,
	accountCtrl *controller.AccountController,
	examCtrl *adminctrl.ExamController,
	questionCtrl *adminctrl.QuestionController,
	peopleCtrl *adminctrl.PeopleController,
	platformCtrl *adminctrl.PlatformController,
	candidateCtrl *candidatectrl.CandidateController,
) {
	api := router.Group("/api/v1")

	// Public surface
	api.GET("/", accountCtrl.APIRoot)
	api.POST("/auth/login", accountCtrl.Login)
	api.POST("/auth/token/refresh", accountCtrl.Refresh)
	api.POST("/auth/logout", accountCtrl.Logout)
	api.POST("/register/candidate", accountCtrl.RegisterCandidate)
	api.POST("/register/staff", accountCtrl.RegisterStaff)

	authed := api.Group("")
	authed.Use(mw.Authenticate())

	// Candidate surface
	candidateGroup := authed.Group("")
	candidateGroup.Use(mw.RequireCandidate())
	{
		candidateGroup.GET("/candidates/me", candidateCtrl.Me)
		candidateGroup.GET("/exams/:id/take-exam", candidateCtrl.TakeExam)
		candidateGroup.POST("/exams/:id/submit-exam-answers", candidateCtrl.SubmitExamAnswers)
		candidateGroup.GET("/dashboard/candidate", candidateCtrl.Dashboard)
	}

	// League candidates and moderator-or-above staff
	leaderboardGroup := authed.Group("")
	leaderboardGroup.Use(mw.RequireLeagueCandidateOrStaff())
	{
		leaderboardGroup.GET("/load-leaderboard", candidateCtrl.LoadLeaderboard)
	}

	// Any staff
	staffGroup := authed.Group("")
	staffGroup.Use(mw.RequireStaff())
	{
		staffGroup.GET("/exams", examCtrl.ListExams)
		staffGroup.GET("/exams/:id", examCtrl.GetExam)
		staffGroup.GET("/exams/:id/questions", examCtrl.ListExamQuestions)
		staffGroup.GET("/candidates", peopleCtrl.ListCandidates)
		staffGroup.GET("/candidates/:id", peopleCtrl.GetCandidate)
		staffGroup.GET("/staff", peopleCtrl.ListStaff)
		staffGroup.GET("/staff/:id", peopleCtrl.GetStaff)
		staffGroup.GET("/dashboard/staff", platformCtrl.StaffDashboard)
	}

	// Moderator and above
	moderatorGroup := authed.Group("")
	moderatorGroup.Use(mw.RequireStaff(model.StaffRoleModerator, model.StaffRoleAdmin, model.StaffRoleOwner))
	{
		moderatorGroup.GET("/questions", questionCtrl.ListQuestions)
		moderatorGroup.POST("/questions", questionCtrl.CreateQuestion)
		moderatorGroup.GET("/questions/:id", questionCtrl.GetQuestion)
		moderatorGroup.PUT("/questions/:id", questionCtrl.UpdateQuestion)
		moderatorGroup.DELETE("/questions/:id", questionCtrl.DeleteQuestion)
	}

	// Admin and owner
	adminGroup := authed.Group("")
	adminGroup.Use(mw.RequireStaff(model.StaffRoleAdmin, model.StaffRoleOwner))
	{
		adminGroup.POST("/exams", examCtrl.CreateExam)
		adminGroup.PUT("/exams/:id", examCtrl.UpdateExam)
		adminGroup.DELETE("/exams/:id", examCtrl.DeleteExam)
		adminGroup.PUT("/exams/:id/submit-exam-score", examCtrl.SubmitExamScore)
		adminGroup.POST("/candidates/:id/assign-role", peopleCtrl.AssignCandidateRole)
		adminGroup.GET("/candidates/:id/scores", peopleCtrl.CandidateScores)
		adminGroup.GET("/candidates/:id/exam-history", peopleCtrl.CandidateExamHistory)
		adminGroup.POST("/toggle-candidate-registration", platformCtrl.ToggleCandidateRegistration)
		adminGroup.POST("/toggle-leaderboard", platformCtrl.ToggleLeaderboard)
		adminGroup.POST("/leaderboard/publish", platformCtrl.PublishLeaderboard)
	}

	// Owner only
	ownerGroup := authed.Group("")
	ownerGroup.Use(mw.RequireStaff(model.StaffRoleOwner))
	{
		ownerGroup.POST("/staff/:id/assign-role", peopleCtrl.AssignStaffRole)
		ownerGroup.POST("/toggle-staff-registration", platformCtrl.ToggleStaffRegistration)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Verboheit MLC API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.Candidate{},
		&model.Staff{},
		&model.Question{},
		&model.Exam{},
		&model.CandidateScore{},
		&model.CandidateAnswer{},
		&model.LeaderboardSnapshot{},
		&model.FeatureFlag{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
