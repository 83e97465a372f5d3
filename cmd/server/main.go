package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/pixelhunt/design-backend/internal/config"
	"github.com/pixelhunt/design-backend/internal/db"
	httpHandlers "github.com/pixelhunt/design-backend/internal/http/handlers"
	httpRouter "github.com/pixelhunt/design-backend/internal/http/router"
	"github.com/pixelhunt/design-backend/internal/infrastructure/persistence"
	"github.com/pixelhunt/design-backend/internal/logger"
	"github.com/pixelhunt/design-backend/internal/service"
	"github.com/pixelhunt/design-backend/internal/storage"
	formuc "github.com/pixelhunt/design-backend/internal/usecase/form"
	proposaluc "github.com/pixelhunt/design-backend/internal/usecase/proposal"
	questionuc "github.com/pixelhunt/design-backend/internal/usecase/question"
	requestuc "github.com/pixelhunt/design-backend/internal/usecase/request"
	"github.com/pixelhunt/design-backend/internal/ws"
)

func main() {
	// Готовим контекст для graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("main: ошибка загрузки конфигурации: %v", err)
	}

	// Инициализация логгера
	if cfg.Env == "development" {
		logger.Init("debug")
		logger.SetTextFormatter()
	} else {
		logger.Init("info")
	}

	// Подключение к базе и миграции.
	dbConn, err := db.NewPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("main: ошибка подключения к базе: %v", err)
	}
	defer safeClose(dbConn)

	if err := db.RunMigrations(ctx, dbConn, cfg.MigrationsPath); err != nil {
		log.Fatalf("main: ошибка миграций: %v", err)
	}

	// Вспомогательные сервисы.
	tokenManager := service.NewTokenManager(cfg.JWTSecret, cfg.RefreshSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	attachmentStorage, err := storage.NewAttachmentStorage(cfg.MediaStoragePath, cfg.MaxUploadSizeMB)
	if err != nil {
		log.Fatalf("main: не удалось подготовить файловое хранилище: %v", err)
	}

	// Репозитории.
	userRepo := persistence.NewUserRepositoryAdapter(dbConn)
	requestRepo := persistence.NewRequestRepositoryAdapter(dbConn)
	proposalRepo := persistence.NewProposalRepositoryAdapter(dbConn)
	questionRepo := persistence.NewQuestionRepositoryAdapter(dbConn)
	formRepo := persistence.NewFormRepositoryAdapter(dbConn)
	mediaRepo := persistence.NewMediaRepositoryAdapter(dbConn)
	notificationRepo := persistence.NewNotificationRepositoryAdapter(dbConn)

	// Сервисы.
	authService := service.NewAuthService(userRepo, tokenManager)
	notificationService := service.NewNotificationService(notificationRepo)

	// Вебсокеты.
	hub := ws.NewHub(ctx)
	hub.SetNotificationSaver(ws.NewNotificationServiceAdapter(notificationService))
	go hub.Run()

	// Usecases.
	submitRequestUC := requestuc.NewSubmitRequestUseCase(requestRepo)
	listRequestsUC := requestuc.NewListRequestsUseCase(requestRepo)
	getRequestUC := requestuc.NewGetRequestUseCase(requestRepo)
	cancelRequestUC := requestuc.NewCancelRequestUseCase(requestRepo)
	decideRequestUC := requestuc.NewDecideRequestUseCase(requestRepo)

	submitProposalUC := proposaluc.NewSubmitProposalUseCase(requestRepo, proposalRepo)
	acceptProposalUC := proposaluc.NewAcceptProposalUseCase(requestRepo, proposalRepo)
	rejectProposalUC := proposaluc.NewRejectProposalUseCase(requestRepo, proposalRepo)
	listProposalsUC := proposaluc.NewListProposalsUseCase(requestRepo, proposalRepo)

	askQuestionUC := questionuc.NewAskQuestionUseCase(requestRepo, questionRepo)
	respondQuestionUC := questionuc.NewRespondQuestionUseCase(requestRepo, questionRepo)
	listQuestionsUC := questionuc.NewListQuestionsUseCase(questionRepo)

	createFormUC := formuc.NewCreateFormUseCase(formRepo)
	reorderFormUC := formuc.NewReorderFormFieldsUseCase(formRepo)
	setFormActiveUC := formuc.NewSetFormActiveUseCase(formRepo)
	listFormsUC := formuc.NewListFormsUseCase(formRepo)
	getFormUC := formuc.NewGetFormUseCase(formRepo)

	// HTTP хэндлеры.
	authHandler := httpHandlers.NewAuthHandler(authService)
	requestHandler := httpHandlers.NewRequestHandler(submitRequestUC, listRequestsUC, getRequestUC, cancelRequestUC, decideRequestUC, formRepo, hub)
	proposalHandler := httpHandlers.NewProposalHandler(submitProposalUC, acceptProposalUC, rejectProposalUC, listProposalsUC, requestRepo, hub)
	questionHandler := httpHandlers.NewQuestionHandler(askQuestionUC, respondQuestionUC, listQuestionsUC, requestRepo, hub)
	formHandler := httpHandlers.NewFormHandler(createFormUC, reorderFormUC, setFormActiveUC, listFormsUC, getFormUC)
	notificationHandler := httpHandlers.NewNotificationHandler(notificationService)
	mediaHandler := httpHandlers.NewMediaHandler(mediaRepo, attachmentStorage)
	wsHandler := httpHandlers.NewWSHandler(hub, tokenManager)
	healthHandler := httpHandlers.NewHealthHandler(dbConn)

	// Роутер.
	engine := httpRouter.SetupRouter(cfg, authHandler, requestHandler, proposalHandler, questionHandler, formHandler, notificationHandler, mediaHandler, wsHandler, healthHandler, tokenManager)

	server := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: engine,
	}

	// Завершаем сервер при получении сигнала.
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("main: ошибка остановки http сервера: %v", err)
		}
	}()

	log.Printf("main: HTTP сервер запущен на порту %s", cfg.HTTPPort)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("main: сервер завершился с ошибкой: %v", err)
	}
}

// safeClose закрывает соединение с базой.
func safeClose(db *sqlx.DB) {
	if err := db.Close(); err != nil {
		log.Printf("main: ошибка закрытия базы: %v", err)
	}
}
