package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/markboenigk/regintel/regintel/config"
	"github.com/markboenigk/regintel/regintel/controllers"
	"github.com/markboenigk/regintel/regintel/middlewares"
	"github.com/markboenigk/regintel/regintel/rag"
	"github.com/markboenigk/regintel/regintel/routes"
	"github.com/markboenigk/regintel/regintel/services/embedding"
	"github.com/markboenigk/regintel/regintel/services/llm"
	"github.com/markboenigk/regintel/regintel/services/vectordb"
	"github.com/markboenigk/regintel/regintel/utils/logging"
	"github.com/markboenigk/regintel/regintel/web"
)

func main() {
	logging.InitLogger()
	cfg := config.LoadConfig()

	embedder := embedding.NewClient(embedding.Config{APIKey: cfg.OpenAIAPIKey})
	searcher := vectordb.NewClient(vectordb.Config{URI: cfg.MilvusURI, Token: cfg.MilvusToken})
	completer := llm.NewClient(llm.Config{APIKey: cfg.OpenAIAPIKey})
	prompts := rag.LoadPrompts(cfg.PromptsFile)

	chatCtrl := controllers.NewChatController(embedder, searcher, completer, prompts)
	collectionsCtrl := controllers.NewCollectionsController()
	feedsCtrl := controllers.NewFeedsController()
	healthCtrl := controllers.NewHealthController()
	authCtrl := controllers.NewAuthController()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middlewares.RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/", web.Index)
	r.Mount("/api", routes.APIRoutes(chatCtrl, collectionsCtrl, feedsCtrl, healthCtrl, cfg))
	r.Mount("/auth", routes.AuthRoutes(authCtrl))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}
	go func() {
		logging.AppLogger.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.ErrorLogger.Error("server listen error", zap.Error(err))
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.ErrorLogger.Error("server shutdown error", zap.Error(err))
	}
	logging.AppLogger.Info("server shutdown complete")
}
