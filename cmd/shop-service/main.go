package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/iyhunko/draft-shop/internal/config"
	httpAPI "github.com/iyhunko/draft-shop/internal/http"
	"github.com/iyhunko/draft-shop/internal/http/controller"
	"github.com/iyhunko/draft-shop/internal/logger"
	"github.com/iyhunko/draft-shop/internal/metrics"
	"github.com/iyhunko/draft-shop/internal/model"
	"github.com/iyhunko/draft-shop/internal/repository/sql"
	"github.com/iyhunko/draft-shop/internal/service"
	sqspkg "github.com/iyhunko/draft-shop/internal/sqs"
)

const shutdownTimeout = 10 * time.Second

func main() {
	conf, err := config.LoadFromEnv()
	handleErr("loading config", err)
	logger.InitJSONLogger(conf.DebugMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := sql.StartDB(ctx, conf.Database)
	handleErr("starting database", err)
	defer db.Close()

	productRepository := sql.NewProductRepository(db)
	categoryRepository := sql.NewCategoryRepository(db)
	clothingRepository := sql.NewClothingRepository(db)
	electronicRepository := sql.NewElectronicRepository(db)

	// SQS is optional for the shop; without a queue nothing is published.
	var publisher service.Publisher
	if conf.AWS.QueueEnabled() {
		sqsClient, err := sqspkg.NewClient(ctx, conf.AWS)
		handleErr("creating SQS client", err)
		publisher = sqspkg.NewPublisher(sqsClient, conf.AWS.SQSQueueURL)
	} else {
		slog.Warn("SQS queue is not configured, catalog notifications are disabled")
	}

	categoryService := service.NewCategoryService(categoryRepository, productRepository)
	ctrs := httpAPI.Controllers{
		Base:       controller.New(),
		Categories: controller.NewCategoryController(categoryService),
		Products: controller.NewProductController(
			service.NewProductService[*model.Product](productRepository, publisher, service.KindProduct).
				WithCategories(categoryRepository), categoryService),
		Clothing: controller.NewClothingController(
			service.NewProductService[*model.Clothing](clothingRepository, publisher, service.KindClothing).
				WithCategories(categoryRepository)),
		Electronic: controller.NewElectronicController(
			service.NewProductService[*model.Electronic](electronicRepository, publisher, service.KindElectronic).
				WithCategories(categoryRepository)),
	}

	if !conf.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}
	httpServer := &http.Server{
		Addr:              ":" + conf.HTTPServer.Port,
		Handler:           httpAPI.InitRouter(gin.New(), ctrs),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("HTTP server starting", slog.String("port", conf.HTTPServer.Port))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("error while listening to HTTP requests", slog.Any("err", err))
			stop()
		}
	}()

	metricsServer := metrics.StartMetricsServer(conf.MetricsServer)

	<-ctx.Done()
	slog.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("failed to stop HTTP server", slog.Any("err", err))
	}
	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("failed to stop metrics server", slog.Any("err", err))
	}
}

func handleErr(msg string, err error) {
	if err != nil {
		slog.Error("error while "+msg, slog.Any("err", err))
		os.Exit(1)
	}
}
