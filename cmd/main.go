package main

import (
	"context"
	stderrors "errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	brandapp "github.com/muhammadheryan/coupon-marketplace/application/brand"
	categoryapp "github.com/muhammadheryan/coupon-marketplace/application/category"
	couponapp "github.com/muhammadheryan/coupon-marketplace/application/coupon"
	"github.com/muhammadheryan/coupon-marketplace/application/expiry"
	userapp "github.com/muhammadheryan/coupon-marketplace/application/user"
	"github.com/muhammadheryan/coupon-marketplace/cmd/config"
	redisclient "github.com/muhammadheryan/coupon-marketplace/cmd/redis"
	_ "github.com/muhammadheryan/coupon-marketplace/docs"
	brandRepo "github.com/muhammadheryan/coupon-marketplace/repository/brand"
	categoryRepo "github.com/muhammadheryan/coupon-marketplace/repository/category"
	couponRepo "github.com/muhammadheryan/coupon-marketplace/repository/coupon"
	redisRepo "github.com/muhammadheryan/coupon-marketplace/repository/redis"
	txRepo "github.com/muhammadheryan/coupon-marketplace/repository/tx"
	userRepo "github.com/muhammadheryan/coupon-marketplace/repository/user"
	"github.com/muhammadheryan/coupon-marketplace/thirdparty/firebase"
	"github.com/muhammadheryan/coupon-marketplace/thirdparty/rabbitmq"
	"github.com/muhammadheryan/coupon-marketplace/thirdparty/storage"
	"github.com/muhammadheryan/coupon-marketplace/transport"
	"github.com/muhammadheryan/coupon-marketplace/utils/logger"
	"go.uber.org/zap"
)

const shutdownTimeout = 15 * time.Second

// @title COUPON MARKETPLACE API
// @version 1.0
// @description COUPON MARKETPLACE API Documentation
// @host localhost:5000
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from .env and environment variables
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Initialize Redis client; an empty host runs without cache
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Delayed expiration messages are optional; the sweep covers their absence
	var publisher rabbitmq.ExpirationPublisher
	if cfg.RabbitMQ.Host != "" {
		pub, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
		if err != nil {
			logger.Fatal("err connect rabbitmq publisher", zap.Error(err))
		}
		defer pub.Close()
		publisher = pub

		consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password,
			cfg.Server.BaseURL, cfg.InternalAPIKey)
		if err != nil {
			logger.Fatal("err connect rabbitmq consumer", zap.Error(err))
		}
		defer consumer.Close()
		if err := consumer.Start(ctx); err != nil {
			logger.Fatal("err start rabbitmq consumer", zap.Error(err))
		}
	}

	uploads, err := newUploadStore(ctx, cfg)
	if err != nil {
		logger.Fatal("err init upload store", zap.Error(err))
	}

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	UserRepo := userRepo.NewUserRepository(db)
	BrandRepo := brandRepo.NewBrandRepository(db)
	CategoryRepo := categoryRepo.NewCategoryRepository(db)
	CouponRepo := couponRepo.NewCouponRepository(db)
	RedisRepo := redisRepo.NewRepository()

	verifier := firebase.NewVerifier(cfg.Firebase.ProjectID, cfg.Firebase.CertsURL, cfg.Firebase.CertsTTL)

	// Initialize application layers
	BrandApp := brandapp.NewBrandApp(cfg, BrandRepo, CouponRepo, RedisRepo)
	CategoryApp := categoryapp.NewCategoryApp(CategoryRepo, CouponRepo)
	CouponApp := couponapp.NewCouponApp(TxRepo, CouponRepo, BrandApp, uploads, publisher)
	UserApp := userapp.NewUserApp(cfg.AdminPhones, UserRepo, verifier)

	job := expiry.NewJob(CouponRepo, cfg.Expiry.SweepInterval)
	job.Start(ctx)
	defer job.Stop()

	httpTransport := transport.NewTransport(cfg, &transport.RestHandler{
		CouponApp:   CouponApp,
		BrandApp:    BrandApp,
		CategoryApp: CategoryApp,
		UserApp:     UserApp,
		Uploads:     uploads,
		DB:          db,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
		serverErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if !stderrors.Is(err, http.ErrServerClosed) {
			logger.Error("failed server", zap.Error(err))
		}
	case <-ctx.Done():
		logger.Info("Shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("err shutdown server", zap.Error(err))
	}
	stop()
}

func newUploadStore(ctx context.Context, cfg *config.Config) (storage.TempStore, error) {
	if cfg.Upload.Backend == "s3" {
		return storage.NewS3Store(ctx, storage.S3Options{
			Bucket:    cfg.Upload.S3Bucket,
			Region:    cfg.Upload.S3Region,
			Endpoint:  cfg.Upload.S3Endpoint,
			AccessKey: cfg.Upload.S3AccessKey,
			SecretKey: cfg.Upload.S3SecretKey,
		})
	}
	return storage.NewLocalStore(cfg.Upload.Dir)
}
