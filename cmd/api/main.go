package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shoppos/internal/config"
	"shoppos/internal/handler"
	"shoppos/internal/infra/db"
	"shoppos/internal/infra/invoice"
	infraRepo "shoppos/internal/infra/repository"
	"shoppos/internal/infra/storage"
	"shoppos/internal/infra/token"
	"shoppos/internal/server"
	"shoppos/internal/usecase"
	auth "shoppos/internal/usecase/auth_usecase"
	"shoppos/internal/validator"

	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now().UTC()
}

func main() {
	logger := log.New("shoppos")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("config: %v", err)
	}

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		logger.Fatalf("db connect: %v", err)
	}
	if err := db.Migrate(gormDB); err != nil {
		logger.Fatalf("db migrate: %v", err)
	}

	//Repository（GORM実装）とtx
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	txm := infraRepo.NewTxManagerGorm(gormDB, cfg.OrderMaxRetries)

	//請求書PDFの保存先
	store, err := storage.NewFileStore(cfg.InvoiceDir)
	if err != nil {
		logger.Fatalf("invoice store: %v", err)
	}
	renderer := invoice.NewPDFRenderer(cfg.InvoiceLocale)

	//usecaseに渡す部品
	idGen := &uuidGenerator{}
	clock := &realClock{}
	v := validator.NewAuthValidator()

	//bcrypt（会員登録：Hash / ログイン：Verify）
	hasher := auth.NewBcryptPasswordHasher(12)
	verifier := auth.NewBcryptPasswordVerifier()
	issuer := token.NewJWTIssuer(cfg.JWTSecret, cfg.JWTTTL)

	//Usecase生成
	registerUC := auth.NewRegisterOwnerUsecase(txm, v, hasher, idGen, clock)
	registerEmployeeUC := auth.NewRegisterEmployeeUsecase(txm, v, hasher, idGen, clock)
	loginUC := auth.NewLoginUsecase(userRepo, v, verifier, issuer, clock)
	logoutUC := auth.NewLogoutUsecase(userRepo)
	shopUC := usecase.NewShopUsecase(txm)
	productUC := usecase.NewProductUsecase(txm, idGen)
	orderUC := usecase.NewOrderUsecase(txm, renderer, store, idGen, clock)
	invoiceUC := usecase.NewInvoiceUsecase(txm, store)
	notificationUC := usecase.NewNotificationUsecase(txm)
	employeeUC := usecase.NewEmployeeUsecase(txm)
	dashboardUC := usecase.NewDashboardUsecase(txm, clock)

	//Handler生成
	e := server.New(server.Handlers{
		JWTSecret:    cfg.JWTSecret,
		Users:        userRepo,
		Auth:         handler.NewAuthHandler(registerUC, loginUC, logoutUC),
		Shop:         handler.NewShopHandler(shopUC, registerEmployeeUC, employeeUC),
		Product:      handler.NewProductHandler(productUC),
		Order:        handler.NewOrderHandler(orderUC),
		Invoice:      handler.NewInvoiceHandler(invoiceUC),
		Notification: handler.NewNotificationHandler(notificationUC),
		Dashboard:    handler.NewDashboardHandler(dashboardUC),
	}, cfg.GoEnv)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	//Server起動
	addr := ":" + cfg.Port
	e.Logger.Infof("listening on %s (db=%s)", addr, cfg.DBDriver)
	if err := server.Start(ctx, e, addr); err != nil {
		e.Logger.Fatal(err)
	}
}
