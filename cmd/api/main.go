package main

import (
	"context"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"app/internal/audit"
	"app/internal/config"
	"app/internal/handler"
	"app/internal/infra/catalog"
	infraRepo "app/internal/infra/repository"
	"app/internal/logging"
	"app/internal/seed"
	"app/internal/server"
	"app/internal/usecase"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	//.envが無くても起動できる
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.Setup(cfg.GoEnv, cfg.LogFile)
	defer logger.Sync()

	//Repository（ファイル実装）生成
	registry := infraRepo.NewRegistryFile(cfg.DataDir, seed.Products(), seed.Stores())
	logsRepo := infraRepo.NewAuditLogFile(cfg.DataDir)

	//監査レコーダー（非同期ライター）
	recorder := audit.NewRecorder(registry, logsRepo)

	//カタログAPIクライアント
	catalogClient := catalog.New(cfg.CatalogBaseURL)

	//Usecase生成
	inventoryUC := usecase.NewInventoryUsecase(catalogClient, recorder)
	registryUC := usecase.NewRegistryUsecase(registry)
	auditLogUC := usecase.NewAuditLogUsecase(logsRepo)

	//Handler生成
	e := server.New(cfg,
		handler.NewPageHandler(registryUC),
		handler.NewInventoryHandler(inventoryUC),
		handler.NewRegistryHandler(registryUC),
		handler.NewAuditLogHandler(auditLogUC),
	)

	//Server起動
	addr := ":" + cfg.Port
	go func() {
		zap.S().Infof("listening on http://127.0.0.1:%s", cfg.Port)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			zap.S().Fatalf("server start failed: %v", err)
		}
	}()

	if cfg.OpenBrowser {
		openBrowser("http://127.0.0.1:" + cfg.Port)
	}

	//SIGINT/SIGTERMで落とす
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		zap.S().Warnf("server shutdown: %v", err)
	}

	//積み残しの監査ログを書き切る
	recorder.Close()
}

// 既定ブラウザでURLを開く。失敗しても起動は続ける。
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		zap.S().Warnf("could not open browser: %v", err)
	}
}
