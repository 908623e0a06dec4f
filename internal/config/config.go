package config

import (
	"fmt"
	"os"
	"strconv"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8000）

	CatalogBaseURL string // リモート在庫サービスのベースURL
	DataDir        string // products.json等を置くディレクトリ
	StaticDir      string // 静的ファイル（index.html）の場所

	GoEnv   string // dev/production
	LogFile string // 空ならファイル出力なし

	OpenBrowser bool // 起動時にブラウザを開くか
}

// Loadは環境変数から設定を読む。
// 社内ツールなのでどれも既定値で動く。
func Load() (Config, error) {
	cfg := Config{
		Port:           getenv("PORT", "8000"),
		CatalogBaseURL: getenv("CATALOG_BASE_URL", "http://catalog.oymall-aws-dev.local"),
		DataDir:        getenv("DATA_DIR", "data"),
		StaticDir:      getenv("STATIC_DIR", "static"),
		GoEnv:          getenv("GO_ENV", "dev"),
		LogFile:        os.Getenv("LOG_FILE"),
		OpenBrowser:    true,
	}

	if v := os.Getenv("OPEN_BROWSER"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("OPEN_BROWSER must be bool: %w", err)
		}
		cfg.OpenBrowser = b
	}

	if cfg.Port[0] == ':' {
		cfg.Port = cfg.Port[1:]
	}
	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return Config{}, fmt.Errorf("PORT must be number: %w", err)
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
