package main

import (
	"flag"
	"fmt"
	"os"
	"syscall"

	"github.com/cartella/internal/app"
	"github.com/cartella/internal/config"
	"github.com/cartella/internal/logger"

	"github.com/gin-gonic/gin"
)

const (
	ansiReset     = "\033[0m"
	ansiBold      = "\033[1m"
	ansiDim       = "\033[2m"
	ansiGreen     = "\033[32m"
	ansiCyan      = "\033[36m"
	ansiBrightMag = "\033[95m"
)

func main() {
	// 解析命令行参数
	var mode, configPath string
	flag.StringVar(&mode, "mode", app.ModeAll, "启动模式: all (默认), api, background")
	flag.StringVar(&configPath, "config", "", "配置文件路径")
	flag.Parse()

	printStartupBanner()

	cfg := config.LoadFile(configPath)
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
		if hasWildcardOrigin(cfg.CORS.AllowedOrigins) && cfg.CORS.AllowCredentials {
			stdLog.Printf("警告: CORS 允许任意来源且携带凭证，建议在生产环境中收紧 allowed_origins")
		}
	}

	if err := app.Run(app.Options{
		Config:  cfg,
		Logger:  logger.S(),
		Signals: []os.Signal{syscall.SIGINT, syscall.SIGTERM},
		Mode:    mode,
	}); err != nil {
		stdLog.Fatalf("服务运行失败: %v", err)
	}
}

func hasWildcardOrigin(origins []string) bool {
	for _, origin := range origins {
		if origin == "*" {
			return true
		}
	}
	return false
}

func printStartupBanner() {
	fmt.Println(ansiBrightMag + "╔══════════════════════════════════════════════╗" + ansiReset)
	fmt.Println(ansiBrightMag + "║            🛒 Cartella API 启动中            ║" + ansiReset)
	fmt.Println(ansiBrightMag + "╚══════════════════════════════════════════════╝" + ansiReset)
	fmt.Println(ansiCyan + " ██████╗ █████╗ ██████╗ ████████╗███████╗██╗     ██╗      █████╗ " + ansiReset)
	fmt.Println(ansiCyan + "██╔════╝██╔══██╗██╔══██╗╚══██╔══╝██╔════╝██║     ██║     ██╔══██╗" + ansiReset)
	fmt.Println(ansiCyan + "██║     ███████║██████╔╝   ██║   █████╗  ██║     ██║     ███████║" + ansiReset)
	fmt.Println(ansiCyan + "██║     ██╔══██║██╔══██╗   ██║   ██╔══╝  ██║     ██║     ██╔══██║" + ansiReset)
	fmt.Println(ansiCyan + "╚██████╗██║  ██║██║  ██║   ██║   ███████╗███████╗███████╗██║  ██║" + ansiReset)
	fmt.Println(ansiCyan + " ╚═════╝╚═╝  ╚═╝╚═╝  ╚═╝   ╚═╝   ╚══════╝╚══════╝╚══════╝╚═╝  ╚═╝" + ansiReset)
	fmt.Println(ansiGreen + ansiBold + "Local cart over a remote product catalog" + ansiReset)
	fmt.Println(ansiDim + "--------------------------------------------------------------" + ansiReset)
}
