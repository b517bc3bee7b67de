package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/cartella/internal/config"
	"github.com/cartella/internal/logger"
	"github.com/cartella/internal/provider"
	"github.com/cartella/internal/service"

	"github.com/spf13/cobra"
)

// cliApp 命令执行期共享状态
type cliApp struct {
	configPath string
	driver     string
	dsn        string
	catalogURL string
	verbose    bool

	root      *cobra.Command
	container *provider.Container
	restoreLg func()
}

func newCLI() *cliApp {
	app := &cliApp{}
	app.root = newRootCmd(app)
	return app
}

// Execute 执行命令，无论成功与否都释放存储
func (a *cliApp) Execute() error {
	defer a.close()
	return a.root.Execute()
}

func newRootCmd(app *cliApp) *cobra.Command {
	root := &cobra.Command{
		Use:           "cartella",
		Short:         "Local shopping cart backed by a remote product catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.open()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&app.configPath, "config", "", "config file (default ./config.yml or ./etc/config.yml)")
	flags.StringVar(&app.driver, "driver", "", "database driver override: sqlite or postgres")
	flags.StringVar(&app.dsn, "dsn", "", "database DSN override")
	flags.StringVar(&app.catalogURL, "catalog-url", "", "catalog base URL override")
	flags.BoolVarP(&app.verbose, "verbose", "v", false, "write application logs")

	root.AddCommand(
		newCatalogCmd(app),
		newProductsCmd(app),
		newCartCmd(app),
		newUserCmd(app),
		newCardsCmd(app),
	)
	return root
}

func (a *cliApp) open() error {
	if !a.verbose {
		a.restoreLg = logger.Replace(logger.Nop())
	}
	cfg := config.LoadFile(a.configPath)
	if a.verbose {
		logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	if a.driver != "" {
		cfg.Database.Driver = a.driver
	}
	if a.dsn != "" {
		cfg.Database.DSN = a.dsn
	}
	if a.catalogURL != "" {
		cfg.Catalog.BaseURL = a.catalogURL
	}
	container, err := provider.NewContainer(cfg)
	if err != nil {
		return fmt.Errorf("open local store: %w", err)
	}
	a.container = container
	return nil
}

func (a *cliApp) close() {
	if a.container != nil {
		a.container.Close()
		a.container = nil
	}
	if a.restoreLg != nil {
		a.restoreLg()
		a.restoreLg = nil
	}
}

// alertError 将提示类错误渲染为 "标题: 文案"
func alertError(err error) error {
	var alert *service.AppError
	if errors.As(err, &alert) {
		return fmt.Errorf("%s: %s", alert.Title, alert.Message)
	}
	return err
}

func printf(w io.Writer, format string, args ...interface{}) {
	_, _ = fmt.Fprintf(w, format, args...)
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
