package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"tasklist/internal/config"
	"tasklist/internal/kvstore"
	"tasklist/internal/logging"
	"tasklist/internal/paths"
	"tasklist/internal/task"
	"tasklist/internal/tasklist"
)

type App struct {
	Config     *config.Config
	ConfigPath string
	StorePath  string
	Logger     *log.Logger
	Tasks      *tasklist.TaskList

	logCloser io.Closer
}

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "tasklist",
		Short:         "A small to-do list kept in a local key-value store",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := initApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()
			return startTUI(app)
		},
	}
	cmd.PersistentFlags().String("config", "", "Path to config.json (defaults to ~/.config/tasklist/config.json)")
	cmd.PersistentFlags().String("store", "", "Path to the task store file (overrides config store_path)")

	cmd.AddCommand(newAddCmd())
	cmd.AddCommand(newEditCmd())
	cmd.AddCommand(newDeleteCmd())
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newSearchCmd())
	cmd.AddCommand(newSortCmd())
	cmd.AddCommand(newClearCmd())
	cmd.AddCommand(newExportCmd())
	cmd.AddCommand(newImportCmd())
	cmd.AddCommand(newConfigCmd())

	return cmd
}

func initApp(cmd *cobra.Command) (*App, error) {
	cfgPath, err := resolveConfigPath(cmd)
	if err != nil {
		return nil, err
	}
	cfg, err := config.LoadOrCreate(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	logger, closer, err := openLogger(cfg, cfgPath)
	if err != nil {
		return nil, err
	}

	storePath, _ := cmd.Flags().GetString("store")
	if storePath == "" {
		storePath = cfg.StorePath
	}
	if storePath == "" {
		storePath = paths.Beside(cfgPath, paths.StoreFile)
	}

	store := task.NewKVStore(kvstore.NewFile(storePath), cfg.StorageKey)
	list := tasklist.New(store,
		tasklist.WithIDGenerator(task.NewIDGenerator(cfg.IDStrategy)),
		tasklist.WithLogger(logger),
	)
	logger.Debug("app initialized", "config", cfgPath, "store", storePath, "key", cfg.StorageKey)

	return &App{
		Config:     cfg,
		ConfigPath: cfgPath,
		StorePath:  storePath,
		Logger:     logger,
		Tasks:      list,
		logCloser:  closer,
	}, nil
}

func openLogger(cfg *config.Config, cfgPath string) (*log.Logger, io.Closer, error) {
	opts := logging.DefaultOptions()
	level := cfg.LogLevel
	if env := os.Getenv("TASKLIST_LOG_LEVEL"); env != "" {
		level = env
	}
	opts.Level = logging.ParseLevel(level)

	logPath := cfg.LogPath
	if logPath == "" {
		logPath = paths.Beside(cfgPath, paths.LogFile)
	}
	return logging.OpenFile(logPath, opts)
}

func (a *App) Close() error {
	if a == nil || a.logCloser == nil {
		return nil
	}
	return a.logCloser.Close()
}
