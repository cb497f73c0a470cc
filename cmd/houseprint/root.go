package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-houseprint/internal/logging"
	"github.com/goliatone/go-houseprint/pkg/config"
	"github.com/goliatone/go-houseprint/pkg/filter"
	"github.com/goliatone/go-houseprint/pkg/loader"
	"github.com/goliatone/go-houseprint/pkg/orchestrator"
	"github.com/goliatone/go-houseprint/pkg/prompt"
	"github.com/goliatone/go-houseprint/pkg/session"
	"github.com/goliatone/go-houseprint/pkg/templates"
)

// app carries the state shared by every subcommand.
type app struct {
	out    io.Writer
	errOut io.Writer

	configPath string
	envFiles   []string

	endpoint     string
	templatesDir string
	timeZone     string
	theme        string
	logLevel     string

	cfg    *config.Config
	logger *zap.Logger
	driver prompt.Driver
}

func newApp(out, errOut io.Writer) *app {
	return &app{out: out, errOut: errOut, logger: zap.NewNop()}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "houseprint",
		Short:         "Browse property records and print sheets",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			_ = a.logger.Sync()
		},
	}
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", config.DefaultPath, "configuration file (YAML)")
	flags.StringSliceVar(&a.envFiles, "env-file", []string{".env"}, ".env files to load")
	flags.StringVar(&a.endpoint, "endpoint", "", "record endpoint URL or JSON file (overrides "+config.EnvEndpointURL+")")
	flags.StringVar(&a.templatesDir, "templates-dir", "", "directory with extra template documents")
	flags.StringVar(&a.timeZone, "time-zone", "", "time zone used to print update dates")
	flags.StringVar(&a.theme, "theme", "", "badge palette variant (color, mono)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(
		newListCmd(a),
		newOptionsCmd(a),
		newTemplatesCmd(a),
		newRenderCmd(a),
		newPrintCmd(a),
		newBrowseCmd(a),
		newConfigCmd(a),
	)
	return root
}

// setup resolves the configuration: defaults, YAML file, .env, environment,
// then flags.
func (a *app) setup() error {
	if err := config.LoadDotEnv(a.envFiles...); err != nil {
		return err
	}
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.endpoint != "" {
		cfg.EndpointURL = a.endpoint
	}
	if a.templatesDir != "" {
		cfg.TemplatesDir = a.templatesDir
	}
	if a.timeZone != "" {
		cfg.TimeZone = a.timeZone
	}
	if a.theme != "" {
		cfg.ThemeVariant = a.theme
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	if err := cfg.ValidateLocal(); err != nil {
		return err
	}

	logger, err := logging.New(logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, Output: a.errOut})
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	return nil
}

func (a *app) orchestrator() (*orchestrator.Orchestrator, error) {
	timeout, err := a.cfg.Timeout()
	if err != nil {
		return nil, err
	}
	loc, err := a.cfg.Location()
	if err != nil {
		return nil, err
	}

	var dirs []fs.FS
	if dir := strings.TrimSpace(a.cfg.TemplatesDir); dir != "" {
		dirs = append(dirs, os.DirFS(dir))
	}
	reg, err := templates.Load(dirs...)
	if err != nil {
		return nil, err
	}

	orch := orchestrator.New(
		orchestrator.WithLogger(a.logger),
		orchestrator.WithLoader(loader.New(loader.WithTimeout(timeout), loader.WithLogger(a.logger))),
		orchestrator.WithTemplates(reg),
		orchestrator.WithLocation(loc),
		orchestrator.WithThemeVariant(a.cfg.ThemeVariant),
	)
	if err := orch.Err(); err != nil {
		return nil, err
	}
	return orch, nil
}

// filterFlags are shared by the commands that narrow the record list.
type filterFlags struct {
	query    string
	status   string
	district string
	id       string
	template string
}

func (f *filterFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.query, "query", "q", "", "free-text search")
	cmd.Flags().StringVar(&f.status, "status", filter.All, "status filter")
	cmd.Flags().StringVar(&f.district, "district", filter.All, "district filter")
	cmd.Flags().StringVar(&f.id, "id", "", "house_id to select")
	cmd.Flags().StringVarP(&f.template, "template", "t", session.DefaultTemplate, "template id")
}

// opened is a loaded session plus the banner to show for a failed load.
type opened struct {
	orch    *orchestrator.Orchestrator
	session *session.Session
	banner  string
}

// open loads the records and applies f. A load failure leaves an empty
// session and a banner instead of an error.
func (a *app) open(ctx context.Context, f filterFlags) (*opened, error) {
	if err := a.cfg.Validate(); err != nil {
		return nil, err
	}
	src, err := loader.ParseSource(a.cfg.EndpointURL)
	if err != nil {
		return nil, err
	}
	orch, err := a.orchestrator()
	if err != nil {
		return nil, err
	}

	sess, err := orch.Open(ctx, src, session.WithTemplate(f.template))
	out := &opened{orch: orch, session: sess}
	if err != nil {
		var loadErr *loader.LoadError
		if !errors.As(err, &loadErr) {
			return nil, err
		}
		out.banner = fmt.Sprintf("データの読み込みに失敗しました（%v）", loadErr)
		fmt.Fprintln(a.errOut, "!", out.banner)
	}

	sess.SetFilter(filter.State{Query: f.query, Status: f.status, District: f.district})
	if f.id != "" {
		if err := sess.Select(f.id); err != nil {
			return nil, err
		}
	}
	return out, nil
}
