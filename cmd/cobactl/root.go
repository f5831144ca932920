package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/corpac/coba/internal/cli"
	"github.com/corpac/coba/internal/client"
	"github.com/corpac/coba/internal/core"
	"github.com/corpac/coba/internal/demo"
)

type app struct {
	demo   bool
	apiURL string
	out    io.Writer

	cfg      *cli.Config
	api      *client.Client
	registry cli.Registry
	views    cli.Views
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "cobactl",
		Short:         "cobactl manages the COBA monitoring dashboard from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.out = cmd.OutOrStdout()
			return a.setup(cmd.ErrOrStderr())
		},
	}
	root.PersistentFlags().BoolVar(&a.demo, "demo", false, "use in-memory demo data instead of the API")
	root.PersistentFlags().StringVar(&a.apiURL, "api", "", "API base URL (overrides the saved setting and API_URL)")

	for _, name := range cli.CollectionNames {
		root.AddCommand(a.collectionCmd(name))
	}
	root.AddCommand(
		a.dashboardCmd(),
		a.isoCmd(),
		a.chatCmd(),
		a.setKeyCmd(),
		a.setAPICmd(),
	)
	return root
}

func (a *app) setup(stderr io.Writer) error {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return fmt.Errorf("load .env: %w", err)
		}
	}

	cfg, err := cli.LoadConfig()
	if err != nil {
		return err
	}
	a.cfg = cfg

	notifier := cli.NewConsoleNotifier(stderr, stderr == os.Stderr)

	if a.demo {
		catalog, err := core.NewISOService()
		if err != nil {
			return err
		}
		now := time.Now
		data := demo.Data(now())
		a.registry = cli.DemoSources(data, now).Registry(notifier)
		a.views = cli.DemoViews{Data: data, Catalog: catalog, Now: now}
		return nil
	}

	baseURL := a.apiURL
	if baseURL == "" {
		baseURL = cfg.BaseURL()
	}
	a.api = client.NewClient(baseURL, cfg.AssistantKey)
	a.registry = cli.APISources(a.api).Registry(notifier)
	a.views = a.api
	return nil
}

func (a *app) collectionCmd(name string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   name,
		Short: "Browse, view and create " + name,
	}

	var search string
	list := &cobra.Command{
		Use:   "list",
		Short: "List records, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			col, err := a.registry.Get(name)
			if err != nil {
				return err
			}
			rows, err := col.List(cmd.Context(), search)
			if err != nil {
				return err
			}
			return cli.WriteTable(a.out, col.Columns(), rows)
		},
	}
	list.Flags().StringVar(&search, "search", "", "case-insensitive text filter")

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			col, err := a.registry.Get(name)
			if err != nil {
				return err
			}
			rec, err := col.Show(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return cli.WriteRecord(a.out, rec)
		},
	}

	var file string
	create := &cobra.Command{
		Use:   "create -f form.yaml",
		Short: "Create a record from a YAML form (- reads stdin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			col, err := a.registry.Get(name)
			if err != nil {
				return err
			}
			data, err := readForm(cmd, file)
			if err != nil {
				return err
			}
			errs, err := col.Create(cmd.Context(), data)
			if err != nil {
				return err
			}
			if errs != nil {
				for _, f := range sortedKeys(errs) {
					fmt.Fprintf(cmd.ErrOrStderr(), "  %s: %s\n", f, errs[f])
				}
				return errors.New("el formulario tiene errores")
			}
			return nil
		},
	}
	create.Flags().StringVarP(&file, "file", "f", "", "form file")
	_ = create.MarkFlagRequired("file")

	cmd.AddCommand(list, show, create)
	return cmd
}

func (a *app) dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show KPIs and alerts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := a.views.Dashboard(cmd.Context())
			if err != nil {
				return err
			}
			return cli.WriteDashboard(a.out, snap)
		},
	}
}

func (a *app) isoCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "iso <standard>",
		Short:     "Show ISO clause compliance (iso20000, iso9001)",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"iso20000", "iso9001"},
		RunE: func(cmd *cobra.Command, args []string) error {
			iso, err := a.views.ISO(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return cli.WriteISO(a.out, iso)
		},
	}
}

func (a *app) chatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Talk to the assistant (/salir to quit)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.api == nil {
				return errors.New("the assistant needs the API; run without --demo")
			}
			return cli.Chat(cmd.Context(), a.api, cmd.InOrStdin(), a.out)
		},
	}
}

func (a *app) setKeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-key <key>",
		Short: "Save the completion API key sent with assistant messages",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.cfg.AssistantKey = args[0]
			if err := cli.SaveConfig(a.cfg); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "Assistant key saved")
			return nil
		},
	}
}

func (a *app) setAPICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-api <url>",
		Short: "Save the API base URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.cfg.APIURL = args[0]
			if err := cli.SaveConfig(a.cfg); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "API URL set to %s\n", args[0])
			return nil
		},
	}
}

func readForm(cmd *cobra.Command, file string) ([]byte, error) {
	if file == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read form: %w", err)
	}
	return data, nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
