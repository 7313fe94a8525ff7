package cli

import (
	"fmt"
	"os"
	"strings"

	"rolo/internal/book"
	"rolo/internal/format"
	"rolo/internal/store"
	"rolo/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	Dir        string
	PrettyJSON bool
	Format     string
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "rolo",
		Short:        "rolo (local-first) address book CLI + TUI",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  rolo

  # Scriptable commands
  rolo people add --name "Alice Pauline" --phone 555-0100
  rolo companies list
  rolo entities --mode all

  # Direct lookup (shortcut for: rolo people show <person-id>)
  rolo per-vthxk3aq
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.Dir, "dir", envOr("ROLO_DIR", ""), "Path to the address-book dir (overrides config bookDir)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("ROLO_FORMAT", "json"), "Output format (json|table)")

	cmd.AddCommand(newInitCmd(app))
	cmd.AddCommand(newPeopleCmd(app))
	cmd.AddCommand(newCompaniesCmd(app))
	cmd.AddCommand(newEntitiesCmd(app))
	cmd.AddCommand(newModeCmd(app))
	cmd.AddCommand(newStatusCmd(app))
	cmd.AddCommand(newEventsCmd(app))
	cmd.AddCommand(newConfigCmd(app))

	return cmd
}

func runTUI(app *App) error {
	sess, err := loadSession(app)
	if err != nil {
		return err
	}
	return tui.Run(sess.Manager, sess.Store, func(m *book.Manager) error {
		return saveSession(sess, m)
	})
}

// session bundles everything a command needs: the snapshot store, the global
// config and the in-memory manager seeded from both.
type session struct {
	Store   store.Store
	Config  store.GlobalConfig
	DB      *store.DB
	Manager *book.Manager
}

func loadSession(app *App) (*session, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}

	dir := app.Dir
	if dir == "" {
		dir, err = store.DefaultDir()
		if err != nil {
			return nil, err
		}
		app.Dir = dir
	}

	s := store.Store{Dir: dir}
	db, err := s.Load()
	if err != nil {
		return nil, err
	}

	m := book.NewManager(db.People, db.Companies, cfg.Prefs(dir))
	// Restore the persisted selector mode; ignore junk in the file.
	if db.Mode != "" {
		_ = m.SetCurrEntity(db.Mode)
	} else if cfg.Mode != "" {
		_ = m.SetCurrEntity(cfg.Mode)
	}

	return &session{Store: s, Config: cfg, DB: db, Manager: m}, nil
}

// saveSession writes the manager's current state back through the snapshot.
func saveSession(sess *session, m *book.Manager) error {
	people, companies := m.Snapshot()
	sess.DB.People = people
	sess.DB.Companies = companies
	sess.DB.Mode = m.CurrEntity()
	return sess.Store.Save(sess.DB)
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	// Table output renders the payload itself, not the JSON envelope.
	if app.Format == "table" {
		if env, ok := v.(map[string]any); ok {
			if data, ok := env["data"]; ok {
				v = data
			}
		}
	}
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
