package cli

import (
	"github.com/spf13/cobra"

	"rolo/internal/store"
)

func newInitCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create an empty address book in the active dir",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := app.Dir
			if dir == "" {
				d, err := store.DefaultDir()
				if err != nil {
					return writeErr(cmd, err)
				}
				dir = d
			}
			s := store.Store{Dir: dir}
			db, err := s.Load()
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := s.Save(db); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]string{"dir": dir}})
		},
	}
	return cmd
}

func newEventsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Event log commands",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List recorded mutation events, oldest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := loadSession(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			evs, err := sess.Store.ListEvents()
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": evs})
		},
	}

	cmd.AddCommand(list)
	return cmd
}

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Global config commands",
	}

	get := &cobra.Command{
		Use:   "get",
		Short: "Print the global config",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": cfg})
		},
	}

	var bookDir, outFormat, mode string
	set := &cobra.Command{
		Use:   "set",
		Short: "Update global config fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return writeErr(cmd, err)
			}
			if cmd.Flags().Changed("book-dir") {
				cfg.BookDir = bookDir
			}
			if cmd.Flags().Changed("output-format") {
				cfg.Format = outFormat
			}
			if cmd.Flags().Changed("mode") {
				cfg.Mode = mode
			}
			if err := store.SaveConfig(cfg); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": cfg})
		},
	}
	set.Flags().StringVar(&bookDir, "book-dir", "", "Address-book directory")
	set.Flags().StringVar(&outFormat, "output-format", "", "Default output format (json|table)")
	set.Flags().StringVar(&mode, "mode", "", "Default entity mode (people|companies|all)")

	cmd.AddCommand(get)
	cmd.AddCommand(set)
	return cmd
}
