package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newEntitiesCmd(app *App) *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "entities",
		Short: "List the current filtered entity view",
		Long: "Lists whatever the active mode selects: the filtered people view,\n" +
			"the filtered companies view, or (in all mode) companies followed by people.",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := loadSession(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if cmd.Flags().Changed("mode") {
				if err := sess.Manager.SetCurrEntity(mode); err != nil {
					return writeErr(cmd, err)
				}
				if err := saveSession(sess, sess.Manager); err != nil {
					return writeErr(cmd, err)
				}
			}
			return writeOut(cmd, app, map[string]any{
				"mode": sess.Manager.CurrEntity(),
				"data": sess.Manager.FilteredEntityList(),
			})
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "", "Switch the view first (people|companies|all)")
	return cmd
}

func newModeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "mode [people|companies|all]",
		Short:     "Show or set the active entity mode",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"people", "companies", "all"},
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := loadSession(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if len(args) == 0 {
				return writeOut(cmd, app, map[string]any{"data": sess.Manager.CurrEntity()})
			}
			if err := sess.Manager.SetCurrEntity(args[0]); err != nil {
				return writeErr(cmd, err)
			}
			if err := saveSession(sess, sess.Manager); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": sess.Manager.CurrEntity()})
		},
	}
	return cmd
}

func newStatusCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Summarize the address book",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := loadSession(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if app.Format == "table" {
				// The classic three-line summary.
				fmt.Fprint(cmd.OutOrStdout(), sess.Manager.String())
				return nil
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"mode":      sess.Manager.CurrEntity(),
				"entities":  sess.Manager.NumEntities(),
				"people":    sess.Manager.NumPeople(),
				"companies": sess.Manager.NumCompanies(),
				"empty":     sess.Manager.IsEmpty(),
			}})
		},
	}
	return cmd
}
