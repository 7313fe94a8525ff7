package cli

import (
	"strings"

	"rolo/internal/model"

	"github.com/spf13/cobra"
)

func newPeopleCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "people",
		Aliases: []string{"person"},
		Short:   "Person commands",
	}
	cmd.AddCommand(newPeopleAddCmd(app))
	cmd.AddCommand(newPeopleListCmd(app))
	cmd.AddCommand(newPeopleShowCmd(app))
	cmd.AddCommand(newPeopleEditCmd(app))
	cmd.AddCommand(newPeopleDeleteCmd(app))
	cmd.AddCommand(newPeopleNoteCmd(app))
	cmd.AddCommand(newPeopleFindCmd(app))
	return cmd
}

type personFlags struct {
	name    string
	phone   string
	email   string
	address string
	note    string
	tags    []string
}

func (f *personFlags) register(cmd *cobra.Command, requireName bool) {
	cmd.Flags().StringVar(&f.name, "name", "", "Person name")
	cmd.Flags().StringVar(&f.phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&f.email, "email", "", "Email address")
	cmd.Flags().StringVar(&f.address, "address", "", "Postal address")
	cmd.Flags().StringVar(&f.note, "note", "", "Free-form note (markdown)")
	cmd.Flags().StringSliceVar(&f.tags, "tag", nil, "Tag (repeatable)")
	if requireName {
		_ = cmd.MarkFlagRequired("name")
	}
}

func newPeopleAddCmd(app *App) *cobra.Command {
	f := &personFlags{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a person",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := loadSession(app)
			if err != nil {
				return writeErr(cmd, err)
			}

			p := model.Person{
				ID:      sess.Store.NextID(sess.DB, "per"),
				Name:    strings.TrimSpace(f.name),
				Phone:   f.phone,
				Email:   f.email,
				Address: f.address,
				Note:    f.note,
				Tags:    f.tags,
			}

			exists, err := sess.Manager.HasPerson(&p)
			if err != nil {
				return writeErr(cmd, err)
			}
			if exists {
				return writeErr(cmd, errDuplicate("person", p.Name))
			}
			if err := sess.Manager.AddPerson(&p); err != nil {
				return writeErr(cmd, err)
			}
			if err := saveSession(sess, sess.Manager); err != nil {
				return writeErr(cmd, err)
			}
			_ = sess.Store.AppendEvent("person.add", p.ID, p)
			return writeOut(cmd, app, map[string]any{"data": p})
		},
	}

	f.register(cmd, true)
	return cmd
}

func newPeopleListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List people (current filter)",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := loadSession(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": sess.Manager.FilteredPeople().AsList()})
		},
	}
	return cmd
}

func newPeopleShowCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <person-id|name>",
		Short: "Show one person",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := loadSession(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			p, ok := sess.DB.FindPerson(strings.TrimSpace(args[0]))
			if !ok {
				return writeErr(cmd, errNotFound("person", args[0]))
			}
			return writeOut(cmd, app, map[string]any{"data": *p})
		},
	}
	return cmd
}

func newPeopleEditCmd(app *App) *cobra.Command {
	f := &personFlags{}

	cmd := &cobra.Command{
		Use:   "edit <person-id|name>",
		Short: "Edit a person (only the flags you pass change)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := loadSession(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			target, ok := sess.DB.FindPerson(strings.TrimSpace(args[0]))
			if !ok {
				return writeErr(cmd, errNotFound("person", args[0]))
			}

			edited := target.Clone()
			if cmd.Flags().Changed("name") {
				edited.Name = strings.TrimSpace(f.name)
			}
			if cmd.Flags().Changed("phone") {
				edited.Phone = f.phone
			}
			if cmd.Flags().Changed("email") {
				edited.Email = f.email
			}
			if cmd.Flags().Changed("address") {
				edited.Address = f.address
			}
			if cmd.Flags().Changed("note") {
				edited.Note = f.note
			}
			if cmd.Flags().Changed("tag") {
				edited.Tags = f.tags
			}

			if err := sess.Manager.SetPerson(target, &edited); err != nil {
				return writeErr(cmd, err)
			}
			if err := saveSession(sess, sess.Manager); err != nil {
				return writeErr(cmd, err)
			}
			_ = sess.Store.AppendEvent("person.edit", edited.ID, edited)
			return writeOut(cmd, app, map[string]any{"data": edited})
		},
	}

	f.register(cmd, false)
	return cmd
}

func newPeopleDeleteCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <person-id|name>",
		Short: "Delete a person",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := loadSession(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			target, ok := sess.DB.FindPerson(strings.TrimSpace(args[0]))
			if !ok {
				return writeErr(cmd, errNotFound("person", args[0]))
			}
			deleted := target.Clone()
			if err := sess.Manager.DeletePerson(target); err != nil {
				return writeErr(cmd, err)
			}
			if err := saveSession(sess, sess.Manager); err != nil {
				return writeErr(cmd, err)
			}
			_ = sess.Store.AppendEvent("person.delete", deleted.ID, deleted)
			return writeOut(cmd, app, map[string]any{"data": deleted})
		},
	}
	return cmd
}

func newPeopleNoteCmd(app *App) *cobra.Command {
	var note string

	cmd := &cobra.Command{
		Use:   "note <person-id|name>",
		Short: "Set a person's note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := loadSession(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			target, ok := sess.DB.FindPerson(strings.TrimSpace(args[0]))
			if !ok {
				return writeErr(cmd, errNotFound("person", args[0]))
			}

			edited := target.Clone()
			edited.Note = note
			if err := sess.Manager.SetPerson(target, &edited); err != nil {
				return writeErr(cmd, err)
			}
			if err := saveSession(sess, sess.Manager); err != nil {
				return writeErr(cmd, err)
			}
			_ = sess.Store.AppendEvent("person.note", edited.ID, map[string]string{"note": note})
			return writeOut(cmd, app, map[string]any{"data": edited})
		},
	}

	cmd.Flags().StringVar(&note, "note", "", "Note body (markdown; empty clears)")
	return cmd
}

func newPeopleFindCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find <query>",
		Short: "Filter the people view by free-text query",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := loadSession(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			q := strings.Join(args, " ")
			err = sess.Manager.UpdateFilteredPersonList(func(p model.Person) bool {
				return p.MatchesQuery(q)
			})
			if err != nil {
				return writeErr(cmd, err)
			}
			// The find switches the mode to people; persist that.
			if err := saveSession(sess, sess.Manager); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": sess.Manager.FilteredPeople().AsList()})
		},
	}
	return cmd
}
