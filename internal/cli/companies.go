package cli

import (
	"strings"

	"rolo/internal/model"

	"github.com/spf13/cobra"
)

func newCompaniesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "companies",
		Aliases: []string{"company"},
		Short:   "Company commands",
	}
	cmd.AddCommand(newCompaniesAddCmd(app))
	cmd.AddCommand(newCompaniesListCmd(app))
	cmd.AddCommand(newCompaniesShowCmd(app))
	cmd.AddCommand(newCompaniesEditCmd(app))
	cmd.AddCommand(newCompaniesDeleteCmd(app))
	cmd.AddCommand(newCompaniesPeopleCmd(app))
	cmd.AddCommand(newCompaniesFindCmd(app))
	return cmd
}

type companyFlags struct {
	name        string
	industry    string
	location    string
	description string
	website     string
	email       string
	phone       string
	address     string
}

func (f *companyFlags) register(cmd *cobra.Command, requireName bool) {
	cmd.Flags().StringVar(&f.name, "name", "", "Company name")
	cmd.Flags().StringVar(&f.industry, "industry", "", "Industry")
	cmd.Flags().StringVar(&f.location, "location", "", "Location")
	cmd.Flags().StringVar(&f.description, "description", "", "Description (markdown)")
	cmd.Flags().StringVar(&f.website, "website", "", "Website URL")
	cmd.Flags().StringVar(&f.email, "email", "", "Email address")
	cmd.Flags().StringVar(&f.phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&f.address, "address", "", "Postal address")
	if requireName {
		_ = cmd.MarkFlagRequired("name")
	}
}

func newCompaniesAddCmd(app *App) *cobra.Command {
	f := &companyFlags{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a company",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := loadSession(app)
			if err != nil {
				return writeErr(cmd, err)
			}

			c := model.Company{
				ID:          sess.Store.NextID(sess.DB, "com"),
				Name:        strings.TrimSpace(f.name),
				Industry:    f.industry,
				Location:    f.location,
				Description: f.description,
				Website:     f.website,
				Email:       f.email,
				Phone:       f.phone,
				Address:     f.address,
			}

			exists, err := sess.Manager.HasCompany(&c)
			if err != nil {
				return writeErr(cmd, err)
			}
			if exists {
				return writeErr(cmd, errDuplicate("company", c.Name))
			}
			if err := sess.Manager.AddCompany(&c); err != nil {
				return writeErr(cmd, err)
			}
			if err := saveSession(sess, sess.Manager); err != nil {
				return writeErr(cmd, err)
			}
			_ = sess.Store.AppendEvent("company.add", c.ID, c)
			return writeOut(cmd, app, map[string]any{"data": c})
		},
	}

	f.register(cmd, true)
	return cmd
}

func newCompaniesListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List companies (current filter)",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := loadSession(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": sess.Manager.FilteredCompanies().AsList()})
		},
	}
	return cmd
}

func newCompaniesShowCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <company-id|name>",
		Short: "Show one company",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := loadSession(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			c, ok := sess.DB.FindCompany(strings.TrimSpace(args[0]))
			if !ok {
				return writeErr(cmd, errNotFound("company", args[0]))
			}
			return writeOut(cmd, app, map[string]any{"data": *c})
		},
	}
	return cmd
}

func newCompaniesEditCmd(app *App) *cobra.Command {
	f := &companyFlags{}

	cmd := &cobra.Command{
		Use:   "edit <company-id|name>",
		Short: "Edit a company (only the flags you pass change)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := loadSession(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			target, ok := sess.DB.FindCompany(strings.TrimSpace(args[0]))
			if !ok {
				return writeErr(cmd, errNotFound("company", args[0]))
			}

			edited := target.Clone()
			set := func(flag string, dst *string, v string) {
				if cmd.Flags().Changed(flag) {
					*dst = v
				}
			}
			set("name", &edited.Name, strings.TrimSpace(f.name))
			set("industry", &edited.Industry, f.industry)
			set("location", &edited.Location, f.location)
			set("description", &edited.Description, f.description)
			set("website", &edited.Website, f.website)
			set("email", &edited.Email, f.email)
			set("phone", &edited.Phone, f.phone)
			set("address", &edited.Address, f.address)

			if err := sess.Manager.SetCompany(target, &edited); err != nil {
				return writeErr(cmd, err)
			}
			if err := saveSession(sess, sess.Manager); err != nil {
				return writeErr(cmd, err)
			}
			_ = sess.Store.AppendEvent("company.edit", edited.ID, edited)
			return writeOut(cmd, app, map[string]any{"data": edited})
		},
	}

	f.register(cmd, false)
	return cmd
}

func newCompaniesDeleteCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <company-id|name>",
		Short: "Delete a company",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := loadSession(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			target, ok := sess.DB.FindCompany(strings.TrimSpace(args[0]))
			if !ok {
				return writeErr(cmd, errNotFound("company", args[0]))
			}
			deleted := target.Clone()
			if err := sess.Manager.DeleteCompany(target); err != nil {
				return writeErr(cmd, err)
			}
			if err := saveSession(sess, sess.Manager); err != nil {
				return writeErr(cmd, err)
			}
			_ = sess.Store.AppendEvent("company.delete", deleted.ID, deleted)
			return writeOut(cmd, app, map[string]any{"data": deleted})
		},
	}
	return cmd
}

// newCompaniesPeopleCmd manages a company's ordered roster.
func newCompaniesPeopleCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "people",
		Short: "Manage a company's roster",
	}

	add := &cobra.Command{
		Use:   "add <company-id|name> <person-id|name>",
		Short: "Attach a person from the book to the company roster",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := loadSession(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			target, ok := sess.DB.FindCompany(strings.TrimSpace(args[0]))
			if !ok {
				return writeErr(cmd, errNotFound("company", args[0]))
			}
			person, ok := sess.DB.FindPerson(strings.TrimSpace(args[1]))
			if !ok {
				return writeErr(cmd, errNotFound("person", args[1]))
			}

			edited := target.Clone()
			for _, existing := range edited.People {
				if existing.SamePerson(*person) {
					return writeErr(cmd, errDuplicate("person", person.Name))
				}
			}
			edited.People = append(edited.People, person.Clone())

			if err := sess.Manager.SetCompany(target, &edited); err != nil {
				return writeErr(cmd, err)
			}
			if err := saveSession(sess, sess.Manager); err != nil {
				return writeErr(cmd, err)
			}
			_ = sess.Store.AppendEvent("company.people.add", edited.ID, map[string]string{"person": person.ID})
			return writeOut(cmd, app, map[string]any{"data": edited})
		},
	}

	remove := &cobra.Command{
		Use:   "remove <company-id|name> <person-id|name>",
		Short: "Detach a person from the company roster",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := loadSession(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			target, ok := sess.DB.FindCompany(strings.TrimSpace(args[0]))
			if !ok {
				return writeErr(cmd, errNotFound("company", args[0]))
			}

			ref := strings.TrimSpace(args[1])
			edited := target.Clone()
			idx := -1
			for i, existing := range edited.People {
				if existing.ID == ref || existing.Name == ref {
					idx = i
					break
				}
			}
			if idx < 0 {
				return writeErr(cmd, errNotFound("person", args[1]))
			}
			removed := edited.People[idx]
			edited.People = append(edited.People[:idx], edited.People[idx+1:]...)

			if err := sess.Manager.SetCompany(target, &edited); err != nil {
				return writeErr(cmd, err)
			}
			if err := saveSession(sess, sess.Manager); err != nil {
				return writeErr(cmd, err)
			}
			_ = sess.Store.AppendEvent("company.people.remove", edited.ID, map[string]string{"person": removed.ID})
			return writeOut(cmd, app, map[string]any{"data": edited})
		},
	}

	cmd.AddCommand(add)
	cmd.AddCommand(remove)
	return cmd
}

func newCompaniesFindCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find <query>",
		Short: "Filter the companies view by free-text query",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := loadSession(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			q := strings.Join(args, " ")
			err = sess.Manager.UpdateFilteredCompanyList(func(c model.Company) bool {
				return c.MatchesQuery(q)
			})
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := saveSession(sess, sess.Manager); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": sess.Manager.FilteredCompanies().AsList()})
		},
	}
	return cmd
}
