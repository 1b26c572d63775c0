package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"barista/internal/app"
	"barista/internal/domain"
	"barista/internal/export"

	"github.com/spf13/cobra"
)

func newAddCmd(c *cli) *cobra.Command {
	var form domain.CoffeeForm
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new coffee bean",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStores(cmd.Context(), c.cfg, c.log)
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			id, err := app.NewCoffeeService(st.coffees, c.log).Add(cmd.Context(), form)
			var ve *domain.ValidationError
			if errors.As(err, &ve) {
				return fmt.Errorf("%s: %w", ve.Field, ve)
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), id)
			return err
		},
	}

	f := cmd.Flags()
	f.StringVar(&form.Name, "name", "", "Bean name (required)")
	f.StringVar(&form.Origin, "origin", "", "Origin (required)")
	f.StringVar(&form.RoastLevel, "roast", "", "Roast level: light, medium-light, medium, medium-dark, dark")
	f.StringVar(&form.GrindSize, "grind", "", "Grind size, 1 to 10")
	f.StringVar(&form.WaterTemperature, "temp", "", "Water temperature in °C")
	f.StringVar(&form.CoffeeAmount, "amount", "", "Coffee dose in grams")
	f.StringVar(&form.Notes, "notes", "", "Tasting notes")
	return cmd
}

func newListCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "list [query]",
		Short: "List recorded beans, optionally filtered by name or origin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStores(cmd.Context(), c.cfg, c.log)
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			var query string
			if len(args) == 1 {
				query = args[0]
			}
			records := app.NewCoffeeService(st.coffees, c.log).List(cmd.Context(), query)
			return printCoffees(cmd.OutOrStdout(), records)
		},
	}
}

func printCoffees(w io.Writer, records []domain.CoffeeRecord) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tORIGIN\tROAST\tGRIND\tTEMP\tDOSE\tRATING")
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.Name, r.Origin, r.RoastLevel,
			intCell(r.GrindSize), floatCell(r.WaterTemperature), floatCell(r.CoffeeAmount), floatCell(r.Rating))
	}
	return tw.Flush()
}

func intCell(p *int) string {
	if p == nil {
		return "-"
	}
	return strconv.Itoa(*p)
}

func floatCell(p *float64) string {
	if p == nil {
		return "-"
	}
	return strconv.FormatFloat(*p, 'f', -1, 64)
}

func newGuidesCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "guides",
		Short: "Print the brew guides",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for i, g := range app.NewBrewService().Guides() {
				if i > 0 {
					fmt.Fprintln(w)
				}
				fmt.Fprintln(w, g.Method)
				for n, step := range g.Steps {
					fmt.Fprintf(w, "  %d. %s\n", n+1, step)
				}
			}
			return nil
		},
	}
}

func newExportCmd(c *cli) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every recorded bean to an xlsx spreadsheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStores(cmd.Context(), c.cfg, c.log)
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			records, err := app.NewCoffeeService(st.coffees, c.log).All(cmd.Context())
			if err != nil {
				return err
			}

			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := export.WriteXLSX(f, records); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %d coffees to %s\n", len(records), out)
			return err
		},
	}
	cmd.Flags().StringVar(&out, "out", "coffees.xlsx", "Output file")
	return cmd
}

func newSetupUserCmd(c *cli) *cobra.Command {
	var username, password string
	cmd := &cobra.Command{
		Use:   "setup-user",
		Short: "Create the first login user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStores(cmd.Context(), c.cfg, c.log)
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			if !st.persistentUsers {
				return fmt.Errorf("store driver %q does not persist users; use postgres or sqlite", c.cfg.Store.Driver)
			}
			if password == "" {
				password = os.Getenv("BARISTA_PASSWORD")
			}
			if err := app.NewAuthService(st.users, st.sessions).CreateInitialUser(cmd.Context(), username, password); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "created user %s\n", username)
			return err
		},
	}
	cmd.Flags().StringVar(&username, "username", "", "Username")
	cmd.Flags().StringVar(&password, "password", "", "Password (or set BARISTA_PASSWORD)")
	return cmd
}
