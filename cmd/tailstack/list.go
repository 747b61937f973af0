package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tailstack/internal/stylesheet"
	"github.com/alexisbeaulieu97/tailstack/internal/ui"
)

type listOptions struct {
	ConfigPath string
	Family     string
	JSONOutput bool
	Verbose    bool
}

func newListCmd(root *rootFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the generated utility classes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Verbose = root.verbose

			if err := validateConfigPath(opts.ConfigPath); err != nil {
				return err
			}

			return runList(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to configuration file")
	cmd.Flags().StringVar(&opts.Family, "family", "", "Only list utilities of this family (for example padding)")
	cmd.Flags().BoolVar(&opts.JSONOutput, "json", false, "Output in JSON format")
	cmd.MarkFlagRequired("config") //nolint:errcheck

	return cmd
}

func runList(cmd *cobra.Command, opts *listOptions) error {
	proj, err := loadProject(cmd, opts.ConfigPath, opts.Verbose)
	if err != nil {
		return err
	}

	rules := filterRules(proj.sheet.Rules(), opts.Family)

	if opts.JSONOutput {
		return renderListJSON(cmd, rules)
	}

	if len(rules) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No utilities generated.")
		return nil
	}

	return renderListTable(cmd, rules)
}

func filterRules(rules []stylesheet.Rule, family string) []stylesheet.Rule {
	if family == "" {
		return rules
	}
	out := make([]stylesheet.Rule, 0, len(rules))
	for _, r := range rules {
		if r.Family == family {
			out = append(out, r)
		}
	}
	return out
}

func renderListTable(cmd *cobra.Command, rules []stylesheet.Rule) error {
	styles := ui.StylesFor(cmd.OutOrStdout())
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintf(writer, "%s\t%s\t%s\n",
		styles.Header.Render("CLASS"),
		styles.Header.Render("FAMILY"),
		styles.Header.Render("DECLARATION"),
	)

	for _, r := range rules {
		fmt.Fprintf(writer, "%s\t%s\t%s\n",
			styles.Token.Render(r.Token),
			styles.Family.Render(r.Family),
			styles.Selector.Render(r.Declaration.String()),
		)
	}

	return writer.Flush()
}

type listJSONUtility struct {
	Class       string            `json:"class"`
	Selector    string            `json:"selector"`
	Family      string            `json:"family"`
	Declaration map[string]string `json:"declaration"`
}

type listJSONPayload struct {
	Version   string            `json:"version"`
	Count     int               `json:"count"`
	Utilities []listJSONUtility `json:"utilities"`
}

func renderListJSON(cmd *cobra.Command, rules []stylesheet.Rule) error {
	payload := listJSONPayload{
		Version:   "1.0",
		Count:     len(rules),
		Utilities: make([]listJSONUtility, len(rules)),
	}

	for i, r := range rules {
		decl := make(map[string]string, len(r.Declaration))
		for _, p := range r.Declaration {
			decl[p.Name] = p.Value
		}
		payload.Utilities[i] = listJSONUtility{
			Class:       r.Token,
			Selector:    r.Selector,
			Family:      r.Family,
			Declaration: decl,
		}
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
