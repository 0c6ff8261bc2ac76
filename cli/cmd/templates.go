package cmd

import (
	"strings"

	"github.com/gentem/gentem/cli/templates"
	"github.com/gentem/gentem/cli/templates/builtin_templates"
	"github.com/gentem/gentem/cli/util"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var templatesMatch string

// NewTemplatesCmd creates a new templates listing command.
func NewTemplatesCmd() *cobra.Command {
	var templatesCmd = &cobra.Command{
		Use:   "templates [CATEGORY] [flags]",
		Short: "List available templates",
		Example: `
# List templates of the docker module.

    $ gentem templates --match "add/docker/**"`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: templatesValidArgsFunction,
		Run:               RunModuleFunc(internalTemplatesModule),
	}

	templatesCmd.Flags().StringVar(&templatesMatch, "match", "",
		"Glob pattern of template names")

	return templatesCmd
}

// templatesValidArgsFunction returns built-in template categories.
func templatesValidArgsFunction(_ *cobra.Command, args []string,
	toComplete string,
) ([]string, cobra.ShellCompDirective) {
	if len(args) != 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return builtin_templates.Categories[:], cobra.ShellCompDirectiveNoFileComp
}

// internalTemplatesModule is a default templates module.
func internalTemplatesModule(cmd *cobra.Command, args []string) error {
	engine := getEngine()
	if engine == nil {
		engine = templates.NewDefaultEngine()
	}

	var names []string
	var err error
	switch {
	case templatesMatch != "":
		names, err = engine.MatchTemplates(templatesMatch)
		if err != nil {
			return util.WrapValidationError(err, "%s", err)
		}
		if len(args) == 1 {
			names = filterCategory(names, args[0])
		}
	case len(args) == 1:
		names, err = engine.ListTemplates(args[0])
	default:
		names, err = engine.ListTemplates("")
	}
	if err != nil {
		return err
	}

	templatesTable := table.NewWriter()
	templatesTable.SetOutputMirror(cmd.OutOrStdout())
	templatesTable.AppendHeader(table.Row{"CATEGORY", "TEMPLATE"})
	for _, name := range names {
		category, _, _ := strings.Cut(name, "/")
		templatesTable.AppendRow(table.Row{category,
			strings.TrimSuffix(name, templates.TemplateExt)})
	}
	templatesTable.Style().Options.DrawBorder = false
	templatesTable.Style().Options.SeparateColumns = false
	templatesTable.Render()
	return nil
}

// filterCategory returns names of the category.
func filterCategory(names []string, category string) []string {
	filtered := []string{}
	for _, name := range names {
		if strings.HasPrefix(name, category+"/") {
			filtered = append(filtered, name)
		}
	}
	return filtered
}
