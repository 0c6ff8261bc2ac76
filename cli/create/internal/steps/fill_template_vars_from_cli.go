package steps

import (
	"strings"

	"github.com/apex/log"
	create_ctx "github.com/gentem/gentem/cli/create/context"
	"github.com/gentem/gentem/cli/util"
)

const formatError = `wrong variable definition format: %s
Usage: --var "var-name=value"`

// FillTemplateVarsFromCli represents a step setting variables passed in command line.
type FillTemplateVarsFromCli struct{}

// Run collects variables passed using command line args.
func (FillTemplateVarsFromCli) Run(createCtx *create_ctx.CreateCtx,
	templateCtx *TemplateCtx,
) error {
	for _, varDefinition := range createCtx.VarsFromCli {
		varDefinition = strings.TrimSpace(varDefinition)
		varName, value, found := strings.Cut(varDefinition, "=")
		if !found || varName == "" || value == "" {
			return util.NewValidationError(formatError, varDefinition)
		}
		log.Debugf("Setting var from CLI: %s = %s", varName, value)
		templateCtx.Vars[varName] = value
	}
	return nil
}
