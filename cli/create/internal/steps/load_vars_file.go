package steps

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	create_ctx "github.com/gentem/gentem/cli/create/context"
	"github.com/gentem/gentem/cli/util"
)

// LoadVarsFile represents variables file load step.
type LoadVarsFile struct{}

type varDefinition struct {
	name  string
	value string
}

func parseVarDefinition(line string) (varDefinition, error) {
	name, value, found := strings.Cut(strings.TrimSpace(line), "=")
	name = strings.TrimSpace(name)
	value = strings.TrimSpace(value)
	if !found || name == "" || value == "" {
		return varDefinition{}, fmt.Errorf("wrong variable definition format: %s\n"+
			"Format: var-name=value", line)
	}
	return varDefinition{name: name, value: value}, nil
}

// Run loads variables from the file. Empty lines and lines starting with # are skipped.
func (LoadVarsFile) Run(createCtx *create_ctx.CreateCtx, templateCtx *TemplateCtx) error {
	if createCtx.VarsFile == "" {
		return nil
	}

	varsFilePath := createCtx.VarsFile
	if !filepath.IsAbs(varsFilePath) && createCtx.WorkDir != "" {
		varsFilePath = filepath.Join(createCtx.WorkDir, varsFilePath)
	}
	varsFile, err := os.Open(varsFilePath)
	if err != nil {
		return util.WrapValidationError(err, "vars file loading error: %s", err)
	}
	defer varsFile.Close()

	scanner := bufio.NewScanner(varsFile)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		varDef, err := parseVarDefinition(line)
		if err != nil {
			return util.NewValidationError("failed to load vars from %s: %s",
				createCtx.VarsFile, err)
		}
		log.Debugf("Setting var from vars file: %s = %s", varDef.name, varDef.value)
		templateCtx.Vars[varDef.name] = varDef.value
	}
	return scanner.Err()
}
