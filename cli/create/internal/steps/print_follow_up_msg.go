package steps

import (
	"io"

	create_ctx "github.com/gentem/gentem/cli/create/context"
)

// PrintFollowUpMessage represents a step printing hints after project creation.
type PrintFollowUpMessage struct {
	// Message is a template of the follow-up message.
	Message string
	// Writer is used to write follow-up message.
	Writer io.Writer
}

// Run prints project follow-up message.
func (printFollowUpMsgStep PrintFollowUpMessage) Run(createCtx *create_ctx.CreateCtx,
	templateCtx *TemplateCtx,
) error {
	if printFollowUpMsgStep.Message == "" || printFollowUpMsgStep.Writer == nil ||
		createCtx.DryRun {
		return nil
	}

	vars := templateCtx.Vars.Clone()
	vars["project_path"] = templateCtx.ProjectPath
	followUpText, err := templateCtx.Engine.RenderText(printFollowUpMsgStep.Message, vars)
	if err != nil {
		return err
	}

	_, err = io.WriteString(printFollowUpMsgStep.Writer, "\n"+followUpText+"\n")
	return err
}
