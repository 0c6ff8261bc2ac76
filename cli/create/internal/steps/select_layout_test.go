package steps

import (
	"testing"

	create_ctx "github.com/gentem/gentem/cli/create/context"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectLayout(t *testing.T) {
	createCtx := create_ctx.CreateCtx{ProjectType: "cli"}
	templateCtx := NewTemplateContext()
	templateCtx.Vars["license"] = "mit"

	require.NoError(t, SelectLayout{}.Run(&createCtx, &templateCtx))
	destinations := []string{}
	for _, file := range templateCtx.Files {
		destinations = append(destinations, file.Destination)
	}
	assert.Contains(t, destinations, "LICENSE")
	assert.Contains(t, destinations, "src/{{ .package_name }}/cli.py")
}

func TestSelectLayoutUnknownType(t *testing.T) {
	createCtx := create_ctx.CreateCtx{ProjectType: "generic"}
	templateCtx := NewTemplateContext()
	assert.EqualError(t, SelectLayout{}.Run(&createCtx, &templateCtx),
		"no layout for generic projects")
}
