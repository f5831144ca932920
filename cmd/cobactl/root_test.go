package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestCobactl_DemoList(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	out, _, err := run(t, "", "--demo", "incidents", "list", "--search", "ERP")
	require.NoError(t, err)
	assert.Contains(t, out, "INC482913")
	assert.NotContains(t, out, "REQ371204")
}

func TestCobactl_DemoShow(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	out, _, err := run(t, "", "--demo", "slas", "show", "sla-correo")
	require.NoError(t, err)
	assert.Contains(t, out, `"status": "compliant"`)
}

func TestCobactl_DemoCreateFromStdin(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	form := "description: Fuga de datos\npriority: high\nmitigation: Cifrado\ncategory: security\n"
	_, errOut, err := run(t, form, "--demo", "risks", "create", "-f", "-")
	require.NoError(t, err)
	assert.Contains(t, errOut, "Riesgo creado correctamente")
}

func TestCobactl_DemoCreateInvalid(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	_, errOut, err := run(t, "description: x\n", "--demo", "risks", "create", "-f", "-")
	require.Error(t, err)
	assert.Contains(t, errOut, "priority: ")
}

func TestCobactl_DemoDashboardAndISO(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	out, _, err := run(t, "", "--demo", "dashboard")
	require.NoError(t, err)
	assert.Contains(t, out, "Cumplimiento de SLA")

	out, _, err = run(t, "", "--demo", "iso", "iso20000")
	require.NoError(t, err)
	assert.Contains(t, out, "de cumplimiento")
}

func TestCobactl_ChatNeedsAPI(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	_, _, err := run(t, "", "--demo", "chat")
	assert.ErrorContains(t, err, "needs the API")
}

func TestCobactl_SetKeyAndAPI(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	_, _, err := run(t, "", "set-key", "sk-123")
	require.NoError(t, err)
	_, _, err = run(t, "", "set-api", "https://coba.example.com")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "cobactl", "config.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "assistant_key: sk-123")
	assert.Contains(t, string(data), "api_url: https://coba.example.com")
}
