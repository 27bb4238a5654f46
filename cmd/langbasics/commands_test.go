package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeWithLogs(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd, err := newRootCmd()
	require.NoError(t, err)

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err = cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("APP_NAME", "")

	out, _, err := executeWithLogs(t, args...)
	return out, err
}

func TestRoot_RunsEverything(t *testing.T) {
	out, err := execute(t)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "foo() called in the mycode namespace\n"))
	assert.True(t, strings.HasSuffix(out, "Employee: JD\nNumber: 42\nSalary: $80000\n"))
	assert.Contains(t, out, "This is silly.\n")
	assert.Contains(t, out, "3.33\n")
}

func TestEmployeeSubcommand(t *testing.T) {
	out, err := execute(t, "employee")
	require.NoError(t, err)

	assert.Equal(t, "Employee: JD\nNumber: 42\nSalary: $80000\n", out)
}

func TestSectionsSubcommand(t *testing.T) {
	out, err := execute(t, "sections")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "namespaces"))
	assert.True(t, strings.HasPrefix(lines[3], "employee"))
}

func TestRoot_RejectsArguments(t *testing.T) {
	_, err := execute(t, "employee", "extra")
	assert.Error(t, err)
}

func TestRun_InvalidConfig(t *testing.T) {
	t.Setenv("LOG_LEVEL", "loud")

	err := run(context.Background(), nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestRoot_QuietStderrByDefault(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("APP_NAME", "")

	_, logs, err := executeWithLogs(t)
	require.NoError(t, err)

	assert.Empty(t, logs)
}

func TestSubcommand_LoggerFromContext(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("APP_ENV", "")
	t.Setenv("APP_NAME", "")

	out, logs, err := executeWithLogs(t, "loops")
	require.NoError(t, err)

	assert.NotContains(t, out, `"level"`)
	assert.Contains(t, logs, `"message":"starting"`)
	assert.Contains(t, logs, `"command":"loops"`)
	assert.Contains(t, logs, `"component":"demo_runner"`)
	assert.Contains(t, logs, `"section":"loops"`)
	assert.Contains(t, logs, `"app":"langbasics"`)
}
