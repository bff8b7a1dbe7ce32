package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/phrazzld/excuse-api/internal/api"
	"github.com/phrazzld/excuse-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type fakeExecutor struct {
	excuse string
	err    error
	last   service.Operation
}

func (f *fakeExecutor) Execute(ctx context.Context, op service.Operation) (string, error) {
	f.last = op
	return f.excuse, f.err
}

func fakeFactory(t *testing.T, exec *fakeExecutor) invokerFactory {
	return func(ctx context.Context, opts *rootOptions, stderr io.Writer) (*api.Invoker, error) {
		return api.NewInvoker(exec, map[string]string{"backend": "fake"}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	}
}

func runCmd(t *testing.T, factory invokerFactory, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmdWith(factory)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestGenerateCommand(t *testing.T) {
	exec := &fakeExecutor{excuse: "Kubernetes is reconciling my calendar."}

	out, err := runCmd(t, fakeFactory(t, exec), "generate", "Can", "you", "help", "me", "move?")

	require.NoError(t, err)
	var body api.ExcuseResponse
	require.NoError(t, json.Unmarshal([]byte(out), &body))
	assert.Equal(t, "Kubernetes is reconciling my calendar.", body.Excuse)
	assert.Equal(t, "fake", body.Metadata["backend"])

	op, ok := exec.last.(*service.GenerateExcuse)
	require.True(t, ok)
	assert.Equal(t, "Can you help me move?", op.Request())
}

func TestGenerateCommand_EmptyRequest(t *testing.T) {
	exec := &fakeExecutor{}

	out, err := runCmd(t, fakeFactory(t, exec), "generate")

	var se *statusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusBadRequest, se.status)
	assert.Equal(t, 2, se.exitCode())
	assert.Contains(t, out, `"error": "Invalid request"`)
	assert.Nil(t, exec.last)
}

func TestVagueCommand(t *testing.T) {
	exec := &fakeExecutor{excuse: "Entropy."}

	out, err := runCmd(t, fakeFactory(t, exec), "vague", "-o", "yaml")

	require.NoError(t, err)
	var body map[string]interface{}
	require.NoError(t, yaml.Unmarshal([]byte(out), &body))
	assert.Equal(t, "Entropy.", body["excuse"])
	_, ok := exec.last.(*service.GenerateVague)
	assert.True(t, ok)
}

func TestVagueCommand_RejectsArgs(t *testing.T) {
	_, err := runCmd(t, fakeFactory(t, &fakeExecutor{}), "vague", "extra")
	assert.Error(t, err)
}

func TestGenerationFailureExitCode(t *testing.T) {
	exec := &fakeExecutor{err: service.NewGenerationFailureError(service.OpGenerateExcuse, "failed to generate excuse", errors.New("boom"))}

	out, err := runCmd(t, fakeFactory(t, exec), "generate", "valid")

	var se *statusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 1, se.exitCode())
	assert.NotContains(t, out, "boom")
}

func TestUnsupportedOutput(t *testing.T) {
	_, err := runCmd(t, fakeFactory(t, &fakeExecutor{}), "vague", "-o", "xml")
	assert.EqualError(t, err, `unsupported output format "xml" (want json or yaml)`)
}

func TestBuildInvoker_Prepopulated(t *testing.T) {
	for _, key := range []string{"EXCUSE_REPOSITORY_BACKEND", "EXCUSE_REPOSITORY_EXCUSES", "EXCUSE_LLM_GEMINI_API_KEY", "GEMINI_API_KEY"} {
		if v, ok := os.LookupEnv(key); ok {
			t.Setenv(key, v)
			require.NoError(t, os.Unsetenv(key))
		}
	}

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("repository:\n  backend: prepopulated\n  excuses:\n    - \"Only one.\"\n"), 0o600))

	out, err := runCmd(t, buildInvoker, "generate", "--config", cfgPath, "--env-file", filepath.Join(dir, "missing.env"), "lunch?")

	require.NoError(t, err)
	assert.Contains(t, out, `"excuse": "Only one."`)
}

func TestBuildInvoker_AgentWithoutKey(t *testing.T) {
	t.Setenv("EXCUSE_LLM_GEMINI_API_KEY", "")
	dir := t.TempDir()

	_, err := runCmd(t, buildInvoker, "vague", "--backend", "agent",
		"--config", filepath.Join(dir, "none.yaml"), "--env-file", filepath.Join(dir, "none.env"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "gemini API key cannot be empty")
}
