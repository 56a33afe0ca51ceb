package commands

import (
	"bytes"
	"strings"
	"testing"
)

// execute runs the root command with args and returns what it wrote.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	root := NewRootCommand()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

// clearEnv isolates tests from OASPOSTMAN_* variables in the environment.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvBaseURL, EnvAPIVersion, EnvCollectionName, EnvPatchWorkers, EnvServeMaxBody} {
		t.Setenv(key, "")
	}
}
