package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

func resetFlags() {
	rootFlags.verbose = false
	rootFlags.configPath = ""
	consolidateFlags = sourceFlags{}
	listFlags = sourceFlags{}
	verifyFlags.source = sourceFlags{}
	verifyFlags.connection = ""
	verifyFlags.maintenanceDB = ""
	verifyFlags.keep = false
	verifyFlags.timeout = 0
}

func newTestCmd() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	return cmd, out, errOut
}

// testProject lays out a migrations directory and returns its paths.
type testProject struct {
	root       string
	migrations string
	output     string
}

const testBaselineName = "00000000000000_initial_schema.sql"

func newTestProject(t *testing.T, files map[string]string) testProject {
	t.Helper()
	root := t.TempDir()
	p := testProject{
		root:       root,
		migrations: filepath.Join(root, "migrations"),
		output:     filepath.Join(root, "out", "setup.sql"),
	}
	if err := os.MkdirAll(p.migrations, 0755); err != nil {
		t.Fatal(err)
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(p.migrations, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return p
}

func (p testProject) flags() sourceFlags {
	return sourceFlags{
		migrationsDir: p.migrations,
		baseline:      testBaselineName,
		output:        p.output,
	}
}
