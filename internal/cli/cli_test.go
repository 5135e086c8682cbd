package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/cloudgraph/pkg/errors"
	"github.com/matzehuels/cloudgraph/pkg/io"
)

const inventory = `id,name,type,resourceGroup,location,properties
/sub/rg/vm-web,vm-web,Microsoft.Compute/virtualMachines,rg,westeurope,"{""networkProfile"":{""networkInterfaces"":[{""id"":""/sub/rg/nic-web""}]}}"
/sub/rg/nic-web,nic-web,Microsoft.Network/networkInterfaces,rg,westeurope,"{""networkSecurityGroup"":{""id"":""/sub/rg/nsg-web""}}"
/sub/rg/nsg-web,nsg-web,Microsoft.Network/networkSecurityGroups,rg,westeurope,"{""securityRules"":[{""properties"":{""direction"":""Inbound"",""access"":""Allow"",""sourceAddressPrefix"":""*""}}]}"
/sub/rg/salogs,salogs,Microsoft.Storage/storageAccounts,rg,westeurope,"{""networkAcls"":{""defaultAction"":""Allow""}}"
`

// sandbox moves the test into an empty working directory with no user
// config and returns that directory.
func sandbox(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var logs bytes.Buffer
	c := New(&logs, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	err := root.ExecuteContext(context.Background())
	return logs.String(), err
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := New(&bytes.Buffer{}, LogInfo).RootCommand()

	for _, name := range []string{"build", "exposed", "explore", "completion"} {
		if cmd, _, err := root.Find([]string{name}); err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
	if root.PersistentFlags().Lookup("config") == nil {
		t.Error("missing --config flag")
	}
}

func TestBuildWritesRequestedOutputs(t *testing.T) {
	dir := sandbox(t)
	writeFile(t, filepath.Join(dir, "inv.csv"), inventory)

	logs, err := execute(t, "build", "inv.csv", "-o", "out/graph", "-f", "json,dot")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !strings.Contains(logs, "Wrote 2 output(s)") || !strings.Contains(logs, "build=") {
		t.Errorf("logs = %q", logs)
	}

	g, err := io.ImportJSON(filepath.Join(dir, "out", "graph.json"))
	if err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}
	if g.NodeCount() != 5 || g.EdgeCount() != 4 {
		t.Errorf("graph = %d nodes, %d edges; want 5, 4", g.NodeCount(), g.EdgeCount())
	}
	if !g.HasEdge("Internet", "nsg-web") || !g.HasEdge("vm-web", "nic-web") {
		t.Errorf("missing expected edges: %v", g.Edges())
	}

	dot, err := os.ReadFile(filepath.Join(dir, "out", "graph.dot"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(dot), `"nic-web" -> "nsg-web"`) {
		t.Errorf("dot output missing edge:\n%s", dot)
	}
}

func TestBuildUsesDataDirFromConfig(t *testing.T) {
	dir := sandbox(t)
	writeFile(t, filepath.Join(dir, "exports", "b.csv"), "id,name\n/x,x\n")
	writeFile(t, filepath.Join(dir, "exports", "a.csv"), inventory)
	writeFile(t, filepath.Join(dir, "cloudgraph.toml"), "data_dir = \"exports\"\noutput = \"result\"\n")

	if _, err := execute(t, "build"); err != nil {
		t.Fatalf("build: %v", err)
	}

	g, err := io.ImportJSON(filepath.Join(dir, "result.json"))
	if err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}
	if !g.HasNode("vm-web") {
		t.Error("expected the lexically first CSV (a.csv) to be used")
	}
}

func TestBuildMissingInput(t *testing.T) {
	sandbox(t)

	_, err := execute(t, "build", "nope.csv")
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("err = %v, want FILE_NOT_FOUND", err)
	}

	_, err = execute(t, "build")
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("empty data dir: err = %v, want FILE_NOT_FOUND", err)
	}
}

func TestBuildRejectsUnknownFormat(t *testing.T) {
	dir := sandbox(t)
	writeFile(t, filepath.Join(dir, "inv.csv"), inventory)

	_, err := execute(t, "build", "inv.csv", "-f", "pdf")
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("err = %v, want INVALID_FORMAT", err)
	}
}

func TestBuildMalformedInput(t *testing.T) {
	dir := sandbox(t)
	writeFile(t, filepath.Join(dir, "bad.csv"), "type,location\nvm,westeurope\n")

	_, err := execute(t, "build", "bad.csv")
	if !errors.IsMalformedInput(err) {
		t.Errorf("err = %v, want MALFORMED_INPUT", err)
	}
}

func TestExposedRuns(t *testing.T) {
	dir := sandbox(t)
	writeFile(t, filepath.Join(dir, "inv.csv"), inventory)

	if _, err := execute(t, "exposed", "inv.csv"); err != nil {
		t.Fatalf("exposed: %v", err)
	}
}

func TestErrorMessage(t *testing.T) {
	err := errors.New(errors.ErrCodeFileNotFound, "no CSV files found in data")
	if got := ErrorMessage(err); !strings.Contains(got, "no CSV files found in data") || strings.Contains(got, "FILE_NOT_FOUND") {
		t.Errorf("ErrorMessage() = %q", got)
	}
}
