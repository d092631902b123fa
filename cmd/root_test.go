package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestNewRootCmd_RegistersAllSubcommands(t *testing.T) {
	root := NewRootCmd()
	want := []string{"add", "upsert", "rm", "show", "parents", "import", "here", "version"}
	got := make(map[string]bool)
	for _, sub := range root.Commands() {
		got[sub.Name()] = true
	}
	for _, name := range want {
		if !got[name] {
			t.Errorf("expected %q subcommand registered on root command", name)
		}
	}
}

func TestNewRootCmd_NoArgsPrintsHelp(t *testing.T) {
	root := NewRootCmd()
	out := new(bytes.Buffer)
	root.SetOut(out)
	root.SetErr(new(bytes.Buffer))
	if err := root.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Len() == 0 {
		t.Error("expected help text on stdout")
	}
}

func TestResolveStoreDir_FlagWinsOverConfig(t *testing.T) {
	home := t.TempDir()
	if err := os.WriteFile(filepath.Join(home, ".tap.yml"), []byte("store_dir: /from/config\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("HOME", home)

	c := NewAddCmd()
	c.SetArgs([]string{"--dir", "/from/flag", "p", "l", "v"})
	if err := c.ParseFlags([]string{"--dir", "/from/flag"}); err != nil {
		t.Fatal(err)
	}
	dir, err := resolveStoreDir(c)
	if err != nil {
		t.Fatal(err)
	}
	if dir == nil || *dir != "/from/flag" {
		t.Fatalf("dir = %v, want /from/flag", dir)
	}
}

func TestResolveStoreDir_FallsBackToConfig(t *testing.T) {
	home := t.TempDir()
	if err := os.WriteFile(filepath.Join(home, ".tap.yml"), []byte("store_dir: /from/config\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("HOME", home)

	c := NewAddCmd()
	if err := c.ParseFlags([]string{}); err != nil {
		t.Fatal(err)
	}
	dir, err := resolveStoreDir(c)
	if err != nil {
		t.Fatal(err)
	}
	if dir == nil || *dir != "/from/config" {
		t.Fatalf("dir = %v, want /from/config", dir)
	}
}
