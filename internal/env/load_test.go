package env

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadParsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "# comment\n\nRIGID_TIME_STEP=0.02\nexport RIGID_SCENE=\"scenes/demo.yaml\"\nBROKEN\n=nokey\nOTHER='x'\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	vars, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := map[string]string{
		"RIGID_TIME_STEP": "0.02",
		"RIGID_SCENE":     "scenes/demo.yaml",
		"OTHER":           "x",
	}
	if len(vars) != len(want) {
		t.Errorf("expected %d vars, got %v", len(want), vars)
	}
	for k, v := range want {
		if vars[k] != v {
			t.Errorf("%s: expected %q, got %q", k, v, vars[k])
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	vars, err := Load(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if len(vars) != 0 {
		t.Errorf("expected no vars, got %v", vars)
	}
}

func TestCollectPrefersProcessEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("RIGIDTEST_A=file\nRIGIDTEST_B=file\nUNRELATED=1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("RIGIDTEST_B", "process")

	vars, err := Collect(path, "RIGIDTEST_")
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if vars["A"] != "file" {
		t.Errorf("expected A from file, got %q", vars["A"])
	}
	if vars["B"] != "process" {
		t.Errorf("expected B from process env, got %q", vars["B"])
	}
	if _, ok := vars["UNRELATED"]; ok {
		t.Error("expected unprefixed variable to be dropped")
	}
}
