package platform

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindRoot(t *testing.T) {
	// /tmp/
	//   project/ (import.yaml)
	//     images/
	//       nested/
	//   empty/

	baseDir := t.TempDir()
	projectDir := filepath.Join(baseDir, "project")
	subDir := filepath.Join(projectDir, "images")
	nestedDir := filepath.Join(subDir, "nested")
	emptyDir := filepath.Join(baseDir, "empty")

	if err := os.MkdirAll(nestedDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(emptyDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(projectDir, "import.yaml"), []byte("shortcode: \"00A1\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	// a directory with the marker name does not count
	if err := os.Mkdir(filepath.Join(emptyDir, "import.yaml"), 0755); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name      string
		startPath string
		wantRoot  string
		wantErr   bool
	}{
		{
			name:      "Start at Root",
			startPath: projectDir,
			wantRoot:  projectDir,
		},
		{
			name:      "Start in Subdir",
			startPath: subDir,
			wantRoot:  projectDir,
		},
		{
			name:      "Start Nested Deeply",
			startPath: nestedDir,
			wantRoot:  projectDir,
		},
		{
			name:      "No Root Found",
			startPath: emptyDir,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindRoot(tt.startPath)
			if (err != nil) != tt.wantErr {
				t.Errorf("FindRoot() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != "" && filepath.Clean(got) != filepath.Clean(tt.wantRoot) {
				t.Errorf("FindRoot() = %v, want %v", got, tt.wantRoot)
			}
		})
	}
}

func TestResolveConfigPath(t *testing.T) {
	dir := t.TempDir()

	got, err := ResolveConfigPath("custom.yaml", dir)
	if err != nil || got != "custom.yaml" {
		t.Fatalf("explicit path: got %q, %v", got, err)
	}

	got, err = ResolveConfigPath("", dir)
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "import.yaml"); got != want {
		t.Errorf("without root: got %q, want %q", got, want)
	}

	nested := filepath.Join(dir, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "import.yaml"), nil, 0644); err != nil {
		t.Fatal(err)
	}
	got, err = ResolveConfigPath("", nested)
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "import.yaml"); got != want {
		t.Errorf("with root: got %q, want %q", got, want)
	}
}
