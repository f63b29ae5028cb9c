package scan

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func touch(t *testing.T, root string, rel ...string) {
	t.Helper()
	for _, r := range rel {
		p := filepath.Join(root, filepath.FromSlash(r))
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, nil, 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func rel(t *testing.T, root string, paths []string) []string {
	t.Helper()
	out := make([]string, len(paths))
	for i, p := range paths {
		r, err := filepath.Rel(root, p)
		if err != nil {
			t.Fatal(err)
		}
		out[i] = filepath.ToSlash(r)
	}
	return out
}

func TestDir(t *testing.T) {
	root := t.TempDir()
	touch(t, root,
		"b.png", "a.png", "C.PNG", "notes.txt", "photo.jpg", ".hidden.png",
		"sub/d.png", "stitched/atlas.png", ".git/x.png",
	)

	tests := []struct {
		name string
		opts Options
		want []string
	}{
		{
			name: "top level png",
			opts: Options{},
			want: []string{"C.PNG", "a.png", "b.png"},
		},
		{
			name: "recursive skips output dir",
			opts: Options{Recursive: true, SkipDirs: []string{"stitched"}},
			want: []string{"C.PNG", "a.png", "b.png", "sub/d.png"},
		},
		{
			name: "extensions without dot",
			opts: Options{Extensions: []string{"jpg", "PNG"}},
			want: []string{"C.PNG", "a.png", "b.png", "photo.jpg"},
		},
		{
			name: "recursive without skip",
			opts: Options{Recursive: true},
			want: []string{"C.PNG", "a.png", "b.png", "stitched/atlas.png", "sub/d.png"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Dir(root, tt.opts)
			if err != nil {
				t.Fatalf("Dir() error: %v", err)
			}
			if r := rel(t, root, got); !reflect.DeepEqual(r, tt.want) {
				t.Errorf("Dir() = %v, want %v", r, tt.want)
			}
		})
	}
}

func TestDirErrors(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "file.png")

	if _, err := Dir(filepath.Join(root, "missing"), Options{}); err == nil {
		t.Error("Dir(missing) error = nil, want error")
	}
	if _, err := Dir(filepath.Join(root, "file.png"), Options{}); err == nil {
		t.Error("Dir(file) error = nil, want error")
	}
}

func TestDirEmpty(t *testing.T) {
	got, err := Dir(t.TempDir(), Options{})
	if err != nil {
		t.Fatalf("Dir() error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Dir() = %v, want empty", got)
	}
}

func TestDirExclude(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "a.png", "atlas.png", "out/atlas.png", "stitched/b.png")

	tests := []struct {
		name    string
		exclude []string
		want    []string
	}{
		{
			name:    "atlas written into the input directory",
			exclude: []string{root, filepath.Join(root, "atlas.png"), filepath.Join(root, "atlas.json")},
			want:    []string{"a.png", "out/atlas.png", "stitched/b.png"},
		},
		{
			name:    "output subdirectory",
			exclude: []string{filepath.Join(root, "out")},
			want:    []string{"a.png", "atlas.png", "stitched/b.png"},
		},
		{
			name:    "unclean paths resolve",
			exclude: []string{filepath.Join(root, "out") + "/../atlas.png"},
			want:    []string{"a.png", "out/atlas.png", "stitched/b.png"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Dir(root, Options{Recursive: true, Exclude: tt.exclude})
			if err != nil {
				t.Fatalf("Dir() error: %v", err)
			}
			if r := rel(t, root, got); !reflect.DeepEqual(r, tt.want) {
				t.Errorf("Dir() = %v, want %v", r, tt.want)
			}
		})
	}
}
