package fsops

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRealFS_ReadDir(t *testing.T) {
	rfs := &RealFS{}
	tmpDir := t.TempDir()

	t.Run("entries are sorted by name", func(t *testing.T) {
		dir := filepath.Join(tmpDir, "sorted")
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("failed to create dir: %v", err)
		}
		for _, name := range []string{"c.sz", "a.sz", "b.sz"} {
			if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
				t.Fatalf("failed to write %s: %v", name, err)
			}
		}

		entries, err := rfs.ReadDir(dir)
		if err != nil {
			t.Fatalf("ReadDir failed: %v", err)
		}

		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		if got := strings.Join(names, ","); got != "a.sz,b.sz,c.sz" {
			t.Errorf("ReadDir order = %s, want a.sz,b.sz,c.sz", got)
		}
	})

	t.Run("missing directory reports not exist", func(t *testing.T) {
		_, err := rfs.ReadDir(filepath.Join(tmpDir, "missing"))
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("ReadDir error = %v, want fs.ErrNotExist", err)
		}
	})
}

func TestRealFS_Exists(t *testing.T) {
	rfs := &RealFS{}

	tmpDir, err := os.MkdirTemp("", "fsops-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	t.Run("existing file", func(t *testing.T) {
		testFile := filepath.Join(tmpDir, "exists.txt")
		if err := os.WriteFile(testFile, []byte("test"), 0644); err != nil {
			t.Fatalf("failed to create test file: %v", err)
		}

		exists, err := rfs.Exists(testFile)
		if err != nil {
			t.Errorf("Exists returned error: %v", err)
		}
		if !exists {
			t.Error("Exists should return true for existing file")
		}
	})

	t.Run("non-existing file", func(t *testing.T) {
		nonExistent := filepath.Join(tmpDir, "does-not-exist.txt")
		exists, err := rfs.Exists(nonExistent)
		if err != nil {
			t.Errorf("Exists returned error: %v", err)
		}
		if exists {
			t.Error("Exists should return false for non-existing file")
		}
	})

	t.Run("existing directory", func(t *testing.T) {
		exists, err := rfs.Exists(tmpDir)
		if err != nil {
			t.Errorf("Exists returned error: %v", err)
		}
		if !exists {
			t.Error("Exists should return true for existing directory")
		}
	})

	t.Run("dangling symlink", func(t *testing.T) {
		link := filepath.Join(tmpDir, "dangling")
		if err := os.Symlink(filepath.Join(tmpDir, "nowhere"), link); err != nil {
			t.Skipf("symlinks not supported: %v", err)
		}

		exists, err := rfs.Exists(link)
		if err != nil {
			t.Errorf("Exists returned error: %v", err)
		}
		if exists {
			t.Error("Exists should return false for a dangling symlink")
		}
	})
}

func TestRealFS_Stat_FollowsSymlinks(t *testing.T) {
	rfs := &RealFS{}
	tmpDir := t.TempDir()

	target := filepath.Join(tmpDir, "target.txt")
	if err := os.WriteFile(target, []byte("x"), 0644); err != nil {
		t.Fatalf("failed to write target: %v", err)
	}
	link := filepath.Join(tmpDir, "link.txt")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	info, err := rfs.Stat(link)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if !info.Mode().IsRegular() {
		t.Errorf("Stat(link) mode = %v, want regular file", info.Mode())
	}

	linfo, err := rfs.Lstat(link)
	if err != nil {
		t.Fatalf("Lstat failed: %v", err)
	}
	if linfo.Mode()&os.ModeSymlink == 0 {
		t.Errorf("Lstat(link) mode = %v, want symlink", linfo.Mode())
	}
}

func TestRealFS_MkdirAll(t *testing.T) {
	rfs := &RealFS{}
	tmpDir := t.TempDir()

	t.Run("create nested directories", func(t *testing.T) {
		nestedPath := filepath.Join(tmpDir, "a", "b", "c")
		if err := rfs.MkdirAll(nestedPath, 0755); err != nil {
			t.Fatalf("MkdirAll failed: %v", err)
		}

		if _, err := os.Stat(nestedPath); os.IsNotExist(err) {
			t.Error("Nested directory was not created")
		}
	})

	t.Run("idempotent operation", func(t *testing.T) {
		dirPath := filepath.Join(tmpDir, "existing")

		if err := rfs.MkdirAll(dirPath, 0755); err != nil {
			t.Fatalf("First MkdirAll failed: %v", err)
		}
		if err := rfs.MkdirAll(dirPath, 0755); err != nil {
			t.Errorf("Second MkdirAll should not fail: %v", err)
		}
	})
}

func TestRealFS_AtomicWrite(t *testing.T) {
	rfs := &RealFS{}
	tmpDir := t.TempDir()

	t.Run("write to new file in new directory", func(t *testing.T) {
		testFile := filepath.Join(tmpDir, "build", "jpicheck", "manifest.txt")
		content := []byte("atomic content\n")

		if err := rfs.AtomicWrite(testFile, content, 0644); err != nil {
			t.Fatalf("AtomicWrite failed: %v", err)
		}

		readContent, err := os.ReadFile(testFile)
		if err != nil {
			t.Fatalf("failed to read written file: %v", err)
		}
		if string(readContent) != string(content) {
			t.Errorf("File content mismatch: got %q, want %q", readContent, content)
		}
	})

	t.Run("overwrite existing file", func(t *testing.T) {
		testFile := filepath.Join(tmpDir, "atomic-overwrite.txt")

		if err := os.WriteFile(testFile, []byte("initial, and longer than the replacement"), 0644); err != nil {
			t.Fatalf("failed to create initial file: %v", err)
		}

		newContent := []byte("overwritten")
		if err := rfs.AtomicWrite(testFile, newContent, 0644); err != nil {
			t.Fatalf("AtomicWrite failed: %v", err)
		}

		readContent, err := os.ReadFile(testFile)
		if err != nil {
			t.Fatalf("failed to read file: %v", err)
		}
		if string(readContent) != string(newContent) {
			t.Errorf("File content not updated: got %q, want %q", readContent, newContent)
		}
	})

	t.Run("no temp files left behind", func(t *testing.T) {
		dir := filepath.Join(tmpDir, "clean")
		if err := rfs.AtomicWrite(filepath.Join(dir, "out.txt"), []byte("x"), 0644); err != nil {
			t.Fatalf("AtomicWrite failed: %v", err)
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("failed to read dir: %v", err)
		}
		if len(entries) != 1 {
			t.Errorf("expected only the target file, found %d entries", len(entries))
		}
	})

	t.Run("target is a directory", func(t *testing.T) {
		target := filepath.Join(tmpDir, "is-a-dir")
		if err := os.MkdirAll(filepath.Join(target, "child"), 0755); err != nil {
			t.Fatalf("failed to create dir: %v", err)
		}

		if err := rfs.AtomicWrite(target, []byte("x"), 0644); err == nil {
			t.Error("AtomicWrite over a non-empty directory should fail")
		}

		entries, err := os.ReadDir(tmpDir)
		if err != nil {
			t.Fatalf("failed to read dir: %v", err)
		}
		for _, e := range entries {
			if strings.HasPrefix(e.Name(), ".jpicheck-tmp-") {
				t.Errorf("temp file %s left behind after failure", e.Name())
			}
		}
	})
}

func TestRealFS_ReadFile(t *testing.T) {
	rfs := &RealFS{}
	tmpDir := t.TempDir()

	t.Run("read existing file", func(t *testing.T) {
		testFile := filepath.Join(tmpDir, "read-test.txt")
		content := []byte("test content")
		if err := os.WriteFile(testFile, content, 0644); err != nil {
			t.Fatalf("failed to create test file: %v", err)
		}

		readContent, err := rfs.ReadFile(testFile)
		if err != nil {
			t.Fatalf("ReadFile failed: %v", err)
		}
		if string(readContent) != string(content) {
			t.Errorf("ReadFile content mismatch: got %q, want %q", readContent, content)
		}
	})

	t.Run("read non-existing file", func(t *testing.T) {
		_, err := rfs.ReadFile(filepath.Join(tmpDir, "does-not-exist.txt"))
		if err == nil {
			t.Error("ReadFile should return error for non-existing file")
		}
	})
}

func TestRealFS_Abs(t *testing.T) {
	rfs := &RealFS{}

	got, err := rfs.Abs("build/classes/../classes/java/main")
	if err != nil {
		t.Fatalf("Abs failed: %v", err)
	}
	if !filepath.IsAbs(got) {
		t.Errorf("Abs returned relative path %q", got)
	}
	if !strings.HasSuffix(got, filepath.Join("build", "classes", "java", "main")) {
		t.Errorf("Abs did not clean path: %q", got)
	}
}
