// Package pack walks a resource-pack directory tree and mirrors it into an
// output tree.
package pack

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
)

// Walk returns the path of every file under root, relative to root and
// slash-separated, in lexical order. Directories are not listed.
//
// Symbolic links that resolve to regular files are always listed; copying
// one reads the linked bytes. Dangling links are skipped. Linked
// directories are descended into only when followLinks is set; each real
// directory is visited once, so link cycles terminate.
func Walk(root string, followLinks bool) ([]string, error) {
	// WalkDir does not descend into a root that is itself a link.
	dir, err := filepath.EvalSymlinks(root)
	if err != nil {
		return nil, fmt.Errorf("pack: resolve root: %w", err)
	}

	w := &walker{follow: followLinks, visited: make(map[string]struct{})}
	if err := w.walk(dir, ""); err != nil {
		return nil, err
	}
	slices.Sort(w.files)
	return w.files, nil
}

type walker struct {
	follow  bool
	visited map[string]struct{}
	files   []string
}

// walk lists dir, naming its entries under prefix.
func (w *walker) walk(dir, prefix string) error {
	return filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if w.follow {
				return w.visit(p)
			}
			return nil
		}

		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return fmt.Errorf("pack: relative path for %s: %w", p, err)
		}
		name := path.Join(prefix, filepath.ToSlash(rel))

		if d.Type()&fs.ModeSymlink != 0 {
			info, err := os.Stat(p)
			switch {
			case err != nil:
				return nil
			case info.Mode().IsRegular():
				w.files = append(w.files, name)
			case info.IsDir() && w.follow:
				target, err := filepath.EvalSymlinks(p)
				if err != nil {
					return nil
				}
				return w.walk(target, name)
			}
			return nil
		}

		w.files = append(w.files, name)
		return nil
	})
}

// visit marks the real directory behind p, returning fs.SkipDir if it was
// already walked.
func (w *walker) visit(p string) error {
	resolved, err := filepath.EvalSymlinks(p)
	if err != nil {
		return fmt.Errorf("pack: resolve %s: %w", p, err)
	}
	if _, ok := w.visited[resolved]; ok {
		return fs.SkipDir
	}
	w.visited[resolved] = struct{}{}
	return nil
}

// MirrorDirs creates, under outRoot, the parent directory of every relative
// path in files.
func MirrorDirs(outRoot string, files []string) error {
	seen := make(map[string]struct{})
	for _, f := range files {
		dir := filepath.Join(outRoot, filepath.Dir(filepath.FromSlash(f)))
		if _, ok := seen[dir]; ok {
			continue
		}
		seen[dir] = struct{}{}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("pack: create %s: %w", dir, err)
		}
	}
	return nil
}

// CopyFile copies src to dst byte for byte, creating or truncating dst.
// The permission bits of src are carried over.
func CopyFile(src, dst string) (err error) {
	in, err := os.Open(filepath.Clean(src))
	if err != nil {
		return fmt.Errorf("pack: open source: %w", err)
	}
	defer func() { _ = in.Close() }()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("pack: stat source: %w", err)
	}

	out, err := os.OpenFile(filepath.Clean(dst), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("pack: create destination: %w", err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("pack: close destination: %w", cerr)
		}
	}()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("pack: copy: %w", err)
	}
	return nil
}
