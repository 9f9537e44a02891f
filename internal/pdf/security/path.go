package security

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	pdferrors "github.com/a3tai/irdai-parser/internal/pdf/errors"
)

// PathValidator confines filing access to a single root directory
type PathValidator struct {
	root string
}

// NewPathValidator creates a validator rooted at dir. The directory does not
// have to exist yet; until it does every path is accepted.
func NewPathValidator(dir string) (*PathValidator, error) {
	if dir == "" {
		return nil, fmt.Errorf("configured directory cannot be empty")
	}
	return &PathValidator{root: dir}, nil
}

// Root returns the configured directory
func (v *PathValidator) Root() string {
	return v.root
}

// Resolve turns path into an absolute path inside the root. Relative paths
// are taken relative to the root rather than the working directory.
func (v *PathValidator) Resolve(path string) (string, error) {
	path = strings.ReplaceAll(path, "\x00", "")
	if path == "" {
		return "", pdferrors.New(pdferrors.ErrorTypeInvalidPath, "path cannot be empty")
	}

	if !filepath.IsAbs(path) {
		path = filepath.Join(v.root, path)
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", pdferrors.Wrap(pdferrors.ErrorTypeInvalidPath, "failed to resolve path", err).WithFile(path)
	}

	if err := v.ValidatePath(absPath); err != nil {
		return "", err
	}
	return absPath, nil
}

// ResolveDirectory is Resolve for directories: relative paths are taken
// relative to the root and the result must be a directory when it exists
func (v *PathValidator) ResolveDirectory(dir string) (string, error) {
	dir = strings.ReplaceAll(dir, "\x00", "")
	if dir == "" {
		return "", pdferrors.New(pdferrors.ErrorTypeInvalidPath, "directory cannot be empty")
	}

	if !filepath.IsAbs(dir) {
		dir = filepath.Join(v.root, dir)
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", pdferrors.Wrap(pdferrors.ErrorTypeInvalidPath, "failed to resolve directory", err).WithFile(dir)
	}

	if err := v.ValidateDirectory(absDir); err != nil {
		return "", err
	}
	return absDir, nil
}

// ValidatePath checks that path, after resolving symlinks, lies inside the root
func (v *PathValidator) ValidatePath(path string) error {
	if path == "" {
		return pdferrors.New(pdferrors.ErrorTypeInvalidPath, "path cannot be empty")
	}
	if _, err := os.Stat(v.root); os.IsNotExist(err) {
		return nil
	}

	within, err := v.IsWithinRoot(path)
	if err != nil {
		return pdferrors.Wrap(pdferrors.ErrorTypeInvalidPath, "path validation failed", err).WithFile(path)
	}
	if !within {
		return pdferrors.New(pdferrors.ErrorTypeSecurityRestriction, "path is outside configured directory").WithFile(path)
	}
	return nil
}

// ValidateDirectory checks that dir is inside the root and, when it exists, is a directory
func (v *PathValidator) ValidateDirectory(dir string) error {
	if err := v.ValidatePath(dir); err != nil {
		return err
	}

	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return pdferrors.Wrap(pdferrors.ErrorTypeInvalidPath, "cannot access directory", err).WithFile(dir)
	}
	if !info.IsDir() {
		return pdferrors.New(pdferrors.ErrorTypeInvalidPath, "path is not a directory").WithFile(dir)
	}
	return nil
}

// IsWithinRoot reports whether path and its symlink target both sit under the root
func (v *PathValidator) IsWithinRoot(path string) (bool, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false, fmt.Errorf("failed to resolve path: %w", err)
	}
	absRoot, err := filepath.Abs(v.root)
	if err != nil {
		return false, fmt.Errorf("failed to resolve configured directory: %w", err)
	}

	cleanPath := filepath.Clean(absPath)
	roots := []string{filepath.Clean(absRoot)}
	if resolved, err := filepath.EvalSymlinks(roots[0]); err == nil && resolved != roots[0] {
		roots = append(roots, resolved)
	}

	realPath := cleanPath
	if resolved, err := filepath.EvalSymlinks(cleanPath); err == nil {
		realPath = resolved
	}

	return under(cleanPath, roots) && under(realPath, roots), nil
}

func under(path string, roots []string) bool {
	for _, root := range roots {
		if path == root || strings.HasPrefix(path, strings.TrimSuffix(root, string(filepath.Separator))+string(filepath.Separator)) {
			return true
		}
	}
	return false
}
