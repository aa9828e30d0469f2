package configloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
)

// ConfigPaths holds what discovery found. Empty strings mean "not found".
type ConfigPaths struct {
	System   string // /etc/ngpatch/config.yaml
	User     string // $XDG_CONFIG_HOME/ngpatch/config.yaml
	Project  string // nearest .ngpatch.yml
	Explicit string // --config

	// DotEnv is the .env next to the project config, else in the working directory.
	DotEnv string

	// Workspace is the nearest directory holding an Angular workspace file.
	Workspace string
}

// ProjectConfigName is the file written by "ngpatch config init".
const ProjectConfigName = ".ngpatch.yml"

//nolint:gochecknoglobals // Read-only lookup tables.
var (
	projectConfigFiles = []string{ProjectConfigName, ".ngpatch.yaml", "ngpatch.yml", "ngpatch.yaml"}
	userConfigFiles    = []string{"config.yaml", "config.yml"}
	workspaceMarkers   = []string{"angular.json", ".angular-cli.json", "workspace.json"}
	vcsRootMarkers     = []string{".git", ".hg", ".svn"}
)

// DiscoverPaths looks for configuration in the system and user locations
// and, walking upward from workDir, for a project config and the Angular
// workspace root.
func DiscoverPaths(ctx context.Context, workDir string) (*ConfigPaths, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context cancelled: %w", err)
	}

	paths := &ConfigPaths{
		System: firstFile(systemConfigDir(), userConfigFiles),
		User:   firstFile(userConfigDir(), userConfigFiles),
	}

	var err error
	if paths.Project, err = FindProjectConfig(ctx, workDir); err != nil {
		return nil, err
	}
	if paths.Workspace, err = FindWorkspaceRoot(ctx, workDir); err != nil {
		return nil, err
	}

	envDir := workDir
	if paths.Project != "" {
		envDir = filepath.Dir(paths.Project)
	}
	paths.DotEnv = firstFile(envDir, []string{".env"})

	return paths, nil
}

func systemConfigDir() string {
	if runtime.GOOS != "windows" {
		return "/etc/ngpatch"
	}
	programData := os.Getenv("ProgramData")
	if programData == "" {
		programData = `C:\ProgramData`
	}
	return filepath.Join(programData, "ngpatch")
}

func userConfigDir() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "ngpatch")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "ngpatch")
}

// FindProjectConfig returns the nearest project config file at or above
// startDir, or "". The search ends at an Angular workspace root, a VCS root
// or the home directory, after checking that directory.
func FindProjectConfig(ctx context.Context, startDir string) (string, error) {
	var found string
	err := walkUp(ctx, startDir, func(dir string) bool {
		found = firstFile(dir, projectConfigFiles)
		return found != "" || firstFile(dir, workspaceMarkers) != ""
	})
	return found, err
}

// FindWorkspaceRoot returns the nearest directory at or above startDir that
// holds angular.json (or a legacy .angular-cli.json / workspace.json), or "".
func FindWorkspaceRoot(ctx context.Context, startDir string) (string, error) {
	var root string
	err := walkUp(ctx, startDir, func(dir string) bool {
		if firstFile(dir, workspaceMarkers) != "" {
			root = dir
		}
		return root != ""
	})
	return root, err
}

// walkUp calls visit on startDir and each parent until visit returns true
// or a boundary is reached: a VCS root, the home directory or the
// filesystem root. Boundaries are visited before the walk stops.
func walkUp(ctx context.Context, startDir string, visit func(dir string) bool) error {
	if startDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("get working directory: %w", err)
		}
		startDir = wd
	}

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return fmt.Errorf("resolve absolute path: %w", err)
	}
	home, _ := os.UserHomeDir()

	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("context cancelled: %w", err)
		}

		if visit(dir) || isVCSRoot(dir) || (home != "" && dir == home) {
			return nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil
		}
		dir = parent
	}
}

func isVCSRoot(dir string) bool {
	return slices.ContainsFunc(vcsRootMarkers, func(marker string) bool {
		info, err := os.Stat(filepath.Join(dir, marker))
		return err == nil && info.IsDir()
	})
}

// firstFile returns the first of names that is a regular file in dir.
func firstFile(dir string, names []string) string {
	if dir == "" {
		return ""
	}
	for _, name := range names {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}
