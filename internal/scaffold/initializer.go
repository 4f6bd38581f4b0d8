package scaffold

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/dyluth/mcobj/internal/config"
	"github.com/dyluth/mcobj/internal/printer"
	"github.com/dyluth/mcobj/pkg/catalog"
)

//go:embed templates
var templatesFS embed.FS

const templateRoot = "templates"

// FileInfo represents a file to be created during initialization
type FileInfo struct {
	Path        string
	Content     []byte
	Permissions os.FileMode
}

// Initialize writes mcobj.yml and the vanilla definition files into dir.
// If force is true, an existing mcobj.yml is replaced and the bundled
// definition files are overwritten. Other files under data/ are left alone.
func Initialize(dir string, force bool) ([]string, error) {
	if force {
		if err := handleForce(dir); err != nil {
			return nil, err
		}
	}

	files, err := getTemplateFiles()
	if err != nil {
		return nil, err
	}

	if err := writeFiles(dir, files); err != nil {
		return nil, err
	}

	if err := validateCreatedFiles(dir); err != nil {
		return nil, err
	}

	created := make([]string, len(files))
	for i, f := range files {
		created[i] = f.Path
	}
	return created, nil
}

// handleForce removes an existing mcobj.yml if --force was specified
func handleForce(dir string) error {
	path := filepath.Join(dir, config.DefaultPath)
	if _, err := os.Stat(path); err == nil {
		printer.Warning("Removing existing %s...\n", config.DefaultPath)
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("failed to remove %s: %w", config.DefaultPath, err)
		}
	}
	return nil
}

// getTemplateFiles reads every embedded template. "x.tmpl" is written as "x".
func getTemplateFiles() ([]FileInfo, error) {
	var files []FileInfo
	err := fs.WalkDir(templatesFS, templateRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		content, err := templatesFS.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read template %s: %w", path, err)
		}
		rel := strings.TrimSuffix(strings.TrimPrefix(path, templateRoot+"/"), ".tmpl")
		files = append(files, FileInfo{
			Path:        filepath.FromSlash(rel),
			Content:     content,
			Permissions: 0644,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// writeFiles writes all template files below dir, creating directories as needed
func writeFiles(dir string, files []FileInfo) error {
	for _, file := range files {
		path := filepath.Join(dir, file.Path)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, file.Content, file.Permissions); err != nil {
			return fmt.Errorf("failed to write %s: %w", file.Path, err)
		}
	}
	return nil
}

// validateCreatedFiles loads the written configuration and every definition
// it points at.
func validateCreatedFiles(dir string) error {
	cfg, err := config.Load(filepath.Join(dir, config.DefaultPath))
	if err != nil {
		return fmt.Errorf("created %s is invalid: %w", config.DefaultPath, err)
	}

	mods := make([]catalog.ModInfo, len(cfg.Mods))
	for i, mod := range cfg.Mods {
		if !filepath.IsAbs(mod.Directory) {
			mod.Directory = filepath.Join(dir, mod.Directory)
		}
		mods[i] = mod
	}

	f, err := catalog.NewFactory(mods...)
	if err != nil {
		return fmt.Errorf("created definitions do not load: %w", err)
	}
	for _, kind := range catalog.Kinds {
		ids, err := f.IDs(kind)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			return fmt.Errorf("created data has no %s definitions", kind)
		}
	}
	return nil
}

// PrintSuccess prints the success message with created files
func PrintSuccess(created []string) {
	printer.Println()
	printer.Success("Successfully initialized mcobj!\n")
	printer.Println("\nCreated:")
	for _, path := range created {
		printer.Printf("  ✓ %s\n", filepath.ToSlash(path))
	}
	printer.Println("\nNext steps:")
	printer.Println("  1. Inspect a block:  mcobj show oak_stairs")
	printer.Println("  2. Rotate it:        mcobj rotate oak_stairs --state facing=north")
	printer.Println("  3. Save it to Redis: mcobj save oak_stairs")
}
