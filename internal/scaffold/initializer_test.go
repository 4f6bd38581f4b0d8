package scaffold

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dyluth/mcobj/internal/config"
	"github.com/dyluth/mcobj/internal/printer"
	"github.com/dyluth/mcobj/pkg/block"
	"github.com/dyluth/mcobj/pkg/catalog"
)

func quietPrinter(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	color.NoColor = true
	printer.SetOutput(&buf, &buf)
	t.Cleanup(func() { printer.SetOutput(nil, nil) })
	return &buf
}

func TestInitialize(t *testing.T) {
	tests := []struct {
		name      string
		force     bool
		setupFunc func(t *testing.T, dir string)
	}{
		{
			name:      "fresh initialization",
			setupFunc: func(t *testing.T, dir string) {},
		},
		{
			name:  "force replaces the configuration and keeps other data files",
			force: true,
			setupFunc: func(t *testing.T, dir string) {
				require.NoError(t, os.WriteFile(filepath.Join(dir, "mcobj.yml"), []byte("version: '0.1'"), 0644))
				require.NoError(t, os.MkdirAll(filepath.Join(dir, "data"), 0755))
				require.NoError(t, os.WriteFile(filepath.Join(dir, "data", "create-0.5-block.toml"), []byte("[create.cogwheel]\n"), 0644))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quietPrinter(t)
			dir := t.TempDir()
			tt.setupFunc(t, dir)

			created, err := Initialize(dir, tt.force)
			require.NoError(t, err)

			assert.ElementsMatch(t, []string{
				"mcobj.yml",
				filepath.Join("data", "minecraft-1.20-block.toml"),
				filepath.Join("data", "minecraft-1.20-enchantment.toml"),
				filepath.Join("data", "minecraft-1.20-entity.yml"),
				filepath.Join("data", "minecraft-1.20-item.yaml"),
			}, created)

			for _, path := range created {
				assert.FileExists(t, filepath.Join(dir, path))
			}

			cfg, err := config.Load(filepath.Join(dir, "mcobj.yml"))
			require.NoError(t, err)
			assert.Equal(t, "data", cfg.DataDirectory)
			assert.Equal(t, "overworld", cfg.Redis.World)

			if tt.force {
				assert.FileExists(t, filepath.Join(dir, "data", "create-0.5-block.toml"))
			}
		})
	}
}

func TestHandleForce(t *testing.T) {
	out := quietPrinter(t)

	t.Run("removes existing mcobj.yml", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "mcobj.yml")
		require.NoError(t, os.WriteFile(path, []byte("content"), 0644))

		require.NoError(t, handleForce(dir))
		assert.NoFileExists(t, path)
		assert.Contains(t, out.String(), "Removing existing mcobj.yml")
	})

	t.Run("nothing to remove", func(t *testing.T) {
		require.NoError(t, handleForce(t.TempDir()))
	})
}

func TestGetTemplateFiles(t *testing.T) {
	files, err := getTemplateFiles()
	require.NoError(t, err)

	byPath := make(map[string]FileInfo)
	for _, f := range files {
		byPath[filepath.ToSlash(f.Path)] = f
		assert.Equal(t, os.FileMode(0644), f.Permissions)
		assert.NotEmpty(t, f.Content, f.Path)
	}
	require.Contains(t, byPath, "mcobj.yml")
	assert.NotContains(t, byPath, "mcobj.yml.tmpl")
	assert.Contains(t, string(byPath["mcobj.yml"].Content), `version: "1.0"`)
}

func TestPrintSuccess(t *testing.T) {
	out := quietPrinter(t)
	PrintSuccess([]string{"mcobj.yml", filepath.Join("data", "minecraft-1.20-block.toml")})

	text := out.String()
	assert.Contains(t, text, "Successfully initialized mcobj!")
	assert.Contains(t, text, "  ✓ mcobj.yml\n")
	assert.Contains(t, text, "  ✓ data/minecraft-1.20-block.toml\n")
	assert.Contains(t, text, "Next steps:")
}

func TestBundledVanillaData(t *testing.T) {
	quietPrinter(t)
	dir := t.TempDir()
	_, err := Initialize(dir, false)
	require.NoError(t, err)

	f, err := catalog.NewFactory(catalog.Vanilla(filepath.Join(dir, "data")))
	require.NoError(t, err)
	require.Len(t, f.Mods(), 1)

	for _, kind := range catalog.Kinds {
		ids, err := f.IDs(kind)
		require.NoError(t, err)
		assert.NotEmpty(t, ids, "kind %s", kind)
	}

	chest, err := f.Block("chest", map[string]string{"facing": "east"})
	require.NoError(t, err)
	require.NotNil(t, chest.Inventory())
	assert.Equal(t, 27, chest.Inventory().Len())

	obsidian, err := f.Block("obsidian", nil)
	require.NoError(t, err)
	assert.Equal(t, block.PistonBlock, obsidian.Traits().PistonBehavior())

	door, err := f.Block("oak_door", map[string]string{"half": "lower", "facing": "east"})
	require.NoError(t, err)
	require.NoError(t, door.Reflect(block.AxisY))
	assert.Equal(t, "upper", door.StateOr("half", ""))

	blaze, err := f.Entity("blaze")
	require.NoError(t, err)
	assert.True(t, blaze.Traits().FireImmune)
}
