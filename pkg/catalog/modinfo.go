package catalog

import (
	"fmt"
	"path/filepath"

	"github.com/dyluth/mcobj/pkg/registry"
)

// DefaultDataDirectory is where definition files are looked for when a ModInfo
// names no directory.
const DefaultDataDirectory = "data"

// VanillaVersion is the game version of the bundled vanilla definitions.
const VanillaVersion = "1.20"

// Kind is the type of definition a file holds.
type Kind string

const (
	KindBlock       Kind = "block"
	KindItem        Kind = "item"
	KindEntity      Kind = "entity"
	KindEnchantment Kind = "enchantment"
)

// Kinds lists every kind in import order.
var Kinds = []Kind{KindBlock, KindItem, KindEntity, KindEnchantment}

// ParseKind converts a kind name.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if err := k.Validate(); err != nil {
		return "", err
	}
	return k, nil
}

// Validate checks if the Kind is a valid enum value.
func (k Kind) Validate() error {
	switch k {
	case KindBlock, KindItem, KindEntity, KindEnchantment:
		return nil
	default:
		return fmt.Errorf("invalid kind: %q (must be 'block', 'item', 'entity', or 'enchantment')", string(k))
	}
}

// extensions in lookup order.
var extensions = []string{".toml", ".yaml", ".yml"}

// ModInfo identifies a collection of definitions: a namespace, the version of
// the mod (or game) they describe and the directory holding their files.
type ModInfo struct {
	Namespace string `yaml:"namespace"`
	Version   string `yaml:"version"`
	Directory string `yaml:"directory,omitempty"`
}

// Vanilla returns the ModInfo of the vanilla game definitions in dir.
func Vanilla(dir string) ModInfo {
	return ModInfo{Namespace: registry.VanillaNamespace, Version: VanillaVersion, Directory: dir}
}

// VersionedName returns "namespace-version", or just the namespace when the
// version is empty.
func (m ModInfo) VersionedName() string {
	if m.Version == "" {
		return m.Namespace
	}
	return m.Namespace + "-" + m.Version
}

func (m ModInfo) dir() string {
	if m.Directory == "" {
		return DefaultDataDirectory
	}
	return m.Directory
}

// FilePaths returns the candidate definition files for kind, in lookup order.
func (m ModInfo) FilePaths(kind Kind) []string {
	base := filepath.Join(m.dir(), fmt.Sprintf("%s-%s", m.VersionedName(), kind))
	paths := make([]string, len(extensions))
	for i, ext := range extensions {
		paths[i] = base + ext
	}
	return paths
}

// String implements fmt.Stringer.
func (m ModInfo) String() string {
	return fmt.Sprintf("%s (%s)", m.VersionedName(), m.dir())
}
