package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/prillcode/start-work/internal/messages"
)

// PackageFileName is the optional metadata file at the package root.
const PackageFileName = "package.toml"

const (
	defaultPackageName   = "start-work"
	defaultDisplayName   = "Start Work Planning Suite"
	defaultRepositoryURL = "https://github.com/prillcode/start-work"
)

// Package holds display metadata for the installable package.
type Package struct {
	Name        string `toml:"name"`
	DisplayName string `toml:"display_name"`
	Version     string `toml:"version"`
	Repository  string `toml:"repository"`
}

// DefaultPackage returns the built-in metadata stamped with version.
func DefaultPackage(version string) Package {
	return Package{
		Name:        defaultPackageName,
		DisplayName: defaultDisplayName,
		Version:     version,
		Repository:  defaultRepositoryURL,
	}
}

// LoadPackage reads package.toml from packageDir. A missing file yields the
// defaults; fields left empty in the file fall back to the defaults too.
func LoadPackage(packageDir string, fallbackVersion string) (Package, error) {
	pkg := DefaultPackage(fallbackVersion)
	path := filepath.Join(packageDir, PackageFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return pkg, nil
		}
		return Package{}, fmt.Errorf(messages.ManifestReadFailedFmt, path, err)
	}
	return ParsePackage(data, path, fallbackVersion)
}

// ParsePackage decodes package metadata. source is used in error messages.
func ParsePackage(data []byte, source string, fallbackVersion string) (Package, error) {
	var parsed Package
	if err := toml.Unmarshal(data, &parsed); err != nil {
		return Package{}, fmt.Errorf(messages.ManifestInvalidFmt, source, err)
	}
	pkg := DefaultPackage(fallbackVersion)
	if v := strings.TrimSpace(parsed.Name); v != "" {
		pkg.Name = v
	}
	if v := strings.TrimSpace(parsed.DisplayName); v != "" {
		pkg.DisplayName = v
	}
	if v := strings.TrimSpace(parsed.Version); v != "" {
		pkg.Version = strings.TrimPrefix(v, "v")
	}
	if v := strings.TrimSpace(parsed.Repository); v != "" {
		pkg.Repository = v
	}
	return pkg, nil
}
