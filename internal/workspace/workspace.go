// Package workspace maintains a named registry of document
// directories so batch commands can address a corpus by a short name
// instead of a path. The registry is a dotenv file; every entry is a
// PAGEMEND_WS_<NAME> variable holding the absolute directory path.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joho/godotenv"
)

// envPrefix namespaces registry keys within the dotenv file.
const envPrefix = "PAGEMEND_WS_"

// Registry reads and writes the workspace registry file.
type Registry struct {
	path string
}

// DefaultPath returns the registry location, pagemend/workspaces.env
// under the user config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving config directory: %w", err)
	}
	return filepath.Join(dir, "pagemend", "workspaces.env"), nil
}

// Open returns a registry backed by the file at path. The file does
// not need to exist yet.
func Open(path string) *Registry {
	return &Registry{path: path}
}

// sanitizeName maps a workspace name onto a dotenv-safe key segment:
// uppercase, invalid characters become underscores, and a leading
// digit gains an underscore prefix.
func sanitizeName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(name) {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	s := b.String()
	if s != "" && s[0] >= '0' && s[0] <= '9' {
		s = "_" + s
	}
	return s
}

func keyFor(name string) string { return envPrefix + sanitizeName(name) }

// load reads the registry file; a missing file is an empty registry.
func (r *Registry) load() (map[string]string, error) {
	env, err := godotenv.Read(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading workspace registry %s: %w", r.path, err)
	}
	return env, nil
}

func (r *Registry) save(env map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o750); err != nil {
		return fmt.Errorf("creating registry directory: %w", err)
	}
	if err := godotenv.Write(env, r.path); err != nil {
		return fmt.Errorf("writing workspace registry %s: %w", r.path, err)
	}
	return nil
}

// Add registers dir under name, replacing any previous entry. The
// directory must exist.
func (r *Registry) Add(name, dir string) error {
	if sanitizeName(name) == "" {
		return fmt.Errorf("invalid workspace name %q", name)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", dir, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("workspace directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("workspace %s: %s is not a directory", name, abs)
	}
	env, err := r.load()
	if err != nil {
		return err
	}
	env[keyFor(name)] = abs
	return r.save(env)
}

// Remove deletes the entry for name; removing an unknown name is an
// error.
func (r *Registry) Remove(name string) error {
	env, err := r.load()
	if err != nil {
		return err
	}
	key := keyFor(name)
	if _, ok := env[key]; !ok {
		return fmt.Errorf("unknown workspace %q", name)
	}
	delete(env, key)
	return r.save(env)
}

// Resolve returns the directory registered under name, or ok=false
// when the name is unknown.
func (r *Registry) Resolve(name string) (dir string, ok bool, err error) {
	env, err := r.load()
	if err != nil {
		return "", false, err
	}
	dir, ok = env[keyFor(name)]
	return dir, ok, nil
}

// Entry is one registered workspace.
type Entry struct {
	Name string
	Dir  string
}

// List returns all entries sorted by name.
func (r *Registry) List() ([]Entry, error) {
	env, err := r.load()
	if err != nil {
		return nil, err
	}
	var entries []Entry
	for key, dir := range env {
		if !strings.HasPrefix(key, envPrefix) {
			continue
		}
		entries = append(entries, Entry{Name: strings.TrimPrefix(key, envPrefix), Dir: dir})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}
