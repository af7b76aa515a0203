package manifest

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"slices"
	"strings"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"github.com/MacroPower/bookredirect/pkg/redirecterrors"
)

const (
	DefaultBaseURL = "/php5/"
	DefaultOutput  = "BookHTML"
)

var defaultPaths = []string{
	"introduction.html",
	"build_system.html",
	"classes_objects.html",
	"hashtables.html",
	"introduction.html",
	"zvals.html",
	"build_system/building_extensions.html",
	"build_system/building_php.html",
	"classes_objects/custom_object_storage.html",
	"classes_objects/implementing_typed_arrays.html",
	"classes_objects/internal_structures_and_implementation.html",
	"classes_objects/iterators.html",
	"classes_objects/magic_interfaces_comparable.html",
	"classes_objects/object_handlers.html",
	"classes_objects/serialization.html",
	"classes_objects/simple_classes.html",
	"hashtables/array_api.html",
	"hashtables/basic_structure.html",
	"hashtables/hash_algorithm.html",
	"hashtables/hashtable_api.html",
	"zvals/basic_structure.html",
	"zvals/casts_and_operations.html",
	"zvals/memory_management.html",
}

// DefaultPaths returns a copy of the built-in path list.
func DefaultPaths() []string {
	return slices.Clone(defaultPaths)
}

// Manifest describes a set of redirect pages.
type Manifest struct {
	// BaseURL is prepended to every path to form the redirect target.
	BaseURL string `json:"baseURL,omitempty" yaml:"baseURL,omitempty" jsonschema:"description=Prefix prepended to every path to form the redirect target."`
	// Output is the directory pages are written to. Relative values are
	// resolved against the repository root.
	Output string `json:"output,omitempty" yaml:"output,omitempty" jsonschema:"description=Directory pages are written to. Relative values are resolved against the repository root."`
	// Paths lists document paths relative to Output, using forward slashes.
	Paths []string `json:"paths,omitempty" yaml:"paths,omitempty" jsonschema:"description=Document paths relative to the output directory using forward slashes."`
}

// Default returns the built-in manifest.
func Default() *Manifest {
	return &Manifest{
		BaseURL: DefaultBaseURL,
		Output:  DefaultOutput,
		Paths:   DefaultPaths(),
	}
}

// Load reads the YAML manifest at file. Fields it omits keep their defaults.
func Load(file string) (*Manifest, error) {
	f, err := os.Open(file) //nolint:gosec // G304: reading user-provided manifests is the point.
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", redirecterrors.ErrReadManifest, file, err)
	}
	defer f.Close() //nolint:errcheck // Read-only.

	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", file, err)
	}

	return m, nil
}

// Parse decodes a YAML manifest from r. Fields it omits keep their defaults,
// and unknown fields are rejected.
func Parse(r io.Reader) (*Manifest, error) {
	m := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(m); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", redirecterrors.ErrParseManifest, err)
	}

	return m, nil
}

// Validate normalizes every path to Unicode NFC and reports all invalid
// fields at once.
func (m *Manifest) Validate() error {
	var merr error

	if m.BaseURL == "" {
		merr = multierror.Append(merr, errors.New("baseURL: must not be empty"))
	}

	if m.Output == "" {
		merr = multierror.Append(merr, errors.New("output: must not be empty"))
	}

	if len(m.Paths) == 0 {
		merr = multierror.Append(merr, errors.New("paths: must not be empty"))
	}

	for i, p := range m.Paths {
		p = norm.NFC.String(p)
		m.Paths[i] = p

		if err := ValidatePath(p); err != nil {
			merr = multierror.Append(merr, fmt.Errorf("paths[%d]: %w", i, err))
		}
	}

	if merr != nil {
		return fmt.Errorf("%w: %w", redirecterrors.ErrInvalidManifest, merr)
	}

	return nil
}

// ValidatePath reports whether p is a clean, relative, slash-separated path
// that stays below its root.
func ValidatePath(p string) error {
	switch {
	case p == "":
		return fmt.Errorf("%w: empty", redirecterrors.ErrInvalidPath)
	case strings.Contains(p, `\`):
		return fmt.Errorf("%w %q: must use forward slashes", redirecterrors.ErrInvalidPath, p)
	case path.IsAbs(p):
		return fmt.Errorf("%w %q: must be relative", redirecterrors.ErrInvalidPath, p)
	case path.Clean(p) != p, p == "..", strings.HasPrefix(p, "../"):
		return fmt.Errorf("%w %q: must be clean and stay below the output root", redirecterrors.ErrInvalidPath, p)
	}

	return nil
}
