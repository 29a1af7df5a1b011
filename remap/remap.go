// Package remap rewrites user references in client data files so that they
// point inside the set of seeded users.
package remap

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"regexp"
	"strconv"
)

const DefaultUserCount = 21

// DefaultFiles are the client data files that reference seeded users.
var DefaultFiles = []string{
	"lib/data/dummy_projects.dart",
	"lib/data/seed_events.dart",
	"lib/data/dummy_marketplace.dart",
}

var (
	indexPattern = regexp.MustCompile(`localUsers\[(\d+)\]`)
	idPattern    = regexp.MustCompile(`'u(\d+)'`)

	ErrInvalidUserCount = errors.New("user count must be positive")
)

type Remapper struct {
	UserCount int
}

func New(userCount int) (*Remapper, error) {
	if userCount <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidUserCount, userCount)
	}
	return &Remapper{UserCount: userCount}, nil
}

// Index maps a localUsers index into [0, UserCount).
func (r *Remapper) Index(idx int) int {
	return floorMod(idx, r.UserCount)
}

// ID maps a 1-based user id into [1, UserCount]; id 0 wraps to UserCount.
func (r *Remapper) ID(id int) int {
	return floorMod(id-1, r.UserCount) + 1
}

// Rewrite replaces every localUsers[N] and 'uN' reference in content.
func (r *Remapper) Rewrite(content []byte) []byte {
	content = indexPattern.ReplaceAllFunc(content, func(m []byte) []byte {
		n, ok := parseGroup(indexPattern, m)
		if !ok {
			return m
		}
		return []byte(fmt.Sprintf("localUsers[%d]", r.Index(n)))
	})
	return idPattern.ReplaceAllFunc(content, func(m []byte) []byte {
		n, ok := parseGroup(idPattern, m)
		if !ok {
			return m
		}
		return []byte(fmt.Sprintf("'u%d'", r.ID(n)))
	})
}

// RewriteFile rewrites path in place, keeping its permissions.
func (r *Remapper) RewriteFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := os.WriteFile(path, r.Rewrite(content), info.Mode().Perm()); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// RewriteFiles processes each path in order. Missing files are reported on
// out and skipped; any other failure stops the run.
func (r *Remapper) RewriteFiles(paths []string, out io.Writer) error {
	for _, path := range paths {
		err := r.RewriteFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			_, _ = fmt.Fprintf(out, "File not found: %s\n", path)
		case err != nil:
			return err
		default:
			_, _ = fmt.Fprintf(out, "Remapped user references in %s\n", path)
		}
	}
	return nil
}

func parseGroup(re *regexp.Regexp, m []byte) (int, bool) {
	sub := re.FindSubmatch(m)
	if len(sub) < 2 {
		return 0, false
	}
	n, err := strconv.Atoi(string(sub[1]))
	if err != nil {
		return 0, false
	}
	return n, true
}

func floorMod(a, n int) int {
	return ((a % n) + n) % n
}
