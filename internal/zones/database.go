package zones

import (
	"archive/zip"
	_ "embed"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/dpb1/tzgrid/pkg/core/tzerror"
)

// LocalID is the identifier used when the process zone has no IANA name
const LocalID = "Local"

// Database is the zone database the resolver and renderer work against
type Database interface {
	// Known reports whether id names a zone, without scanning All
	Known(id string) bool
	// Location returns the zone for id
	Location(id string) (*time.Location, error)
	// All returns every recognised zone identifier, sorted
	All() []string
	// Local returns the identifier of the process zone
	Local() string
}

// bundledZones lists the zones of the tzdata linked into the binary, one
// per line. It is used when the host has no zoneinfo files.
//
//go:embed data/zones.txt
var bundledZones string

// DefaultZoneDirs are scanned by System.All after $ZONEINFO
var DefaultZoneDirs = []string{
	"/usr/share/zoneinfo",
	"/usr/lib/zoneinfo",
	"/usr/share/lib/zoneinfo",
	"/etc/zoneinfo",
}

// System is the Database backed by the Go time package and the zoneinfo
// files installed on the host.
type System struct {
	getenv   func(string) string
	readlink func(string) (string, error)
	dirs     []string

	all func() []string
}

// NewSystem returns a Database for the host zone database
func NewSystem() *System {
	s := &System{
		getenv:   os.Getenv,
		readlink: os.Readlink,
		dirs:     DefaultZoneDirs,
	}
	s.all = sync.OnceValue(s.scan)
	return s
}

// Known implements Database
func (s *System) Known(id string) bool {
	if _, ok := ParseUTCOffset(id); ok {
		return true
	}
	if id == "" || id == LocalID {
		return false
	}
	_, err := time.LoadLocation(id)
	return err == nil
}

// Location implements Database
func (s *System) Location(id string) (*time.Location, error) {
	if hours, ok := ParseUTCOffset(id); ok {
		return fixedLocation(id, hours), nil
	}
	if id == LocalID {
		return time.Local, nil
	}
	if id == "" {
		return nil, tzerror.New("empty zone identifier").WithCode(tzerror.CodeUnknownZone)
	}

	loc, err := time.LoadLocation(id)
	if err != nil {
		return nil, tzerror.Wrap(err, "unknown time zone").
			WithCode(tzerror.CodeUnknownZone).
			WithDetail("zone", id)
	}
	return loc, nil
}

// All implements Database. The scan runs once per process. Without any
// zoneinfo files on the host the names bundled with the binary are used.
func (s *System) All() []string {
	return s.all()
}

// Local implements Database: $TZ, then the /etc/localtime link target,
// then LocalID.
func (s *System) Local() string {
	if tz := strings.TrimPrefix(s.getenv("TZ"), ":"); tz != "" {
		if filepath.IsAbs(tz) {
			if id := zoneFromPath(tz); id != "" && s.Known(id) {
				return id
			}
		} else if s.Known(tz) {
			return tz
		}
	}

	if target, err := s.readlink("/etc/localtime"); err == nil {
		if id := zoneFromPath(target); id != "" && s.Known(id) {
			return id
		}
	}
	return LocalID
}

// zoneFromPath extracts "Area/City" from ".../zoneinfo/Area/City"
func zoneFromPath(path string) string {
	const marker = "zoneinfo/"
	if i := strings.LastIndex(path, marker); i >= 0 {
		return path[i+len(marker):]
	}
	return ""
}

func (s *System) scan() []string {
	seen := make(map[string]bool)

	if zi := s.getenv("ZONEINFO"); zi != "" {
		if strings.HasSuffix(zi, ".zip") {
			scanZip(zi, seen)
		} else {
			scanDir(zi, seen)
		}
	}
	for _, dir := range s.dirs {
		scanDir(dir, seen)
	}
	if len(seen) == 0 {
		for _, name := range strings.Fields(bundledZones) {
			addCandidate(name, seen)
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func scanDir(root string, seen map[string]bool) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return
	}

	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil || rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if rel == "posix" || rel == "right" {
				return filepath.SkipDir
			}
			return nil
		}
		addCandidate(rel, seen)
		return nil
	})
}

func scanZip(path string, seen map[string]bool) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return
	}
	defer r.Close()

	for _, f := range r.File {
		if !f.FileInfo().IsDir() {
			addCandidate(f.Name, seen)
		}
	}
}

// addCandidate keeps names that look like zones and that the time package
// can load. Data files such as zone1970.tab or posixrules are dropped.
func addCandidate(name string, seen map[string]bool) {
	if seen[name] {
		return
	}
	base := filepath.Base(name)
	if strings.ContainsRune(base, '.') {
		return
	}
	first := []rune(name)[0]
	if !unicode.IsUpper(first) {
		return
	}
	if _, err := time.LoadLocation(name); err == nil {
		seen[name] = true
	}
}
