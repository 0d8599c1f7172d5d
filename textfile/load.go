package textfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/npillmayer/ordtree/btree"
)

// Stats reports on a completed load.
type Stats struct {
	Lines      int // lines read, including comments and blank lines
	Inserted   int // keys inserted
	Duplicates int // lines rejected because their key was already present
}

// Load reads a file, which must be a regular text file, and inserts its
// key/value lines into a new tree configured by cfg.
func Load(name string, cfg btree.Config) (*btree.Tree[string, string], Stats, error) {
	file, err := openFile(name)
	if err != nil {
		return nil, Stats{}, err
	}
	defer file.Close()
	tree, stats, err := LoadReader(file, cfg)
	if err != nil {
		return nil, stats, fmt.Errorf("loading %s: %w", name, err)
	}
	return tree, stats, nil
}

// LoadReader inserts the key/value lines read from r into a new tree
// configured by cfg.
func LoadReader(r io.Reader, cfg btree.Config) (*btree.Tree[string, string], Stats, error) {
	tree, err := btree.New[string, string](cfg)
	if err != nil {
		return nil, Stats{}, err
	}
	var stats Stats
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		stats.Lines++
		key, value, ok := parseLine(scanner.Text())
		if !ok {
			continue
		}
		if tree.Insert(key, value) {
			stats.Inserted++
		} else {
			stats.Duplicates++
			tracer().Debugf("textfile: line %d: duplicate key %q ignored", stats.Lines, key)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, stats, fmt.Errorf("reading line %d: %w", stats.Lines+1, err)
	}
	tracer().Infof("textfile: loaded %d keys from %d lines, %d duplicates",
		stats.Inserted, stats.Lines, stats.Duplicates)
	return tree, stats, nil
}

// parseLine splits a line into key and value. ok is false for blank lines and
// comments.
func parseLine(line string) (key, value string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	i := strings.IndexFunc(line, unicode.IsSpace)
	if i < 0 {
		return line, "", true
	}
	return line[:i], strings.TrimSpace(line[i:]), true
}

// openFile opens an OS file, checking for error conditions.
func openFile(name string) (*os.File, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("file %s is not a regular file", name)
	}
	return os.Open(name) // just open for read access
}
