package reference

import (
	"bufio"
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"f1champsseason/pkg/log"
)

const bom = "\uFEFF"

// Table maps a season year to a champion name.
type Table map[int]string

// ReadTable parses "year,name" records. Names are trimmed and rows with an
// empty name are ignored.
func ReadTable(r io.Reader) (Table, error) {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(bom)); err == nil && string(head) == bom {
		_, _ = br.Discard(len(bom))
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = 2
	cr.TrimLeadingSpace = true

	t := Table{}
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "reading reference table")
		}
		line, _ := cr.FieldPos(0)
		year, err := strconv.Atoi(strings.TrimSpace(record[0]))
		if err != nil {
			return nil, errors.Errorf("line %d: invalid year %q", line, record[0])
		}
		name := strings.TrimSpace(record[1])
		if name == "" {
			continue
		}
		t[year] = name
	}
	return t, nil
}

func LoadTable(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	t, err := ReadTable(f)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}
	return t, nil
}

// Lookup answers year queries against the champion and constructor tables.
// Both tables are fixed once the Lookup is built.
type Lookup struct {
	champions    Table
	constructors Table
}

func NewLookup(champions, constructors Table) *Lookup {
	return &Lookup{
		champions:    copyTable(champions),
		constructors: copyTable(constructors),
	}
}

// LoadLookup reads both files. A file that cannot be loaded is logged and
// leaves its table empty.
func LoadLookup(championsFile, constructorsFile string) *Lookup {
	return NewLookup(loadOrEmpty(championsFile), loadOrEmpty(constructorsFile))
}

func (l *Lookup) Champion(year int) (string, bool) {
	name, ok := l.champions[year]
	return name, ok
}

func (l *Lookup) Constructor(year int) (string, bool) {
	name, ok := l.constructors[year]
	return name, ok
}

func (l *Lookup) Len() (champions, constructors int) {
	return len(l.champions), len(l.constructors)
}

func loadOrEmpty(path string) Table {
	t, err := LoadTable(path)
	if err != nil {
		log.Warn("reference table not available", log.String("file", path), log.ErrorField(err))
		return Table{}
	}
	log.Debug("reference table loaded", log.String("file", path), log.Int("entries", len(t)))
	return t
}

func copyTable(t Table) Table {
	c := make(Table, len(t))
	for k, v := range t {
		c[k] = v
	}
	return c
}
