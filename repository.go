package ambient

import (
	"embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/tphakala/go-ambient-noise/internal/mathutil"
)

//go:embed data/*.csv
var embeddedTemplates embed.FS

// TemplateProvider supplies the empirical spectrum of a category at a level.
type TemplateProvider interface {
	// Lookup returns the template in Hz. Absent levels yield zero
	// intensities over the category's native grid.
	Lookup(category Category, level int) (Spectrum, error)
}

// tableLayout describes the on-disk table of one category.
type tableLayout struct {
	path   string
	levels int // data columns after the frequency column
}

var tableLayouts = map[Category]tableLayout{
	CategoryRain:     {path: "data/rain.csv", levels: 4},
	CategorySea:      {path: "data/sea_state.csv", levels: 7},
	CategoryShipping: {path: "data/shipping_noise.csv", levels: 7},
}

const minTemplateRows = 2

type templateTable struct {
	freqs   []float64
	columns [][]float64
}

// Repository holds the parsed template tables. It is read-only after
// loading and safe for concurrent use.
type Repository struct {
	tables map[Category]*templateTable
}

var defaultRepository = sync.OnceValues(func() (*Repository, error) {
	return LoadRepository(embeddedTemplates)
})

// DefaultRepository returns the repository built from the embedded tables,
// parsing them on first use. It panics if the embedded tables are malformed.
func DefaultRepository() *Repository {
	repo, err := defaultRepository()
	if err != nil {
		panic(err)
	}
	return repo
}

// LoadRepository parses every category table from fsys. Tables are expected
// at data/rain.csv, data/sea_state.csv and data/shipping_noise.csv, each with
// a header row, a frequency column in Hz and one column per non-absent level.
func LoadRepository(fsys fs.FS) (*Repository, error) {
	repo := &Repository{tables: make(map[Category]*templateTable, len(tableLayouts))}
	for _, category := range Categories {
		layout := tableLayouts[category]
		table, err := loadTable(fsys, layout)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrMalformedTemplateSource, layout.path, err)
		}
		repo.tables[category] = table
	}
	return repo, nil
}

func loadTable(fsys fs.FS, layout tableLayout) (*templateTable, error) {
	f, err := fsys.Open(layout.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = layout.levels + 1
	r.TrimLeadingSpace = true

	if _, err := r.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("missing header row")
		}
		return nil, err
	}

	table := &templateTable{columns: make([][]float64, layout.levels)}
	for row := 2; ; row++ {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		values := make([]float64, len(record))
		for i, cell := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("row %d column %d: invalid number %q", row, i+1, cell)
			}
			values[i] = v
		}

		table.freqs = append(table.freqs, values[0])
		for i := range table.columns {
			table.columns[i] = append(table.columns[i], values[i+1])
		}
	}

	if len(table.freqs) < minTemplateRows {
		return nil, fmt.Errorf("need at least %d rows, got %d", minTemplateRows, len(table.freqs))
	}
	if table.freqs[0] < 0 || !mathutil.IsStrictlyIncreasing(table.freqs) {
		return nil, errors.New("frequencies must be non-negative and strictly increasing")
	}

	return table, nil
}

// Lookup implements TemplateProvider.
func (r *Repository) Lookup(category Category, level int) (Spectrum, error) {
	table, ok := r.tables[category]
	if !ok {
		return Spectrum{}, fmt.Errorf("%w: category %v", ErrUnknownLevel, category)
	}

	column := level
	if category.HasAbsentLevel() {
		if level == 0 {
			return NewSpectrum(table.freqs, make([]float64, len(table.freqs)))
		}
		column = level - 1
	}
	if column < 0 || column >= len(table.columns) {
		return Spectrum{}, fmt.Errorf("%w: %v level %d", ErrUnknownLevel, category, level)
	}

	return NewSpectrum(table.freqs, table.columns[column])
}

// Resolve looks up src and tags the result.
func (r *Repository) Resolve(src Source) (Contribution, error) {
	return resolve(r, src)
}

// Levels reports how many levels a category offers, including an absent one.
func (r *Repository) Levels(category Category) int {
	table, ok := r.tables[category]
	if !ok {
		return 0
	}
	if category.HasAbsentLevel() {
		return len(table.columns) + 1
	}
	return len(table.columns)
}

// Contribution is what a source adds to a composition: either nothing, or
// noise shaped by a template.
type Contribution struct {
	present  bool
	template Spectrum
}

// Absent returns a contribution of exact silence.
func Absent() Contribution {
	return Contribution{}
}

// Present returns a contribution shaped by template.
func Present(template Spectrum) Contribution {
	return Contribution{present: true, template: template}
}

// IsPresent reports whether the contribution carries a template.
func (c Contribution) IsPresent() bool {
	return c.present
}

// Template returns the shaping template and whether there is one.
func (c Contribution) Template() (Spectrum, bool) {
	return c.template, c.present
}

func resolve(p TemplateProvider, src Source) (Contribution, error) {
	if IsAbsent(src) {
		return Absent(), nil
	}
	template, err := p.Lookup(src.Category(), src.Level())
	if err != nil {
		return Contribution{}, err
	}
	return Present(template), nil
}
