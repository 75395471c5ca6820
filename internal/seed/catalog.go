// Package seed parses the career catalog loaded into an empty database.
package seed

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

//go:embed career_data.csv
var embeddedCatalog []byte

var header = []string{"field", "title", "description", "salary", "growth_rate", "education_level", "skills", "roadmap"}

type Resource struct {
	Title  string `json:"title"`
	URL    string `json:"url"`
	Type   string `json:"type"`
	IsFree bool   `json:"is_free"`
}

type Step struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Duration    string     `json:"duration"`
	Resources   []Resource `json:"resources"`
}

// Entry is one catalog row with its skills split and roadmap decoded.
type Entry struct {
	Field          string
	Title          string
	Description    string
	Salary         int64
	GrowthRate     float64
	EducationLevel string
	Skills         []string
	Roadmap        []Step
}

// ValidationError points at the row and column that failed to parse.
type ValidationError struct {
	Line   int
	Column string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("seed catalog line %d, column %q: %s", e.Line, e.Column, e.Reason)
}

// Loader yields the catalog entries to seed with.
type Loader func() ([]Entry, error)

// Embedded parses the catalog compiled into the binary.
func Embedded() ([]Entry, error) {
	return Parse(bytes.NewReader(embeddedCatalog))
}

// Parse reads a CSV catalog. Any malformed row fails the whole catalog.
func Parse(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(header)

	got, err := cr.Read()
	if err != nil {
		return nil, &ValidationError{Line: 1, Column: "header", Reason: err.Error()}
	}
	for i, name := range header {
		if strings.TrimSpace(got[i]) != name {
			return nil, &ValidationError{Line: 1, Column: name, Reason: fmt.Sprintf("unexpected header %q", got[i])}
		}
	}

	var out []Entry
	titles := map[string]int{}
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			line := 0
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				line = pe.Line
			}
			return nil, &ValidationError{Line: line, Column: "row", Reason: err.Error()}
		}
		line, _ := cr.FieldPos(0)
		e, err := parseRow(line, rec)
		if err != nil {
			return nil, err
		}
		if prev, dup := titles[e.Title]; dup {
			return nil, &ValidationError{Line: line, Column: "title", Reason: fmt.Sprintf("duplicate of line %d", prev)}
		}
		titles[e.Title] = line
		out = append(out, e)
	}
	return out, nil
}

func parseRow(line int, rec []string) (Entry, error) {
	fail := func(col, reason string) (Entry, error) {
		return Entry{}, &ValidationError{Line: line, Column: col, Reason: reason}
	}

	e := Entry{
		Field:          strings.TrimSpace(rec[0]),
		Title:          strings.TrimSpace(rec[1]),
		Description:    strings.TrimSpace(rec[2]),
		EducationLevel: strings.TrimSpace(rec[5]),
	}
	if e.Field == "" {
		return fail("field", "missing career field")
	}
	if e.Title == "" {
		return fail("title", "missing title")
	}

	salary, err := strconv.ParseFloat(strings.TrimSpace(rec[3]), 64)
	if err != nil || salary < 0 {
		return fail("salary", fmt.Sprintf("invalid salary %q", rec[3]))
	}
	e.Salary = int64(salary)

	e.GrowthRate, err = strconv.ParseFloat(strings.TrimSpace(rec[4]), 64)
	if err != nil || e.GrowthRate < 0 || e.GrowthRate > 1 {
		return fail("growth_rate", fmt.Sprintf("growth rate %q must be a fraction between 0 and 1", rec[4]))
	}

	for _, s := range strings.Split(rec[6], ",") {
		if s = strings.TrimSpace(s); s != "" {
			e.Skills = append(e.Skills, s)
		}
	}

	if err := json.Unmarshal([]byte(rec[7]), &e.Roadmap); err != nil {
		return fail("roadmap", "invalid roadmap JSON: "+err.Error())
	}
	for i, st := range e.Roadmap {
		if strings.TrimSpace(st.Title) == "" {
			return fail("roadmap", fmt.Sprintf("step %d has no title", i+1))
		}
	}
	return e, nil
}
