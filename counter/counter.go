// Package counter aggregates keyword tokens into a frequency table and
// renders it as a deterministically ordered report.
package counter

import "sort"

// Counts maps each distinct keyword to its occurrence count.
// Keys are case-sensitive exact tokens.
type Counts map[string]int

// New returns an empty frequency map.
func New() Counts {
	return make(Counts)
}

// Add records one occurrence of keyword.
func (c Counts) Add(keyword string) {
	c[keyword]++
}

// Row is one line of the final report.
type Row struct {
	Keyword string
	Count   int
}

// Report returns the frequency table sorted by count descending, then
// keyword ascending on ties. The ordering is total for distinct keywords,
// so identical inputs always produce identical reports.
func (c Counts) Report() []Row {
	rows := make([]Row, 0, len(c))
	for keyword, count := range c {
		rows = append(rows, Row{Keyword: keyword, Count: count})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Keyword < rows[j].Keyword
	})

	return rows
}
