// Package assoc renders key/value results as Mathematica association
// expressions, the input format of the downstream analysis notebooks.
//
// An association file looks like
//
//	<|
//	"numQubits" -> 24,
//	"durs" -> {1.05000*10^-03, 9.80000*10^-04}
//	|>
//
// with reals in scientific notation so Mathematica reads them at full
// precision.
package assoc

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// DefaultPrecision is the number of digits written after the decimal point
// when no explicit precision is given.
const DefaultPrecision = 5

type entry struct {
	key   string
	value string
}

// Builder accumulates association entries in insertion order.
type Builder struct {
	entries []entry
	prec    int
}

// New returns a Builder whose reals carry prec digits after the decimal
// point. A negative precision falls back to DefaultPrecision.
func New(prec int) *Builder {
	if prec < 0 {
		prec = DefaultPrecision
	}

	return &Builder{prec: prec}
}

func (b *Builder) put(key, value string) *Builder {
	b.entries = append(b.entries, entry{key: key, value: value})
	return b
}

// PutString adds a quoted string entry.
func (b *Builder) PutString(key, value string) *Builder {
	return b.put(key, strconv.Quote(value))
}

// PutInt adds an integer entry.
func (b *Builder) PutInt(key string, value int) *Builder {
	return b.put(key, strconv.Itoa(value))
}

// PutInts adds an integer list entry in Mathematica brace syntax.
func (b *Builder) PutInts(key string, values []int) *Builder {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}

	return b.put(key, "{"+strings.Join(parts, ", ")+"}")
}

// PutFloat adds a real entry in scientific notation.
func (b *Builder) PutFloat(key string, value float64) *Builder {
	return b.put(key, formatSci(value, b.prec))
}

// PutFloats adds a real list entry in Mathematica brace syntax.
func (b *Builder) PutFloats(key string, values []float64) *Builder {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = formatSci(v, b.prec)
	}

	return b.put(key, "{"+strings.Join(parts, ", ")+"}")
}

// Len returns the number of entries added so far.
func (b *Builder) Len() int {
	return len(b.entries)
}

// String renders the association.
func (b *Builder) String() string {
	var sb strings.Builder

	sb.WriteString("<|\n")
	for i, e := range b.entries {
		if i > 0 {
			sb.WriteString(",\n")
		}

		sb.WriteString(strconv.Quote(e.key))
		sb.WriteString(" -> ")
		sb.WriteString(e.value)
	}
	sb.WriteString("\n|>")

	return sb.String()
}

// WriteFile atomically writes the rendered association to path: the bytes
// go to a temporary sibling first, which is synced and renamed into place,
// so a crash never leaves a half-written result file.
func (b *Builder) WriteFile(path string) error {
	tmpPath := path + ".tmp"

	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	if _, err := f.WriteString(b.String()); err != nil {
		f.Close()
		os.Remove(tmpPath)

		return fmt.Errorf("write temp file: %w", err)
	}

	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmpPath)

		return fmt.Errorf("sync temp file: %w", err)
	}

	if err := f.Close(); err != nil {
		os.Remove(tmpPath)

		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)

		return fmt.Errorf("rename into place: %w", err)
	}

	return nil
}

// formatSci renders v as Mathematica scientific notation, e.g. 1.215 with
// precision 5 becomes "1.21500*10^+00".
func formatSci(v float64, prec int) string {
	return strings.Replace(strconv.FormatFloat(v, 'e', prec, 64), "e", "*10^", 1)
}
