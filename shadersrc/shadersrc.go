// Package shadersrc splits a single tagged text file into vertex and fragment
// shader sources.
//
// A section starts at any line which contains "shader" together with either
// "#Vertex" or "#Fragment", for example
//
//	#Vertex shader
//	#version 410 core
//	...
//	#Fragment shader
//	#version 410 core
//	...
//
// Lines which contain "shader" but neither tag are consumed without changing
// the current section.
package shadersrc

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

const (
	markerWord     = "shader"
	vertexMarker   = "#Vertex"
	fragmentMarker = "#Fragment"

	maxLineSize = 1 << 20
)

// ErrInvalidFormat is returned when the input has shader text before its first
// section marker.
var ErrInvalidFormat = errors.New("invalid shader source format")

// FormatError describes the line which made the input invalid.
type FormatError struct {
	// Line is the 1-based line number.
	Line int
	Text string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("line %d: content before any section marker: %q", e.Line, e.Text)
}

func (e *FormatError) Unwrap() error {
	return ErrInvalidFormat
}

// Section is the part of the file the parser is currently in.
type Section int

const (
	SectionNone Section = iota
	SectionVertex
	SectionFragment
)

func (s Section) String() string {
	switch s {
	case SectionNone:
		return "none"
	case SectionVertex:
		return "vertex"
	case SectionFragment:
		return "fragment"
	default:
		return fmt.Sprintf("Section(%d)", int(s))
	}
}

// Bundle holds the two shader sources found in one file.
type Bundle struct {
	Vertex   string
	Fragment string
}

// classify returns the section a marker line switches to and whether the line
// is a marker at all.
func classify(line string) (Section, bool) {
	if !strings.Contains(line, markerWord) {
		return SectionNone, false
	}

	switch {
	case strings.Contains(line, vertexMarker):
		return SectionVertex, true
	case strings.Contains(line, fragmentMarker):
		return SectionFragment, true
	default:
		return SectionNone, true
	}
}

// Parse reads the whole of r and splits it into a Bundle. Every line which is
// not a marker is appended, followed by a newline, to the section selected by
// the last marker before it.
func Parse(r io.Reader) (Bundle, error) {
	var (
		vertex   strings.Builder
		fragment strings.Builder
		current  = SectionNone
		lineNo   int
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSuffix(scanner.Text(), "\r")

		if section, isMarker := classify(line); isMarker {
			if section != SectionNone {
				current = section
			}
			continue
		}

		switch current {
		case SectionVertex:
			vertex.WriteString(line)
			vertex.WriteByte('\n')
		case SectionFragment:
			fragment.WriteString(line)
			fragment.WriteByte('\n')
		default:
			return Bundle{}, &FormatError{Line: lineNo, Text: line}
		}
	}
	if err := scanner.Err(); err != nil {
		return Bundle{}, fmt.Errorf("reading shader source: %w", err)
	}

	return Bundle{
		Vertex:   vertex.String(),
		Fragment: fragment.String(),
	}, nil
}

// ParseString is Parse for sources already in memory.
func ParseString(src string) (Bundle, error) {
	return Parse(strings.NewReader(src))
}

// Load opens name within fsys and parses it.
func Load(fsys fs.FS, name string) (Bundle, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return Bundle{}, fmt.Errorf("opening shader file: %w", err)
	}
	defer f.Close()

	bundle, err := Parse(f)
	if err != nil {
		return Bundle{}, fmt.Errorf("%s: %w", name, err)
	}
	return bundle, nil
}

// LoadFile parses the shader file at path on the local file system.
func LoadFile(path string) (Bundle, error) {
	f, err := os.Open(path)
	if err != nil {
		return Bundle{}, fmt.Errorf("opening shader file: %w", err)
	}
	defer f.Close()

	bundle, err := Parse(f)
	if err != nil {
		return Bundle{}, fmt.Errorf("%s: %w", path, err)
	}
	return bundle, nil
}

// Format writes b back into the tagged format. Parsing the result yields b
// again as long as both sources end with a newline and have no marker lines.
func Format(b Bundle) string {
	var sb strings.Builder

	sb.WriteString(vertexMarker + " " + markerWord + "\n")
	sb.WriteString(b.Vertex)
	if b.Vertex != "" && !strings.HasSuffix(b.Vertex, "\n") {
		sb.WriteByte('\n')
	}

	sb.WriteString(fragmentMarker + " " + markerWord + "\n")
	sb.WriteString(b.Fragment)
	if b.Fragment != "" && !strings.HasSuffix(b.Fragment, "\n") {
		sb.WriteByte('\n')
	}

	return sb.String()
}
