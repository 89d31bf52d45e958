package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/joshuapare/ddcov/dragondance"
)

// scanLines calls fn for every non-blank, non-comment line with its 1-based
// line number. Lines are trimmed of surrounding whitespace.
func scanLines(r io.Reader, fn func(lineNumber int, line string) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanLines)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := fn(lineNumber, line); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// splitFields splits an events line on commas and whitespace.
func splitFields(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
}

// parseNumber accepts Go integer literal syntax: 0x1000, 4096, 0o17, 0b1.
func parseNumber(s string) (uint64, error) {
	return strconv.ParseUint(s, 0, 64)
}

// splitModuleLine splits "name,base,end" on its last two commas. The name
// is kept verbatim, so paths with spaces or commas survive.
func splitModuleLine(line string) (name, base, end string, ok bool) {
	i := strings.LastIndexByte(line, ',')
	if i < 0 {
		return "", "", "", false
	}
	j := strings.LastIndexByte(line[:i], ',')
	if j < 0 {
		return "", "", "", false
	}
	return line[:j], strings.TrimSpace(line[j+1 : i]), strings.TrimSpace(line[i+1:]), true
}

// parseModules reads a module map of "name,base,end" lines. Ranges are
// checked here so bad input is reported with its line number.
func parseModules(r io.Reader) ([]dragondance.Module, error) {
	var modules []dragondance.Module
	err := scanLines(r, func(lineNumber int, line string) error {
		name, baseField, endField, ok := splitModuleLine(line)
		if !ok || name == "" {
			return fmt.Errorf("modules line %d: expected name,base,end", lineNumber)
		}
		base, err := parseNumber(baseField)
		if err != nil {
			return fmt.Errorf("modules line %d: base: %w", lineNumber, err)
		}
		end, err := parseNumber(endField)
		if err != nil {
			return fmt.Errorf("modules line %d: end: %w", lineNumber, err)
		}
		if base >= end {
			return fmt.Errorf("modules line %d: %s: base %#x is not below end %#x", lineNumber, name, base, end)
		}
		if end-base > dragondance.MaxModuleSize {
			return fmt.Errorf("modules line %d: %s: size %#x exceeds %#x", lineNumber, name, end-base, uint64(dragondance.MaxModuleSize))
		}
		if len(modules) == dragondance.MaxModules {
			return fmt.Errorf("modules line %d: more than %d modules", lineNumber, dragondance.MaxModules)
		}
		modules = append(modules, dragondance.NewModule(name, base, end))
		return nil
	})
	return modules, err
}

// addEvents reads "pc size" lines and records each one in trace. Events that
// would make Add panic are returned as errors instead.
func addEvents(r io.Reader, trace *dragondance.Trace) error {
	return scanLines(r, func(lineNumber int, line string) error {
		fields := splitFields(line)
		if len(fields) != 2 {
			return fmt.Errorf("events line %d: expected pc size, got %d field(s)", lineNumber, len(fields))
		}
		pc, err := parseNumber(fields[0])
		if err != nil {
			return fmt.Errorf("events line %d: pc: %w", lineNumber, err)
		}
		size, err := parseNumber(fields[1])
		if err != nil {
			return fmt.Errorf("events line %d: size: %w", lineNumber, err)
		}
		if size > dragondance.MaxEntrySize {
			return fmt.Errorf("events line %d: size %d exceeds %d", lineNumber, size, dragondance.MaxEntrySize)
		}
		if _, ok := trace.ModuleContaining(pc); !ok {
			return fmt.Errorf("events line %d: no module contains %#x", lineNumber, pc)
		}
		trace.Add(pc, int(size))
		return nil
	})
}
