package internal

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// Parser reads a subscription source file into normalized Subscription
// records.
type Parser interface {
	Parse(path string, ing Ingestor) ([]Subscription, error)
}

// ParserFunc is a function that implements Parser.
type ParserFunc func(path string, ing Ingestor) ([]Subscription, error)

func (f ParserFunc) Parse(path string, ing Ingestor) ([]Subscription, error) {
	return f(path, ing)
}

// parsers is the registry of available source parsers
var parsers = map[string]Parser{}

// extensions maps file extensions to default source types
var extensions = map[string]string{
	".xlsx": "xlsx",
	".csv":  "csv",
	".json": "simple-json",
}

// RegisterParser registers a parser with the given source name.
func RegisterParser(name string, p Parser) {
	parsers[name] = p
}

// GetParser returns the parser for the given source type.
func GetParser(source string) (Parser, error) {
	p, ok := parsers[source]
	if !ok {
		return nil, fmt.Errorf("unknown source type: %s (available: %v)", source, AvailableSources())
	}
	return p, nil
}

// AvailableSources returns the registered source types, sorted.
func AvailableSources() []string {
	var sources []string
	for name := range parsers {
		sources = append(sources, name)
	}
	sort.Strings(sources)
	return sources
}

// IsKnownParser returns true if the name is a registered parser.
func IsKnownParser(name string) bool {
	_, ok := parsers[name]
	return ok
}

// ParseFileArg parses a file argument that may have a format prefix.
// Returns (format, path). If no valid prefix, format is empty.
// Example: "simple-json:data.json" → ("simple-json", "data.json")
// Example: "data.json" → ("", "data.json")
// Example: "C:\path\file.xlsx" → ("", "C:\path\file.xlsx") // Windows path
func ParseFileArg(arg string) (format, path string) {
	idx := strings.Index(arg, ":")
	if idx == -1 {
		return "", arg
	}
	prefix := arg[:idx]
	if IsKnownParser(prefix) {
		return prefix, arg[idx+1:]
	}
	return "", arg // Not a known parser, treat whole thing as path
}

// DetectSource picks a source type for a path by its extension. Returns
// false when the extension is not recognized.
func DetectSource(path string) (string, bool) {
	source, ok := extensions[strings.ToLower(filepath.Ext(path))]
	return source, ok
}
