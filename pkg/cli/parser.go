package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// readWords loads the word list of a file, picking the format by extension:
// .json holds an array of strings, .yaml/.yml a sequence of strings, and
// anything else one word per line.
func readWords(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var words []string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.NewDecoder(file).Decode(&words)
	case ".yaml", ".yml":
		err = yaml.NewDecoder(file).Decode(&words)
	default:
		words, err = readLines(file)
	}
	if err != nil {
		return nil, fmt.Errorf("read words from %s: %w", path, err)
	}
	return words, nil
}

// readLines returns one word per line. Surrounding spaces are trimmed, and
// blank lines and lines starting with '#' are skipped.
func readLines(file *os.File) ([]string, error) {
	words := []string{}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	return words, scanner.Err()
}
