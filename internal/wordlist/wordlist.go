// Package wordlist loads word corpora.
package wordlist

import (
	"bufio"
	_ "embed"
	"fmt"
	"os"
	"strings"
)

//go:embed default.txt
var defaultCorpus string

// Default returns the corpus compiled into the binary, used when no
// user word list exists for the requested language.
func Default() []string {
	var words []string
	for _, line := range strings.Split(defaultCorpus, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		words = append(words, line)
	}
	return words
}

// LoadWords reads one word per line from the provided file path.
func LoadWords(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("word list is empty")
	}
	return words, nil
}
