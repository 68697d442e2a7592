// Package console collects a student profile on a terminal or from a
// profile file.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"uni-advisor/internal/models"

	"gopkg.in/yaml.v3"
)

// Collect asks every schema question in order and reads one line per answer.
// Input that ends early leaves the remaining fields empty.
func Collect(in io.Reader, out io.Writer) (models.Profile, error) {
	profile := models.NewProfile()
	reader := bufio.NewReader(in)

	if _, err := fmt.Fprintln(out, "Enter student details:"); err != nil {
		return nil, err
	}

	for _, field := range models.Schema {
		if _, err := fmt.Fprint(out, field.Question); err != nil {
			return nil, err
		}
		line, err := reader.ReadString('\n')
		profile.Set(field.Name, strings.TrimRight(line, "\r\n"))
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", field.Name, err)
		}
	}

	return profile, nil
}

// LoadProfile reads a YAML document keyed by form keys (name, current_city,
// ...). Keys outside the schema are ignored.
func LoadProfile(path string) (models.Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}
	return ParseProfile(data)
}

func ParseProfile(data []byte) (models.Profile, error) {
	var raw map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}
	return models.ProfileFromKeys(raw), nil
}
