// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// LoadEnvFile reads a dotenv file and merges its contents into env.
// Relative paths are resolved against baseDir. A trailing '?' marks the
// file optional: a missing optional file leaves env untouched.
// Keys in the file override existing keys in env.
func LoadEnvFile(env map[string]string, path, baseDir string) error {
	optional := strings.HasSuffix(path, "?")
	path = strings.TrimSuffix(path, "?")

	fullPath := path
	if !filepath.IsAbs(path) {
		fullPath = filepath.Join(baseDir, filepath.FromSlash(path))
	}

	content, err := os.ReadFile(fullPath)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read env file '%s': %w", path, err)
	}

	parsed, err := ParseEnvFile(content, path)
	if err != nil {
		return err
	}
	for k, v := range parsed {
		env[k] = v
	}
	return nil
}

// ParseEnvFile parses dotenv content. Supported syntax:
//   - Lines starting with # are comments; blank lines are ignored
//   - KEY=value (unquoted; " #" starts an inline comment)
//   - KEY="value" (escape sequences: \n, \r, \t, \\, \", \$)
//   - KEY='value' (literal)
//   - export KEY=value
//   - KEY= (empty value)
//
// The filename parameter is used for error messages.
func ParseEnvFile(content []byte, filename string) (map[string]string, error) {
	env := make(map[string]string)

	for i, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimSpace(strings.TrimPrefix(line, "export "))

		key, value, found := strings.Cut(line, "=")
		if !found {
			return nil, fmt.Errorf("%s:%d: invalid format (missing '=')", filename, i+1)
		}
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("%s:%d: empty variable name", filename, i+1)
		}

		parsed, err := parseEnvValue(value)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", filename, i+1, err)
		}
		env[key] = parsed
	}

	return env, nil
}

func parseEnvValue(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", nil
	}

	switch value[0] {
	case '"':
		if len(value) < 2 || value[len(value)-1] != '"' {
			return "", errors.New("unterminated double quote")
		}
		return unescapeDoubleQuoted(value[1 : len(value)-1]), nil
	case '\'':
		if len(value) < 2 || value[len(value)-1] != '\'' {
			return "", errors.New("unterminated single quote")
		}
		return value[1 : len(value)-1], nil
	}

	if idx := strings.Index(value, " #"); idx != -1 {
		value = strings.TrimSpace(value[:idx])
	}
	return value, nil
}

var doubleQuoteEscapes = strings.NewReplacer(
	`\n`, "\n",
	`\r`, "\r",
	`\t`, "\t",
	`\\`, `\`,
	`\"`, `"`,
	`\$`, `$`,
)

func unescapeDoubleQuoted(value string) string {
	return doubleQuoteEscapes.Replace(value)
}
