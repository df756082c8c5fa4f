package env

import (
	"bufio"
	"os"
	"strings"
)

// Prefix marks the variables the simulator reads, e.g. RIGID_TIME_STEP.
const Prefix = "RIGID_"

// Load reads the given file (e.g. ".env") and returns its KEY=VALUE pairs. Empty lines and lines
// starting with # are skipped. The file may be missing; that is not an error.
func Load(path string) (map[string]string, error) {
	vars := make(map[string]string)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return vars, nil
		}
		return nil, err
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		key, value, ok := parseLine(scanner.Text())
		if ok {
			vars[key] = value
		}
	}
	return vars, scanner.Err()
}

// Collect returns every variable starting with prefix, from the file at path and from the
// process environment, with the prefix stripped. The process environment wins.
func Collect(path, prefix string) (map[string]string, error) {
	fileVars, err := Load(path)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string)
	for k, v := range fileVars {
		if name, ok := strings.CutPrefix(k, prefix); ok && name != "" {
			out[name] = v
		}
	}
	for _, kv := range os.Environ() {
		k, v, _ := strings.Cut(kv, "=")
		if name, ok := strings.CutPrefix(k, prefix); ok && name != "" {
			out[name] = v
		}
	}
	return out, nil
}

func parseLine(line string) (key, value string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	line = strings.TrimPrefix(line, "export ")
	i := strings.Index(line, "=")
	if i <= 0 {
		return "", "", false
	}
	key = strings.TrimSpace(line[:i])
	value = strings.TrimSpace(line[i+1:])
	if key == "" {
		return "", "", false
	}
	// Remove surrounding quotes if present
	if len(value) >= 2 && (value[0] == '"' && value[len(value)-1] == '"' || value[0] == '\'' && value[len(value)-1] == '\'') {
		value = value[1 : len(value)-1]
	}
	return key, value, true
}
