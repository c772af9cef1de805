package logtail

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Entry is one parsed log record.
type Entry struct {
	Raw     string
	Time    string
	Level   slog.Level
	Message string
	// Attrs holds the remaining key=value pairs in file order.
	Attrs []Attr
}

// Attr is a single record attribute.
type Attr struct {
	Key   string
	Value string
}

// Read returns at most maxLines records at or above minLevel from the end
// of the file at path. maxLines <= 0 returns every matching record. A
// missing file yields no entries.
func Read(path string, maxLines int, minLevel slog.Level) ([]Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	var ring []Entry
	idx := 0
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		entry := Parse(line)
		if entry.Level < minLevel {
			continue
		}
		if maxLines <= 0 || len(ring) < maxLines {
			ring = append(ring, entry)
			continue
		}
		ring[idx] = entry
		idx = (idx + 1) % maxLines
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	if idx == 0 {
		return ring, nil
	}
	out := make([]Entry, 0, len(ring))
	out = append(out, ring[idx:]...)
	return append(out, ring[:idx]...), nil
}

// Parse decodes a text or JSON record written by the logging package.
// Unrecognised lines keep Raw and report info level.
func Parse(line string) Entry {
	entry := Entry{Raw: line, Level: slog.LevelInfo}
	var pairs []Attr
	if strings.HasPrefix(strings.TrimSpace(line), "{") {
		pairs = jsonPairs(line)
	} else {
		pairs = textPairs(line)
	}
	for _, p := range pairs {
		switch p.Key {
		case "ts", "time":
			entry.Time = p.Value
		case "level":
			var lvl slog.Level
			if err := lvl.UnmarshalText([]byte(p.Value)); err == nil {
				entry.Level = lvl
			}
		case "msg":
			entry.Message = p.Value
		default:
			entry.Attrs = append(entry.Attrs, p)
		}
	}
	if entry.Message == "" && entry.Time == "" {
		entry.Message = line
		entry.Attrs = nil
	}
	return entry
}

// textPairs splits a slog text line into key=value pairs. Quoted values
// are unquoted.
func textPairs(line string) []Attr {
	var out []Attr
	rest := strings.TrimSpace(line)
	for rest != "" {
		eq := strings.IndexByte(rest, '=')
		if eq <= 0 {
			break
		}
		key := rest[:eq]
		if strings.ContainsAny(key, " \"") {
			break
		}
		rest = rest[eq+1:]
		var value string
		if strings.HasPrefix(rest, `"`) {
			end := closingQuote(rest)
			if end < 0 {
				value, rest = rest, ""
			} else {
				quoted := rest[:end+1]
				if v, err := strconv.Unquote(quoted); err == nil {
					value = v
				} else {
					value = quoted
				}
				rest = rest[end+1:]
			}
		} else if sp := strings.IndexByte(rest, ' '); sp >= 0 {
			value, rest = rest[:sp], rest[sp:]
		} else {
			value, rest = rest, ""
		}
		out = append(out, Attr{Key: key, Value: value})
		rest = strings.TrimLeft(rest, " ")
	}
	return out
}

func closingQuote(s string) int {
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '"':
			return i
		}
	}
	return -1
}

func jsonPairs(line string) []Attr {
	var raw map[string]json.RawMessage
	dec := json.NewDecoder(strings.NewReader(line))
	if err := dec.Decode(&raw); err != nil {
		return nil
	}
	keys := orderedKeys(line)
	out := make([]Attr, 0, len(raw))
	for _, key := range keys {
		value, ok := raw[key]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(value, &s); err != nil {
			s = string(value)
		}
		out = append(out, Attr{Key: key, Value: s})
	}
	return out
}

// orderedKeys returns the top-level object keys of line in file order.
func orderedKeys(line string) []string {
	dec := json.NewDecoder(strings.NewReader(line))
	if _, err := dec.Token(); err != nil {
		return nil
	}
	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return keys
		}
		key, ok := tok.(string)
		if !ok {
			return keys
		}
		keys = append(keys, key)
		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return keys
		}
	}
	return keys
}
