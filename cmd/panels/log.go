package main

import (
	"fmt"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"
)

// LogFormatter prints entries as "I: message key=value", where the first
// letter is the level.
type LogFormatter struct{}

// Format implements logrus.Formatter.
func (f *LogFormatter) Format(entry *log.Entry) ([]byte, error) {
	level := strings.ToUpper(entry.Level.String())

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %s", level[0:1], entry.Message)

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&sb, " %s=%v", k, entry.Data[k])
	}
	sb.WriteByte('\n')
	return []byte(sb.String()), nil
}
