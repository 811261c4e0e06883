package domain

import (
	"strings"
	"unicode/utf8"
)

// MaxTopicNameLength is the maximum topic name length in characters.
const MaxTopicNameLength = 60

// NormalizeTopicName returns the key under which a topic is identified:
// surrounding whitespace is trimmed and the name is lower-cased.
//
// Overrides are stored under this key and the topic aggregator normalizes
// message subjects with the same function, so the two always agree.
func NormalizeTopicName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// CleanTopicName trims surrounding whitespace but keeps the original casing.
// It is the display form stored next to the key.
func CleanTopicName(name string) string {
	return strings.TrimSpace(name)
}

// TopicNameLength returns the length of a topic name in characters.
func TopicNameLength(name string) int {
	return utf8.RuneCountInString(name)
}
