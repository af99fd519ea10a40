package docs

import (
	"fmt"
	"strings"
)

// Topic is one help article shown by "cex docs".
type Topic struct {
	Name    string // slug passed on the command line
	Title   string
	Summary string // shown in the topic listing
	Content string // plain text, no ANSI
}

// All returns every topic in display order.
func All() []Topic {
	return topics
}

// Names returns the topic slugs in display order.
func Names() []string {
	names := make([]string, len(topics))
	for i, t := range topics {
		names[i] = t.Name
	}
	return names
}

// Get looks up a topic by name, ignoring case.
func Get(name string) (Topic, error) {
	for _, t := range topics {
		if strings.EqualFold(t.Name, name) {
			return t, nil
		}
	}
	return Topic{}, fmt.Errorf("unknown topic %q (available: %s)", name, strings.Join(Names(), ", "))
}
