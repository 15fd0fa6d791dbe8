package evaluation

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	// DefaultMaxContentLength is the hard ceiling on evaluated content.
	// All engine operations are synchronous string scans, so bounding the
	// input bounds evaluation time.
	DefaultMaxContentLength = 100000

	// LongFormThreshold is the character count above which content is
	// considered long-form.
	LongFormThreshold = 500
)

// Metadata carries optional descriptive attributes of a piece of content.
type Metadata struct {
	// Source identifies where the content originated (e.g., "cms", "api").
	Source string `json:"source,omitempty"`

	// ContentType describes the kind of content (e.g., "blog-post", "tweet").
	ContentType string `json:"content_type,omitempty"`

	// Language is the content language code (e.g., "en").
	Language string `json:"language,omitempty"`

	// Tags are free-form labels attached by the caller.
	Tags []string `json:"tags,omitempty"`
}

// Content is an immutable, validated piece of text under evaluation.
// It is created once per evaluation request via NewContent and never
// mutated; analyzers read the normalized form, results retain the
// original text.
type Content struct {
	text       string
	context    string
	metadata   Metadata
	normalized string
}

// NewContent validates and constructs a Content value using
// DefaultMaxContentLength as the size ceiling.
// The context label selects contextual rule overrides downstream and may
// be empty. meta may be nil.
func NewContent(text, context string, meta *Metadata) (*Content, error) {
	return NewContentWithLimit(text, context, meta, DefaultMaxContentLength)
}

// NewContentWithLimit validates and constructs a Content value with an
// explicit maximum length. Empty (or whitespace-only) text and text
// exceeding maxLength are rejected with a ValidationError; invalid
// content must never reach the analyzers.
func NewContentWithLimit(text, context string, meta *Metadata, maxLength int) (*Content, error) {
	if maxLength <= 0 {
		maxLength = DefaultMaxContentLength
	}

	if strings.TrimSpace(text) == "" {
		return nil, &ValidationError{Field: "text", Message: "content text cannot be empty"}
	}

	if utf8.RuneCountInString(text) > maxLength {
		return nil, &ValidationError{
			Field:   "text",
			Message: fmt.Sprintf("content exceeds maximum length of %d characters", maxLength),
		}
	}

	c := &Content{
		text:       text,
		context:    context,
		normalized: normalizeText(text),
	}
	if meta != nil {
		c.metadata = *meta
		// Copy the slice so later caller mutation cannot leak in.
		if len(meta.Tags) != 0 {
			c.metadata.Tags = append([]string(nil), meta.Tags...)
		}
	}

	return c, nil
}

// Text returns the original content text.
func (c *Content) Text() string { return c.text }

// Context returns the usage-context label, or "" if none was supplied.
func (c *Content) Context() string { return c.context }

// Metadata returns a copy of the content metadata.
func (c *Content) Metadata() Metadata {
	meta := c.metadata
	if len(meta.Tags) != 0 {
		meta.Tags = append([]string(nil), meta.Tags...)
	}
	return meta
}

// Normalized returns the trimmed, whitespace-collapsed form of the text.
// All keyword and pattern matching runs against this form.
func (c *Content) Normalized() string { return c.normalized }

// Length returns the character (rune) length of the original text.
func (c *Content) Length() int { return utf8.RuneCountInString(c.text) }

// IsLongForm reports whether the content exceeds LongFormThreshold.
func (c *Content) IsLongForm() bool { return c.Length() > LongFormThreshold }

// normalizeText trims the text and collapses whitespace runs (including
// newlines) into single spaces.
func normalizeText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
