package regex

import "regexp"

var (
	// Image patterns for PR descriptions
	MarkdownImage = regexp.MustCompile(`!\[.*?\]\((.*?)\)`)
	HTMLImageSrc  = regexp.MustCompile(`<img[^>]+src=["']([^"']+)["']`)
)
