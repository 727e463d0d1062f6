package images

import (
	"github.com/Tomas-vilte/MateReview/internal/regex"
)

// ExtractURLs busca imágenes en el cuerpo del PR (sintaxis Markdown ![alt](url)
// y tags <img src="url">) y devuelve las URLs sin duplicados. El orden es el
// de aparición en el texto, con los matches de Markdown antes que los de HTML.
func ExtractURLs(description string) []string {
	var urls []string
	seen := make(map[string]struct{})

	collect := func(matches [][]string) {
		for _, match := range matches {
			if len(match) < 2 || match[1] == "" {
				continue
			}
			if _, ok := seen[match[1]]; ok {
				continue
			}
			seen[match[1]] = struct{}{}
			urls = append(urls, match[1])
		}
	}

	collect(regex.MarkdownImage.FindAllStringSubmatch(description, -1))
	collect(regex.HTMLImageSrc.FindAllStringSubmatch(description, -1))

	return urls
}
