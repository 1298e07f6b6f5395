package dealerfinder

// Converter converts extracted content HTML to Markdown suitable for a
// text-generation prompt.
type Converter interface {
	Convert(html string) (string, error)
}
