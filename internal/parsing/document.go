package parsing

// Document is a text prepared once for every matcher: the raw input,
// its normalized form and its stemmed token sequence.
type Document struct {
	Raw        string
	Normalized string
	Tokens     []string

	tokenSet map[string]struct{}
}

// NewDocument normalizes and tokenizes text
func NewDocument(text string) *Document {
	tokens := Tokenize(text)
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return &Document{
		Raw:        text,
		Normalized: Normalize(text),
		Tokens:     tokens,
		tokenSet:   set,
	}
}

// HasToken reports whether the stemmed token occurs in the document
func (d *Document) HasToken(token string) bool {
	_, ok := d.tokenSet[token]
	return ok
}

// TokenCount is the number of stemmed, stopword-filtered tokens
func (d *Document) TokenCount() int {
	return len(d.Tokens)
}

// Token counts inside this band are treated as a reasonable resume length
const (
	IdealMinTokens = 150
	IdealMaxTokens = 1500
)

// InIdealRange reports whether the document length falls inside the ideal band
func (d *Document) InIdealRange() bool {
	n := d.TokenCount()
	return n >= IdealMinTokens && n <= IdealMaxTokens
}
