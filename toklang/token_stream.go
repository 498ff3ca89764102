package toklang

// TokenStream is the pull interface shared by the live Scanner and
// pre-scanned token slices.
type TokenStream interface {
	Current() (*Token, error)
	Consume()
}

// SliceTokenStream replays an already scanned token slice. Past the end it
// keeps reporting EOF.
type SliceTokenStream struct {
	tokens []*Token
	idx    int
}

func NewSliceTokenStream(tokens []*Token) *SliceTokenStream {
	return &SliceTokenStream{
		tokens: tokens,
	}
}

func (s *SliceTokenStream) Current() (*Token, error) {
	if s.idx >= len(s.tokens) {
		return EOFToken, nil
	}
	return s.tokens[s.idx], nil
}

func (s *SliceTokenStream) Consume() {
	if s.idx < len(s.tokens) {
		s.idx++
	}
}
