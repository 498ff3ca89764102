package toklang

import (
	"math"
	"strings"
	"unicode"
)

// Scanner classifies the runes of one Source into Tokens. It is a
// single-pass scanner: after the EOF token has been produced, every
// further call keeps producing EOF. A Scanner must not be shared between
// goroutines; scan the same Source with independent Scanners instead.
type Scanner struct {
	cursor  *Cursor
	current *Token
	done    bool
}

func NewScanner(source *Source) *Scanner {
	return &Scanner{
		cursor: NewCursor(source),
	}
}

func (s *Scanner) Current() (*Token, error) {
	if s.current == nil {
		var err error
		s.current, err = s.scan()
		if err != nil {
			return nil, err
		}
	}
	return s.current, nil
}

func (s *Scanner) Consume() {
	s.current = nil
}

// Next returns the current token and consumes it.
func (s *Scanner) Next() (*Token, error) {
	token, err := s.Current()
	if err != nil {
		return nil, err
	}
	s.Consume()
	return token, nil
}

// All drains the scanner, ending after the EOF token or the first error.
func (s *Scanner) All(yield func(*Token, error) bool) {
	for {
		token, err := s.Next()
		if err != nil {
			yield(nil, err)
			return
		}
		if !yield(token, nil) {
			return
		}
		if token.Kind == TokenEOF {
			return
		}
	}
}

// ScanAll scans source to completion, EOF token included. On failure the
// tokens produced before the failing lexeme are returned alongside the
// error.
func ScanAll(source *Source) ([]*Token, error) {
	scanner := NewScanner(source)
	var tokens []*Token
	for {
		token, err := scanner.Next()
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, token)
		if token.Kind == TokenEOF {
			return tokens, nil
		}
	}
}

func (s *Scanner) scan() (*Token, error) {
	if s.done {
		return EOFToken, nil
	}

	s.skipWhitespace()
	startPos := s.cursor.Pos()

	r, ok := s.cursor.Peek()
	if !ok {
		return &Token{Kind: TokenEOF, Pos: startPos, End: startPos.Offset}, nil
	}

	switch {
	case isDigit(r):
		return s.scanNumber(startPos), nil
	case isIdentStart(r):
		return s.scanIdentifier(startPos), nil
	case r == '"':
		return s.scanString(startPos)
	}

	s.cursor.Advance()
	end := s.cursor.Position()
	switch r {
	case '+':
		return &Token{Kind: TokenPlus, Text: "+", Pos: startPos, End: end}, nil
	case '-':
		return &Token{Kind: TokenMinus, Text: "-", Pos: startPos, End: end}, nil
	case '*':
		return &Token{Kind: TokenStar, Text: "*", Pos: startPos, End: end}, nil
	case '/':
		return &Token{Kind: TokenSlash, Text: "/", Pos: startPos, End: end}, nil
	}

	return &Token{Kind: TokenInvalid, Text: string(r), Pos: startPos, End: end}, nil
}

func (s *Scanner) skipWhitespace() {
	for {
		r, ok := s.cursor.Peek()
		if !ok || !unicode.IsSpace(r) {
			return
		}
		s.cursor.Advance()
	}
}

// scanNumber consumes a maximal run of decimal digits. A literal exceeding
// int64 saturates at math.MaxInt64; the full digit text is kept.
func (s *Scanner) scanNumber(startPos Pos) *Token {
	var buf strings.Builder
	var value int64
	saturated := false
	for {
		r, ok := s.cursor.Peek()
		if !ok || !isDigit(r) {
			break
		}
		s.cursor.Advance()
		buf.WriteRune(r)
		if saturated {
			continue
		}
		digit := int64(r - '0')
		if value > (math.MaxInt64-digit)/10 {
			value = math.MaxInt64
			saturated = true
		} else {
			value = value*10 + digit
		}
	}
	return &Token{
		Kind:  TokenNumber,
		Text:  buf.String(),
		Value: value,
		Pos:   startPos,
		End:   s.cursor.Position(),
	}
}

func (s *Scanner) scanIdentifier(startPos Pos) *Token {
	var buf strings.Builder
	for {
		r, ok := s.cursor.Peek()
		if !ok || !isIdentPart(r) {
			break
		}
		s.cursor.Advance()
		buf.WriteRune(r)
	}
	return &Token{
		Kind: TokenIdentifier,
		Text: buf.String(),
		Pos:  startPos,
		End:  s.cursor.Position(),
	}
}

// scanString consumes a double-quoted literal and decodes its escapes.
// Reaching end of input before the closing quote fails the scan; no
// truncated literal is emitted, and later calls return EOF.
func (s *Scanner) scanString(startPos Pos) (*Token, error) {
	s.cursor.Advance() // opening quote
	var buf strings.Builder
	for {
		r, ok := s.cursor.Advance()
		if !ok {
			s.done = true
			return nil, WithPos(ErrUnterminatedString, startPos)
		}
		if r == '"' {
			break
		}

		if r == '\\' {
			next, ok := s.cursor.Advance()
			if !ok {
				s.done = true
				return nil, WithPos(ErrUnterminatedString, startPos)
			}
			switch next {
			case 'n':
				buf.WriteRune('\n')
			case 'r':
				buf.WriteRune('\r')
			case 't':
				buf.WriteRune('\t')
			case '\\':
				buf.WriteRune('\\')
			case '"':
				buf.WriteRune('"')
			case '\'':
				buf.WriteRune('\'')
			default:
				buf.WriteRune('\\')
				buf.WriteRune(next)
			}
			continue
		}

		buf.WriteRune(r)
	}
	return &Token{
		Kind: TokenString,
		Text: buf.String(),
		Pos:  startPos,
		End:  s.cursor.Position(),
	}, nil
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
