package toklang

import "fmt"

// Token is one classified unit of lexical output. Text holds the exact
// lexeme, except for TokenString where it holds the decoded contents and
// TokenNumber where Value holds the parsed integer.
type Token struct {
	Kind  TokenKind
	Text  string
	Value int64
	Pos   Pos
	End   int
}

var EOFToken = &Token{
	Kind: TokenEOF,
}

type TokenKind uint8

const (
	TokenInvalid TokenKind = iota
	TokenEOF
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenNumber
	TokenIdentifier
	TokenString
)

func (k TokenKind) String() string {
	switch k {
	case TokenInvalid:
		return "INVALID"
	case TokenEOF:
		return "EOF"
	case TokenPlus:
		return "PLUS"
	case TokenMinus:
		return "MINUS"
	case TokenStar:
		return "STAR"
	case TokenSlash:
		return "SLASH"
	case TokenNumber:
		return "NUMBER"
	case TokenIdentifier:
		return "IDENT"
	case TokenString:
		return "STRING"
	}
	return fmt.Sprintf("TokenKind(%d)", k)
}

func (t *Token) String() string {
	switch t.Kind {
	case TokenNumber:
		return fmt.Sprintf("NUMBER(%d)", t.Value)
	case TokenIdentifier:
		return fmt.Sprintf("IDENT(%s)", t.Text)
	case TokenString:
		return fmt.Sprintf("STRING(%q)", t.Text)
	case TokenInvalid:
		return fmt.Sprintf("INVALID(%q)", t.Text)
	}
	return t.Kind.String()
}

type Pos struct {
	Source *Source
	Offset int
	Line   int
	Column int
}
