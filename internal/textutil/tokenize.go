package textutil

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Kind classifies a token.
type Kind uint8

const (
	KindWord Kind = iota
	KindSpace
	KindSymbol
)

func (k Kind) String() string {
	switch k {
	case KindWord:
		return "word"
	case KindSpace:
		return "space"
	default:
		return "symbol"
	}
}

// Token is an atomic alignment unit.
type Token struct {
	Text string
	Kind Kind
}

// Tokenize splits text into tokens: maximal runs of ASCII alphanumerics, or a
// single rune of anything else. Bytes that are not valid UTF-8 become
// one-byte symbol tokens.
func Tokenize(text string) []Token {
	if text == "" {
		return nil
	}
	tokens := make([]Token, 0, len(text)/2+1)
	for i := 0; i < len(text); {
		if isASCIIAlnum(text[i]) {
			j := i + 1
			for j < len(text) && isASCIIAlnum(text[j]) {
				j++
			}
			tokens = append(tokens, Token{Text: text[i:j], Kind: KindWord})
			i = j
			continue
		}
		r, size := utf8.DecodeRuneInString(text[i:])
		kind := KindSymbol
		if r != utf8.RuneError && unicode.IsSpace(r) {
			kind = KindSpace
		}
		tokens = append(tokens, Token{Text: text[i : i+size], Kind: kind})
		i += size
	}
	return tokens
}

// Join concatenates token texts.
func Join(tokens []Token) string {
	var b strings.Builder
	for _, tok := range tokens {
		b.WriteString(tok.Text)
	}
	return b.String()
}

// Texts returns the token texts in order.
func Texts(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Text
	}
	return out
}

func isASCIIAlnum(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
