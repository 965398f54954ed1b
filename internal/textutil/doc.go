// Package textutil splits subtitle text into alignment tokens and formats
// short previews for terminal output.
//
// Tokenization is script aware: runs of ASCII letters and digits form one
// token so identifiers and English words align word by word, while every other
// rune (ideographs, punctuation, whitespace) is its own token so CJK text
// aligns character by character. Tokenize is lossless: joining the token texts
// always reproduces the input.
package textutil
