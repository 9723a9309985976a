// Package lexer defines the token types consumed by parsec token parsers.
//
// The primary interface is Lexer. There is one concrete implementation
// included, backed by text/scanner.
package lexer
