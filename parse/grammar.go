//  Copyright (c) 2023 Uber Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package parse

import (
	"github.com/runestone-lang/runestone/cst"
	"github.com/runestone-lang/runestone/lex"
)

func node(kind cst.Kind, flags cst.Flags, kids []cst.Node) cst.Node {
	return cst.NewInner(kind, flags, kids, 0)
}

// Parse lexes and parses src into the root cst.Node (kind cst.KindBlock).
func Parse(src string) (cst.Node, error) {
	c := newCursor(src)
	kids, err := parseStatements(c, isEOF)
	if err != nil {
		return cst.Node{}, err
	}
	return node(cst.KindBlock, 0, kids), nil
}

func isEOF(t lex.Token) bool { return t.Kind == lex.EOF }

func isBlockEnd(t lex.Token) bool { return t.Kind == lex.EOF || isKeyword(t, "end") }

func isIfClause(t lex.Token) bool {
	return t.Kind == lex.EOF || isKeyword(t, "elseif") || isKeyword(t, "else") || isKeyword(t, "end")
}

// parseStatements reads statements (and the trivia between them) until
// stop(nextSignificantToken) is true. The trivia immediately preceding
// the stopping token is included in the returned slice, since it is
// still part of this block's source span.
func parseStatements(c *cursor, stop func(lex.Token) bool) ([]cst.Node, error) {
	var kids []cst.Node
	for {
		kids = append(kids, c.takeTrivia()...)
		t := c.peek(0)
		if stop(t) {
			return kids, nil
		}
		stmt, err := parseStatement(c)
		if err != nil {
			return nil, err
		}
		kids = append(kids, stmt)
	}
}

func parseStatement(c *cursor) (cst.Node, error) {
	t := c.sig()
	switch {
	case isKeyword(t, "if"):
		return parseIf(c)
	case isKeyword(t, "while"):
		return parseWhile(c)
	case isKeyword(t, "for"):
		return parseFor(c)
	case isKeyword(t, "function"):
		return parseFunction(c)
	case isKeyword(t, "struct"):
		return parseStruct(c)
	case isKeyword(t, "module"):
		return parseModule(c)
	case isKeyword(t, "quote"):
		return parseQuote(c)
	case isKeyword(t, "return") || isKeyword(t, "break") || isKeyword(t, "continue"):
		return parseKeywordStmt(c)
	case isPunctText(t, "@"):
		return parseMacroCall(c)
	default:
		return parseExpr(c, precAssign)
	}
}

// --- composite statement forms ---------------------------------------

func parseIf(c *cursor) (cst.Node, error) {
	var kids []cst.Node
	kids = append(kids, tokenLeaf(c.advance(), cst.KindKeyword, 0)) // "if"
	kids = append(kids, c.takeTrivia()...)
	cond, err := parseExpr(c, precLogicalOr)
	if err != nil {
		return cst.Node{}, err
	}
	kids = append(kids, cond)
	kids = append(kids, c.takeTrivia()...)
	body, err := parseStatements(c, isIfClause)
	if err != nil {
		return cst.Node{}, err
	}
	kids = append(kids, node(cst.KindBlock, 0, body))

	for isKeyword(c.sig(), "elseif") {
		kids = append(kids, tokenLeaf(c.advance(), cst.KindKeyword, 0))
		kids = append(kids, c.takeTrivia()...)
		cond2, err := parseExpr(c, precLogicalOr)
		if err != nil {
			return cst.Node{}, err
		}
		kids = append(kids, cond2)
		kids = append(kids, c.takeTrivia()...)
		body2, err := parseStatements(c, isIfClause)
		if err != nil {
			return cst.Node{}, err
		}
		kids = append(kids, node(cst.KindBlock, 0, body2))
	}

	if isKeyword(c.sig(), "else") {
		var elseKids []cst.Node
		elseKids = append(elseKids, tokenLeaf(c.advance(), cst.KindKeyword, 0))
		elseKids = append(elseKids, c.takeTrivia()...)
		elseBody, err := parseStatements(c, isIfClause)
		if err != nil {
			return cst.Node{}, err
		}
		elseKids = append(elseKids, node(cst.KindBlock, 0, elseBody))
		kids = append(kids, node(cst.KindElse, 0, elseKids))
	}

	end, err := expectKeyword(c, "end")
	if err != nil {
		return cst.Node{}, err
	}
	kids = append(kids, end)
	return node(cst.KindIf, 0, kids), nil
}

func parseWhile(c *cursor) (cst.Node, error) {
	var kids []cst.Node
	kids = append(kids, tokenLeaf(c.advance(), cst.KindKeyword, 0)) // "while"
	kids = append(kids, c.takeTrivia()...)
	cond, err := parseExpr(c, precLogicalOr)
	if err != nil {
		return cst.Node{}, err
	}
	kids = append(kids, cond)
	kids = append(kids, c.takeTrivia()...)
	body, err := parseStatements(c, isBlockEnd)
	if err != nil {
		return cst.Node{}, err
	}
	kids = append(kids, node(cst.KindBlock, 0, body))
	end, err := expectKeyword(c, "end")
	if err != nil {
		return cst.Node{}, err
	}
	kids = append(kids, end)
	return node(cst.KindWhile, 0, kids), nil
}

func parseFor(c *cursor) (cst.Node, error) {
	var kids []cst.Node
	kids = append(kids, tokenLeaf(c.advance(), cst.KindKeyword, 0)) // "for"
	kids = append(kids, c.takeTrivia()...)

	idTok := c.advance()
	if idTok.Kind != lex.Ident {
		return cst.Node{}, syntaxErrorf(idTok.Pos, "expected identifier after 'for', got %q", idTok.Text)
	}
	kids = append(kids, tokenLeaf(idTok, cst.KindIdent, 0))
	kids = append(kids, c.takeTrivia()...)

	opTok := c.advance()
	switch {
	case isKeyword(opTok, "in"):
		kids = append(kids, tokenLeaf(opTok, cst.KindKeyword, 0))
	case isOperatorText(opTok, "="):
		kids = append(kids, tokenLeaf(opTok, cst.KindOperatorLeaf, 0))
	default:
		return cst.Node{}, syntaxErrorf(opTok.Pos, "expected 'in' or '=' in for-loop header, got %q", opTok.Text)
	}
	kids = append(kids, c.takeTrivia()...)

	iter, err := parseExpr(c, precRange)
	if err != nil {
		return cst.Node{}, err
	}
	kids = append(kids, iter)
	kids = append(kids, c.takeTrivia()...)

	body, err := parseStatements(c, isBlockEnd)
	if err != nil {
		return cst.Node{}, err
	}
	kids = append(kids, node(cst.KindBlock, 0, body))
	end, err := expectKeyword(c, "end")
	if err != nil {
		return cst.Node{}, err
	}
	kids = append(kids, end)
	return node(cst.KindFor, 0, kids), nil
}

func parseFunction(c *cursor) (cst.Node, error) {
	var kids []cst.Node
	kids = append(kids, tokenLeaf(c.advance(), cst.KindKeyword, 0)) // "function"
	kids = append(kids, c.takeTrivia()...)

	nameTok := c.advance()
	if nameTok.Kind != lex.Ident {
		return cst.Node{}, syntaxErrorf(nameTok.Pos, "expected function name, got %q", nameTok.Text)
	}
	kids = append(kids, tokenLeaf(nameTok, cst.KindIdent, 0))
	kids = append(kids, c.takeTrivia()...)

	params, err := parseParenGroup(c)
	if err != nil {
		return cst.Node{}, err
	}
	kids = append(kids, params)
	kids = append(kids, c.takeTrivia()...)

	body, err := parseStatements(c, isBlockEnd)
	if err != nil {
		return cst.Node{}, err
	}
	kids = append(kids, node(cst.KindBlock, 0, body))
	end, err := expectKeyword(c, "end")
	if err != nil {
		return cst.Node{}, err
	}
	kids = append(kids, end)
	return node(cst.KindFunction, 0, kids), nil
}

func parseStructLike(c *cursor, kw string, kind cst.Kind) (cst.Node, error) {
	var kids []cst.Node
	kids = append(kids, tokenLeaf(c.advance(), cst.KindKeyword, 0)) // the keyword
	kids = append(kids, c.takeTrivia()...)

	nameTok := c.advance()
	if nameTok.Kind != lex.Ident {
		return cst.Node{}, syntaxErrorf(nameTok.Pos, "expected %s name, got %q", kw, nameTok.Text)
	}
	kids = append(kids, tokenLeaf(nameTok, cst.KindIdent, 0))
	kids = append(kids, c.takeTrivia()...)

	body, err := parseStatements(c, isBlockEnd)
	if err != nil {
		return cst.Node{}, err
	}
	kids = append(kids, node(cst.KindBlock, 0, body))
	end, err := expectKeyword(c, "end")
	if err != nil {
		return cst.Node{}, err
	}
	kids = append(kids, end)
	return node(kind, 0, kids), nil
}

func parseStruct(c *cursor) (cst.Node, error) { return parseStructLike(c, "struct", cst.KindStruct) }
func parseModule(c *cursor) (cst.Node, error) { return parseStructLike(c, "module", cst.KindModule) }

func parseQuote(c *cursor) (cst.Node, error) {
	var kids []cst.Node
	kids = append(kids, tokenLeaf(c.advance(), cst.KindKeyword, 0)) // "quote"
	kids = append(kids, c.takeTrivia()...)
	body, err := parseStatements(c, isBlockEnd)
	if err != nil {
		return cst.Node{}, err
	}
	kids = append(kids, node(cst.KindBlock, 0, body))
	end, err := expectKeyword(c, "end")
	if err != nil {
		return cst.Node{}, err
	}
	kids = append(kids, end)
	return node(cst.KindQuote, 0, kids), nil
}

func parseKeywordStmt(c *cursor) (cst.Node, error) {
	kwTok := c.advance()
	kids := []cst.Node{tokenLeaf(kwTok, cst.KindKeyword, 0)}
	// "return" may be followed by an expression on the same logical line;
	// "break"/"continue" never are. Only attempt one if the next
	// significant token could start an expression.
	if string(kwTok.Text) == "return" {
		trivia := c.takeTrivia()
		sameLine := true
		for _, tv := range trivia {
			if tv.Head.Kind == cst.KindNewlineWs {
				sameLine = false
			}
		}
		if sameLine && canStartExpr(c.peek(0)) {
			kids = append(kids, trivia...)
			expr, err := parseExpr(c, precAssign)
			if err != nil {
				return cst.Node{}, err
			}
			kids = append(kids, expr)
		} else {
			// the trivia belongs to this statement either way.
			kids = append(kids, trivia...)
		}
	}
	return node(cst.KindKeywordStmt, 0, kids), nil
}

func canStartExpr(t lex.Token) bool {
	switch t.Kind {
	case lex.Ident, lex.Int, lex.Float, lex.Quote:
		return true
	case lex.Keyword:
		return string(t.Text) == "true" || string(t.Text) == "false" || string(t.Text) == "nothing"
	case lex.Punct:
		return string(t.Text) == "(" || string(t.Text) == "[" || string(t.Text) == "@"
	case lex.Operator:
		return string(t.Text) == "-" || string(t.Text) == "+" || string(t.Text) == "!" || string(t.Text) == "~"
	default:
		return false
	}
}

func parseMacroCall(c *cursor) (cst.Node, error) {
	at := c.advance() // "@"
	kids := []cst.Node{tokenLeaf(at, cst.KindPunct, 0)}
	nameTok := c.advance()
	if nameTok.Kind != lex.Ident {
		return cst.Node{}, syntaxErrorf(nameTok.Pos, "expected macro name after '@', got %q", nameTok.Text)
	}
	kids = append(kids, tokenLeaf(nameTok, cst.KindIdent, 0))
	if isPunctText(c.sig(), "(") {
		kids = append(kids, c.takeTrivia()...)
		args, err := parseParenGroup(c)
		if err != nil {
			return cst.Node{}, err
		}
		kids = append(kids, args)
	}
	return node(cst.KindMacroCall, 0, kids), nil
}

func expectKeyword(c *cursor, word string) (cst.Node, error) {
	t := c.advance()
	if !isKeyword(t, word) {
		return cst.Node{}, syntaxErrorf(t.Pos, "expected keyword %q, got %q", word, t.Text)
	}
	return tokenLeaf(t, cst.KindKeyword, 0), nil
}

// --- expressions, precedence climbing ---------------------------------

type precLevel int

const (
	precAssign precLevel = iota
	precRange
	precLogicalOr
	precLogicalAnd
	precComparison
	precAdditive
	precMultiplicative
	precPower
	precUnary
	precPostfix
)

var assignOps = []string{"=", "+=", "-=", "*=", "/=", "^=", "%=", ":="}
var comparisonOps = []string{"==", "!=", "<", "<=", ">", ">="}

func opPrecedence(t lex.Token) (precLevel, bool) {
	if t.Kind != lex.Operator {
		return 0, false
	}
	s := string(t.Text)
	switch {
	case containsStr(assignOps, s):
		return precAssign, true
	case s == ":" || s == "..":
		return precRange, true
	case s == "||":
		return precLogicalOr, true
	case s == "&&":
		return precLogicalAnd, true
	case containsStr(comparisonOps, s):
		return precComparison, true
	case s == "+" || s == "-":
		return precAdditive, true
	case s == "*" || s == "/" || s == "%":
		return precMultiplicative, true
	case s == "^":
		return precPower, true
	default:
		return 0, false
	}
}

func containsStr(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}

// rightAssociative reports whether an operator at the given precedence
// binds its right operand at the same (not next-higher) precedence,
// which is how "=" chains (a = b = c) and "^" towers (a^b^c) associate.
func rightAssociative(level precLevel) bool {
	return level == precAssign || level == precPower
}

// parseExpr parses a full expression down to minLevel using precedence
// climbing. Binary operator applications are represented as KindCall
// nodes flagged FlagInfix (and additionally FlagAssignmentPrec at the
// assignment level, FlagComparisonPrec on the operator leaf at the
// comparison level), per cst.IsInfixOpCall / cst.InfixOpCallOp.
func parseExpr(c *cursor, minLevel precLevel) (cst.Node, error) {
	left, err := parseUnary(c)
	if err != nil {
		return cst.Node{}, err
	}
	return parseBinaryRHS(c, left, minLevel)
}

func parseBinaryRHS(c *cursor, left cst.Node, minLevel precLevel) (cst.Node, error) {
	for {
		opTok := c.sig()
		level, ok := opPrecedence(opTok)
		if !ok || level < minLevel {
			return left, nil
		}

		var preTrivia []cst.Node
		for isTrivia(c.peek(0).Kind) {
			preTrivia = append(preTrivia, triviaLeaf(c.advance()))
		}
		opConsumed := c.advance()

		flags := cst.FlagInfix
		opLeafFlags := cst.Flags(0)
		switch {
		case level == precAssign:
			flags |= cst.FlagAssignmentPrec
		case level == precComparison:
			opLeafFlags |= cst.FlagComparisonPrec
		}
		opLeaf := tokenLeaf(opConsumed, cst.KindOperatorLeaf, opLeafFlags)

		postTrivia := c.takeTrivia()

		nextMin := level + 1
		if rightAssociative(level) {
			nextMin = level
		}
		right, err := parseExpr(c, nextMin)
		if err != nil {
			return cst.Node{}, err
		}

		var kids []cst.Node
		kids = append(kids, left)
		kids = append(kids, preTrivia...)
		kids = append(kids, opLeaf)
		kids = append(kids, postTrivia...)
		kids = append(kids, right)
		left = node(cst.KindCall, flags, kids)
	}
}

func parseUnary(c *cursor) (cst.Node, error) {
	t := c.sig()
	if t.Kind == lex.Operator && (string(t.Text) == "-" || string(t.Text) == "+" || string(t.Text) == "!" || string(t.Text) == "~") {
		opTok := c.advance()
		opLeaf := tokenLeaf(opTok, cst.KindOperatorLeaf, 0)
		trivia := c.takeTrivia()
		operand, err := parseUnary(c)
		if err != nil {
			return cst.Node{}, err
		}
		kids := append([]cst.Node{opLeaf}, trivia...)
		kids = append(kids, operand)
		return node(cst.KindCall, cst.FlagPrefix, kids), nil
	}
	return parsePostfix(c)
}

func parsePostfix(c *cursor) (cst.Node, error) {
	expr, err := parsePrimary(c)
	if err != nil {
		return cst.Node{}, err
	}
	for {
		t := c.sig()
		switch {
		case isPunctText(t, "("):
			args, err := parseParenGroup(c)
			if err != nil {
				return cst.Node{}, err
			}
			expr = node(cst.KindCall, 0, []cst.Node{expr, args})
		case isPunctText(t, "["):
			idx, err := parseBracketGroup(c)
			if err != nil {
				return cst.Node{}, err
			}
			expr = node(cst.KindCall, 0, []cst.Node{expr, idx})
		case isOperatorText(t, "."):
			dot := c.advance()
			dotLeaf := tokenLeaf(dot, cst.KindPunct, 0)
			fieldTok := c.advance()
			if fieldTok.Kind != lex.Ident {
				return cst.Node{}, syntaxErrorf(fieldTok.Pos, "expected field name after '.', got %q", fieldTok.Text)
			}
			expr = node(cst.KindOperator, 0, []cst.Node{expr, dotLeaf, tokenLeaf(fieldTok, cst.KindIdent, 0)})
		default:
			return expr, nil
		}
	}
}

func parsePrimary(c *cursor) (cst.Node, error) {
	t := c.sig()
	switch {
	case t.Kind == lex.Int:
		return tokenLeaf(c.advance(), cst.KindInt, 0), nil
	case t.Kind == lex.Float:
		return tokenLeaf(c.advance(), cst.KindFloat, 0), nil
	case t.Kind == lex.Ident:
		return tokenLeaf(c.advance(), cst.KindIdent, 0), nil
	case isKeyword(t, "true") || isKeyword(t, "false") || isKeyword(t, "nothing"):
		return tokenLeaf(c.advance(), cst.KindKeyword, 0), nil
	case t.Kind == lex.Quote:
		return parseStringLike(c)
	case isPunctText(t, "@"):
		return parseMacroCall(c)
	case isPunctText(t, "("):
		return parseParenExprOrTupleOrGenerator(c)
	case isPunctText(t, "["):
		return parseArrayOrComprehension(c)
	default:
		return cst.Node{}, syntaxErrorf(t.Pos, "unexpected token %q", t.Text)
	}
}

// --- grouping: parens, brackets, generators/comprehensions -------------

// parseParenGroup parses "(" [expr ("," expr)*] ")" as a KindTuple node;
// used for call argument lists, function parameter lists, and macro
// argument lists alike (this repo does not distinguish their grammar).
func parseParenGroup(c *cursor) (cst.Node, error) {
	return parseDelimitedGroup(c, "(", ")", cst.KindTuple)
}

func parseBracketGroup(c *cursor) (cst.Node, error) {
	return parseDelimitedGroup(c, "[", "]", cst.KindArray)
}

func parseDelimitedGroup(c *cursor, open, close string, kind cst.Kind) (cst.Node, error) {
	openTok := c.advance()
	if !isPunctText(openTok, open) {
		return cst.Node{}, syntaxErrorf(openTok.Pos, "expected %q, got %q", open, openTok.Text)
	}
	kids := []cst.Node{tokenLeaf(openTok, cst.KindPunct, 0)}
	kids = append(kids, c.takeTrivia()...)
	for !isPunctText(c.sig(), close) {
		expr, err := parseExpr(c, precAssign)
		if err != nil {
			return cst.Node{}, err
		}
		kids = append(kids, expr)
		kids = append(kids, c.takeTrivia()...)
		if isPunctText(c.sig(), ",") {
			kids = append(kids, tokenLeaf(c.advance(), cst.KindPunct, 0))
			kids = append(kids, c.takeTrivia()...)
			continue
		}
		break
	}
	closeTok := c.advance()
	if !isPunctText(closeTok, close) {
		return cst.Node{}, syntaxErrorf(closeTok.Pos, "expected %q, got %q", close, closeTok.Text)
	}
	kids = append(kids, tokenLeaf(closeTok, cst.KindPunct, 0))
	return node(kind, 0, kids), nil
}

// parseParenExprOrTupleOrGenerator handles "(", then decides between a
// parenthesized single expression (returned, parens included, as a
// KindTuple of one element for uniformity), a generator
// "(expr for x in iter)", or a tuple "(a, b, ...)".
func parseParenExprOrTupleOrGenerator(c *cursor) (cst.Node, error) {
	openTok := c.advance() // "("
	kids := []cst.Node{tokenLeaf(openTok, cst.KindPunct, 0)}
	kids = append(kids, c.takeTrivia()...)

	if isPunctText(c.sig(), ")") {
		kids = append(kids, tokenLeaf(c.advance(), cst.KindPunct, 0))
		return node(cst.KindTuple, 0, kids), nil
	}

	first, err := parseExpr(c, precAssign)
	if err != nil {
		return cst.Node{}, err
	}
	kids = append(kids, first)
	kids = append(kids, c.takeTrivia()...)

	if isKeyword(c.sig(), "for") {
		clauseKids, err := parseGeneratorClauses(c)
		if err != nil {
			return cst.Node{}, err
		}
		kids = append(kids, clauseKids...)
		closeTok := c.advance()
		if !isPunctText(closeTok, ")") {
			return cst.Node{}, syntaxErrorf(closeTok.Pos, "expected ')', got %q", closeTok.Text)
		}
		kids = append(kids, tokenLeaf(closeTok, cst.KindPunct, 0))
		return node(cst.KindGenerator, 0, kids), nil
	}

	for isPunctText(c.sig(), ",") {
		kids = append(kids, tokenLeaf(c.advance(), cst.KindPunct, 0))
		kids = append(kids, c.takeTrivia()...)
		if isPunctText(c.sig(), ")") {
			break
		}
		next, err := parseExpr(c, precAssign)
		if err != nil {
			return cst.Node{}, err
		}
		kids = append(kids, next)
		kids = append(kids, c.takeTrivia()...)
	}
	closeTok := c.advance()
	if !isPunctText(closeTok, ")") {
		return cst.Node{}, syntaxErrorf(closeTok.Pos, "expected ')', got %q", closeTok.Text)
	}
	kids = append(kids, tokenLeaf(closeTok, cst.KindPunct, 0))
	return node(cst.KindTuple, 0, kids), nil
}

// parseArrayOrComprehension handles "[", then decides between a plain
// array literal "[a, b, c]" and a comprehension "[expr for x in iter]".
func parseArrayOrComprehension(c *cursor) (cst.Node, error) {
	openTok := c.advance() // "["
	kids := []cst.Node{tokenLeaf(openTok, cst.KindPunct, 0)}
	kids = append(kids, c.takeTrivia()...)

	if isPunctText(c.sig(), "]") {
		kids = append(kids, tokenLeaf(c.advance(), cst.KindPunct, 0))
		return node(cst.KindArray, 0, kids), nil
	}

	first, err := parseExpr(c, precAssign)
	if err != nil {
		return cst.Node{}, err
	}
	kids = append(kids, first)
	kids = append(kids, c.takeTrivia()...)

	if isKeyword(c.sig(), "for") {
		clauseKids, err := parseGeneratorClauses(c)
		if err != nil {
			return cst.Node{}, err
		}
		kids = append(kids, clauseKids...)
		closeTok := c.advance()
		if !isPunctText(closeTok, "]") {
			return cst.Node{}, syntaxErrorf(closeTok.Pos, "expected ']', got %q", closeTok.Text)
		}
		kids = append(kids, tokenLeaf(closeTok, cst.KindPunct, 0))
		return node(cst.KindComprehension, 0, kids), nil
	}

	for isPunctText(c.sig(), ",") {
		kids = append(kids, tokenLeaf(c.advance(), cst.KindPunct, 0))
		kids = append(kids, c.takeTrivia()...)
		if isPunctText(c.sig(), "]") {
			break
		}
		next, err := parseExpr(c, precAssign)
		if err != nil {
			return cst.Node{}, err
		}
		kids = append(kids, next)
		kids = append(kids, c.takeTrivia()...)
	}
	closeTok := c.advance()
	if !isPunctText(closeTok, "]") {
		return cst.Node{}, syntaxErrorf(closeTok.Pos, "expected ']', got %q", closeTok.Text)
	}
	kids = append(kids, tokenLeaf(closeTok, cst.KindPunct, 0))
	return node(cst.KindArray, 0, kids), nil
}

// parseGeneratorClauses parses "for x in iter" (a single clause; chained
// "for a in x, b in y" clauses are not supported by this minimal
// grammar) starting right at the "for" keyword.
func parseGeneratorClauses(c *cursor) ([]cst.Node, error) {
	var kids []cst.Node
	kids = append(kids, tokenLeaf(c.advance(), cst.KindKeyword, 0)) // "for"
	kids = append(kids, c.takeTrivia()...)

	idTok := c.advance()
	if idTok.Kind != lex.Ident {
		return nil, syntaxErrorf(idTok.Pos, "expected identifier after 'for', got %q", idTok.Text)
	}
	kids = append(kids, tokenLeaf(idTok, cst.KindIdent, 0))
	kids = append(kids, c.takeTrivia()...)

	inTok := c.advance()
	if !isKeyword(inTok, "in") {
		return nil, syntaxErrorf(inTok.Pos, "expected 'in' in comprehension clause, got %q", inTok.Text)
	}
	kids = append(kids, tokenLeaf(inTok, cst.KindKeyword, 0))
	kids = append(kids, c.takeTrivia()...)

	iter, err := parseExpr(c, precRange)
	if err != nil {
		return nil, err
	}
	kids = append(kids, iter)
	kids = append(kids, c.takeTrivia()...)
	return kids, nil
}

// --- string / cmdstring literals, with simple interpolation -----------

// parseStringLike parses a string or cmdstring literal starting at the
// opening delimiter (already peeked, not yet consumed), producing a
// KindString/KindCmdString composite: [openQuote, content, (interpPunct,
// expr, interpPunct, content)*, closeQuote].
func parseStringLike(c *cursor) (cst.Node, error) {
	openTok := c.advance() // the Quote token
	delim := openTok.Text[0]
	kind := cst.KindString
	if delim == '`' {
		kind = cst.KindCmdString
	}
	kids := []cst.Node{tokenLeaf(openTok, cst.KindPunct, 0)}

	for {
		bodyTok, hasInterp := c.lx.ScanStringBody(delim)
		kids = append(kids, tokenLeaf(bodyTok, cst.KindStringContent, 0))
		if !hasInterp {
			break
		}
		// consume "$("
		c.lx.ConsumeByte() // '$'
		c.lx.ConsumeByte() // '('
		kids = append(kids, cst.NewLeaf(cst.KindPunct, 0, []byte("$(")))
		// the inner expression is parsed with the normal cursor; since
		// the lexer's position now sits right after "$(", and c's
		// buffer is empty at this point (strings are only entered with
		// an empty lookahead buffer, since cursor.sig never looks past
		// a Quote token), ordinary tokenization resumes correctly.
		inner, err := parseExpr(c, precAssign)
		if err != nil {
			return cst.Node{}, err
		}
		kids = append(kids, inner)
		kids = append(kids, c.takeTrivia()...)
		closeParen := c.advance()
		if !isPunctText(closeParen, ")") {
			return cst.Node{}, syntaxErrorf(closeParen.Pos, "expected ')' to close string interpolation, got %q", closeParen.Text)
		}
		kids = append(kids, tokenLeaf(closeParen, cst.KindPunct, 0))
	}

	closeTok := c.lx.ConsumeByte()
	if closeTok != delim {
		return cst.Node{}, syntaxErrorf(c.lx.Pos(), "unterminated string literal")
	}
	kids = append(kids, cst.NewLeaf(cst.KindPunct, 0, []byte{closeTok}))
	return node(kind, 0, kids), nil
}
