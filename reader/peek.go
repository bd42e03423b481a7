package reader

import (
	"io"

	"github.com/go-jsonkit/jsontok/scope"
	"github.com/go-jsonkit/jsontok/token"
)

// peekKind is the reader's internal, richer lookahead classification. It
// distinguishes a few cases the public token.Kind collapses (a fast-path
// integer literal vs. a general number, and the three value kinds that all
// surface as token.Null/Boolean).
type peekKind int

const (
	peekNone peekKind = iota
	peekBeginArray
	peekEndArray
	peekBeginObject
	peekEndObject
	peekName
	peekString
	peekLong
	peekNumber
	peekTrue
	peekFalse
	peekNull
	peekEndDocument
)

// kind returns the public token.Kind this peek corresponds to.
func (k peekKind) kind() token.Kind {
	switch k {
	case peekBeginArray:
		return token.BeginArray
	case peekEndArray:
		return token.EndArray
	case peekBeginObject:
		return token.BeginObject
	case peekEndObject:
		return token.EndObject
	case peekName:
		return token.Name
	case peekString:
		return token.String
	case peekLong, peekNumber:
		return token.Number
	case peekTrue, peekFalse:
		return token.Boolean
	case peekNull:
		return token.Null
	case peekEndDocument:
		return token.EndDocument
	default:
		return token.EndDocument
	}
}

// setPeek caches k as the pending lookahead result and returns it.
func (r *Reader) setPeek(k peekKind) peekKind {
	r.peeked = k
	return k
}

// doPeek resolves and caches the next token's internal kind.
func (r *Reader) doPeek() (peekKind, error) {
	if r.closed {
		return peekNone, r.structuralf("reader is closed")
	}
	if r.peeked != peekNone {
		return r.peeked, nil
	}
	switch top := r.top(); top {
	case scope.EmptyDocument:
		if r.strictness.IsLenient() {
			if err := r.consumeNonExecutePrefix(); err != nil {
				return peekNone, err
			}
		}
		r.setTop(scope.NonemptyDocument)
		return r.parseValue()
	case scope.NonemptyDocument:
		ru, err := r.nextNonWhitespace()
		if err != nil {
			if err == io.EOF {
				return r.setPeek(peekEndDocument), nil
			}
			return peekNone, r.ioError(err)
		}
		if !r.strictness.IsLenient() {
			r.backup(ru)
			return peekNone, r.syntaxf("expected end of document")
		}
		r.backup(ru)
		return r.parseValue()
	case scope.EmptyArray, scope.NonemptyArray:
		return r.peekInArray(top)
	case scope.EmptyObject, scope.NonemptyObject:
		return r.peekInObject(top)
	case scope.DanglingName:
		return r.peekAfterName()
	case scope.Closed:
		return peekNone, r.structuralf("reader is closed")
	default:
		return peekNone, r.structuralf("reader is in an invalid state")
	}
}

func (r *Reader) peekInArray(top scope.Scope) (peekKind, error) {
	ru, err := r.nextNonWhitespace()
	if err != nil {
		if err == io.EOF {
			return peekNone, r.syntaxf("unterminated array")
		}
		return peekNone, r.ioError(err)
	}
	if ru == ']' {
		return r.setPeek(peekEndArray), nil
	}
	if top == scope.NonemptyArray {
		switch {
		case ru == ',':
		case ru == ';' && r.strictness.IsLenient():
		default:
			return peekNone, r.syntaxf("expected ',' or ']' in array")
		}
		if r.strictness.IsLenient() {
			ru2, err := r.nextNonWhitespace()
			if err != nil {
				if err == io.EOF {
					return peekNone, r.syntaxf("unterminated array")
				}
				return peekNone, r.ioError(err)
			}
			if ru2 == ']' || ru2 == ',' || ru2 == ';' {
				r.backup(ru2)
				return r.setPeek(peekNull), nil
			}
			r.backup(ru2)
		}
	} else if r.strictness.IsLenient() && (ru == ',' || ru == ';') {
		// a bare separator as the very first significant character means
		// the first element is missing; leave it unconsumed so the next
		// call (now NONEMPTY_ARRAY) reads it as the real separator ahead
		// of the second element, or detects that slot is empty too.
		r.backup(ru)
		r.setTop(scope.NonemptyArray)
		return r.setPeek(peekNull), nil
	} else {
		r.backup(ru)
	}
	r.setTop(scope.NonemptyArray)
	return r.parseValue()
}

func (r *Reader) peekInObject(top scope.Scope) (peekKind, error) {
	ru, err := r.nextNonWhitespace()
	if err != nil {
		if err == io.EOF {
			return peekNone, r.syntaxf("unterminated object")
		}
		return peekNone, r.ioError(err)
	}
	if ru == '}' {
		return r.setPeek(peekEndObject), nil
	}
	if top == scope.NonemptyObject {
		switch {
		case ru == ',':
		case ru == ';' && r.strictness.IsLenient():
		default:
			return peekNone, r.syntaxf("expected ',' or '}' in object")
		}
		ru, err = r.nextNonWhitespace()
		if err != nil {
			if err == io.EOF {
				return peekNone, r.syntaxf("unterminated object")
			}
			return peekNone, r.ioError(err)
		}
	}
	var name string
	switch {
	case ru == '"':
		name, err = r.readQuotedString('"')
	case ru == '\'' && r.strictness.IsLenient():
		name, err = r.readQuotedString('\'')
	case r.strictness.IsLenient() && !r.isBarewordTerminator(ru):
		r.backup(ru)
		name, err = r.scanBareword()
	default:
		return peekNone, r.syntaxf("expected property name")
	}
	if err != nil {
		return peekNone, err
	}
	r.peekedString, r.hasPeekedString = name, true
	r.setTop(scope.DanglingName)
	return r.setPeek(peekName), nil
}

func (r *Reader) peekAfterName() (peekKind, error) {
	ru, err := r.nextNonWhitespace()
	if err != nil {
		if err == io.EOF {
			return peekNone, r.syntaxf("unterminated object")
		}
		return peekNone, r.ioError(err)
	}
	switch ru {
	case ':':
	case '=':
		if !r.strictness.IsLenient() {
			return peekNone, r.syntaxf("expected ':' after property name")
		}
		ru2, err := r.next()
		if err == nil && ru2 != '>' {
			r.backup(ru2)
		}
	default:
		return peekNone, r.syntaxf("expected ':' after property name")
	}
	r.setTop(scope.NonemptyObject)
	return r.parseValue()
}
