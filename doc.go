// Copyright 2017-2020 Denis Bernard <db047h@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

/*
Package jsontok provides a streaming, pull-style JSON reader and a matching
push-style JSON writer, modeled on Gson's JsonReader/JsonWriter pair.

Both sides operate a token at a time instead of building an in-memory
document tree. A reader.Reader peeks the kind of the next token before
consuming it, so callers can branch on structure (object vs array vs scalar)
without ever holding more than the current token in memory. A writer.Writer
is driven the same way in reverse: callers call BeginObject, Name,
ValueString and so on, and the Writer keeps the scope stack that is needed
to guarantee the output is well-formed, rejecting calls that would not
produce valid JSON.

Dialects

Both the reader and the writer accept a dialect.Strictness, ranging from
strict RFC 8259 JSON to a lenient dialect that tolerates single-quoted
strings, unquoted object names, missing array elements (an empty slot
between or after commas reads as null; a trailing comma in an object is
still an error), line and block comments, a non-execute prefix, and
out-of-range numeric literals (NaN, Infinity). See package dialect.

Errors

Malformed input and structural misuse (calling EndObject with no matching
BeginObject, for example) surface through package jsonerr's three error
kinds: SyntaxError for malformed token text, StructuralError for API
misuse, and IOError for failures reading from or writing to the underlying
stream. SyntaxError and StructuralError carry a jsonerr.Location with line,
column and a JSONPath-style description of where in the document the error
occurred.

Subpackages

  - reader: the streaming reader
  - writer: the streaming writer
  - token: the token kind vocabulary shared by reader and writer callers
  - scope: the nesting-scope enum both reader and writer use internally
  - dialect: strictness levels
  - jsonerr: the error types and position tracking

Command jsontokfmt, in cmd/jsontokfmt, wires a Reader directly into a
Writer to reformat or re-dialect a JSON document and demonstrates the two
packages used together.
*/
package jsontok
