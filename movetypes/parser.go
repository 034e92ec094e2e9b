// Copyright (c) 2025 WayneAl
// SPDX-License-Identifier: Apache-2.0
// This file is part of the sui-client-gen library.

package movetypes

import (
	"fmt"
)

// ParseTypeTag parses a fully concrete move type such as
// "0x2::coin::Coin<0x2::sui::SUI>" or "vector<u8>".
func ParseTypeTag(s string) (TypeTag, error) {
	return ParseTypeTagWithParams(s, nil)
}

// MustParseTypeTag is like ParseTypeTag but panics on malformed input.
func MustParseTypeTag(s string) TypeTag {
	tag, err := ParseTypeTag(s)
	if err != nil {
		panic(err)
	}
	return tag
}

// ParseTypeTagWithParams parses a move type that may reference the given
// type parameter names. A bare identifier equal to params[i] becomes a
// ParamKind tag with index i.
func ParseTypeTagWithParams(s string, params []string) (TypeTag, error) {
	p := &typeParser{
		input:  s,
		params: params,
	}
	if err := p.tokenize(); err != nil {
		return TypeTag{}, err
	}
	tag, err := p.parseType()
	if err != nil {
		return TypeTag{}, err
	}
	if p.pos < len(p.tokens) {
		return TypeTag{}, p.errorf("unexpected token %q", p.tokens[p.pos])
	}
	return tag, nil
}

type typeParser struct {
	input  string
	params []string
	tokens []string
	pos    int
}

func (p *typeParser) errorf(format string, args ...any) error {
	return fmt.Errorf("invalid type %q: %s", p.input, fmt.Sprintf(format, args...))
}

func isIdentChar(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func (p *typeParser) tokenize() error {
	s := p.input
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '<' || c == '>' || c == ',':
			p.tokens = append(p.tokens, s[i:i+1])
			i++
		case c == ':':
			if i+1 >= len(s) || s[i+1] != ':' {
				return p.errorf("single colon at offset %d", i)
			}
			p.tokens = append(p.tokens, "::")
			i += 2
		case isIdentChar(c):
			start := i
			for i < len(s) && isIdentChar(s[i]) {
				i++
			}
			p.tokens = append(p.tokens, s[start:i])
		default:
			return p.errorf("unexpected character %q at offset %d", c, i)
		}
	}
	if len(p.tokens) == 0 {
		return p.errorf("empty type")
	}
	return nil
}

func (p *typeParser) peek() string {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	return ""
}

func (p *typeParser) next() string {
	tok := p.peek()
	if tok != "" {
		p.pos++
	}
	return tok
}

func (p *typeParser) expect(tok string) error {
	if got := p.next(); got != tok {
		if got == "" {
			return p.errorf("expected %q, got end of input", tok)
		}
		return p.errorf("expected %q, got %q", tok, got)
	}
	return nil
}

func (p *typeParser) parseType() (TypeTag, error) {
	tok := p.next()
	if tok == "" {
		return TypeTag{}, p.errorf("unexpected end of input")
	}
	if !isIdentChar(tok[0]) {
		return TypeTag{}, p.errorf("unexpected token %q", tok)
	}

	if p.peek() == "::" {
		return p.parseStruct(tok)
	}

	if kind, ok := primitiveKindsByName[tok]; ok {
		return PrimitiveTag(kind), nil
	}

	if tok == "vector" {
		if err := p.expect("<"); err != nil {
			return TypeTag{}, err
		}
		elem, err := p.parseType()
		if err != nil {
			return TypeTag{}, err
		}
		if err := p.expect(">"); err != nil {
			return TypeTag{}, err
		}
		return VectorTag(elem), nil
	}

	for i, name := range p.params {
		if name == tok {
			return ParamTag(i, name), nil
		}
	}

	return TypeTag{}, p.errorf("unknown type %q", tok)
}

func (p *typeParser) parseStruct(addrTok string) (TypeTag, error) {
	addr, err := ParseAddress(addrTok)
	if err != nil {
		return TypeTag{}, p.errorf("invalid address %q", addrTok)
	}

	if err := p.expect("::"); err != nil {
		return TypeTag{}, err
	}
	module := p.next()
	if module == "" || !isIdentChar(module[0]) {
		return TypeTag{}, p.errorf("missing module name")
	}
	if err := p.expect("::"); err != nil {
		return TypeTag{}, err
	}
	name := p.next()
	if name == "" || !isIdentChar(name[0]) {
		return TypeTag{}, p.errorf("missing struct name")
	}

	tag := StructTag{
		Address: addr,
		Module:  module,
		Name:    name,
	}

	if p.peek() == "<" {
		p.next()
		for {
			arg, err := p.parseType()
			if err != nil {
				return TypeTag{}, err
			}
			tag.TypeArgs = append(tag.TypeArgs, arg)

			sep := p.next()
			if sep == ">" {
				break
			}
			if sep != "," {
				return TypeTag{}, p.errorf("expected \",\" or \">\" in type arguments of %s", tag.TypeName())
			}
		}
	}

	return StructTypeTag(tag), nil
}

// SplitTypeName splits a full type name into its base name and the type
// argument strings, both in canonical form.
func SplitTypeName(s string) (string, []string, error) {
	tag, err := ParseTypeTag(s)
	if err != nil {
		return "", nil, err
	}
	if tag.Kind != StructKind {
		return tag.String(), nil, nil
	}
	args := make([]string, len(tag.Struct.TypeArgs))
	for i := range tag.Struct.TypeArgs {
		args[i] = tag.Struct.TypeArgs[i].String()
	}
	return tag.Struct.TypeName(), args, nil
}
