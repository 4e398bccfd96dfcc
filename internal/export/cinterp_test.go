package export_test

import (
	"fmt"
	"strconv"
	"strings"
	"text/scanner"
)

// cFunc is a parsed single-function C body restricted to the subset the
// renderer emits: nested if/else on "<" comparisons, blocks and integer
// returns. Preprocessor lines and comments are ignored.
type cFunc struct {
	name   string
	params []string
	body   cStmt
}

type cStmt interface {
	exec(env map[string]float64) (int, bool)
}

type cBlock []cStmt

func (b cBlock) exec(env map[string]float64) (int, bool) {
	for _, s := range b {
		if v, ok := s.exec(env); ok {
			return v, true
		}
	}
	return 0, false
}

type cIf struct {
	ident string
	limit float64
	then  cStmt
	els   cStmt
}

func (s cIf) exec(env map[string]float64) (int, bool) {
	if env[s.ident] < s.limit {
		return s.then.exec(env)
	}
	if s.els != nil {
		return s.els.exec(env)
	}
	return 0, false
}

type cReturn int

func (r cReturn) exec(map[string]float64) (int, bool) { return int(r), true }

// call evaluates the function; it errors if control falls off the end.
func (f *cFunc) call(args ...float64) (int, error) {
	env := make(map[string]float64, len(args))
	for i, p := range f.params {
		env[p] = args[i]
	}
	v, ok := f.body.exec(env)
	if !ok {
		return 0, fmt.Errorf("%s: no return for %v", f.name, args)
	}
	return v, nil
}

type cParser struct {
	s   scanner.Scanner
	tok rune
	err error
}

func parseCFunc(src string) (f *cFunc, err error) {
	var lines []string
	for _, line := range strings.Split(src, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		lines = append(lines, line)
	}

	p := &cParser{}
	p.s.Init(strings.NewReader(strings.Join(lines, "\n")))
	p.s.Mode = scanner.ScanIdents | scanner.ScanInts | scanner.ScanFloats | scanner.ScanComments | scanner.SkipComments
	p.s.Error = func(_ *scanner.Scanner, msg string) { p.err = fmt.Errorf("scan: %s", msg) }

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("parse: %v", r)
		}
	}()

	p.next()
	f = &cFunc{}
	p.expectText("int")
	f.name = p.ident()
	p.expect('(')
	for p.tok != ')' {
		p.expectText("float")
		f.params = append(f.params, p.ident())
		if p.tok == ',' {
			p.next()
		}
	}
	p.expect(')')
	f.body = p.block()
	if p.tok != scanner.EOF {
		panic(fmt.Sprintf("trailing token %q", p.s.TokenText()))
	}
	return f, p.err
}

func (p *cParser) next() { p.tok = p.s.Scan() }

func (p *cParser) expect(tok rune) {
	if p.tok != tok {
		panic(fmt.Sprintf("expected %q, got %q at %s", tok, p.s.TokenText(), p.s.Position))
	}
	p.next()
}

func (p *cParser) expectText(text string) {
	if p.s.TokenText() != text {
		panic(fmt.Sprintf("expected %q, got %q at %s", text, p.s.TokenText(), p.s.Position))
	}
	p.next()
}

func (p *cParser) ident() string {
	if p.tok != scanner.Ident {
		panic(fmt.Sprintf("expected identifier, got %q", p.s.TokenText()))
	}
	name := p.s.TokenText()
	p.next()
	return name
}

func (p *cParser) number() float64 {
	if p.tok != scanner.Int && p.tok != scanner.Float {
		panic(fmt.Sprintf("expected number, got %q", p.s.TokenText()))
	}
	v, err := strconv.ParseFloat(p.s.TokenText(), 64)
	if err != nil {
		panic(err)
	}
	p.next()
	return v
}

func (p *cParser) block() cBlock {
	p.expect('{')
	var stmts cBlock
	for p.tok != '}' {
		if p.tok == scanner.EOF {
			panic("unterminated block")
		}
		stmts = append(stmts, p.stmt())
	}
	p.expect('}')
	return stmts
}

func (p *cParser) stmt() cStmt {
	switch {
	case p.tok == '{':
		return p.block()
	case p.s.TokenText() == "return":
		p.next()
		v := p.number()
		p.expect(';')
		return cReturn(int(v))
	case p.s.TokenText() == "if":
		p.next()
		p.expect('(')
		s := cIf{ident: p.ident()}
		p.expect('<')
		s.limit = p.number()
		p.expect(')')
		s.then = p.stmt()
		if p.s.TokenText() == "else" {
			p.next()
			s.els = p.stmt()
		}
		return s
	default:
		panic(fmt.Sprintf("unexpected token %q at %s", p.s.TokenText(), p.s.Position))
	}
}
