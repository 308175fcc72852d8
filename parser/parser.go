/*
Package parser provides the pon reader.

	expr   := '(' <expr>* ')' | <number> | <symbol>
	number := <float> | <int>
	float  := /-?[0-9]*[.][0-9]+/
	int    := /-?[0-9]+/
	symbol := /[^\s()]+/

There are no string literals, comments, or quote sugar.  The numeric subtype
of a literal is fixed at read time by the presence of a decimal point.
*/
package parser

import (
	"fmt"
	"io"
	"io/ioutil"
	"strconv"

	parsec "github.com/prataprc/goparsec"

	"github.com/ponlisp/pon/lisp"
)

const (
	nodeInvalid nodeType = iota
	nodeTerm
	nodeSExpr
)

var nodeTypeStrings = []string{
	nodeInvalid: "INVALID",
	nodeTerm:    "TERM",
	nodeSExpr:   "SEXPR",
}

type nodeType uint

func (t nodeType) String() string {
	if int(t) >= len(nodeTypeStrings) {
		return nodeTypeStrings[nodeInvalid]
	}
	return nodeTypeStrings[t]
}

// ParseLVal parses LVal values from text and returns them.  The number of
// bytes read is returned along with any error that was encountered in
// parsing.  Unparsable trailing input, including unbalanced parentheses, is
// reported as an error rather than being silently dropped.
func ParseLVal(text []byte) ([]*lisp.LVal, int, error) {
	var v []*lisp.LVal
	s := parsec.NewScanner(text)
	parser := newParsecParser()
	root, s := parser(s)
	for root != nil {
		lval := getLVal(root)
		if lval != nil {
			v = append(v, lval)
		}
		root, s = parser(s)
	}
	_, s = s.SkipWS()
	if !s.Endof() {
		return v, s.GetCursor(), fmt.Errorf("syntax error at offset %d", s.GetCursor())
	}
	return v, s.GetCursor(), nil
}

func newParsecParser() parsec.Parser {
	openP := parsec.Atom("(", "OPENP")
	closeP := parsec.Atom(")", "CLOSEP")
	float := parsec.Token(`-?[0-9]*[.][0-9]+`, "FLOAT")
	intnum := parsec.Token(`-?[0-9]+`, "INT")
	symbol := parsec.Token(`[^\s()]+`, "SYMBOL")
	term := parsec.OrdChoice(astNode(nodeTerm), // terminal token
		float,
		intnum,
		symbol, // symbol comes last because it swallows anything
	)
	var expr parsec.Parser // forward declaration allows for recursive parsing
	exprList := parsec.Kleene(nil, &expr)
	sexpr := parsec.And(astNode(nodeSExpr), openP, exprList, closeP)
	expr = parsec.OrdChoice(nil, term, sexpr)
	return expr
}

func astNode(t nodeType) parsec.Nodify {
	return func(nodes []parsec.ParsecNode) parsec.ParsecNode {
		return newLVal(t, nodes)
	}
}

func newLVal(typ nodeType, nodes []parsec.ParsecNode) parsec.ParsecNode {
	nodes = cleanParsecNodeList(nodes)
	switch typ {
	case nodeTerm:
		term, ok := nodes[0].(*parsec.Terminal)
		if !ok {
			return lisp.Errorf("unexpected parser node: %T", nodes[0])
		}
		switch term.Name {
		case "FLOAT":
			f, err := strconv.ParseFloat(term.Value, 64)
			if err != nil {
				return lisp.Errorf("bad number: %v (%s)", err, term.Value)
			}
			return lisp.Float(f)
		case "INT":
			x, err := strconv.Atoi(term.Value)
			if err != nil {
				return lisp.Errorf("bad number: %v (%s)", err, term.Value)
			}
			return lisp.Int(x)
		default:
			return lisp.Symbol(term.Value)
		}
	case nodeSExpr:
		lval := lisp.SExpr(nil)
		// The terminal parsec nodes '(' and ')' are not wanted
		for _, c := range nodes {
			switch c := c.(type) {
			case *lisp.LVal:
				lval.Cells = append(lval.Cells, c)
			}
		}
		return lval
	default:
		return lisp.Errorf("unknown node type: %s (%d)", typ, typ)
	}
}

func cleanParsecNodeList(lis []parsec.ParsecNode) []parsec.ParsecNode {
	var nodes []parsec.ParsecNode
	for _, n := range lis {
		switch node := n.(type) {
		case []parsec.ParsecNode:
			nodes = append(nodes, cleanParsecNodeList(node)...)
		default:
			nodes = append(nodes, node)
		}
	}
	return nodes
}

func getLVal(root parsec.ParsecNode) *lisp.LVal {
	nodes := cleanParsecNodeList([]parsec.ParsecNode{root})
	if len(nodes) == 0 {
		// only whitespace was scanned
		return nil
	}
	lval, ok := nodes[0].(*lisp.LVal)
	if !ok {
		return nil
	}
	return lval
}

// Reader adapts ParseLVal to the lisp.Reader interface.
type Reader struct{}

var _ lisp.Reader = Reader{}

// NewReader returns a Reader.
func NewReader() Reader {
	return Reader{}
}

// Read consumes r and returns the sequence of expressions it contains.
func (Reader) Read(name string, r io.Reader) ([]*lisp.LVal, error) {
	b, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	v, _, err := ParseLVal(b)
	if err != nil {
		return v, fmt.Errorf("%s: %v", name, err)
	}
	return v, nil
}
