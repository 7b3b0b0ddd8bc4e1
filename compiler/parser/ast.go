package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/adele-lang/adele/compiler/lexer"
)

// SourceLocation represents a location in source code
type SourceLocation struct {
	File string
	Line int
}

// TokenToLocation converts a token to a SourceLocation
func TokenToLocation(token lexer.Token) SourceLocation {
	return SourceLocation{
		File: token.File,
		Line: token.Line,
	}
}

// Node is the contract between the object model and the serializers.
// Every model variant names itself and enumerates its visible attributes
// in declaration order; a serializer walks the tree through this
// interface alone and never hard-codes the set of variants. Hidden state
// is whatever a variant chooses not to list.
type Node interface {
	NodeName() string
	Attributes() []Attribute
}

// SimpleStatement marks the terminating actions of a compound statement
type SimpleStatement interface {
	Node
	simpleStatement()
}

// CompoundStatement marks the bracketed block statements
type CompoundStatement interface {
	Node
	compoundStatement()
}

// AttrKind discriminates the value carried by an attribute
type AttrKind int

const (
	AttrAbsent AttrKind = iota
	AttrPrimitive
	AttrSequence
	AttrMapping
	AttrObject
)

// Attribute is one named, visible attribute of a model node
type Attribute struct {
	Name  string
	Value AttrValue
}

// AttrValue is the tagged value of an attribute. TypeName carries the
// type tag emitted by serializers: the primitive tag (int, float, bool,
// str), the container tag (list, dict), or the class name of a nested
// object.
type AttrValue struct {
	Kind      AttrKind
	TypeName  string
	Primitive interface{} // int64, float64, bool or string
	Elems     []Node      // sequence elements or mapping values in key order
	Object    Node
}

// Absent returns the attribute value of an unset optional
func Absent() AttrValue {
	return AttrValue{Kind: AttrAbsent}
}

// PrimitiveOf wraps a Go scalar, tagging it with the matching primitive
// type name
func PrimitiveOf(v interface{}) AttrValue {
	return AttrValue{Kind: AttrPrimitive, TypeName: primitiveTypeName(v), Primitive: v}
}

// StringOf wraps a string value
func StringOf(v string) AttrValue {
	return AttrValue{Kind: AttrPrimitive, TypeName: "str", Primitive: v}
}

// SequenceOf wraps an ordered sequence of nodes
func SequenceOf(elems []Node) AttrValue {
	return AttrValue{Kind: AttrSequence, TypeName: "list", Elems: elems}
}

// MappingOf wraps mapping values, already ordered by key
func MappingOf(values []Node) AttrValue {
	return AttrValue{Kind: AttrMapping, TypeName: "dict", Elems: values}
}

// ObjectOf wraps a nested object; a nil node is absent
func ObjectOf(n Node) AttrValue {
	if n == nil {
		return Absent()
	}
	return AttrValue{Kind: AttrObject, TypeName: n.NodeName(), Object: n}
}

// PrimitiveString renders a primitive attribute value for output
func (v AttrValue) PrimitiveString() string {
	return formatValue(v.Primitive)
}

// primitiveTypeName maps a Go scalar onto the emitted primitive type tag
func primitiveTypeName(v interface{}) string {
	switch v.(type) {
	case int64:
		return "int"
	case float64:
		return "float"
	case bool:
		return "bool"
	case string:
		return "str"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// formatValue stringifies a literal value. Interned identifiers are
// derived from this rendering, so it must stay deterministic and keep
// integers and floats apart: an integral float retains its decimal
// point, so 0 renders as "0" and 0.0 as "0.0".
func formatValue(v interface{}) string {
	switch value := v.(type) {
	case int64:
		return strconv.FormatInt(value, 10)
	case float64:
		s := strconv.FormatFloat(value, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
		return s
	case bool:
		return strconv.FormatBool(value)
	case string:
		return value
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Literal models an interned literal value. Literals carry values;
// their identifier is derived from the value, so textually identical
// literals collapse onto one symbol.
type Literal struct {
	Identifier string
	Type       string
	Value      interface{}
}

// LiteralPrefix builds the identifier of literals
const LiteralPrefix = "_"

// NewLiteral creates a literal of the given primitive type
func NewLiteral(typ string, value interface{}) *Literal {
	return &Literal{
		Identifier: LiteralPrefix + formatValue(value),
		Type:       typ,
		Value:      value,
	}
}

// NodeName implements Node
func (l *Literal) NodeName() string { return "Literal" }

// Attributes implements Node
func (l *Literal) Attributes() []Attribute {
	return []Attribute{
		{Name: "identifier", Value: StringOf(l.Identifier)},
		{Name: "type", Value: StringOf(l.Type)},
		{Name: "value", Value: PrimitiveOf(l.Value)},
	}
}

// Variable models a declared variable. Variables hold references
// (through identifiers) to other symbols, never literal values. The
// reference is empty until initializers are parsed.
type Variable struct {
	Identifier string
	Type       string
	Reference  string
}

// NewVariable creates a variable with no initial reference
func NewVariable(identifier, typ string) *Variable {
	return &Variable{
		Identifier: identifier,
		Type:       typ,
	}
}

// NodeName implements Node
func (v *Variable) NodeName() string { return "Variable" }

// Attributes implements Node
func (v *Variable) Attributes() []Attribute {
	reference := Absent()
	if v.Reference != "" {
		reference = StringOf(v.Reference)
	}
	return []Attribute{
		{Name: "identifier", Value: StringOf(v.Identifier)},
		{Name: "type", Value: StringOf(v.Type)},
		{Name: "reference", Value: reference},
	}
}

// SetUnitTime models the action 'setUnitTime'
type SetUnitTime struct {
	Reference string
}

// NodeName implements Node
func (s *SetUnitTime) NodeName() string { return "SetUnitTime" }

// Attributes implements Node
func (s *SetUnitTime) Attributes() []Attribute {
	return []Attribute{{Name: "reference", Value: StringOf(s.Reference)}}
}

func (s *SetUnitTime) simpleStatement() {}

// SetUnitLength models the action 'setUnitLength'
type SetUnitLength struct {
	Reference string
}

// NodeName implements Node
func (s *SetUnitLength) NodeName() string { return "SetUnitLength" }

// Attributes implements Node
func (s *SetUnitLength) Attributes() []Attribute {
	return []Attribute{{Name: "reference", Value: StringOf(s.Reference)}}
}

func (s *SetUnitLength) simpleStatement() {}

// SetUnitAngle models the action 'setUnitAngle'
type SetUnitAngle struct {
	Reference string
}

// NodeName implements Node
func (s *SetUnitAngle) NodeName() string { return "SetUnitAngle" }

// Attributes implements Node
func (s *SetUnitAngle) Attributes() []Attribute {
	return []Attribute{{Name: "reference", Value: StringOf(s.Reference)}}
}

func (s *SetUnitAngle) simpleStatement() {}

// SetTimeStart models the action 'setTimeStart'. The referenced literal
// is guaranteed non-negative by the grammar.
type SetTimeStart struct {
	Reference string
}

// NodeName implements Node
func (s *SetTimeStart) NodeName() string { return "SetTimeStart" }

// Attributes implements Node
func (s *SetTimeStart) Attributes() []Attribute {
	return []Attribute{{Name: "reference", Value: StringOf(s.Reference)}}
}

func (s *SetTimeStart) simpleStatement() {}

// Configuration models the configuration compound statement
type Configuration struct {
	Actions []SimpleStatement
}

// NodeName implements Node
func (c *Configuration) NodeName() string { return "Configuration" }

// Attributes implements Node
func (c *Configuration) Attributes() []Attribute {
	actions := make([]Node, len(c.Actions))
	for i, a := range c.Actions {
		actions[i] = a
	}
	return []Attribute{{Name: "actions", Value: SequenceOf(actions)}}
}

func (c *Configuration) compoundStatement() {}

// Attack models the attack compound statement. The statement grammar is
// not implemented yet; declarations live in the symbol table only.
type Attack struct{}

// NodeName implements Node
func (a *Attack) NodeName() string { return "Attack" }

// Attributes implements Node
func (a *Attack) Attributes() []Attribute { return nil }

func (a *Attack) compoundStatement() {}

// Scenario models the whole scenario compound statement, the root of the
// model tree
type Scenario struct {
	Configuration *Configuration
	Attack        *Attack
}

// NodeName implements Node
func (s *Scenario) NodeName() string { return "Scenario" }

// Attributes implements Node
func (s *Scenario) Attributes() []Attribute {
	configuration := Absent()
	if s.Configuration != nil {
		configuration = ObjectOf(s.Configuration)
	}
	attack := Absent()
	if s.Attack != nil {
		attack = ObjectOf(s.Attack)
	}
	return []Attribute{
		{Name: "configuration", Value: configuration},
		{Name: "attack", Value: attack},
	}
}

func (s *Scenario) compoundStatement() {}
