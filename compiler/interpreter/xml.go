package interpreter

import (
	"fmt"
	"strings"

	"github.com/adele-lang/adele/compiler/parser"
)

// The column width
const indentSpace = "    "

// Tags' properties
const (
	propertyEntity = "entity"
	propertyLength = "length"
	propertyIndex  = "index"
	propertyType   = "type"
)

// Properties' values
const (
	propertyValueObject    = "object"
	propertyValueAttribute = "attribute"
)

// interpretXML provides the XML interpretation for the given scenario.
// The document is structural and self-describing: every node opens a tag
// named after its class, every visible attribute opens a nested tag
// carrying its type, and sequence elements are indexed. The walk is
// driven entirely by the attribute descriptors the model exposes.
func interpretXML(scenario parser.Node) (string, error) {
	if scenario == nil {
		return "", nil
	}
	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\"?>\n")
	if err := writeObject(&b, scenario, 0, -1); err != nil {
		return "", err
	}
	return b.String(), nil
}

// writeObject emits one model node and its attributes. A non-negative
// index marks the node as an element of an enclosing sequence or
// mapping.
func writeObject(b *strings.Builder, node parser.Node, indentation, index int) error {
	indent := strings.Repeat(indentSpace, indentation)

	if index < 0 {
		fmt.Fprintf(b, "%s<%s %s=\"%s\">\n",
			indent, node.NodeName(), propertyEntity, propertyValueObject)
	} else {
		fmt.Fprintf(b, "%s<%s %s=\"%s\" %s=\"%d\">\n",
			indent, node.NodeName(), propertyEntity, propertyValueObject, propertyIndex, index)
	}

	for _, attribute := range node.Attributes() {
		if err := writeAttribute(b, attribute, indentation); err != nil {
			return err
		}
	}

	fmt.Fprintf(b, "%s</%s>\n", indent, node.NodeName())
	return nil
}

// writeAttribute emits one visible attribute of a node. Absent values
// yield the empty string.
func writeAttribute(b *strings.Builder, attribute parser.Attribute, indentation int) error {
	indent := strings.Repeat(indentSpace, indentation+1)
	value := attribute.Value

	switch value.Kind {
	case parser.AttrAbsent:
		return nil

	case parser.AttrPrimitive:
		fmt.Fprintf(b, "%s<%s %s=\"%s\" %s=\"%s\">\n",
			indent, attribute.Name, propertyEntity, propertyValueAttribute, propertyType, value.TypeName)
		fmt.Fprintf(b, "%s%s\n",
			strings.Repeat(indentSpace, indentation+2), value.PrimitiveString())

	case parser.AttrSequence, parser.AttrMapping:
		fmt.Fprintf(b, "%s<%s %s=\"%s\" %s=\"%s\" %s=\"%d\">\n",
			indent, attribute.Name, propertyEntity, propertyValueAttribute,
			propertyType, value.TypeName, propertyLength, len(value.Elems))
		for i, element := range value.Elems {
			if element == nil {
				return InterpretationError{
					Message: fmt.Sprintf("The attribute '%s' contains an empty element at index %d", attribute.Name, i),
				}
			}
			if err := writeObject(b, element, indentation+2, i); err != nil {
				return err
			}
		}

	case parser.AttrObject:
		if value.Object == nil {
			return InterpretationError{
				Message: fmt.Sprintf("The attribute '%s' refers to no object", attribute.Name),
			}
		}
		fmt.Fprintf(b, "%s<%s %s=\"%s\" %s=\"%s\">\n",
			indent, attribute.Name, propertyEntity, propertyValueAttribute, propertyType, value.TypeName)
		if err := writeObject(b, value.Object, indentation+2, -1); err != nil {
			return err
		}

	default:
		return InterpretationError{
			Message: fmt.Sprintf("The attribute '%s' has an unrecognized kind", attribute.Name),
		}
	}

	fmt.Fprintf(b, "%s</%s>\n", indent, attribute.Name)
	return nil
}
