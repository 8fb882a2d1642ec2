package component

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

// DynamicString is a property whose value is either fixed or computed from the current message.
//
// Expressions use text/template syntax and see the message as {{ .Payload }} and {{ .Attributes }}.
type DynamicString struct {
	value string
	tmpl  *template.Template
}

// Static returns a DynamicString that always evaluates to value.
func Static(value string) DynamicString {
	return DynamicString{value: value}
}

// Expression parses expr as a template evaluated against each message.
func Expression(expr string) (DynamicString, error) {
	tmpl, err := template.New("expression").Option("missingkey=zero").Parse(expr)
	if err != nil {
		return DynamicString{}, fmt.Errorf("invalid expression %q: %w", expr, err)
	}
	return DynamicString{value: expr, tmpl: tmpl}, nil
}

// MustExpression is like Expression but panics if expr cannot be parsed.
func MustExpression(expr string) DynamicString {
	d, err := Expression(expr)
	if err != nil {
		panic(err)
	}
	return d
}

// IsBlank reports whether no value was configured.
func (d DynamicString) IsBlank() bool {
	return strings.TrimSpace(d.value) == ""
}

// Evaluate resolves d against msg. The result is trimmed; found is false when it is blank.
func (d DynamicString) Evaluate(msg Message) (value string, found bool, err error) {
	if d.IsBlank() {
		return "", false, nil
	}
	value = d.value
	if d.tmpl != nil {
		var buf bytes.Buffer
		if err := d.tmpl.Execute(&buf, msg); err != nil {
			return "", false, fmt.Errorf("failed to evaluate expression %q: %w", d.value, err)
		}
		value = buf.String()
		if value == "<no value>" {
			value = ""
		}
	}
	value = strings.TrimSpace(value)
	return value, value != "", nil
}

func (d DynamicString) String() string {
	return d.value
}
