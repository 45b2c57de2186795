package components

import (
	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type InputCfg struct {
	Name     string
	Value    string
	Label    string
	Type     string
	Required bool
	Class    string
}

func Field(c InputCfg) Node {
	typ := c.Type
	if typ == "" {
		typ = "text"
	}
	return Div(Class("field "+c.Class),
		Label(For(c.Name), Text(c.Label)),
		Input(ID(c.Name), Name(c.Name), Type(typ), Value(c.Value), If(c.Required, Required())),
	)
}

type OptionCfg struct {
	Value string
	Label string
}

func SelectField(name, label string, options []OptionCfg) Node {
	return Div(Class("field"),
		Label(For(name), Text(label)),
		Select(ID(name), Name(name), Required(),
			Map(options, func(o OptionCfg) Node {
				return Option(Value(o.Value), Text(o.Label))
			}),
		),
	)
}

// FormError is merged by id to show or clear a form level error.
func FormError(msg string) Node {
	return P(ID("form-error"), Class("form-error"), Role("alert"), If(msg != "", Text(msg)))
}
