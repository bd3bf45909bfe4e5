package css

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color grammar:
//
//	<color>  := NAME
//	          | '#' HEXDIGITS{3,4,6,8}
//	          | FUNCNAME '(' ARG (SEP ARG)* (('/'|',') ALPHA)? ')'
//	FUNCNAME := 'rgb' | 'rgba' | 'hsl' | 'hsla' | 'hsv' | 'hsva' | 'gray' | 'grey' | 'red' | 'green' | 'blue'
//	SEP      := ',' | whitespace
//
// NAME additionally accepts grey/gray followed by a level in percent (grey52),
// optionally followed by ",<p>%" (alpha 1-p/100) or ",a<p>%" / ",a<v>".

type colorFunction struct {
	min, max int
	build    func(args []NumberWithUnit) Color
}

var colorFunctions = map[string]colorFunction{
	"rgb":   {min: 3, max: 4, build: rgbColor},
	"rgba":  {min: 3, max: 4, build: rgbColor},
	"hsl":   {min: 3, max: 4, build: hslColor},
	"hsla":  {min: 3, max: 4, build: hslColor},
	"hsv":   {min: 3, max: 4, build: hsvColor},
	"hsva":  {min: 3, max: 4, build: hsvColor},
	"gray":  {min: 1, max: 2, build: grayColor},
	"grey":  {min: 1, max: 2, build: grayColor},
	"red":   {min: 1, max: 2, build: channelColor(0)},
	"green": {min: 1, max: 2, build: channelColor(1)},
	"blue":  {min: 1, max: 2, build: channelColor(2)},
}

func alphaArg(args []NumberWithUnit, i int) float64 {
	if len(args) > i {
		return args[i].NormRGB()
	}
	return 1
}

func rgbColor(args []NumberWithUnit) Color {
	return Color{R: args[0].NormRGB(), G: args[1].NormRGB(), B: args[2].NormRGB(), A: alphaArg(args, 3)}
}

func hslColor(args []NumberWithUnit) Color {
	return fromColorful(colorful.Hsl(args[0].NormHue()*360, args[1].NormRGB(), args[2].NormRGB()), alphaArg(args, 3))
}

func hsvColor(args []NumberWithUnit) Color {
	return fromColorful(colorful.Hsv(args[0].NormHue()*360, args[1].NormRGB(), args[2].NormRGB()), alphaArg(args, 3))
}

func grayColor(args []NumberWithUnit) Color {
	return greyLevel(args[0].NormRGB(), alphaArg(args, 1))
}

func channelColor(channel int) func([]NumberWithUnit) Color {
	return func(args []NumberWithUnit) Color {
		c := Color{A: alphaArg(args, 1)}
		v := args[0].NormRGB()
		switch channel {
		case 0:
			c.R = v
		case 1:
			c.G = v
		case 2:
			c.B = v
		}
		return c
	}
}

func (st *parseState) color() (Color, error) {
	t, err := st.next()
	if err != nil {
		return Color{}, err
	}
	switch t.Kind {
	case TokenKindHexString:
		return hexColor(t)
	case TokenKindName:
		nt, err := st.peek()
		if err != nil {
			return Color{}, err
		}
		if nt.Kind == TokenKindLParen {
			return st.colorFunction(t)
		}
		return st.namedColor(t, nt)
	}
	return Color{}, newUnexpectedTermError("a color", t)
}

func (st *parseState) namedColor(t, next Token) (Color, error) {
	name := FoldName(t.Text)
	if isGreyName(name) && next.Kind == TokenKindNumber && next.adjacent(t) {
		_, _ = st.next()
		return st.greyShade(next)
	}
	if c, ok := resolveName(name, st.palette); ok {
		return c, nil
	}
	return Color{}, newUnconvertibleError(t.Offset, t.Text, "a color")
}

func (st *parseState) greyShade(level Token) (Color, error) {
	if level.Unit != "" || level.Number < 0 || level.Number > 100 {
		return Color{}, newUnconvertibleError(level.Offset, st.lexeme(level), "a grey level (0..100)")
	}
	c := greyLevel(level.Number/100, 1)

	nt, err := st.peek()
	if err != nil || nt.Kind != TokenKindComma {
		return c, nil
	}

	// ",<p>%" or ",a<v>", otherwise the comma belongs to the caller
	m := st.tok.mark()
	_, _ = st.next()
	t, err := st.next()
	if err == nil {
		switch {
		case t.Kind == TokenKindNumber && t.Value().IsPercent():
			c.A = 1 - clamp01(t.Number/100)
			return c, nil
		case t.Kind == TokenKindName && FoldName(t.Text) == "a":
			v, err := st.next()
			if err == nil && v.Kind == TokenKindNumber && v.adjacent(t) {
				switch v.Unit {
				case "%":
					c.A = clamp01(v.Number / 100)
				case "":
					c.A = clamp01(v.Number / 255)
				default:
					return Color{}, newUnconvertibleError(v.Offset, st.lexeme(v), "an alpha value")
				}
				return c, nil
			}
		}
	}
	st.tok.reset(m)
	return c, nil
}

func (st *parseState) colorFunction(nameTok Token) (Color, error) {
	name := FoldName(nameTok.Text)
	fn, ok := colorFunctions[name]
	if !ok {
		return Color{}, newUnconvertibleError(nameTok.Offset, nameTok.Text, "a color function")
	}
	if _, err := st.expect(TokenKindLParen); err != nil {
		return Color{}, err
	}

	var args []NumberWithUnit
	t, err := st.next()
	if err != nil {
		return Color{}, err
	}
	switch t.Kind {
	case TokenKindRParen:
		return Color{}, newWrongNumberOfArgumentsError(nameTok.Offset, name, fn.min, fn.max, 0)
	case TokenKindNumber:
		args = append(args, t.Value())
	default:
		return Color{}, newUnexpectedTokenError(TokenKindNumber, t)
	}

	slash := false
	for {
		t, err := st.next()
		if err != nil {
			return Color{}, err
		}
		if slash && t.Kind != TokenKindRParen {
			return Color{}, newUnexpectedTokenError(TokenKindRParen, t)
		}
		switch t.Kind {
		case TokenKindRParen:
			if len(args) < fn.min || len(args) > fn.max {
				return Color{}, newWrongNumberOfArgumentsError(nameTok.Offset, name, fn.min, fn.max, len(args))
			}
			return fn.build(args), nil
		case TokenKindSlash:
			if len(args) != fn.max-1 {
				return Color{}, newGeneralError(t.Offset, "%s() expects %d channels before '/', got %d", name, fn.max-1, len(args))
			}
			slash = true
			fallthrough
		case TokenKindComma:
			a, err := st.expect(TokenKindNumber)
			if err != nil {
				return Color{}, err
			}
			args = append(args, a.Value())
		case TokenKindNumber:
			args = append(args, t.Value())
		default:
			return Color{}, newUnexpectedTokenError(TokenKindRParen, t)
		}
	}
}

func hexColor(t Token) (Color, error) {
	h := t.Text
	n := make([]uint8, len(h))
	for i := range len(h) {
		n[i] = hexNibble(h[i])
	}

	var c color.NRGBA
	switch len(h) {
	case 3, 4:
		c = color.NRGBA{R: n[0] * 17, G: n[1] * 17, B: n[2] * 17, A: 255}
		if len(h) == 4 {
			c.A = n[3] * 17
		}
	case 6, 8:
		c = color.NRGBA{R: n[0]<<4 | n[1], G: n[2]<<4 | n[3], B: n[4]<<4 | n[5], A: 255}
		if len(h) == 8 {
			c.A = n[6]<<4 | n[7]
		}
	default:
		return Color{}, newUnconvertibleError(t.Offset, "#"+h, "a color")
	}
	return FromNRGBA(c), nil
}

func hexNibble(c byte) uint8 {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}
