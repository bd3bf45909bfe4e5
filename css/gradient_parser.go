package css

import (
	"fmt"
	"math"
)

// Gradient grammar:
//
//	<gradient>    := PRESETNAME | <lingradient>
//	<lingradient> := 'linear-gradient(' (<angle> ',')? <stoplist> ')'
//	<angle>       := NumberWithUnit
//	               | 'to' DIRKEYWORD DIRKEYWORD?
//	DIRKEYWORD    := 'left' | 'right' | 'top' | 'bottom'
//	<stoplist>    := <stop> (',' <stop>)*
//	<stop>        := <color> NumberWithUnit?

const linearGradientName = "linear-gradient"

type pendingStop struct {
	color    Color
	position float64
	explicit bool
}

func (st *parseState) gradient() (Gradient, error) {
	t, err := st.next()
	if err != nil {
		return Gradient{}, err
	}
	if t.Kind != TokenKindName {
		return Gradient{}, newUnexpectedTermError("a gradient", t)
	}

	nt, err := st.peek()
	if err != nil {
		return Gradient{}, err
	}
	if nt.Kind != TokenKindLParen {
		p, ok := LookupPreset(t.Text)
		if !ok {
			return Gradient{}, newUnconvertibleError(t.Offset, t.Text, "a predefined gradient")
		}
		return p, nil
	}

	if FoldName(t.Text) != linearGradientName {
		return Gradient{}, newUnconvertibleError(t.Offset, t.Text, "a gradient function")
	}
	_, _ = st.next()

	lg, err := st.linearGradient(t)
	if err != nil {
		return Gradient{}, err
	}
	return Gradient{Linear: lg}, nil
}

func (st *parseState) linearGradient(fn Token) (LinearGradient, error) {
	var lg LinearGradient

	dir, haveDir, err := st.direction()
	if err != nil {
		return lg, err
	}
	if haveDir {
		if _, err := st.expect(TokenKindComma); err != nil {
			return lg, err
		}
	} else {
		dir = defaultDirection
	}
	lg.Start, lg.End = dir[0], dir[1]

	var stops []pendingStop
	for {
		s, err := st.stop()
		if err != nil {
			return lg, withContext(err, fmt.Sprintf("gradient stop %d", len(stops)+1))
		}
		stops = append(stops, s)

		t, err := st.next()
		if err != nil {
			return lg, err
		}
		if t.Kind == TokenKindRParen {
			break
		}
		if t.Kind != TokenKindComma {
			return lg, newUnexpectedTokenError(TokenKindRParen, t)
		}
	}
	if len(stops) < 2 {
		return lg, newWrongNumberOfArgumentsError(fn.Offset, linearGradientName, 2, math.MaxInt, len(stops))
	}
	lg.Stops = resolveStops(stops)
	return lg, nil
}

// direction parses optional gradient direction. Returned points are start and
// end of gradient line.
func (st *parseState) direction() ([2]Point, bool, error) {
	t, err := st.peek()
	if err != nil {
		return [2]Point{}, false, err
	}

	switch {
	case t.Kind == TokenKindNumber:
		_, _ = st.next()
		n := t.Value()
		if !n.IsAngle() {
			return [2]Point{}, false, newUnconvertibleError(t.Offset, st.lexeme(t), "an angle")
		}
		return angleDirection(n.Norm()), true, nil

	case t.Kind == TokenKindName && FoldName(t.Text) == "to":
		_, _ = st.next()
		return st.directionKeywords()
	}
	return [2]Point{}, false, nil
}

func (st *parseState) directionKeywords() ([2]Point, bool, error) {
	dir := [2]Point{{X: 0.5, Y: 0.5}, {X: 0.5, Y: 0.5}}
	var seenH, seenV bool

	for i := 0; i < 2; i++ {
		var t Token
		var err error
		if i == 0 {
			t, err = st.next()
		} else {
			// second keyword is optional
			t, err = st.peek()
		}
		if err != nil {
			return dir, false, err
		}

		kw, ok := directionKeywords[FoldName(t.Text)]
		if t.Kind != TokenKindName || !ok {
			if i == 0 {
				return dir, false, newUnexpectedTermError("a direction keyword", t)
			}
			break
		}
		if (kw.horizontal && seenH) || (!kw.horizontal && seenV) {
			if i > 0 {
				_, _ = st.next()
			}
			return dir, false, newUnexpectedTermError("a direction keyword for the other axis", t)
		}
		if i > 0 {
			_, _ = st.next()
		}

		if kw.horizontal {
			seenH = true
			dir[0].X, dir[1].X = 1-kw.end, kw.end
		} else {
			seenV = true
			dir[0].Y, dir[1].Y = 1-kw.end, kw.end
		}
	}
	return dir, true, nil
}

// angleDirection uses CSS convention: 0deg points up, angles grow clockwise.
func angleDirection(deg float64) [2]Point {
	rad := deg * math.Pi / 180
	dx, dy := 0.5*math.Sin(rad), 0.5*math.Cos(rad)
	return [2]Point{
		{X: snap(0.5 - dx), Y: snap(0.5 + dy)},
		{X: snap(0.5 + dx), Y: snap(0.5 - dy)},
	}
}

// snap removes floating point noise left by trigonometry.
func snap(v float64) float64 {
	return math.Round(v*1e12) / 1e12
}

func (st *parseState) stop() (pendingStop, error) {
	c, err := st.color()
	if err != nil {
		return pendingStop{}, err
	}
	s := pendingStop{color: c}

	t, err := st.peek()
	if err != nil {
		return s, err
	}
	if t.Kind != TokenKindNumber {
		return s, nil
	}
	_, _ = st.next()

	n := t.Value()
	switch n.Unit {
	case "%":
		s.position = clamp01(n.Value / 100)
	case "":
		s.position = clamp01(n.Value)
	default:
		return s, newUnconvertibleError(t.Offset, st.lexeme(t), "a stop position")
	}
	s.explicit = true
	return s, nil
}

// resolveStops assigns positions to stops without explicit ones. First stop
// defaults to 0, last to 1, runs of unpositioned stops in between are spread
// evenly between their neighbours. Positions never decrease.
func resolveStops(stops []pendingStop) []GradientStop {
	n := len(stops)
	if !stops[0].explicit {
		stops[0].position, stops[0].explicit = 0, true
	}
	if !stops[n-1].explicit {
		stops[n-1].position, stops[n-1].explicit = 1, true
	}

	highest := 0.0
	for i := range stops {
		if !stops[i].explicit {
			continue
		}
		highest = max(highest, stops[i].position)
		stops[i].position = highest
	}

	for i := 1; i < n-1; i++ {
		if stops[i].explicit {
			continue
		}
		j := i
		for !stops[j].explicit {
			j++
		}
		from, to := stops[i-1].position, stops[j].position
		span := float64(j - i + 1)
		for k := i; k < j; k++ {
			stops[k].position = from + (to-from)*float64(k-i+1)/span
		}
		i = j
	}

	out := make([]GradientStop, n)
	for i, s := range stops {
		out[i] = GradientStop{Position: s.position, Color: s.color}
	}
	return out
}
