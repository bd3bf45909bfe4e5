package css

import (
	"fmt"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/gosimple/slug"
	"github.com/maruel/natural"
)

// presetDefinitions lists predefined gradients by display name.
var presetDefinitions = []struct {
	name, expr string
}{
	{"Warm Flame", "linear-gradient(45deg, #ff9a9e 0%, #fad0c4 99%, #fad0c4 100%)"},
	{"Night Fade", "linear-gradient(to top, #a18cd1 0%, #fbc2eb 100%)"},
	{"Spring Warmth", "linear-gradient(to top, #fad0c4 0%, #fad0c4 1%, #ffd1ff 100%)"},
	{"Juicy Peach", "linear-gradient(to right, #ffecd2 0%, #fcb69f 100%)"},
	{"Young Passion", "linear-gradient(to right, #ff8177 0%, #ff867a 0%, #ff8c7f 21%, #f99185 52%, #cf556c 78%, #b12a5b 100%)"},
	{"Lady Lips", "linear-gradient(to top, #ff9a9e 0%, #fecfef 99%, #fecfef 100%)"},
	{"Sunny Morning", "linear-gradient(120deg, #f6d365 0%, #fda085 100%)"},
	{"Rainy Ashville", "linear-gradient(to top, #fbc2eb 0%, #a6c1ee 100%)"},
	{"Frozen Dreams", "linear-gradient(to top, #fdcbf1 0%, #fdcbf1 1%, #e6dee9 100%)"},
	{"Winter Neva", "linear-gradient(120deg, #a1c4fd 0%, #c2e9fb 100%)"},
	{"Dusty Grass", "linear-gradient(120deg, #d4fc79 0%, #96e6a1 100%)"},
	{"Tempting Azure", "linear-gradient(120deg, #84fab0 0%, #8fd3f4 100%)"},
	{"Heavy Rain", "linear-gradient(to top, #cfd9df 0%, #e2ebf0 100%)"},
	{"Amy Crisp", "linear-gradient(120deg, #a6c0fe 0%, #f68084 100%)"},
	{"Mean Fruit", "linear-gradient(120deg, #fccb90 0%, #d57eeb 100%)"},
	{"Deep Blue", "linear-gradient(120deg, #e0c3fc 0%, #8ec5fc 100%)"},
	{"Ripe Malinka", "linear-gradient(120deg, #f093fb 0%, #f5576c 100%)"},
	{"Cloudy Knoxville", "linear-gradient(120deg, #fdfbfb 0%, #ebedee 100%)"},
	{"Malibu Beach", "linear-gradient(to right, #4facfe 0%, #00f2fe 100%)"},
	{"New Life", "linear-gradient(to right, #43e97b 0%, #38f9d7 100%)"},
	{"True Sunset", "linear-gradient(to right, #fa709a 0%, #fee140 100%)"},
	{"Morpheus Den", "linear-gradient(to top, #30cfd0 0%, #330867 100%)"},
	{"Rare Wind", "linear-gradient(to top, #a8edea 0%, #fed6e3 100%)"},
	{"Near Moon", "linear-gradient(to top, #5ee7df 0%, #b490ca 100%)"},
}

var (
	presetsOnce  sync.Once
	presetsTable map[string]Gradient
	presetsNames []string
)

// presetKey normalizes preset name so that "Warm Flame", "warm-flame" and
// "WarmFlame" produce the same key.
func presetKey(name string) string {
	return strings.ReplaceAll(slug.Make(FoldName(name)), "-", "")
}

func loadPresets() {
	presetsTable = make(map[string]Gradient, len(presetDefinitions))
	presetsNames = make([]string, 0, len(presetDefinitions))

	for _, def := range presetDefinitions {
		st := newParseState(def.expr, nil)
		g, err := st.gradient()
		if err == nil {
			err = st.expectEnd()
		}
		if err != nil {
			panic(fmt.Sprintf("predefined gradient %q is broken: %v", def.name, err))
		}
		g.Preset = def.name
		presetsTable[presetKey(def.name)] = g
		presetsNames = append(presetsNames, def.name)
	}
	sort.Sort(natural.StringSlice(presetsNames))
}

// LookupPreset returns predefined gradient by name. Lookup ignores case,
// spaces and hyphens.
func LookupPreset(name string) (Gradient, bool) {
	presetsOnce.Do(loadPresets)

	g, ok := presetsTable[presetKey(name)]
	if !ok {
		return Gradient{}, false
	}
	g.Linear.Stops = slices.Clone(g.Linear.Stops)
	return g, true
}

// Presets returns display names of all predefined gradients in natural order.
func Presets() []string {
	presetsOnce.Do(loadPresets)
	return slices.Clone(presetsNames)
}
