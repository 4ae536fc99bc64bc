package categories

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/aaronzipp/aljasus/internal/models"
)

// LoadLuaPack runs a Lua word pack and converts the table it returns into a
// Catalog. A pack looks like:
//
//	return {
//	  classic = { { category = "Space", words = { "Moon", "Mars" } } },
//	  chameleon = { { category = "Drinks", pairs = { { distinct = "Tea", imposter = "Coffee" } } } },
//	}
func LoadLuaPack(path string) (*Catalog, error) {
	L := lua.NewState()
	defer L.Close()
	if err := L.DoFile(path); err != nil {
		return nil, fmt.Errorf("running %s: %w", path, err)
	}
	return fromLuaStack(L, path)
}

// ParseLuaPack is LoadLuaPack for an in-memory script
func ParseLuaPack(name, src string) (*Catalog, error) {
	L := lua.NewState()
	defer L.Close()
	if err := L.DoString(src); err != nil {
		return nil, fmt.Errorf("running %s: %w", name, err)
	}
	return fromLuaStack(L, name)
}

func fromLuaStack(L *lua.LState, name string) (*Catalog, error) {
	root, ok := L.Get(-1).(*lua.LTable)
	if !ok {
		return nil, fmt.Errorf("%s: pack must return a table", name)
	}

	c := &Catalog{}
	for _, entry := range luaArray(root.RawGetString("classic")) {
		cat, ok := entry.(*lua.LTable)
		if !ok {
			continue
		}
		c.Classic = append(c.Classic, models.Category{
			Name:  lua.LVAsString(cat.RawGetString("category")),
			Words: luaStrings(cat.RawGetString("words")),
		})
	}
	for _, entry := range luaArray(root.RawGetString("chameleon")) {
		cat, ok := entry.(*lua.LTable)
		if !ok {
			continue
		}
		var pairs []models.WordPair
		for _, p := range luaArray(cat.RawGetString("pairs")) {
			pt, ok := p.(*lua.LTable)
			if !ok {
				continue
			}
			pair := models.WordPair{
				Distinct: lua.LVAsString(pt.RawGetString("distinct")),
				Imposter: lua.LVAsString(pt.RawGetString("imposter")),
			}
			if pair.Distinct != "" && pair.Imposter != "" {
				pairs = append(pairs, pair)
			}
		}
		c.Chameleon = append(c.Chameleon, models.Category{
			Name:  lua.LVAsString(cat.RawGetString("category")),
			Pairs: pairs,
		})
	}

	c.prune()
	if len(c.Classic) == 0 && len(c.Chameleon) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrNoCategories)
	}
	return c, nil
}

func luaArray(v lua.LValue) []lua.LValue {
	t, ok := v.(*lua.LTable)
	if !ok {
		return nil
	}
	out := make([]lua.LValue, 0, t.Len())
	for i := 1; i <= t.Len(); i++ {
		out = append(out, t.RawGetInt(i))
	}
	return out
}

func luaStrings(v lua.LValue) []string {
	var out []string
	for _, item := range luaArray(v) {
		if s, ok := item.(lua.LString); ok && s != "" {
			out = append(out, string(s))
		}
	}
	return out
}
