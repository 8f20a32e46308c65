// Package songscript lets songs and instrument presets be authored in
// Lua instead of Go source, restoring the macro-like authoring
// convenience spec.md §9 notes the source language had without needing
// Go macros. The Lua builtins are note, rest, defbpm and defsong, each a
// thin call into the plain siren constructors; instrument presets such
// as PluckSquare are Go functions only and are not exposed to Lua. Grounded in the
// teacher's embedding style and gopher-lua's registered-Go-function
// idiom.
package songscript

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/sqrew/siren"
)

// Script holds every song a Lua file defined via defsong, keyed by name.
type Script struct {
	songs map[string][]siren.Note
}

// Song returns the note list defsong registered under name, and whether
// it exists.
func (s *Script) Song(name string) ([]siren.Note, bool) {
	notes, ok := s.songs[name]
	return notes, ok
}

// Load runs a Lua file and collects every defsong call it makes.
func Load(path string) (*Script, error) {
	s := &Script{songs: map[string][]siren.Note{}}

	L := lua.NewState()
	defer L.Close()

	registerBuiltins(L, s)

	if err := L.DoFile(path); err != nil {
		return nil, fmt.Errorf("songscript: %w", err)
	}
	return s, nil
}

func registerBuiltins(L *lua.LState, s *Script) {
	L.SetGlobal("note", L.NewFunction(luaNote))
	L.SetGlobal("rest", L.NewFunction(luaRest))
	L.SetGlobal("defbpm", L.NewFunction(luaDefBPM))
	L.SetGlobal("defsong", L.NewFunction(func(L *lua.LState) int {
		return luaDefSong(L, s)
	}))
}

// luaNote implements note(freq_hz, duration_ms) -> note table handle.
func luaNote(L *lua.LState) int {
	freq := float32(L.CheckNumber(1))
	dur := float64(L.CheckNumber(2))
	L.Push(noteToTable(L, siren.NewNote(freq, dur)))
	return 1
}

// luaRest implements rest(duration_ms) -> note table handle.
func luaRest(L *lua.LState) int {
	dur := float64(L.CheckNumber(1))
	L.Push(noteToTable(L, siren.Rest(dur)))
	return 1
}

// luaDefBPM implements defbpm(bpm) -> a table of named durations bound
// to that tempo (whole/half/quarter/eighth/sixteenth), mirroring
// siren.Durations.
func luaDefBPM(L *lua.LState) int {
	bpm := float64(L.CheckNumber(1))
	d := siren.NewDurations(bpm)

	t := L.NewTable()
	t.RawSetString("whole", lua.LNumber(d.Whole()))
	t.RawSetString("half", lua.LNumber(d.Half()))
	t.RawSetString("quarter", lua.LNumber(d.Quarter()))
	t.RawSetString("eighth", lua.LNumber(d.Eighth()))
	t.RawSetString("sixteenth", lua.LNumber(d.Sixteenth()))
	L.Push(t)
	return 1
}

// luaDefSong implements defsong(name, {note, note, ...}), registering
// the note list under name in s.
func luaDefSong(L *lua.LState, s *Script) int {
	name := L.CheckString(1)
	tbl := L.CheckTable(2)

	var notes []siren.Note
	tbl.ForEach(func(_, v lua.LValue) {
		nt, ok := v.(*lua.LTable)
		if !ok {
			return
		}
		notes = append(notes, tableToNote(nt))
	})
	s.songs[name] = notes
	return 0
}

func noteToTable(L *lua.LState, n siren.Note) *lua.LTable {
	t := L.NewTable()
	t.RawSetString("freq_hz", lua.LNumber(n.FreqHz))
	t.RawSetString("duration_ms", lua.LNumber(n.DurationMs))
	return t
}

func tableToNote(t *lua.LTable) siren.Note {
	freq := float32(lua.LVAsNumber(t.RawGetString("freq_hz")))
	dur := float64(lua.LVAsNumber(t.RawGetString("duration_ms")))
	return siren.NewNote(freq, dur)
}
