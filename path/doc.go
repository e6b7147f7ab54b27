// Package path provides deep read and immutable write access to nested state
// values addressed by a sequence of keys.
//
// State trees are built from maps with string keys and from slices, addressed
// by decimal index. map[string]any and []any are walked directly; other map
// and slice types are walked through reflection, and a write into them must
// be assignable to their element type. Get never fails on missing segments,
// and Set never mutates its input: every container on the written path is
// copied while untouched subtrees are shared with the previous value.
//
//	s := map[string]any{"counter": 0, "log": []any{}}
//	next, err := path.Set(s, path.Path{"counter"}, 1)
//	// s["counter"] == 0, next.(map[string]any)["counter"] == 1
//	// next["log"] is the same slice as s["log"]
//
// # Identity
//
// Set returns its input unchanged when the value already stored at the path is
// Same as the new value. Same is reference identity for maps, slices, pointers,
// funcs and chans, and == for other comparable values. This makes a write of an
// unchanged value a true no-op, which callers rely on to detect that nothing
// changed across a sequence of writes.
package path
