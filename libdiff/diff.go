package libdiff

import (
	"slices"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/signadot/cram/encode"
	"github.com/signadot/cram/value"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff returns the changes that turn from into to, or nil if they are equal.
func Diff(from, to *value.Value) []Change {
	return diff(orNull(from), orNull(to), "")
}

func orNull(v *value.Value) *value.Value {
	if v == nil {
		return value.Null()
	}
	return v
}

func diff(from, to *value.Value, path string) []Change {
	switch {
	case from.Type == value.MappingType && to.Type == value.MappingType:
		return DiffMapping(from, to, path)
	case from.Type == value.ArrayType && to.Type == value.ArrayType:
		return DiffArray(from, to, path)
	case value.Equal(from, to):
		return nil
	}
	return []Change{{Op: OpReplace, Path: path, From: from, To: to}}
}

// DiffMapping compares two mappings key by key in sorted key order.
func DiffMapping(from, to *value.Value, path string) []Change {
	fromKeys, toKeys := sortedIndex(from), sortedIndex(to)
	var res []Change
	fi, ti := 0, 0
	for fi < len(fromKeys) || ti < len(toKeys) {
		var c int
		switch {
		case fi == len(fromKeys):
			c = 1
		case ti == len(toKeys):
			c = -1
		default:
			c = compareStrings(from.Fields[fromKeys[fi]], to.Fields[toKeys[ti]])
		}
		switch {
		case c < 0:
			i := fromKeys[fi]
			res = append(res, Change{Op: OpRemove, Path: child(path, from.Fields[i]), From: orNull(from.Values[i])})
			fi++
		case c > 0:
			i := toKeys[ti]
			res = append(res, Change{Op: OpAdd, Path: child(path, to.Fields[i]), To: orNull(to.Values[i])})
			ti++
		default:
			i, j := fromKeys[fi], toKeys[ti]
			res = append(res, diff(orNull(from.Values[i]), orNull(to.Values[j]), child(path, from.Fields[i]))...)
			fi++
			ti++
		}
	}
	return res
}

func compareStrings(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func sortedIndex(v *value.Value) []int {
	idx := make([]int, len(v.Fields))
	for i := range idx {
		idx[i] = i
	}
	slices.SortFunc(idx, func(a, b int) int {
		return compareStrings(v.Fields[a], v.Fields[b])
	})
	return idx
}

// DiffArray aligns the elements of two arrays with a sequence diff. A run of
// removed elements followed by a run of added ones is compared pairwise.
func DiffArray(from, to *value.Value, path string) []Change {
	runeMap := map[string]rune{}
	fromRunes, ok := mapElementsTo(runeMap, from.Values)
	toRunes, ok2 := mapElementsTo(runeMap, to.Values)
	if !ok || !ok2 {
		return diffArrayByIndex(from, to, path)
	}
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)

	var (
		res       []Change
		dels, ins []int
		fi, ti    int
		// ci is the index in the array as edited so far
		ci int
	)
	flush := func() {
		n := min(len(dels), len(ins))
		for k := 0; k < n; k++ {
			res = append(res, diff(orNull(from.Values[dels[k]]), orNull(to.Values[ins[k]]), child(path, strconv.Itoa(ci)))...)
			ci++
		}
		for _, i := range dels[n:] {
			res = append(res, Change{Op: OpRemove, Path: child(path, strconv.Itoa(ci)), From: orNull(from.Values[i])})
		}
		for _, i := range ins[n:] {
			res = append(res, Change{Op: OpAdd, Path: child(path, strconv.Itoa(ci)), To: orNull(to.Values[i])})
			ci++
		}
		dels, ins = dels[:0], ins[:0]
	}
	for i := range diffs {
		d := &diffs[i]
		n := utf8.RuneCountInString(d.Text)
		switch d.Type {
		case diffpatch.DiffDelete:
			for range n {
				dels = append(dels, fi)
				fi++
			}
		case diffpatch.DiffInsert:
			for range n {
				ins = append(ins, ti)
				ti++
			}
		case diffpatch.DiffEqual:
			flush()
			fi += n
			ti += n
			ci += n
		}
	}
	flush()
	return res
}

func diffArrayByIndex(from, to *value.Value, path string) []Change {
	var res []Change
	n := min(len(from.Values), len(to.Values))
	for i := 0; i < n; i++ {
		res = append(res, diff(orNull(from.Values[i]), orNull(to.Values[i]), child(path, strconv.Itoa(i)))...)
	}
	for _, elt := range from.Values[n:] {
		res = append(res, Change{Op: OpRemove, Path: child(path, strconv.Itoa(n)), From: orNull(elt)})
	}
	for i := n; i < len(to.Values); i++ {
		res = append(res, Change{Op: OpAdd, Path: child(path, strconv.Itoa(i)), To: orNull(to.Values[i])})
	}
	return res
}

// mapElementsTo assigns each distinct element a rune, skipping the
// surrogate range which does not survive conversion to string.
func mapElementsTo(m map[string]rune, vs []*value.Value) ([]rune, bool) {
	rs := make([]rune, len(vs))
	for i, v := range vs {
		k := canonical(v)
		r, ok := m[k]
		if !ok {
			r = rune(len(m))
			if r >= 0xd800 {
				r += 0x800
			}
			if r > unicode.MaxRune {
				return nil, false
			}
			m[k] = r
		}
		rs[i] = r
	}
	return rs, true
}

// canonical renders v with sorted mapping keys, so that values that are
// Equal render the same.
func canonical(v *value.Value) string {
	return encode.MustString(sortKeys(orNull(v)))
}

func sortKeys(v *value.Value) *value.Value {
	switch v.Type {
	case value.MappingType:
		res := &value.Value{Type: value.MappingType}
		for _, i := range sortedIndex(v) {
			res.Fields = append(res.Fields, v.Fields[i])
			res.Values = append(res.Values, sortKeys(orNull(v.Values[i])))
		}
		return res
	case value.ArrayType:
		vs := make([]*value.Value, len(v.Values))
		for i, elt := range v.Values {
			vs[i] = sortKeys(orNull(elt))
		}
		return value.FromSlice(vs)
	}
	return v
}
