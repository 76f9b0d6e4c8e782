// Package merge implements the structural deep merge used by inheritance
// resolution.
package merge

// Deep merges overlay over base and returns the combined tree.
//
// When both sides are mappings the result is a fresh mapping: keys present in
// both with mapping values on both sides merge recursively, otherwise the
// overlay's value wins. When either side is not a mapping, overlay replaces
// base wholesale; sequences are never concatenated. Neither input is
// mutated.
func Deep(overlay, base any) any {
	om, ok := overlay.(map[string]any)
	bm, bok := base.(map[string]any)
	if !ok || !bok {
		return overlay
	}
	res := make(map[string]any, len(bm)+len(om))
	for k, v := range bm {
		res[k] = v
	}
	for k, ov := range om {
		bv, present := res[k]
		if present && isMap(ov) && isMap(bv) {
			res[k] = Deep(ov, bv)
			continue
		}
		res[k] = ov
	}
	return res
}

func isMap(v any) bool {
	_, ok := v.(map[string]any)
	return ok
}
