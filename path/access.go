package path

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strconv"
)

// Get returns the value found by following p through container. The boolean
// is false when any segment is missing. An empty path returns container.
func Get(container any, p Path) (any, bool) {
	current := container
	for _, key := range p {
		switch c := current.(type) {
		case map[string]any:
			v, ok := c[key]
			if !ok {
				return nil, false
			}
			current = v
		case []any:
			i, ok := index(key, len(c))
			if !ok {
				return nil, false
			}
			current = c[i]
		default:
			v, ok := getReflect(current, key)
			if !ok {
				return nil, false
			}
			current = v
		}
	}
	return current, true
}

// Lookup is Get without the presence flag; missing values read as nil.
func Lookup(container any, p Path) any {
	v, _ := Get(container, p)
	return v
}

// Set returns a new value equal to container with value stored at p.
//
// Containers along p are shallow-copied; everything else is shared. Missing or
// nil intermediates are created as map[string]any. When the value already at p
// is Same as value, container itself is returned.
func Set(container any, p Path, value any) (any, error) {
	return set(container, p, 0, value)
}

func set(current any, p Path, depth int, value any) (any, error) {
	if depth == len(p) {
		return value, nil
	}
	key := p[depth]

	switch c := current.(type) {
	case nil:
		child, err := set(nil, p, depth+1, value)
		if err != nil {
			return nil, err
		}
		return map[string]any{key: child}, nil

	case map[string]any:
		existing, exists := c[key]
		child, err := set(existing, p, depth+1, value)
		if err != nil {
			return nil, err
		}
		if exists && Same(existing, child) {
			return c, nil
		}
		next := maps.Clone(c)
		if next == nil {
			next = make(map[string]any, 1)
		}
		next[key] = child
		return next, nil

	case []any:
		i, ok := index(key, len(c))
		if !ok {
			return nil, &SetError{Path: p[:depth+1], Type: "[]any", Err: ErrIndexOutOfRange}
		}
		child, err := set(c[i], p, depth+1, value)
		if err != nil {
			return nil, err
		}
		if Same(c[i], child) {
			return c, nil
		}
		next := slices.Clone(c)
		next[i] = child
		return next, nil

	default:
		return setReflect(current, p, depth, value)
	}
}

// getReflect reads key from maps with string keys and from slices of any
// element type.
func getReflect(current any, key string) (any, bool) {
	v := reflect.ValueOf(current)
	switch {
	case isStringMap(v):
		elem := v.MapIndex(reflect.ValueOf(key).Convert(v.Type().Key()))
		if !elem.IsValid() {
			return nil, false
		}
		return elem.Interface(), true
	case v.Kind() == reflect.Slice:
		i, ok := index(key, v.Len())
		if !ok {
			return nil, false
		}
		return v.Index(i).Interface(), true
	}
	return nil, false
}

// setReflect is set for typed containers. The new child must be assignable
// to the container's element type.
func setReflect(current any, p Path, depth int, value any) (any, error) {
	v := reflect.ValueOf(current)
	typeName := fmt.Sprintf("%T", current)
	where := p[:depth+1]

	switch {
	case isStringMap(v):
		key := reflect.ValueOf(p[depth]).Convert(v.Type().Key())
		existing := v.MapIndex(key)

		var existingValue any
		if existing.IsValid() {
			existingValue = existing.Interface()
		}
		child, err := set(existingValue, p, depth+1, value)
		if err != nil {
			return nil, err
		}
		if existing.IsValid() && Same(existingValue, child) {
			return current, nil
		}
		elem, ok := assignable(child, v.Type().Elem())
		if !ok {
			return nil, &SetError{Path: where, Type: typeName, Err: ErrElementType}
		}

		next := reflect.MakeMapWithSize(v.Type(), v.Len()+1)
		iter := v.MapRange()
		for iter.Next() {
			next.SetMapIndex(iter.Key(), iter.Value())
		}
		next.SetMapIndex(key, elem)
		return next.Interface(), nil

	case v.Kind() == reflect.Slice:
		i, ok := index(p[depth], v.Len())
		if !ok {
			return nil, &SetError{Path: where, Type: typeName, Err: ErrIndexOutOfRange}
		}
		existingValue := v.Index(i).Interface()
		child, err := set(existingValue, p, depth+1, value)
		if err != nil {
			return nil, err
		}
		if Same(existingValue, child) {
			return current, nil
		}
		elem, ok := assignable(child, v.Type().Elem())
		if !ok {
			return nil, &SetError{Path: where, Type: typeName, Err: ErrElementType}
		}

		next := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		reflect.Copy(next, v)
		next.Index(i).Set(elem)
		return next.Interface(), nil
	}

	return nil, &SetError{Path: where, Type: typeName, Err: ErrNotContainer}
}

func isStringMap(v reflect.Value) bool {
	return v.Kind() == reflect.Map && v.Type().Key().Kind() == reflect.String
}

func assignable(value any, to reflect.Type) (reflect.Value, bool) {
	if value == nil {
		switch to.Kind() {
		case reflect.Interface, reflect.Map, reflect.Slice, reflect.Pointer, reflect.Func, reflect.Chan:
			return reflect.Zero(to), true
		}
		return reflect.Value{}, false
	}
	v := reflect.ValueOf(value)
	if !v.Type().AssignableTo(to) {
		return reflect.Value{}, false
	}
	return v, true
}

func index(key string, length int) (int, bool) {
	i, err := strconv.Atoi(key)
	if err != nil || i < 0 || i >= length {
		return 0, false
	}
	return i, true
}
