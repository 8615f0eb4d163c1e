// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package hasher

import (
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"
)

// TimeLayout is the fixed-width layout used for every time.Time value.
// Fixed width keeps the id and timestamp boundaries unambiguous inside the
// concatenated hash input.
const TimeLayout = "2006-01-02T15:04:05.000000000Z"

var timeType = reflect.TypeOf(time.Time{})

// Canonicalize renders v in its canonical string form.
//
// Structurally equal values always produce the same string, regardless of
// the construction order of their maps or the declaration order of their
// struct fields. Returns a *HashingError if v (or anything nested in it) has
// no canonical form.
func Canonicalize(v any) (string, error) {
	w := &canonicalWriter{}
	if err := w.write(reflect.ValueOf(v)); err != nil {
		return "", err
	}
	return w.b.String(), nil
}

// canonicalWriter accumulates the canonical form. visiting holds the
// references on the current path; meeting one again means v is cyclic.
type canonicalWriter struct {
	b        strings.Builder
	visiting map[visitKey]struct{}
}

type visitKey struct {
	ptr uintptr
	typ reflect.Type
	len int
}

// enter marks v as being on the current path. The returned func removes it,
// so a value shared by siblings is written every time it appears.
func (w *canonicalWriter) enter(v reflect.Value) (func(), error) {
	key := visitKey{ptr: v.Pointer(), typ: v.Type()}
	if v.Kind() == reflect.Slice {
		key.len = v.Len()
	}
	if _, ok := w.visiting[key]; ok {
		return nil, newHashingError(v, "cyclic value")
	}
	if w.visiting == nil {
		w.visiting = make(map[visitKey]struct{})
	}
	w.visiting[key] = struct{}{}
	return func() { delete(w.visiting, key) }, nil
}

type keyedValue struct {
	key   string
	value reflect.Value
}

func (w *canonicalWriter) write(v reflect.Value) error {
	b := &w.b
	if !v.IsValid() {
		b.WriteString("{}")
		return nil
	}

	if v.Type() == timeType {
		t := v.Interface().(time.Time)
		b.WriteString(t.UTC().Format(TimeLayout))
		return nil
	}

	switch v.Kind() {
	case reflect.Bool:
		b.WriteString(strconv.FormatBool(v.Bool()))

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		b.WriteString(strconv.FormatInt(v.Int(), 10))

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		b.WriteString(strconv.FormatUint(v.Uint(), 10))

	case reflect.Float32:
		b.WriteString(strconv.FormatFloat(v.Float(), 'f', -1, 32))
	case reflect.Float64:
		b.WriteString(strconv.FormatFloat(v.Float(), 'f', -1, 64))

	case reflect.String:
		// json.Number lands here too, so decoded token ids canonicalize
		// exactly like the integers they were encoded from.
		b.WriteString(v.String())

	case reflect.Interface:
		if v.IsNil() {
			b.WriteString("{}")
			return nil
		}
		return w.write(v.Elem())

	case reflect.Pointer:
		if v.IsNil() {
			b.WriteString("{}")
			return nil
		}
		leave, err := w.enter(v)
		if err != nil {
			return err
		}
		defer leave()
		return w.write(v.Elem())

	case reflect.Slice:
		if v.Len() > 0 {
			leave, err := w.enter(v)
			if err != nil {
				return err
			}
			defer leave()
		}
		return w.writeList(v)

	case reflect.Array:
		return w.writeList(v)

	case reflect.Map:
		if v.Len() > 0 {
			leave, err := w.enter(v)
			if err != nil {
				return err
			}
			defer leave()
		}
		entries, err := mapEntries(v)
		if err != nil {
			return err
		}
		return w.writeObject(entries)

	case reflect.Struct:
		return w.writeObject(structEntries(v))

	default:
		return newHashingError(v, "unsupported kind "+v.Kind().String())
	}

	return nil
}

func (w *canonicalWriter) writeList(v reflect.Value) error {
	w.b.WriteByte('[')
	for i := 0; i < v.Len(); i++ {
		if i > 0 {
			w.b.WriteByte(',')
		}
		if err := w.write(v.Index(i)); err != nil {
			return err
		}
	}
	w.b.WriteByte(']')
	return nil
}

func (w *canonicalWriter) writeObject(entries []keyedValue) error {
	b := &w.b
	sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })

	b.WriteByte('{')
	for i, e := range entries {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(e.key)
		b.WriteString(`":`)
		if err := w.write(e.value); err != nil {
			return err
		}
	}
	b.WriteByte('}')
	return nil
}

func mapEntries(v reflect.Value) ([]keyedValue, error) {
	entries := make([]keyedValue, 0, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		key, err := mapKey(iter.Key())
		if err != nil {
			return nil, err
		}
		entries = append(entries, keyedValue{key: key, value: iter.Value()})
	}
	return entries, nil
}

func mapKey(k reflect.Value) (string, error) {
	for k.Kind() == reflect.Interface && !k.IsNil() {
		k = k.Elem()
	}

	switch k.Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		w := &canonicalWriter{}
		if err := w.write(k); err != nil {
			return "", err
		}
		return w.b.String(), nil
	default:
		return "", newHashingError(k, "map key must be a string, number or bool")
	}
}

// structEntries lists exported fields under their JSON names so that a
// struct and the map decoded from its JSON encoding canonicalize alike.
func structEntries(v reflect.Value) []keyedValue {
	t := v.Type()
	entries := make([]keyedValue, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		name := field.Name
		if tag, ok := field.Tag.Lookup("json"); ok {
			tagName, _, _ := strings.Cut(tag, ",")
			if tagName == "-" {
				continue
			}
			if tagName != "" {
				name = tagName
			}
		}

		entries = append(entries, keyedValue{key: name, value: v.Field(i)})
	}
	return entries
}

func newHashingError(v reflect.Value, reason string) *HashingError {
	e := &HashingError{Type: v.Type().String(), Reason: reason}
	if v.CanInterface() {
		e.Value = v.Interface()
	}
	return e
}
