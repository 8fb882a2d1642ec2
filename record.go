package driveops

import (
	"maps"
	"slices"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Record is the generic shape every result is projected into.
// Keys keep the order in which fields were extracted, and that order is preserved when a Record is marshaled to JSON.
//
// Values are string, int64, float64, bool, []string, []int64, *Record, or []*Record.
// String maps of the SDK become nested Records with their keys in sorted order.
type Record = orderedmap.OrderedMap[string, any]

// NewRecord returns an empty Record.
func NewRecord() *Record {
	return orderedmap.New[string, any]()
}

// RecordKeys returns the keys of r in insertion order.
func RecordKeys(r *Record) []string {
	if r == nil {
		return nil
	}
	keys := make([]string, 0, r.Len())
	for pair := r.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// RecordString returns the string value stored under key, or "" if it is absent or not a string.
func RecordString(r *Record, key string) string {
	if r == nil {
		return ""
	}
	v, ok := r.Get(key)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// RecordGet returns the value stored under a dotted key path, descending into nested records.
func RecordGet(r *Record, path ...string) (value any, found bool) {
	current := r
	for i, key := range path {
		if current == nil {
			return nil, false
		}
		v, ok := current.Get(key)
		if !ok {
			return nil, false
		}
		if i == len(path)-1 {
			return v, true
		}
		current, ok = v.(*Record)
		if !ok {
			return nil, false
		}
	}
	return nil, false
}

func putString(r *Record, key, value string) {
	if value != "" {
		r.Set(key, value)
	}
}

func putInt(r *Record, key string, value int64) {
	if value != 0 {
		r.Set(key, value)
	}
}

func putFloat(r *Record, key string, value float64) {
	if value != 0 {
		r.Set(key, value)
	}
}

func putBool(r *Record, key string, value bool) {
	if value {
		r.Set(key, value)
	}
}

func putStrings(r *Record, key string, value []string) {
	if len(value) != 0 {
		r.Set(key, append([]string{}, value...))
	}
}

func putInts(r *Record, key string, value []int64) {
	if len(value) != 0 {
		r.Set(key, append([]int64{}, value...))
	}
}

func putStringMap(r *Record, key string, value map[string]string) {
	if len(value) == 0 {
		return
	}
	m := NewRecord()
	for _, k := range slices.Sorted(maps.Keys(value)) {
		m.Set(k, value[k])
	}
	r.Set(key, m)
}

func putRecord(r *Record, key string, value *Record) {
	if value != nil && value.Len() != 0 {
		r.Set(key, value)
	}
}

func putRecords(r *Record, key string, value []*Record) {
	if len(value) != 0 {
		r.Set(key, value)
	}
}

func mapAll[T any](items []*T, mapper func(*T) *Record) []*Record {
	var records []*Record
	for _, item := range items {
		if item == nil {
			continue
		}
		records = append(records, mapper(item))
	}
	return records
}
