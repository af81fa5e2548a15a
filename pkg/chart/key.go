package chart

import (
	"cmp"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Key is a category key that is either a number or a string. Numbers order
// before strings; numbers compare numerically and strings lexically.
type Key struct {
	num   float64
	str   string
	isNum bool
}

// Num returns a numeric key.
func Num(v float64) Key { return Key{num: v, isNum: true} }

// Str returns a string key.
func Str(s string) Key { return Key{str: s} }

// KeyOf converts a decoded document value to a key. Go numeric types become
// numeric keys, strings become string keys and anything else is formatted
// with fmt.
func KeyOf(v any) Key {
	switch x := v.(type) {
	case Key:
		return x
	case string:
		return Str(x)
	case float64:
		return Num(x)
	case float32:
		return Num(float64(x))
	case int:
		return Num(float64(x))
	case int64:
		return Num(float64(x))
	case int32:
		return Num(float64(x))
	case uint64:
		return Num(float64(x))
	case uint32:
		return Num(float64(x))
	case json.Number:
		if f, err := x.Float64(); err == nil {
			return Num(f)
		}
		return Str(x.String())
	case nil:
		return Str("")
	}
	return Str(fmt.Sprint(v))
}

// IsNumber reports whether k is numeric.
func (k Key) IsNumber() bool { return k.isNum }

// Number returns the numeric value of k, or NaN for string keys.
func (k Key) Number() float64 {
	if !k.isNum {
		return math.NaN()
	}
	return k.num
}

func (k Key) String() string {
	if k.isNum {
		return strconv.FormatFloat(k.num, 'f', -1, 64)
	}
	return k.str
}

// Compare orders a before b (-1), equal (0) or after (+1).
func Compare(a, b Key) int {
	switch {
	case a.isNum && b.isNum:
		return cmp.Compare(a.num, b.num)
	case a.isNum:
		return -1
	case b.isNum:
		return 1
	}
	return cmp.Compare(a.str, b.str)
}

func (k Key) MarshalJSON() ([]byte, error) {
	if k.isNum {
		return json.Marshal(k.num)
	}
	return json.Marshal(k.str)
}

func (k *Key) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("decode key: %w", err)
	}
	*k = KeyOf(v)
	return nil
}
