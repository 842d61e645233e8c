package entitystore

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

// ErrCorruptSnapshot is returned when a persisted snapshot cannot be decoded.
var ErrCorruptSnapshot = errors.New("corrupt snapshot")

// envelope is the persisted form of a store:
//
//	{"state":{"<field>":[...records...]},"version":N}
type envelope[T any] struct {
	State   map[string][]T `json:"state"`
	Version int            `json:"version"`
}

func encodeSnapshot[T any](records []T, field string, version int) (string, error) {
	if records == nil {
		records = []T{}
	}
	data, err := json.Marshal(envelope[T]{
		State:   map[string][]T{field: records},
		Version: version,
	})
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func decodeSnapshot[T any](raw, field string) ([]T, int, error) {
	if !gjson.Valid(raw) {
		return nil, 0, fmt.Errorf("%w: invalid JSON", ErrCorruptSnapshot)
	}

	list := gjson.Get(raw, "state."+field)
	if !list.IsArray() {
		return nil, 0, fmt.Errorf("%w: state.%s is not a list", ErrCorruptSnapshot, field)
	}

	records := []T{}
	if err := json.Unmarshal([]byte(list.Raw), &records); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}
	return records, int(gjson.Get(raw, "version").Int()), nil
}
