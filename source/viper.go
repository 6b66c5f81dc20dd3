// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package source

import (
	"strings"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// Viper represents a Source backed by a viper instance.
type Viper struct {
	v *viper.Viper
}

// FromViper returns a Source which applies every key known to v.
// Viper keys are case insensitive so they are upper cased, and
// nested keys are joined with an underscore e.g. "db.host" becomes "DB_HOST".
func FromViper(v *viper.Viper) Viper {
	return Viper{v: v}
}

// Apply implements the Source interface.
func (src Viper) Apply(store Store) error {
	for _, k := range src.v.AllKeys() {
		name := strings.ToUpper(strings.ReplaceAll(k, ".", "_"))

		v, err := scalar(src.v.Get(k))
		if err != nil {
			return NestedValueError{Key: name}
		}

		err = store.Set(name, v)
		if err != nil {
			return err
		}
	}
	return nil
}

func scalar(v any) (any, error) {
	switch v.(type) {
	case nil, string, bool, time.Duration,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return v, nil
	default:
		return cast.ToStringE(v)
	}
}
