// Package codecs provides ready-made codecs for common kinds: UUIDs,
// timestamps, durations and raw bytes. They are plain codec.Codec values;
// register the ones you need, or All of them.
package codecs

import (
	"encoding/base64"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/signadot/tagtree/codec"
)

// UUID converts uuid.UUID values under the name "uuid", with the
// canonical hyphenated form as body.
func UUID() codec.Codec {
	return codec.Of[uuid.UUID]("uuid",
		func(u uuid.UUID) (any, error) {
			return u.String(), nil
		},
		func(p any) (uuid.UUID, error) {
			s, err := bodyString("uuid", p)
			if err != nil {
				return uuid.Nil, err
			}
			return uuid.Parse(s)
		})
}

// Time converts time.Time values under the name "dt", with an RFC 3339
// nanosecond body. Locations other than UTC and fixed offsets do not
// survive the round trip.
func Time() codec.Codec {
	return codec.Of[time.Time]("dt",
		func(t time.Time) (any, error) {
			return t.Format(time.RFC3339Nano), nil
		},
		func(p any) (time.Time, error) {
			s, err := bodyString("dt", p)
			if err != nil {
				return time.Time{}, err
			}
			return time.Parse(time.RFC3339Nano, s)
		})
}

// Duration converts time.Duration values under the name "dur". Its kind
// has an integer underlying type but is not a predeclared integer type,
// so registered durations tag while plain integers pass through.
func Duration() codec.Codec {
	return codec.Of[time.Duration]("dur",
		func(d time.Duration) (any, error) {
			return d.String(), nil
		},
		func(p any) (time.Duration, error) {
			s, err := bodyString("dur", p)
			if err != nil {
				return 0, err
			}
			return time.ParseDuration(s)
		})
}

// Binary converts []byte values under the name "bin", with a standard
// base64 body.
func Binary() codec.Codec {
	return codec.Of[[]byte]("bin",
		func(b []byte) (any, error) {
			return base64.StdEncoding.EncodeToString(b), nil
		},
		func(p any) ([]byte, error) {
			s, err := bodyString("bin", p)
			if err != nil {
				return nil, err
			}
			return base64.StdEncoding.DecodeString(s)
		})
}

// All returns every builtin codec, for registry construction.
func All() []codec.Codec {
	return []codec.Codec{UUID(), Time(), Duration(), Binary()}
}

func bodyString(name string, p any) (string, error) {
	s, ok := p.(string)
	if !ok {
		return "", fmt.Errorf("codec %q: expected string body, got %T", name, p)
	}
	return s, nil
}
