package caststate

import (
	"fmt"
	"time"
)

type valueKind int

const (
	kindAbsent valueKind = iota
	kindNumber
	kindInteger
	kindString
	kindDateTime
	kindUnsupported
)

// Value is an untyped metadata value reduced to the small set of kinds the
// coercion understands. It is built once at the metadata boundary so the
// rest of the mapping never touches raw any values.
type Value struct {
	kind valueKind
	num  float64
	str  string
	when time.Time
	raw  any
}

func absentValue() Value {
	return Value{kind: kindAbsent}
}

func dateTimeValue(t time.Time) Value {
	return Value{kind: kindDateTime, when: t}
}

func valueOf(v any) Value {
	switch t := v.(type) {
	case nil:
		return Value{kind: kindAbsent}
	case float64:
		return Value{kind: kindNumber, num: t}
	case float32:
		return Value{kind: kindNumber, num: float64(t)}
	case int:
		return Value{kind: kindInteger, num: float64(t)}
	case int32:
		return Value{kind: kindInteger, num: float64(t)}
	case int64:
		return Value{kind: kindInteger, num: float64(t)}
	case string:
		return Value{kind: kindString, str: t}
	case time.Time:
		return Value{kind: kindDateTime, when: t}
	default:
		return Value{kind: kindUnsupported, raw: v}
	}
}

// coerce converts a metadata value into a typed channel state. It is total:
// an unsupported kind degrades to Undef with a diagnostic naming the
// channel, it never aborts the rest of the update.
func (u *StatusUpdater) coerce(channel string, v Value) State {
	switch v.kind {
	case kindAbsent:
		return Undef
	case kindNumber, kindInteger:
		return DecimalState(v.num)
	case kindString:
		return StringState(v.str)
	case kindDateTime:
		return DateTimeState(v.when)
	default:
		u.Log().Warn().Str("Method", "coerce").Str("Channel", channel).Str("Type", fmt.Sprintf("%T", v.raw)).Msg("unsupported metadata value type")
		return Undef
	}
}
