package construct

import (
	"errors"
	"fmt"
)

// Mode selects which tags a parse honors.
type Mode int

const (
	// ModeUnsafe honors every tag; unknown local tags pass their underlying
	// value through.
	ModeUnsafe Mode = iota
	// ModeFull honors all standard tags and fails on unknown ones.
	ModeFull
	// ModeSafe restricts construction to primitive types plus explicitly
	// bound extension tags; anything else is discarded.
	ModeSafe
)

var ErrBadMode = errors.New("bad mode")

func ParseMode(v string) (Mode, error) {
	m, ok := map[string]Mode{
		"u":      ModeUnsafe,
		"unsafe": ModeUnsafe,
		"f":      ModeFull,
		"full":   ModeFull,
		"s":      ModeSafe,
		"safe":   ModeSafe,
	}[v]
	if ok {
		return m, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadMode, v)
}

func (m Mode) String() string {
	d, err := m.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (m Mode) MarshalText() ([]byte, error) {
	switch m {
	case ModeUnsafe:
		return []byte("unsafe"), nil
	case ModeFull:
		return []byte("full"), nil
	case ModeSafe:
		return []byte("safe"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a mode>", m)
	}
}

func (m *Mode) UnmarshalText(d []byte) error {
	pm, err := ParseMode(string(d))
	if err != nil {
		return err
	}
	*m = pm
	return nil
}

func Modes() []Mode {
	return []Mode{ModeUnsafe, ModeFull, ModeSafe}
}
