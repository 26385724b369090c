package subscript

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrSyntax is returned by Parse for text that is not an index or a slice.
var ErrSyntax = errors.New("subscript: invalid syntax")

// Parse reads the text form produced by String. Surrounding brackets and
// whitespace are optional, so "[1:3]", "1:3" and " [ -2 ] " all parse.
// Slice steps are not supported.
func Parse(text string) (Subscript, error) {
	t := strings.TrimSpace(text)
	if strings.HasPrefix(t, "[") != strings.HasSuffix(t, "]") {
		return Subscript{}, fmt.Errorf("%w: unbalanced brackets in %q", ErrSyntax, text)
	}
	t = strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(t, "["), "]"))
	if t == "" {
		return Subscript{}, fmt.Errorf("%w: empty subscript", ErrSyntax)
	}

	parts := strings.Split(t, ":")
	switch len(parts) {
	case 1:
		v, err := strconv.Atoi(t)
		if err != nil {
			return Subscript{}, fmt.Errorf("%w: %q is not an integer", ErrSyntax, t)
		}
		return Index(v), nil
	case 2:
		start, err := parseBound(parts[0])
		if err != nil {
			return Subscript{}, err
		}
		end, err := parseBound(parts[1])
		if err != nil {
			return Subscript{}, err
		}
		return Slice(start, end), nil
	default:
		return Subscript{}, fmt.Errorf("%w: slice steps are not supported in %q", ErrSyntax, text)
	}
}

func parseBound(s string) (Bound, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Missing(), nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return Bound{}, fmt.Errorf("%w: %q is not an integer", ErrSyntax, s)
	}
	return At(v), nil
}

// wireSubscript is the JSON shape:
//
//	{"kind":"index","index":-1}
//	{"kind":"slice","start":1,"end":null}
type wireSubscript struct {
	Kind  string `json:"kind"`
	Index *int   `json:"index,omitempty"`
	Start *int   `json:"start"`
	End   *int   `json:"end"`
}

// MarshalJSON implements json.Marshaler.
func (s Subscript) MarshalJSON() ([]byte, error) {
	if s.Kind == KindIndex {
		return json.Marshal(struct {
			Kind  string `json:"kind"`
			Index int    `json:"index"`
		}{Kind: s.Kind.String(), Index: s.Index})
	}
	return json.Marshal(wireSubscript{
		Kind:  s.Kind.String(),
		Start: boundPtr(s.Start),
		End:   boundPtr(s.End),
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Subscript) UnmarshalJSON(data []byte) error {
	var w wireSubscript
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	switch w.Kind {
	case "index":
		if w.Index == nil {
			return fmt.Errorf("%w: index subscript without index", ErrSyntax)
		}
		*s = Index(*w.Index)
	case "slice":
		*s = Slice(ptrBound(w.Start), ptrBound(w.End))
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrSyntax, w.Kind)
	}
	return nil
}

func boundPtr(b Bound) *int {
	if !b.Present {
		return nil
	}
	v := b.Value
	return &v
}

func ptrBound(p *int) Bound {
	if p == nil {
		return Missing()
	}
	return At(*p)
}
