package model

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ResType tags a prop with the kind of resource it may be resolved from.
type ResType uint8

const (
	ResNone ResType = iota
	ResString
	ResStringArray
	ResInt
	ResIntArray
	ResBool
	ResColor
	ResDimenSize
	ResDimenText
	ResDimenOffset
	ResFloat
	ResDrawable
)

var resTypeNames = [...]string{
	ResNone:        "NONE",
	ResString:      "STRING",
	ResStringArray: "STRING_ARRAY",
	ResInt:         "INT",
	ResIntArray:    "INT_ARRAY",
	ResBool:        "BOOL",
	ResColor:       "COLOR",
	ResDimenSize:   "DIMEN_SIZE",
	ResDimenText:   "DIMEN_TEXT",
	ResDimenOffset: "DIMEN_OFFSET",
	ResFloat:       "FLOAT",
	ResDrawable:    "DRAWABLE",
}

func (r ResType) String() string {
	if int(r) < len(resTypeNames) {
		return resTypeNames[r]
	}
	return "NONE"
}

// ParseResType accepts the upper- or lower-case resource type name.
func ParseResType(s string) (ResType, bool) {
	if s == "" {
		return ResNone, true
	}
	for i, name := range resTypeNames {
		if strings.EqualFold(name, s) {
			return ResType(i), true
		}
	}
	return ResNone, false
}

// Member is a declared member of a spec. Role selects which of the
// role-specific attributes are meaningful.
type Member struct {
	Role Role
	Name string
	Type Type
	Doc  string

	// Prop only.
	ResType  ResType
	Optional bool
	Default  string // default value expression, "" when none

	// State only.
	CanUpdateLazily bool
}

// HasDefault reports whether a prop initializes its field at construction.
func (m Member) HasDefault() bool {
	return m.Role == RoleProp && m.Default != ""
}

// FieldName is the name of the generated field holding the member. Event
// slots are named after their event (ClickEvent -> clickEventHandler).
func (m Member) FieldName() string {
	switch m.Role {
	case RoleEventHandler:
		return LowerFirst(m.Name) + "Handler"
	case RoleEventTrigger:
		return LowerFirst(m.Name) + "Trigger"
	default:
		return m.Name
	}
}

// LowerFirst lower-cases the first rune of s.
func LowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

// SimpleName strips a package or outer qualifier (pkg.ClickEvent -> ClickEvent).
func SimpleName(s string) string {
	if i := strings.LastIndexByte(s, '.'); i >= 0 {
		return s[i+1:]
	}
	return s
}
