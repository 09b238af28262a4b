package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0

	// Ошибки формы спецификации (валидатор)
	SpecInfo                  Code = 1000
	SpecInvalidName           Code = 1001
	SpecDuplicateField        Code = 1002
	SpecUnresolvedDiff        Code = 1003
	SpecDuplicateSingleton    Code = 1004
	SpecDuplicateMethodName   Code = 1005
	SpecParamRoleNotAllowed   Code = 1006
	SpecParamUnknownMember    Code = 1007
	SpecParamTypeMismatch     Code = 1008
	SpecTriggerLazyState      Code = 1009
	SpecTriggerWithoutSlot    Code = 1010
	SpecSlotWithoutTrigger    Code = 1011
	SpecEventTypeMissing      Code = 1012
	SpecInjectionMissing      Code = 1013
	SpecNegativePoolSize      Code = 1014
	SpecPreallocateNoPool     Code = 1015
	SpecDefaultOnRequiredProp Code = 1016
	SpecMissingType           Code = 1017
	SpecDuplicateTypeVar      Code = 1018
	SpecParamUnnamed          Code = 1019
	SpecInvalidMountType      Code = 1020
	SpecDuplicateDiff         Code = 1021
	SpecReservedName          Code = 1022

	// Ошибки чтения спек-файлов
	IOInfo          Code = 4000
	IOLoadFileError Code = 4001
	IODecodeError   Code = 4002
	IOUnknownKey    Code = 4003
	IOBadValue      Code = 4004

	// Проект
	ProjInfo            Code = 5000
	ProjInvalidManifest Code = 5001
	ProjNoSpecs         Code = 5002
	ProjDuplicateSpec   Code = 5003

	// Наблюдаемость
	ObsInfo    Code = 6000
	ObsTimings Code = 6001
)

var (
	codeDescription = map[Code]string{
		UnknownCode:               "Unknown error",
		SpecInfo:                  "Spec information",
		SpecInvalidName:           "Invalid identifier",
		SpecDuplicateField:        "Duplicate field name",
		SpecUnresolvedDiff:        "Render diff references no prop or state",
		SpecDuplicateSingleton:    "Delegate method kind declared more than once",
		SpecDuplicateMethodName:   "Duplicate delegate method name",
		SpecParamRoleNotAllowed:   "Parameter role not allowed for method kind",
		SpecParamUnknownMember:    "Parameter references undeclared member",
		SpecParamTypeMismatch:     "Parameter type differs from member type",
		SpecTriggerLazyState:      "Trigger handler takes lazily-updatable state",
		SpecTriggerWithoutSlot:    "Trigger handler without trigger slot",
		SpecSlotWithoutTrigger:    "Trigger slot without trigger handler",
		SpecEventTypeMissing:      "Event handler does not declare its event type",
		SpecInjectionMissing:      "Injected member without injection descriptor",
		SpecNegativePoolSize:      "Pool size must not be negative",
		SpecPreallocateNoPool:     "Preallocation requires a positive pool size",
		SpecDefaultOnRequiredProp: "Default value on a required prop",
		SpecMissingType:           "Missing type",
		SpecDuplicateTypeVar:      "Duplicate type variable",
		SpecParamUnnamed:          "Unnamed parameter",
		SpecInvalidMountType:      "Unknown mount type",
		SpecDuplicateDiff:         "Render diff declared more than once",
		SpecReservedName:          "Name already used by generated code",
		IOInfo:                    "I/O information",
		IOLoadFileError:           "I/O load file error",
		IODecodeError:             "Spec file decode error",
		IOUnknownKey:              "Unknown key in spec file",
		IOBadValue:                "Invalid value in spec file",
		ProjInfo:                  "Project information",
		ProjInvalidManifest:       "Invalid project manifest",
		ProjNoSpecs:               "No spec files found",
		ProjDuplicateSpec:         "Duplicate spec name",
		ObsInfo:                   "Observability information",
		ObsTimings:                "Pipeline timings",
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("SPEC%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("PRJ%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("OBS%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
