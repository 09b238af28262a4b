package gen

import (
	"fmt"

	"specc/internal/model"
)

var mountTypes = map[string]string{
	"none":     runtimePkg + ".MountNone",
	"view":     runtimePkg + ".MountView",
	"drawable": runtimePkg + ".MountDrawable",
}

func constMethod(name, result, value string) Method {
	return Method{Recv: recv, Name: name, Results: result, Body: []string{"return " + value}}
}

// genFlags emits accessors for the spec-level flags that differ from the
// runtime defaults. Mount-only flags are skipped for render specs.
func genFlags(s model.Spec) (Fragment, error) {
	f := Empty()
	if s.IsPureRender() {
		f.Methods = append(f.Methods, constMethod("IsPureRender", "bool", "true"))
	}
	ms, ok := s.(*model.MountSpec)
	if !ok {
		return f, nil
	}
	if ms.CanMountIncrementally() {
		f.Methods = append(f.Methods, constMethod("CanMountIncrementally", "bool", "true"))
	}
	if ms.ShouldUseDisplayList() {
		f.Methods = append(f.Methods, constMethod("ShouldUseDisplayList", "bool", "true"))
	}
	if ms.PoolSize() > 0 {
		f.Methods = append(f.Methods, constMethod("PoolSize", "int", fmt.Sprint(ms.PoolSize())))
	}
	if ms.CanPreallocate() {
		f.Methods = append(f.Methods, constMethod("CanPreallocate", "bool", "true"))
	}
	mt, known := mountTypes[ms.MountType()]
	if !known {
		return Fragment{}, fault(s.SpecName(), "flags", "unknown mount type %q", ms.MountType())
	}
	f.Methods = append(f.Methods, constMethod("MountType", runtimePkg+".MountType", mt))
	return f, nil
}
