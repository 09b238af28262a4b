package gen

import "fmt"

// Fault is an internal consistency error: a generator observed a spec that
// validation should have rejected. It aborts generation of that spec.
type Fault struct {
	Spec      string
	Generator string
	Detail    string
}

func (f *Fault) Error() string {
	return fmt.Sprintf("internal fault: generator %s on %s: %s", f.Generator, f.Spec, f.Detail)
}

func fault(spec, generator, format string, args ...any) *Fault {
	return &Fault{Spec: spec, Generator: generator, Detail: fmt.Sprintf(format, args...)}
}
