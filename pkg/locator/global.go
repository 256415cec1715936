package locator

// Default is the process-wide registry. It is created empty at package
// initialization, lives for the whole process, and needs no teardown beyond
// an optional Close at exit.
//
// Default exists for the common single-registry process. Prefer passing an
// explicit *Registry, or carrying one with NewContext, so dependencies stay
// visible at call sites; Default is the fallback FromContext resolves to.
var Default = New()
