package hm

import "github.com/fen-lang/fen/pkg/types"

// Env is a type environment: names in scope mapped to their schemes.
type Env interface {
	SchemeOf(name string) (*Scheme, bool)
	Add(name string, scheme *Scheme) Env
	Remove(name string) Env
	Clone() Env
	FreeTypeVars(b types.Builder) VarSet
}

// SimpleEnv is a map-backed Env.
type SimpleEnv struct {
	schemes map[string]*Scheme
}

var _ Env = (*SimpleEnv)(nil)

func NewSimpleEnv() *SimpleEnv {
	return &SimpleEnv{
		schemes: make(map[string]*Scheme),
	}
}

func (env *SimpleEnv) SchemeOf(name string) (*Scheme, bool) {
	scheme, ok := env.schemes[name]
	return scheme, ok
}

func (env *SimpleEnv) Add(name string, scheme *Scheme) Env {
	env.schemes[name] = scheme
	return env
}

func (env *SimpleEnv) Remove(name string) Env {
	out := NewSimpleEnv()
	for n, scheme := range env.schemes {
		if n != name {
			out.schemes[n] = scheme
		}
	}
	return out
}

func (env *SimpleEnv) Clone() Env {
	out := NewSimpleEnv()
	for n, scheme := range env.schemes {
		out.schemes[n] = scheme
	}
	return out
}

func (env *SimpleEnv) FreeTypeVars(b types.Builder) VarSet {
	var ftv VarSet
	for _, scheme := range env.schemes {
		schemeFtv := scheme.FreeTypeVars(b)
		if len(schemeFtv) == 0 {
			continue
		}
		if ftv == nil {
			ftv = make(VarSet)
		}
		for id := range schemeFtv {
			ftv[id] = true
		}
	}
	return ftv
}
