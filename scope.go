// scope.go — the lexical-scope arena.
//
// Scopes (variable-binding frames) do not live behind Go pointers: they live
// in an arena owned by the interpreter and are addressed by ScopeRef, a
// generation-checked handle. A ScopeRef is deliberately non-owning — holding
// one keeps nothing alive. That breaks the reference cycle between a lambda
// and the frame it was defined in: the lambda stores only a handle to its
// defining frame, while the frame that is kept alive is tracked (strongly)
// by whichever lambda allocated it, via an explicit liveness counter.
//
// The counter protocol:
//
//   - creating a lambda inside a frame retains that frame;
//   - evaluating inside a frame retains it for the duration (fork/release
//     in interpreter.go), so an active frame is never reclaimed mid-call;
//   - reclaiming a frame (Free) releases, once per lambda, the frames
//     captured by lambdas bound inside it.
//
// A frame whose counter is <= 0 is unreachable from the program and is
// reclaimed lazily, at the next call of the lambda that allocated it (see
// Lambda.Call). After reclamation the slot's generation is bumped, so stale
// handles fail Alive instead of observing a recycled frame.
package scheme

// ScopeRef is a handle into a Frames arena. The zero ScopeRef refers to no
// frame and is never Alive; it doubles as the "no parent" marker of a root
// frame.
type ScopeRef struct {
	index int
	gen   uint32
}

// NoScope is the null handle (parent of a root frame).
var NoScope = ScopeRef{}

type frameSlot struct {
	gen    uint32 // matches ScopeRef.gen while the slot is live; 0 is reserved
	alive  bool
	refs   int
	parent ScopeRef
	vars   map[string]Value
}

// Frames is the arena of scope frames. One arena is shared by an
// interpreter and every lambda it creates; it is not safe for concurrent
// use, matching the single-threaded evaluation model.
type Frames struct {
	slots []frameSlot
	free  []int
}

func NewFrames() *Frames {
	return &Frames{}
}

// NewScope allocates a frame with the given parent (NoScope for a root
// frame) and returns its handle. The frame starts with a zero liveness
// counter: it stays alive only while retained.
func (f *Frames) NewScope(parent ScopeRef) ScopeRef {
	var idx int
	if n := len(f.free); n > 0 {
		idx = f.free[n-1]
		f.free = f.free[:n-1]
	} else {
		f.slots = append(f.slots, frameSlot{})
		idx = len(f.slots) - 1
	}
	s := &f.slots[idx]
	s.gen++
	if s.gen == 0 { // 0 is the never-alive generation
		s.gen = 1
	}
	s.alive = true
	s.refs = 0
	s.parent = parent
	s.vars = make(map[string]Value)
	return ScopeRef{index: idx, gen: s.gen}
}

func (f *Frames) slot(ref ScopeRef) *frameSlot {
	if ref.index < 0 || ref.index >= len(f.slots) {
		return nil
	}
	s := &f.slots[ref.index]
	if !s.alive || s.gen != ref.gen {
		return nil
	}
	return s
}

// Alive reports whether ref still addresses a live frame.
func (f *Frames) Alive(ref ScopeRef) bool { return f.slot(ref) != nil }

// Retain increments the liveness counter. Retaining a dead or null handle
// is a no-op, mirroring the tolerance of releasing through an expired
// reference.
func (f *Frames) Retain(ref ScopeRef) {
	if s := f.slot(ref); s != nil {
		s.refs++
	}
}

// Release decrements the liveness counter. The frame is not reclaimed
// here — reclamation is lazy, done by the allocating lambda's next call.
func (f *Frames) Release(ref ScopeRef) {
	if s := f.slot(ref); s != nil {
		s.refs--
	}
}

// Refs returns the current liveness counter, or 0 for a dead handle.
func (f *Frames) Refs(ref ScopeRef) int {
	if s := f.slot(ref); s != nil {
		return s.refs
	}
	return 0
}

// Parent returns the parent handle, or NoScope for a root or dead frame.
func (f *Frames) Parent(ref ScopeRef) ScopeRef {
	if s := f.slot(ref); s != nil {
		return s.parent
	}
	return NoScope
}

// findOwner walks the chain outward from ref and returns the handle of the
// nearest frame binding name. A dead parent ends the walk, the same way an
// expired weak parent does.
func (f *Frames) findOwner(ref ScopeRef, name string) (ScopeRef, bool) {
	for {
		s := f.slot(ref)
		if s == nil {
			return NoScope, false
		}
		if _, ok := s.vars[name]; ok {
			return ref, true
		}
		ref = s.parent
	}
}

// Lookup returns the value of the nearest visible binding of name.
func (f *Frames) Lookup(ref ScopeRef, name string) (Value, bool) {
	owner, ok := f.findOwner(ref, name)
	if !ok {
		return Value{}, false
	}
	return f.slots[owner.index].vars[name], true
}

// Get is Lookup that raises a NameError when the name is absent anywhere
// in the chain.
func (f *Frames) Get(ref ScopeRef, name string) Value {
	v, ok := f.Lookup(ref, name)
	if !ok {
		failName("No such variable: " + name)
	}
	return v
}

// Set mutates the nearest existing binding of name, wherever it lives in
// the chain. When no binding exists it creates one in the current frame —
// the define-if-absent fallback that `define` relies on. `set!` wants the
// strict behavior instead; see SetExisting.
func (f *Frames) Set(ref ScopeRef, name string, v Value) {
	if owner, ok := f.findOwner(ref, name); ok {
		f.slots[owner.index].vars[name] = v
		return
	}
	f.Define(ref, name, v)
}

// SetExisting mutates the nearest existing binding of name and reports
// whether one was found. It never creates a binding.
func (f *Frames) SetExisting(ref ScopeRef, name string, v Value) bool {
	owner, ok := f.findOwner(ref, name)
	if !ok {
		return false
	}
	f.slots[owner.index].vars[name] = v
	return true
}

// Define binds name in the current frame only, shadowing any outer
// binding. Used for parameter binding.
func (f *Frames) Define(ref ScopeRef, name string, v Value) {
	s := f.slot(ref)
	if s == nil {
		failRuntime("Scope is no longer alive")
	}
	s.vars[name] = v
}

// Names returns the names bound anywhere in the chain starting at ref,
// innermost first, without duplicates. Used for REPL completion.
func (f *Frames) Names(ref ScopeRef) []string {
	var out []string
	seen := make(map[string]bool)
	for {
		s := f.slot(ref)
		if s == nil {
			return out
		}
		for name := range s.vars {
			if !seen[name] {
				seen[name] = true
				out = append(out, name)
			}
		}
		ref = s.parent
	}
}

// Free reclaims a frame: lambdas bound in it are disposed (releasing, once
// per lambda, the frame each one captured), the slot is cleared, and its
// generation is bumped so stale handles observe a dead frame. Callers are
// expected to Free only frames whose counter is <= 0.
func (f *Frames) Free(ref ScopeRef) {
	s := f.slot(ref)
	if s == nil {
		return
	}
	vars := s.vars
	s.alive = false
	s.vars = nil
	f.free = append(f.free, ref.index)
	// Dispose after the slot is gone so a self-referential binding (a
	// lambda stored in its own defining frame) cannot re-enter this frame.
	for _, v := range vars {
		if v.Tag == VTLambda {
			v.Data.(*Lambda).dispose(f)
		}
	}
}
