package logcon

import (
	"math"
	"math/rand"
	"sort"
	"strings"
)

// RegisterBuiltins populates registry with every builtin function family
// described by the language: math, string, array, core game, RPG,
// platformer, and shooter helpers. Call once per FunctionRegistry.
func RegisterBuiltins(registry *FunctionRegistry) {
	registerMathBuiltins(registry)
	registerStringBuiltins(registry)
	registerArrayBuiltins(registry)
	registerCoreBuiltins(registry)
	registerRPGBuiltins(registry)
	registerPlatformerBuiltins(registry)
	registerShooterBuiltins(registry)
}

func registerMathBuiltins(registry *FunctionRegistry) {
	reg := NewRegistrar(registry, "math")
	reg.Fn("sqrt", 1, 1, func(_ *Interpreter, a []Value) Value {
		v := a[0].AsNumber()
		if v < 0 {
			return Number(0)
		}
		return Number(math.Sqrt(v))
	})
	reg.Fn("abs", 1, 1, func(_ *Interpreter, a []Value) Value { return Number(math.Abs(a[0].AsNumber())) })
	reg.Fn("sin", 1, 1, func(_ *Interpreter, a []Value) Value { return Number(math.Sin(a[0].AsNumber())) })
	reg.Fn("cos", 1, 1, func(_ *Interpreter, a []Value) Value { return Number(math.Cos(a[0].AsNumber())) })
	reg.Fn("tan", 1, 1, func(_ *Interpreter, a []Value) Value { return Number(math.Tan(a[0].AsNumber())) })
	reg.Fn("floor", 1, 1, func(_ *Interpreter, a []Value) Value { return Number(math.Floor(a[0].AsNumber())) })
	reg.Fn("ceil", 1, 1, func(_ *Interpreter, a []Value) Value { return Number(math.Ceil(a[0].AsNumber())) })
	reg.Fn("round", 1, 1, func(_ *Interpreter, a []Value) Value { return Number(math.Round(a[0].AsNumber())) })
	reg.Fn("pow", 2, 2, func(_ *Interpreter, a []Value) Value { return Number(math.Pow(a[0].AsNumber(), a[1].AsNumber())) })
	reg.Fn("min", 2, 2, func(_ *Interpreter, a []Value) Value { return Number(math.Min(a[0].AsNumber(), a[1].AsNumber())) })
	reg.Fn("max", 2, 2, func(_ *Interpreter, a []Value) Value { return Number(math.Max(a[0].AsNumber(), a[1].AsNumber())) })
}

func registerStringBuiltins(registry *FunctionRegistry) {
	reg := NewRegistrar(registry, "string")
	reg.Fn("length", 1, 1, func(_ *Interpreter, a []Value) Value { return Number(float64(len([]rune(a[0].AsString())))) })
	reg.Fn("upper", 1, 1, func(_ *Interpreter, a []Value) Value { return String(strings.ToUpper(a[0].AsString())) })
	reg.Fn("lower", 1, 1, func(_ *Interpreter, a []Value) Value { return String(strings.ToLower(a[0].AsString())) })
	reg.Fn("contains", 2, 2, func(_ *Interpreter, a []Value) Value {
		return Bool(strings.Contains(a[0].AsString(), a[1].AsString()))
	})
	reg.Fn("substring", 2, 3, func(_ *Interpreter, a []Value) Value {
		s := []rune(a[0].AsString())
		start := clampIndex(int(a[1].AsNumber()), len(s))
		end := len(s)
		if len(a) == 3 {
			end = clampIndex(int(a[2].AsNumber()), len(s))
		}
		if start > end {
			return String("")
		}
		return String(string(s[start:end]))
	})
}

func registerArrayBuiltins(registry *FunctionRegistry) {
	reg := NewRegistrar(registry, "array")
	reg.Fn("size", 1, 1, func(_ *Interpreter, a []Value) Value { return Number(float64(a[0].Len())) }, "length_of")
	reg.Fn("push", 2, 2, func(_ *Interpreter, a []Value) Value { a[0].Push(a[1]); return a[0] })
	reg.Fn("pop", 1, 1, func(_ *Interpreter, a []Value) Value { return a[0].Pop() })
	reg.Fn("shuffle", 1, 1, func(_ *Interpreter, a []Value) Value {
		elems := a[0].Elements()
		rand.Shuffle(len(elems), func(i, j int) { elems[i], elems[j] = elems[j], elems[i] })
		return a[0]
	})
	reg.Fn("sort", 1, 1, func(_ *Interpreter, a []Value) Value {
		elems := a[0].Elements()
		sort.Slice(elems, func(i, j int) bool { return elems[i].AsNumber() < elems[j].AsNumber() })
		return a[0]
	})
	reg.Fn("find", 2, 2, func(_ *Interpreter, a []Value) Value {
		for i, e := range a[0].Elements() {
			if valuesEqual(e, a[1]) {
				return Number(float64(i))
			}
		}
		return Number(-1)
	})
}

// registerCoreBuiltins installs print/random/distance/angle/lerp/clamp
// plus the self-targeted move/teleport/iskeypressed/wait helpers that
// read the calling entity's GameObject via Interpreter.current.
func registerCoreBuiltins(registry *FunctionRegistry) {
	reg := NewRegistrar(registry, "core")
	reg.Fn("print", 1, -1, func(interp *Interpreter, a []Value) Value {
		parts := make([]string, len(a))
		for i, v := range a {
			parts[i] = v.AsString()
		}
		interp.warnf("%s", strings.Join(parts, " "))
		return Unit
	})
	reg.Fn("random", 0, 2, func(_ *Interpreter, a []Value) Value {
		switch len(a) {
		case 0:
			return Number(rand.Float64())
		case 1:
			return Number(rand.Float64() * a[0].AsNumber())
		default:
			lo, hi := a[0].AsNumber(), a[1].AsNumber()
			return Number(lo + rand.Float64()*(hi-lo))
		}
	})
	reg.Fn("distance", 4, 4, func(_ *Interpreter, a []Value) Value {
		dx := a[2].AsNumber() - a[0].AsNumber()
		dy := a[3].AsNumber() - a[1].AsNumber()
		return Number(math.Sqrt(dx*dx + dy*dy))
	})
	reg.Fn("angle", 4, 4, func(_ *Interpreter, a []Value) Value {
		dx := a[2].AsNumber() - a[0].AsNumber()
		dy := a[3].AsNumber() - a[1].AsNumber()
		return Number(math.Atan2(dy, dx))
	})
	reg.Fn("lerp", 3, 3, func(_ *Interpreter, a []Value) Value {
		from, to, t := a[0].AsNumber(), a[1].AsNumber(), a[2].AsNumber()
		return Number(from + (to-from)*t)
	})
	reg.Fn("clamp", 3, 3, func(_ *Interpreter, a []Value) Value {
		v, lo, hi := a[0].AsNumber(), a[1].AsNumber(), a[2].AsNumber()
		if v < lo {
			return Number(lo)
		}
		if v > hi {
			return Number(hi)
		}
		return Number(v)
	})
	reg.Fn("move", 2, 2, func(interp *Interpreter, a []Value) Value {
		return interp.moveSelf(a[0].AsNumber(), a[1].AsNumber())
	})
	reg.Fn("teleport", 2, 2, func(interp *Interpreter, a []Value) Value {
		return interp.teleportSelf(a[0].AsNumber(), a[1].AsNumber())
	})
	reg.Fn("iskeypressed", 1, 1, func(interp *Interpreter, a []Value) Value {
		return Bool(interp.KeyPressed != nil && interp.KeyPressed(a[0].AsString()))
	})
	// wait is a documented no-op extension point for a future coroutine
	// scheduler; the core is single-threaded cooperative and has no
	// suspension points, so there is nothing to wait on yet.
	reg.Fn("wait", 1, 1, func(_ *Interpreter, _ []Value) Value { return Unit })
}

func registerRPGBuiltins(registry *FunctionRegistry) {
	reg := NewRegistrar(registry, "rpg")
	reg.Fn("damage", 2, 3, func(_ *Interpreter, a []Value) Value {
		base, defense := a[0].AsNumber(), a[1].AsNumber()
		armor := 0.0
		if len(a) == 3 {
			armor = a[2].AsNumber()
		}
		dmg := base - defense*0.5 - armor
		if dmg < 0 {
			return Number(0)
		}
		return Number(dmg)
	})
	reg.Fn("heal", 2, 2, func(_ *Interpreter, a []Value) Value {
		current, amount := a[0].AsNumber(), a[1].AsNumber()
		return Number(current + amount)
	})
	reg.Fn("experience", 2, 2, func(_ *Interpreter, a []Value) Value {
		level := a[1].AsNumber()
		return Number(a[0].AsNumber() + 100*level*level)
	})
	reg.Fn("chance", 1, 1, func(_ *Interpreter, a []Value) Value { return Bool(rand.Float64() < a[0].AsNumber()) })
	reg.Fn("critchance", 2, 2, func(_ *Interpreter, a []Value) Value {
		base, luck := a[0].AsNumber(), a[1].AsNumber()
		return Bool(rand.Float64() < base+luck*0.01)
	})
}

func registerPlatformerBuiltins(registry *FunctionRegistry) {
	reg := NewRegistrar(registry, "platformer")
	reg.Fn("jump", 1, 1, func(interp *Interpreter, a []Value) Value {
		return interp.applyVerticalImpulse(-a[0].AsNumber())
	})
	reg.Fn("gravity", 1, 1, func(interp *Interpreter, a []Value) Value {
		return interp.applyVerticalImpulse(a[0].AsNumber())
	})
	reg.Fn("isgrounded", 0, 0, func(interp *Interpreter, _ []Value) Value {
		return Bool(interp.isGroundedSelf())
	})
}

func registerShooterBuiltins(registry *FunctionRegistry) {
	reg := NewRegistrar(registry, "shooter")
	reg.Fn("shoot", 0, 2, func(interp *Interpreter, a []Value) Value {
		interp.warnf("shoot() invoked; projectile spawning is owned by the host application")
		return Bool(true)
	})
	reg.Fn("reload", 0, 1, func(interp *Interpreter, _ []Value) Value {
		interp.warnf("reload() invoked")
		return Unit
	})
	reg.Fn("recoil", 1, 1, func(interp *Interpreter, a []Value) Value {
		return interp.applyVerticalImpulse(-a[0].AsNumber() * 0.1)
	})
}

// moveSelf, teleportSelf, applyVerticalImpulse, and isGroundedSelf read and
// write the calling entity's GameObject through its x/y/speedY/grounded
// fields via EntityHost, since builtins don't carry AST context.
func (interp *Interpreter) moveSelf(dx, dy float64) Value {
	if interp.current == nil {
		return Unit
	}
	host := interp.current.GameObject
	x, _ := host.GetField("x")
	y, _ := host.GetField("y")
	host.SetField("x", Number(x.AsNumber()+dx))
	host.SetField("y", Number(y.AsNumber()+dy))
	return Unit
}

func (interp *Interpreter) teleportSelf(x, y float64) Value {
	if interp.current == nil {
		return Unit
	}
	host := interp.current.GameObject
	host.SetField("x", Number(x))
	host.SetField("y", Number(y))
	return Unit
}

func (interp *Interpreter) applyVerticalImpulse(delta float64) Value {
	if interp.current == nil {
		return Unit
	}
	host := interp.current.GameObject
	speedY, _ := host.GetField("speedY")
	host.SetField("speedY", Number(speedY.AsNumber()+delta))
	return Unit
}

func (interp *Interpreter) isGroundedSelf() bool {
	if interp.current == nil {
		return false
	}
	v, ok := interp.current.GameObject.GetField("grounded")
	return ok && v.AsBool()
}

func clampIndex(i, length int) int {
	if i < 0 {
		return 0
	}
	if i > length {
		return length
	}
	return i
}
