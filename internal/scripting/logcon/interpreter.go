package logcon

import (
	"fmt"
	"strings"
)

// EntityHost is the subset of a GameObject record the interpreter needs:
// named-field access for the last step of identifier resolution, and a
// stable identity string for diagnostics. internal/core/gameobject.GameObject
// implements this so the interpreter package never needs to import it
// directly.
type EntityHost interface {
	GetField(name string) (Value, bool)
	SetField(name string, value Value) bool
	ID() string

	// InstallLifecycleHooks overwrites the host's create/update/destroy
	// callbacks with the interpreter's own handlers and returns whatever
	// callbacks were previously installed, so the interpreter can chain to
	// them (see RuntimeEntityInstance.ChainedCreate/Update/Destroy).
	InstallLifecycleHooks(onCreate func(), onUpdate func(float64), onDestroy func()) (prevCreate func(), prevUpdate func(float64), prevDestroy func())
}

// maxRecursionDepth bounds function-call nesting; exceeding it is a
// RuntimeLimit error per the propagation policy, not a stack overflow.
const maxRecursionDepth = 1000

// maxLoopIterations bounds the combined while/for iteration count of one
// ExecuteEvent run (every loop it executes shares one counter) as a
// runaway-script guard; exceeding it terminates the loop early and
// logs a warning rather than hanging the frame.
const maxLoopIterations = 1_000_000

// controlFlow tags why ExecutionContext unwound out of a statement list.
type controlFlow int

const (
	flowNone controlFlow = iota
	flowReturn
	flowBreak
	flowContinue
)

// ExecutionContext carries the control-flow state threaded through one
// execution of a statement list: which unwind (if any) is in flight, the
// value a `return` is carrying, and a defensive iteration counter shared
// across nested loops within this one call so a pathological script
// cannot loop forever across all its nesting levels combined.
type ExecutionContext struct {
	flow           controlFlow
	returnValue    Value
	iterations     int
	recursionDepth int
}

func newExecutionContext() *ExecutionContext {
	return &ExecutionContext{flow: flowNone}
}

// reset clears flow/return state at the start of every ExecuteEvent call.
// The original engine this design is drawn from reused one ExecutionContext
// across calls, which let a stale flowReturn from one event silently abort
// the next; resetting here is a deliberate correctness fix.
func (ec *ExecutionContext) reset() {
	ec.flow = flowNone
	ec.returnValue = Unit
	ec.iterations = 0
}

// RuntimeEntityInstance is the live state bound to one scripted entity: its
// GameObject, the AST it was compiled from, and four independent
// namespaces (properties, locals, constants, functions) searched in a
// fixed order during identifier resolution. CustomEventHandlers maps a
// non-lifecycle event name to its block; ChainedCreate/Update/Destroy hold
// any GameObject-native callback that was installed before scripting took
// over, so the script's own lifecycle handlers can chain to it rather
// than silently replacing it.
type RuntimeEntityInstance struct {
	GameObject EntityHost
	Decl       *EntityDecl

	Properties map[string]Value
	Locals     map[string]Value
	Constants  map[string]Value
	Functions  map[string]*FunctionDecl

	CustomEventHandlers map[string]*EventBlock
	lifecycleHandlers   map[string]*EventBlock

	ChainedCreate  func()
	ChainedUpdate  func(dt float64)
	ChainedDestroy func()

	execCtx *ExecutionContext
}

var lifecycleEventNames = map[string]bool{"create": true, "update": true, "destroy": true}

// NewRuntimeEntityInstance binds decl to host, evaluating every property
// and constant initializer once at bind time.
func NewRuntimeEntityInstance(interp *Interpreter, host EntityHost, decl *EntityDecl) *RuntimeEntityInstance {
	inst := &RuntimeEntityInstance{
		GameObject:          host,
		Decl:                decl,
		Properties:          make(map[string]Value),
		Locals:              make(map[string]Value),
		Constants:           make(map[string]Value),
		Functions:           make(map[string]*FunctionDecl),
		CustomEventHandlers: make(map[string]*EventBlock),
		lifecycleHandlers:   make(map[string]*EventBlock),
		execCtx:             newExecutionContext(),
	}
	for _, fn := range decl.Functions {
		inst.Functions[normalizeCallName(fn.Name)] = fn
	}
	for _, ev := range decl.Events {
		if lifecycleEventNames[ev.Name] {
			inst.lifecycleHandlers[ev.Name] = ev
		} else {
			inst.CustomEventHandlers[ev.Name] = ev
		}
	}
	frame := newScopeFor(inst)
	for _, prop := range decl.Properties {
		inst.Properties[prop.Name] = interp.eval(prop.Value, inst, frame)
	}
	for _, c := range decl.Constants {
		inst.Constants[c.Name] = interp.eval(c.Value, inst, frame)
	}

	prevCreate, prevUpdate, prevDestroy := host.InstallLifecycleHooks(
		func() { interp.ExecuteEvent(inst, "create") },
		func(dt float64) { interp.ExecuteEvent(inst, "update", Number(dt)) },
		func() { interp.ExecuteEvent(inst, "destroy") },
	)
	inst.ChainedCreate = prevCreate
	inst.ChainedUpdate = prevUpdate
	inst.ChainedDestroy = prevDestroy

	return inst
}

// Interpreter tree-walks EntityDecl ASTs against bound RuntimeEntityInstances.
type Interpreter struct {
	Functions *FunctionRegistry
	Warn      func(format string, args ...any)

	// current is the RuntimeEntityInstance executing on this goroutine,
	// set for the duration of ExecuteEvent/evalCall so builtins (which
	// receive only evaluated Values, not the AST context) can still reach
	// the calling entity's GameObject for self-targeted operations like
	// move/teleport.
	current *RuntimeEntityInstance

	// KeyPressed backs the iskeypressed builtin. Left nil in headless or
	// test contexts, where iskeypressed always reports false.
	KeyPressed func(key string) bool

	// Globals is the single interpreter-wide variable map written by
	// `global` declarations and read during identifier resolution; it
	// outlives any one RuntimeEntityInstance and is shared across all of
	// them.
	Globals map[string]Value
}

func NewInterpreter(registry *FunctionRegistry) *Interpreter {
	return &Interpreter{Functions: registry, Warn: func(string, ...any) {}, Globals: make(map[string]Value)}
}

func (interp *Interpreter) warnf(format string, args ...any) {
	if interp.Warn != nil {
		interp.Warn(format, args...)
	}
}

// scope is one function/event-body call frame's local-variable table.
// LogCon has no block scoping narrower than a function/event body: an if
// or for body shares its enclosing frame.
type scope struct {
	vars map[string]Value
}

func newScopeFor(inst *RuntimeEntityInstance) *scope {
	return &scope{vars: make(map[string]Value)}
}

func newScope() *scope { return &scope{vars: make(map[string]Value)} }

// ExecuteEvent runs the named event handler (lifecycle or custom) on
// inst, chaining to any previously-installed GameObject-native callback
// for create/update/destroy first. Missing handlers are a no-op, not an
// error: not every entity implements every event. The ExecutionContext is
// reset at the start of this call so no control-flow state leaks between
// independent events.
func (interp *Interpreter) ExecuteEvent(inst *RuntimeEntityInstance, name string, args ...Value) Value {
	inst.execCtx.reset()
	previous := interp.current
	interp.current = inst
	defer func() { interp.current = previous }()

	switch name {
	case "create":
		if inst.ChainedCreate != nil {
			inst.ChainedCreate()
		}
	case "update":
		if inst.ChainedUpdate != nil {
			dt := 0.0
			if len(args) > 0 {
				dt = args[0].AsNumber()
			}
			inst.ChainedUpdate(dt)
		}
	case "destroy":
		if inst.ChainedDestroy != nil {
			inst.ChainedDestroy()
		}
	}

	block, ok := inst.lifecycleHandlers[name]
	if !ok {
		block, ok = inst.CustomEventHandlers[name]
	}
	if !ok {
		return Unit
	}

	frame := newScope()
	for i, paramVal := range args {
		frame.vars[fmt.Sprintf("arg%d", i)] = paramVal
	}
	if block.Param != "" && len(args) > 0 {
		frame.vars[block.Param] = args[0]
	}
	if name == "update" {
		dt := 0.0
		if len(args) > 0 {
			dt = args[0].AsNumber()
		}
		frame.vars["deltaTime"] = Number(dt)
	}
	interp.execBlock(block.Body, inst, frame)
	return inst.execCtx.returnValue
}

// execBlock runs stmts in order, stopping early if a break/continue/return
// unwind is in flight; the caller (loop or event dispatch) is responsible
// for interpreting and clearing flowBreak/flowContinue at the right level.
func (interp *Interpreter) execBlock(stmts []Statement, inst *RuntimeEntityInstance, frame *scope) {
	for _, stmt := range stmts {
		interp.execStmt(stmt, inst, frame)
		if inst.execCtx.flow != flowNone {
			return
		}
	}
}

func (interp *Interpreter) execStmt(stmt Statement, inst *RuntimeEntityInstance, frame *scope) {
	switch s := stmt.(type) {
	case *VarStatement:
		var v Value = Unit
		if s.Value != nil {
			v = interp.eval(s.Value, inst, frame)
		}
		switch s.Scope {
		case "global":
			interp.Globals[s.Name] = v
		case "const":
			inst.Constants[s.Name] = v
		default: // "var", "let"
			frame.vars[s.Name] = v
		}

	case *AssignStatement:
		interp.execAssign(s, inst, frame)

	case *ExprStatement:
		interp.eval(s.Expr, inst, frame)

	case *ReturnStatement:
		v := Unit
		if s.Value != nil {
			v = interp.eval(s.Value, inst, frame)
		}
		inst.execCtx.returnValue = v
		inst.execCtx.flow = flowReturn

	case *BreakStatement:
		inst.execCtx.flow = flowBreak

	case *ContinueStatement:
		inst.execCtx.flow = flowContinue

	case *IfStatement:
		if interp.eval(s.Condition, inst, frame).AsBool() {
			interp.execBlock(s.Then, inst, frame)
		} else if s.Else != nil {
			interp.execBlock(s.Else, inst, frame)
		}

	case *WhileStatement:
		for interp.eval(s.Condition, inst, frame).AsBool() {
			inst.execCtx.iterations++
			if inst.execCtx.iterations > maxLoopIterations {
				interp.warnf("while loop exceeded %d iterations, aborting", maxLoopIterations)
				return
			}
			interp.execBlock(s.Body, inst, frame)
			if interp.consumeLoopFlow(inst) {
				return
			}
		}

	case *ForStatement:
		interp.execFor(s, inst, frame)

	case *TriggerStatement:
		interp.execTrigger(s, inst, frame)

	default:
		interp.warnf("unhandled statement type %T", stmt)
	}
}

// consumeLoopFlow interprets the current control-flow state at a loop
// boundary: flowBreak terminates the loop (signalled via true + clearing
// flow to flowNone), flowContinue resumes iteration (also cleared), and
// flowReturn propagates unchanged to the enclosing caller (signalled via
// true without clearing flow).
func (interp *Interpreter) consumeLoopFlow(inst *RuntimeEntityInstance) (stop bool) {
	switch inst.execCtx.flow {
	case flowBreak:
		inst.execCtx.flow = flowNone
		return true
	case flowContinue:
		inst.execCtx.flow = flowNone
		return false
	case flowReturn:
		return true
	default:
		return false
	}
}

// execFor runs a numeric range loop `for IDENT = start end { ... }`.
// Direction (step +1 or -1) is derived from the sign of End-Start; the
// estimated iteration count (|End-Start|+1) is checked up front against
// maxLoopIterations so a pathological range aborts before looping at all,
// matching the "estimated iteration count over 1 000 000 aborts" rule.
// The loop variable is bound into the call frame and left at its final
// value after the loop exits (no save/restore — LogCon has no block
// scoping narrower than the enclosing function/event body).
func (interp *Interpreter) execFor(s *ForStatement, inst *RuntimeEntityInstance, frame *scope) {
	start := interp.eval(s.Start, inst, frame).AsNumber()
	end := interp.eval(s.End, inst, frame).AsNumber()

	step := 1.0
	if end < start {
		step = -1.0
	}

	estimated := int64(end-start)*int64(step) + 1
	if estimated < 0 {
		estimated = 0
	}
	if estimated > maxLoopIterations {
		interp.warnf("for loop estimated %d iterations, exceeding the %d limit; aborting", estimated, maxLoopIterations)
		return
	}

	for i := start; (step > 0 && i <= end) || (step < 0 && i >= end); i += step {
		frame.vars[s.Variable] = Number(i)
		inst.execCtx.iterations++
		if inst.execCtx.iterations > maxLoopIterations {
			interp.warnf("for loop exceeded %d iterations, aborting", maxLoopIterations)
			return
		}
		interp.execBlock(s.Body, inst, frame)
		if interp.consumeLoopFlow(inst) {
			return
		}
	}
}

// execTrigger raises a custom event by name on inst: if a matching
// `on <name>` block exists, its optional parameter is bound to the first
// argument (if any) and the block runs; otherwise this is an
// informational no-op, matching the propagation policy's "degrade to a
// logged message" rule for trigger targets that don't exist.
func (interp *Interpreter) execTrigger(s *TriggerStatement, inst *RuntimeEntityInstance, frame *scope) {
	name := interp.eval(s.EventName, inst, frame).AsString()
	block, ok := inst.CustomEventHandlers[name]
	if !ok {
		interp.warnf("trigger %q: no matching custom event on entity %s", name, inst.GameObject.ID())
		return
	}
	args := make([]Value, len(s.Args))
	for i, a := range s.Args {
		args[i] = interp.eval(a, inst, frame)
	}
	callFrame := newScope()
	if block.Param != "" && len(args) > 0 {
		callFrame.vars[block.Param] = args[0]
	}
	savedFlow, savedReturn := inst.execCtx.flow, inst.execCtx.returnValue
	inst.execCtx.flow = flowNone
	interp.execBlock(block.Body, inst, callFrame)
	inst.execCtx.flow = savedFlow
	inst.execCtx.returnValue = savedReturn
}

func (interp *Interpreter) execAssign(s *AssignStatement, inst *RuntimeEntityInstance, frame *scope) {
	newVal := interp.eval(s.Value, inst, frame)
	if s.Op != TokenAssign {
		current := interp.eval(s.Target, inst, frame)
		newVal = applyCompoundOp(s.Op, current, newVal)
	}

	switch t := s.Target.(type) {
	case *Identifier:
		interp.assignIdentifier(t.Name, newVal, inst, frame)
	case *IndexExpr:
		arr := interp.eval(t.Array, inst, frame)
		idx := int(interp.eval(t.Index, inst, frame).AsNumber())
		arr.SetAt(idx, newVal)
	case *MemberExpr:
		if ident, ok := t.Object.(*Identifier); ok && ident.Name == "self" {
			inst.GameObject.SetField(t.Name, newVal)
			return
		}
		interp.warnf("cannot assign to member expression on non-self object")
	default:
		interp.warnf("invalid assignment target")
	}
}

func applyCompoundOp(op TokenID, current, rhs Value) Value {
	switch op {
	case TokenPlusAssign:
		return Number(current.AsNumber() + rhs.AsNumber())
	case TokenMinusAssign:
		return Number(current.AsNumber() - rhs.AsNumber())
	case TokenStarAssign:
		return Number(current.AsNumber() * rhs.AsNumber())
	case TokenSlashAssign:
		denom := rhs.AsNumber()
		if denom == 0 {
			return Number(0)
		}
		return Number(current.AsNumber() / denom)
	default:
		return rhs
	}
}

// assignIdentifier writes to whichever namespace already holds name,
// mirroring resolveIdentifier's read order, falling back to creating a
// new call-frame local when nothing existing claims it.
func (interp *Interpreter) assignIdentifier(name string, v Value, inst *RuntimeEntityInstance, frame *scope) {
	if _, ok := frame.vars[name]; ok {
		frame.vars[name] = v
		return
	}
	if _, ok := inst.Constants[name]; ok {
		inst.Constants[name] = v
		return
	}
	if _, ok := interp.Globals[name]; ok {
		interp.Globals[name] = v
		return
	}
	if _, ok := inst.Properties[name]; ok {
		inst.Properties[name] = v
		return
	}
	if _, ok := inst.Locals[name]; ok {
		inst.Locals[name] = v
		return
	}
	if inst.GameObject.SetField(name, v) {
		return
	}
	frame.vars[name] = v
}

// eval evaluates expr against inst/frame. Identifier resolution for a
// bare name follows this fixed order: function-call frame locals, then
// entity constants, then interpreter globals, then entity properties,
// then entity-scoped Locals, then GameObject fields, and finally falls back to treating the bare
// name as an opaque identifier-string value if nothing else claims it.
func (interp *Interpreter) eval(expr Expression, inst *RuntimeEntityInstance, frame *scope) Value {
	switch e := expr.(type) {
	case *NumberLiteral:
		return Number(e.Value)
	case *StringLiteral:
		return String(e.Value)
	case *BoolLiteral:
		return Bool(e.Value)
	case *ArrayLiteral:
		elems := make([]Value, len(e.Elements))
		for i, el := range e.Elements {
			elems[i] = interp.eval(el, inst, frame)
		}
		return NewArray(elems)
	case *Identifier:
		return interp.resolveIdentifier(e.Name, inst, frame)
	case *MemberExpr:
		return interp.evalMember(e, inst, frame)
	case *IndexExpr:
		arr := interp.eval(e.Array, inst, frame)
		idx := int(interp.eval(e.Index, inst, frame).AsNumber())
		return arr.At(idx)
	case *UnaryExpr:
		return interp.evalUnary(e, inst, frame)
	case *BinaryExpr:
		return interp.evalBinary(e, inst, frame)
	case *CallExpr:
		return interp.evalCall(e, inst, frame)
	default:
		interp.warnf("unhandled expression type %T", expr)
		return Unit
	}
}

// resolveIdentifier implements the fixed identifier-resolution order:
// local variable (this call frame) -> constant -> global variable ->
// entity property -> entity-instance local -> GameObject field ->
// fallback to the identifier text itself.
func (interp *Interpreter) resolveIdentifier(name string, inst *RuntimeEntityInstance, frame *scope) Value {
	if v, ok := frame.vars[name]; ok {
		return v
	}
	if v, ok := inst.Constants[name]; ok {
		return v
	}
	if v, ok := interp.Globals[name]; ok {
		return v
	}
	if v, ok := inst.Properties[name]; ok {
		return v
	}
	if v, ok := inst.Locals[name]; ok {
		return v
	}
	if v, ok := inst.GameObject.GetField(name); ok {
		return v
	}
	return String(name)
}

func (interp *Interpreter) evalMember(e *MemberExpr, inst *RuntimeEntityInstance, frame *scope) Value {
	if ident, ok := e.Object.(*Identifier); ok && ident.Name == "self" {
		if v, ok := inst.GameObject.GetField(e.Name); ok {
			return v
		}
		if v, ok := inst.Properties[e.Name]; ok {
			return v
		}
		return Unit
	}
	interp.warnf("member access on non-self object %q is not supported", e.Name)
	return Unit
}

func (interp *Interpreter) evalUnary(e *UnaryExpr, inst *RuntimeEntityInstance, frame *scope) Value {
	v := interp.eval(e.Operand, inst, frame)
	switch e.Op {
	case TokenMinus:
		return Number(-v.AsNumber())
	case TokenNot:
		return Bool(!v.AsBool())
	default:
		return Unit
	}
}

func (interp *Interpreter) evalBinary(e *BinaryExpr, inst *RuntimeEntityInstance, frame *scope) Value {
	if e.Op == TokenAnd {
		left := interp.eval(e.Left, inst, frame)
		if !left.AsBool() {
			return Bool(false)
		}
		return Bool(interp.eval(e.Right, inst, frame).AsBool())
	}
	if e.Op == TokenOr {
		left := interp.eval(e.Left, inst, frame)
		if left.AsBool() {
			return Bool(true)
		}
		return Bool(interp.eval(e.Right, inst, frame).AsBool())
	}

	left := interp.eval(e.Left, inst, frame)
	right := interp.eval(e.Right, inst, frame)

	switch e.Op {
	case TokenPlus:
		if left.Kind() == KindString || right.Kind() == KindString {
			return String(left.AsString() + right.AsString())
		}
		return Number(left.AsNumber() + right.AsNumber())
	case TokenMinus:
		return Number(left.AsNumber() - right.AsNumber())
	case TokenStar:
		return Number(left.AsNumber() * right.AsNumber())
	case TokenSlash:
		denom := right.AsNumber()
		if denom == 0 {
			interp.warnf("division by zero")
			return Number(0)
		}
		return Number(left.AsNumber() / denom)
	case TokenPercent:
		denom := right.AsNumber()
		if denom == 0 {
			interp.warnf("modulo by zero")
			return Number(0)
		}
		li, ri := int64(left.AsNumber()), int64(denom)
		return Number(float64(li % ri))
	case TokenEqual:
		return Bool(valuesEqual(left, right))
	case TokenNotEqual:
		return Bool(!valuesEqual(left, right))
	case TokenLess:
		return Bool(left.AsNumber() < right.AsNumber())
	case TokenLessEqual:
		return Bool(left.AsNumber() <= right.AsNumber())
	case TokenGreater:
		return Bool(left.AsNumber() > right.AsNumber())
	case TokenGreaterEqual:
		return Bool(left.AsNumber() >= right.AsNumber())
	default:
		return Unit
	}
}

func valuesEqual(a, b Value) bool {
	if a.Kind() != b.Kind() {
		if a.Kind() == KindNumber || b.Kind() == KindNumber {
			return a.AsNumber() == b.AsNumber()
		}
		return a.AsString() == b.AsString()
	}
	switch a.Kind() {
	case KindNumber:
		return a.AsNumber() == b.AsNumber()
	case KindString:
		return a.AsString() == b.AsString()
	case KindBool:
		return a.AsBool() == b.AsBool()
	default:
		return false
	}
}

func (interp *Interpreter) evalCall(e *CallExpr, inst *RuntimeEntityInstance, frame *scope) Value {
	ident, ok := e.Callee.(*Identifier)
	if !ok {
		interp.warnf("call target must be a function name")
		return Unit
	}
	args := make([]Value, len(e.Args))
	for i, a := range e.Args {
		args[i] = interp.eval(a, inst, frame)
	}

	// Dispatch order per the call algorithm: the process-wide registry
	// (builtins) is tried first, and only an unrecognized name falls
	// through to the entity's own function declarations.
	name := normalizeCallName(ident.Name)
	if result, ok := interp.Functions.CallFunction(interp, name, args); ok {
		return result
	}

	if fn, ok := inst.Functions[name]; ok {
		return interp.callUserFunction(fn, args, inst)
	}
	interp.warnf("unknown function %q called with %d arguments", name, len(args))
	return Unit
}

func normalizeCallName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func (interp *Interpreter) callUserFunction(fn *FunctionDecl, args []Value, inst *RuntimeEntityInstance) Value {
	inst.execCtx.recursionDepth++
	defer func() { inst.execCtx.recursionDepth-- }()
	if inst.execCtx.recursionDepth > maxRecursionDepth {
		interp.warnf("function %q exceeded max recursion depth %d", fn.Name, maxRecursionDepth)
		return Unit
	}

	callFrame := newScope()
	for i, paramName := range fn.Params {
		if i < len(args) {
			callFrame.vars[paramName] = args[i]
		} else {
			callFrame.vars[paramName] = Unit
		}
	}

	savedFlow, savedReturn := inst.execCtx.flow, inst.execCtx.returnValue
	inst.execCtx.flow = flowNone
	inst.execCtx.returnValue = Unit

	interp.execBlock(fn.Body, inst, callFrame)
	result := inst.execCtx.returnValue

	inst.execCtx.flow = savedFlow
	inst.execCtx.returnValue = savedReturn
	return result
}
