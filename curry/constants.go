package curry

//-----------------------------------------------------------------------------
// Method name constants
//   used to prefix errors and log records with the originating call.
//-----------------------------------------------------------------------------

const (
	// MethodCreate is the canonical name for Create and CreateMethod.
	MethodCreate = "Create"
	// MethodTakes is the canonical name for Takes.
	MethodTakes = "Takes"
	// MethodTakesThis is the canonical name for TakesThis.
	MethodTakesThis = "TakesThis"
	// MethodTakesRest is the canonical name for TakesRest.
	MethodTakesRest = "TakesRest"
	// MethodWithBound is the canonical name for WithBound.
	MethodWithBound = "WithBound"
	// MethodWithBoundThis is the canonical name for WithBoundThis.
	MethodWithBoundThis = "WithBoundThis"
	// MethodWithBoundRest is the canonical name for WithBoundRest.
	MethodWithBoundRest = "WithBoundRest"
	// MethodApply is the canonical name for Func.Apply.
	MethodApply = "Apply"
	// MethodInvoke is the canonical name for Func.Invoke.
	MethodInvoke = "Invoke"
	// MethodCall is the canonical name for Func.Call.
	MethodCall = "Call"
)
