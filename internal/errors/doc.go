// Package errors provides coded, actionable errors for the adapter's own
// failure paths: method dispatch, host operations, configuration and the CLI.
//
// Errors raised by user component code are never wrapped here; they reach the
// caller unchanged.
//
// # Error Codes
//
// Each error has a code (e.g. "E101") that maps to a category, a short
// message and a longer explanation:
//
//	err := errors.New("E101").
//	    WithDetail(`no method "reset" on component "counter"`).
//	    WithSuggestion("Check the Methods map of the definition")
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E101: Unknown method
//	//
//	//   no method "reset" on component "counter"
//	//
//	//   Hint: Check the Methods map of the definition
package errors
