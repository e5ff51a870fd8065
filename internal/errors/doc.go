// Package errors provides structured, actionable error messages for the
// showcase CLI and server.
//
// # Error Categories
//
// Errors are organized into categories:
//   - config: showcase.json / showcase.yaml problems
//   - catalog: widget catalog problems (bad sizes, duplicate IDs)
//   - protocol: WebSocket messages the server cannot act on
//   - validation: action arguments outside the allowed values
//   - publish: static export upload failures
//   - cli: command failures
//
// # Usage
//
//	err := errors.New("E102").
//	    WithPath("showcase.json").
//	    WithDetail(`variant "fancy" is not simple or rich`)
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E102: Invalid config value
//	//
//	//   showcase.json
//	//
//	//   variant "fancy" is not simple or rich
//	//
//	//   Hint: See the config reference for allowed values.
package errors
