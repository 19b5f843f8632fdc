// Package errors provides coded, actionable errors for the cosmos-docs
// command line and configuration layers.
//
// Library packages return plain wrapped errors and sentinels. At the edge
// (commands, config loading) they are wrapped into a *CosmosError carrying
// a registered code, a category, an explanation and a hint:
//
//	err := errors.New("E100").
//	    WithDetail(`no preview named "buton"`).
//	    WithSuggestion("Run `cosmos-docs list` to see the registered previews.")
//
//	errors.PrintError(err)
//	// ERROR E100: Unknown preview
//	//
//	//   no preview named "buton"
//	//
//	//   Hint: Run `cosmos-docs list` to see the registered previews.
package errors
