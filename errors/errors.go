package errors

import "fmt"

// Inconceivable is panicked when the code reaches a state that its callers
// guarantee can never happen.
var Inconceivable = fmt.Errorf("inconceivable")
