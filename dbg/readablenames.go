// Package dbg assigns readable names to pointer values for debug output.
// Names are memoized for the life of the process, so the same curve model
// always prints the same name. The memo is never released; that only
// matters if you name a huge number of values.
package dbg

import (
	"fmt"
	"reflect"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

var memo = make(map[interface{}]string)

func init() {
	// Names are handed out in order of demand, so we make them
	// nondeterministic as a reminder that a name never identifies the same
	// value across runs.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if reflect.ValueOf(obj).IsNil() {
		return "Ø"
	}

	if name, ok := memo[obj]; ok {
		return name
	}
	name := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[obj] = name
	return name
}
