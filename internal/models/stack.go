package models

// Stack is the closed set of technology labels a service can carry.
//
// Values arriving from outside (the scanner, form input, the store) are
// never trusted to be members; route them through CoerceStack.
type Stack string

const (
	StackReact   Stack = "react"
	StackNext    Stack = "next"
	StackVue     Stack = "vue"
	StackAngular Stack = "angular"
	StackSvelte  Stack = "svelte"
	StackNode    Stack = "node"
	StackExpress Stack = "express"
	StackNestJS  Stack = "nestjs"
	StackLaravel Stack = "laravel"
	StackPHP     Stack = "php"
	StackDjango  Stack = "django"
	StackFlask   Stack = "flask"
	StackRails   Stack = "rails"
	StackGo      Stack = "go"
	StackRust    Stack = "rust"

	// StackOther is the fallback for anything outside the known set.
	StackOther Stack = "other"
)

// Stacks lists every valid stack in display order.
var Stacks = []Stack{
	StackReact, StackNext, StackVue, StackAngular, StackSvelte,
	StackNode, StackExpress, StackNestJS, StackLaravel, StackPHP,
	StackDjango, StackFlask, StackRails, StackGo, StackRust,
	StackOther,
}

var validStacks = func() map[Stack]struct{} {
	m := make(map[Stack]struct{}, len(Stacks))
	for _, s := range Stacks {
		m[s] = struct{}{}
	}
	return m
}()

// CoerceStack maps an arbitrary string onto a valid Stack.
// Unknown values become StackOther; the function is total and idempotent.
// This is the only place stack coercion happens.
func CoerceStack(raw string) Stack {
	if _, ok := validStacks[Stack(raw)]; ok {
		return Stack(raw)
	}
	return StackOther
}
