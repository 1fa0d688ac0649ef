package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCoerceStack_KnownValues(t *testing.T) {
	for _, s := range Stacks {
		require.Equal(t, s, CoerceStack(string(s)))
	}
}

func TestCoerceStack_UnknownFallsBackToOther(t *testing.T) {
	for _, raw := range []string{"cobol", "", "React", "NEXT", "next.js", " node"} {
		require.Equal(t, StackOther, CoerceStack(raw), "input %q", raw)
	}
}

func TestCoerceStack_Idempotent(t *testing.T) {
	for _, raw := range []string{"react", "cobol", "", "other", "rust"} {
		once := CoerceStack(raw)
		require.Equal(t, once, CoerceStack(string(once)))
	}
}

func TestFrameworkToStack(t *testing.T) {
	cases := map[Framework]Stack{
		FrameworkReact:    StackReact,
		FrameworkNextJS:   StackNext,
		FrameworkNuxtJS:   StackVue,
		FrameworkSvelteKit: StackSvelte,
		FrameworkFastify:  StackExpress,
		FrameworkNestJS:   StackNestJS,
		FrameworkFastAPI:  StackDjango,
		FrameworkSymfony:  StackPHP,
		FrameworkSinatra:  StackRails,
		FrameworkChi:      StackGo,
		FrameworkTauri:    StackRust,
		FrameworkUnknown:  StackOther,
	}
	for fw, want := range cases {
		require.Equal(t, want, fw.ToStack(), "framework %s", fw)
	}
}

func TestFrameworkDefaultPort(t *testing.T) {
	if got := FrameworkAngular.DefaultPort(); got != 4200 {
		t.Fatalf("angular port = %d", got)
	}
	if got := FrameworkStrapi.DefaultPort(); got != 1337 {
		t.Fatalf("strapi port = %d", got)
	}
	if got := FrameworkUnknown.DefaultPort(); got != 0 {
		t.Fatalf("unknown port = %d", got)
	}
}
