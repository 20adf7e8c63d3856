// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for finality/core.
//
// Purpose:
//   - Provide small, deterministic fixtures shared across core tests.
//   - Keep member-function plumbing (receiver extraction, backing
//     attributes) in one auditable place.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/finality/core"
)

// Backing attribute used by property fixtures.
const attrBackingX = "_x"

// retNil is the no-op member implementation.
func retNil(...any) any { return nil }

// bases builds a base list in declaration order.
func bases(classes ...*core.Class) []*core.Class { return classes }

// mustClass constructs a class and fails the test on any error.
func mustClass(t *testing.T, name string, bs []*core.Class, members map[string]*core.Member, opts ...core.ClassOption) *core.Class {
	t.Helper()

	c, err := core.NewClass(name, bs, members, opts...)
	require.NoError(t, err, "NewClass(%s)", name)

	return c
}

// sealedMethod declares an instance method and seals it immediately.
func sealedMethod(fn core.Func) *core.Member {
	m := core.NewMethod(fn)
	m.MarkFinal()

	return m
}

// recvOf extracts the *core.Instance receiver from bound arguments.
func recvOf(args []any) *core.Instance { return args[0].(*core.Instance) }

// getterX reads the backing attribute; the canonical property getter.
func getterX(args ...any) any {
	v, _ := recvOf(args).LoadAttr(attrBackingX)

	return v
}

// setterX writes the backing attribute; the canonical property setter.
func setterX(args ...any) any {
	recvOf(args).StoreAttr(attrBackingX, args[1])

	return nil
}

// deleterX removes the backing attribute; the canonical property deleter.
func deleterX(args ...any) any {
	recvOf(args).DeleteAttr(attrBackingX)

	return nil
}
