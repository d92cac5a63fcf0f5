// Package hooks implements per-component-instance state and the render
// driver that makes it available to component functions.
//
// State lives in positionally-indexed slots on an Instance: the slot list
// only ever grows, and a cursor is reset to zero at the start of every
// render and advanced once per hook call. The classic ordering rule
// follows: a component must call the same hooks, in the same order, on
// every render of the same instance.
//
// Instead of a mutable package global, the active instance travels as an
// explicit *Ctx handed to the component function by RenderComponent and
// invalidated when it returns. Hook use outside a render fails loudly.
package hooks
