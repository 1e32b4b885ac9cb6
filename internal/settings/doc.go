// Package settings binds declared controls to observable values.
//
// A [Registry] discovers controls from a tree of [Node] declarations, turns
// each recognized one into a [Setting], and notifies subscribers
// synchronously whenever the value changes. Subscribing replays the current
// value by default, so first-time setup runs through the same callback as
// every later update.
//
// Control types are looked up by tag in a table of [Handler] values. The
// registry ships with "slider"; more can be added with
// [Registry.RegisterHandler].
//
// External input reaches a control through [Registry.Dispatch] or, for a
// stream of events, [Registry.Pump].
package settings
