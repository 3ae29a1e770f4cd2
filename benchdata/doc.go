// Package benchdata holds the type-check benchmark fixtures. Each
// *.bench.go file is a self-contained compilation unit carrying a
// `go:build ignore` constraint: the module never compiles them, only the
// prober parses and checks them one file at a time.
//
// Fixtures marked "Code generated" are emitted by the typed-client
// generator configured under generate.command and should not be edited by
// hand. The generated fixtures are committed, so this package declares no
// go:generate directive and the default generate.command
// ("go generate ./benchdata") is a deliberate no-op hook: point
// generate.command at the client generator (or declare a directive here)
// to regenerate before each run. Expected instantiation counts are
// recorded in the snapshot store (snapshots.db by default), not in the
// fixtures themselves.
package benchdata
