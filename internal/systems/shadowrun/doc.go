// Package shadowrun implements the sprawl character rules: it folds quality
// effects into Modifiers, derives secondary stats from attributes and gear,
// and validates a build against a Ruleset.
//
// Every entry point is a pure function of its arguments. A Character and its
// GameData are only read, and each call returns freshly allocated results,
// so callers may evaluate different snapshots concurrently.
package shadowrun
