// Package recaman implements the persistent Recamán sequence generator.
//
// The engine owns a single on-disk store holding the full ordered sequence
// generated so far. Every run loads the store, appends a fixed batch of new
// terms, prints them, and persists the whole sequence back atomically. The
// sequence never contains a value twice; candidate terms are checked
// against the membership set on every branch of the recurrence.
//
// The store is never deleted by the engine on its own: a corrupt store
// aborts the run with instructions to delete the file manually, and the
// size health check only discards data after an explicit confirmation.
package recaman
