// Package prepopulated provides a store.ExcuseRepository that selects excuses
// uniformly at random from a fixed list, without any external calls.
//
// The request text is validated but deliberately not used for selection.
package prepopulated
