// Package ports defines the interfaces between the dispatch core and its
// collaborators. The core depends on these contracts, adapters implement
// them.
package ports
