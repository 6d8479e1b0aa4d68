// Package service contains the application services that orchestrate domain
// entities and stores: profile reads/updates, the exercise catalog, and the
// favourites/completion relation sets. Services return explicit results and
// typed errors; they never stash state anywhere for the caller to find later.
package service
