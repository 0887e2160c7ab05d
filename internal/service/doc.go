// Package service contains the application services that orchestrate domain
// entities, stores, and external collaborators. Side effects (hash before
// save, cascade on delete, notification mail) are explicit steps in the
// service methods so their ordering is visible and testable.
package service
