// Package api provides HTTP handlers for the progression engine's
// collaborator surface. Every route is scoped to a learner ID path
// parameter; handlers resolve the learner's engine through the registry
// and translate domain errors into sanitized JSON responses.
package api
