// Package fleet wires the workspace HTTP surface: a chi router whose
// section routes mirror the permission catalog, and a provisioner that
// gates account creation on the role hierarchy.
//
// Section handlers are mounted behind SectionGuard, which derives the
// required permission from the route's section and the HTTP method. The
// handlers themselves stay free of authorization logic; they only perform
// tenant-ownership checks on the specific resources they touch.
package fleet
