// Package ptable provides the immutable per-element property tables that
// every other golewis package consumes: neutral valence electron counts,
// octet targets, octet-expansion capability, Pauling electronegativities,
// dipole polarizabilities, and metal classification.
//
// The table is loaded once at init and is read-only thereafter; lookups
// are case-insensitive ("cl", "CL" and "Cl" all resolve to chlorine).
//
// Coverage: main-group elements H–Ca, the halogens through iodine, and
// the 3d transition metals. That is the territory of the solver: organic
// and inorganic main-group chemistry plus covalent bond classification
// around 3d metal centers.
//
// Errors:
//
//   - ErrUnknownElement  if a symbol is not in the table.
package ptable
