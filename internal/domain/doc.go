// Package domain contains the core domain model for the phonetisaurus wrapper.
//
// The domain is transport- and persistence-agnostic: it does not depend on the
// filesystem, process execution, or the external tool's file formats.
// Infra/adapters map into/from these types.
package domain
