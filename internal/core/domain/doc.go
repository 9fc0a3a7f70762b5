// Package domain contains the core business entities for CodeXR.
// These types have no dependencies on adapters or external services.
package domain
