// Package catalog declares the set of capability identities an application
// allows in its registry.
//
// A Catalog is an immutable manifest of capability declarations, loaded from
// YAML or JSON or built in code. Wired into a registry with
// locator.WithCatalog, it rejects registration of undeclared identities and
// lets bootstrap code verify that every required capability has a service
// before sealing.
//
// Declaration names are the fully qualified capability names reported by
// Capability.String(), i.e. the interface's package path plus its name:
//
//	capabilities:
//	  - name: github.com/acme/app/audio.System
//	    description: sound output backend
//	    required: true
//	  - name: github.com/acme/app/telemetry.Reporter
//	    description: crash and usage telemetry
//
// Load and wire:
//
//	cat, err := catalog.FromFile("capabilities.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	reg := locator.New(locator.WithCatalog(cat))
package catalog
