// Package cli implements the interactive qrkeeper shell: scanning payloads,
// creating and saving QR codes, browsing history and the saved-codes catalog,
// and activating premium entitlement. It is the composition root that wires
// the storage, services and collaborators together.
package cli
