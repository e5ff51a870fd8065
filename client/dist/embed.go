// Package clientdist embeds the browser script served at
// "/_showcase/client.js" and inlined into static exports.
package clientdist

import _ "embed"

// ShowcaseJS drives dropdowns locally and forwards widget actions to the
// session, applying the slot patches it sends back. Without a session
// (static exports) it runs the modal and toast state itself.
//
//go:embed showcase.js
var ShowcaseJS []byte
